package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// 001_create_kv.sql
var migrationNameRe = regexp.MustCompile(`^(\d+)_(.+)\.sql$`)

// Migration is one numbered schema change.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// loadMigrations returns the embedded migrations ordered by version.
func loadMigrations() ([]Migration, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}

	var migrations []Migration

	for _, e := range entries {
		m := migrationNameRe.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}

		version, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", e.Name(), err)
		}

		body, err := migrationsFS.ReadFile(path.Join("migrations", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", e.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version:     version,
			Description: strings.ReplaceAll(m[2], "_", " "),
			SQL:         string(body),
		})
	}

	slices.SortFunc(migrations, func(a, b Migration) int { return a.Version - b.Version })

	return migrations, nil
}

// schemaVersion reads the version recorded in the database header.
func schemaVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}

	return v, nil
}

// migrate applies every migration newer than the recorded schema version,
// each in its own transaction together with the version bump.
func migrate(db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	current, err := schemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		if err := apply(db, m); err != nil {
			return fmt.Errorf("applying migration %d (%s): %w", m.Version, m.Description, err)
		}
	}

	return nil
}

func apply(db *sql.DB, m Migration) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return err
	}

	// PRAGMA does not accept bound parameters.
	if _, err = tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
		return err
	}

	return tx.Commit()
}
