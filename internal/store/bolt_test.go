package store

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestBolt(t *testing.T) (*Bolt, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fragmenta-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	db, err := NewBolt(filepath.Join(tmpDir, "test.bolt"))
	if err != nil {
		_ = os.RemoveAll(tmpDir)

		t.Fatalf("failed to create test database: %v", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}

		_ = os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestBolt_Ping(t *testing.T) {
	db, cleanup := setupTestBolt(t)
	defer cleanup()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}
}

func TestBolt_GetMissing(t *testing.T) {
	db, cleanup := setupTestBolt(t)
	defer cleanup()

	v, err := db.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if v != nil {
		t.Errorf("Get() = %q, want nil", v)
	}
}

func TestBolt_PutGetDelete(t *testing.T) {
	db, cleanup := setupTestBolt(t)
	defer cleanup()

	tests := []struct {
		key   string
		value string
	}{
		{key: KeyDraft, value: `{"content":"hello"}`},
		{key: KeySettings, value: `{"retry_attempts":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := db.Put(tt.key, []byte(tt.value)); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			got, err := db.Get(tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			if string(got) != tt.value {
				t.Errorf("Get() = %q, want %q", got, tt.value)
			}

			if err := db.Delete(tt.key); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}

			got, err = db.Get(tt.key)
			if err != nil {
				t.Fatalf("Get() after delete error = %v", err)
			}

			if got != nil {
				t.Errorf("Get() after delete = %q, want nil", got)
			}
		})
	}
}

func TestBolt_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragmenta.bolt")

	db, err := NewBolt(path)
	if err != nil {
		t.Fatalf("NewBolt() error = %v", err)
	}

	if err := db.Put(KeyHistory, []byte("[]")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = NewBolt(path)
	if err != nil {
		t.Fatalf("NewBolt() reopen error = %v", err)
	}

	defer func() { _ = db.Close() }()

	got, err := db.Get(KeyHistory)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if string(got) != "[]" {
		t.Errorf("Get() = %q, want %q", got, "[]")
	}
}

func TestOpenBackend_Unknown(t *testing.T) {
	if _, err := OpenBackend("redis", t.TempDir()); err == nil {
		t.Error("OpenBackend(redis) error = nil, want error")
	}
}
