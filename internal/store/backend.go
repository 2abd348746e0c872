package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yasu691/fragmenta/internal/store/sqlite"
)

// Backend is the general tier: a flat key/value namespace.
//
// Get returns nil, nil for a missing key. Implementations do not retry or
// translate their own errors.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Ping() error
	Close() error
}

// Kind names a Backend implementation.
type Kind string

const (
	KindBolt   Kind = "bolt"
	KindSQLite Kind = "sqlite"
)

// ErrUnknownBackend is returned by OpenBackend for unsupported kinds.
var ErrUnknownBackend = errors.New("unknown store backend")

// OpenBackend opens the backend of the given kind inside dataDir.
func OpenBackend(kind Kind, dataDir string) (Backend, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindBolt, "":
		return NewBolt(filepath.Join(dataDir, "fragmenta.bolt"))
	case KindSQLite:
		return sqlite.New(filepath.Join(dataDir, "fragmenta.db"))
	default:
		return nil, fmt.Errorf("%w: %q (expected bolt or sqlite)", ErrUnknownBackend, kind)
	}
}
