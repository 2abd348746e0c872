// Package tokenstore holds secrets outside the general application store.
//
// Two implementations are provided and one is chosen when the application is
// assembled: [Keyring] persists secrets in the operating system keychain and
// survives restarts, [Memory] keeps them for the life of the process only.
package tokenstore

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Store is the secret-tier capability.
//
// Get returns ok=false when the key has no value; that is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Clear(key string) error
	Has(key string) (bool, error)
}

// Kind names a Store implementation.
type Kind string

const (
	KindKeyring Kind = "keyring"
	KindMemory  Kind = "memory"
)

// ErrUnknownKind is returned by New for unsupported kinds.
var ErrUnknownKind = errors.New("unknown token store")

// New returns the Store for kind. service namespaces keyring entries.
//
// When the keyring is requested but no keychain backend answers, secrets
// fall back to a Memory store for this process and a warning is logged.
func New(kind Kind, service string) (Store, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindKeyring, "":
		k := NewKeyring(service)
		if !k.Available() {
			slog.Warn("system keyring unavailable, the token will only be kept for this session",
				slog.String("service", service))

			return NewMemory(), nil
		}

		return k, nil
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected keyring or memory)", ErrUnknownKind, kind)
	}
}
