package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"
)

// keyringTimeout bounds every keychain call; some backends block on a prompt.
const keyringTimeout = 5 * time.Second

// KeyringError represents an error during keyring operations
type KeyringError struct {
	Operation string
	Err       error
}

func (e *KeyringError) Error() string {
	return fmt.Sprintf("keyring %s failed: %v", e.Operation, e.Err)
}

func (e *KeyringError) Unwrap() error {
	return e.Err
}

// Keyring stores secrets in the system keyring under one service name
type Keyring struct {
	service string
	timeout time.Duration
}

// NewKeyring creates a keyring-backed store
func NewKeyring(service string) *Keyring {
	return &Keyring{service: service, timeout: keyringTimeout}
}

// Get retrieves a secret from the system keyring with timeout
func (k *Keyring) Get(key string) (string, bool, error) {
	var value string

	err := k.withTimeout("get", func() error {
		v, err := keyring.Get(k.service, key)
		value = v

		return err
	})
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}

		return "", false, err
	}

	return value, true, nil
}

// Set stores a secret in the system keyring with timeout
func (k *Keyring) Set(key, value string) error {
	return k.withTimeout("set", func() error {
		return keyring.Set(k.service, key, value)
	})
}

// Clear removes a secret; a missing entry is not an error
func (k *Keyring) Clear(key string) error {
	err := k.withTimeout("delete", func() error {
		return keyring.Delete(k.service, key)
	})
	if err != nil && errors.Is(err, keyring.ErrNotFound) {
		return nil
	}

	return err
}

// Has reports whether key has a non-empty value
func (k *Keyring) Has(key string) (bool, error) {
	v, ok, err := k.Get(key)
	if err != nil {
		return false, err
	}

	return ok && v != "", nil
}

// withTimeout runs fn in a goroutine and gives up after k.timeout.
// Errors other than keyring.ErrNotFound are wrapped in a KeyringError.
func (k *Keyring) withTimeout(op string, fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), k.timeout)
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- fn()
	}()

	select {
	case err := <-errCh:
		if err == nil {
			return nil
		}

		if errors.Is(err, keyring.ErrNotFound) {
			return err
		}

		return &KeyringError{Operation: op, Err: err}
	case <-ctx.Done():
		return &KeyringError{Operation: op, Err: ctx.Err()}
	}
}

// Available writes and removes a throwaway entry to check that a keychain
// backend is reachable.
func (k *Keyring) Available() bool {
	testKey := "__" + k.service + "_keyring_test__"

	if err := k.Set(testKey, "test"); err != nil {
		return false
	}

	_ = k.Clear(testKey)

	return true
}
