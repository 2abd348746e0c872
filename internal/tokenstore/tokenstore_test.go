package tokenstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	v, ok, err := s.Get("github_token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	has, err := s.Has("github_token")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.Set("github_token", "ghp_abc"))

	v, ok, err = s.Get("github_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ghp_abc", v)

	has, err = s.Has("github_token")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.Set("github_token", "ghp_def"))

	v, _, err = s.Get("github_token")
	require.NoError(t, err)
	assert.Equal(t, "ghp_def", v)

	require.NoError(t, s.Clear("github_token"))
	require.NoError(t, s.Clear("github_token"), "clearing a missing key")

	_, ok, err = s.Get("github_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemory_EmptyValueIsNotHas(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("k", ""))

	has, err := m.Has("k")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestKeyring(t *testing.T) {
	keyring.MockInit()

	exerciseStore(t, NewKeyring("fragmenta-test"))
}

func TestKeyring_BackendError(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus unavailable"))
	t.Cleanup(keyring.MockInit)

	k := NewKeyring("fragmenta-test")

	err := k.Set("github_token", "x")
	require.Error(t, err)

	var kerr *KeyringError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "set", kerr.Operation)

	_, _, err = k.Get("github_token")
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "get", kerr.Operation)
}

func TestNew(t *testing.T) {
	keyring.MockInit()

	s, err := New(KindMemory, "svc")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = New(KindKeyring, "svc")
	require.NoError(t, err)
	assert.IsType(t, &Keyring{}, s)

	_, err = New("file", "svc")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestNew_KeyringUnavailableFallsBackToMemory(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus unavailable"))
	t.Cleanup(keyring.MockInit)

	s, err := New(KindKeyring, "svc")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	exerciseStore(t, s)
}

func TestKeyring_AvailableLeavesNoEntry(t *testing.T) {
	keyring.MockInit()

	k := NewKeyring("svc")
	require.True(t, k.Available())

	_, err := keyring.Get("svc", "__svc_keyring_test__")
	require.ErrorIs(t, err, keyring.ErrNotFound)
}
