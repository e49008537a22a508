package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateIsAdmin(t *testing.T) {
	gate := NewGate(NewMemStore())
	assert.False(t, gate.IsAdmin())

	require.NoError(t, gate.Login("tok", RoleAdmin))
	assert.True(t, gate.IsAdmin())
	assert.Equal(t, "tok", gate.Token())
}

func TestGateNonAdminRole(t *testing.T) {
	gate := NewGate(NewMemStore())
	require.NoError(t, gate.Login("tok", "user"))
	assert.False(t, gate.IsAdmin())
	// Token is still readable even when the role is not admin
	assert.Equal(t, "tok", gate.Token())
}

func TestGateLogoutImmediatelyAfterLogin(t *testing.T) {
	gate := NewGate(NewMemStore())
	require.NoError(t, gate.Login("tok", RoleAdmin))
	require.NoError(t, gate.Logout())

	assert.False(t, gate.IsAdmin())
	assert.Empty(t, gate.Token())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	// Absent file reads as an empty session
	token, role, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, role)

	require.NoError(t, store.Set("tok-123", RoleAdmin))

	token, role, err = store.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, RoleAdmin, role)

	require.NoError(t, store.Clear())
	token, _, err = store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is not an error
	require.NoError(t, store.Clear())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := NewFileStore(path)
	token, role, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, role)
}

func TestGateWithFileStore(t *testing.T) {
	gate := NewGate(NewFileStore(filepath.Join(t.TempDir(), "session.json")))
	require.NoError(t, gate.Login("tok", RoleAdmin))
	assert.True(t, gate.IsAdmin())
	require.NoError(t, gate.Logout())
	assert.False(t, gate.IsAdmin())
}
