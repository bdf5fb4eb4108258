package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)
	return store
}

func storedCreds() *sdk.Credentials {
	return &sdk.Credentials{
		Principal: sdk.Principal{
			ID:       42,
			Username: "ada",
			Email:    "ada@example.com",
			Role:     sdk.RoleCandidate,
		},
		AccessToken: "token-xyz",
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveCredentials(storedCreds()))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "ada", loaded.Principal.Username)
	assert.Equal(t, sdk.RoleCandidate, loaded.Principal.Role)
	assert.Equal(t, "token-xyz", loaded.AccessToken)
}

func TestFileStoreLoadAbsentIsLoggedOut(t *testing.T) {
	store := newTestStore(t)
	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStoreRefusesIncompletePairs(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveCredentials(&sdk.Credentials{AccessToken: "orphan"})
	require.ErrorIs(t, err, sdk.ErrIncompleteCredentials)

	err = store.SaveCredentials(&sdk.Credentials{Principal: sdk.Principal{Username: "ada"}})
	require.ErrorIs(t, err, sdk.ErrIncompleteCredentials)

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStoreCorruptRecordsFailSafe(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json at all"},
		{"empty object", "{}"},
		{"token without principal", `{"access_token":"orphan"}`},
		{"principal without token", `{"user":{"id":1,"username":"ada"}}`},
		{"unparsable principal beside valid token", `{"user":"garbage","access_token":"tok"}`},
		{"principal missing username", `{"user":{"id":1},"access_token":"tok"}`},
		{"truncated write", `{"user":{"id":1,"username":"ada"},"access_to`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store, err := NewFileStoreAt(dir)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte(tt.raw), 0600))

			creds, err := store.LoadCredentials()
			require.NoError(t, err, "corruption must degrade to logged-out, not error")
			assert.Nil(t, creds)
		})
	}
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.DeleteCredentials(), "clearing an empty store must succeed")

	require.NoError(t, store.SaveCredentials(storedCreds()))
	require.NoError(t, store.DeleteCredentials())
	require.NoError(t, store.DeleteCredentials())

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestFileStoreOverwritesPreviousSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveCredentials(storedCreds()))

	next := storedCreds()
	next.Principal.Username = "grace"
	next.Principal.Role = sdk.RoleRecruiter
	next.AccessToken = "token-2"
	require.NoError(t, store.SaveCredentials(next))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "grace", loaded.Principal.Username)
	assert.Equal(t, "token-2", loaded.AccessToken)
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	dir := t.TempDir()
	store, err := NewFileStoreAt(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveCredentials(storedCreds()))

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
