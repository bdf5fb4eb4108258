package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleKnown(t *testing.T) {
	assert.True(t, RoleCandidate.Known())
	assert.True(t, RoleRecruiter.Known())
	assert.True(t, RoleAdmin.Known())
	assert.False(t, Role("").Known())
	assert.False(t, Role("superuser").Known())
}

func TestPrincipalDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		want      string
	}{
		{"full name", Principal{Username: "ada", FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Principal{Username: "ada", FirstName: "Ada"}, "Ada"},
		{"username fallback", Principal{Username: "ada"}, "ada"},
		{"last without first falls back", Principal{Username: "ada", LastName: "Lovelace"}, "ada"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.DisplayName())
		})
	}
}

func TestCredentialsComplete(t *testing.T) {
	tests := []struct {
		name  string
		creds *Credentials
		want  bool
	}{
		{"nil", nil, false},
		{"empty", &Credentials{}, false},
		{"token without principal", &Credentials{AccessToken: "t"}, false},
		{"principal without token", &Credentials{Principal: Principal{Username: "ada"}}, false},
		{"complete", &Credentials{Principal: Principal{Username: "ada"}, AccessToken: "t"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creds.Complete())
		})
	}
}

func TestMemoryStoreRefusesIncompletePairs(t *testing.T) {
	store := NewMemoryStore()

	err := store.SaveCredentials(&Credentials{AccessToken: "orphan-token"})
	require.ErrorIs(t, err, ErrIncompleteCredentials)

	err = store.SaveCredentials(&Credentials{Principal: Principal{Username: "ada"}})
	require.ErrorIs(t, err, ErrIncompleteCredentials)

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds, "a refused save must leave nothing behind")
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "ada", loaded.Principal.Username)
	assert.Equal(t, "token-abc", loaded.AccessToken)

	// The returned snapshot is a copy; mutating it must not corrupt the store.
	loaded.AccessToken = ""
	again, err := store.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "token-abc", again.AccessToken)
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.DeleteCredentials())

	require.NoError(t, store.SaveCredentials(testCredentials()))
	require.NoError(t, store.DeleteCredentials())
	require.NoError(t, store.DeleteCredentials())

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
