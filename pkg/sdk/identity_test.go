package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServer serves the login and register endpoints with a fixed outcome.
func authServer(t *testing.T, status int, user Principal, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/", "/api/auth/register/":
			if status != http.StatusOK {
				w.WriteHeader(status)
				w.Write([]byte(`{"error":"Invalid credentials"}`))
				return
			}
			resp := map[string]any{
				"user": user,
				"tokens": map[string]string{
					"access":  token,
					"refresh": "refresh-" + token,
				},
			}
			json.NewEncoder(w).Encode(resp)
		case "/api/auth/profile/":
			auth := r.Header.Get("Authorization")
			if auth != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"token rejected"}`))
				return
			}
			json.NewEncoder(w).Encode(user)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestNewIdentityRehydratesFromStore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))

	client := NewClient("http://unused", store)
	identity := NewIdentity(store, client)

	state, principal := identity.State()
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, principal)
	assert.Equal(t, "ada", principal.Username)
}

func TestNewIdentityEmptyStoreIsAnonymous(t *testing.T) {
	store := NewMemoryStore()
	identity := NewIdentity(store, NewClient("http://unused", store))

	state, principal := identity.State()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, principal)
}

func TestLoginCommitsStoreBeforeNotifying(t *testing.T) {
	user := Principal{ID: 1, Username: "ada", Role: RoleCandidate}
	server := authServer(t, http.StatusOK, user, "fresh-token")
	defer server.Close()

	store := NewMemoryStore()
	client := NewClient(server.URL, store)
	identity := NewIdentity(store, client)

	var events []SessionEvent
	identity.Subscribe(func(ev SessionEvent) {
		// The store write must already be visible when the event arrives.
		creds, err := store.LoadCredentials()
		assert.NoError(t, err)
		if assert.NotNil(t, creds) {
			assert.Equal(t, "fresh-token", creds.AccessToken)
		}
		events = append(events, ev)
	})

	principal, err := identity.Login(context.Background(), "ada", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ada", principal.Username)

	state, _ := identity.State()
	assert.Equal(t, StateAuthenticated, state)

	require.Len(t, events, 1)
	assert.Equal(t, StateAuthenticated, events[0].State)
	assert.Equal(t, ReasonLogin, events[0].Reason)
	require.NotNil(t, events[0].Principal)
	assert.Equal(t, RoleCandidate, events[0].Principal.Role)
}

func TestLoginRejectionLeavesSessionUntouched(t *testing.T) {
	server := authServer(t, http.StatusUnauthorized, Principal{}, "")
	defer server.Close()

	store := NewMemoryStore()
	client := NewClient(server.URL, store)
	identity := NewIdentity(store, client)

	var events []SessionEvent
	identity.Subscribe(func(ev SessionEvent) { events = append(events, ev) })

	_, err := identity.Login(context.Background(), "ada", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid credentials")

	state, principal := identity.State()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, principal)
	assert.Empty(t, events, "a failed login from anonymous is not a transition")

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestRegisterCommitsSession(t *testing.T) {
	user := Principal{ID: 2, Username: "grace", Role: RoleRecruiter}
	server := authServer(t, http.StatusOK, user, "reg-token")
	defer server.Close()

	store := NewMemoryStore()
	identity := NewIdentity(store, NewClient(server.URL, store))

	var events []SessionEvent
	identity.Subscribe(func(ev SessionEvent) { events = append(events, ev) })

	principal, err := identity.Register(context.Background(), RegisterInput{
		Username: "grace",
		Email:    "grace@example.com",
		Password: "pw",
		Role:     RoleRecruiter,
	})
	require.NoError(t, err)
	assert.Equal(t, RoleRecruiter, principal.Role)

	require.Len(t, events, 1)
	assert.Equal(t, ReasonRegister, events[0].Reason)

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "reg-token", creds.AccessToken)
}

func TestLogoutClearsAndNotifiesOnce(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))
	identity := NewIdentity(store, NewClient("http://unused", store))

	var events []SessionEvent
	identity.Subscribe(func(ev SessionEvent) { events = append(events, ev) })

	require.NoError(t, identity.Logout())
	state, principal := identity.State()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, principal)

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)

	// Logging out again is a no-op and produces no second event.
	require.NoError(t, identity.Logout())
	require.Len(t, events, 1)
	assert.Equal(t, StateAnonymous, events[0].State)
	assert.Equal(t, ReasonLogout, events[0].Reason)
	assert.Nil(t, events[0].Principal)
}

func TestBackendRejectionConvergesOnLogout(t *testing.T) {
	user := Principal{ID: 1, Username: "ada", Role: RoleCandidate}
	server := authServer(t, http.StatusOK, user, "honored-token")
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(&Credentials{
		Principal:   user,
		AccessToken: "stale-token",
	}))

	client := NewClient(server.URL, store)
	identity := NewIdentity(store, client)

	var events []SessionEvent
	identity.Subscribe(func(ev SessionEvent) { events = append(events, ev) })

	// The stored token is not honored by the backend; the 401 must clear the
	// session and surface as a forced expiry, not an explicit logout.
	_, err := client.Profile(context.Background())
	require.True(t, IsUnauthorized(err))

	state, principal := identity.State()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, principal)

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)

	require.Len(t, events, 1)
	assert.Equal(t, StateAnonymous, events[0].State)
	assert.Equal(t, ReasonExpired, events[0].Reason)
}

func TestUnauthorizedWhileAnonymousProducesNoEvent(t *testing.T) {
	store := NewMemoryStore()
	client := NewClient("http://unused", store)
	identity := NewIdentity(store, client)

	var events []SessionEvent
	identity.Subscribe(func(ev SessionEvent) { events = append(events, ev) })

	identity.HandleUnauthorized()
	identity.HandleUnauthorized()

	state, _ := identity.State()
	assert.Equal(t, StateAnonymous, state)
	assert.Empty(t, events)
}

func TestAuthResponseMissingTokenIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":1,"username":"ada","role":"candidate"},"tokens":{}}`))
	}))
	defer server.Close()

	store := NewMemoryStore()
	identity := NewIdentity(store, NewClient(server.URL, store))

	_, err := identity.Login(context.Background(), "ada", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete auth response")

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
