package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() *Credentials {
	return &Credentials{
		Principal: Principal{
			ID:       7,
			Username: "ada",
			Email:    "ada@example.com",
			Role:     RoleCandidate,
		},
		AccessToken: "token-abc",
	}
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
		override  string
		want      string
	}{
		{"default root", "http://localhost:8000", "", "http://localhost:8000/api"},
		{"trailing slash trimmed", "http://localhost:8000/", "", "http://localhost:8000/api"},
		{"override verbatim", "http://localhost:8000", "https://api.example.com/v2", "https://api.example.com/v2"},
		{"override trailing slash trimmed", "ignored", "https://api.example.com/v2/", "https://api.example.com/v2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseURL(tt.serverURL, tt.override))
		})
	}
}

func TestClientAttachesBearerFromStore(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))

	client := NewClient(server.URL, store)
	require.NoError(t, client.get(context.Background(), "/auth/profile/", nil, nil))

	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientSendsUnauthenticatedWhenStoreEmpty(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, NewMemoryStore())
	require.NoError(t, client.get(context.Background(), "/jobs/jobs/", nil, nil))

	assert.Empty(t, gotAuth)
	assert.False(t, sawHeader, "request should carry no Authorization header at all")
}

func TestClientReadsStorePerRequest(t *testing.T) {
	var auths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := NewMemoryStore()
	client := NewClient(server.URL, store)

	require.NoError(t, client.get(context.Background(), "/jobs/jobs/", nil, nil))
	require.NoError(t, store.SaveCredentials(testCredentials()))
	require.NoError(t, client.get(context.Background(), "/jobs/jobs/", nil, nil))

	require.Len(t, auths, 2)
	assert.Empty(t, auths[0])
	assert.Equal(t, "Bearer token-abc", auths[1])
}

func TestClientUnauthorizedClearsStoreAndFiresHandlerOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))

	client := NewClient(server.URL, store)
	var fired atomic.Int32
	client.SetUnauthorizedHandler(func() {
		fired.Add(1)
		creds, err := store.LoadCredentials()
		assert.NoError(t, err)
		assert.Nil(t, creds, "store must be cleared before the handler runs")
	})

	err := client.get(context.Background(), "/auth/profile/", nil, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expired")
	assert.Equal(t, int32(1), fired.Load())

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestClientUnauthorizedHandlerNotReentered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))

	client := NewClient(server.URL, store)
	var fired atomic.Int32
	client.SetUnauthorizedHandler(func() {
		if fired.Add(1) > 1 {
			t.Fatal("handler re-entered")
		}
		// A request made from inside the handler that is rejected again must
		// not re-fire the handler.
		err := client.get(context.Background(), "/auth/profile/", nil, nil)
		assert.True(t, IsUnauthorized(err))
	})

	err := client.get(context.Background(), "/auth/profile/", nil, nil)
	require.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), fired.Load())
}

func TestClientNonAuthErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"forbidden", http.StatusForbidden, `{"detail":"not yours"}`, "not yours"},
		{"not found", http.StatusNotFound, `{"error":"no such job"}`, "no such job"},
		{"server error message field", http.StatusInternalServerError, `{"message":"boom"}`, "boom"},
		{"unparsable body", http.StatusBadGateway, `<html>bad gateway</html>`, "<html>bad gateway</html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			store := NewMemoryStore()
			require.NoError(t, store.SaveCredentials(testCredentials()))

			client := NewClient(server.URL, store)
			var fired atomic.Int32
			client.SetUnauthorizedHandler(func() { fired.Add(1) })

			err := client.get(context.Background(), "/jobs/jobs/", nil, nil)
			require.Error(t, err)
			assert.False(t, IsUnauthorized(err))
			assert.Contains(t, err.Error(), tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)

			assert.Equal(t, int32(0), fired.Load(), "handler must only fire on 401")
			creds, err := store.LoadCredentials()
			require.NoError(t, err)
			assert.NotNil(t, creds, "non-401 errors must not clear the session")
		})
	}
}

func TestClientNoAutomaticRetry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(testCredentials()))

	client := NewClient(server.URL, store)
	err := client.get(context.Background(), "/auth/profile/", nil, nil)
	require.True(t, IsUnauthorized(err))
	assert.Equal(t, int32(1), hits.Load(), "a rejected request must not be replayed")
}
