package sdk

import (
	"context"
	"fmt"
	"sync"
)

// SessionState is the Identity provider's single state variable.
type SessionState int

const (
	// StateInitializing means the stored session has not been examined yet.
	// Consumers must treat it as "decision pending" and render nothing.
	StateInitializing SessionState = iota
	// StateAnonymous means no session exists.
	StateAnonymous
	// StateAuthenticated means a complete (principal, token) pair is live.
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return fmt.Sprintf("session-state(%d)", int(s))
}

// SessionReason tags a session transition with what caused it, so consumers
// can tell a forced expiry apart from an explicit logout.
type SessionReason int

const (
	ReasonLogin SessionReason = iota
	ReasonRegister
	ReasonLogout
	ReasonExpired
)

// SessionEvent is delivered to subscribers after every state transition.
// By the time a subscriber sees it, the store write for the transition has
// already committed.
type SessionEvent struct {
	State     SessionState
	Principal *Principal
	Reason    SessionReason
}

// SessionListener observes session transitions.
type SessionListener func(SessionEvent)

// Identity owns the session lifecycle: it rehydrates from the store at
// construction, performs login/register/logout against the backend, and
// notifies subscribers of every transition. It is the only writer of
// in-memory session state; the store is only ever touched through its own
// save/load/delete operations.
type Identity struct {
	store  CredentialStore
	client *Client

	mu        sync.RWMutex
	state     SessionState
	principal *Principal
	listeners []SessionListener
}

// NewIdentity constructs the provider and resolves the initial state from the
// store exactly once: a complete stored snapshot yields authenticated, an
// absent or corrupt one yields anonymous. It also wires itself as the
// client's unauthorized handler so a backend rejection anywhere converges on
// the same anonymous state as an explicit logout.
func NewIdentity(store CredentialStore, client *Client) *Identity {
	id := &Identity{
		store:  store,
		client: client,
		state:  StateInitializing,
	}

	if creds, err := store.LoadCredentials(); err == nil && creds != nil {
		principal := creds.Principal
		id.state = StateAuthenticated
		id.principal = &principal
	} else {
		id.state = StateAnonymous
	}

	client.SetUnauthorizedHandler(id.HandleUnauthorized)
	return id
}

// State returns the current session state and, when authenticated, a copy of
// the principal.
func (id *Identity) State() (SessionState, *Principal) {
	id.mu.RLock()
	defer id.mu.RUnlock()
	if id.principal == nil {
		return id.state, nil
	}
	principal := *id.principal
	return id.state, &principal
}

// Subscribe registers a listener for session transitions. Listeners are
// invoked synchronously, after the corresponding store write has committed.
func (id *Identity) Subscribe(fn SessionListener) {
	id.mu.Lock()
	defer id.mu.Unlock()
	id.listeners = append(id.listeners, fn)
}

// Login authenticates against the backend and, on success, commits the new
// session: store write first, then the in-memory transition, then subscriber
// notification. On rejection the state and store are untouched and the error
// is returned for display.
func (id *Identity) Login(ctx context.Context, username, password string) (*Principal, error) {
	creds, err := id.client.LoginUser(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return id.commit(creds, ReasonLogin)
}

// Register creates an account and commits the returned session exactly like
// Login does.
func (id *Identity) Register(ctx context.Context, input RegisterInput) (*Principal, error) {
	creds, err := id.client.RegisterUser(ctx, input)
	if err != nil {
		return nil, err
	}
	return id.commit(creds, ReasonRegister)
}

// Logout clears the store and resets to anonymous. Safe to call when already
// logged out.
func (id *Identity) Logout() error {
	if err := id.store.DeleteCredentials(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	id.transitionAnonymous(ReasonLogout)
	return nil
}

// HandleUnauthorized is the forced-clear path driven by the request gateway
// observing a 401. It converges on the same anonymous state as Logout. A 401
// while already anonymous (e.g. a failed login attempt) is not a transition
// and produces no event.
func (id *Identity) HandleUnauthorized() {
	id.mu.RLock()
	authenticated := id.state == StateAuthenticated
	id.mu.RUnlock()
	if !authenticated {
		return
	}

	_ = id.store.DeleteCredentials()
	id.transitionAnonymous(ReasonExpired)
}

func (id *Identity) commit(creds *Credentials, reason SessionReason) (*Principal, error) {
	// The store write must be observably committed before any consumer hears
	// about the new state, so a guard re-evaluation triggered by the
	// notification always sees a fully-written session.
	if err := id.store.SaveCredentials(creds); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	principal := creds.Principal

	id.mu.Lock()
	id.state = StateAuthenticated
	id.principal = &principal
	listeners := append([]SessionListener(nil), id.listeners...)
	id.mu.Unlock()

	notified := principal
	for _, fn := range listeners {
		fn(SessionEvent{State: StateAuthenticated, Principal: &notified, Reason: reason})
	}
	return &principal, nil
}

func (id *Identity) transitionAnonymous(reason SessionReason) {
	id.mu.Lock()
	alreadyAnonymous := id.state == StateAnonymous
	id.state = StateAnonymous
	id.principal = nil
	listeners := append([]SessionListener(nil), id.listeners...)
	id.mu.Unlock()

	if alreadyAnonymous {
		return
	}
	for _, fn := range listeners {
		fn(SessionEvent{State: StateAnonymous, Reason: reason})
	}
}
