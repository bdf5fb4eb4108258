package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/auth"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"golang.org/x/oauth2"
)

// Provider yields the credential store, API client, and identity provider
// shared by all portalctl commands. Construction is lazy and happens at most
// once per process.
type Provider struct {
	serverURL   string
	apiOverride string
	bearerToken string // ephemeral token that bypasses the credential store (for CI)

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	clientOnce sync.Once
	client     *sdk.Client
	clientErr  error

	identityOnce sync.Once
	identity     *sdk.Identity
	identityErr  error
}

// NewProvider constructs a Provider bound to the given server URL. A
// non-empty apiOverride replaces the resolved base address verbatim.
func NewProvider(serverURL, apiOverride string) *Provider {
	return &Provider{serverURL: serverURL, apiOverride: apiOverride}
}

// SetBearerToken injects an ephemeral bearer token that is attached to every
// request without touching the credential store.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// Store returns the durable credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		p.store, p.storeErr = auth.NewFileStore()
	})
	return p.store, p.storeErr
}

// SDKClient returns the API client. With an ephemeral bearer token set, the
// underlying HTTP client attaches it via a static oauth2 token source and
// session persistence is skipped entirely.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.clientOnce.Do(func() {
		opts := []sdk.ClientOption{}
		if p.apiOverride != "" {
			opts = append(opts, sdk.WithAPIBaseURL(p.apiOverride))
		}

		if p.bearerToken != "" {
			source := oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: p.bearerToken,
				TokenType:   "Bearer",
			})
			httpClient := oauth2.NewClient(context.Background(), source)
			opts = append(opts, sdk.WithHTTPClient(httpClient))
			p.client = sdk.NewClient(p.serverURL, sdk.NewMemoryStore(), opts...)
			return
		}

		store, err := p.Store()
		if err != nil {
			p.clientErr = err
			return
		}
		p.client = sdk.NewClient(p.serverURL, store, opts...)
	})
	return p.client, p.clientErr
}

// Identity returns the session provider, constructing it from the store and
// client on first use. A forced logout (backend rejecting the stored
// credential) prints a one-time notice telling the user to log in again.
func (p *Provider) Identity() (*sdk.Identity, error) {
	p.identityOnce.Do(func() {
		client, err := p.SDKClient()
		if err != nil {
			p.identityErr = err
			return
		}
		store, err := p.Store()
		if err != nil {
			p.identityErr = err
			return
		}

		identity := sdk.NewIdentity(store, client)
		identity.Subscribe(func(ev sdk.SessionEvent) {
			if ev.State == sdk.StateAnonymous && ev.Reason == sdk.ReasonExpired {
				pterm.Warning.Println("Your session has expired; please run 'portalctl auth login' again.")
			}
		})
		p.identity = identity
	})
	return p.identity, p.identityErr
}

// HTTPClient exposes the raw HTTP client used for API calls, mainly so
// commands can share transport settings when talking to non-API endpoints.
func (p *Provider) HTTPClient() *http.Client {
	return http.DefaultClient
}
