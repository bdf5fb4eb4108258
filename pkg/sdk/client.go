package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultAPIRoot is the fixed path the backend mounts its API under. The same
// root is used whether the backend is co-hosted or reached through a dev
// proxy; only an explicit override changes the resolved address.
const DefaultAPIRoot = "/api"

// ResolveBaseURL computes the API base address. An explicit override is used
// verbatim; otherwise the fixed API root is appended to the server URL.
func ResolveBaseURL(serverURL, override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return strings.TrimRight(serverURL, "/") + DefaultAPIRoot
}

// ClientOptions configures Client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	APIBaseURL string // verbatim override of the resolved base URL
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithAPIBaseURL sets an explicit API base address, bypassing the default
// server URL + API root resolution.
func WithAPIBaseURL(baseURL string) ClientOption {
	return func(opts *ClientOptions) {
		opts.APIBaseURL = baseURL
	}
}

// Client is the single point of outbound traffic to the portal backend.
//
// Before every request it reads the current token from the CredentialStore
// and attaches it as a bearer header; an absent token sends the request
// unauthenticated. Any 401 response clears the store, fires the registered
// unauthorized handler, and propagates the rejection to the caller. The
// client does not retry, dedupe, or rate-limit.
type Client struct {
	baseURL string
	http    *http.Client
	store   CredentialStore

	onUnauthorized func()
	handling401    atomic.Bool
}

// NewClient creates a portal API client rooted at the address resolved from
// serverURL (see ResolveBaseURL). The store supplies the bearer token per
// request and is cleared when the backend rejects it.
func NewClient(serverURL string, store CredentialStore, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Client{
		baseURL: ResolveBaseURL(serverURL, opts.APIBaseURL),
		http:    opts.HTTPClient,
		store:   store,
	}
}

// BaseURL returns the resolved API base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetUnauthorizedHandler registers the callback invoked when the backend
// rejects the attached credential. The handler fires at most once per
// rejected response and is never re-entered: 401s observed while a handler
// is already running still clear the store and propagate, but do not fire
// the handler again.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send attaches the current credential, executes the request, and applies the
// inbound 401 interception. All Client entry points funnel through here.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("X-Request-ID", uuid.NewString())

	if creds, err := c.store.LoadCredentials(); err == nil && creds != nil {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := decodeAPIError(resp)
		c.handleUnauthorized()
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) handleUnauthorized() {
	// Clearing is unconditional and idempotent; the handler is guarded so a
	// 401 triggered from inside the handler cannot loop back into it.
	_ = c.store.DeleteCredentials()

	if c.onUnauthorized == nil {
		return
	}
	if !c.handling401.CompareAndSwap(false, true) {
		return
	}
	defer c.handling401.Store(false)
	c.onUnauthorized()
}
