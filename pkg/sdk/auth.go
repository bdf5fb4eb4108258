package sdk

import (
	"context"
	"fmt"
)

// RegisterInput carries the profile fields for account creation.
// Role defaults to candidate on the backend when left empty.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

// authResponse is the shared success shape of login and register.
// Only the access token is kept; the client has no refresh flow.
type authResponse struct {
	User   Principal `json:"user"`
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
}

func (r authResponse) credentials() (*Credentials, error) {
	creds := &Credentials{
		Principal:   r.User,
		AccessToken: r.Tokens.Access,
	}
	if !creds.Complete() {
		return nil, fmt.Errorf("backend returned an incomplete auth response")
	}
	return creds, nil
}

// LoginUser exchanges a username and password for a session snapshot.
// Bad credentials surface as a 401 APIError.
func (c *Client) LoginUser(ctx context.Context, username, password string) (*Credentials, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var resp authResponse
	if err := c.post(ctx, "/auth/login/", body, &resp); err != nil {
		return nil, err
	}
	return resp.credentials()
}

// RegisterUser creates an account and returns the session snapshot for it.
// Validation failures (duplicate username, weak password) surface as
// APIErrors with the backend's message.
func (c *Client) RegisterUser(ctx context.Context, input RegisterInput) (*Credentials, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/register/", input, &resp); err != nil {
		return nil, err
	}
	return resp.credentials()
}

// Profile fetches the authenticated principal from the backend. A 401 here
// means the stored token is no longer honored.
func (c *Client) Profile(ctx context.Context) (*Principal, error) {
	var principal Principal
	if err := c.get(ctx, "/auth/profile/", nil, &principal); err != nil {
		return nil, err
	}
	return &principal, nil
}
