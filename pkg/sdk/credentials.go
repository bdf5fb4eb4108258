package sdk

// Role enumerates the portal's user roles.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Known reports whether the role is one of the enumerated portal roles.
// Sessions carrying anything else are treated as corrupt, not crashed on.
func (r Role) Known() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated user's identity snapshot as returned by the
// backend. It is replaced wholesale on login/register and cleared wholesale on
// logout; the client never mutates individual fields.
type Principal struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

// DisplayName returns the principal's full name, falling back to the username.
func (p Principal) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Username
	}
}

// Credentials bundles the Principal with the bearer token proving it.
// The two are written and cleared together; a record missing either half is
// never handed out by a CredentialStore.
type Credentials struct {
	Principal   Principal `json:"user"`
	AccessToken string    `json:"access_token"`
}

// Complete reports whether the credentials form a usable (principal, token)
// pair. Stores refuse to save and refuse to load anything incomplete.
func (c *Credentials) Complete() bool {
	return c != nil && c.AccessToken != "" && c.Principal.Username != ""
}

// CredentialStore persists the session snapshot across process restarts.
//
// LoadCredentials returns (nil, nil) when no session is stored OR when the
// stored record is unreadable or half-written: a corrupt session degrades to
// logged-out rather than surfacing a partial pair. DeleteCredentials is
// idempotent and safe to call on an empty store.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
