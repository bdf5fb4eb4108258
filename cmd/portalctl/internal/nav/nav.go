package nav

import (
	"slices"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
)

// Decision is the outcome of evaluating a navigation attempt. Every
// (session state, destination) pair maps to exactly one Decision; there is
// no error outcome at this layer.
type Decision int

const (
	// DecisionLoading means the session is still being resolved; render a
	// neutral indicator and nothing else.
	DecisionLoading Decision = iota
	// DecisionAllow means the destination may render.
	DecisionAllow
	// DecisionRedirectLogin sends the visitor to the login view.
	DecisionRedirectLogin
	// DecisionRedirectDefault sends an authenticated but unauthorized user
	// to their default landing view, not to login.
	DecisionRedirectDefault
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectDefault:
		return "redirect-default"
	}
	return "unknown"
}

// Destination is a navigable view. An empty Roles set on a non-public
// destination means any authenticated role may enter.
type Destination struct {
	Path   string
	Title  string
	Public bool
	Roles  []sdk.Role
}

var destinations = []Destination{
	{Path: "/login", Title: "Login", Public: true},
	{Path: "/register", Title: "Register", Public: true},
	{Path: "/", Title: "Dashboard"},
	{Path: "/jobs", Title: "Job Listings"},
	{Path: "/analytics", Title: "Analytics", Roles: []sdk.Role{sdk.RoleRecruiter, sdk.RoleAdmin}},
	{Path: "/admin/users", Title: "User Management", Roles: []sdk.Role{sdk.RoleAdmin}},
	{Path: "/admin/jobs", Title: "Job Management", Roles: []sdk.Role{sdk.RoleAdmin}},
	{Path: "/admin/audit-logs", Title: "Audit Logs", Roles: []sdk.Role{sdk.RoleAdmin}},
	{Path: "/skills-assessment", Title: "Skills Assessment", Roles: []sdk.Role{sdk.RoleCandidate}},
}

// Lookup resolves a path to its registered destination.
func Lookup(path string) (Destination, bool) {
	for _, dest := range destinations {
		if dest.Path == path {
			return dest, true
		}
	}
	return Destination{}, false
}

// Destinations returns the registered views in declaration order.
func Destinations() []Destination {
	return slices.Clone(destinations)
}

// Evaluate is the route guard: a pure, total decision over the current
// session state and the requested destination.
func Evaluate(state sdk.SessionState, principal *sdk.Principal, dest Destination) Decision {
	if state == sdk.StateInitializing {
		return DecisionLoading
	}
	if dest.Public {
		return DecisionAllow
	}

	switch state {
	case sdk.StateAnonymous:
		return DecisionRedirectLogin
	case sdk.StateAuthenticated:
		if len(dest.Roles) == 0 {
			return DecisionAllow
		}
		if principal != nil && slices.Contains(dest.Roles, principal.Role) {
			return DecisionAllow
		}
		return DecisionRedirectDefault
	}
	// Unreachable for the enumerated states; fail closed regardless.
	return DecisionRedirectLogin
}

// Landing maps an authenticated role to its default dashboard view. An
// unrecognized role yields ok=false: the session is treated as corrupt and
// the user is sent back to login instead of crashing.
func Landing(role sdk.Role) (title string, ok bool) {
	switch role {
	case sdk.RoleCandidate:
		return "Candidate Dashboard", true
	case sdk.RoleRecruiter:
		return "Recruiter Dashboard", true
	case sdk.RoleAdmin:
		return "Admin Dashboard", true
	default:
		return "", false
	}
}

// Outcome is a resolved navigation: the guard decision plus, for
// redirect-default, the landing view it redirects to.
type Outcome struct {
	Decision Decision
	Dest     Destination
	Landing  string
}

// Navigate evaluates the guard for path against the identity's current
// state. A redirect-default outcome carries the role's landing view; if the
// role itself is unrecognized the outcome degrades to redirect-login.
func Navigate(identity *sdk.Identity, path string) (Outcome, bool) {
	dest, ok := Lookup(path)
	if !ok {
		return Outcome{}, false
	}

	state, principal := identity.State()
	out := Outcome{Decision: Evaluate(state, principal, dest), Dest: dest}

	if out.Decision == DecisionRedirectDefault {
		landing, known := Landing(principal.Role)
		if !known {
			out.Decision = DecisionRedirectLogin
		} else {
			out.Landing = landing
		}
	}
	return out, true
}
