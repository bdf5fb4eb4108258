package nav

import (
	"testing"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate() *sdk.Principal {
	return &sdk.Principal{ID: 1, Username: "ada", Role: sdk.RoleCandidate}
}

func recruiter() *sdk.Principal {
	return &sdk.Principal{ID: 2, Username: "grace", Role: sdk.RoleRecruiter}
}

func admin() *sdk.Principal {
	return &sdk.Principal{ID: 3, Username: "root", Role: sdk.RoleAdmin}
}

func TestEvaluateIsTotal(t *testing.T) {
	tests := []struct {
		name      string
		state     sdk.SessionState
		principal *sdk.Principal
		path      string
		want      Decision
	}{
		{"initializing defers everything", sdk.StateInitializing, nil, "/jobs", DecisionLoading},
		{"initializing defers even public views", sdk.StateInitializing, nil, "/login", DecisionLoading},

		{"anonymous may see login", sdk.StateAnonymous, nil, "/login", DecisionAllow},
		{"anonymous may see register", sdk.StateAnonymous, nil, "/register", DecisionAllow},
		{"anonymous denied dashboard", sdk.StateAnonymous, nil, "/", DecisionRedirectLogin},
		{"anonymous denied jobs", sdk.StateAnonymous, nil, "/jobs", DecisionRedirectLogin},
		{"anonymous denied admin views", sdk.StateAnonymous, nil, "/admin/users", DecisionRedirectLogin},

		{"authenticated open view", sdk.StateAuthenticated, candidate(), "/jobs", DecisionAllow},
		{"authenticated sees public views too", sdk.StateAuthenticated, candidate(), "/login", DecisionAllow},

		{"candidate allowed skills assessment", sdk.StateAuthenticated, candidate(), "/skills-assessment", DecisionAllow},
		{"candidate denied analytics", sdk.StateAuthenticated, candidate(), "/analytics", DecisionRedirectDefault},
		{"candidate denied admin users", sdk.StateAuthenticated, candidate(), "/admin/users", DecisionRedirectDefault},

		{"recruiter allowed analytics", sdk.StateAuthenticated, recruiter(), "/analytics", DecisionAllow},
		{"recruiter denied skills assessment", sdk.StateAuthenticated, recruiter(), "/skills-assessment", DecisionRedirectDefault},
		{"recruiter denied audit logs", sdk.StateAuthenticated, recruiter(), "/admin/audit-logs", DecisionRedirectDefault},

		{"admin allowed analytics", sdk.StateAuthenticated, admin(), "/analytics", DecisionAllow},
		{"admin allowed user management", sdk.StateAuthenticated, admin(), "/admin/users", DecisionAllow},
		{"admin allowed job management", sdk.StateAuthenticated, admin(), "/admin/jobs", DecisionAllow},
		{"admin allowed audit logs", sdk.StateAuthenticated, admin(), "/admin/audit-logs", DecisionAllow},
		{"admin denied skills assessment", sdk.StateAuthenticated, admin(), "/skills-assessment", DecisionRedirectDefault},

		{"nil principal on restricted view redirects to default", sdk.StateAuthenticated, nil, "/analytics", DecisionRedirectDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, ok := Lookup(tt.path)
			require.True(t, ok, "destination %s must be registered", tt.path)
			assert.Equal(t, tt.want, Evaluate(tt.state, tt.principal, dest))
		})
	}
}

func TestLanding(t *testing.T) {
	tests := []struct {
		role  sdk.Role
		title string
		known bool
	}{
		{sdk.RoleCandidate, "Candidate Dashboard", true},
		{sdk.RoleRecruiter, "Recruiter Dashboard", true},
		{sdk.RoleAdmin, "Admin Dashboard", true},
		{sdk.Role("superuser"), "", false},
		{sdk.Role(""), "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			title, ok := Landing(tt.role)
			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestLookupUnknownPath(t *testing.T) {
	_, ok := Lookup("/no-such-view")
	assert.False(t, ok)
}

func identityWith(t *testing.T, creds *sdk.Credentials) *sdk.Identity {
	t.Helper()
	store := sdk.NewMemoryStore()
	if creds != nil {
		require.NoError(t, store.SaveCredentials(creds))
	}
	return sdk.NewIdentity(store, sdk.NewClient("http://unused", store))
}

func TestNavigateAnonymousRedirectsToLogin(t *testing.T) {
	identity := identityWith(t, nil)

	out, ok := Navigate(identity, "/jobs")
	require.True(t, ok)
	assert.Equal(t, DecisionRedirectLogin, out.Decision)
	assert.Equal(t, "Job Listings", out.Dest.Title)
}

func TestNavigateUnauthorizedRoleGetsLanding(t *testing.T) {
	identity := identityWith(t, &sdk.Credentials{
		Principal:   *candidate(),
		AccessToken: "tok",
	})

	out, ok := Navigate(identity, "/admin/users")
	require.True(t, ok)
	assert.Equal(t, DecisionRedirectDefault, out.Decision)
	assert.Equal(t, "Candidate Dashboard", out.Landing)
}

func TestNavigateUnknownRoleDegradesToLogin(t *testing.T) {
	identity := identityWith(t, &sdk.Credentials{
		Principal:   sdk.Principal{ID: 9, Username: "odd", Role: sdk.Role("superuser")},
		AccessToken: "tok",
	})

	out, ok := Navigate(identity, "/analytics")
	require.True(t, ok)
	assert.Equal(t, DecisionRedirectLogin, out.Decision)
	assert.Empty(t, out.Landing)
}

func TestNavigateUnknownPath(t *testing.T) {
	identity := identityWith(t, nil)
	_, ok := Navigate(identity, "/no-such-view")
	assert.False(t, ok)
}

func TestNavigateAfterForcedExpiry(t *testing.T) {
	identity := identityWith(t, &sdk.Credentials{
		Principal:   *candidate(),
		AccessToken: "tok",
	})

	out, ok := Navigate(identity, "/jobs")
	require.True(t, ok)
	require.Equal(t, DecisionAllow, out.Decision)

	identity.HandleUnauthorized()

	out, ok = Navigate(identity, "/jobs")
	require.True(t, ok)
	assert.Equal(t, DecisionRedirectLogin, out.Decision)
}
