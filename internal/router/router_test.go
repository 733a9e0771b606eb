package router

import (
	"testing"

	"boipoka-storefront/internal/domain"
	"boipoka-storefront/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatePublicRouteAlwaysRenders(t *testing.T) {
	for _, status := range []state.Status{
		state.StatusUninitialized, state.StatusLoading, state.StatusAuthenticated, state.StatusAnonymous,
	} {
		d := Gate(status, nil, false, "")
		assert.Equal(t, OutcomeRender, d.Outcome, "status %v", status)
	}
}

func TestGateProtectedRouteWhileLoading(t *testing.T) {
	// No flash of protected content and no premature redirect.
	for _, status := range []state.Status{state.StatusUninitialized, state.StatusLoading} {
		d := Gate(status, nil, true, "")
		assert.Equal(t, OutcomePlaceholder, d.Outcome, "status %v", status)
	}
}

func TestGateAnonymousRedirectsToLogin(t *testing.T) {
	d := Gate(state.StatusAnonymous, nil, true, "")
	assert.Equal(t, OutcomeRedirect, d.Outcome)
	assert.Equal(t, LoginPath, d.RedirectTo)
}

func TestGateUnderPrivilegedRedirectsToCatalog(t *testing.T) {
	customer := &domain.User{Role: domain.RoleCustomer}
	d := Gate(state.StatusAuthenticated, customer, true, domain.RoleModerator)
	assert.Equal(t, OutcomeRedirect, d.Outcome)
	assert.Equal(t, CatalogPath, d.RedirectTo)
}

func TestGateRoleHierarchy(t *testing.T) {
	cases := []struct {
		role    string
		minRole string
		allowed bool
	}{
		{domain.RoleCustomer, domain.RoleCustomer, true},
		{domain.RoleCustomer, domain.RoleModerator, false},
		{domain.RoleCustomer, domain.RoleAdmin, false},
		{domain.RoleModerator, domain.RoleModerator, true},
		{domain.RoleModerator, domain.RoleAdmin, false},
		{domain.RoleAdmin, domain.RoleModerator, true},
		{domain.RoleAdmin, domain.RoleAdmin, true},
	}
	for _, tc := range cases {
		d := Gate(state.StatusAuthenticated, &domain.User{Role: tc.role}, true, tc.minRole)
		if tc.allowed {
			assert.Equal(t, OutcomeRender, d.Outcome, "%s vs %s", tc.role, tc.minRole)
		} else {
			assert.Equal(t, OutcomeRedirect, d.Outcome, "%s vs %s", tc.role, tc.minRole)
		}
	}
}

func TestGateRoleCheckWithoutRequireAuth(t *testing.T) {
	// A role requirement implies authentication even when RequireAuth is unset.
	d := Gate(state.StatusAnonymous, nil, false, domain.RoleAdmin)
	assert.Equal(t, OutcomeRedirect, d.Outcome)
	assert.Equal(t, LoginPath, d.RedirectTo)
}

func testRouter() *Router {
	r := New()
	r.Handle(Route{Path: "/", Title: "Home"})
	r.Handle(Route{Path: "/books", Title: "Books"})
	r.Handle(Route{Path: "/books/", Title: "Book"})
	r.Handle(Route{Path: "/orders", Title: "Orders", RequireAuth: true})
	r.Handle(Route{Path: "/admin", Title: "Admin", RequireAuth: true, MinRole: domain.RoleModerator})
	return r
}

func TestResolveExactMatch(t *testing.T) {
	d := testRouter().Resolve("/books", state.StatusAnonymous, nil)
	require.NotNil(t, d.Route)
	assert.Equal(t, OutcomeRender, d.Outcome)
	assert.Equal(t, "Books", d.Route.Title)
	assert.Empty(t, d.Arg)
}

func TestResolvePrefixExtractsArg(t *testing.T) {
	d := testRouter().Resolve("/books/abc123", state.StatusAnonymous, nil)
	require.NotNil(t, d.Route)
	assert.Equal(t, "Book", d.Route.Title)
	assert.Equal(t, "abc123", d.Arg)
}

func TestResolveUnknownPathRedirectsHome(t *testing.T) {
	d := testRouter().Resolve("/no-such-page", state.StatusAuthenticated, &domain.User{Role: domain.RoleAdmin})
	assert.Equal(t, OutcomeRedirect, d.Outcome)
	assert.Equal(t, HomePath, d.RedirectTo)
}

func TestResolveAppliesGate(t *testing.T) {
	r := testRouter()

	d := r.Resolve("/orders", state.StatusAnonymous, nil)
	assert.Equal(t, OutcomeRedirect, d.Outcome)
	assert.Equal(t, LoginPath, d.RedirectTo)

	customer := &domain.User{Role: domain.RoleCustomer}
	d = r.Resolve("/admin", state.StatusAuthenticated, customer)
	assert.Equal(t, OutcomeRedirect, d.Outcome)
	assert.Equal(t, CatalogPath, d.RedirectTo)

	mod := &domain.User{Role: domain.RoleModerator}
	d = r.Resolve("/admin", state.StatusAuthenticated, mod)
	assert.Equal(t, OutcomeRender, d.Outcome)
}
