package router

import (
	"context"
	"strings"

	"boipoka-storefront/internal/domain"
	"boipoka-storefront/internal/state"
)

// Outcome says what the shell should do with a resolved path.
type Outcome int

const (
	// OutcomePlaceholder renders a neutral loading indicator: the session
	// has not resolved yet, so protected content must not appear and no
	// redirect may fire.
	OutcomePlaceholder Outcome = iota
	OutcomeRender
	OutcomeRedirect
)

// Handler renders a view. Arg carries the path remainder for parameterized
// routes (e.g. a book ID). The returned string is the next path to
// navigate to, or "" to stay.
type Handler func(ctx context.Context, arg string) string

// Route is one navigable page.
type Route struct {
	Path        string
	Title       string
	RequireAuth bool
	// MinRole names the least privileged role allowed, using the domain
	// role constants. Empty means any authenticated user (when
	// RequireAuth is set) or anyone at all.
	MinRole string
	Handler Handler
}

// Decision is the gate's verdict for a navigation attempt.
type Decision struct {
	Outcome    Outcome
	RedirectTo string
	Route      *Route
	Arg        string
}

// Paths the gate redirects to.
const (
	LoginPath   = "/login"
	CatalogPath = "/books"
	HomePath    = "/"
)

// Gate decides whether a view may render for the given session state. It
// is a pure function: while the session is loading nothing protected
// renders and nothing redirects; once resolved, anonymous users go to
// login and under-privileged users go to the catalog.
func Gate(status state.Status, user *domain.User, requireAuth bool, minRole string) Decision {
	if !requireAuth && minRole == "" {
		return Decision{Outcome: OutcomeRender}
	}
	if status == state.StatusUninitialized || status == state.StatusLoading {
		return Decision{Outcome: OutcomePlaceholder}
	}
	if user == nil {
		return Decision{Outcome: OutcomeRedirect, RedirectTo: LoginPath}
	}
	if minRole != "" && !domain.RoleAtLeast(user.Role, minRole) {
		return Decision{Outcome: OutcomeRedirect, RedirectTo: CatalogPath}
	}
	return Decision{Outcome: OutcomeRender}
}

// Router maps paths to routes and applies the gate on resolution.
type Router struct {
	exact    map[string]*Route
	prefixes []*Route // paths ending in "/", matched longest-first
}

func New() *Router {
	return &Router{exact: make(map[string]*Route)}
}

// Handle registers a route. A path ending in "/" takes the remainder of
// the navigated path as its argument.
func (r *Router) Handle(route Route) {
	rt := route
	if strings.HasSuffix(rt.Path, "/") && rt.Path != "/" {
		r.prefixes = append(r.prefixes, &rt)
		return
	}
	r.exact[rt.Path] = &rt
}

// Resolve finds the route for path and gates it against the session.
// Unknown paths redirect home.
func (r *Router) Resolve(path string, status state.Status, user *domain.User) Decision {
	route, arg := r.match(path)
	if route == nil {
		return Decision{Outcome: OutcomeRedirect, RedirectTo: HomePath}
	}
	decision := Gate(status, user, route.RequireAuth, route.MinRole)
	decision.Route = route
	decision.Arg = arg
	return decision
}

func (r *Router) match(path string) (*Route, string) {
	if route, ok := r.exact[path]; ok {
		return route, ""
	}
	var best *Route
	for _, route := range r.prefixes {
		if strings.HasPrefix(path, route.Path) && (best == nil || len(route.Path) > len(best.Path)) {
			best = route
		}
	}
	if best == nil {
		return nil, ""
	}
	return best, strings.TrimPrefix(path, best.Path)
}
