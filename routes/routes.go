// Package routes is the navigation table of the dashboard: which paths are
// public and which belong to a role's protected subtree.
package routes

import (
	"net/http"
	"strings"

	"github.com/cccteam/rolegate/roles"
	"github.com/go-chi/chi/v5"
)

// Kind classifies a route.
type Kind int

const (
	// NotFound is returned for paths outside the table.
	NotFound Kind = iota
	Public
	Protected
)

func (k Kind) String() string {
	switch k {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "not found"
	}
}

// Route is a resolved entry of the navigation table.
type Route struct {
	Pattern string
	Kind    Kind

	// Role is the role named by the path. For Protected routes it is the role
	// a session must hold.
	Role roles.Role
}

const (
	Landing   = "/"
	Login     = "/login/{role}"
	Dashboard = "/dashboard/{role}"
)

// Table lists every route with the role parameter unresolved.
func Table() []Route {
	return []Route{
		{Pattern: Landing, Kind: Public},
		{Pattern: Login, Kind: Public},
		{Pattern: Dashboard, Kind: Protected},
	}
}

var table = newMatcher(Table())

type matcher struct {
	mux       *chi.Mux
	byPattern map[string]Route
}

// newMatcher registers routes on a chi mux. A protected route also covers
// every path below it.
func newMatcher(routes []Route) *matcher {
	m := &matcher{
		mux:       chi.NewRouter(),
		byPattern: make(map[string]Route),
	}

	noop := func(http.ResponseWriter, *http.Request) {}
	for _, r := range routes {
		m.mux.Get(r.Pattern, noop)
		m.byPattern[r.Pattern] = r
		if r.Kind == Protected {
			m.mux.Get(r.Pattern+"/*", noop)
			m.byPattern[r.Pattern+"/*"] = r
		}
	}

	return m
}

func (m *matcher) match(path string) (Route, bool) {
	if path != Landing {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		path = Landing
	}

	rctx := chi.NewRouteContext()
	if !m.mux.Match(rctx, http.MethodGet, path) {
		return Route{}, false
	}

	route, ok := m.byPattern[rctx.RoutePattern()]
	if !ok {
		return Route{}, false
	}

	if raw := rctx.URLParam("role"); raw != "" {
		role, ok := roles.Parse(raw)
		if !ok {
			return Route{}, false
		}
		route.Role = role
	}

	return route, true
}

// Match resolves path against the table. Any path below /dashboard/{role} is
// part of that role's protected subtree. A trailing slash is ignored.
func Match(path string) (Route, bool) {
	return table.match(path)
}
