package runtime

import (
	"context"
	"net/http"
)

// Predicate decides whether a route entry matches a request.
type Predicate func(method, path string) bool

// Exact matches method and path by exact string comparison.
func Exact(method, path string) Predicate {
	return func(m, p string) bool {
		return m == method && p == path
	}
}

type routerEntry struct {
	match Predicate
	route Route
}

// Router selects a route for a request. Entries are evaluated in
// order, the first match wins. If no entry matches, the fallback
// route is selected. A Router is immutable once created.
type Router struct {
	entries  []routerEntry
	fallback Route
}

// NewRouter creates a router matching each route exactly on its method
// and path, in table order.
func NewRouter(routes Routes) *Router {
	entries := make([]routerEntry, 0, len(routes))
	for _, route := range routes {
		entries = append(entries, routerEntry{
			match: Exact(route.Method, route.Path),
			route: route,
		})
	}

	return &Router{
		entries:  entries,
		fallback: notFoundRoute,
	}
}

// Match returns the first matching route. If none matches, it returns
// the fallback route and false.
func (r *Router) Match(method, path string) (Route, bool) {
	for _, entry := range r.entries {
		if entry.match(method, path) {
			return entry.route, true
		}
	}

	return r.fallback, false
}

var notFoundRoute = Route{
	Handle: func(_ context.Context, _ Call) Reply {
		return TextReply(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	},
}
