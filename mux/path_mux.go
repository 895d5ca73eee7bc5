package mux

import (
	"net/http"
	"sort"
	"strings"
)

type route struct {
	path    string
	methods []string
	hdr     http.Handler
}

func (r *route) allows(method string) bool {
	if len(r.methods) == 0 {
		return true
	}

	for _, m := range r.methods {
		if m == method {
			return true
		}
	}

	// HEAD is served by any GET route.
	return method == http.MethodHead && r.allows(http.MethodGet)
}

// PathMux is a mux that routes on request path and, optionally, method.
type PathMux struct {
	routes []*route
}

// Handle associates a new handler to a path for all methods. Paths are
// matched consistent with net.ServeMux in the go standard library, except
// that host routes are not supported.
func (m *PathMux) Handle(path string, h http.Handler) *PathMux {
	return m.HandleMethods(path, h)
}

// HandleFunc is identical to Handle but accepts a function instead of a Handler.
func (m *PathMux) HandleFunc(path string, h func(w http.ResponseWriter, r *http.Request)) *PathMux {
	return m.Handle(path, http.HandlerFunc(h))
}

// HandleMethods associates a handler to a path for only the given methods. A
// request for the path with any other method is answered with 405 unless
// another route for the same path accepts it.
func (m *PathMux) HandleMethods(path string, h http.Handler, methods ...string) *PathMux {
	if path == "" {
		panic("cannot route to empty path")
	}

	m.routes = append(m.routes, &route{
		path:    path,
		methods: methods,
		hdr:     h,
	})

	return m
}

func (m *PathMux) build() {
	// the sort is stable so routes of the same length keep registration order.
	sort.SliceStable(m.routes, func(i, j int) bool {
		return len(m.routes[i].path) > len(m.routes[j].path)
	})
}

func pathDoesMatch(route, path string) bool {
	if route[len(route)-1] != '/' {
		return path == route
	}

	return strings.HasPrefix(path, route)
}

// findHandler returns the handler for the request along with the methods the
// longest matching path would accept when none of its routes accept the
// request method.
func (m *PathMux) findHandler(method, path string) (http.Handler, []string) {
	// routes were sorted during build time by decreasing length, making
	// it possible to terminate early in this loop.
	var matched string
	var allowed []string
	for _, route := range m.routes {
		if matched != "" && route.path != matched {
			break
		}

		if !pathDoesMatch(route.path, path) {
			continue
		}

		if route.allows(method) {
			return route.hdr, nil
		}

		matched = route.path
		allowed = append(allowed, route.methods...)
	}

	return nil, allowed
}
