package mux

import (
	"net/http"
	"strings"
)

// Serve is the http.Handler produced by a Builder.
type Serve struct {
	hosts map[string]*PathMux
	all   *PathMux
}

func methodNotAllowed(w http.ResponseWriter, allowed []string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w,
		http.StatusText(http.StatusMethodNotAllowed),
		http.StatusMethodNotAllowed)
}

func (s *Serve) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var allowed []string

	if hh := s.hosts[hostWithoutPort(r.Host)]; hh != nil {
		ph, a := hh.findHandler(r.Method, r.URL.Path)
		if ph != nil {
			ph.ServeHTTP(w, r)
			return
		}
		allowed = a
	}

	ph, a := s.all.findHandler(r.Method, r.URL.Path)
	if ph != nil {
		ph.ServeHTTP(w, r)
		return
	}

	if allowed == nil {
		allowed = a
	}

	if len(allowed) > 0 {
		methodNotAllowed(w, allowed)
		return
	}

	http.NotFound(w, r)
}
