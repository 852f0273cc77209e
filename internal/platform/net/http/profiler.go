package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes the chi pprof mux under prefix when enabled.
// The endpoints end up at prefix/pprof/...
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	pprof := stdhttp.StripPrefix(prefix, chimw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		pprof.ServeHTTP(w, req)
	}
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
