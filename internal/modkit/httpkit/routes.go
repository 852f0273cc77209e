package httpkit

import "net/http"

// MountUnder carves a subrouter at prefix, applies the module middleware
// chain, and hands the subrouter to mount for route registration
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
