package httpkit

import "net/http"

// Get registers a body-less handler and wraps the result in the envelope.
// The status surface is read only, so GET is the only verb modules mount.
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
