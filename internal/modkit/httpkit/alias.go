// Package httpkit is the routing surface modules program against. It
// re-exports the platform http seam so module packages never import
// internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "sensutv/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// Response constructors, re-exported for module handlers

func OK(data any) Response     { return phttp.OK(data) }
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a body-less handler. A returned Response passes through
// untouched; any other value becomes the data of a 200 envelope
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
