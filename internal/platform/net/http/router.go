package http

import "net/http"

// Handler is the platform handler signature modules register
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the mounting surface handed to modules. The chi adapter is the
// only implementation in production; tests fake it freely
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux exposes the underlying handler for serving and for tests
	Mux() http.Handler
}
