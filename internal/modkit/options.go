package modkit

import "net/http"

// Option mutates the Built wiring for a module before it is returned
type Option func(*Built)

// WithName sets the module name used in logs and the registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts the module under a path prefix
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends per-module middleware in mount order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module a port set owned by another module.
// The concrete type is whatever the importing module declares
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithSwagger toggles the swagger UI for this module when mounted
func WithSwagger(enabled bool) Option {
	return func(b *Built) { b.SwaggerOn = enabled }
}
