// Package dockit provides common types and helpers for document repository implementations
package dockit

import (
	"sensutv/internal/platform/store"
)

// Docs is the minimal read and write surface for document repos
type Docs = store.Blob

// Binder is a tiny factory that binds a domain repo to a specific doc store
type Binder[T any] interface {
	Bind(Docs) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Docs) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(d Docs) T { return f(d) }

// RequireDocs panics early on programmer error (nil store)
func RequireDocs(d Docs) Docs {
	if d == nil {
		panic("dockit: nil doc store")
	}
	return d
}

// MustBind is a convenience that validates the store then binds
func MustBind[T any](b Binder[T], d Docs) T {
	return b.Bind(RequireDocs(d))
}
