// Package module mounts the meta endpoints as a tiny self-contained module
package module

import (
	"net/http"
	"time"

	modkit "sensutv/internal/modkit"
	"sensutv/internal/modkit/httpkit"
	str "sensutv/internal/platform/strings"

	metahttp "sensutv/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New wires the meta handlers against the shared doc store. The start time
// is pinned here so uptime survives router rebuilds in tests
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	started := time.Now()

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		register: func(r httpkit.Router) {
			metahttp.Register(r, metahttp.Deps{
				ServiceName: "sensutv",
				StartedAt:   started,
				Store:       deps.Docs,
			})
		},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the mount point for api wiring
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the per-module middleware chain
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface; meta exposes none
func (m *Module) Ports() any { return nil }
