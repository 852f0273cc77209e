// Package module wires the public feed into the API using modkit
package module

import (
	"net/http"

	modkit "sensutv/internal/modkit"
	"sensutv/internal/modkit/httpkit"
	"sensutv/internal/modkit/swaggerkit"
	str "sensutv/internal/platform/strings"

	feedhttp "sensutv/internal/services/api/feed/http"
	catalog "sensutv/internal/services/catalog/domain"
	catmod "sensutv/internal/services/catalog/module"
)

// Ports declares the catalog ports this module reads from
type Ports struct {
	Registry catalog.RegistryPort
	Planner  catalog.PlannerPort
}

// Module implements the modkit.Module interface.
// The feed lives at the router root, so MountRoutes opens an inline group
// instead of carving a prefix. The swagger UI rides along because its
// /api/docs path belongs to this root surface.
type Module struct {
	deps      modkit.Deps
	name      string
	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	register func(httpkit.Router)
}

// New constructs the feed module; the catalog ports arrive via WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("feed"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("feed module requires catalog ports")
	}

	storage := catmod.FromConfig(deps.Cfg)
	payLink := deps.Cfg.Prefix("BOT_").MayString("PAY_LINK", "")

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		ports:     ports,
		swaggerOn: b.SwaggerOn,
	}

	m.register = func(r httpkit.Router) {
		feedhttp.Register(r, feedhttp.Deps{
			Registry: ports.Registry,
			Planner:  ports.Planner,
			PayLink:  payLink,
			Bucket:   storage.Bucket,
			Region:   storage.Region,
			Store:    storage.Backend,
		})
		swaggerkit.Mount(r, m.swaggerOn)
	}

	return m
}

// MountRoutes implements the modkit.Module interface. The group keeps the
// module middleware off sibling modules sharing the root router.
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(g httpkit.Router) {
		if len(m.mws) > 0 {
			g.Use(m.mws...)
		}
		m.register(g)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "feed") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return "/" }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
