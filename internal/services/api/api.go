// Package api provides the HTTP status surface for the application
package api

import (
	"net/http"
	"time"

	"sensutv/internal/platform/config"
	"sensutv/internal/platform/logger"
	phttp "sensutv/internal/platform/net/http"
	"sensutv/internal/platform/store"

	"sensutv/internal/modkit"
	"sensutv/internal/modkit/httpkit"
	"sensutv/internal/modkit/module"

	feedmod "sensutv/internal/services/api/feed/module"
	metamod "sensutv/internal/services/api/meta/module"
	catalog "sensutv/internal/services/catalog/domain"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Docs   store.Blob
	Logger *logger.Logger

	Registry catalog.RegistryPort
	Planner  catalog.PlannerPort

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the status surface onto the given router.
// Everything here is read only; writes happen through the bot.
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:  opt.Config,
		Docs: opt.Docs,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	for _, mw := range httpkit.CommonStack() {
		r.Use(mw)
	}

	// bare liveness probe, no envelope
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// the feed owns the root surface: its pages may be cached briefly,
	// and the swagger UI mounts with it when enabled
	mods := []module.Module{
		metamod.New(deps),
		feedmod.New(deps,
			modkit.WithPorts(feedmod.Ports{
				Registry: opt.Registry,
				Planner:  opt.Planner,
			}),
			modkit.WithSwagger(opt.EnableSwagger),
			modkit.WithMiddlewares(httpkit.CacheFor(30*time.Second)),
		),
	}

	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
