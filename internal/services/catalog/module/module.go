// Package module implements the catalog service module
package module

import (
	"sensutv/internal/modkit"
	"sensutv/internal/modkit/dockit"
	"sensutv/internal/modkit/httpkit"
	"sensutv/internal/services/catalog/domain"
	"sensutv/internal/services/catalog/repo"
	"sensutv/internal/services/catalog/service"
)

// Ports exposed by the catalog module
type Ports struct {
	Registry domain.RegistryPort
	Planner  domain.PlannerPort
}

// Module implements the catalog service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new catalog module.
// The document layout follows the storage backend: split documents on
// disk, a single manifest on object storage.
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var binder dockit.Binder[repo.Storage]
	if opts.Backend == "s3" {
		binder = repo.NewManifest()
	} else {
		binder = repo.NewSplit()
	}

	svc := service.New(deps.Docs, binder, service.Config{
		Bucket: opts.Bucket,
		Region: opts.Region,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Registry: svc,
		Planner:  svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "catalog" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
