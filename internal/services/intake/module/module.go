// Package module implements the intake service module
package module

import (
	"sensutv/internal/modkit"
	"sensutv/internal/modkit/httpkit"
	catalog "sensutv/internal/services/catalog/domain"
	"sensutv/internal/services/intake/domain"
	"sensutv/internal/services/intake/service"
)

// Ports exposed by the intake module
type Ports struct {
	Stepper domain.StepperPort
}

// Module implements the intake service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the intake module over the catalog ports
func New(deps modkit.Deps, registry catalog.RegistryPort, planner catalog.PlannerPort) *Module {
	m := &Module{deps: deps}
	m.ports = Ports{Stepper: service.New(registry, planner)}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "intake" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
