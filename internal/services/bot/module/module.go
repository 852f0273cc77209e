// Package module implements the bot service module
package module

import (
	"context"

	"sensutv/internal/modkit"
	"sensutv/internal/modkit/httpkit"
	"sensutv/internal/services/bot/domain"
	"sensutv/internal/services/bot/service"
	"sensutv/internal/services/bot/telegram"
	catalog "sensutv/internal/services/catalog/domain"
	catmod "sensutv/internal/services/catalog/module"
	intake "sensutv/internal/services/intake/domain"
)

// Ports exposed by the bot module
type Ports struct {
	Dispatcher domain.DispatcherPort
}

// Module implements the bot service module
type Module struct {
	deps   modkit.Deps
	ports  Ports
	poller *telegram.Poller
}

// New authenticates the Telegram transport and wires the dispatcher
func New(deps modkit.Deps, registry catalog.RegistryPort, planner catalog.PlannerPort, stepper intake.StepperPort) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	storage := catmod.FromConfig(deps.Cfg)

	poller, err := telegram.New(opts.Token, deps.Log)
	if err != nil {
		return nil, err
	}

	svc := service.New(registry, planner, stepper, poller, service.Config{
		Bucket:     storage.Bucket,
		Region:     storage.Region,
		Store:      storage.Backend,
		AllowedIDs: opts.AllowedIDs,
	})
	poller.SetDispatcher(svc)

	m := &Module{deps: deps, poller: poller}
	m.ports = Ports{Dispatcher: svc}
	return m, nil
}

// Run starts the long-poll loop and blocks until ctx is done
func (m *Module) Run(ctx context.Context) error { return m.poller.Run(ctx) }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "bot" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
