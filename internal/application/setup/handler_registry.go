package setup

import (
	"reflect"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/application/simulation/commands"
	"github.com/andrescamacho/zodiakos-go/internal/application/simulation/queries"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	store   *galaxy.Store
	pool    *economy.PlayerPool
	tracker *constellation.Tracker
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(store *galaxy.Store, pool *economy.PlayerPool, tracker *constellation.Tracker) *HandlerRegistry {
	return &HandlerRegistry{
		store:   store,
		pool:    pool,
		tracker: tracker,
	}
}

// RegisterCommandHandlers registers all mutation handlers with the mediator
//
// This method registers:
//   - RequestConnectionCommand → RequestConnectionHandler
//   - RemoveConnectionCommand → RemoveConnectionHandler
//   - SetSpecializationCommand → SetSpecializationHandler
//   - RequestUpgradeCommand → RequestUpgradeHandler
func (r *HandlerRegistry) RegisterCommandHandlers(m common.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&commands.RequestConnectionCommand{}),
		commands.NewRequestConnectionHandler(r.store),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&commands.RemoveConnectionCommand{}),
		commands.NewRemoveConnectionHandler(r.store),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&commands.SetSpecializationCommand{}),
		commands.NewSetSpecializationHandler(r.store),
	); err != nil {
		return err
	}

	return m.Register(
		reflect.TypeOf(&commands.RequestUpgradeCommand{}),
		commands.NewRequestUpgradeHandler(r.store),
	)
}

// RegisterQueryHandlers registers all read-only handlers with the mediator
//
// This method registers:
//   - ListStarsQuery → ListStarsHandler
//   - ListConnectionsQuery → ListConnectionsHandler
//   - GetPlayerPoolQuery → GetPlayerPoolHandler
//   - ListConstellationsQuery → ListConstellationsHandler
func (r *HandlerRegistry) RegisterQueryHandlers(m common.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&queries.ListStarsQuery{}),
		queries.NewListStarsHandler(r.store),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&queries.ListConnectionsQuery{}),
		queries.NewListConnectionsHandler(r.store),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&queries.GetPlayerPoolQuery{}),
		queries.NewGetPlayerPoolHandler(r.pool),
	); err != nil {
		return err
	}

	return m.Register(
		reflect.TypeOf(&queries.ListConstellationsQuery{}),
		queries.NewListConstellationsHandler(r.tracker),
	)
}

// RegisterAll registers every command and query handler
func (r *HandlerRegistry) RegisterAll(m common.Mediator) error {
	if err := r.RegisterCommandHandlers(m); err != nil {
		return err
	}
	return r.RegisterQueryHandlers(m)
}
