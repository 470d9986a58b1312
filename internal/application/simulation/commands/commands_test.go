package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/application/setup"
	"github.com/andrescamacho/zodiakos-go/internal/application/simulation/commands"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

func newMediator(t *testing.T, store *galaxy.Store) common.Mediator {
	t.Helper()
	registry := setup.NewHandlerRegistry(store, economy.NewPlayerPool(), constellation.NewTracker())
	m := common.NewMediator()
	require.NoError(t, registry.RegisterAll(m))
	return m
}

func TestRequestConnection_ColonizesDestination(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Alpha Centauri", shared.ResourceIron, 50)
	m := newMediator(t, store)

	// Act
	response, err := m.Send(context.Background(), &commands.RequestConnectionCommand{From: hub, To: target})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RequestConnectionResponse)
	assert.NotEmpty(t, result.ConnectionID)
	assert.True(t, result.Colonized)

	star, _ := store.Star(target)
	assert.True(t, star.IsColonized())
}

func TestRequestConnection_AlreadyColonizedDestination(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Beta Orionis", shared.ResourceIron, 50)
	m := newMediator(t, store)

	_, err := m.Send(context.Background(), &commands.RequestConnectionCommand{From: hub, To: target})
	require.NoError(t, err)

	// Act - the reverse direction targets a star that is already colonized
	response, err := m.Send(context.Background(), &commands.RequestConnectionCommand{From: target, To: hub})

	// Assert
	require.NoError(t, err)
	assert.False(t, response.(*commands.RequestConnectionResponse).Colonized)
}

func TestRequestConnection_UnknownStar(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	m := newMediator(t, store)

	// Act
	_, err := m.Send(context.Background(), &commands.RequestConnectionCommand{From: hub, To: 42})

	// Assert
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRemoveConnection_RemovesFromGraph(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Gamma Tauri", shared.ResourceIron, 50)
	m := newMediator(t, store)

	created, err := m.Send(context.Background(), &commands.RequestConnectionCommand{From: hub, To: target})
	require.NoError(t, err)
	connID := created.(*commands.RequestConnectionResponse).ConnectionID

	// Act
	response, err := m.Send(context.Background(), &commands.RemoveConnectionCommand{ConnectionID: connID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "removed", response.(*commands.RemoveConnectionResponse).Status)
	assert.Empty(t, store.Connections())
}

func TestRemoveConnection_RequiresID(t *testing.T) {
	// Arrange
	m := newMediator(t, galaxy.NewStore())

	// Act
	_, err := m.Send(context.Background(), &commands.RemoveConnectionCommand{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection_id is required")
}

func TestSetSpecialization_StartsConstruction(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Delta Scorpii", shared.ResourceIron, 50)
	m := newMediator(t, store)

	// Act
	response, err := m.Send(context.Background(), &commands.SetSpecializationCommand{
		StarID:         id,
		Specialization: galaxy.SpecializationMining,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.SetSpecializationResponse)
	assert.Equal(t, "building", result.Status)
	assert.Equal(t, 15.0, result.BuildSeconds)
}

func TestSetSpecialization_SameSpecializationIsNoOp(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Epsilon Leonis", shared.ResourceIron, 50)
	m := newMediator(t, store)

	_, err := m.Send(context.Background(), &commands.SetSpecializationCommand{
		StarID:         id,
		Specialization: galaxy.SpecializationMining,
	})
	require.NoError(t, err)

	// Act
	response, err := m.Send(context.Background(), &commands.SetSpecializationCommand{
		StarID:         id,
		Specialization: galaxy.SpecializationMining,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "unchanged", response.(*commands.SetSpecializationResponse).Status)
}

func TestSetSpecialization_RejectsUnknownKind(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Zeta Pegasi", shared.ResourceIron, 50)
	m := newMediator(t, store)

	// Act
	_, err := m.Send(context.Background(), &commands.SetSpecializationCommand{
		StarID:         id,
		Specialization: galaxy.Specialization("PIRATE"),
	})

	// Assert
	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "specialization", validation.Field)
}

func TestRequestUpgrade_StartsUpgrade(t *testing.T) {
	// Arrange - a finished level 1 Mining station
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Eta Aquarii", shared.ResourceIron, 50)
	star, _ := store.Star(id)
	star.SetSpecialization(galaxy.SpecializationMining)
	star.AdvanceBuild(15.0)
	m := newMediator(t, store)

	// Act
	response, err := m.Send(context.Background(), &commands.RequestUpgradeCommand{StarID: id})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RequestUpgradeResponse)
	assert.Equal(t, "upgrading", result.Status)
	assert.Equal(t, 2, result.TargetLevel)
	assert.Equal(t, 22.5, result.UpgradeSeconds)
}

func TestRequestUpgrade_BusyWhileBuilding(t *testing.T) {
	// Arrange - still under construction
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Theta Draconis", shared.ResourceIron, 50)
	star, _ := store.Star(id)
	star.SetSpecialization(galaxy.SpecializationMining)
	m := newMediator(t, store)

	// Act
	response, err := m.Send(context.Background(), &commands.RequestUpgradeCommand{StarID: id})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "busy", response.(*commands.RequestUpgradeResponse).Status)
}

func TestRequestUpgrade_UnspecializedStarUpgrades(t *testing.T) {
	// Arrange - a Ready extraction star; upgrading is how it raises its
	// outbound connection limit
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Kappa Lyrae", shared.ResourceIron, 50)
	m := newMediator(t, store)

	// Act
	response, err := m.Send(context.Background(), &commands.RequestUpgradeCommand{StarID: id})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RequestUpgradeResponse)
	assert.Equal(t, "upgrading", result.Status)
	assert.Equal(t, 2, result.TargetLevel)
	assert.Equal(t, 7.5, result.UpgradeSeconds)

	star, _ := store.Star(id)
	assert.Equal(t, galaxy.BuildPhaseUpgrading, star.BuildState().Phase)

	star.AdvanceBuild(7.5)
	assert.Equal(t, 2, star.Level())
	assert.Equal(t, 2, galaxy.ConnectionLimit(star.Level()))
}
