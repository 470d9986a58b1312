package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/application/simulation/queries"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

func TestListStars_SnapshotsGraphState(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Alpha Centauri", shared.ResourceIron, 80)
	_, err := store.CreateConnection(hub, target)
	require.NoError(t, err)

	handler := queries.NewListStarsHandler(store)

	// Act
	response, err := handler.Handle(context.Background(), &queries.ListStarsQuery{})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.ListStarsResponse)
	require.Len(t, result.Stars, 2)

	byID := make(map[int]queries.StarView)
	for _, view := range result.Stars {
		byID[view.ID] = view
	}

	hubView := byID[hub]
	assert.Equal(t, "Sol", hubView.Name)
	assert.True(t, hubView.Home)
	assert.True(t, hubView.StorageHub)
	assert.Equal(t, 0, hubView.HubDistance)
	assert.True(t, hubView.HubReachable)
	assert.Equal(t, []int{target}, hubView.ConnectionsTo)

	targetView := byID[target]
	assert.True(t, targetView.Colonized)
	assert.Equal(t, 1, targetView.HubDistance)
	assert.Equal(t, 80.0, targetView.Resources[shared.ResourceIron])
	assert.Equal(t, galaxy.BuildPhaseReady, targetView.BuildPhase)
	assert.Equal(t, []int{hub}, targetView.ConnectionsFrom)
}

func TestListStars_ReportsBuildProgress(t *testing.T) {
	// Arrange - a Research build with 10 of 25 seconds elapsed
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Beta Tauri", shared.ResourceIron, 50)
	star, _ := store.Star(id)
	star.SetSpecialization(galaxy.SpecializationResearch)
	star.AdvanceBuild(10.0)

	handler := queries.NewListStarsHandler(store)

	// Act
	response, err := handler.Handle(context.Background(), &queries.ListStarsQuery{})

	// Assert
	require.NoError(t, err)
	view := response.(*queries.ListStarsResponse).Stars[0]
	assert.Equal(t, galaxy.BuildPhaseBuilding, view.BuildPhase)
	assert.InDelta(t, 15.0, view.BuildRemaining, 1e-9)
}

func TestListStars_ViewIsACopy(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Gamma Cygni", shared.ResourceIron, 50)
	handler := queries.NewListStarsHandler(store)

	response, err := handler.Handle(context.Background(), &queries.ListStarsQuery{})
	require.NoError(t, err)
	view := response.(*queries.ListStarsResponse).Stars[0]

	// Act - mutating the snapshot must not touch the simulation
	view.Resources[shared.ResourceIron] = 0

	// Assert
	star, _ := store.Star(id)
	assert.Equal(t, 50.0, star.Amount(shared.ResourceIron))
}

func TestListConnections_ReturnsTimerState(t *testing.T) {
	// Arrange
	store := galaxy.NewStoreWithInterval(4.0)
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Delta Pegasi", shared.ResourceIron, 50)
	conn, err := store.CreateConnection(hub, target)
	require.NoError(t, err)
	conn.Tick(1.5)

	handler := queries.NewListConnectionsHandler(store)

	// Act
	response, err := handler.Handle(context.Background(), &queries.ListConnectionsQuery{})

	// Assert
	require.NoError(t, err)
	views := response.(*queries.ListConnectionsResponse).Connections
	require.Len(t, views, 1)
	assert.Equal(t, conn.ID(), views[0].ID)
	assert.Equal(t, hub, views[0].From)
	assert.Equal(t, target, views[0].To)
	assert.Equal(t, 4.0, views[0].Interval)
	assert.Equal(t, 1.5, views[0].Elapsed)
	assert.Equal(t, 1.5, views[0].Age)
	assert.True(t, views[0].IsCollecting)
}

func TestGetPlayerPool_SnapshotsResources(t *testing.T) {
	// Arrange
	pool := economy.NewStartingPool()
	handler := queries.NewGetPlayerPoolHandler(pool)

	// Act
	response, err := handler.Handle(context.Background(), &queries.GetPlayerPoolQuery{})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.GetPlayerPoolResponse)
	assert.Equal(t, 50.0, result.Resources[shared.ResourceWater])

	// The snapshot is detached from the live pool
	result.Resources[shared.ResourceWater] = 0
	assert.Equal(t, 50.0, pool.Amount(shared.ResourceWater))
}

func TestListConstellations_ReturnsRegisteredCycles(t *testing.T) {
	// Arrange
	tracker := constellation.NewTracker()
	tracker.Register([][]int{{1, 2, 3}, {4, 5, 6, 7}})
	handler := queries.NewListConstellationsHandler(tracker)

	// Act
	response, err := handler.Handle(context.Background(), &queries.ListConstellationsQuery{})

	// Assert
	require.NoError(t, err)
	views := response.(*queries.ListConstellationsResponse).Constellations
	require.Len(t, views, 2)
	assert.Equal(t, 0, views[0].ID)
	assert.Equal(t, []int{1, 2, 3}, views[0].Stars)
	assert.Equal(t, 0.0, views[0].Color.Hue)
	assert.Equal(t, 137.5, views[1].Color.Hue)
}
