package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/adapters/persistence"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

func TestGormEventLedger_RecordsAndQueriesCollections(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	ledger := persistence.NewGormEventLedger(db, clock)

	ledger.RecordCollection(1, shared.ResourceIron, 4.5)
	clock.Advance(time.Second)
	ledger.RecordCollection(2, shared.ResourceWater, 3.0)
	clock.Advance(time.Second)
	ledger.RecordCollection(1, shared.ResourceIron, 2.5)

	// Act - newest first
	events, err := ledger.Collections(context.Background(), nil, nil, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 2.5, events[0].Amount)
	assert.Equal(t, "IRON", events[0].Resource)
	assert.Equal(t, 3.0, events[1].Amount)
}

func TestGormEventLedger_FiltersCollectionsByStarAndTime(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	ledger := persistence.NewGormEventLedger(db, clock)

	ledger.RecordCollection(1, shared.ResourceIron, 1.0)
	clock.Advance(time.Minute)
	cutoff := clock.Now()
	ledger.RecordCollection(1, shared.ResourceIron, 2.0)
	ledger.RecordCollection(2, shared.ResourceIron, 3.0)

	// Act
	starID := 1
	events, err := ledger.Collections(context.Background(), &starID, &cutoff, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 2.0, events[0].Amount)
}

func TestGormEventLedger_RecordsProductions(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	ledger := persistence.NewGormEventLedger(db, nil)

	ledger.RecordProduction(7, galaxy.Unit{Kind: galaxy.UnitWarship, Count: 3})

	// Act
	events, err := ledger.Productions(context.Background(), nil, nil, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 7, events[0].StarID)
	assert.Equal(t, "WARSHIP", events[0].Unit)
	assert.Equal(t, 3, events[0].Count)
}

func TestGormEventLedger_RecordsConstellations(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	ledger := persistence.NewGormEventLedger(db, nil)

	ledger.RecordConstellation(0, []int{3, 5, 8})

	// Act
	events, err := ledger.Constellations(context.Background(), 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].ConstellationID)

	members, err := events[0].MemberIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 8}, members)
}

func TestGormEventLedger_TotalCollected(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	ledger := persistence.NewGormEventLedger(db, nil)

	ledger.RecordCollection(1, shared.ResourceIron, 4.5)
	ledger.RecordCollection(2, shared.ResourceIron, 1.5)
	ledger.RecordCollection(3, shared.ResourceWater, 100.0)

	// Act
	total, err := ledger.TotalCollected(context.Background(), shared.ResourceIron)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)
}

func TestGormEventLedger_TotalCollectedEmptyTable(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	ledger := persistence.NewGormEventLedger(db, nil)

	// Act
	total, err := ledger.TotalCollected(context.Background(), shared.ResourceHelium3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}
