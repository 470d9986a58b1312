package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

func TestConnectionLimit_FollowsFibonacci(t *testing.T) {
	expected := map[int]int{
		1: 1,
		2: 2,
		3: 3,
		4: 5,
		5: 8,
		6: 13,
		7: 21,
	}

	for level, limit := range expected {
		assert.Equal(t, limit, galaxy.ConnectionLimit(level), "level %d", level)
	}
}

func TestStore_CreateAndLookupStar(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()

	// Act
	id := helpers.NewBasicStar(store, "Alpha Centauri", shared.ResourceIron, 80)
	star, err := store.Star(id)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Alpha Centauri", star.Name())
	assert.Equal(t, 80.0, star.Amount(shared.ResourceIron))
	assert.False(t, star.IsColonized())
	assert.Equal(t, galaxy.SpecializationNone, star.Specialization())
	assert.Equal(t, 1, star.Level())
	assert.True(t, star.BuildState().IsReady())
}

func TestStore_Star_UnknownID(t *testing.T) {
	store := galaxy.NewStore()

	_, err := store.Star(99)

	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, 99, notFound.StarID)
}

func TestStore_CreateConnection_ColonizesTarget(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Beta Tauri", shared.ResourceWater, 60)

	// Act
	conn, err := store.CreateConnection(hub, target)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, hub, conn.From())
	assert.Equal(t, target, conn.To())
	assert.True(t, conn.IsCollecting())

	star, err := store.Star(target)
	require.NoError(t, err)
	assert.True(t, star.IsColonized())
}

func TestStore_CreateConnection_RejectsSelfLoop(t *testing.T) {
	store := galaxy.NewStore()
	id := helpers.NewBasicStar(store, "Gamma Leonis", shared.ResourceIron, 50)

	_, err := store.CreateConnection(id, id)

	var selfLoop *shared.SelfLoopError
	assert.ErrorAs(t, err, &selfLoop)
}

func TestStore_CreateConnection_RejectsDuplicatePair(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	hub := helpers.NewHubStar(store, "Sol")
	target := helpers.NewBasicStar(store, "Delta Pegasi", shared.ResourceWater, 60)

	_, err := store.CreateConnection(hub, target)
	require.NoError(t, err)

	// Act - same ordered pair again
	_, err = store.CreateConnection(hub, target)

	// Assert
	var exists *shared.AlreadyExistsError
	assert.ErrorAs(t, err, &exists)

	// The reverse direction is a different pair and stays allowed
	_, err = store.CreateConnection(target, hub)
	assert.NoError(t, err)
}

func TestStore_CreateConnection_EnforcesLevelLimit(t *testing.T) {
	// Arrange - a level 1 star allows exactly one outbound connection
	store := galaxy.NewStore()
	source := helpers.NewBasicStar(store, "Epsilon Draconis", shared.ResourceIron, 50)
	first := helpers.NewBasicStar(store, "Zeta Orionis", shared.ResourceWater, 50)
	second := helpers.NewBasicStar(store, "Eta Scorpii", shared.ResourceFood, 50)

	_, err := store.CreateConnection(source, first)
	require.NoError(t, err)

	// Act
	_, err = store.CreateConnection(source, second)

	// Assert
	var limitErr *shared.ConnectionLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, source, limitErr.StarID)
	assert.Equal(t, 1, limitErr.Level)
	assert.Equal(t, 1, limitErr.Limit)
	assert.Equal(t, 1, limitErr.Current)
}

func TestStore_RemoveConnection_RestoresAdjacency(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	a := helpers.NewBasicStar(store, "Theta Aquarii", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Iota Geminorum", shared.ResourceWater, 50)

	conn, err := store.CreateConnection(a, b)
	require.NoError(t, err)

	// Act
	require.NoError(t, store.RemoveConnection(conn.ID()))

	// Assert
	assert.Empty(t, store.Neighbors(a))
	assert.Empty(t, store.Neighbors(b))
	assert.Empty(t, store.Connections())

	// The freed slot can be reused
	_, err = store.CreateConnection(a, b)
	assert.NoError(t, err)
}

func TestStore_RemoveConnection_UnknownID(t *testing.T) {
	store := galaxy.NewStore()

	err := store.RemoveConnection("conn-0-1-deadbeef")

	var notFound *shared.ConnectionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStore_IncomingConnections(t *testing.T) {
	// Arrange
	store := galaxy.NewStore()
	a := helpers.NewBasicStar(store, "Kappa Centauri", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Alpha Draconis", shared.ResourceWater, 50)
	c := helpers.NewBasicStar(store, "Beta Andromedae", shared.ResourceFood, 50)

	_, err := store.CreateConnection(a, c)
	require.NoError(t, err)
	_, err = store.CreateConnection(b, c)
	require.NoError(t, err)

	// Act
	incoming := store.IncomingConnections(c)

	// Assert
	require.Len(t, incoming, 2)
	assert.Equal(t, a, incoming[0].From())
	assert.Equal(t, b, incoming[1].From())
}

func TestStore_Neighbors_UndirectedView(t *testing.T) {
	// Arrange - b has one outbound (c) and one inbound (a)
	store := galaxy.NewStore()
	a := helpers.NewBasicStar(store, "Gamma Pegasi", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Delta Leonis", shared.ResourceWater, 50)
	c := helpers.NewBasicStar(store, "Epsilon Tauri", shared.ResourceFood, 50)

	_, err := store.CreateConnection(a, b)
	require.NoError(t, err)
	_, err = store.CreateConnection(b, c)
	require.NoError(t, err)

	// Act + Assert - outbound targets first, then inbound sources
	assert.Equal(t, []int{c, a}, store.Neighbors(b))
	assert.Nil(t, store.Neighbors(42))
}
