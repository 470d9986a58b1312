package constellation_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

// triangle creates three stars wired a->b->c->a and returns their IDs
func triangle(t *testing.T, store *galaxy.Store) (int, int, int) {
	t.Helper()
	a := helpers.NewBasicStar(store, "Alpha Draconis", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Beta Pegasi", shared.ResourceWater, 50)
	c := helpers.NewBasicStar(store, "Gamma Aquarii", shared.ResourceFood, 50)
	require.NoError(t, helpers.BuildChain(store, a, b, c))
	_, err := store.CreateConnection(c, a)
	require.NoError(t, err)
	return a, b, c
}

func sortedMembers(cycle []int) []int {
	members := append([]int(nil), cycle...)
	sort.Ints(members)
	return members
}

func TestDetectCycles_FindsTriangle(t *testing.T) {
	store := galaxy.NewStore()
	a, b, c := triangle(t, store)

	cycles := constellation.DetectCycles(store, constellation.MinCycleLength)

	require.Len(t, cycles, 1)
	assert.Equal(t, []int{a, b, c}, sortedMembers(cycles[0]))
}

func TestDetectCycles_IgnoresTwoStarLoop(t *testing.T) {
	// a->b plus b->a is a back-and-forth, not a constellation
	store := galaxy.NewStore()
	a := helpers.NewBasicStar(store, "Delta Orionis", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Epsilon Scorpii", shared.ResourceWater, 50)

	_, err := store.CreateConnection(a, b)
	require.NoError(t, err)
	_, err = store.CreateConnection(b, a)
	require.NoError(t, err)

	cycles := constellation.DetectCycles(store, constellation.MinCycleLength)

	assert.Empty(t, cycles)
}

func TestDetectCycles_DirectionAgnostic(t *testing.T) {
	// Loop with mixed edge directions still closes
	store := galaxy.NewStore()
	a := helpers.NewBasicStar(store, "Zeta Leonis", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Eta Geminorum", shared.ResourceWater, 50)
	c := helpers.NewBasicStar(store, "Theta Centauri", shared.ResourceFood, 50)

	_, err := store.CreateConnection(a, b)
	require.NoError(t, err)
	_, err = store.CreateConnection(c, b)
	require.NoError(t, err)
	_, err = store.CreateConnection(c, a)
	require.NoError(t, err)

	cycles := constellation.DetectCycles(store, constellation.MinCycleLength)

	require.Len(t, cycles, 1)
	assert.Equal(t, []int{a, b, c}, sortedMembers(cycles[0]))
}

func TestDetectCycles_DedupesSetEqualCycles(t *testing.T) {
	// The same triangle is discoverable in both traversal directions; only
	// one survives.
	store := galaxy.NewStore()
	triangle(t, store)

	cycles := constellation.DetectCycles(store, constellation.MinCycleLength)

	assert.Len(t, cycles, 1)
}

func TestDetectCycles_OpenChainHasNone(t *testing.T) {
	store := galaxy.NewStore()
	a := helpers.NewBasicStar(store, "Iota Tauri", shared.ResourceIron, 50)
	b := helpers.NewBasicStar(store, "Kappa Andromedae", shared.ResourceWater, 50)
	c := helpers.NewBasicStar(store, "Alpha Scorpii", shared.ResourceFood, 50)
	require.NoError(t, helpers.BuildChain(store, a, b, c))

	cycles := constellation.DetectCycles(store, constellation.MinCycleLength)

	assert.Empty(t, cycles)
}

func TestDetectCycles_RespectsMinLength(t *testing.T) {
	store := galaxy.NewStore()
	triangle(t, store)

	cycles := constellation.DetectCycles(store, 4)

	assert.Empty(t, cycles)
}

func TestDetectCycles_FindsDisjointCycles(t *testing.T) {
	store := galaxy.NewStore()
	triangle(t, store)

	// Second, unconnected square: d->e->f->g->d
	d := helpers.NewBasicStar(store, "Beta Draconis", shared.ResourceIron, 50)
	e := helpers.NewBasicStar(store, "Gamma Orionis", shared.ResourceWater, 50)
	f := helpers.NewBasicStar(store, "Delta Centauri", shared.ResourceFood, 50)
	g := helpers.NewBasicStar(store, "Epsilon Aquarii", shared.ResourceCopper, 50)
	require.NoError(t, helpers.BuildChain(store, d, e, f, g))
	_, err := store.CreateConnection(g, d)
	require.NoError(t, err)

	cycles := constellation.DetectCycles(store, constellation.MinCycleLength)

	require.Len(t, cycles, 2)
	assert.Len(t, cycles[0], 3)
	assert.Equal(t, []int{d, e, f, g}, sortedMembers(cycles[1]))
}
