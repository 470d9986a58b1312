package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// Generation bounds for star placement
const (
	fieldHalfWidth       = 350.0
	fieldHalfHeight      = 250.0
	fieldMargin          = 50.0
	minStarDistance      = 90.0
	maxPlacementAttempts = 500
)

var namePrefixes = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa",
}

var nameSuffixes = []string{
	"Centauri", "Orionis", "Draconis", "Pegasi", "Andromedae",
	"Leonis", "Aquarii", "Scorpii", "Tauri", "Geminorum",
}

// Generator populates a store with a starting galaxy: one home storage hub
// at the origin plus randomly placed, randomly provisioned stars. Layout is
// a setup-time convenience, not part of the simulation contract.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducible galaxies
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate creates numStars stars in the store and returns the home star ID
func (g *Generator) Generate(store *Store, numStars int) int {
	homeID := g.generateHome(store)

	positions := [][2]float64{{0, 0}}
	for i := 1; i < numStars; i++ {
		x, y := g.placeStar(positions)
		positions = append(positions, [2]float64{x, y})

		resources, capacity := g.randomResources()
		store.CreateStar(StarAttributes{
			Name:           g.starName(),
			X:              x,
			Y:              y,
			Resources:      resources,
			Capacity:       capacity,
			ProductionRate: 0.5 + g.rng.Float64()*2.0,
		})
	}

	return homeID
}

func (g *Generator) generateHome(store *Store) int {
	capacity := make(map[shared.ResourceKind]float64)
	resources := make(map[shared.ResourceKind]float64)
	for _, kind := range []shared.ResourceKind{
		shared.ResourceWater, shared.ResourceOxygen, shared.ResourceFood,
		shared.ResourceIron, shared.ResourceCopper, shared.ResourceSilicon,
	} {
		amount := 100.0 + g.rng.Float64()*100.0
		capacity[kind] = amount
		// Hub starts with 10% of its (10x) storage capacity filled
		resources[kind] = amount * storageCapacityFactor * 0.1
	}

	return store.CreateStar(StarAttributes{
		Name:           "Sol System (Storage Hub)",
		Resources:      resources,
		Capacity:       capacity,
		ProductionRate: 2.0,
		Colonized:      true,
		Home:           true,
		Specialization: SpecializationStorage,
	})
}

func (g *Generator) placeStar(existing [][2]float64) (float64, float64) {
	var x, y float64
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		x = -fieldHalfWidth + fieldMargin + g.rng.Float64()*2*(fieldHalfWidth-fieldMargin)
		y = -fieldHalfHeight + fieldMargin + g.rng.Float64()*2*(fieldHalfHeight-fieldMargin)

		ok := true
		for _, pos := range existing {
			if math.Hypot(x-pos[0], y-pos[1]) < minStarDistance {
				ok = false
				break
			}
		}
		if ok {
			break
		}
	}
	return x, y
}

// randomResources provisions a star with 1-3 resource kinds; rarer kinds
// come in smaller deposits.
func (g *Generator) randomResources() (resources, capacity map[shared.ResourceKind]float64) {
	resources = make(map[shared.ResourceKind]float64)
	capacity = make(map[shared.ResourceKind]float64)

	kinds := shared.AllResourceKinds()
	g.rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	count := 1 + g.rng.Intn(3)
	for _, kind := range kinds[:count] {
		var amount float64
		switch kind {
		case shared.ResourceEnergyCrystal, shared.ResourceHelium3:
			amount = 5.0 + g.rng.Float64()*25.0
		case shared.ResourceUranium:
			amount = 10.0 + g.rng.Float64()*40.0
		default:
			amount = 50.0 + g.rng.Float64()*100.0
		}
		resources[kind] = amount
		capacity[kind] = amount
	}
	return resources, capacity
}

func (g *Generator) starName() string {
	prefix := namePrefixes[g.rng.Intn(len(namePrefixes))]
	suffix := nameSuffixes[g.rng.Intn(len(nameSuffixes))]
	return fmt.Sprintf("%s %s", prefix, suffix)
}
