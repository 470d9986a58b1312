package helpers

import (
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// NewHubStar creates a colonized storage hub star for tests
func NewHubStar(store *galaxy.Store, name string) int {
	return store.CreateStar(galaxy.StarAttributes{
		Name: name,
		Resources: map[shared.ResourceKind]float64{
			shared.ResourceWater: 100,
			shared.ResourceIron:  100,
		},
		Capacity: map[shared.ResourceKind]float64{
			shared.ResourceWater: 100,
			shared.ResourceIron:  100,
		},
		ProductionRate: 2.0,
		Colonized:      true,
		Home:           true,
		Specialization: galaxy.SpecializationStorage,
	})
}

// NewBasicStar creates an unspecialized star with a single resource for tests
func NewBasicStar(store *galaxy.Store, name string, kind shared.ResourceKind, amount float64) int {
	return store.CreateStar(galaxy.StarAttributes{
		Name:           name,
		Resources:      map[shared.ResourceKind]float64{kind: amount},
		Capacity:       map[shared.ResourceKind]float64{kind: amount},
		ProductionRate: 1.0,
	})
}

// BuildChain connects a sequence of star IDs left to right
func BuildChain(store *galaxy.Store, ids ...int) error {
	for i := 0; i+1 < len(ids); i++ {
		if _, err := store.CreateConnection(ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	return nil
}
