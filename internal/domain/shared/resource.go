package shared

// ResourceKind identifies one of the closed set of resource types that stars
// can hold and the player can accumulate.
type ResourceKind string

const (
	// Basic life resources
	ResourceWater  ResourceKind = "WATER"
	ResourceOxygen ResourceKind = "OXYGEN"
	ResourceFood   ResourceKind = "FOOD"

	// Construction minerals
	ResourceIron    ResourceKind = "IRON"
	ResourceCopper  ResourceKind = "COPPER"
	ResourceSilicon ResourceKind = "SILICON"

	// Energy resources
	ResourceUranium       ResourceKind = "URANIUM"
	ResourceHelium3       ResourceKind = "HELIUM3"
	ResourceEnergyCrystal ResourceKind = "ENERGY_CRYSTAL"
)

// AllResourceKinds returns every resource kind in declaration order.
// The slice is freshly allocated so callers can reorder it freely.
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{
		ResourceWater,
		ResourceOxygen,
		ResourceFood,
		ResourceIron,
		ResourceCopper,
		ResourceSilicon,
		ResourceUranium,
		ResourceHelium3,
		ResourceEnergyCrystal,
	}
}

// DisplayName returns the human-readable name for the resource kind
func (r ResourceKind) DisplayName() string {
	switch r {
	case ResourceWater:
		return "Water"
	case ResourceOxygen:
		return "Oxygen"
	case ResourceFood:
		return "Food"
	case ResourceIron:
		return "Iron"
	case ResourceCopper:
		return "Copper"
	case ResourceSilicon:
		return "Silicon"
	case ResourceUranium:
		return "Uranium"
	case ResourceHelium3:
		return "Helium-3"
	case ResourceEnergyCrystal:
		return "Energy Crystal"
	default:
		return string(r)
	}
}

// ResourceAmount pairs a resource kind with a quantity. Used for production
// cost tables and anywhere an ordered list of amounts matters.
type ResourceAmount struct {
	Kind   ResourceKind
	Amount float64
}
