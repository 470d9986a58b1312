package galaxy

import "github.com/andrescamacho/zodiakos-go/internal/domain/shared"

// Specialization is the production mode a star can adopt. The set is closed:
// every behavior table below is exhaustively matched at compile time.
type Specialization string

const (
	SpecializationNone        Specialization = "NONE"
	SpecializationStorage     Specialization = "STORAGE"
	SpecializationMilitary    Specialization = "MILITARY"
	SpecializationMining      Specialization = "MINING"
	SpecializationAgriculture Specialization = "AGRICULTURE"
	SpecializationResearch    Specialization = "RESEARCH"
	SpecializationMedical     Specialization = "MEDICAL"
	SpecializationIndustrial  Specialization = "INDUSTRIAL"
)

// AllSpecializations returns every specialization in declaration order
func AllSpecializations() []Specialization {
	return []Specialization{
		SpecializationNone,
		SpecializationStorage,
		SpecializationMilitary,
		SpecializationMining,
		SpecializationAgriculture,
		SpecializationResearch,
		SpecializationMedical,
		SpecializationIndustrial,
	}
}

// IsValid reports whether s is a member of the closed variant set
func (s Specialization) IsValid() bool {
	switch s {
	case SpecializationNone, SpecializationStorage, SpecializationMilitary,
		SpecializationMining, SpecializationAgriculture, SpecializationResearch,
		SpecializationMedical, SpecializationIndustrial:
		return true
	}
	return false
}

// DisplayName returns the human-readable name for the specialization
func (s Specialization) DisplayName() string {
	switch s {
	case SpecializationNone:
		return "Resource Extraction"
	case SpecializationStorage:
		return "Storage Hub"
	case SpecializationMilitary:
		return "Military Base"
	case SpecializationMining:
		return "Mining Station"
	case SpecializationAgriculture:
		return "Agricultural Colony"
	case SpecializationResearch:
		return "Research Center"
	case SpecializationMedical:
		return "Medical Facility"
	case SpecializationIndustrial:
		return "Industrial Complex"
	default:
		return string(s)
	}
}

// BuildTime returns the construction time in seconds when a star switches to
// this specialization.
func (s Specialization) BuildTime() float64 {
	switch s {
	case SpecializationNone:
		return 5.0
	case SpecializationStorage:
		return 10.0
	case SpecializationMilitary:
		return 20.0
	case SpecializationMining:
		return 15.0
	case SpecializationAgriculture:
		return 12.0
	case SpecializationResearch:
		return 25.0
	case SpecializationMedical:
		return 15.0
	case SpecializationIndustrial:
		return 18.0
	default:
		return 0
	}
}

// UpgradeTime returns the time in seconds to upgrade a star of this
// specialization from the given level to the next one. Higher levels take
// longer: build time x level x 1.5.
func (s Specialization) UpgradeTime(level int) float64 {
	return s.BuildTime() * float64(level) * 1.5
}

// costScale returns the per-cycle cost multiplier at the given level.
// Higher levels are cheaper per cycle.
func costScale(level int) float64 {
	return 1.0 / (1.0 + float64(level-1)*0.2)
}

// ProductionCost returns the resources deducted from the player pool for one
// production cycle at the given level, in a stable order. Extraction modes
// (None, Storage) have no cost table; they collect rather than produce.
func (s Specialization) ProductionCost(level int) []shared.ResourceAmount {
	scale := costScale(level)
	switch s {
	case SpecializationStorage:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceIron, Amount: 10.0 * scale},
			{Kind: shared.ResourceSilicon, Amount: 5.0 * scale},
		}
	case SpecializationMilitary:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceIron, Amount: 20.0 * scale},
			{Kind: shared.ResourceUranium, Amount: 10.0 * scale},
			{Kind: shared.ResourceSilicon, Amount: 15.0 * scale},
		}
	case SpecializationMining:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceIron, Amount: 15.0 * scale},
			{Kind: shared.ResourceCopper, Amount: 10.0 * scale},
		}
	case SpecializationAgriculture:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceWater, Amount: 20.0 * scale},
			{Kind: shared.ResourceFood, Amount: 10.0 * scale},
		}
	case SpecializationResearch:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceSilicon, Amount: 20.0 * scale},
			{Kind: shared.ResourceEnergyCrystal, Amount: 2.0 * scale},
		}
	case SpecializationMedical:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceOxygen, Amount: 15.0 * scale},
			{Kind: shared.ResourceWater, Amount: 10.0 * scale},
		}
	case SpecializationIndustrial:
		return []shared.ResourceAmount{
			{Kind: shared.ResourceIron, Amount: 25.0 * scale},
			{Kind: shared.ResourceCopper, Amount: 15.0 * scale},
			{Kind: shared.ResourceSilicon, Amount: 10.0 * scale},
		}
	default:
		return nil
	}
}

// UnitYield returns the unit record appended to a star's unit list after one
// successful production cycle at the given level. ok is false for extraction
// modes, which never produce units through this path.
func (s Specialization) UnitYield(level int) (Unit, bool) {
	switch s {
	case SpecializationMilitary:
		return Unit{Kind: UnitWarship, Count: level}, true
	case SpecializationMining:
		return Unit{Kind: UnitMiningShip, Count: 2 * level}, true
	case SpecializationAgriculture:
		return Unit{Kind: UnitFarmer, Count: 3 * level}, true
	case SpecializationResearch:
		return Unit{Kind: UnitScientist, Count: level}, true
	case SpecializationMedical:
		return Unit{Kind: UnitDoctor, Count: 2 * level}, true
	case SpecializationIndustrial:
		return Unit{Kind: UnitBuilder, Count: 2 * level}, true
	case SpecializationStorage:
		return Unit{Kind: UnitStorageModule, Count: level}, true
	default:
		return Unit{}, false
	}
}
