package galaxy

import (
	"sort"

	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// storageCapacityFactor is how much larger a storage hub's capacity is
// compared to the star's base capacity for each held resource kind.
const storageCapacityFactor = 10.0

// Star is a colonizable resource site in the galaxy graph.
//
// Adjacency is tracked as stable star IDs, never pointers: stars can be
// removed and stale IDs must fail lookups explicitly instead of dangling.
type Star struct {
	id             int
	name           string
	x, y           float64
	resources      map[shared.ResourceKind]float64
	capacity       map[shared.ResourceKind]float64
	productionRate float64
	colonized      bool
	home           bool
	storageHub     bool
	specialization Specialization
	level          int
	units          []Unit
	buildState     BuildState

	// Adjacency lists, in insertion order
	connectionsFrom []int // stars connected TO this star
	connectionsTo   []int // stars this star connects TO

	// Only meaningful while the star is a storage hub
	storageCapacity map[shared.ResourceKind]float64
}

// StarAttributes carries the initial state for a new star
type StarAttributes struct {
	Name           string
	X, Y           float64
	Resources      map[shared.ResourceKind]float64
	Capacity       map[shared.ResourceKind]float64
	ProductionRate float64
	Colonized      bool
	Home           bool
	Specialization Specialization
}

func newStar(id int, attrs StarAttributes) *Star {
	spec := attrs.Specialization
	if spec == "" {
		spec = SpecializationNone
	}

	resources := make(map[shared.ResourceKind]float64, len(attrs.Resources))
	for kind, amount := range attrs.Resources {
		resources[kind] = amount
	}
	capacity := make(map[shared.ResourceKind]float64, len(attrs.Capacity))
	for kind, amount := range attrs.Capacity {
		capacity[kind] = amount
	}

	star := &Star{
		id:             id,
		name:           attrs.Name,
		x:              attrs.X,
		y:              attrs.Y,
		resources:      resources,
		capacity:       capacity,
		productionRate: attrs.ProductionRate,
		colonized:      attrs.Colonized,
		home:           attrs.Home,
		specialization: spec,
		level:          1,
		buildState:     ReadyState(),
	}

	if spec == SpecializationStorage {
		star.becomeStorageHub()
	}

	return star
}

// Getters

func (s *Star) ID() int                        { return s.id }
func (s *Star) Name() string                   { return s.name }
func (s *Star) Position() (x, y float64)       { return s.x, s.y }
func (s *Star) ProductionRate() float64        { return s.productionRate }
func (s *Star) IsColonized() bool              { return s.colonized }
func (s *Star) IsHome() bool                   { return s.home }
func (s *Star) IsStorageHub() bool             { return s.storageHub }
func (s *Star) Specialization() Specialization { return s.specialization }
func (s *Star) Level() int                     { return s.level }
func (s *Star) BuildState() BuildState         { return s.buildState }

// ConnectionsFrom returns the IDs of stars connected to this star
func (s *Star) ConnectionsFrom() []int { return s.connectionsFrom }

// ConnectionsTo returns the IDs of stars this star connects to
func (s *Star) ConnectionsTo() []int { return s.connectionsTo }

// Units returns the produced-unit records in production order
func (s *Star) Units() []Unit { return s.units }

// HasConnections reports whether the star has any adjacency, in or out
func (s *Star) HasConnections() bool {
	return len(s.connectionsFrom) > 0 || len(s.connectionsTo) > 0
}

// Resource access

// ResourceKinds returns the kinds this star currently holds, sorted for
// deterministic iteration.
func (s *Star) ResourceKinds() []shared.ResourceKind {
	kinds := make([]shared.ResourceKind, 0, len(s.resources))
	for kind := range s.resources {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Amount returns the current amount of the given resource kind
func (s *Star) Amount(kind shared.ResourceKind) float64 {
	return s.resources[kind]
}

// Capacity returns the maximum amount of the given resource kind
func (s *Star) Capacity(kind shared.ResourceKind) float64 {
	return s.capacity[kind]
}

// StorageCapacity returns the hub storage capacity for the given kind.
// Zero unless the star is a storage hub.
func (s *Star) StorageCapacity(kind shared.ResourceKind) float64 {
	return s.storageCapacity[kind]
}

// Withdraw removes up to amount of the given kind and returns how much was
// actually removed.
func (s *Star) Withdraw(kind shared.ResourceKind, amount float64) float64 {
	current := s.resources[kind]
	if amount > current {
		amount = current
	}
	if amount > 0 {
		s.resources[kind] = current - amount
	}
	return amount
}

// TotalResources sums the star's resources across all kinds
func (s *Star) TotalResources() float64 {
	var total float64
	for _, amount := range s.resources {
		total += amount
	}
	return total
}

// ResourceSnapshot returns a copy of the current resource amounts
func (s *Star) ResourceSnapshot() map[shared.ResourceKind]float64 {
	snapshot := make(map[shared.ResourceKind]float64, len(s.resources))
	for kind, amount := range s.resources {
		snapshot[kind] = amount
	}
	return snapshot
}

// CapacitySnapshot returns a copy of the capacity mapping
func (s *Star) CapacitySnapshot() map[shared.ResourceKind]float64 {
	snapshot := make(map[shared.ResourceKind]float64, len(s.capacity))
	for kind, amount := range s.capacity {
		snapshot[kind] = amount
	}
	return snapshot
}

// State transitions

// MarkColonized flags the star as colonized. Happens when a connection
// first reaches it.
func (s *Star) MarkColonized() {
	s.colonized = true
}

// SetSpecialization switches the star's production mode. A no-op when the
// specialization is unchanged. On change the level resets to 1, the unit
// list is cleared, storage-hub status follows the new mode, and the star
// enters the Building phase for the specialization's build time.
func (s *Star) SetSpecialization(spec Specialization) bool {
	if spec == s.specialization {
		return false
	}

	s.specialization = spec
	s.level = 1
	s.units = nil

	if spec == SpecializationStorage {
		s.becomeStorageHub()
	} else {
		s.storageHub = false
		s.storageCapacity = nil
	}

	s.buildState = BuildingState(spec.BuildTime())
	return true
}

// RequestUpgrade starts an upgrade to the next level. Silently ignored
// unless the star is Ready.
func (s *Star) RequestUpgrade() bool {
	if !s.buildState.IsReady() {
		return false
	}
	s.buildState = UpgradingState(s.specialization.UpgradeTime(s.level))
	return true
}

// AdvanceBuild moves the build countdown forward by delta seconds. When an
// upgrade completes the level increments by one; levels are unbounded.
// Returns the phase that completed this tick, if any.
func (s *Star) AdvanceBuild(delta float64) BuildPhase {
	completed := s.buildState.advance(delta)
	if completed == BuildPhaseUpgrading {
		s.level++
	}
	return completed
}

// AppendUnit records a produced unit batch
func (s *Star) AppendUnit(unit Unit) {
	s.units = append(s.units, unit)
}

func (s *Star) becomeStorageHub() {
	s.storageHub = true
	s.storageCapacity = make(map[shared.ResourceKind]float64, len(s.capacity))
	for kind, max := range s.capacity {
		s.storageCapacity[kind] = max * storageCapacityFactor
	}
}

// Adjacency bookkeeping, driven by the store

func (s *Star) addInbound(from int)  { s.connectionsFrom = append(s.connectionsFrom, from) }
func (s *Star) addOutbound(to int)   { s.connectionsTo = append(s.connectionsTo, to) }
func (s *Star) removeInbound(from int) {
	s.connectionsFrom = removeID(s.connectionsFrom, from)
}
func (s *Star) removeOutbound(to int) {
	s.connectionsTo = removeID(s.connectionsTo, to)
}

func removeID(ids []int, id int) []int {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
