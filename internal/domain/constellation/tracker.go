package constellation

import "math"

// Bonus is the production multiplier granted to every member of a
// registered constellation.
const Bonus = 2.0

// goldenAngleDegrees spreads constellation hues around the color wheel so
// consecutive IDs land far apart. Deterministic per ID for reproducibility.
const goldenAngleDegrees = 137.5

// Color is an HSL color assigned to a constellation for display
type Color struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Constellation is a registered, immutable cycle of stars. It persists for
// the simulation's lifetime: members keep their bonus even if the
// connections that formed the loop are later removed.
type Constellation struct {
	ID    int
	Stars []int
	Color Color
}

// Tracker is the constellation registry. Membership is exclusive and
// first-come-first-served: a star belongs to at most one constellation.
type Tracker struct {
	nextID         int
	constellations []Constellation
	membership     map[int]int // star ID -> constellation ID
}

// NewTracker creates an empty constellation registry
func NewTracker() *Tracker {
	return &Tracker{membership: make(map[int]int)}
}

// Register inspects detected cycles in order and creates a constellation
// for each one whose members are all unclaimed. Cycles sharing any star
// with an existing constellation are skipped, leaving the original
// untouched. Returns the newly created constellations.
func (t *Tracker) Register(cycles [][]int) []Constellation {
	var created []Constellation

	for _, cycle := range cycles {
		if t.anyMember(cycle) {
			continue
		}

		members := make([]int, len(cycle))
		copy(members, cycle)

		c := Constellation{
			ID:    t.nextID,
			Stars: members,
			Color: ColorForID(t.nextID),
		}
		t.nextID++

		t.constellations = append(t.constellations, c)
		for _, star := range members {
			t.membership[star] = c.ID
		}
		created = append(created, c)
	}

	return created
}

// BonusFor returns the production multiplier for the given star: Bonus for
// constellation members, 1.0 otherwise.
func (t *Tracker) BonusFor(starID int) float64 {
	if _, ok := t.membership[starID]; ok {
		return Bonus
	}
	return 1.0
}

// IsMember reports whether the star belongs to any constellation
func (t *Tracker) IsMember(starID int) bool {
	_, ok := t.membership[starID]
	return ok
}

// Constellations returns all registered constellations in creation order
func (t *Tracker) Constellations() []Constellation {
	return t.constellations
}

// Count returns the number of registered constellations
func (t *Tracker) Count() int {
	return len(t.constellations)
}

func (t *Tracker) anyMember(stars []int) bool {
	for _, star := range stars {
		if _, ok := t.membership[star]; ok {
			return true
		}
	}
	return false
}

// ColorForID derives the display color for a constellation ID using the
// golden angle around the hue wheel.
func ColorForID(id int) Color {
	return Color{
		Hue:        math.Mod(float64(id)*goldenAngleDegrees, 360.0),
		Saturation: 0.7,
		Lightness:  0.6,
	}
}
