package galaxy

// BuildPhase is the construction lifecycle phase of a star
type BuildPhase string

const (
	BuildPhaseReady     BuildPhase = "READY"
	BuildPhaseBuilding  BuildPhase = "BUILDING"
	BuildPhaseUpgrading BuildPhase = "UPGRADING"
)

// BuildState tracks the construction/upgrade lifecycle of a star.
// Remaining and Total are seconds; both are zero in the Ready phase.
type BuildState struct {
	Phase     BuildPhase
	Remaining float64
	Total     float64
}

// ReadyState returns a build state in the Ready phase
func ReadyState() BuildState {
	return BuildState{Phase: BuildPhaseReady}
}

// BuildingState returns a build state counting down a fresh construction
func BuildingState(total float64) BuildState {
	return BuildState{Phase: BuildPhaseBuilding, Remaining: total, Total: total}
}

// UpgradingState returns a build state counting down an upgrade
func UpgradingState(total float64) BuildState {
	return BuildState{Phase: BuildPhaseUpgrading, Remaining: total, Total: total}
}

// IsReady reports whether the star can accept commands and collection
func (b BuildState) IsReady() bool {
	return b.Phase == BuildPhaseReady
}

// advance decrements the countdown by delta seconds. It returns the phase
// that just completed, or the empty string if the state is Ready or still
// counting down. Leftover negative remainder is discarded, never carried
// into the next state.
func (b *BuildState) advance(delta float64) BuildPhase {
	if b.Phase == BuildPhaseReady {
		return ""
	}

	b.Remaining -= delta
	if b.Remaining > 0 {
		return ""
	}

	completed := b.Phase
	*b = ReadyState()
	return completed
}
