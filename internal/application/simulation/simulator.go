package simulation

import (
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// Observer receives simulation lifecycle notifications. The metrics adapter
// implements it; a nil observer is valid and ignored.
type Observer interface {
	TickCompleted(delta float64)
	ConstellationFormed(c constellation.Constellation)
}

// Simulator owns the simulation state and sequences each tick:
// build timers first, then collection with fresh route distances, then
// cycle detection. A star that finishes building this tick is therefore
// eligible for collection in the same tick, and constellation bonuses see
// the graph as mutated by this tick's connection changes.
//
// Single-threaded by design: external mutation requests apply immediately
// between ticks, validated against current state. A concurrent host must
// serialize all access behind a single writer.
type Simulator struct {
	store    *galaxy.Store
	pool     *economy.PlayerPool
	tracker  *constellation.Tracker
	engine   *economy.Engine
	recorder economy.EventRecorder
	observer Observer

	elapsed   float64
	tickCount uint64
}

// NewSimulator wires a simulator around the given state. recorder and
// observer may be nil.
func NewSimulator(
	store *galaxy.Store,
	pool *economy.PlayerPool,
	tracker *constellation.Tracker,
	recorder economy.EventRecorder,
	observer Observer,
) *Simulator {
	if recorder == nil {
		recorder = economy.NoopRecorder{}
	}
	return &Simulator{
		store:    store,
		pool:     pool,
		tracker:  tracker,
		engine:   economy.NewEngine(store, tracker, pool, recorder),
		recorder: recorder,
		observer: observer,
	}
}

// Store returns the graph store. Callers outside the tick must treat it as
// single-writer state.
func (s *Simulator) Store() *galaxy.Store { return s.store }

// Pool returns the shared player resource pool
func (s *Simulator) Pool() *economy.PlayerPool { return s.pool }

// Tracker returns the constellation registry
func (s *Simulator) Tracker() *constellation.Tracker { return s.tracker }

// Elapsed returns the total simulated seconds
func (s *Simulator) Elapsed() float64 { return s.elapsed }

// TickCount returns the number of completed ticks
func (s *Simulator) TickCount() uint64 { return s.tickCount }

// Tick advances the simulation by delta seconds. Every tick completes even
// when individual stars or connections are degraded; there are no fatal
// conditions inside the loop.
func (s *Simulator) Tick(delta float64) {
	// 1. Build/upgrade timers
	for _, star := range s.store.Stars() {
		star.AdvanceBuild(delta)
	}

	// 2. Collection timers and economy effects
	for _, conn := range s.store.Connections() {
		if conn.Tick(delta) {
			s.engine.Collect(conn)
		}
	}

	// 3. Cycle detection and constellation registration
	cycles := constellation.DetectCycles(s.store, constellation.MinCycleLength)
	for _, c := range s.tracker.Register(cycles) {
		s.recorder.RecordConstellation(c.ID, c.Stars)
		if s.observer != nil {
			s.observer.ConstellationFormed(c)
		}
	}

	s.elapsed += delta
	s.tickCount++
	if s.observer != nil {
		s.observer.TickCompleted(delta)
	}
}
