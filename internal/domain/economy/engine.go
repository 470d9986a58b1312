package economy

import (
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/routing"
)

const (
	// DepletionThreshold is the near-zero total below which a star is
	// considered depleted and its feeding connections stop collecting.
	DepletionThreshold = 0.1

	// collectionFactor scales the effective rate into a per-cycle amount
	collectionFactor = 5.0
)

// Engine applies the resource economy to a connection whose collection
// timer fired. It borrows the store, tracker, and pool for the duration of
// a tick and holds nothing across ticks.
type Engine struct {
	store    *galaxy.Store
	tracker  *constellation.Tracker
	pool     *PlayerPool
	recorder EventRecorder
}

// NewEngine creates an economy engine. A nil recorder discards events.
func NewEngine(store *galaxy.Store, tracker *constellation.Tracker, pool *PlayerPool, recorder EventRecorder) *Engine {
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	return &Engine{store: store, tracker: tracker, pool: pool, recorder: recorder}
}

// Collect runs one collection cycle on a connection. The destination star
// is the resource source: extraction stars feed the player pool, while
// specialized stars consume pool resources to produce units. Stars still
// mid-build are skipped entirely.
//
// Route distance is recomputed fresh for every cycle so efficiency always
// reflects the graph as currently mutated.
func (e *Engine) Collect(conn *galaxy.Connection) {
	star, err := e.store.Star(conn.To())
	if err != nil {
		return
	}

	if !star.BuildState().IsReady() {
		return
	}

	switch star.Specialization() {
	case galaxy.SpecializationNone, galaxy.SpecializationStorage:
		e.extract(star)
	default:
		e.produce(star)
	}

	// A depleted star halts collection on its feeding connections; the
	// connections themselves stay in the graph until removed by a caller.
	if star.TotalResources() < DepletionThreshold {
		for _, incoming := range e.store.IncomingConnections(star.ID()) {
			incoming.Deactivate()
		}
	}
}

// extract withdraws from every resource kind the star holds and deposits
// the same amounts into the shared player pool.
func (e *Engine) extract(star *galaxy.Star) {
	hops, reachable := routing.DistanceToNearestHub(e.store, star.ID())
	rate := star.ProductionRate() *
		routing.EfficiencyMultiplier(hops, reachable) *
		e.tracker.BonusFor(star.ID())

	for _, kind := range star.ResourceKinds() {
		amount := star.Withdraw(kind, rate*collectionFactor)
		if amount > 0 {
			e.pool.Deposit(kind, amount)
			e.recorder.RecordCollection(star.ID(), kind, amount)
		}
	}
}

// produce runs one specialized production cycle: deduct the full cost table
// atomically from the pool, then append the yielded unit batch. A shortfall
// is not an error; the cycle is skipped and the pool untouched.
func (e *Engine) produce(star *galaxy.Star) {
	costs := star.Specialization().ProductionCost(star.Level())
	if !e.pool.DeductAll(costs) {
		return
	}

	unit, ok := star.Specialization().UnitYield(star.Level())
	if !ok {
		return
	}

	star.AppendUnit(unit)
	e.recorder.RecordProduction(star.ID(), unit)
}
