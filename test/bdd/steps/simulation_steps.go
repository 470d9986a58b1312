package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/zodiakos-go/internal/application/simulation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

// simulationContext holds state for full tick-loop scenarios
type simulationContext struct {
	store   *galaxy.Store
	pool    *economy.PlayerPool
	tracker *constellation.Tracker
	sim     *simulation.Simulator
	conn    *galaxy.Connection
	members []int
}

func (sc *simulationContext) reset() {
	sc.store = nil
	sc.pool = nil
	sc.tracker = nil
	sc.sim = nil
	sc.conn = nil
	sc.members = nil
}

func (sc *simulationContext) wire() {
	sc.pool = economy.NewPlayerPool()
	sc.tracker = constellation.NewTracker()
	sc.sim = simulation.NewSimulator(sc.store, sc.pool, sc.tracker, nil, nil)
}

func (sc *simulationContext) aHomeHubConnectedToAnIronStarHolding(amount float64) error {
	sc.store = galaxy.NewStore()
	hub := helpers.NewHubStar(sc.store, "Sol")
	target := helpers.NewBasicStar(sc.store, "Alpha Centauri", shared.ResourceIron, amount)

	conn, err := sc.store.CreateConnection(hub, target)
	if err != nil {
		return err
	}
	sc.conn = conn
	sc.wire()
	return nil
}

func (sc *simulationContext) starsConnectedInADirectedCycle(count int) error {
	if err := sc.starsConnectedInAnOpenChain(count); err != nil {
		return err
	}
	_, err := sc.store.CreateConnection(sc.members[count-1], sc.members[0])
	return err
}

func (sc *simulationContext) starsConnectedInAnOpenChain(count int) error {
	sc.store = galaxy.NewStore()
	for i := 0; i < count; i++ {
		id := helpers.NewBasicStar(sc.store, fmt.Sprintf("Star %d", i+1), shared.ResourceIron, 50)
		sc.members = append(sc.members, id)
	}
	if err := helpers.BuildChain(sc.store, sc.members...); err != nil {
		return err
	}
	sc.wire()
	return nil
}

func (sc *simulationContext) theSimulationRunsForSeconds(seconds float64) error {
	sc.sim.Tick(seconds)
	return nil
}

func (sc *simulationContext) thePlayerPoolShouldHold(amount float64, kind string) error {
	got := sc.pool.Amount(shared.ResourceKind(kind))
	if math.Abs(got-amount) > 1e-9 {
		return fmt.Errorf("expected %.2f %s in the pool, got %.2f", amount, kind, got)
	}
	return nil
}

func (sc *simulationContext) theConnectionShouldStopCollecting() error {
	if sc.conn.IsCollecting() {
		return fmt.Errorf("expected the connection to be deactivated")
	}
	return nil
}

func (sc *simulationContext) constellationsShouldBeRegistered(count int) error {
	if got := sc.tracker.Count(); got != count {
		return fmt.Errorf("expected %d constellations, got %d", count, got)
	}
	return nil
}

func (sc *simulationContext) noConstellationsShouldBeRegistered() error {
	return sc.constellationsShouldBeRegistered(0)
}

func (sc *simulationContext) everyMemberShouldHaveAProductionBonus(bonus float64) error {
	for _, id := range sc.members {
		if got := sc.tracker.BonusFor(id); got != bonus {
			return fmt.Errorf("expected star %d to have a %.1fx bonus, got %.1fx", id, bonus, got)
		}
	}
	return nil
}

func InitializeSimulationScenario(ctx *godog.ScenarioContext) {
	sctx := &simulationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		sctx.reset()
		return ctx, nil
	})

	ctx.Step(`^a home hub connected to an iron star holding (\d+\.?\d*) units$`, sctx.aHomeHubConnectedToAnIronStarHolding)
	ctx.Step(`^(\d+) stars connected in a directed cycle$`, sctx.starsConnectedInADirectedCycle)
	ctx.Step(`^(\d+) stars connected in an open chain$`, sctx.starsConnectedInAnOpenChain)
	ctx.Step(`^the simulation runs for (\d+\.?\d*) seconds$`, sctx.theSimulationRunsForSeconds)
	ctx.Step(`^the player pool should hold (\d+\.?\d*) "([^"]*)"$`, sctx.thePlayerPoolShouldHold)
	ctx.Step(`^the connection should stop collecting$`, sctx.theConnectionShouldStopCollecting)
	ctx.Step(`^(\d+) constellations? should be registered$`, sctx.constellationsShouldBeRegistered)
	ctx.Step(`^no constellations should be registered$`, sctx.noConstellationsShouldBeRegistered)
	ctx.Step(`^every member should have a (\d+\.?\d*)x production bonus$`, sctx.everyMemberShouldHaveAProductionBonus)
}
