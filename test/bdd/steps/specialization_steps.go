package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

// specializationContext holds state for specialization lifecycle scenarios
type specializationContext struct {
	store          *galaxy.Store
	star           *galaxy.Star
	upgradeStarted bool
}

func (sc *specializationContext) reset() {
	sc.store = nil
	sc.star = nil
	sc.upgradeStarted = false
}

func (sc *specializationContext) newStar() error {
	sc.store = galaxy.NewStore()
	id := helpers.NewBasicStar(sc.store, "Vega", shared.ResourceIron, 50)
	star, err := sc.store.Star(id)
	if err != nil {
		return err
	}
	sc.star = star
	return nil
}

func (sc *specializationContext) anUnspecializedColonizedStar() error {
	return sc.newStar()
}

func (sc *specializationContext) aReadyStarAtLevel(kind string, level int) error {
	if err := sc.newStar(); err != nil {
		return err
	}

	spec := galaxy.Specialization(kind)
	if !spec.IsValid() {
		return fmt.Errorf("unknown specialization %q", kind)
	}

	sc.star.SetSpecialization(spec)
	sc.star.AdvanceBuild(spec.BuildTime())
	for sc.star.Level() < level {
		if !sc.star.RequestUpgrade() {
			return fmt.Errorf("upgrade refused at level %d", sc.star.Level())
		}
		sc.star.AdvanceBuild(spec.UpgradeTime(sc.star.Level()))
	}
	return nil
}

func (sc *specializationContext) theStarIsAssignedTheSpecialization(kind string) error {
	spec := galaxy.Specialization(kind)
	if !spec.IsValid() {
		return fmt.Errorf("unknown specialization %q", kind)
	}
	sc.star.SetSpecialization(spec)
	return nil
}

func (sc *specializationContext) anUpgradeIsRequested() error {
	sc.upgradeStarted = sc.star.RequestUpgrade()
	return nil
}

func (sc *specializationContext) secondsElapse(seconds float64) error {
	sc.star.AdvanceBuild(seconds)
	return nil
}

func (sc *specializationContext) theStarShouldBeInPhaseFor(phase galaxy.BuildPhase, seconds float64) error {
	state := sc.star.BuildState()
	if state.Phase != phase {
		return fmt.Errorf("expected phase %s, got %s", phase, state.Phase)
	}
	if math.Abs(state.Remaining-seconds) > 1e-9 {
		return fmt.Errorf("expected %.1f seconds remaining, got %.1f", seconds, state.Remaining)
	}
	return nil
}

func (sc *specializationContext) theStarShouldBeBuildingForSeconds(seconds float64) error {
	return sc.theStarShouldBeInPhaseFor(galaxy.BuildPhaseBuilding, seconds)
}

func (sc *specializationContext) theStarShouldBeUpgradingForSeconds(seconds float64) error {
	return sc.theStarShouldBeInPhaseFor(galaxy.BuildPhaseUpgrading, seconds)
}

func (sc *specializationContext) theStarShouldBeReadyAtLevel(level int) error {
	state := sc.star.BuildState()
	if state.Phase != galaxy.BuildPhaseReady {
		return fmt.Errorf("expected phase READY, got %s", state.Phase)
	}
	if sc.star.Level() != level {
		return fmt.Errorf("expected level %d, got %d", level, sc.star.Level())
	}
	return nil
}

func (sc *specializationContext) theUpgradeRequestShouldBeIgnored() error {
	if sc.upgradeStarted {
		return fmt.Errorf("expected the upgrade request to be ignored")
	}
	return nil
}

func InitializeSpecializationScenario(ctx *godog.ScenarioContext) {
	sctx := &specializationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		sctx.reset()
		return ctx, nil
	})

	ctx.Step(`^an unspecialized colonized star$`, sctx.anUnspecializedColonizedStar)
	ctx.Step(`^a ready "([^"]*)" star at level (\d+)$`, sctx.aReadyStarAtLevel)
	ctx.Step(`^the star is assigned the "([^"]*)" specialization$`, sctx.theStarIsAssignedTheSpecialization)
	ctx.Step(`^an upgrade is requested$`, sctx.anUpgradeIsRequested)
	ctx.Step(`^(\d+\.?\d*) seconds elapse$`, sctx.secondsElapse)
	ctx.Step(`^the star should be building for (\d+\.?\d*) seconds$`, sctx.theStarShouldBeBuildingForSeconds)
	ctx.Step(`^the star should be upgrading for (\d+\.?\d*) seconds$`, sctx.theStarShouldBeUpgradingForSeconds)
	ctx.Step(`^the star should be ready at level (\d+)$`, sctx.theStarShouldBeReadyAtLevel)
	ctx.Step(`^the upgrade request should be ignored$`, sctx.theUpgradeRequestShouldBeIgnored)
}
