package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/test/helpers"
)

// connectionContext holds state for connection graph scenarios
type connectionContext struct {
	store *galaxy.Store
	hub   int
	stars []int
	err   error
}

func (cc *connectionContext) reset() {
	cc.store = nil
	cc.hub = 0
	cc.stars = nil
	cc.err = nil
}

func (cc *connectionContext) aGalaxyWithAHomeHubAndUnspecializedStars(count int) error {
	cc.store = galaxy.NewStore()
	cc.hub = helpers.NewHubStar(cc.store, "Sol")
	for i := 0; i < count; i++ {
		id := helpers.NewBasicStar(cc.store, fmt.Sprintf("Star %d", i+1), shared.ResourceIron, 50)
		cc.stars = append(cc.stars, id)
	}
	return nil
}

func (cc *connectionContext) star(number int) (int, error) {
	if number < 1 || number > len(cc.stars) {
		return 0, fmt.Errorf("no star %d in this scenario", number)
	}
	return cc.stars[number-1], nil
}

func (cc *connectionContext) theHubConnectsToStar(number int) error {
	target, err := cc.star(number)
	if err != nil {
		return err
	}
	_, cc.err = cc.store.CreateConnection(cc.hub, target)
	return nil
}

func (cc *connectionContext) theHubConnectsToItself() error {
	_, cc.err = cc.store.CreateConnection(cc.hub, cc.hub)
	return nil
}

func (cc *connectionContext) theConnectionFromTheHubToStarIsRemoved(number int) error {
	target, err := cc.star(number)
	if err != nil {
		return err
	}
	for _, conn := range cc.store.Connections() {
		if conn.From() == cc.hub && conn.To() == target {
			return cc.store.RemoveConnection(conn.ID())
		}
	}
	return fmt.Errorf("no connection from hub to star %d", number)
}

func (cc *connectionContext) starShouldBeColonized(number int) error {
	id, err := cc.star(number)
	if err != nil {
		return err
	}
	star, err := cc.store.Star(id)
	if err != nil {
		return err
	}
	if !star.IsColonized() {
		return fmt.Errorf("star %d is not colonized", number)
	}
	return nil
}

func (cc *connectionContext) theHubShouldHaveOutboundConnections(count int) error {
	star, err := cc.store.Star(cc.hub)
	if err != nil {
		return err
	}
	if got := len(star.ConnectionsTo()); got != count {
		return fmt.Errorf("expected %d outbound connections, got %d", count, got)
	}
	return nil
}

func (cc *connectionContext) theConnectionAttemptShouldBeRejected() error {
	if cc.err == nil {
		return errors.New("expected the connection attempt to fail")
	}
	return nil
}

func (cc *connectionContext) theConnectionAttemptShouldFailWithAConnectionLimitError() error {
	var limitErr *shared.ConnectionLimitError
	if !errors.As(cc.err, &limitErr) {
		return fmt.Errorf("expected a connection limit error, got %v", cc.err)
	}
	return nil
}

func InitializeConnectionScenario(ctx *godog.ScenarioContext) {
	cc := &connectionContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	ctx.Step(`^a galaxy with a home hub and (\d+) unspecialized stars$`, cc.aGalaxyWithAHomeHubAndUnspecializedStars)
	ctx.Step(`^the hub connects to star (\d+)$`, cc.theHubConnectsToStar)
	ctx.Step(`^the hub connects to itself$`, cc.theHubConnectsToItself)
	ctx.Step(`^the connection from the hub to star (\d+) is removed$`, cc.theConnectionFromTheHubToStarIsRemoved)
	ctx.Step(`^star (\d+) should be colonized$`, cc.starShouldBeColonized)
	ctx.Step(`^the hub should have (\d+) outbound connections?$`, cc.theHubShouldHaveOutboundConnections)
	ctx.Step(`^the connection attempt should be rejected$`, cc.theConnectionAttemptShouldBeRejected)
	ctx.Step(`^the connection attempt should fail with a connection limit error$`, cc.theConnectionAttemptShouldFailWithAConnectionLimitError)
}
