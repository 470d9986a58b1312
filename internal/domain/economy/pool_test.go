package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

func TestPlayerPool_DepositAccumulates(t *testing.T) {
	pool := economy.NewPlayerPool()

	pool.Deposit(shared.ResourceIron, 3.5)
	pool.Deposit(shared.ResourceIron, 1.5)
	pool.Deposit(shared.ResourceIron, -10)
	pool.Deposit(shared.ResourceIron, 0)

	assert.Equal(t, 5.0, pool.Amount(shared.ResourceIron))
}

func TestPlayerPool_DeductAllIsAtomic(t *testing.T) {
	// Arrange - enough iron, not enough silicon
	pool := economy.NewPlayerPool()
	pool.Deposit(shared.ResourceIron, 100)
	pool.Deposit(shared.ResourceSilicon, 3)

	costs := []shared.ResourceAmount{
		{Kind: shared.ResourceIron, Amount: 10},
		{Kind: shared.ResourceSilicon, Amount: 5},
	}

	// Act
	ok := pool.DeductAll(costs)

	// Assert - nothing was touched
	assert.False(t, ok)
	assert.Equal(t, 100.0, pool.Amount(shared.ResourceIron))
	assert.Equal(t, 3.0, pool.Amount(shared.ResourceSilicon))

	// Topping up silicon makes the full deduction succeed
	pool.Deposit(shared.ResourceSilicon, 2)
	assert.True(t, pool.DeductAll(costs))
	assert.Equal(t, 90.0, pool.Amount(shared.ResourceIron))
	assert.Equal(t, 0.0, pool.Amount(shared.ResourceSilicon))
}

func TestPlayerPool_StartingStock(t *testing.T) {
	pool := economy.NewStartingPool()

	assert.Equal(t, 50.0, pool.Amount(shared.ResourceWater))
	assert.Equal(t, 1.0, pool.Amount(shared.ResourceEnergyCrystal))

	// Every kind starts with something
	for _, kind := range shared.AllResourceKinds() {
		assert.Greater(t, pool.Amount(kind), 0.0, "%s", kind)
	}
}

func TestPlayerPool_SnapshotIsACopy(t *testing.T) {
	pool := economy.NewPlayerPool()
	pool.Deposit(shared.ResourceWater, 10)

	snapshot := pool.Snapshot()
	snapshot[shared.ResourceWater] = 999

	assert.Equal(t, 10.0, pool.Amount(shared.ResourceWater))
}
