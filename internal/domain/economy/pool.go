package economy

import "github.com/andrescamacho/zodiakos-go/internal/domain/shared"

// PlayerPool is the single resource pool shared across the whole
// simulation. It is owned by the simulation and passed by reference into
// the economy step each tick; only collection and production-cost events
// mutate it.
type PlayerPool struct {
	amounts map[shared.ResourceKind]float64
}

// NewPlayerPool creates an empty pool
func NewPlayerPool() *PlayerPool {
	return &PlayerPool{amounts: make(map[shared.ResourceKind]float64)}
}

// NewStartingPool creates a pool with the standard opening stock: a small
// amount of every resource kind.
func NewStartingPool() *PlayerPool {
	return &PlayerPool{amounts: map[shared.ResourceKind]float64{
		shared.ResourceWater:         50.0,
		shared.ResourceOxygen:        30.0,
		shared.ResourceFood:          40.0,
		shared.ResourceIron:          20.0,
		shared.ResourceCopper:        15.0,
		shared.ResourceSilicon:       10.0,
		shared.ResourceUranium:       5.0,
		shared.ResourceHelium3:       2.0,
		shared.ResourceEnergyCrystal: 1.0,
	}}
}

// Amount returns the accumulated amount of the given kind
func (p *PlayerPool) Amount(kind shared.ResourceKind) float64 {
	return p.amounts[kind]
}

// Deposit adds the given amount to the pool
func (p *PlayerPool) Deposit(kind shared.ResourceKind, amount float64) {
	if amount <= 0 {
		return
	}
	p.amounts[kind] += amount
}

// CanAfford reports whether the pool holds at least every listed amount
func (p *PlayerPool) CanAfford(costs []shared.ResourceAmount) bool {
	for _, cost := range costs {
		if p.amounts[cost.Kind] < cost.Amount {
			return false
		}
	}
	return true
}

// DeductAll removes every listed amount atomically. When any single amount
// is short, nothing is deducted and false is returned: partial deduction is
// forbidden.
func (p *PlayerPool) DeductAll(costs []shared.ResourceAmount) bool {
	if !p.CanAfford(costs) {
		return false
	}
	for _, cost := range costs {
		p.amounts[cost.Kind] -= cost.Amount
	}
	return true
}

// Snapshot returns a copy of the pool's contents
func (p *PlayerPool) Snapshot() map[shared.ResourceKind]float64 {
	snapshot := make(map[shared.ResourceKind]float64, len(p.amounts))
	for kind, amount := range p.amounts {
		snapshot[kind] = amount
	}
	return snapshot
}
