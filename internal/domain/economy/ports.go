package economy

import (
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// EventRecorder receives economy observations as they happen. Implementations
// must not retain star or connection references across ticks; everything
// passed here is an identifier or a value.
type EventRecorder interface {
	RecordCollection(starID int, kind shared.ResourceKind, amount float64)
	RecordProduction(starID int, unit galaxy.Unit)
	RecordConstellation(constellationID int, members []int)
}

// NoopRecorder discards all events
type NoopRecorder struct{}

func (NoopRecorder) RecordCollection(int, shared.ResourceKind, float64) {}
func (NoopRecorder) RecordProduction(int, galaxy.Unit)                  {}
func (NoopRecorder) RecordConstellation(int, []int)                     {}

// MultiRecorder fans every event out to all recorders in order
type MultiRecorder []EventRecorder

func (m MultiRecorder) RecordCollection(starID int, kind shared.ResourceKind, amount float64) {
	for _, r := range m {
		r.RecordCollection(starID, kind, amount)
	}
}

func (m MultiRecorder) RecordProduction(starID int, unit galaxy.Unit) {
	for _, r := range m {
		r.RecordProduction(starID, unit)
	}
}

func (m MultiRecorder) RecordConstellation(constellationID int, members []int) {
	for _, r := range m {
		r.RecordConstellation(constellationID, members)
	}
}
