package persistence

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// EventLedgerRepository persists simulation events and answers history queries
type EventLedgerRepository interface {
	Collections(ctx context.Context, starID *int, since *time.Time, limit int) ([]CollectionEventModel, error)
	Productions(ctx context.Context, starID *int, since *time.Time, limit int) ([]ProductionEventModel, error)
	Constellations(ctx context.Context, limit int) ([]ConstellationEventModel, error)
	TotalCollected(ctx context.Context, resource shared.ResourceKind) (float64, error)
}

// GormEventLedger is a GORM-based event ledger. It implements
// economy.EventRecorder so the engine can write through it directly.
// Write failures are swallowed: the ledger is observability, and a broken
// database must never stall a tick.
type GormEventLedger struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormEventLedger creates a new event ledger repository.
// If clock is nil, uses RealClock (production behavior).
func NewGormEventLedger(db *gorm.DB, clock shared.Clock) *GormEventLedger {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormEventLedger{db: db, clock: clock}
}

// RecordCollection writes one collection event row
func (r *GormEventLedger) RecordCollection(starID int, kind shared.ResourceKind, amount float64) {
	_ = r.db.Create(&CollectionEventModel{
		StarID:    starID,
		Resource:  string(kind),
		Amount:    amount,
		Timestamp: r.clock.Now(),
	}).Error
}

// RecordProduction writes one production event row
func (r *GormEventLedger) RecordProduction(starID int, unit galaxy.Unit) {
	_ = r.db.Create(&ProductionEventModel{
		StarID:    starID,
		Unit:      string(unit.Kind),
		Count:     unit.Count,
		Timestamp: r.clock.Now(),
	}).Error
}

// RecordConstellation writes one constellation formation row
func (r *GormEventLedger) RecordConstellation(constellationID int, members []int) {
	memberJSON, err := json.Marshal(members)
	if err != nil {
		return
	}
	_ = r.db.Create(&ConstellationEventModel{
		ConstellationID: constellationID,
		Members:         string(memberJSON),
		Timestamp:       r.clock.Now(),
	}).Error
}

// Collections retrieves collection events, newest first
func (r *GormEventLedger) Collections(ctx context.Context, starID *int, since *time.Time, limit int) ([]CollectionEventModel, error) {
	query := r.db.WithContext(ctx).Model(&CollectionEventModel{})
	if starID != nil {
		query = query.Where("star_id = ?", *starID)
	}
	if since != nil {
		query = query.Where("timestamp >= ?", *since)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []CollectionEventModel
	if err := query.Order("timestamp DESC, id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Productions retrieves production events, newest first
func (r *GormEventLedger) Productions(ctx context.Context, starID *int, since *time.Time, limit int) ([]ProductionEventModel, error) {
	query := r.db.WithContext(ctx).Model(&ProductionEventModel{})
	if starID != nil {
		query = query.Where("star_id = ?", *starID)
	}
	if since != nil {
		query = query.Where("timestamp >= ?", *since)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []ProductionEventModel
	if err := query.Order("timestamp DESC, id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Constellations retrieves constellation formation events, newest first
func (r *GormEventLedger) Constellations(ctx context.Context, limit int) ([]ConstellationEventModel, error) {
	query := r.db.WithContext(ctx).Model(&ConstellationEventModel{}).Order("timestamp DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []ConstellationEventModel
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// TotalCollected sums all collected amounts for a resource kind
func (r *GormEventLedger) TotalCollected(ctx context.Context, resource shared.ResourceKind) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&CollectionEventModel{}).
		Select("SUM(amount)").
		Where("resource = ?", string(resource)).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
