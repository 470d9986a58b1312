package persistence

import (
	"encoding/json"
	"time"
)

// CollectionEventModel represents the collection_events table. One row per
// resource kind actually withdrawn during a collection.
type CollectionEventModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	StarID    int       `gorm:"column:star_id;not null;index"`
	Resource  string    `gorm:"column:resource;not null"`
	Amount    float64   `gorm:"column:amount;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}

func (CollectionEventModel) TableName() string {
	return "collection_events"
}

// ProductionEventModel represents the production_events table
type ProductionEventModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	StarID    int       `gorm:"column:star_id;not null;index"`
	Unit      string    `gorm:"column:unit;not null"`
	Count     int       `gorm:"column:count;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}

func (ProductionEventModel) TableName() string {
	return "production_events"
}

// ConstellationEventModel represents the constellation_events table.
// Members is a JSON array of star IDs stored as text.
type ConstellationEventModel struct {
	ID              int       `gorm:"column:id;primaryKey;autoIncrement"`
	ConstellationID int       `gorm:"column:constellation_id;not null;index"`
	Members         string    `gorm:"column:members;type:text;not null"`
	Timestamp       time.Time `gorm:"column:timestamp;not null"`
}

func (ConstellationEventModel) TableName() string {
	return "constellation_events"
}

// MemberIDs decodes the Members JSON array
func (m ConstellationEventModel) MemberIDs() ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(m.Members), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
