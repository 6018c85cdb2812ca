package types

import (
	"time"

	"github.com/google/uuid"
)

// FieldCultivation records one planting-to-harvest cycle on a field.
// FarmID snapshots the farm that was cultivating the field when the
// cycle was created; later field relocations do not rewrite it.
type FieldCultivation struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Crop          string            `gorm:"not null" json:"crop"`
	ExpectedYield *float64          `json:"expected_yield,omitempty"`
	ActualYield   *float64          `json:"actual_yield,omitempty"`
	YieldUnit     string            `json:"yield_unit"`
	Status        CultivationStatus `gorm:"type:smallint;not null" json:"status"`
	PlantingDate  time.Time         `gorm:"not null" json:"planting_date"`
	HarvestDate   *time.Time        `json:"harvest_date,omitempty"`
	FieldID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"field_id"`
	FarmID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"farm_id"`
}

func (FieldCultivation) TableName() string {
	return "field_cultivations"
}
