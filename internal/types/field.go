package types

import (
	"github.com/google/uuid"
)

// Field is a plot of land. OwnerFarmID is the farm it structurally
// belongs to and never changes after creation; FarmID is the farm
// currently cultivating it and may temporarily differ while the field
// is lent out.
type Field struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Size        float64     `json:"size"`
	SizeUnit    string      `json:"size_unit"`
	Status      FieldStatus `gorm:"type:smallint;not null" json:"status"`
	SoilType    SoilType    `gorm:"type:smallint;not null" json:"soil_type"`
	FarmID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"farm_id"`
	OwnerFarmID uuid.UUID   `gorm:"type:uuid;not null;index" json:"owner_farm_id"`
}

func (Field) TableName() string {
	return "fields"
}
