package types

import (
	"time"

	"github.com/google/uuid"
)

type Farm struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Location  string     `json:"location"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
}

func (Farm) TableName() string {
	return "farms"
}

// FarmManager is one roster entry: a non-owner user granted
// operational rights on a farm. Composite primary key keeps a user
// from being assigned to the same farm twice.
type FarmManager struct {
	FarmID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"farm_id"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`
}

func (FarmManager) TableName() string {
	return "farm_managers"
}
