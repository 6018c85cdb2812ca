package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DomainEvent is the audit row written for every notification the
// service emits. Persistence is best-effort and never sits on the
// request path.
type DomainEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	GroupID   *uuid.UUID     `gorm:"type:uuid;index" json:"group_id,omitempty"`
	Event     string         `gorm:"not null" json:"event"`
	Payload   datatypes.JSON `json:"payload,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (DomainEvent) TableName() string {
	return "domain_events"
}
