package types

import (
	"time"

	"github.com/google/uuid"
)

// User is the directory projection this service reads. Credentials,
// tokens and the rest of the identity surface live in the auth
// service; only lookup fields are modeled here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
