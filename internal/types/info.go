package types

import (
	"time"

	"github.com/google/uuid"
)

// Aggregate views assembled by the read path. These are what list and
// detail reads hand back after folding flat join rows.

type FarmPerson struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

type FarmManagerInfo struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AssignedAt time.Time `json:"assigned_at"`
}

// FarmInfo is the full farm aggregate: the farm row, its owner, the
// manager roster, the fields it currently cultivates and the fields it
// structurally owns. Managers/Fields/OwnedFields are never nil.
type FarmInfo struct {
	Farm
	Owner       FarmPerson        `json:"owner"`
	Managers    []FarmManagerInfo `json:"managers"`
	Fields      []Field           `json:"fields"`
	OwnedFields []Field           `json:"owned_fields"`
}

// HasField reports whether the farm currently cultivates fieldID.
func (f *FarmInfo) HasField(fieldID uuid.UUID) bool {
	if f == nil {
		return false
	}
	for _, fld := range f.Fields {
		if fld.ID == fieldID {
			return true
		}
	}
	return false
}

// CultivationInfo is a cultivation with its historical cultivating
// farm (and, on list reads, the field it ran on) attached.
type CultivationInfo struct {
	FieldCultivation
	Field          *Field `json:"field,omitempty"`
	CultivatedFarm *Farm  `json:"cultivated_farm,omitempty"`
}

// FieldInfo is the field detail aggregate: the field row plus its
// current farm, its owner farm and every cultivation cycle.
type FieldInfo struct {
	Field
	CurrentFarm  *Farm             `json:"current_farm,omitempty"`
	OwnerFarm    *Farm             `json:"owner_farm,omitempty"`
	Cultivations []CultivationInfo `json:"cultivations"`
}
