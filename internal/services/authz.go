package services

import (
	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/types"
)

// canAccessFarm is the single authorization predicate for farm-scoped
// operations: the user must be the farm's owner or on its manager
// roster. Owner-only operations check OwnerID directly instead.
func canAccessFarm(farm *types.FarmInfo, userID uuid.UUID) bool {
	if farm == nil {
		return false
	}
	if farm.OwnerID == userID {
		return true
	}
	for _, m := range farm.Managers {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
