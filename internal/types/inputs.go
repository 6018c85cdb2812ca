package types

import (
	"time"

	"github.com/google/uuid"
)

// Service inputs. Each Create input knows how to mint its model with a
// UUIDv7 id so created entities sort by creation time.

type CreateFarmInput struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

func (in CreateFarmInput) ToFarm(userID uuid.UUID) *Farm {
	id, _ := uuid.NewV7()
	return &Farm{
		ID:        id,
		Name:      in.Name,
		Location:  in.Location,
		OwnerID:   userID,
		CreatedAt: time.Now().UTC(),
		CreatedBy: userID,
	}
}

type UpdateFarmInput struct {
	ID      uuid.UUID `json:"id" binding:"required"`
	Name    string    `json:"name" binding:"required"`
	OwnerID uuid.UUID `json:"owner_id" binding:"required"`
}

type AddManagerInput struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateFieldInput struct {
	Name        string      `json:"name" binding:"required"`
	Size        float64     `json:"size"`
	SizeUnit    string      `json:"size_unit"`
	Status      FieldStatus `json:"status"`
	SoilType    SoilType    `json:"soil_type"`
	FarmID      uuid.UUID   `json:"farm_id" binding:"required"`
	OwnerFarmID uuid.UUID   `json:"owner_farm_id" binding:"required"`
}

func (in CreateFieldInput) ToField() *Field {
	id, _ := uuid.NewV7()
	return &Field{
		ID:          id,
		Name:        in.Name,
		Size:        in.Size,
		SizeUnit:    in.SizeUnit,
		Status:      in.Status,
		SoilType:    in.SoilType,
		FarmID:      in.FarmID,
		OwnerFarmID: in.OwnerFarmID,
	}
}

type UpdateFieldInput struct {
	FieldID     uuid.UUID   `json:"field_id" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	Size        float64     `json:"size"`
	SizeUnit    string      `json:"size_unit"`
	Status      FieldStatus `json:"status"`
	SoilType    SoilType    `json:"soil_type"`
	OwnerFarmID uuid.UUID   `json:"owner_farm_id" binding:"required"`
}

// UpdateFieldFarmInput drives both lending (FarmID is the borrowing
// farm) and reverting (FarmID is the farm lending ends on).
type UpdateFieldFarmInput struct {
	FieldID     uuid.UUID `json:"field_id" binding:"required"`
	FarmID      uuid.UUID `json:"farm_id" binding:"required"`
	OwnerFarmID uuid.UUID `json:"owner_farm_id" binding:"required"`
}

type UpdateFieldStatusInput struct {
	FieldID uuid.UUID   `json:"field_id" binding:"required"`
	FarmID  uuid.UUID   `json:"farm_id" binding:"required"`
	Status  FieldStatus `json:"status"`
}

type CreateCultivationInput struct {
	Crop          string            `json:"crop" binding:"required"`
	ExpectedYield *float64          `json:"expected_yield,omitempty"`
	YieldUnit     string            `json:"yield_unit"`
	Status        CultivationStatus `json:"status"`
	PlantingDate  time.Time         `json:"planting_date" binding:"required"`
	FieldID       uuid.UUID         `json:"field_id" binding:"required"`
	FarmID        uuid.UUID         `json:"farm_id" binding:"required"`
}

func (in CreateCultivationInput) ToCultivation() *FieldCultivation {
	id, _ := uuid.NewV7()
	return &FieldCultivation{
		ID:            id,
		Crop:          in.Crop,
		ExpectedYield: in.ExpectedYield,
		YieldUnit:     in.YieldUnit,
		Status:        in.Status,
		PlantingDate:  in.PlantingDate,
		FieldID:       in.FieldID,
		FarmID:        in.FarmID,
	}
}

type HarvestInput struct {
	FieldID       uuid.UUID `json:"field_id" binding:"required"`
	FarmID        uuid.UUID `json:"farm_id" binding:"required"`
	CultivationID uuid.UUID `json:"cultivation_id" binding:"required"`
	ActualYield   float64   `json:"actual_yield"`
	YieldUnit     string    `json:"yield_unit"`
	HarvestDate   time.Time `json:"harvest_date" binding:"required"`
}

type UpdateCultivationStatusInput struct {
	FieldID       uuid.UUID         `json:"field_id" binding:"required"`
	FarmID        uuid.UUID         `json:"farm_id" binding:"required"`
	CultivationID uuid.UUID         `json:"cultivation_id" binding:"required"`
	Status        CultivationStatus `json:"status"`
}

type DeleteCultivationInput struct {
	FieldID       uuid.UUID `json:"field_id" binding:"required"`
	FarmID        uuid.UUID `json:"farm_id" binding:"required"`
	CultivationID uuid.UUID `json:"cultivation_id" binding:"required"`
}
