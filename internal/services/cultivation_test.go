package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/paavkar/AgricultureApp/internal/errs"
	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
)

func newCultivationFixture(t *testing.T) (*fakeGraph, *fakeCultivationRepo, *types.FarmInfo, uuid.UUID, types.Field) {
	t.Helper()
	graph := newFakeGraph()
	cultivations := newFakeCultivationRepo()
	farm, ownerID := newTestFarm("Farm A")
	field := addFieldTo(farm, "North-40")
	graph.farms[farm.ID] = farm
	return graph, cultivations, farm, ownerID, field
}

func seedCultivation(repo *fakeCultivationRepo, fieldID, farmID uuid.UUID, planting time.Time) *types.FieldCultivation {
	cultivation := types.CreateCultivationInput{
		Crop:         "Barley",
		YieldUnit:    "t",
		PlantingDate: planting,
		FieldID:      fieldID,
		FarmID:       farmID,
	}.ToCultivation()
	repo.cultivations[cultivation.ID] = cultivation
	return cultivation
}

func TestCultivationService_CreateRequiresFieldMembership(t *testing.T) {
	graph, cultivations, farm, ownerID, _ := newCultivationFixture(t)
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	foreignField, _ := uuid.NewV7()
	result := svc.Create(context.Background(), types.CreateCultivationInput{
		Crop:         "Barley",
		PlantingDate: time.Now().UTC(),
		FieldID:      foreignField,
		FarmID:       farm.ID,
	}, ownerID)

	require.False(t, result.Succeeded)
	require.Equal(t, errs.CodeFieldNotInFarm, result.Code)
	require.Zero(t, cultivations.mutations)
}

func TestCultivationService_CreateForbiddenForStranger(t *testing.T) {
	graph, cultivations, farm, _, field := newCultivationFixture(t)
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	stranger, _ := uuid.NewV7()
	result := svc.Create(context.Background(), types.CreateCultivationInput{
		Crop:         "Barley",
		PlantingDate: time.Now().UTC(),
		FieldID:      field.ID,
		FarmID:       farm.ID,
	}, stranger)

	require.False(t, result.Succeeded)
	require.Equal(t, errs.CodeNotAuthorizedCultivation, result.Code)
	require.Zero(t, cultivations.mutations)
}

func TestCultivationService_CreateSucceedsAndNotifies(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	notifier := &recordNotifier{}
	svc := NewCultivationService(cultivations, graph, notifier, logger.NewNop())

	result := svc.Create(context.Background(), types.CreateCultivationInput{
		Crop:         "Barley",
		PlantingDate: time.Now().UTC(),
		FieldID:      field.ID,
		FarmID:       farm.ID,
	}, ownerID)

	require.True(t, result.Succeeded)
	require.NotNil(t, result.Cultivation)
	require.Equal(t, farm.ID, result.Cultivation.FarmID)
	require.Equal(t, []string{"FieldCultivationAdded"}, notifier.events)
}

func TestCultivationService_HarvestRejectsDateNotAfterPlanting(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	planting := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	cultivation := seedCultivation(cultivations, field.ID, farm.ID, planting)
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	for _, harvestDate := range []time.Time{planting, planting.AddDate(0, -1, 0)} {
		result := svc.Harvest(context.Background(), types.HarvestInput{
			FieldID:       field.ID,
			FarmID:        farm.ID,
			CultivationID: cultivation.ID,
			ActualYield:   10,
			YieldUnit:     "t",
			HarvestDate:   harvestDate,
		}, ownerID)

		require.False(t, result.Succeeded)
		require.Equal(t, errs.CodeHarvestBeforePlanting, result.Code)
		require.Equal(t, planting, result.Params["planting_date"])
	}
	require.Zero(t, cultivations.mutations)
	require.Equal(t, types.CultivationStatusPlanned, cultivation.Status)
}

func TestCultivationService_HarvestRejectsNegativeYield(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	planting := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	cultivation := seedCultivation(cultivations, field.ID, farm.ID, planting)
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	result := svc.Harvest(context.Background(), types.HarvestInput{
		FieldID:       field.ID,
		FarmID:        farm.ID,
		CultivationID: cultivation.ID,
		ActualYield:   -0.5,
		YieldUnit:     "t",
		HarvestDate:   planting.AddDate(0, 4, 0),
	}, ownerID)

	require.False(t, result.Succeeded)
	require.Equal(t, errs.CodeNegativeYield, result.Code)
	require.Zero(t, cultivations.mutations)
}

func TestCultivationService_HarvestPersistsEverythingTogether(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	planting := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	cultivation := seedCultivation(cultivations, field.ID, farm.ID, planting)
	notifier := &recordNotifier{}
	svc := NewCultivationService(cultivations, graph, notifier, logger.NewNop())

	harvestDate := planting.AddDate(0, 4, 0)
	result := svc.Harvest(context.Background(), types.HarvestInput{
		FieldID:       field.ID,
		FarmID:        farm.ID,
		CultivationID: cultivation.ID,
		ActualYield:   12.5,
		YieldUnit:     "t",
		HarvestDate:   harvestDate,
	}, ownerID)

	require.True(t, result.Succeeded)
	require.Equal(t, types.CultivationStatusHarvested, cultivation.Status)
	require.NotNil(t, cultivation.ActualYield)
	require.InDelta(t, 12.5, *cultivation.ActualYield, 1e-9)
	require.NotNil(t, cultivation.HarvestDate)
	require.True(t, cultivation.HarvestDate.Equal(harvestDate))
	require.Equal(t, []string{"FieldHarvested"}, notifier.events)
}

func TestCultivationService_HarvestMissingCultivation(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	missing, _ := uuid.NewV7()
	result := svc.Harvest(context.Background(), types.HarvestInput{
		FieldID:       field.ID,
		FarmID:        farm.ID,
		CultivationID: missing,
		ActualYield:   1,
		HarvestDate:   time.Now().UTC(),
	}, ownerID)

	require.False(t, result.Succeeded)
	require.Equal(t, errs.CodeCultivationNotFound, result.Code)
}

// Status transitions carry no ordering guard: moving Harvested back to
// Planned is allowed on purpose.
func TestCultivationService_UpdateStatusAllowsAnyTransition(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	cultivation := seedCultivation(cultivations, field.ID, farm.ID, time.Now().UTC())
	cultivation.Status = types.CultivationStatusHarvested
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	result := svc.UpdateStatus(context.Background(), types.UpdateCultivationStatusInput{
		FieldID:       field.ID,
		FarmID:        farm.ID,
		CultivationID: cultivation.ID,
		Status:        types.CultivationStatusPlanned,
	}, ownerID)

	require.True(t, result.Succeeded)
	require.Equal(t, types.CultivationStatusPlanned, cultivation.Status)
}

func TestCultivationService_UpdateStatusRejectsUnknownOrdinal(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	cultivation := seedCultivation(cultivations, field.ID, farm.ID, time.Now().UTC())
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	result := svc.UpdateStatus(context.Background(), types.UpdateCultivationStatusInput{
		FieldID:       field.ID,
		FarmID:        farm.ID,
		CultivationID: cultivation.ID,
		Status:        types.CultivationStatus(9),
	}, ownerID)

	require.False(t, result.Succeeded)
	require.Equal(t, errs.CodeUnknownEnumValue, result.Code)
	require.Zero(t, cultivations.mutations)
}

func TestCultivationService_DeleteRemovesAndNotifies(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	cultivation := seedCultivation(cultivations, field.ID, farm.ID, time.Now().UTC())
	notifier := &recordNotifier{}
	svc := NewCultivationService(cultivations, graph, notifier, logger.NewNop())

	result := svc.Delete(context.Background(), types.DeleteCultivationInput{
		FieldID:       field.ID,
		FarmID:        farm.ID,
		CultivationID: cultivation.ID,
	}, ownerID)

	require.True(t, result.Succeeded)
	require.Empty(t, cultivations.cultivations)
	require.Equal(t, []string{"FieldCultivationDeleted"}, notifier.events)
}

func TestCultivationService_GetForFieldRequiresFarmAccess(t *testing.T) {
	graph, cultivations, farm, ownerID, field := newCultivationFixture(t)
	graph.cultivations[field.ID] = []types.CultivationInfo{
		{FieldCultivation: *seedCultivation(cultivations, field.ID, farm.ID, time.Now().UTC())},
	}
	svc := NewCultivationService(cultivations, graph, NopNotifier{}, logger.NewNop())

	result := svc.GetForField(context.Background(), field.ID, farm.ID, ownerID)
	require.True(t, result.Succeeded)
	require.Len(t, result.Cultivations, 1)

	stranger, _ := uuid.NewV7()
	refused := svc.GetForField(context.Background(), field.ID, farm.ID, stranger)
	require.False(t, refused.Succeeded)
	require.Equal(t, errs.CodeNotAuthorizedCultivation, refused.Code)
}
