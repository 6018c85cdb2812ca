package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/errs"
	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/repos"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// CultivationService manages planting-to-harvest cycles. Every
// operation resolves the cultivating farm's full aggregate first and
// requires the target field to currently sit in that farm's field set
// before touching storage.
type CultivationService interface {
	Create(ctx context.Context, in types.CreateCultivationInput, userID uuid.UUID) types.CultivationResult
	GetForField(ctx context.Context, fieldID, farmID, userID uuid.UUID) types.CultivationListResult
	Harvest(ctx context.Context, in types.HarvestInput, userID uuid.UUID) types.BaseResult
	UpdateStatus(ctx context.Context, in types.UpdateCultivationStatusInput, userID uuid.UUID) types.BaseResult
	Delete(ctx context.Context, in types.DeleteCultivationInput, userID uuid.UUID) types.BaseResult
}

type cultivationService struct {
	cultivations repos.CultivationRepo
	graph        repos.FarmGraphRepo
	notifier     FarmNotifier
	log          *logger.Logger
}

func NewCultivationService(
	cultivations repos.CultivationRepo,
	graph repos.FarmGraphRepo,
	notifier FarmNotifier,
	baseLog *logger.Logger,
) CultivationService {
	return &cultivationService{
		cultivations: cultivations,
		graph:        graph,
		notifier:     notifier,
		log:          baseLog.With("service", "CultivationService"),
	}
}

// guardFarmField resolves the cultivating farm and runs the shared
// membership checks. A nil error means the caller may proceed.
func (s *cultivationService) guardFarmField(ctx context.Context, farmID, fieldID, userID uuid.UUID) (*types.FarmInfo, *errs.AppError) {
	farm := s.graph.GetFullInfo(ctx, farmID)
	if farm == nil {
		return nil, errs.NotFound(errs.CodeCultFarmNotFound, "cultivating farm not found")
	}
	if !canAccessFarm(farm, userID) {
		return nil, errs.Forbidden(errs.CodeNotAuthorizedCultivation, "the user is not authorized to manage cultivations in the farm")
	}
	if !farm.HasField(fieldID) {
		return nil, errs.Validation(errs.CodeFieldNotInFarm, "the field is not cultivated by the farm")
	}
	return farm, nil
}

func (s *cultivationService) Create(ctx context.Context, in types.CreateCultivationInput, userID uuid.UUID) types.CultivationResult {
	farm, guardErr := s.guardFarmField(ctx, in.FarmID, in.FieldID, userID)
	if guardErr != nil {
		s.log.Warn("cultivation create refused", "farmID", in.FarmID, "fieldID", in.FieldID, "code", guardErr.Code)
		return types.CultivationResult{BaseResult: types.Fail(guardErr)}
	}

	cultivation := in.ToCultivation()
	if err := s.cultivations.Create(ctx, nil, cultivation); err != nil {
		s.log.Error("creating cultivation", "fieldID", in.FieldID, "error", err)
		return types.CultivationResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to create cultivation", err))}
	}

	s.notifier.FieldCultivationAdded(farm.ID, cultivation)
	s.log.Info("created cultivation", "cultivationID", cultivation.ID, "fieldID", in.FieldID, "crop", in.Crop)
	return types.CultivationResult{
		BaseResult:  types.OK(),
		Cultivation: &types.CultivationInfo{FieldCultivation: *cultivation},
	}
}

func (s *cultivationService) GetForField(ctx context.Context, fieldID, farmID, userID uuid.UUID) types.CultivationListResult {
	farm := s.graph.GetFullInfo(ctx, farmID)
	if farm == nil {
		return types.CultivationListResult{BaseResult: types.Fail(errs.NotFound(errs.CodeCultFarmNotFound, "cultivating farm not found"))}
	}
	if !canAccessFarm(farm, userID) {
		return types.CultivationListResult{BaseResult: types.Fail(errs.Forbidden(errs.CodeNotAuthorizedCultivation, "the user is not authorized to view cultivations in the farm"))}
	}

	cultivations := s.graph.GetFieldCultivations(ctx, fieldID)
	return types.CultivationListResult{BaseResult: types.OK(), Cultivations: cultivations}
}

func (s *cultivationService) Harvest(ctx context.Context, in types.HarvestInput, userID uuid.UUID) types.BaseResult {
	_, guardErr := s.guardFarmField(ctx, in.FarmID, in.FieldID, userID)
	if guardErr != nil {
		s.log.Warn("harvest refused", "farmID", in.FarmID, "fieldID", in.FieldID, "code", guardErr.Code)
		return types.Fail(guardErr)
	}

	cultivation, err := s.cultivations.GetByID(ctx, nil, in.CultivationID)
	if err != nil {
		s.log.Error("loading cultivation", "cultivationID", in.CultivationID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to load cultivation", err))
	}
	if cultivation == nil {
		return types.Fail(errs.NotFound(errs.CodeCultivationNotFound, "cultivation not found"))
	}
	if !in.HarvestDate.After(cultivation.PlantingDate) {
		return types.Fail(errs.Validation(errs.CodeHarvestBeforePlanting, "harvest date must be after the planting date").
			WithParams(map[string]any{"planting_date": cultivation.PlantingDate, "harvest_date": in.HarvestDate}))
	}
	if in.ActualYield < 0 {
		return types.Fail(errs.Validation(errs.CodeNegativeYield, "actual yield cannot be negative").
			WithParams(map[string]any{"actual_yield": in.ActualYield}))
	}

	rows, err := s.cultivations.UpdateHarvest(ctx, nil, in.CultivationID, in.ActualYield, in.YieldUnit, in.HarvestDate)
	if err != nil || rows == 0 {
		s.log.Error("recording harvest", "cultivationID", in.CultivationID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to record harvest", err))
	}

	s.notifier.FieldHarvested(in.FarmID, in)
	s.log.Info("recorded harvest", "cultivationID", in.CultivationID, "actualYield", in.ActualYield)
	return types.OK()
}

// UpdateStatus allows any target status; the lifecycle carries no
// transition restrictions beyond membership and authorization.
func (s *cultivationService) UpdateStatus(ctx context.Context, in types.UpdateCultivationStatusInput, userID uuid.UUID) types.BaseResult {
	_, guardErr := s.guardFarmField(ctx, in.FarmID, in.FieldID, userID)
	if guardErr != nil {
		s.log.Warn("cultivation status update refused", "farmID", in.FarmID, "fieldID", in.FieldID, "code", guardErr.Code)
		return types.Fail(guardErr)
	}
	if !in.Status.Valid() {
		return types.Fail(errs.Validation(errs.CodeUnknownEnumValue, "unknown cultivation status").
			WithParams(map[string]any{"status": int16(in.Status)}))
	}

	rows, err := s.cultivations.UpdateStatus(ctx, nil, in.CultivationID, in.Status)
	if err != nil || rows == 0 {
		s.log.Error("updating cultivation status", "cultivationID", in.CultivationID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to update cultivation status", err))
	}

	s.notifier.FieldCultivationUpdated(in.FarmID, in)
	s.log.Info("updated cultivation status", "cultivationID", in.CultivationID, "status", in.Status)
	return types.OK()
}

func (s *cultivationService) Delete(ctx context.Context, in types.DeleteCultivationInput, userID uuid.UUID) types.BaseResult {
	_, guardErr := s.guardFarmField(ctx, in.FarmID, in.FieldID, userID)
	if guardErr != nil {
		s.log.Warn("cultivation delete refused", "farmID", in.FarmID, "fieldID", in.FieldID, "code", guardErr.Code)
		return types.Fail(guardErr)
	}

	rows, err := s.cultivations.Delete(ctx, nil, in.CultivationID)
	if err != nil {
		s.log.Error("deleting cultivation", "cultivationID", in.CultivationID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to delete cultivation", err))
	}
	if rows == 0 {
		return types.Fail(errs.NotFound(errs.CodeCultivationNotFound, "cultivation not found"))
	}

	s.notifier.FieldCultivationDeleted(in.FarmID, in.CultivationID)
	s.log.Info("deleted cultivation", "cultivationID", in.CultivationID)
	return types.OK()
}
