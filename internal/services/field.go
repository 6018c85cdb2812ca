package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/errs"
	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/repos"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// FieldService manages fields and the owner-farm/cultivating-farm
// split. Creation and descriptive updates authorize against the owner
// farm, status changes against the current cultivating farm, and
// reverting a lend accepts either side.
type FieldService interface {
	Create(ctx context.Context, in types.CreateFieldInput, userID uuid.UUID) types.FieldResult
	Get(ctx context.Context, fieldID, userID uuid.UUID) types.FieldResult
	Lend(ctx context.Context, in types.UpdateFieldFarmInput, userID uuid.UUID) types.BaseResult
	Revert(ctx context.Context, in types.UpdateFieldFarmInput, userID uuid.UUID) types.BaseResult
	Update(ctx context.Context, in types.UpdateFieldInput, userID uuid.UUID) types.BaseResult
	UpdateStatus(ctx context.Context, in types.UpdateFieldStatusInput, userID uuid.UUID) types.BaseResult
}

type fieldService struct {
	fields   repos.FieldRepo
	graph    repos.FarmGraphRepo
	notifier FarmNotifier
	log      *logger.Logger
}

func NewFieldService(
	fields repos.FieldRepo,
	graph repos.FarmGraphRepo,
	notifier FarmNotifier,
	baseLog *logger.Logger,
) FieldService {
	return &fieldService{
		fields:   fields,
		graph:    graph,
		notifier: notifier,
		log:      baseLog.With("service", "FieldService"),
	}
}

func (s *fieldService) Create(ctx context.Context, in types.CreateFieldInput, userID uuid.UUID) types.FieldResult {
	farm := s.graph.GetFullInfo(ctx, in.OwnerFarmID)
	if farm == nil {
		s.log.Warn("owner farm not found", "ownerFarmID", in.OwnerFarmID)
		return types.FieldResult{BaseResult: types.Fail(errs.NotFound(errs.CodeOwnerFarmNotFound, "owner farm not found"))}
	}
	if !canAccessFarm(farm, userID) {
		s.log.Warn("field create refused", "ownerFarmID", in.OwnerFarmID, "userID", userID)
		return types.FieldResult{BaseResult: types.Fail(errs.Forbidden(errs.CodeNotAuthorizedFarm, "the user is not authorized to add fields to the farm"))}
	}
	if in.Size < 0 {
		return types.FieldResult{BaseResult: types.Fail(errs.Validation(errs.CodeNegativeSize, "size must be more than 0").
			WithParams(map[string]any{"size": in.Size}))}
	}
	if ownedFieldNameTaken(farm, in.Name) {
		return types.FieldResult{BaseResult: types.Fail(errs.Validation(errs.CodeFieldNameTaken, "field with the same name already exists in the owner farm").
			WithParams(map[string]any{"name": in.Name}))}
	}

	field := in.ToField()
	if err := s.fields.Create(ctx, nil, field); err != nil {
		s.log.Error("creating field", "farmID", field.FarmID, "error", err)
		return types.FieldResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to create field", err))}
	}
	s.log.Info("created field", "fieldID", field.ID, "name", field.Name, "farmID", field.FarmID)

	info := &types.FieldInfo{
		Field:        *field,
		CurrentFarm:  &farm.Farm,
		OwnerFarm:    &farm.Farm,
		Cultivations: []types.CultivationInfo{},
	}
	s.notifier.FieldAdded(farm.ID, info)
	return types.FieldResult{BaseResult: types.OK(), Field: info}
}

// Get authorizes against the owner farm first and falls back to the
// current cultivating farm, so a borrowing farm's staff can read the
// fields they work.
func (s *fieldService) Get(ctx context.Context, fieldID, userID uuid.UUID) types.FieldResult {
	field := s.graph.GetFieldInfo(ctx, fieldID)
	if field == nil {
		s.log.Warn("field not found", "fieldID", fieldID)
		return types.FieldResult{BaseResult: types.Fail(errs.NotFound(errs.CodeFieldNotFound, "field not found"))}
	}

	ownerFarm := s.graph.GetFullInfo(ctx, field.OwnerFarmID)
	if ownerFarm == nil {
		s.log.Warn("owner farm not found", "ownerFarmID", field.OwnerFarmID, "fieldID", fieldID)
		return types.FieldResult{BaseResult: types.Fail(errs.NotFound(errs.CodeOwnerFarmNotFound, "owner farm not found"))}
	}
	if !canAccessFarm(ownerFarm, userID) {
		currentFarm := s.graph.GetFullInfo(ctx, field.FarmID)
		if currentFarm == nil {
			s.log.Warn("current farm not found", "farmID", field.FarmID, "fieldID", fieldID)
			return types.FieldResult{BaseResult: types.Fail(errs.NotFound(errs.CodeCultFarmNotFound, "cultivating farm not found"))}
		}
		if !canAccessFarm(currentFarm, userID) {
			s.log.Warn("field read refused", "fieldID", fieldID, "userID", userID)
			return types.FieldResult{BaseResult: types.Fail(errs.Forbidden(errs.CodeNotAuthorizedField, "the user is not authorized to access the field"))}
		}
	}

	return types.FieldResult{BaseResult: types.OK(), Field: field}
}

func (s *fieldService) Lend(ctx context.Context, in types.UpdateFieldFarmInput, userID uuid.UUID) types.BaseResult {
	farm := s.graph.GetFullInfo(ctx, in.OwnerFarmID)
	if farm == nil {
		s.log.Warn("owner farm not found", "ownerFarmID", in.OwnerFarmID)
		return types.Fail(errs.NotFound(errs.CodeOwnerFarmNotFound, "owner farm not found"))
	}
	if !canAccessFarm(farm, userID) {
		s.log.Warn("field lend refused", "ownerFarmID", in.OwnerFarmID, "userID", userID)
		return types.Fail(errs.Forbidden(errs.CodeNotAuthorizedFarm, "the user is not authorized to update fields in the owner farm"))
	}

	rows, err := s.fields.UpdateCurrentFarm(ctx, nil, in.FieldID, in.FarmID)
	if err != nil || rows == 0 {
		s.log.Error("lending field", "fieldID", in.FieldID, "farmID", in.FarmID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to update field's current farm", err))
	}

	s.notifier.FieldCultivatorChanged(in.OwnerFarmID, in)
	s.notifier.FieldCultivatorChanged(in.FarmID, in)
	s.log.Info("lent field", "fieldID", in.FieldID, "farmID", in.FarmID)
	return types.OK()
}

// Revert accepts either side of the lend: the owner farm's staff take
// the field back, or the borrowing farm's staff hand it back.
func (s *fieldService) Revert(ctx context.Context, in types.UpdateFieldFarmInput, userID uuid.UUID) types.BaseResult {
	ownerFarm := s.graph.GetFullInfo(ctx, in.OwnerFarmID)
	if ownerFarm == nil {
		s.log.Warn("owner farm not found", "ownerFarmID", in.OwnerFarmID)
		return types.Fail(errs.NotFound(errs.CodeOwnerFarmNotFound, "owner farm not found"))
	}
	if !canAccessFarm(ownerFarm, userID) {
		farm := s.graph.GetFullInfo(ctx, in.FarmID)
		if farm == nil {
			s.log.Warn("managing farm not found", "farmID", in.FarmID)
			return types.Fail(errs.NotFound(errs.CodeCultFarmNotFound, "managing farm not found"))
		}
		if !canAccessFarm(farm, userID) {
			s.log.Warn("field revert refused", "fieldID", in.FieldID, "userID", userID)
			return types.Fail(errs.Forbidden(errs.CodeNotAuthorizedField, "the user is not authorized to revert managing relationship of given field"))
		}
	}

	rows, err := s.fields.RevertCurrentFarm(ctx, nil, in.FieldID)
	if err != nil || rows == 0 {
		s.log.Error("reverting field", "fieldID", in.FieldID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to update field's current farm", err))
	}

	s.notifier.FieldCultivatorChanged(in.OwnerFarmID, in)
	s.notifier.FieldCultivatorChanged(in.FarmID, in)
	s.log.Info("reverted field to owner farm", "fieldID", in.FieldID)
	return types.OK()
}

func (s *fieldService) Update(ctx context.Context, in types.UpdateFieldInput, userID uuid.UUID) types.BaseResult {
	farm := s.graph.GetFullInfo(ctx, in.OwnerFarmID)
	if farm == nil {
		s.log.Warn("owner farm not found", "ownerFarmID", in.OwnerFarmID)
		return types.Fail(errs.NotFound(errs.CodeOwnerFarmNotFound, "owner farm not found"))
	}
	if !canAccessFarm(farm, userID) {
		s.log.Warn("field update refused", "ownerFarmID", in.OwnerFarmID, "userID", userID)
		return types.Fail(errs.Forbidden(errs.CodeNotAuthorizedFarm, "the user is not authorized to update fields in the owner farm"))
	}
	if in.Size < 0 {
		return types.Fail(errs.Validation(errs.CodeNegativeSize, "size must be more than 0").
			WithParams(map[string]any{"size": in.Size}))
	}
	if ownedFieldNameTakenByOther(farm, in.Name, in.FieldID) {
		return types.Fail(errs.Validation(errs.CodeFieldNameTaken, "field must have a unique name within a farm").
			WithParams(map[string]any{"name": in.Name}))
	}

	rows, err := s.fields.Update(ctx, nil, in)
	if err != nil || rows == 0 {
		s.log.Error("updating field", "fieldID", in.FieldID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to update field", err))
	}

	s.notifier.FieldUpdated(farm.ID, in)
	s.log.Info("updated field", "fieldID", in.FieldID, "userID", userID)
	return types.OK()
}

// UpdateStatus authorizes against the field's current cultivating
// farm: whoever works the field decides whether it is active.
func (s *fieldService) UpdateStatus(ctx context.Context, in types.UpdateFieldStatusInput, userID uuid.UUID) types.BaseResult {
	farm := s.graph.GetFullInfo(ctx, in.FarmID)
	if farm == nil {
		s.log.Warn("cultivating farm not found", "farmID", in.FarmID)
		return types.Fail(errs.NotFound(errs.CodeCultFarmNotFound, "cultivating farm not found"))
	}
	if !canAccessFarm(farm, userID) {
		s.log.Warn("field status update refused", "farmID", in.FarmID, "userID", userID)
		return types.Fail(errs.Forbidden(errs.CodeNotAuthorizedField, "the user is not authorized to update fields in the farm"))
	}

	rows, err := s.fields.UpdateStatus(ctx, nil, in.FieldID, in.Status)
	if err != nil || rows == 0 {
		s.log.Error("updating field status", "fieldID", in.FieldID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to update field status", err))
	}

	s.notifier.FieldStatusChanged(in.FarmID, in)
	s.log.Info("updated field status", "fieldID", in.FieldID, "status", in.Status)
	return types.OK()
}

// Name uniqueness is case-insensitive among the owner farm's owned
// fields. The check runs against the already-resolved aggregate, so
// no extra round trip happens here.
func ownedFieldNameTaken(farm *types.FarmInfo, name string) bool {
	for i := range farm.OwnedFields {
		if strings.EqualFold(farm.OwnedFields[i].Name, name) {
			return true
		}
	}
	return false
}

func ownedFieldNameTakenByOther(farm *types.FarmInfo, name string, fieldID uuid.UUID) bool {
	for i := range farm.OwnedFields {
		if farm.OwnedFields[i].ID != fieldID && strings.EqualFold(farm.OwnedFields[i].Name, name) {
			return true
		}
	}
	return false
}
