package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/errs"
	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/repos"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// FarmService owns the farm aggregate and its manager roster. Every
// method returns a result envelope; failures never propagate as
// errors across this boundary.
type FarmService interface {
	Create(ctx context.Context, in types.CreateFarmInput, userID uuid.UUID) types.FarmResult
	GetFullInfo(ctx context.Context, farmID uuid.UUID) types.FarmInfoResult
	GetByOwner(ctx context.Context, ownerID uuid.UUID) types.FarmListResult
	GetByManager(ctx context.Context, managerID uuid.UUID) types.FarmListResult
	Update(ctx context.Context, in types.UpdateFarmInput, userID uuid.UUID) types.FarmResult
	Delete(ctx context.Context, farmID, userID uuid.UUID) types.BaseResult
	AddManager(ctx context.Context, farmID uuid.UUID, email string, userID uuid.UUID) types.ManagerResult
	RemoveManager(ctx context.Context, farmID, managerID, userID uuid.UUID) types.BaseResult
}

type farmService struct {
	farms    repos.FarmRepo
	graph    repos.FarmGraphRepo
	users    repos.UserRepo
	notifier FarmNotifier
	log      *logger.Logger
}

func NewFarmService(
	farms repos.FarmRepo,
	graph repos.FarmGraphRepo,
	users repos.UserRepo,
	notifier FarmNotifier,
	baseLog *logger.Logger,
) FarmService {
	return &farmService{
		farms:    farms,
		graph:    graph,
		users:    users,
		notifier: notifier,
		log:      baseLog.With("service", "FarmService"),
	}
}

func (s *farmService) Create(ctx context.Context, in types.CreateFarmInput, userID uuid.UUID) types.FarmResult {
	farm := in.ToFarm(userID)
	if err := s.farms.Create(ctx, nil, farm); err != nil {
		s.log.Error("creating farm", "ownerID", userID, "error", err)
		return types.FarmResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to create farm", err))}
	}
	s.log.Info("created farm", "farmID", farm.ID, "name", farm.Name, "ownerID", farm.OwnerID)
	return types.FarmResult{BaseResult: types.OK(), Farm: farm}
}

func (s *farmService) GetFullInfo(ctx context.Context, farmID uuid.UUID) types.FarmInfoResult {
	farm := s.graph.GetFullInfo(ctx, farmID)
	if farm == nil {
		return types.FarmInfoResult{BaseResult: types.Fail(errs.NotFound(errs.CodeFarmNotFound, "farm not found"))}
	}
	return types.FarmInfoResult{BaseResult: types.OK(), Farm: farm}
}

func (s *farmService) GetByOwner(ctx context.Context, ownerID uuid.UUID) types.FarmListResult {
	return types.FarmListResult{BaseResult: types.OK(), Farms: s.graph.GetByOwner(ctx, ownerID)}
}

func (s *farmService) GetByManager(ctx context.Context, managerID uuid.UUID) types.FarmListResult {
	return types.FarmListResult{BaseResult: types.OK(), Farms: s.graph.GetByManager(ctx, managerID)}
}

func (s *farmService) Update(ctx context.Context, in types.UpdateFarmInput, userID uuid.UUID) types.FarmResult {
	farm := s.graph.GetFullInfo(ctx, in.ID)
	if farm == nil {
		return types.FarmResult{BaseResult: types.Fail(errs.NotFound(errs.CodeFarmNotFound, "farm not found"))}
	}
	if !canAccessFarm(farm, userID) {
		s.log.Warn("farm update refused", "farmID", in.ID, "userID", userID)
		return types.FarmResult{BaseResult: types.Fail(errs.Forbidden(errs.CodeNotAuthorizedFarm, "the user is not authorized to update the farm"))}
	}

	rows, err := s.farms.Update(ctx, nil, in, userID)
	if err != nil || rows == 0 {
		s.log.Error("updating farm", "farmID", in.ID, "error", err)
		return types.FarmResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to update farm", err))}
	}

	s.log.Info("updated farm", "farmID", in.ID, "userID", userID)
	updated := farm.Farm
	updated.Name = in.Name
	updated.OwnerID = in.OwnerID
	return types.FarmResult{BaseResult: types.OK(), Farm: &updated}
}

// Delete is owner-only; the repo's owner-scoped delete makes a
// non-owner call indistinguishable from a missing farm.
func (s *farmService) Delete(ctx context.Context, farmID, userID uuid.UUID) types.BaseResult {
	rows, err := s.farms.Delete(ctx, nil, farmID, userID)
	if err != nil {
		s.log.Error("deleting farm", "farmID", farmID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to delete farm", err))
	}
	if rows == 0 {
		s.log.Warn("farm delete matched nothing", "farmID", farmID, "userID", userID)
		return types.Fail(errs.NotFound(errs.CodeFarmNotFound, "farm not found"))
	}
	s.log.Info("deleted farm", "farmID", farmID, "userID", userID)
	return types.OK()
}

func (s *farmService) AddManager(ctx context.Context, farmID uuid.UUID, email string, userID uuid.UUID) types.ManagerResult {
	farm, err := s.farms.GetByID(ctx, nil, farmID)
	if err != nil {
		s.log.Error("loading farm", "farmID", farmID, "error", err)
		return types.ManagerResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to load farm", err))}
	}
	if farm == nil {
		return types.ManagerResult{BaseResult: types.Fail(errs.NotFound(errs.CodeFarmNotFound, "farm not found"))}
	}
	if farm.OwnerID != userID {
		return types.ManagerResult{BaseResult: types.Fail(errs.Forbidden(errs.CodeOwnerOnly, "only the farm owner can manage managers"))}
	}

	user, err := s.users.GetByEmail(ctx, nil, email)
	if err != nil {
		s.log.Error("looking up user by email", "error", err)
		return types.ManagerResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to look up user", err))}
	}
	if user == nil {
		return types.ManagerResult{BaseResult: types.Fail(errs.NotFound(errs.CodeUserNotFound, "user not found with given email"))}
	}
	if farm.OwnerID == user.ID {
		return types.ManagerResult{BaseResult: types.Fail(errs.Validation(errs.CodeOwnerAsManager, "the owner cannot be added as a manager").
			WithParams(map[string]any{"email": email}))}
	}

	exists, err := s.farms.IsUserFarmManager(ctx, nil, farmID, user.ID)
	if err != nil {
		s.log.Error("checking manager roster", "farmID", farmID, "managerID", user.ID, "error", err)
		return types.ManagerResult{BaseResult: types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to check the manager roster", err))}
	}
	if exists {
		return types.ManagerResult{BaseResult: types.Fail(errs.Conflict(errs.CodeManagerExists, "the user is already a manager of the farm"))}
	}

	manager := &types.FarmManager{FarmID: farmID, UserID: user.ID, AssignedAt: time.Now().UTC()}
	if err := s.farms.AddManager(ctx, nil, manager); err != nil {
		// the composite primary key backstops concurrent inserts
		s.log.Error("adding manager", "farmID", farmID, "managerID", user.ID, "error", err)
		return types.ManagerResult{BaseResult: types.Fail(errs.Conflict(errs.CodeManagerExists, "failed to add manager to farm"))}
	}

	s.notifier.UserAddedToFarm(user.ID, farmID)
	return types.ManagerResult{
		BaseResult: types.OK(),
		Manager: &types.FarmManagerInfo{
			UserID:     user.ID,
			Name:       user.Name,
			Email:      user.Email,
			AssignedAt: manager.AssignedAt,
		},
	}
}

func (s *farmService) RemoveManager(ctx context.Context, farmID, managerID, userID uuid.UUID) types.BaseResult {
	farm, err := s.farms.GetByID(ctx, nil, farmID)
	if err != nil {
		s.log.Error("loading farm", "farmID", farmID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to load farm", err))
	}
	if farm == nil {
		return types.Fail(errs.NotFound(errs.CodeFarmNotFound, "farm not found"))
	}
	if farm.OwnerID != userID {
		return types.Fail(errs.Forbidden(errs.CodeOwnerOnly, "only the farm owner can manage managers"))
	}

	rows, err := s.farms.RemoveManager(ctx, nil, farmID, managerID)
	if err != nil {
		s.log.Error("removing manager", "farmID", farmID, "managerID", managerID, "error", err)
		return types.Fail(errs.Storage(errs.CodeStorageFailure, "failed to remove manager from farm", err))
	}
	if rows == 0 {
		return types.Fail(errs.NotFound(errs.CodeUserNotFound, "manager not found on farm"))
	}

	s.notifier.UserRemovedFromFarm(managerID, farmID)
	return types.OK()
}
