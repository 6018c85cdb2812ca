package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paavkar/AgricultureApp/internal/types"
)

// In-memory fakes for the repo interfaces. Mutation counters let
// tests assert that refused operations never touch storage.

type fakeGraph struct {
	farms        map[uuid.UUID]*types.FarmInfo
	fields       map[uuid.UUID]*types.FieldInfo
	cultivations map[uuid.UUID][]types.CultivationInfo
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		farms:        map[uuid.UUID]*types.FarmInfo{},
		fields:       map[uuid.UUID]*types.FieldInfo{},
		cultivations: map[uuid.UUID][]types.CultivationInfo{},
	}
}

func (g *fakeGraph) GetFullInfo(_ context.Context, farmID uuid.UUID) *types.FarmInfo {
	return g.farms[farmID]
}

func (g *fakeGraph) GetByOwner(_ context.Context, ownerID uuid.UUID) []*types.FarmInfo {
	out := []*types.FarmInfo{}
	for _, f := range g.farms {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out
}

func (g *fakeGraph) GetByManager(_ context.Context, managerID uuid.UUID) []*types.FarmInfo {
	out := []*types.FarmInfo{}
	for _, f := range g.farms {
		for _, m := range f.Managers {
			if m.UserID == managerID {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

func (g *fakeGraph) GetFieldInfo(_ context.Context, fieldID uuid.UUID) *types.FieldInfo {
	return g.fields[fieldID]
}

func (g *fakeGraph) GetFieldCultivations(_ context.Context, fieldID uuid.UUID) []types.CultivationInfo {
	if c, ok := g.cultivations[fieldID]; ok {
		return c
	}
	return []types.CultivationInfo{}
}

type fakeFieldRepo struct {
	fields    map[uuid.UUID]*types.Field
	mutations int
}

func newFakeFieldRepo() *fakeFieldRepo {
	return &fakeFieldRepo{fields: map[uuid.UUID]*types.Field{}}
}

func (r *fakeFieldRepo) Create(_ context.Context, _ *gorm.DB, field *types.Field) error {
	r.mutations++
	r.fields[field.ID] = field
	return nil
}

func (r *fakeFieldRepo) Update(_ context.Context, _ *gorm.DB, in types.UpdateFieldInput) (int64, error) {
	field, ok := r.fields[in.FieldID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	field.Name = in.Name
	field.Size = in.Size
	field.SizeUnit = in.SizeUnit
	field.Status = in.Status
	field.SoilType = in.SoilType
	return 1, nil
}

func (r *fakeFieldRepo) UpdateCurrentFarm(_ context.Context, _ *gorm.DB, fieldID, farmID uuid.UUID) (int64, error) {
	field, ok := r.fields[fieldID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	field.FarmID = farmID
	return 1, nil
}

func (r *fakeFieldRepo) RevertCurrentFarm(_ context.Context, _ *gorm.DB, fieldID uuid.UUID) (int64, error) {
	field, ok := r.fields[fieldID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	field.FarmID = field.OwnerFarmID
	return 1, nil
}

func (r *fakeFieldRepo) UpdateStatus(_ context.Context, _ *gorm.DB, fieldID uuid.UUID, status types.FieldStatus) (int64, error) {
	field, ok := r.fields[fieldID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	field.Status = status
	return 1, nil
}

type fakeFarmRepo struct {
	farms     map[uuid.UUID]*types.Farm
	managers  []types.FarmManager
	mutations int
}

func newFakeFarmRepo() *fakeFarmRepo {
	return &fakeFarmRepo{farms: map[uuid.UUID]*types.Farm{}}
}

func (r *fakeFarmRepo) Create(_ context.Context, _ *gorm.DB, farm *types.Farm) error {
	r.mutations++
	r.farms[farm.ID] = farm
	return nil
}

func (r *fakeFarmRepo) GetByID(_ context.Context, _ *gorm.DB, farmID uuid.UUID) (*types.Farm, error) {
	return r.farms[farmID], nil
}

func (r *fakeFarmRepo) Update(_ context.Context, _ *gorm.DB, in types.UpdateFarmInput, updatedBy uuid.UUID) (int64, error) {
	farm, ok := r.farms[in.ID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	farm.Name = in.Name
	farm.OwnerID = in.OwnerID
	now := time.Now().UTC()
	farm.UpdatedAt = &now
	farm.UpdatedBy = &updatedBy
	return 1, nil
}

func (r *fakeFarmRepo) Delete(_ context.Context, _ *gorm.DB, farmID, ownerID uuid.UUID) (int64, error) {
	farm, ok := r.farms[farmID]
	if !ok || farm.OwnerID != ownerID {
		return 0, nil
	}
	r.mutations++
	delete(r.farms, farmID)
	return 1, nil
}

func (r *fakeFarmRepo) AddManager(_ context.Context, _ *gorm.DB, manager *types.FarmManager) error {
	for _, m := range r.managers {
		if m.FarmID == manager.FarmID && m.UserID == manager.UserID {
			return fmt.Errorf("duplicate key")
		}
	}
	r.mutations++
	r.managers = append(r.managers, *manager)
	return nil
}

func (r *fakeFarmRepo) RemoveManager(_ context.Context, _ *gorm.DB, farmID, userID uuid.UUID) (int64, error) {
	for i, m := range r.managers {
		if m.FarmID == farmID && m.UserID == userID {
			r.mutations++
			r.managers = append(r.managers[:i], r.managers[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeFarmRepo) IsUserFarmManager(_ context.Context, _ *gorm.DB, farmID, userID uuid.UUID) (bool, error) {
	for _, m := range r.managers {
		if m.FarmID == farmID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[string]*types.User
}

func newFakeUserRepo(users ...*types.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*types.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID uuid.UUID) (*types.User, error) {
	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (*types.User, error) {
	return r.users[email], nil
}

type fakeCultivationRepo struct {
	cultivations map[uuid.UUID]*types.FieldCultivation
	mutations    int
}

func newFakeCultivationRepo() *fakeCultivationRepo {
	return &fakeCultivationRepo{cultivations: map[uuid.UUID]*types.FieldCultivation{}}
}

func (r *fakeCultivationRepo) Create(_ context.Context, _ *gorm.DB, cultivation *types.FieldCultivation) error {
	r.mutations++
	r.cultivations[cultivation.ID] = cultivation
	return nil
}

func (r *fakeCultivationRepo) GetByID(_ context.Context, _ *gorm.DB, cultivationID uuid.UUID) (*types.FieldCultivation, error) {
	return r.cultivations[cultivationID], nil
}

func (r *fakeCultivationRepo) UpdateHarvest(_ context.Context, _ *gorm.DB, cultivationID uuid.UUID, actualYield float64, yieldUnit string, harvestDate time.Time) (int64, error) {
	c, ok := r.cultivations[cultivationID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	c.ActualYield = &actualYield
	c.YieldUnit = yieldUnit
	c.HarvestDate = &harvestDate
	c.Status = types.CultivationStatusHarvested
	return 1, nil
}

func (r *fakeCultivationRepo) UpdateStatus(_ context.Context, _ *gorm.DB, cultivationID uuid.UUID, status types.CultivationStatus) (int64, error) {
	c, ok := r.cultivations[cultivationID]
	if !ok {
		return 0, nil
	}
	r.mutations++
	c.Status = status
	return 1, nil
}

func (r *fakeCultivationRepo) Delete(_ context.Context, _ *gorm.DB, cultivationID uuid.UUID) (int64, error) {
	if _, ok := r.cultivations[cultivationID]; !ok {
		return 0, nil
	}
	r.mutations++
	delete(r.cultivations, cultivationID)
	return 1, nil
}

// recordNotifier captures emitted event names in order.
type recordNotifier struct {
	events []string
}

func (n *recordNotifier) record(name string) { n.events = append(n.events, name) }

func (n *recordNotifier) UserAddedToFarm(userID, farmID uuid.UUID)     { n.record("UserAddedToFarm") }
func (n *recordNotifier) UserRemovedFromFarm(userID, farmID uuid.UUID) { n.record("UserRemovedFromFarm") }
func (n *recordNotifier) FieldAdded(farmID uuid.UUID, field *types.FieldInfo) {
	n.record("FieldAdded")
}
func (n *recordNotifier) FieldUpdated(farmID uuid.UUID, update types.UpdateFieldInput) {
	n.record("FieldUpdated")
}
func (n *recordNotifier) FieldCultivatorChanged(farmID uuid.UUID, update types.UpdateFieldFarmInput) {
	n.record("FieldCultivatorChanged")
}
func (n *recordNotifier) FieldStatusChanged(farmID uuid.UUID, update types.UpdateFieldStatusInput) {
	n.record("FieldStatusChanged")
}
func (n *recordNotifier) FieldCultivationAdded(farmID uuid.UUID, cultivation *types.FieldCultivation) {
	n.record("FieldCultivationAdded")
}
func (n *recordNotifier) FieldHarvested(farmID uuid.UUID, harvest types.HarvestInput) {
	n.record("FieldHarvested")
}
func (n *recordNotifier) FieldCultivationUpdated(farmID uuid.UUID, update types.UpdateCultivationStatusInput) {
	n.record("FieldCultivationUpdated")
}
func (n *recordNotifier) FieldCultivationDeleted(farmID, cultivationID uuid.UUID) {
	n.record("FieldCultivationDeleted")
}

// test fixture helpers

func newTestFarm(name string) (*types.FarmInfo, uuid.UUID) {
	farmID, _ := uuid.NewV7()
	ownerID, _ := uuid.NewV7()
	info := &types.FarmInfo{
		Farm: types.Farm{
			ID:        farmID,
			Name:      name,
			OwnerID:   ownerID,
			CreatedAt: time.Now().UTC(),
			CreatedBy: ownerID,
		},
		Owner:       types.FarmPerson{UserID: ownerID, Name: "Owner", Email: "owner@example.com"},
		Managers:    []types.FarmManagerInfo{},
		Fields:      []types.Field{},
		OwnedFields: []types.Field{},
	}
	return info, ownerID
}

func addManagerTo(farm *types.FarmInfo) uuid.UUID {
	managerID, _ := uuid.NewV7()
	farm.Managers = append(farm.Managers, types.FarmManagerInfo{
		UserID:     managerID,
		AssignedAt: time.Now().UTC(),
	})
	return managerID
}

func addFieldTo(farm *types.FarmInfo, name string) types.Field {
	fieldID, _ := uuid.NewV7()
	field := types.Field{
		ID:          fieldID,
		Name:        name,
		FarmID:      farm.ID,
		OwnerFarmID: farm.ID,
	}
	farm.Fields = append(farm.Fields, field)
	farm.OwnedFields = append(farm.OwnedFields, field)
	return field
}
