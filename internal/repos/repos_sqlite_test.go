package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&types.User{},
		&types.Farm{},
		&types.FarmManager{},
		&types.Field{},
		&types.FieldCultivation{},
		&types.DomainEvent{},
	))
	return db
}

func seedFarm(t *testing.T, db *gorm.DB, name string) *types.Farm {
	t.Helper()
	owner, _ := uuid.NewV7()
	farm := types.CreateFarmInput{Name: name, Location: "Oulu"}.ToFarm(owner)
	require.NoError(t, db.Create(farm).Error)
	return farm
}

func seedField(t *testing.T, db *gorm.DB, name string, farmID uuid.UUID) *types.Field {
	t.Helper()
	field := types.CreateFieldInput{
		Name:        name,
		Size:        3.5,
		SizeUnit:    "ha",
		FarmID:      farmID,
		OwnerFarmID: farmID,
	}.ToField()
	require.NoError(t, db.Create(field).Error)
	return field
}

func TestFieldRepo_LendRevertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewFieldRepo(db, logger.NewNop())
	ctx := context.Background()

	farmA := seedFarm(t, db, "Farm A")
	farmB := seedFarm(t, db, "Farm B")
	field := seedField(t, db, "North-40", farmA.ID)

	rows, err := repo.UpdateCurrentFarm(ctx, nil, field.ID, farmB.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	var lent types.Field
	require.NoError(t, db.First(&lent, "id = ?", field.ID).Error)
	require.Equal(t, farmB.ID, lent.FarmID)
	require.Equal(t, farmA.ID, lent.OwnerFarmID)

	rows, err = repo.RevertCurrentFarm(ctx, nil, field.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	var reverted types.Field
	require.NoError(t, db.First(&reverted, "id = ?", field.ID).Error)
	require.Equal(t, farmA.ID, reverted.FarmID)

	// reverting again is a no-op that still reports a matched row
	rows, err = repo.RevertCurrentFarm(ctx, nil, field.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	require.NoError(t, db.First(&reverted, "id = ?", field.ID).Error)
	require.Equal(t, farmA.ID, reverted.FarmID)
}

func TestFieldRepo_RevertUnknownFieldMatchesNothing(t *testing.T) {
	db := openTestDB(t)
	repo := NewFieldRepo(db, logger.NewNop())

	missing, _ := uuid.NewV7()
	rows, err := repo.RevertCurrentFarm(context.Background(), nil, missing)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}

func TestFarmRepo_DeleteIsOwnerScoped(t *testing.T) {
	db := openTestDB(t)
	repo := NewFarmRepo(db, logger.NewNop())
	ctx := context.Background()

	farm := seedFarm(t, db, "Farm A")
	stranger, _ := uuid.NewV7()

	rows, err := repo.Delete(ctx, nil, farm.ID, stranger)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	rows, err = repo.Delete(ctx, nil, farm.ID, farm.OwnerID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	got, err := repo.GetByID(ctx, nil, farm.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFarmRepo_ManagerRoster(t *testing.T) {
	db := openTestDB(t)
	repo := NewFarmRepo(db, logger.NewNop())
	ctx := context.Background()

	farm := seedFarm(t, db, "Farm A")
	managerID, _ := uuid.NewV7()
	entry := &types.FarmManager{FarmID: farm.ID, UserID: managerID, AssignedAt: time.Now().UTC()}

	require.NoError(t, repo.AddManager(ctx, nil, entry))

	isManager, err := repo.IsUserFarmManager(ctx, nil, farm.ID, managerID)
	require.NoError(t, err)
	require.True(t, isManager)

	// the composite primary key rejects a second assignment
	require.Error(t, repo.AddManager(ctx, nil, &types.FarmManager{
		FarmID: farm.ID, UserID: managerID, AssignedAt: time.Now().UTC(),
	}))

	rows, err := repo.RemoveManager(ctx, nil, farm.ID, managerID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	isManager, err = repo.IsUserFarmManager(ctx, nil, farm.ID, managerID)
	require.NoError(t, err)
	require.False(t, isManager)
}

func TestCultivationRepo_UpdateHarvestIsAtomic(t *testing.T) {
	db := openTestDB(t)
	repo := NewCultivationRepo(db, logger.NewNop())
	ctx := context.Background()

	farm := seedFarm(t, db, "Farm A")
	field := seedField(t, db, "North-40", farm.ID)

	planting := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	cultivation := types.CreateCultivationInput{
		Crop:         "Barley",
		YieldUnit:    "t",
		PlantingDate: planting,
		FieldID:      field.ID,
		FarmID:       farm.ID,
	}.ToCultivation()
	require.NoError(t, repo.Create(ctx, nil, cultivation))

	harvestDate := planting.AddDate(0, 4, 0)
	rows, err := repo.UpdateHarvest(ctx, nil, cultivation.ID, 12.5, "t", harvestDate)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	got, err := repo.GetByID(ctx, nil, cultivation.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, types.CultivationStatusHarvested, got.Status)
	require.NotNil(t, got.ActualYield)
	require.InDelta(t, 12.5, *got.ActualYield, 1e-9)
	require.NotNil(t, got.HarvestDate)
	require.True(t, got.HarvestDate.Equal(harvestDate))
}

func TestUserRepo_GetByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepo(db, logger.NewNop())
	ctx := context.Background()

	id, _ := uuid.NewV7()
	user := &types.User{ID: id, Name: "Maija", Email: "maija@example.com", CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(user).Error)

	got, err := repo.GetByEmail(ctx, nil, "maija@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, id, got.ID)

	missing, err := repo.GetByEmail(ctx, nil, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}
