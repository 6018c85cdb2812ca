package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
)

type FarmRepo interface {
	Create(ctx context.Context, tx *gorm.DB, farm *types.Farm) error
	GetByID(ctx context.Context, tx *gorm.DB, farmID uuid.UUID) (*types.Farm, error)
	Update(ctx context.Context, tx *gorm.DB, in types.UpdateFarmInput, updatedBy uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, farmID, ownerID uuid.UUID) (int64, error)

	AddManager(ctx context.Context, tx *gorm.DB, manager *types.FarmManager) error
	RemoveManager(ctx context.Context, tx *gorm.DB, farmID, userID uuid.UUID) (int64, error)
	IsUserFarmManager(ctx context.Context, tx *gorm.DB, farmID, userID uuid.UUID) (bool, error)
}

type farmRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFarmRepo(db *gorm.DB, baseLog *logger.Logger) FarmRepo {
	return &farmRepo{db: db, log: baseLog.With("repo", "FarmRepo")}
}

func (fr *farmRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fr.db
}

func (fr *farmRepo) Create(ctx context.Context, tx *gorm.DB, farm *types.Farm) error {
	return fr.handle(tx).WithContext(ctx).Create(farm).Error
}

func (fr *farmRepo) GetByID(ctx context.Context, tx *gorm.DB, farmID uuid.UUID) (*types.Farm, error) {
	var farm types.Farm
	err := fr.handle(tx).WithContext(ctx).
		Where("id = ?", farmID).
		First(&farm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (fr *farmRepo) Update(ctx context.Context, tx *gorm.DB, in types.UpdateFarmInput, updatedBy uuid.UUID) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Model(&types.Farm{}).
		Where("id = ?", in.ID).
		Updates(map[string]any{
			"name":       in.Name,
			"owner_id":   in.OwnerID,
			"updated_at": time.Now().UTC(),
			"updated_by": updatedBy,
		})
	return res.RowsAffected, res.Error
}

// Delete is owner-scoped at the storage level: a non-owner id simply
// matches zero rows.
func (fr *farmRepo) Delete(ctx context.Context, tx *gorm.DB, farmID, ownerID uuid.UUID) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Where("id = ? AND owner_id = ?", farmID, ownerID).
		Delete(&types.Farm{})
	return res.RowsAffected, res.Error
}

func (fr *farmRepo) AddManager(ctx context.Context, tx *gorm.DB, manager *types.FarmManager) error {
	return fr.handle(tx).WithContext(ctx).Create(manager).Error
}

func (fr *farmRepo) RemoveManager(ctx context.Context, tx *gorm.DB, farmID, userID uuid.UUID) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Where("farm_id = ? AND user_id = ?", farmID, userID).
		Delete(&types.FarmManager{})
	return res.RowsAffected, res.Error
}

func (fr *farmRepo) IsUserFarmManager(ctx context.Context, tx *gorm.DB, farmID, userID uuid.UUID) (bool, error) {
	var count int64
	err := fr.handle(tx).WithContext(ctx).
		Model(&types.FarmManager{}).
		Where("farm_id = ? AND user_id = ?", farmID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
