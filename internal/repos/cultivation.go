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

type CultivationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cultivation *types.FieldCultivation) error
	GetByID(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID) (*types.FieldCultivation, error)
	UpdateHarvest(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID, actualYield float64, yieldUnit string, harvestDate time.Time) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID, status types.CultivationStatus) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID) (int64, error)
}

type cultivationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCultivationRepo(db *gorm.DB, baseLog *logger.Logger) CultivationRepo {
	return &cultivationRepo{db: db, log: baseLog.With("repo", "CultivationRepo")}
}

func (cr *cultivationRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *cultivationRepo) Create(ctx context.Context, tx *gorm.DB, cultivation *types.FieldCultivation) error {
	return cr.handle(tx).WithContext(ctx).Create(cultivation).Error
}

func (cr *cultivationRepo) GetByID(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID) (*types.FieldCultivation, error) {
	var cultivation types.FieldCultivation
	err := cr.handle(tx).WithContext(ctx).
		Where("id = ?", cultivationID).
		First(&cultivation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cultivation, nil
}

// UpdateHarvest closes the cultivation in one statement so yield, date
// and status can never drift apart.
func (cr *cultivationRepo) UpdateHarvest(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID, actualYield float64, yieldUnit string, harvestDate time.Time) (int64, error) {
	res := cr.handle(tx).WithContext(ctx).
		Model(&types.FieldCultivation{}).
		Where("id = ?", cultivationID).
		Updates(map[string]any{
			"actual_yield": actualYield,
			"yield_unit":   yieldUnit,
			"harvest_date": harvestDate,
			"status":       types.CultivationStatusHarvested,
		})
	return res.RowsAffected, res.Error
}

func (cr *cultivationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID, status types.CultivationStatus) (int64, error) {
	res := cr.handle(tx).WithContext(ctx).
		Model(&types.FieldCultivation{}).
		Where("id = ?", cultivationID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (cr *cultivationRepo) Delete(ctx context.Context, tx *gorm.DB, cultivationID uuid.UUID) (int64, error) {
	res := cr.handle(tx).WithContext(ctx).
		Where("id = ?", cultivationID).
		Delete(&types.FieldCultivation{})
	return res.RowsAffected, res.Error
}
