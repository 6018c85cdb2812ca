package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
)

type FieldRepo interface {
	Create(ctx context.Context, tx *gorm.DB, field *types.Field) error
	Update(ctx context.Context, tx *gorm.DB, in types.UpdateFieldInput) (int64, error)
	UpdateCurrentFarm(ctx context.Context, tx *gorm.DB, fieldID, farmID uuid.UUID) (int64, error)
	RevertCurrentFarm(ctx context.Context, tx *gorm.DB, fieldID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, fieldID uuid.UUID, status types.FieldStatus) (int64, error)
}

type fieldRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFieldRepo(db *gorm.DB, baseLog *logger.Logger) FieldRepo {
	return &fieldRepo{db: db, log: baseLog.With("repo", "FieldRepo")}
}

func (fr *fieldRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fr.db
}

func (fr *fieldRepo) Create(ctx context.Context, tx *gorm.DB, field *types.Field) error {
	return fr.handle(tx).WithContext(ctx).Create(field).Error
}

// Update rewrites the descriptive columns. Farm assignment moves only
// through UpdateCurrentFarm and RevertCurrentFarm.
func (fr *fieldRepo) Update(ctx context.Context, tx *gorm.DB, in types.UpdateFieldInput) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Model(&types.Field{}).
		Where("id = ?", in.FieldID).
		Updates(map[string]any{
			"name":      in.Name,
			"size":      in.Size,
			"size_unit": in.SizeUnit,
			"status":    in.Status,
			"soil_type": in.SoilType,
		})
	return res.RowsAffected, res.Error
}

func (fr *fieldRepo) UpdateCurrentFarm(ctx context.Context, tx *gorm.DB, fieldID, farmID uuid.UUID) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Model(&types.Field{}).
		Where("id = ?", fieldID).
		Update("farm_id", farmID)
	return res.RowsAffected, res.Error
}

// RevertCurrentFarm points the field back at its owner farm in a single
// statement, so the operation is idempotent.
func (fr *fieldRepo) RevertCurrentFarm(ctx context.Context, tx *gorm.DB, fieldID uuid.UUID) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Model(&types.Field{}).
		Where("id = ?", fieldID).
		Update("farm_id", gorm.Expr("owner_farm_id"))
	return res.RowsAffected, res.Error
}

func (fr *fieldRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, fieldID uuid.UUID, status types.FieldStatus) (int64, error) {
	res := fr.handle(tx).WithContext(ctx).
		Model(&types.Field{}).
		Where("id = ?", fieldID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
