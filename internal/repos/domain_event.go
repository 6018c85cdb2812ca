package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// DomainEventRepo appends the best-effort audit trail written by the
// notification dispatcher.
type DomainEventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, event *types.DomainEvent) error
}

type domainEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDomainEventRepo(db *gorm.DB, baseLog *logger.Logger) DomainEventRepo {
	return &domainEventRepo{db: db, log: baseLog.With("repo", "DomainEventRepo")}
}

func (dr *domainEventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.DomainEvent) error {
	handle := dr.db
	if tx != nil {
		handle = tx
	}
	return handle.WithContext(ctx).Create(event).Error
}
