package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/repos"
)

type Repos struct {
	User        repos.UserRepo
	Farm        repos.FarmRepo
	Field       repos.FieldRepo
	Cultivation repos.CultivationRepo
	DomainEvent repos.DomainEventRepo
	FarmGraph   repos.FarmGraphRepo
}

func wireRepos(db *gorm.DB, pool *pgxpool.Pool, log *logger.Logger) Repos {
	return Repos{
		User:        repos.NewUserRepo(db, log),
		Farm:        repos.NewFarmRepo(db, log),
		Field:       repos.NewFieldRepo(db, log),
		Cultivation: repos.NewCultivationRepo(db, log),
		DomainEvent: repos.NewDomainEventRepo(db, log),
		FarmGraph:   repos.NewFarmGraphRepo(pool, log),
	}
}
