package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
	"github.com/paavkar/AgricultureApp/internal/utils"
)

// PostgresService owns both database handles: GORM for writes and
// migrations, a pgx pool for the multi-result-set aggregate reads.
type PostgresService struct {
	db   *gorm.DB
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPostgresService(ctx context.Context, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "agricultureapp", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Error("Failed to create pgx pool", "error", err)
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Error("Failed to ping Postgres through pgx", "error", err)
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresService{db: gormDB, pool: pool, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Farm{},
		&types.FarmManager{},
		&types.Field{},
		&types.FieldCultivation{},
		&types.DomainEvent{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	// Cultivations disappear with their field; everything else is
	// deleted explicitly through the service.
	if err := s.db.Exec(`
		ALTER TABLE "field_cultivations"
		DROP CONSTRAINT IF EXISTS "fk_field_cultivations_field_id";
	`).Error; err != nil {
		return fmt.Errorf("failed to reset fk_field_cultivations_field_id: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "field_cultivations"
		ADD CONSTRAINT "fk_field_cultivations_field_id"
		FOREIGN KEY ("field_id")
		REFERENCES "fields"("id")
		ON DELETE CASCADE
	`).Error; err != nil {
		return fmt.Errorf("failed to add fk_field_cultivations_field_id: %w", err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

func (s *PostgresService) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresService) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}
