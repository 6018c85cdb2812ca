package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/paavkar/AgricultureApp/internal/db"
	"github.com/paavkar/AgricultureApp/internal/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Postgres *db.PostgresService
	Repos    Repos
	Services Services
	Router   *gin.Engine
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	pg, err := db.NewPostgresService(ctx, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		pg.Close()
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}

	reposet := wireRepos(pg.DB(), pg.Pool(), log)
	serviceset := wireServices(log, cfg, reposet)
	handlerset := wireHandlers(log, serviceset)
	mw := wireMiddleware(log, cfg)
	router := wireRouter(cfg, handlerset, mw)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Postgres: pg,
		Repos:    reposet,
		Services: serviceset,
		Router:   router,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

// Close drains the notification dispatcher before tearing down
// storage so queued events still reach the audit trail.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Services.Dispatcher != nil {
		if err := a.Services.Dispatcher.Close(); err != nil {
			a.Log.Warn("closing dispatcher", "error", err)
		}
	}
	if a.Postgres != nil {
		a.Postgres.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
