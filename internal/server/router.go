package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paavkar/AgricultureApp/internal/handlers"
	"github.com/paavkar/AgricultureApp/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware     *middleware.AuthMiddleware
	FarmHandler        *handlers.FarmHandler
	FieldHandler       *handlers.FieldHandler
	CultivationHandler *handlers.CultivationHandler
	EventHandler       *handlers.EventHandler
	AllowOrigins       []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	// Event stream
	api.GET("/events", cfg.EventHandler.Stream)

	// Farms
	api.POST("/farms", cfg.FarmHandler.Create)
	api.GET("/farms/owned", cfg.FarmHandler.GetOwned)
	api.GET("/farms/managed", cfg.FarmHandler.GetManaged)
	api.GET("/farms/:farmId/full-info", cfg.FarmHandler.GetFullInfo)
	api.PATCH("/farms/:farmId", cfg.FarmHandler.Update)
	api.DELETE("/farms/:farmId", cfg.FarmHandler.Delete)
	api.POST("/farms/:farmId/managers", cfg.FarmHandler.AddManager)
	api.DELETE("/farms/:farmId/managers/:managerId", cfg.FarmHandler.RemoveManager)

	// Fields
	api.POST("/farms/:farmId/fields", cfg.FieldHandler.Create)
	api.GET("/fields/:fieldId", cfg.FieldHandler.Get)
	api.PATCH("/fields/:fieldId", cfg.FieldHandler.Update)
	api.PATCH("/fields/:fieldId/farm", cfg.FieldHandler.Lend)
	api.PATCH("/fields/:fieldId/revert-farm", cfg.FieldHandler.Revert)
	api.PATCH("/fields/:fieldId/status", cfg.FieldHandler.UpdateStatus)

	// Cultivations
	api.POST("/fields/:fieldId/cultivations", cfg.CultivationHandler.Create)
	api.GET("/fields/:fieldId/cultivations", cfg.CultivationHandler.List)
	api.PATCH("/cultivations/:cultivationId/harvest", cfg.CultivationHandler.Harvest)
	api.PATCH("/cultivations/:cultivationId/status", cfg.CultivationHandler.UpdateStatus)
	api.DELETE("/cultivations/:cultivationId", cfg.CultivationHandler.Delete)

	return router
}
