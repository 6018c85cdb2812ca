package app

import (
	"github.com/gin-gonic/gin"

	"github.com/paavkar/AgricultureApp/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthMiddleware:     mw.Auth,
		FarmHandler:        handlerset.Farm,
		FieldHandler:       handlerset.Field,
		CultivationHandler: handlerset.Cultivation,
		EventHandler:       handlerset.Event,
		AllowOrigins:       cfg.AllowOrigins,
	})
}
