package app

import (
	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/middleware"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, cfg.JWTSecretKey),
	}
}
