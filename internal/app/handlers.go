package app

import (
	"github.com/paavkar/AgricultureApp/internal/handlers"
	"github.com/paavkar/AgricultureApp/internal/logger"
)

type Handlers struct {
	Farm        *handlers.FarmHandler
	Field       *handlers.FieldHandler
	Cultivation *handlers.CultivationHandler
	Event       *handlers.EventHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	return Handlers{
		Farm:        handlers.NewFarmHandler(log, serviceset.Farm),
		Field:       handlers.NewFieldHandler(log, serviceset.Field),
		Cultivation: handlers.NewCultivationHandler(log, serviceset.Cultivation),
		Event:       handlers.NewEventHandler(log, serviceset.Hub, serviceset.Farm),
	}
}
