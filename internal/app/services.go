package app

import (
	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/notify"
	"github.com/paavkar/AgricultureApp/internal/services"
)

type Services struct {
	Hub         *notify.StreamHub
	Dispatcher  *notify.Dispatcher
	Notifier    services.FarmNotifier
	Farm        services.FarmService
	Field       services.FieldService
	Cultivation services.CultivationService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos) Services {
	hub := notify.NewStreamHub(log)
	var emitter notify.Emitter = hub
	if cfg.NotifyTransport == "log" {
		emitter = notify.NewLogEmitter(log)
	}
	dispatcher := notify.NewDispatcher(emitter, reposet.DomainEvent, log, cfg.NotifyBuffer, cfg.NotifyWorkers)
	notifier := services.NewFarmNotifier(dispatcher)

	return Services{
		Hub:         hub,
		Dispatcher:  dispatcher,
		Notifier:    notifier,
		Farm:        services.NewFarmService(reposet.Farm, reposet.FarmGraph, reposet.User, notifier, log),
		Field:       services.NewFieldService(reposet.Field, reposet.FarmGraph, notifier, log),
		Cultivation: services.NewCultivationService(reposet.Cultivation, reposet.FarmGraph, notifier, log),
	}
}
