package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/notify"
	"github.com/paavkar/AgricultureApp/internal/requestdata"
	"github.com/paavkar/AgricultureApp/internal/services"
)

type EventHandler struct {
	log         *logger.Logger
	hub         *notify.StreamHub
	farmService services.FarmService
}

func NewEventHandler(baseLog *logger.Logger, hub *notify.StreamHub, farmService services.FarmService) *EventHandler {
	return &EventHandler{
		log:         baseLog.With("handler", "EventHandler"),
		hub:         hub,
		farmService: farmService,
	}
}

// Stream opens an SSE connection. The caller is subscribed to their
// own user channel and to the channel of every farm they own or
// manage at connect time; reconnecting picks up later membership
// changes.
func (h *EventHandler) Stream(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		respondUnauthorized(c)
		return
	}

	client := h.hub.NewClient(rd.UserID)
	defer h.hub.CloseClient(client)

	h.hub.Subscribe(client, notify.UserChannel(rd.UserID))
	for _, farm := range h.farmService.GetByOwner(c.Request.Context(), rd.UserID).Farms {
		h.hub.Subscribe(client, notify.FarmChannel(farm.ID))
	}
	for _, farm := range h.farmService.GetByManager(c.Request.Context(), rd.UserID).Farms {
		h.hub.Subscribe(client, notify.FarmChannel(farm.ID))
	}

	h.log.Info("stream opened", "userID", rd.UserID, "clientID", client.ID)
	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
