package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/logger"
)

// StreamMessage is the wire shape pushed to SSE subscribers.
type StreamMessage struct {
	Channel string `json:"channel"`
	Event   string `json:"event"`
	Data    any    `json:"data,omitempty"`
}

// Channel names. A user channel carries events addressed to one
// person; a farm channel carries events for everyone on the farm.
func UserChannel(userID uuid.UUID) string { return "user:" + userID.String() }
func FarmChannel(farmID uuid.UUID) string { return "farm:" + farmID.String() }

type StreamClient struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	channels map[string]bool
	outbound chan StreamMessage
	done     chan struct{}
}

// StreamHub fans StreamMessages out to connected SSE clients by
// channel. It implements Emitter so the dispatcher can target users
// and farm groups without knowing about the transport.
type StreamHub struct {
	mu            sync.RWMutex
	log           *logger.Logger
	subscriptions map[string]map[*StreamClient]bool
}

func NewStreamHub(baseLog *logger.Logger) *StreamHub {
	return &StreamHub{
		log:           baseLog.With("component", "StreamHub"),
		subscriptions: make(map[string]map[*StreamClient]bool),
	}
}

func (h *StreamHub) NewClient(userID uuid.UUID) *StreamClient {
	id, _ := uuid.NewV7()
	return &StreamClient{
		ID:       id,
		UserID:   userID,
		channels: make(map[string]bool),
		outbound: make(chan StreamMessage, 16),
		done:     make(chan struct{}),
	}
}

func (h *StreamHub) Subscribe(client *StreamClient, channel string) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	client.channels[channel] = true
	clients, ok := h.subscriptions[channel]
	if !ok {
		clients = make(map[*StreamClient]bool)
		h.subscriptions[channel] = clients
	}
	clients[client] = true

	h.log.Debug("stream client subscribed", "clientID", client.ID, "channel", channel)
}

func (h *StreamHub) Unsubscribe(client *StreamClient, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(client.channels, channel)
	if clients, ok := h.subscriptions[channel]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.subscriptions, channel)
		}
	}
}

func (h *StreamHub) removeClient(client *StreamClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range client.channels {
		if clients, ok := h.subscriptions[ch]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.subscriptions, ch)
			}
		}
	}
	client.channels = make(map[string]bool)
}

// CloseClient detaches the client from every channel and stops its
// serve loop. The outbound channel is left open so a concurrent
// Broadcast never sends on a closed channel.
func (h *StreamHub) CloseClient(client *StreamClient) {
	h.removeClient(client)
	close(client.done)
	h.log.Debug("stream client closed", "clientID", client.ID)
}

func (h *StreamHub) Broadcast(msg StreamMessage) {
	if msg.Channel == "" {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.subscriptions[msg.Channel]
	if !ok {
		return
	}
	for c := range clients {
		select {
		case c.outbound <- msg:
		default:
			h.log.Warn("dropping stream message, outbound buffer full", "clientID", c.ID, "channel", msg.Channel)
		}
	}
}

func (h *StreamHub) SendToUser(_ context.Context, userID uuid.UUID, event string, payload any) error {
	h.Broadcast(StreamMessage{Channel: UserChannel(userID), Event: event, Data: payload})
	return nil
}

func (h *StreamHub) SendToGroup(_ context.Context, groupID uuid.UUID, event string, payload any) error {
	h.Broadcast(StreamMessage{Channel: FarmChannel(groupID), Event: event, Data: payload})
	return nil
}

// ServeHTTP streams the client's messages until the request context
// or the client is closed. Heartbeats keep proxies from timing out
// idle connections.
func (h *StreamHub) ServeHTTP(w http.ResponseWriter, r *http.Request, client *StreamClient) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.log.Debug("stream client context done", "clientID", client.ID)
			return
		case <-client.done:
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg := <-client.outbound:
			body, err := json.Marshal(msg)
			if err != nil {
				h.log.Warn("marshaling stream message", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", body)
			flusher.Flush()
		}
	}
}
