package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/repos"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// Event is one notification to fan out. Exactly one of UserID and
// GroupID is normally set; Name is the wire event name clients
// subscribe to.
type Event struct {
	UserID  *uuid.UUID
	GroupID *uuid.UUID
	Name    string
	Payload any
}

// Emitter delivers events to connected clients. Implementations are
// transport-specific; delivery failures must not affect the caller.
type Emitter interface {
	SendToUser(ctx context.Context, userID uuid.UUID, event string, payload any) error
	SendToGroup(ctx context.Context, groupID uuid.UUID, event string, payload any) error
}

// LogEmitter writes deliveries to the log. It stands in when no
// realtime transport is configured.
type LogEmitter struct {
	log *logger.Logger
}

func NewLogEmitter(baseLog *logger.Logger) *LogEmitter {
	return &LogEmitter{log: baseLog.With("emitter", "log")}
}

func (e *LogEmitter) SendToUser(_ context.Context, userID uuid.UUID, event string, payload any) error {
	e.log.Info("event delivered", "target", "user", "userID", userID, "event", event, "payload", payload)
	return nil
}

func (e *LogEmitter) SendToGroup(_ context.Context, groupID uuid.UUID, event string, payload any) error {
	e.log.Info("event delivered", "target", "group", "groupID", groupID, "event", event, "payload", payload)
	return nil
}

// Dispatcher fans events out asynchronously. Enqueue never blocks the
// caller: when the buffer is full the event is dropped and logged.
// Each accepted event is persisted as a DomainEvent row before
// delivery; persistence failures are logged and delivery proceeds.
type Dispatcher struct {
	emitter Emitter
	events  repos.DomainEventRepo
	log     *logger.Logger

	queue     chan Event
	group     *errgroup.Group
	closeOnce sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(emitter Emitter, events repos.DomainEventRepo, baseLog *logger.Logger, buffer, workers int) *Dispatcher {
	if buffer <= 0 {
		buffer = 256
	}
	if workers <= 0 {
		workers = 4
	}
	d := &Dispatcher{
		emitter: emitter,
		events:  events,
		log:     baseLog.With("component", "Dispatcher"),
		queue:   make(chan Event, buffer),
		group:   &errgroup.Group{},
	}
	for i := 0; i < workers; i++ {
		d.group.Go(d.run)
	}
	return d
}

func (d *Dispatcher) run() error {
	for ev := range d.queue {
		d.deliver(ev)
	}
	return nil
}

// Enqueue never blocks and never panics: events arriving after Close
// or on a full buffer are dropped and logged.
func (d *Dispatcher) Enqueue(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("dispatcher closed, dropping event", "event", ev.Name)
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("event queue full, dropping event", "event", ev.Name)
	}
}

// Close stops accepting events and waits for in-flight deliveries.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	return d.group.Wait()
}

func (d *Dispatcher) deliver(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	d.persist(ctx, ev)

	var err error
	switch {
	case ev.UserID != nil:
		err = d.emitter.SendToUser(ctx, *ev.UserID, ev.Name, ev.Payload)
	case ev.GroupID != nil:
		err = d.emitter.SendToGroup(ctx, *ev.GroupID, ev.Name, ev.Payload)
	default:
		d.log.Warn("event has no target", "event", ev.Name)
		return
	}
	if err != nil {
		d.log.Error("delivering event", "event", ev.Name, "error", err)
	}
}

func (d *Dispatcher) persist(ctx context.Context, ev Event) {
	if d.events == nil {
		return
	}
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		d.log.Error("marshaling event payload", "event", ev.Name, "error", err)
		return
	}
	id, err := uuid.NewV7()
	if err != nil {
		d.log.Error("generating event id", "event", ev.Name, "error", err)
		return
	}
	record := &types.DomainEvent{
		ID:        id,
		UserID:    ev.UserID,
		GroupID:   ev.GroupID,
		Event:     ev.Name,
		Payload:   datatypes.JSON(payload),
		CreatedAt: time.Now().UTC(),
	}
	if err := d.events.Create(ctx, nil, record); err != nil {
		d.log.Error("persisting event", "event", ev.Name, "error", err)
	}
}
