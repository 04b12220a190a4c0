package events

import (
	"context"
	"sync"

	"statbot/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeLevelUp    EventType = "level_up"
	EventTypeStatChange EventType = "stat_change"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// LevelUpEvent fires when an xp increment crosses a level boundary.
// ChannelID is the channel the triggering message was sent in, kept for
// the announcement fallback when no level-up channel is configured.
type LevelUpEvent struct {
	GuildID   int64
	UserID    int64
	ChannelID int64
	NewLevel  int64
	XP        int64
}

func (e LevelUpEvent) Type() EventType {
	return EventTypeLevelUp
}

// StatChangeEvent fires when an administrative set/add mutates a ledger
type StatChangeEvent struct {
	Ledger   models.LedgerType
	GuildID  int64
	UserID   int64
	NewValue int64
}

func (e StatChangeEvent) Type() EventType {
	return EventTypeStatChange
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the emitter
	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}

// TransactionalBus stashes events published during a unit of work and
// forwards them to the real bus only after the transaction commits. Events
// from rolled-back transactions are discarded, so a level-up announcement
// can never outrun (or outlive) its xp write.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

// NewTransactionalBus creates a transactional bus wrapping the real one
func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish queues an event until the surrounding transaction commits
func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all pending events; called after a successful commit
func (b *TransactionalBus) Flush(ctx context.Context) {
	// Events outlive the transaction, so don't inherit its context
	eventCtx := context.Background()

	for _, ev := range b.pending {
		log.WithFields(log.Fields{
			"eventType": ev.Type(),
		}).Debug("Emitting event after commit")
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops pending events; called after rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
