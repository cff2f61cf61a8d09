package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"poolbot/models"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeContributionSubmitted EventType = "contribution_submitted"
	EventTypeBetCreated            EventType = "bet_created"
	EventTypeGroupLinked           EventType = "group_linked"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// ContributionSubmittedEvent represents an accepted stake submission
type ContributionSubmittedEvent struct {
	BetID       string
	GroupID     string
	Description string
	Side        models.Side
	Quantity    int64
	NewTotal    int64
	RewardType  string
}

func (e ContributionSubmittedEvent) Type() EventType {
	return EventTypeContributionSubmitted
}

// BetCreatedEvent represents a bet created through the bot
type BetCreatedEvent struct {
	BetID       string
	GroupID     string
	Description string
	Topology    models.Topology
}

func (e BetCreatedEvent) Type() EventType {
	return EventTypeBetCreated
}

// GroupLinkedEvent represents a guild being linked to a remote group
type GroupLinkedEvent struct {
	GuildID   int64
	GroupID   string
	GroupName string
}

func (e GroupLinkedEvent) Type() EventType {
	return EventTypeGroupLinked
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

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so a slow announcement never blocks an interaction.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

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
