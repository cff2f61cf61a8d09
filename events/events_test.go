package events

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"poolbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeContributionSubmitted, func(ctx context.Context, event Event) {
		received <- event
	})

	emitted := ContributionSubmittedEvent{
		BetID:    "bet-1",
		GroupID:  "group-1",
		Side:     models.SideFor,
		Quantity: 25,
	}
	bus.Emit(context.Background(), emitted)

	select {
	case event := <-received:
		contribution, ok := event.(ContributionSubmittedEvent)
		require.True(t, ok)
		assert.Equal(t, emitted, contribution)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestBus_OnlyMatchingTypeReceives(t *testing.T) {
	bus := NewBus()
	var linkedCalls, createdCalls int32
	done := make(chan struct{})

	bus.Subscribe(EventTypeGroupLinked, func(ctx context.Context, event Event) {
		atomic.AddInt32(&linkedCalls, 1)
	})
	bus.Subscribe(EventTypeBetCreated, func(ctx context.Context, event Event) {
		atomic.AddInt32(&createdCalls, 1)
		close(done)
	})

	bus.Emit(context.Background(), BetCreatedEvent{BetID: "bet-1"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&linkedCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&createdCalls))
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	done := make(chan struct{})

	bus.Subscribe(EventTypeGroupLinked, func(ctx context.Context, event Event) {
		panic("broken handler")
	})
	bus.Subscribe(EventTypeGroupLinked, func(ctx context.Context, event Event) {
		close(done)
	})

	bus.Emit(context.Background(), GroupLinkedEvent{GuildID: 1, GroupID: "group-1"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("surviving handler was not invoked")
	}
}
