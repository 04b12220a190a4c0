package events

import (
	"context"
	"sync"
	"testing"
	"time"
)

// TestTransactionalBusFlush tests the flow from TransactionalBus to main Bus
func TestTransactionalBusFlush(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	eventReceived := make(chan LevelUpEvent, 1)
	var wg sync.WaitGroup
	wg.Add(1)

	mainBus.Subscribe(EventTypeLevelUp, func(ctx context.Context, event Event) {
		defer wg.Done()
		levelUp, ok := event.(LevelUpEvent)
		if !ok {
			t.Errorf("Expected LevelUpEvent, got %T", event)
			return
		}
		eventReceived <- levelUp
	})

	testEvent := LevelUpEvent{
		GuildID:   789,
		UserID:    123456,
		ChannelID: 555,
		NewLevel:  5,
		XP:        25,
	}

	// Publish to the transactional bus, then flush as a commit would
	transactionalBus.Publish(testEvent)
	transactionalBus.Flush(context.Background())

	wg.Wait()

	select {
	case received := <-eventReceived:
		if received != testEvent {
			t.Errorf("received %+v, want %+v", received, testEvent)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
}

// TestTransactionalBusDiscard tests that discarded events are not delivered
func TestTransactionalBusDiscard(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	eventReceived := make(chan bool, 1)

	mainBus.Subscribe(EventTypeLevelUp, func(ctx context.Context, event Event) {
		eventReceived <- true
	})

	transactionalBus.Publish(LevelUpEvent{GuildID: 789, UserID: 123456, NewLevel: 2, XP: 4})

	// Discard instead of flush, simulating a rollback
	transactionalBus.Discard()

	select {
	case <-eventReceived:
		t.Fatal("Event was received despite being discarded")
	case <-time.After(100 * time.Millisecond):
		// Expected - no event should be received
	}
}

// TestBusMultipleHandlers tests fan-out to every subscribed handler
func TestBusMultipleHandlers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)
	received := make(chan EventType, 2)

	for i := 0; i < 2; i++ {
		bus.Subscribe(EventTypeStatChange, func(ctx context.Context, event Event) {
			defer wg.Done()
			received <- event.Type()
		})
	}

	bus.Emit(context.Background(), StatChangeEvent{GuildID: 1, UserID: 2, NewValue: 100})
	wg.Wait()

	if len(received) != 2 {
		t.Fatalf("expected 2 handler invocations, got %d", len(received))
	}
}
