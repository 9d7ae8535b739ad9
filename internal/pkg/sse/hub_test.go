package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	events, cleanup := hub.Subscribe("Max_Mustermann")
	defer cleanup()

	hub.Publish("Max_Mustermann", Event{
		EmployeeKey: "Max_Mustermann",
		Event:       EventSessionOpened,
	})

	select {
	case event := <-events:
		assert.Equal(t, EventSessionOpened, event.Event)
	default:
		t.Fatal("expected an event")
	}
}

func TestHub_PublishIsPartitionedByEmployee(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	events, cleanup := hub.Subscribe("Max_Mustermann")
	defer cleanup()

	hub.Publish("Erika_Musterfrau", Event{
		EmployeeKey: "Erika_Musterfrau",
		Event:       EventSessionClosed,
	})

	select {
	case <-events:
		t.Fatal("event leaked across employees")
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	_, cleanup := hub.Subscribe("Max_Mustermann")
	require.Equal(t, 1, hub.SubscriberCount("Max_Mustermann"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("Max_Mustermann"))

	// Publishing with no subscribers must not panic.
	hub.Publish("Max_Mustermann", Event{Event: EventSessionSwitched})
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	_, cleanup := hub.Subscribe("Max_Mustermann")
	defer cleanup()

	// Channel capacity is 10; publishing past it must drop, not block.
	for i := 0; i < 20; i++ {
		hub.Publish("Max_Mustermann", Event{Event: EventSessionOpened})
	}
}
