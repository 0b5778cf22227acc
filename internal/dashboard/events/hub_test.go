package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/events"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := events.NewHub()
	defer hub.Close()

	a, cancelA := hub.Subscribe()
	defer cancelA()
	b, cancelB := hub.Subscribe()
	defer cancelB()

	hub.Publish(events.Event{Kind: events.KindClientUpdated})

	require.Equal(t, events.KindClientUpdated, (<-a).Kind)
	require.Equal(t, events.KindClientUpdated, (<-b).Kind)
}

func TestPublishStampsTime(t *testing.T) {
	t.Parallel()

	hub := events.NewHub()
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(events.Event{Kind: events.KindIntelligence})
	ev := <-ch
	require.False(t, ev.At.IsZero())
	require.WithinDuration(t, time.Now().UTC(), ev.At, time.Minute)
}

func TestCancelStopsDelivery(t *testing.T) {
	t.Parallel()

	hub := events.NewHub()
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	cancel()
	cancel() // idempotent

	// Channel is closed after cancel.
	_, ok := <-ch
	require.False(t, ok)

	// Publishing after cancel must not panic.
	hub.Publish(events.Event{Kind: events.KindCoachUpdated})
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := events.NewHub()
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.Publish(events.Event{Kind: events.KindClientUpdated})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffer holds at most its capacity; everything else was dropped.
	var received int
	for {
		select {
		case <-ch:
			received++
		default:
			require.LessOrEqual(t, received, 16)
			return
		}
	}
}

func TestSubscribeAfterClose(t *testing.T) {
	t.Parallel()

	hub := events.NewHub()
	hub.Close()
	hub.Close() // idempotent

	ch, cancel := hub.Subscribe()
	defer cancel()

	_, ok := <-ch
	require.False(t, ok)
}
