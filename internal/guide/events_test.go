// ABOUTME: Tests for the event broadcaster
// ABOUTME: Slow subscribers drop events instead of blocking publishers
package guide

import "testing"

func TestEventTypeNames(t *testing.T) {
	// Dashboard consumers dispatch on these exact strings
	types := map[string]string{
		EventNewQuery: "new_query",
		EventClick:    "artwork_click",
		EventFeedback: "feedback",
	}
	for got, want := range types {
		if got != want {
			t.Errorf("event type = %q, want %q", got, want)
		}
	}
}

func TestBroadcasterDeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()

	ch1, cancel1 := b.Subscribe(4)
	defer cancel1()
	ch2, cancel2 := b.Subscribe(4)
	defer cancel2()

	b.Publish(EventNewQuery, "payload")

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case e := <-ch:
			if e.Type != EventNewQuery {
				t.Errorf("subscriber %d: expected %s, got %s", i, EventNewQuery, e.Type)
			}
			if e.Timestamp == 0 {
				t.Errorf("subscriber %d: expected timestamp set", i)
			}
		default:
			t.Errorf("subscriber %d: expected an event", i)
		}
	}
}

func TestBroadcasterDropsWhenBufferFull(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe(1)
	defer cancel()

	// The second publish must not block even though nobody is reading
	b.Publish(EventClick, 1)
	b.Publish(EventClick, 2)

	e := <-ch
	if e.Payload != 1 {
		t.Errorf("expected first event kept, got %v", e.Payload)
	}
	select {
	case e := <-ch:
		t.Errorf("expected overflow event dropped, got %v", e.Payload)
	default:
	}
}

func TestBroadcasterCancelClosesChannel(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe(1)
	cancel()

	if _, ok := <-ch; ok {
		t.Error("expected channel closed after cancel")
	}

	// Publishing after cancel must not panic
	b.Publish(EventFeedback, nil)

	// Double cancel is safe
	cancel()
}
