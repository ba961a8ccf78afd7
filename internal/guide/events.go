// ABOUTME: In-process event broadcast for dashboard live updates
// ABOUTME: Non-blocking fan-out; slow subscribers drop events, never stall writes
package guide

import (
	"sync"
	"time"
)

// Event types published by the guide service
const (
	EventNewQuery = "new_query"
	EventClick    = "artwork_click"
	EventFeedback = "feedback"
)

// Event is one live notification about visitor activity
type Event struct {
	Type      string      `json:"type"`
	Timestamp float64     `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Broadcaster fans events out to subscribers over buffered channels
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewBroadcaster creates an empty broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe registers a subscriber with the given channel buffer. The
// returned cancel func removes the subscription and closes the channel.
func (b *Broadcaster) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}

	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan Event, buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber whose buffer has room
func (b *Broadcaster) Publish(eventType string, payload interface{}) {
	event := Event{
		Type:      eventType,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
		Payload:   payload,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
