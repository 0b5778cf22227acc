// Package events provides a small in-process pub/sub hub used to push
// dashboard changes (roster updates, intelligence items, invitation
// transitions) to connected SSE clients.
package events

import (
	"sync"
	"time"
)

// Event kinds published by the services.
const (
	KindClientUpdated      = "client.updated"
	KindCoachUpdated       = "coach.updated"
	KindInvitationCreated  = "invitation.created"
	KindInvitationRedeemed = "invitation.redeemed"
	KindInvitationRevoked  = "invitation.revoked"
	KindIntelligence       = "intelligence.updated"
	KindPreferences        = "preferences.updated"
)

// Event is a single notification. Payload is kind-specific and must be
// JSON-serializable.
type Event struct {
	Kind    string    `json:"kind"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

const subscriberBuffer = 16

// Hub fans events out to subscribers. Publish never blocks: a subscriber
// that falls behind its buffer drops events rather than stalling the
// publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++

	ch := make(chan Event, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish delivers ev to every live subscriber, dropping it for any whose
// buffer is full.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close tears down the hub and closes every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
