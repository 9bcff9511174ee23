package core

import "sync"

// Change feed actions.
const (
	EventAdd    = "add"
	EventModify = "modify"
	EventRemove = "remove"
)

// Event is a change notification for one record of a collection. Services
// publish one after every successful write so connected dashboards can keep
// their lists in sync without polling.
type Event struct {
	Collection string      `json:"collection"`
	Action     string      `json:"action"`
	ID         string      `json:"id"`
	Data       interface{} `json:"data,omitempty"`
}

// EventBus fans published events out to all current subscribers.
type EventBus interface {
	Publish(evt Event)
	// Subscribe returns a receive channel and a cancel function that must be
	// called when the subscriber goes away.
	Subscribe() (<-chan Event, func())
}

type eventBus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewEventBus() EventBus {
	return &eventBus{subs: make(map[int]chan Event)}
}

func (b *eventBus) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default: // slow subscriber: drop rather than block writes
		}
	}
}

func (b *eventBus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, 32)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
