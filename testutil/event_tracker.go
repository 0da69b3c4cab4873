package testutil

import (
	"sync"
	"time"

	"github.com/loomkit/loom/component"
)

// EmittedEvent records one dispatched component.Event, tagged with the node
// it was dispatched to and when.
type EmittedEvent struct {
	Kind      component.EventKind
	Event     component.Event
	Node      *component.Node
	Timestamp time.Time
}

// EventTracker records every event dispatched through TrackedDispatch, for
// assertions on dispatch order and frequency in tests.
type EventTracker struct {
	mu     sync.RWMutex
	events []EmittedEvent
}

// NewEventTracker creates an empty tracker.
func NewEventTracker() *EventTracker {
	return &EventTracker{}
}

// track appends an event under lock.
func (et *EventTracker) track(node *component.Node, ev component.Event) {
	et.mu.Lock()
	defer et.mu.Unlock()
	et.events = append(et.events, EmittedEvent{Kind: ev.Kind, Event: ev, Node: node, Timestamp: time.Now()})
}

// ByKind returns every tracked event of the given kind, in dispatch order.
func (et *EventTracker) ByKind(kind component.EventKind) []EmittedEvent {
	et.mu.RLock()
	defer et.mu.RUnlock()
	out := make([]EmittedEvent, 0)
	for _, e := range et.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// WasFired reports whether at least one event of kind was tracked.
func (et *EventTracker) WasFired(kind component.EventKind) bool {
	return len(et.ByKind(kind)) > 0
}

// FiredCount reports how many events of kind were tracked.
func (et *EventTracker) FiredCount(kind component.EventKind) int {
	return len(et.ByKind(kind))
}

// TrackedDispatch dispatches ev to node and records it, so tests can assert
// on dispatch history rather than only on handler side effects.
func (h *Harness) TrackedDispatch(node *component.Node, ev component.Event) {
	if h.events == nil {
		h.events = NewEventTracker()
	}
	node.Dispatch(ev)
	h.events.track(node, ev)
}

// Events returns the harness's event tracker, creating one on first use.
func (h *Harness) Events() *EventTracker {
	if h.events == nil {
		h.events = NewEventTracker()
	}
	return h.events
}
