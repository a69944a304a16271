// Package event models the page-level event sources (window scroll, document
// pointer events) that components subscribe to while they are mounted.
package event

import "sync"

// Kind names an event type.
type Kind string

const (
	Scroll      Kind = "scroll"
	PointerMove Kind = "pointermove"
	PointerDown Kind = "pointerdown"
	PointerUp   Kind = "pointerup"
)

// Event carries the fields the page components read.
type Event struct {
	Kind    Kind
	X, Y    float64
	ScrollY float64
}

type Handler func(Event)

// Listener identifies one registration on a Target.
type Listener struct {
	target *Target
	kind   Kind
	id     uint64
}

// Target dispatches events to registered handlers in registration order.
type Target struct {
	mu       sync.Mutex
	next     uint64
	handlers map[Kind][]entry
}

type entry struct {
	id uint64
	fn Handler
}

func NewTarget() *Target {
	return &Target{handlers: make(map[Kind][]entry)}
}

// Add registers fn for kind. Keep the Listener: it is the only way to remove
// the handler again.
func (t *Target) Add(kind Kind, fn Handler) Listener {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handlers == nil {
		t.handlers = make(map[Kind][]entry)
	}
	t.next++
	t.handlers[kind] = append(t.handlers[kind], entry{id: t.next, fn: fn})
	return Listener{target: t, kind: kind, id: t.next}
}

// Remove unregisters l. Removing twice is harmless.
func (t *Target) Remove(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.handlers[l.kind]
	for i, e := range list {
		if e.id == l.id {
			t.handlers[l.kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Dispatch calls every handler registered for e.Kind. Handlers added or
// removed during dispatch take effect on the next event.
func (t *Target) Dispatch(e Event) {
	t.mu.Lock()
	list := append([]entry(nil), t.handlers[e.Kind]...)
	t.mu.Unlock()

	for _, h := range list {
		h.fn(e)
	}
}

// Count returns the number of handlers registered for kind.
func (t *Target) Count(kind Kind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.handlers[kind])
}

// Scope collects listeners so they can all be removed together.
type Scope struct {
	listeners []Listener
}

// Listen adds fn to t and remembers the registration.
func (s *Scope) Listen(t *Target, kind Kind, fn Handler) {
	s.listeners = append(s.listeners, t.Add(kind, fn))
}

// Close removes every listener added through s. It is safe to call more
// than once.
func (s *Scope) Close() {
	for _, l := range s.listeners {
		l.target.Remove(l)
	}
	s.listeners = nil
}

func (s *Scope) Len() int {
	return len(s.listeners)
}
