package resize

import (
	"context"
	"sort"
	"sync"
)

// EventKind distinguishes pointer events.
type EventKind int

const (
	EventMove EventKind = iota
	EventUp
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer position in the coordinate space of the layout.
type PointerEvent struct {
	Kind EventKind
	X, Y float64
}

// Listener receives pointer events.
type Listener func(PointerEvent)

// PointerSource delivers pointer events to subscribed listeners. The returned
// release func unsubscribes and must be safe to call more than once.
type PointerSource interface {
	Subscribe(kind EventKind, l Listener) (release func())
}

// Bus is an in-process PointerSource. Dispatch delivers synchronously on the
// caller's goroutine.
type Bus struct {
	mu        sync.RWMutex
	next      int
	listeners map[EventKind]map[int]Listener
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[EventKind]map[int]Listener)}
}

// Subscribe registers l for kind.
func (b *Bus) Subscribe(kind EventKind, l Listener) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	if b.listeners[kind] == nil {
		b.listeners[kind] = make(map[int]Listener)
	}
	b.listeners[kind][id] = l
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners[kind], id)
			b.mu.Unlock()
		})
	}
}

// Dispatch delivers ev to the listeners of its kind. Listeners may release
// themselves or others while being called.
func (b *Bus) Dispatch(ev PointerEvent) {
	b.mu.RLock()
	ids := make([]int, 0, len(b.listeners[ev.Kind]))
	for id := range b.listeners[ev.Kind] {
		ids = append(ids, id)
	}
	b.mu.RUnlock()

	sort.Ints(ids)
	for _, id := range ids {
		b.mu.RLock()
		l, ok := b.listeners[ev.Kind][id]
		b.mu.RUnlock()
		if ok {
			l(ev)
		}
	}
}

// Listeners returns the number of live subscriptions.
func (b *Bus) Listeners() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, m := range b.listeners {
		n += len(m)
	}
	return n
}

// Run dispatches events from ch until ch closes or ctx is done.
func (b *Bus) Run(ctx context.Context, ch <-chan PointerEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			b.Dispatch(ev)
		}
	}
}
