package settings

import "sync"

// Bus delivers settings-changed notifications with one topic per section,
// so a subscriber only re-fetches the section it renders. Publishing never
// blocks: a pending notification per subscriber is coalesced.
type Bus struct {
	mu   sync.RWMutex
	next uint64
	subs map[string]map[uint64]chan struct{}
}

// Default is the process-wide bus used by the web handlers.
var Default = NewBus() //nolint:gochecknoglobals

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[uint64]chan struct{}),
	}
}

// Subscribe registers interest in one section's changes. The returned
// channel receives a signal per (coalesced) change; the cancel func must
// be called on unmount.
func (b *Bus) Subscribe(section string) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[section] == nil {
		b.subs[section] = make(map[uint64]chan struct{})
	}

	id := b.next
	b.next++

	ch := make(chan struct{}, 1)
	b.subs[section][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.subs[section], id)
	}

	return ch, cancel
}

// Publish signals every subscriber of the section. Subscribers with a
// pending, unconsumed signal are skipped (the re-fetch they will do covers
// this change too).
func (b *Bus) Publish(section string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[section] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
