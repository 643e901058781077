package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drained(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return false
	default:
		return true
	}
}

func TestBusDeliversPerSection(t *testing.T) {
	bus := NewBus()

	hero, cancelHero := bus.Subscribe(SectionHero)
	defer cancelHero()

	footer, cancelFooter := bus.Subscribe(SectionFooter)
	defer cancelFooter()

	bus.Publish(SectionHero)

	assert.False(t, drained(hero), "hero subscriber must be signalled")
	assert.True(t, drained(footer), "footer subscriber must stay quiet")
}

func TestBusCoalescesPendingSignals(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe(SectionHero)
	defer cancel()

	bus.Publish(SectionHero)
	bus.Publish(SectionHero)
	bus.Publish(SectionHero)

	// exactly one pending signal survives
	assert.False(t, drained(ch))
	assert.True(t, drained(ch))
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe(SectionHero)
	cancel()

	bus.Publish(SectionHero)

	assert.True(t, drained(ch))
}

func TestBusMultipleSubscribersSameSection(t *testing.T) {
	bus := NewBus()

	a, cancelA := bus.Subscribe(SectionContact)
	defer cancelA()

	b, cancelB := bus.Subscribe(SectionContact)
	defer cancelB()

	bus.Publish(SectionContact)

	assert.False(t, drained(a))
	assert.False(t, drained(b))
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()

	// must not panic or block
	bus.Publish(SectionGeneral)
}
