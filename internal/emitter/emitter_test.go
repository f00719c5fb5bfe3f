package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder collects every event it sees
type recorder struct {
	events []Event
	chars  []rune
}

func (r *recorder) OnEvent(event Event, char rune) {
	r.events = append(r.events, event)
	r.chars = append(r.chars, char)
}

func TestEmitNotifiesSubscribers(t *testing.T) {
	rec := &recorder{}
	em := New().Subscribe(rec)

	got := em.Emit(EventRendered, 'H')

	assert.Equal(t, 'H', got)
	assert.Equal(t, []Event{EventRendered}, rec.events)
	assert.Equal(t, []rune{'H'}, rec.chars)
}

func TestEmitFansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	em := New().Subscribe(a).Subscribe(b)

	em.Emit(EventSpawned, 'W')
	em.Emit(EventValidated, 'W')

	assert.Len(t, a.events, 2)
	assert.Len(t, b.events, 2)
}

func TestSilentWitness(t *testing.T) {
	em := New().Subscribe(SilentWitness{})

	// The void stares back, but the character survives
	assert.Equal(t, '!', em.Emit(EventRendered, '!'))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "spawned", EventSpawned.String())
	assert.Equal(t, "validated", EventValidated.String())
	assert.Equal(t, "rendered", EventRendered.String())
	assert.Equal(t, "unknown", Event(99).String())
}
