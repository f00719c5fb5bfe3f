// Package emitter implements the character event bus. Segments emit an
// event for every character they produce; observers decide what, if
// anything, to do about it.
package emitter

import (
	"log/slog"

	"github.com/viviai0214/fanfare/internal/log"
)

// Event marks a point in a character's life
type Event int

const (
	EventSpawned Event = iota
	EventValidated
	EventRendered
)

func (e Event) String() string {
	switch e {
	case EventSpawned:
		return "spawned"
	case EventValidated:
		return "validated"
	case EventRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Observer receives character events
type Observer interface {
	OnEvent(event Event, char rune)
}

// Emitter fans character events out to its subscribers
type Emitter struct {
	observers []Observer
}

// New creates an emitter with no subscribers
func New() *Emitter {
	return &Emitter{}
}

// Subscribe registers an observer and returns the emitter for chaining
func (e *Emitter) Subscribe(o Observer) *Emitter {
	e.observers = append(e.observers, o)
	return e
}

// Emit notifies all observers and returns the character unchanged
func (e *Emitter) Emit(event Event, char rune) rune {
	for _, o := range e.observers {
		o.OnEvent(event, char)
	}
	return char
}

// SilentWitness observes everything and says nothing
type SilentWitness struct{}

func (SilentWitness) OnEvent(Event, rune) {}

// LogWitness reports every character event at debug level
type LogWitness struct{}

func (LogWitness) OnEvent(event Event, char rune) {
	log.Debug("character event",
		slog.String("event", event.String()),
		slog.String("char", string(char)))
}
