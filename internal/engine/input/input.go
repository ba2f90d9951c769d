// Package input turns SDL2 events into demo events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event is one processed input event.
type Event struct {
	Type EventType

	// EventKeyDown
	Key    sdl.Keycode
	Mod    uint16 // sdl.KMOD_* bits held with the key
	Repeat bool

	// EventWindowResize
	Width  int
	Height int
}

// Rune returns the character of a key event, or 0 when the key has none.
// Letters are upper case when exactly one of shift and caps lock is active.
func (e Event) Rune() rune {
	if e.Type != EventKeyDown {
		return 0
	}
	if e.Key >= sdl.K_a && e.Key <= sdl.K_z {
		shift := e.Mod&sdl.KMOD_SHIFT != 0
		caps := e.Mod&sdl.KMOD_CAPS != 0
		if shift != caps {
			return rune('A' + (e.Key - sdl.K_a))
		}
		return rune('a' + (e.Key - sdl.K_a))
	}
	if e.Key >= sdl.K_SPACE && e.Key < sdl.K_DELETE {
		return rune(e.Key)
	}
	return 0
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	poll   func() sdl.Event
}

// New creates an input handler reading from the SDL event queue.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		poll:   sdl.PollEvent,
	}
}

// Update drains pending SDL events. It returns true when the user asked to
// quit, by closing the window or pressing Escape.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := i.poll(); event != nil; event = i.poll() {
		ev, ok := translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Events returns the events collected by the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return Event{}, false
		}
		if e.Keysym.Sym == sdl.K_ESCAPE {
			return Event{Type: EventQuit}, true
		}
		// Held keys arrive as repeated KEYDOWN events; each one counts.
		return Event{
			Type:   EventKeyDown,
			Key:    e.Keysym.Sym,
			Mod:    e.Keysym.Mod,
			Repeat: e.Repeat != 0,
		}, true
	}
	return Event{}, false
}
