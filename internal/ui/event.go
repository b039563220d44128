// Package ui provides the control panel widgets and the container that wires
// them to the configuration and the avatar.
package ui

import (
	"image"

	"chosenoffset.com/avatarpal/internal/render"
)

// EventKind identifies a pointer event.
type EventKind int

const (
	PointerMove EventKind = iota // cursor moved
	PointerDown                  // left button pressed
	PointerUp                    // left button released
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a pointer event in window coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// Pos returns the event position as a point.
func (e Event) Pos() image.Point {
	return image.Pt(e.X, e.Y)
}

// Component is anything the container can draw and feed events to.
type Component interface {
	Draw(dst render.Image)
	HandleEvent(ev Event)
}

// Poller turns polled input state into discrete events, once per tick.
type Poller struct {
	input   render.InputManager
	lastX   int
	lastY   int
	pressed bool
	primed  bool
}

// NewPoller creates a poller over input.
func NewPoller(input render.InputManager) *Poller {
	return &Poller{input: input}
}

// Poll returns the events since the previous call: a move when the cursor
// changed, then a down or up when the left button changed.
func (p *Poller) Poll() []Event {
	x, y := p.input.GetCursorPosition()
	pressed := p.input.IsMouseButtonPressed(render.MouseButtonLeft)

	var events []Event
	if !p.primed || x != p.lastX || y != p.lastY {
		events = append(events, Event{Kind: PointerMove, X: x, Y: y})
	}
	if pressed && !p.pressed {
		events = append(events, Event{Kind: PointerDown, X: x, Y: y})
	}
	if !pressed && p.pressed {
		events = append(events, Event{Kind: PointerUp, X: x, Y: y})
	}

	p.lastX, p.lastY = x, y
	p.pressed = pressed
	p.primed = true
	return events
}
