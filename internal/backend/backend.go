// Package backend provides the terminal boundary: an abstraction for
// flushing composed screens to a display and polling input events, plus
// the tcell implementation. Nothing outside this package imports tcell.
package backend

import (
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// EventType identifies the type of terminal event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields. Chord is the normalized chord string used by
	// input.KeyBindings, e.g. "up", "ctrl+c", or "a".
	Chord string
	Rune  rune

	// Mouse event fields.
	MouseX, MouseY int
	MouseButton    mouse.Button

	// Resize event fields.
	Width, Height int
}

// Backend is the display surface the compositor's real screen is
// flushed to.
type Backend interface {
	// Init initializes the backend. Must be called before any other
	// method.
	Init() error

	// Shutdown releases resources and restores the terminal state.
	Shutdown()

	// Size returns the current display size in cells.
	Size() (width, height int)

	// Flush draws a composed screen to the display.
	Flush(s *screen.Screen)

	// ShowCursor places the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent blocks for the next event. After Shutdown it returns
	// an event with Type EventNone.
	PollEvent() Event
}
