// Package mouse provides the per-cell hit-region registry that pairs with
// a screen. Containers register a handler for the rectangle they render
// into; the input layer looks up the handler under the pointer.
package mouse

import "github.com/dshills/paneview/internal/screen"

// Button identifies a mouse button or wheel direction.
type Button int

// Mouse buttons.
const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
)

// Event is a mouse event in the coordinate space of the screen the
// handler grid is paired with.
type Event struct {
	Position screen.Point
	Button   Button
}

// Handler reacts to a mouse event. It returns true when the event was
// consumed.
type Handler func(Event) bool

// Handlers is a per-cell registry of mouse handlers, paired 1:1 with a
// screen instance.
type Handlers struct {
	grid map[int]map[int]Handler
}

// NewHandlers creates an empty handler grid.
func NewHandlers() *Handlers {
	return &Handlers{grid: make(map[int]map[int]Handler)}
}

// SetForRange registers a handler for every cell in the rectangle.
func (h *Handlers) SetForRange(wp screen.WritePosition, handler Handler) {
	for y := wp.YPos; y < wp.YPos+wp.Height; y++ {
		row, ok := h.grid[y]
		if !ok {
			row = make(map[int]Handler)
			h.grid[y] = row
		}
		for x := wp.XPos; x < wp.XPos+wp.Width; x++ {
			row[x] = handler
		}
	}
}

// At returns the handler registered at (x, y), or nil.
func (h *Handlers) At(x, y int) Handler {
	return h.grid[y][x]
}

// Dispatch invokes the handler under the event position, if any.
// It returns false when no handler is registered there.
func (h *Handlers) Dispatch(ev Event) bool {
	handler := h.At(ev.Position.X, ev.Position.Y)
	if handler == nil {
		return false
	}
	return handler(ev)
}
