package layout

import (
	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// Container is the polymorphic rendering-unit contract. Every node in
// the layout tree implements it.
type Container interface {
	// Reset clears per-session render state.
	Reset()

	// PreferredWidth negotiates the container's width against the
	// caller's constraint.
	PreferredWidth(maxAvailableWidth int) Dimension

	// PreferredHeight negotiates the container's height for the given
	// width against the caller's constraint.
	PreferredHeight(width, maxAvailableHeight int) Dimension

	// WriteToScreen renders the container into the given rectangle of
	// the screen, registering hit regions in handlers.
	WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int)

	// IsModal reports whether the container captures all input.
	IsModal() bool

	// KeyBindings returns the container's key bindings, or nil.
	KeyBindings() *input.KeyBindings

	// Children enumerates the direct child containers.
	Children() []Container
}

// ScrollOffsets is the minimum row clearance to keep around the cursor
// when scrolling.
type ScrollOffsets struct {
	Top    int
	Bottom int
}
