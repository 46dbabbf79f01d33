package layout

import (
	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// Window is a leaf container rendering styled text lines with an
// optional cursor. It registers its write position, cursor, menu anchor,
// and hit region on the screen it renders into, which is what lets a
// surrounding ScrollablePane find and track it.
type Window struct {
	style      screen.Style
	lines      []string
	cursor     screen.Point
	showCursor bool
	modal      bool
	bindings   *input.KeyBindings
	onClick    func(screen.Point) bool
}

// NewWindow creates a window showing the given lines.
func NewWindow(lines ...string) *Window {
	return &Window{lines: lines}
}

// SetStyle sets the window's own style, merged over the parent style at
// render time.
func (w *Window) SetStyle(style screen.Style) {
	w.style = style
}

// SetLines replaces the window content.
func (w *Window) SetLines(lines ...string) {
	w.lines = lines
	w.clampCursor()
}

// Lines returns the window content.
func (w *Window) Lines() []string {
	return w.lines
}

// SetShowCursor controls whether the window reports a cursor position.
func (w *Window) SetShowCursor(show bool) {
	w.showCursor = show
}

// SetModal marks the window as modal.
func (w *Window) SetModal(modal bool) {
	w.modal = modal
}

// SetKeyBindings attaches a key-binding set to the window.
func (w *Window) SetKeyBindings(kb *input.KeyBindings) {
	w.bindings = kb
}

// SetOnClick attaches a mouse click handler, invoked with the click
// position in the window's content coordinates.
func (w *Window) SetOnClick(fn func(screen.Point) bool) {
	w.onClick = fn
}

// Cursor returns the cursor position in content coordinates.
func (w *Window) Cursor() screen.Point {
	return w.cursor
}

// SetCursor moves the cursor, clamped to the content.
func (w *Window) SetCursor(p screen.Point) {
	w.cursor = p
	w.clampCursor()
}

// MoveCursor moves the cursor by a delta, clamped to the content.
func (w *Window) MoveCursor(dx, dy int) {
	w.SetCursor(w.cursor.Add(dx, dy))
}

func (w *Window) clampCursor() {
	if w.cursor.Y < 0 {
		w.cursor.Y = 0
	}
	if w.cursor.Y >= len(w.lines) {
		w.cursor.Y = max(0, len(w.lines)-1)
	}
	if w.cursor.X < 0 {
		w.cursor.X = 0
	}
	var lineWidth int
	if w.cursor.Y < len(w.lines) {
		lineWidth = screen.StringWidth(w.lines[w.cursor.Y])
	}
	if w.cursor.X > lineWidth {
		w.cursor.X = lineWidth
	}
}

// Reset clears per-session render state.
func (w *Window) Reset() {}

// PreferredWidth returns the width of the widest line, bounded by the
// caller's constraint.
func (w *Window) PreferredWidth(maxAvailableWidth int) Dimension {
	width := 0
	for _, line := range w.lines {
		width = max(width, screen.StringWidth(line))
	}
	return NewDimension(min(width, maxAvailableWidth))
}

// PreferredHeight returns one row per content line, bounded by the
// caller's constraint.
func (w *Window) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return NewDimension(min(len(w.lines), maxAvailableHeight))
}

// WriteToScreen renders the window's lines into the given rectangle.
func (w *Window) WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int) {
	style := parentStyle.Merge(w.style)

	if eraseBackground {
		s.FillRect(wp, screen.Cell{Rune: ' ', Width: 1, Style: style})
	}

	for y := 0; y < wp.Height && y < len(w.lines); y++ {
		cells := screen.CellsFromString(w.lines[y], style)
		for x := 0; x < wp.Width && x < len(cells); x++ {
			s.SetCell(wp.XPos+x, wp.YPos+y, cells[x])
		}
	}

	s.SetWritePosition(w, wp)

	if w.showCursor {
		cursor := screen.Point{
			X: wp.XPos + min(w.cursor.X, max(0, wp.Width-1)),
			Y: wp.YPos + min(w.cursor.Y, max(0, wp.Height-1)),
		}
		s.SetCursorPosition(w, cursor)
		s.SetMenuPosition(w, cursor.Add(0, 1))
		s.ShowCursor = true
	}

	if w.onClick != nil {
		handlers.SetForRange(wp, func(ev mouse.Event) bool {
			return w.onClick(screen.Point{
				X: ev.Position.X - wp.XPos,
				Y: ev.Position.Y - wp.YPos,
			})
		})
	}
}

// IsModal reports whether the window captures all input.
func (w *Window) IsModal() bool {
	return w.modal
}

// KeyBindings returns the window's key bindings, or nil.
func (w *Window) KeyBindings() *input.KeyBindings {
	return w.bindings
}

// Children returns nil; windows are leaves.
func (w *Window) Children() []Container {
	return nil
}
