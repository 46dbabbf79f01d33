package layout

import (
	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// Float positions a container on top of other content, relative to the
// rectangle of the FloatContainer that owns it.
type Float struct {
	Content Container

	// Left and Top offset the float within the owning container.
	Left int
	Top  int

	// Width and Height fix the float's size. A zero value negotiates
	// the size with the float's content.
	Width  int
	Height int

	// ZIndex orders overlapping floats; higher draws later.
	ZIndex int
}

// FloatContainer renders body content and defers its floats onto the
// screen's float queue. The screen owner composites them with
// DrawAllFloats, so floats drawn inside a ScrollablePane's virtual
// buffer are resolved before any scroll decision is made.
type FloatContainer struct {
	content Container
	floats  []*Float
}

// NewFloatContainer creates a float container around body content.
func NewFloatContainer(content Container, floats ...*Float) *FloatContainer {
	return &FloatContainer{content: content, floats: floats}
}

// AddFloat attaches a float to the container.
func (f *FloatContainer) AddFloat(fl *Float) {
	f.floats = append(f.floats, fl)
}

// Reset resets the body and all floats.
func (f *FloatContainer) Reset() {
	f.content.Reset()
	for _, fl := range f.floats {
		fl.Content.Reset()
	}
}

// PreferredWidth delegates to the body content.
func (f *FloatContainer) PreferredWidth(maxAvailableWidth int) Dimension {
	return f.content.PreferredWidth(maxAvailableWidth)
}

// PreferredHeight delegates to the body content.
func (f *FloatContainer) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return f.content.PreferredHeight(width, maxAvailableHeight)
}

// WriteToScreen renders the body immediately and queues every float on
// the screen for deferred, z-ordered compositing.
func (f *FloatContainer) WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int) {
	f.content.WriteToScreen(s, handlers, wp, parentStyle, eraseBackground, zIndex)

	for _, fl := range f.floats {
		fl := fl
		z := zIndex + 1 + fl.ZIndex
		s.DeferFloat(z, func() {
			f.writeFloat(fl, s, handlers, wp, parentStyle, z)
		})
	}
}

// writeFloat negotiates a float's rectangle and renders its content.
func (f *FloatContainer) writeFloat(fl *Float, s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, zIndex int) {
	width := fl.Width
	if width <= 0 {
		width = fl.Content.PreferredWidth(wp.Width - fl.Left).Preferred
	}
	width = min(width, max(0, wp.Width-fl.Left))

	height := fl.Height
	if height <= 0 {
		height = fl.Content.PreferredHeight(width, wp.Height-fl.Top).Preferred
	}
	height = min(height, max(0, wp.Height-fl.Top))

	if width <= 0 || height <= 0 {
		return
	}

	fl.Content.WriteToScreen(s, handlers, screen.WritePosition{
		XPos:   wp.XPos + fl.Left,
		YPos:   wp.YPos + fl.Top,
		Width:  width,
		Height: height,
	}, parentStyle, true, zIndex)
}

// IsModal reports whether the body is modal.
func (f *FloatContainer) IsModal() bool {
	return f.content.IsModal()
}

// KeyBindings returns the body's key bindings.
func (f *FloatContainer) KeyBindings() *input.KeyBindings {
	return f.content.KeyBindings()
}

// Children returns the body followed by the float contents.
func (f *FloatContainer) Children() []Container {
	children := []Container{f.content}
	for _, fl := range f.floats {
		children = append(children, fl.Content)
	}
	return children
}
