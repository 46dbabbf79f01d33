package layout

import (
	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// VStack stacks child containers vertically, giving each its preferred
// height in order until the available height runs out.
type VStack struct {
	children []Container
}

// NewVStack creates a vertical stack of the given children.
func NewVStack(children ...Container) *VStack {
	return &VStack{children: children}
}

// Append adds a child to the bottom of the stack.
func (v *VStack) Append(c Container) {
	v.children = append(v.children, c)
}

// Reset resets all children.
func (v *VStack) Reset() {
	for _, c := range v.children {
		c.Reset()
	}
}

// PreferredWidth returns the widest child's preference.
func (v *VStack) PreferredWidth(maxAvailableWidth int) Dimension {
	width := 0
	for _, c := range v.children {
		width = max(width, c.PreferredWidth(maxAvailableWidth).Preferred)
	}
	return NewDimension(min(width, maxAvailableWidth))
}

// PreferredHeight returns the sum of the children's preferred heights,
// bounded by the caller's constraint.
func (v *VStack) PreferredHeight(width, maxAvailableHeight int) Dimension {
	height := 0
	for _, c := range v.children {
		height += c.PreferredHeight(width, maxAvailableHeight-height).Preferred
		if height >= maxAvailableHeight {
			height = maxAvailableHeight
			break
		}
	}
	return NewDimension(height)
}

// WriteToScreen renders the children top to bottom.
func (v *VStack) WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int) {
	ypos := wp.YPos
	remaining := wp.Height

	for _, c := range v.children {
		if remaining <= 0 {
			break
		}
		height := min(c.PreferredHeight(wp.Width, remaining).Preferred, remaining)
		if height <= 0 {
			continue
		}
		c.WriteToScreen(s, handlers, screen.WritePosition{
			XPos:   wp.XPos,
			YPos:   ypos,
			Width:  wp.Width,
			Height: height,
		}, parentStyle, eraseBackground, zIndex)
		ypos += height
		remaining -= height
	}
}

// IsModal reports whether any child is modal.
func (v *VStack) IsModal() bool {
	for _, c := range v.children {
		if c.IsModal() {
			return true
		}
	}
	return false
}

// KeyBindings returns the merged bindings of all children.
func (v *VStack) KeyBindings() *input.KeyBindings {
	var merged *input.KeyBindings
	for _, c := range v.children {
		if kb := c.KeyBindings(); kb != nil {
			merged = merged.Merge(kb)
		}
	}
	return merged
}

// Children returns the stacked containers.
func (v *VStack) Children() []Container {
	return v.children
}
