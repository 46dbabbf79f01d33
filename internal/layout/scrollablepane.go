package layout

import (
	"github.com/dshills/paneview/internal/focus"
	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// MaxAvailableHeight caps the virtual buffer height. Beyond this,
// rendering cost becomes unacceptable.
const MaxAvailableHeight = 10_000

// PaneOptions configures a ScrollablePane. The zero value is not useful;
// start from DefaultPaneOptions.
type PaneOptions struct {
	// ScrollOffsets keeps the cursor this many rows clear of the
	// viewport's top and bottom edges.
	ScrollOffsets ScrollOffsets

	// KeepCursorVisible scrolls so the focused unit's cursor stays
	// visible.
	KeepCursorVisible bool

	// KeepFocusedWindowVisible scrolls so the focused unit stays
	// visible, or fills the viewport when the unit is taller than it.
	KeepFocusedWindowVisible bool

	// MaxAvailableHeight caps the virtual buffer height.
	MaxAvailableHeight int

	// Width, when set, overrides the negotiated width.
	Width *Dimension

	// Height, when set, overrides the negotiated height.
	Height *Dimension

	// ShowScrollbar reserves the rightmost viewport column for a
	// proportional scrollbar.
	ShowScrollbar bool

	// DisplayArrows caps the scrollbar with up/down arrows.
	DisplayArrows bool
}

// DefaultPaneOptions returns the default pane configuration.
func DefaultPaneOptions() PaneOptions {
	return PaneOptions{
		ScrollOffsets:            ScrollOffsets{Top: 1, Bottom: 1},
		KeepCursorVisible:        true,
		KeepFocusedWindowVisible: true,
		MaxAvailableHeight:       MaxAvailableHeight,
	}
}

// ScrollablePane exposes a larger virtual screen to its content and
// displays a vertically scrollable viewport of it.
//
// Each render pass allocates a fresh virtual screen, renders the content
// into it at full virtual size, composites deferred floats, resolves the
// vertical scroll from the focused unit's position and cursor, and
// copies the visible slice into the real screen with all registries
// translated. The virtual buffer never outlives the render call.
type ScrollablePane struct {
	content  Container
	provider focus.Provider
	opts     PaneOptions

	// verticalScroll is the top row of the viewport within the virtual
	// buffer. Written only by this pane's own WriteToScreen.
	verticalScroll int
}

// NewScrollablePane creates a pane around content. The focus provider is
// consulted once per render to drive auto-scrolling; it may be nil, in
// which case the pane never adjusts its scroll on its own.
func NewScrollablePane(content Container, provider focus.Provider, opts PaneOptions) *ScrollablePane {
	if opts.MaxAvailableHeight <= 0 {
		opts.MaxAvailableHeight = MaxAvailableHeight
	}
	return &ScrollablePane{
		content:  content,
		provider: provider,
		opts:     opts,
	}
}

// VerticalScroll returns the current top-row offset into the virtual
// buffer.
func (p *ScrollablePane) VerticalScroll() int {
	return p.verticalScroll
}

// Reset forwards to the content.
func (p *ScrollablePane) Reset() {
	p.content.Reset()
}

// PreferredWidth returns the explicit override when configured;
// otherwise the content's own width preference. The pane never scrolls
// horizontally, so width always equals the content's need.
func (p *ScrollablePane) PreferredWidth(maxAvailableWidth int) Dimension {
	if p.opts.Width != nil {
		return *p.opts.Width
	}

	reserved := p.reservedColumns()
	d := p.content.PreferredWidth(max(0, maxAvailableWidth-reserved))
	return NewDimension(min(d.Preferred+reserved, maxAvailableWidth))
}

// PreferredHeight returns the explicit override when configured;
// otherwise the content's preference against the pane's own height cap.
// Min is zero so the pane may shrink below the content's natural size
// and become scrollable instead of forcing layout expansion.
func (p *ScrollablePane) PreferredHeight(width, maxAvailableHeight int) Dimension {
	if p.opts.Height != nil {
		return *p.opts.Height
	}

	d := p.content.PreferredHeight(max(0, width-p.reservedColumns()), p.opts.MaxAvailableHeight)
	return Dimension{Min: 0, Max: MaxDimensionValue, Preferred: d.Preferred}
}

// reservedColumns returns the viewport columns not given to the content.
func (p *ScrollablePane) reservedColumns() int {
	if p.opts.ShowScrollbar {
		return 1
	}
	return 0
}

// WriteToScreen renders the content into a fresh virtual screen,
// resolves the scroll offset, and copies the visible slice into s.
func (p *ScrollablePane) WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int) {
	virtualWidth := max(0, wp.Width-p.reservedColumns())

	virtualHeight := p.content.PreferredHeight(virtualWidth, p.opts.MaxAvailableHeight).Preferred
	virtualHeight = max(virtualHeight, wp.Height)
	virtualHeight = min(virtualHeight, p.opts.MaxAvailableHeight)

	// Fresh arena for this render only.
	virtual := screen.NewScreen(virtualWidth, virtualHeight, screen.Cell{Rune: ' ', Width: 1, Style: parentStyle})

	// Hit regions recorded during the virtual render are not translated
	// back; the map is discarded with the arena.
	virtualHandlers := mouse.NewHandlers()

	p.content.WriteToScreen(virtual, virtualHandlers, screen.WritePosition{
		XPos:   0,
		YPos:   0,
		Width:  virtualWidth,
		Height: virtualHeight,
	}, parentStyle, eraseBackground, zIndex)

	// Floats must land in the virtual buffer before the scroll decision
	// so visibility is judged against final frame content.
	virtual.DrawAllFloats()

	if p.provider != nil {
		if focused := p.provider.FocusedUnit(); focused != nil {
			if winPos, ok := virtual.WritePositionOf(focused); ok {
				var cursor *screen.Point
				if c, ok := virtual.CursorPosition(focused); ok {
					cursor = &c
				}
				p.verticalScroll = ResolveVerticalScroll(
					p.verticalScroll,
					wp.Height,
					virtualHeight,
					winPos,
					cursor,
					p.opts.ScrollOffsets,
					p.opts.KeepCursorVisible,
					p.opts.KeepFocusedWindowVisible,
				)
			}
			// Focused unit not rendered in this subtree: keep the
			// previous scroll. Not an error.
		}
	}

	p.copyToScreen(virtual, s, wp, virtualWidth)

	if p.opts.ShowScrollbar {
		p.drawScrollbar(s, wp, virtualHeight, parentStyle)
	}
}

// copyToScreen blits the visible slice of the virtual screen into the
// real screen and translates every registry. Only vertical coordinates
// are offset.
func (p *ScrollablePane) copyToScreen(virtual, real *screen.Screen, wp screen.WritePosition, copyWidth int) {
	xpos := wp.XPos
	ypos := wp.YPos

	real.EnsureExtent(xpos+wp.Width, ypos+wp.Height)

	for y := 0; y < wp.Height; y++ {
		virtualRow := y + p.verticalScroll
		for x := 0; x < copyWidth; x++ {
			real.SetCell(x+xpos, y+ypos, virtual.Cell(x, virtualRow))
		}
		virtual.EachZeroWidthEscapeInRow(virtualRow, func(x int, seq string) {
			if x < copyWidth {
				real.SetZeroWidthEscape(x+xpos, y+ypos, seq)
			}
		})
	}

	if virtual.ShowCursor {
		real.ShowCursor = true
	}

	// Registries translate by the viewport origin minus the scroll.
	// Width and height pass through unchanged; partially visible units
	// are not truncated.
	virtual.EachWritePosition(func(u screen.Unit, unitPos screen.WritePosition) {
		real.SetWritePosition(u, unitPos.Translate(xpos, ypos-p.verticalScroll))
	})
	virtual.EachCursorPosition(func(u screen.Unit, pt screen.Point) {
		real.SetCursorPosition(u, pt.Add(xpos, ypos-p.verticalScroll))
	})
	virtual.EachMenuPosition(func(u screen.Unit, pt screen.Point) {
		real.SetMenuPosition(u, pt.Add(xpos, ypos-p.verticalScroll))
	})
}

// drawScrollbar renders a proportional scrollbar in the reserved
// rightmost viewport column.
func (p *ScrollablePane) drawScrollbar(s *screen.Screen, wp screen.WritePosition, virtualHeight int, parentStyle screen.Style) {
	if wp.Width < 1 || wp.Height < 1 {
		return
	}

	x := wp.XPos + wp.Width - 1
	trackTop := wp.YPos
	trackHeight := wp.Height

	style := parentStyle.Dim()

	if p.opts.DisplayArrows && wp.Height >= 3 {
		s.SetCell(x, wp.YPos, screen.NewCell('▲', style))
		s.SetCell(x, wp.YPos+wp.Height-1, screen.NewCell('▼', style))
		trackTop++
		trackHeight -= 2
	}
	if trackHeight < 1 {
		return
	}

	// A full-height thumb signals that nothing can scroll.
	thumbTop := 0
	thumbHeight := trackHeight
	if virtualHeight > wp.Height {
		// Thumb height is proportional to how much content is visible.
		thumbHeight = max(1, trackHeight*wp.Height/virtualHeight)
		maxScroll := virtualHeight - wp.Height
		thumbTop = (trackHeight - thumbHeight) * p.verticalScroll / maxScroll
	}

	for i := 0; i < trackHeight; i++ {
		if i >= thumbTop && i < thumbTop+thumbHeight {
			s.SetCell(x, trackTop+i, screen.NewCell('█', style))
		} else {
			s.SetCell(x, trackTop+i, screen.NewCell('│', style))
		}
	}
}

// IsModal forwards to the content.
func (p *ScrollablePane) IsModal() bool {
	return p.content.IsModal()
}

// KeyBindings forwards to the content.
func (p *ScrollablePane) KeyBindings() *input.KeyBindings {
	return p.content.KeyBindings()
}

// Children returns the single owned content container.
func (p *ScrollablePane) Children() []Container {
	return []Container{p.content}
}
