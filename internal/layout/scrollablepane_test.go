package layout

import (
	"testing"

	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// stubFocus is a focus provider returning a fixed unit.
type stubFocus struct {
	unit screen.Unit
}

func (s *stubFocus) FocusedUnit() screen.Unit { return s.unit }

func blankCell() screen.Cell {
	return screen.Cell{Rune: ' ', Width: 1, Style: screen.DefaultStyle()}
}

func numberedWindow(lines int) *Window {
	content := make([]string, lines)
	for i := range content {
		content[i] = twoDigits(i)
	}
	return NewWindow(content...)
}

func twoDigits(i int) string {
	return string([]rune{'0' + rune(i/10), '0' + rune(i%10)})
}

func TestPaneCopiesVisibleSlice(t *testing.T) {
	w := numberedWindow(30)
	w.SetShowCursor(true)
	w.SetCursor(screen.Point{X: 0, Y: 12})

	pane := NewScrollablePane(w, &stubFocus{unit: w}, DefaultPaneOptions())

	real := screen.NewScreen(20, 10, blankCell())
	handlers := mouse.NewHandlers()
	wp := screen.NewWritePosition(2, 1, 10, 5)

	pane.WriteToScreen(real, handlers, wp, screen.DefaultStyle(), true, 0)

	// Window is taller than the viewport; cursor row 12 with offsets
	// {1,1} narrows the interval to [9,11], so scroll lands on 9.
	if pane.VerticalScroll() != 9 {
		t.Fatalf("expected vertical scroll 9, got %d", pane.VerticalScroll())
	}

	// Viewport row y shows virtual row y+9.
	for y := 0; y < 5; y++ {
		want := twoDigits(y + 9)
		got0 := real.Cell(2, 1+y).Rune
		got1 := real.Cell(3, 1+y).Rune
		if string([]rune{got0, got1}) != want {
			t.Errorf("row %d: expected %q, got %q", y, want, string([]rune{got0, got1}))
		}
		// Cells right of the content are the blank default.
		if r := real.Cell(4, 1+y).Rune; r != ' ' {
			t.Errorf("row %d: expected blank filler, got %q", y, r)
		}
	}

	// Outside the viewport the real screen is untouched.
	if r := real.Cell(2, 0).Rune; r != ' ' {
		t.Errorf("expected untouched cell above viewport, got %q", r)
	}

	// Registries translate by (+xpos, +ypos-scroll).
	winPos, ok := real.WritePositionOf(w)
	if !ok {
		t.Fatal("expected translated write position for window")
	}
	expected := screen.WritePosition{XPos: 2, YPos: 1 - 9, Width: 10, Height: 30}
	if winPos != expected {
		t.Errorf("expected write position %v, got %v", expected, winPos)
	}

	cursor, ok := real.CursorPosition(w)
	if !ok {
		t.Fatal("expected translated cursor position")
	}
	if cursor != (screen.Point{X: 2, Y: 4}) {
		t.Errorf("expected cursor (2,4), got %v", cursor)
	}

	menu, ok := real.MenuPosition(w)
	if !ok {
		t.Fatal("expected translated menu position")
	}
	if menu != (screen.Point{X: 2, Y: 5}) {
		t.Errorf("expected menu (2,5), got %v", menu)
	}

	if !real.ShowCursor {
		t.Error("expected ShowCursor merged into real screen")
	}
}

func TestPaneNoFocusKeepsScroll(t *testing.T) {
	w := numberedWindow(30)
	w.SetShowCursor(true)
	w.SetCursor(screen.Point{X: 0, Y: 12})

	provider := &stubFocus{unit: w}
	pane := NewScrollablePane(w, provider, DefaultPaneOptions())
	wp := screen.NewWritePosition(0, 0, 10, 5)

	pane.WriteToScreen(screen.NewScreen(10, 5, blankCell()), mouse.NewHandlers(), wp, screen.DefaultStyle(), true, 0)
	if pane.VerticalScroll() != 9 {
		t.Fatalf("expected scroll 9 after focused render, got %d", pane.VerticalScroll())
	}

	// Focused unit not part of this subtree: scroll must not move.
	stranger := NewWindow("elsewhere")
	provider.unit = stranger
	pane.WriteToScreen(screen.NewScreen(10, 5, blankCell()), mouse.NewHandlers(), wp, screen.DefaultStyle(), true, 0)
	if pane.VerticalScroll() != 9 {
		t.Errorf("expected scroll unchanged at 9, got %d", pane.VerticalScroll())
	}

	// Nil focus behaves the same.
	provider.unit = nil
	pane.WriteToScreen(screen.NewScreen(10, 5, blankCell()), mouse.NewHandlers(), wp, screen.DefaultStyle(), true, 0)
	if pane.VerticalScroll() != 9 {
		t.Errorf("expected scroll unchanged at 9 with nil focus, got %d", pane.VerticalScroll())
	}
}

func TestPaneNilProviderNeverScrolls(t *testing.T) {
	w := numberedWindow(30)
	pane := NewScrollablePane(w, nil, DefaultPaneOptions())
	wp := screen.NewWritePosition(0, 0, 10, 5)

	pane.WriteToScreen(screen.NewScreen(10, 5, blankCell()), mouse.NewHandlers(), wp, screen.DefaultStyle(), true, 0)
	if pane.VerticalScroll() != 0 {
		t.Errorf("expected scroll 0, got %d", pane.VerticalScroll())
	}
}

func TestPaneVirtualHeightCapped(t *testing.T) {
	w := numberedWindow(50)
	w.SetShowCursor(true)
	w.SetCursor(screen.Point{X: 0, Y: 45})

	opts := DefaultPaneOptions()
	opts.MaxAvailableHeight = 30
	pane := NewScrollablePane(w, &stubFocus{unit: w}, opts)
	wp := screen.NewWritePosition(0, 0, 10, 5)

	pane.WriteToScreen(screen.NewScreen(10, 5, blankCell()), mouse.NewHandlers(), wp, screen.DefaultStyle(), true, 0)

	// Virtual height is capped at 30, so scroll can never exceed 25.
	if pane.VerticalScroll() != 25 {
		t.Errorf("expected scroll 25 at the capped end, got %d", pane.VerticalScroll())
	}
}

// escapeContent writes a column of letters plus zero-width escapes and
// registers itself in the write-position registry.
type escapeContent struct{}

func (e *escapeContent) Reset() {}

func (e *escapeContent) PreferredWidth(maxAvailableWidth int) Dimension {
	return NewDimension(min(3, maxAvailableWidth))
}

func (e *escapeContent) PreferredHeight(width, maxAvailableHeight int) Dimension {
	return NewDimension(min(8, maxAvailableHeight))
}

func (e *escapeContent) WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int) {
	for y := 0; y < wp.Height; y++ {
		s.SetCell(wp.XPos, wp.YPos+y, screen.NewCell(rune('a'+y%26), parentStyle))
	}
	s.AppendZeroWidthEscape(0, 2, "\x1b]8;;link\x07")
	s.AppendZeroWidthEscape(0, 6, "\x1b]8;;hidden\x07")
	s.SetWritePosition(e, wp)
}

func (e *escapeContent) IsModal() bool                   { return false }
func (e *escapeContent) KeyBindings() *input.KeyBindings { return nil }
func (e *escapeContent) Children() []Container           { return nil }

func TestPaneCopiesZeroWidthEscapes(t *testing.T) {
	content := &escapeContent{}
	pane := NewScrollablePane(content, nil, DefaultPaneOptions())

	real := screen.NewScreen(10, 4, blankCell())
	pane.WriteToScreen(real, mouse.NewHandlers(), screen.NewWritePosition(0, 0, 10, 4), screen.DefaultStyle(), true, 0)

	seq, ok := real.ZeroWidthEscape(0, 2)
	if !ok {
		t.Fatal("expected zero-width escape copied into visible row")
	}
	if seq != "\x1b]8;;link\x07" {
		t.Errorf("expected link escape, got %q", seq)
	}

	// The escape below the viewport must not leak in.
	for y := 0; y < 4; y++ {
		if seq, ok := real.ZeroWidthEscape(0, y); ok && seq == "\x1b]8;;hidden\x07" {
			t.Errorf("escape from invisible row leaked into row %d", y)
		}
	}
}

func TestPaneScrollbar(t *testing.T) {
	w := numberedWindow(30)

	opts := DefaultPaneOptions()
	opts.ShowScrollbar = true
	opts.DisplayArrows = true
	pane := NewScrollablePane(w, nil, opts)

	real := screen.NewScreen(10, 6, blankCell())
	pane.WriteToScreen(real, mouse.NewHandlers(), screen.NewWritePosition(0, 0, 10, 6), screen.DefaultStyle(), true, 0)

	if r := real.Cell(9, 0).Rune; r != '▲' {
		t.Errorf("expected up arrow in scrollbar column, got %q", r)
	}
	if r := real.Cell(9, 5).Rune; r != '▼' {
		t.Errorf("expected down arrow in scrollbar column, got %q", r)
	}

	thumb := 0
	for y := 1; y < 5; y++ {
		switch real.Cell(9, y).Rune {
		case '█':
			thumb++
		case '│':
		default:
			t.Errorf("unexpected rune %q in scrollbar track at row %d", real.Cell(9, y).Rune, y)
		}
	}
	if thumb == 0 {
		t.Error("expected a thumb in the scrollbar track")
	}
	if thumb >= 4 {
		t.Errorf("expected partial thumb for overflowing content, got %d of 4", thumb)
	}

	// Content renders only into the remaining width.
	if r := real.Cell(0, 0).Rune; r != '0' {
		t.Errorf("expected content in first column, got %q", r)
	}
}

func TestPaneScrollbarWithoutOverflow(t *testing.T) {
	w := numberedWindow(3)

	opts := DefaultPaneOptions()
	opts.ShowScrollbar = true
	pane := NewScrollablePane(w, nil, opts)

	real := screen.NewScreen(10, 6, blankCell())
	pane.WriteToScreen(real, mouse.NewHandlers(), screen.NewWritePosition(0, 0, 10, 6), screen.DefaultStyle(), true, 0)

	// Nothing can scroll: the thumb fills the track.
	for y := 0; y < 6; y++ {
		if r := real.Cell(9, y).Rune; r != '█' {
			t.Errorf("expected full-height thumb at row %d, got %q", y, r)
		}
	}
}

// fakeContent records passthrough calls.
type fakeContent struct {
	resets int
	modal  bool
	kb     *input.KeyBindings
}

func (f *fakeContent) Reset()                                 { f.resets++ }
func (f *fakeContent) PreferredWidth(int) Dimension           { return NewDimension(4) }
func (f *fakeContent) PreferredHeight(int, int) Dimension     { return NewDimension(4) }
func (f *fakeContent) IsModal() bool                          { return f.modal }
func (f *fakeContent) KeyBindings() *input.KeyBindings        { return f.kb }
func (f *fakeContent) Children() []Container                  { return nil }
func (f *fakeContent) WriteToScreen(s *screen.Screen, handlers *mouse.Handlers, wp screen.WritePosition, parentStyle screen.Style, eraseBackground bool, zIndex int) {
}

func TestPanePassthrough(t *testing.T) {
	kb := input.NewKeyBindings()
	content := &fakeContent{modal: true, kb: kb}
	pane := NewScrollablePane(content, nil, DefaultPaneOptions())

	pane.Reset()
	if content.resets != 1 {
		t.Errorf("expected Reset forwarded once, got %d", content.resets)
	}
	if !pane.IsModal() {
		t.Error("expected IsModal forwarded")
	}
	if pane.KeyBindings() != kb {
		t.Error("expected KeyBindings forwarded")
	}
	children := pane.Children()
	if len(children) != 1 || children[0] != Container(content) {
		t.Errorf("expected single owned child, got %v", children)
	}
}

func TestPanePreferredDimensions(t *testing.T) {
	w := numberedWindow(40)
	pane := NewScrollablePane(w, nil, DefaultPaneOptions())

	// Height: min 0 lets the pane shrink below the content's natural
	// size and scroll instead of forcing layout expansion.
	h := pane.PreferredHeight(10, 5)
	if h.Min != 0 {
		t.Errorf("expected height min 0, got %d", h.Min)
	}
	if h.Preferred != 40 {
		t.Errorf("expected preferred height 40 (content, not caller cap), got %d", h.Preferred)
	}

	// Width delegates to content.
	wd := pane.PreferredWidth(80)
	if wd.Preferred != 2 {
		t.Errorf("expected preferred width 2, got %d", wd.Preferred)
	}
}

func TestPaneDimensionOverrides(t *testing.T) {
	w := numberedWindow(40)

	widthDim := ExactDimension(33)
	heightDim := ExactDimension(7)
	opts := DefaultPaneOptions()
	opts.Width = &widthDim
	opts.Height = &heightDim
	pane := NewScrollablePane(w, nil, opts)

	if got := pane.PreferredWidth(80); got != widthDim {
		t.Errorf("expected width override %v, got %v", widthDim, got)
	}
	if got := pane.PreferredHeight(80, 100); got != heightDim {
		t.Errorf("expected height override %v, got %v", heightDim, got)
	}
}

func TestPaneCompositesFloatsBeforeCopy(t *testing.T) {
	body := numberedWindow(30)
	float := &Float{
		Content: NewWindow("FF"),
		Left:    0,
		Top:     1,
	}
	content := NewFloatContainer(body, float)
	pane := NewScrollablePane(content, nil, DefaultPaneOptions())

	real := screen.NewScreen(10, 5, blankCell())
	pane.WriteToScreen(real, mouse.NewHandlers(), screen.NewWritePosition(0, 0, 10, 5), screen.DefaultStyle(), true, 0)

	// The float overwrote virtual row 1 before the copy.
	if r := real.Cell(0, 1).Rune; r != 'F' {
		t.Errorf("expected float content at row 1, got %q", r)
	}
	if r := real.Cell(0, 0).Rune; r != '0' {
		t.Errorf("expected body content at row 0, got %q", r)
	}
}
