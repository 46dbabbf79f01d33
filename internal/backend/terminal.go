package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/paneview/internal/log"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	logger *log.Logger
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating tcell screen: %w", err)
	}
	return &Terminal{
		screen: s,
		logger: log.Get().WithComponent("backend"),
	}, nil
}

// Init initializes the terminal.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	t.screen.EnableMouse()
	t.screen.EnablePaste()

	return nil
}

// Shutdown restores the terminal state.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Flush draws a composed screen to the terminal. Continuation cells of
// wide characters are skipped; tcell manages them itself. Zero-width
// escapes recorded on the screen are not replayed here because tcell
// owns the terminal's escape stream.
func (t *Terminal) Flush(s *screen.Screen) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	for y := 0; y < height && y < s.Height(); y++ {
		for x := 0; x < width && x < s.Width(); x++ {
			cell := s.Cell(x, y)
			if cell.IsContinuation() {
				continue
			}
			t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
		}
	}
	t.screen.Show()
}

// ShowCursor places the hardware cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks for the next terminal event.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			return convertKeyEvent(tev)
		case *tcell.EventMouse:
			x, y := tev.Position()
			return Event{
				Type:        EventMouse,
				MouseX:      x,
				MouseY:      y,
				MouseButton: convertButtons(tev.Buttons()),
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			t.logger.Debug("resize %dx%d", w, h)
			return Event{Type: EventResize, Width: w, Height: h}
		}
		// Other tcell events (paste, focus) are not surfaced.
	}
}

// convertStyle converts a screen style to a tcell style.
func convertStyle(s screen.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))

	attrs := s.Attributes
	if attrs.Has(screen.AttrBold) {
		style = style.Bold(true)
	}
	if attrs.Has(screen.AttrDim) {
		style = style.Dim(true)
	}
	if attrs.Has(screen.AttrItalic) {
		style = style.Italic(true)
	}
	if attrs.Has(screen.AttrUnderline) {
		style = style.Underline(true)
	}
	if attrs.Has(screen.AttrBlink) {
		style = style.Blink(true)
	}
	if attrs.Has(screen.AttrReverse) {
		style = style.Reverse(true)
	}
	if attrs.Has(screen.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

// convertColor converts a screen color to a tcell color.
func convertColor(c screen.Color) tcell.Color {
	if c.Default {
		return tcell.ColorDefault
	}
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertButtons maps tcell button state to a mouse button.
func convertButtons(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.WheelUp != 0:
		return mouse.WheelUp
	case b&tcell.WheelDown != 0:
		return mouse.WheelDown
	case b&tcell.Button1 != 0:
		return mouse.ButtonLeft
	case b&tcell.Button2 != 0:
		return mouse.ButtonMiddle
	case b&tcell.Button3 != 0:
		return mouse.ButtonRight
	default:
		return mouse.ButtonNone
	}
}

// convertKeyEvent converts a tcell key event into a chord event.
func convertKeyEvent(ev *tcell.EventKey) Event {
	e := Event{Type: EventKey}

	var base string
	switch ev.Key() {
	case tcell.KeyRune:
		e.Rune = ev.Rune()
		base = string(ev.Rune())
	case tcell.KeyUp:
		base = "up"
	case tcell.KeyDown:
		base = "down"
	case tcell.KeyLeft:
		base = "left"
	case tcell.KeyRight:
		base = "right"
	case tcell.KeyPgUp:
		base = "pgup"
	case tcell.KeyPgDn:
		base = "pgdn"
	case tcell.KeyHome:
		base = "home"
	case tcell.KeyEnd:
		base = "end"
	case tcell.KeyTab:
		base = "tab"
	case tcell.KeyBacktab:
		base = "backtab"
	case tcell.KeyEnter:
		base = "enter"
	case tcell.KeyEscape:
		base = "escape"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		base = "backspace"
	case tcell.KeyDelete:
		base = "delete"
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			base = "ctrl+" + string('a'+rune(k-tcell.KeyCtrlA))
		}
	}

	if base != "" && ev.Modifiers()&tcell.ModAlt != 0 {
		base = "alt+" + base
	}

	e.Chord = base
	return e
}
