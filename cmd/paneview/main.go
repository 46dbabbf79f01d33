// Command paneview demonstrates the scrollable-pane compositor: a stack
// of text windows taller than the terminal, scrolled automatically to
// follow the focused window and its cursor.
//
// Keys: arrows move the cursor, Tab/Shift-Tab cycle focus, q or Ctrl-C
// quits. Clicking a window focuses it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/paneview/internal/backend"
	"github.com/dshills/paneview/internal/focus"
	"github.com/dshills/paneview/internal/input"
	"github.com/dshills/paneview/internal/layout"
	"github.com/dshills/paneview/internal/log"
	"github.com/dshills/paneview/internal/mouse"
	"github.com/dshills/paneview/internal/screen"
	"github.com/dshills/paneview/internal/theme"
)

func main() {
	themePath := flag.String("theme", "", "path to a TOML theme file")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(*themePath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "paneview:", err)
		os.Exit(1)
	}
}

func run(themePath, logPath string) error {
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.Set(log.New(log.Config{Level: log.LevelDebug, Output: f, Prefix: "paneview"}))
	} else {
		log.Get().Disable()
	}
	logger := log.Get().WithComponent("demo")

	th := theme.Default()
	if themePath != "" {
		loaded, err := theme.Load(themePath)
		if err != nil {
			return err
		}
		th = loaded
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Shutdown()

	focusMgr := focus.NewManager()

	// A stack of windows far taller than any terminal.
	var windows []*layout.Window
	stack := layout.NewVStack()
	for i := 0; i < 12; i++ {
		w := demoWindow(i)
		w.SetOnClick(func(screen.Point) bool {
			return focusMgr.Focus(w)
		})
		windows = append(windows, w)
		stack.Append(w)
		focusMgr.Add(w)
	}

	body := layout.NewFloatContainer(stack, &layout.Float{
		Content: layout.NewWindow(" Tab: next window   arrows: move cursor   q: quit "),
		Left:    2,
		Top:     1,
		ZIndex:  10,
	})

	opts := layout.DefaultPaneOptions()
	opts.ShowScrollbar = true
	opts.DisplayArrows = true
	pane := layout.NewScrollablePane(body, focusMgr, opts)

	for {
		handlers := render(term, pane, windows, focusMgr, th)

		ev := term.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			return nil
		case backend.EventKey:
			switch ev.Chord {
			case "q", "ctrl+c", "escape":
				return nil
			case "tab":
				focusMgr.Next()
			case "backtab":
				focusMgr.Prev()
			default:
				dispatchKey(ev.Chord, focusMgr)
			}
		case backend.EventMouse:
			if ev.MouseButton == mouse.ButtonNone {
				break
			}
			logger.Debug("mouse press at (%d,%d)", ev.MouseX, ev.MouseY)
			// Hit regions inside the pane's virtual buffer are
			// discarded, so only top-level registrations can match.
			handlers.Dispatch(mouse.Event{
				Position: screen.Point{X: ev.MouseX, Y: ev.MouseY},
				Button:   ev.MouseButton,
			})
		case backend.EventResize:
			// Next render picks up the new size.
		}
	}
}

// demoWindow builds one numbered window with a body whose height varies,
// so some windows fit the viewport and some exceed it.
func demoWindow(i int) *layout.Window {
	height := 4 + (i%4)*6
	lines := make([]string, 0, height+1)
	lines = append(lines, fmt.Sprintf("── window %d ──", i))
	for j := 0; j < height; j++ {
		lines = append(lines, fmt.Sprintf("  line %d of window %d", j, i))
	}

	w := layout.NewWindow(lines...)

	kb := input.NewKeyBindings()
	kb.Bind("up", func() bool { w.MoveCursor(0, -1); return true })
	kb.Bind("down", func() bool { w.MoveCursor(0, 1); return true })
	kb.Bind("left", func() bool { w.MoveCursor(-1, 0); return true })
	kb.Bind("right", func() bool { w.MoveCursor(1, 0); return true })
	w.SetKeyBindings(kb)

	return w
}

// dispatchKey routes a chord to the focused window's bindings.
func dispatchKey(chord string, focusMgr *focus.Manager) {
	w, ok := focusMgr.FocusedUnit().(*layout.Window)
	if !ok {
		return
	}
	w.KeyBindings().Dispatch(chord)
}

// render composes one frame, flushes it, and returns the frame's
// hit-region map.
func render(term backend.Backend, pane *layout.ScrollablePane, windows []*layout.Window, focusMgr *focus.Manager, th *theme.Theme) *mouse.Handlers {
	width, height := term.Size()

	focused := focusMgr.FocusedUnit()
	for _, w := range windows {
		if w == focused {
			w.SetStyle(th.Style("window.focused"))
			w.SetShowCursor(true)
		} else {
			w.SetStyle(th.Style("window"))
			w.SetShowCursor(false)
		}
	}

	defaultStyle := th.Style("default")
	real := screen.NewScreen(width, height, screen.Cell{Rune: ' ', Width: 1, Style: defaultStyle})
	handlers := mouse.NewHandlers()

	pane.WriteToScreen(real, handlers, screen.NewWritePosition(0, 0, width, height), defaultStyle, true, 0)
	real.DrawAllFloats()

	term.Flush(real)

	if cursor, ok := real.CursorPosition(focused); ok && real.ShowCursor {
		term.ShowCursor(cursor.X, cursor.Y)
	} else {
		term.HideCursor()
	}

	return handlers
}
