package screen

import "sort"

// Unit identifies a rendering unit. Screens key their cursor, menu, and
// write-position registries by unit identity, so units are typically
// pointers to container values.
type Unit any

// Screen is a two-dimensional cell buffer plus the bookkeeping the
// compositor needs: a zero-width escape table, per-unit cursor, menu, and
// write-position registries, and a queue of deferred overlay floats.
//
// A Screen is either the real output buffer for one frame or an oversized
// virtual buffer owned by a ScrollablePane for the duration of one render
// call. Both use the same type.
type Screen struct {
	// ShowCursor indicates the hardware cursor should be displayed.
	ShowCursor bool

	width, height int
	defaultCell   Cell
	rows          [][]Cell

	// zeroWidthEscapes holds control sequences that occupy no visual
	// width, keyed per row then column.
	zeroWidthEscapes map[int]map[int]string

	cursorPositions map[Unit]Point
	menuPositions   map[Unit]Point
	writePositions  map[Unit]WritePosition

	floats []deferredFloat
}

// deferredFloat is a postponed draw operation with a z-order.
type deferredFloat struct {
	zIndex int
	draw   func()
}

// NewScreen creates a screen of the given size filled with the default
// cell.
func NewScreen(width, height int, defaultCell Cell) *Screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Screen{
		width:            width,
		height:           height,
		defaultCell:      defaultCell,
		zeroWidthEscapes: make(map[int]map[int]string),
		cursorPositions:  make(map[Unit]Point),
		menuPositions:    make(map[Unit]Point),
		writePositions:   make(map[Unit]WritePosition),
	}
	s.rows = make([][]Cell, height)
	for y := range s.rows {
		s.rows[y] = newRow(width, defaultCell)
	}
	return s
}

func newRow(width int, fill Cell) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = fill
	}
	return row
}

// Width returns the recorded width of the screen.
func (s *Screen) Width() int { return s.width }

// Height returns the recorded height of the screen.
func (s *Screen) Height() int { return s.height }

// DefaultCell returns the cell used to fill unwritten positions.
func (s *Screen) DefaultCell() Cell { return s.defaultCell }

// EnsureExtent grows the recorded width/height (and backing storage) so
// that the screen covers at least width x height. Existing content is
// preserved; new cells are filled with the default cell.
func (s *Screen) EnsureExtent(width, height int) {
	if width > s.width {
		for y := range s.rows {
			row := s.rows[y]
			for x := len(row); x < width; x++ {
				row = append(row, s.defaultCell)
			}
			s.rows[y] = row
		}
		s.width = width
	}
	for y := len(s.rows); y < height; y++ {
		s.rows = append(s.rows, newRow(s.width, s.defaultCell))
	}
	if height > s.height {
		s.height = height
	}
}

// Cell returns the cell at (x, y), or the default cell when out of range.
func (s *Screen) Cell(x, y int) Cell {
	if y < 0 || y >= len(s.rows) {
		return s.defaultCell
	}
	row := s.rows[y]
	if x < 0 || x >= len(row) {
		return s.defaultCell
	}
	return row[x]
}

// SetCell writes the cell at (x, y). Writes outside the current extent
// are dropped.
func (s *Screen) SetCell(x, y int, cell Cell) {
	if y < 0 || y >= len(s.rows) {
		return
	}
	row := s.rows[y]
	if x < 0 || x >= len(row) {
		return
	}
	row[x] = cell
}

// FillRect fills the given rectangle with the cell, clipped to the screen.
func (s *Screen) FillRect(wp WritePosition, cell Cell) {
	for y := wp.YPos; y < wp.YPos+wp.Height; y++ {
		for x := wp.XPos; x < wp.XPos+wp.Width; x++ {
			s.SetCell(x, y, cell)
		}
	}
}

// AppendZeroWidthEscape appends a zero-width control sequence at the
// given cell position.
func (s *Screen) AppendZeroWidthEscape(x, y int, seq string) {
	row, ok := s.zeroWidthEscapes[y]
	if !ok {
		row = make(map[int]string)
		s.zeroWidthEscapes[y] = row
	}
	row[x] += seq
}

// SetZeroWidthEscape replaces the zero-width control sequence at the
// given cell position.
func (s *Screen) SetZeroWidthEscape(x, y int, seq string) {
	row, ok := s.zeroWidthEscapes[y]
	if !ok {
		row = make(map[int]string)
		s.zeroWidthEscapes[y] = row
	}
	row[x] = seq
}

// ZeroWidthEscape returns the zero-width escape sequence recorded at
// (x, y), if any.
func (s *Screen) ZeroWidthEscape(x, y int) (string, bool) {
	row, ok := s.zeroWidthEscapes[y]
	if !ok {
		return "", false
	}
	seq, ok := row[x]
	return seq, ok
}

// EachZeroWidthEscapeInRow calls fn for every zero-width escape recorded
// in the given row.
func (s *Screen) EachZeroWidthEscapeInRow(y int, fn func(x int, seq string)) {
	for x, seq := range s.zeroWidthEscapes[y] {
		fn(x, seq)
	}
}

// SetCursorPosition records the cursor location of a unit.
func (s *Screen) SetCursorPosition(u Unit, p Point) {
	s.cursorPositions[u] = p
}

// CursorPosition returns the recorded cursor location of a unit.
func (s *Screen) CursorPosition(u Unit) (Point, bool) {
	p, ok := s.cursorPositions[u]
	return p, ok
}

// EachCursorPosition calls fn for every recorded cursor location.
func (s *Screen) EachCursorPosition(fn func(u Unit, p Point)) {
	for u, p := range s.cursorPositions {
		fn(u, p)
	}
}

// SetMenuPosition records the menu anchor of a unit.
func (s *Screen) SetMenuPosition(u Unit, p Point) {
	s.menuPositions[u] = p
}

// MenuPosition returns the recorded menu anchor of a unit.
func (s *Screen) MenuPosition(u Unit) (Point, bool) {
	p, ok := s.menuPositions[u]
	return p, ok
}

// EachMenuPosition calls fn for every recorded menu anchor.
func (s *Screen) EachMenuPosition(fn func(u Unit, p Point)) {
	for u, p := range s.menuPositions {
		fn(u, p)
	}
}

// SetWritePosition records the rectangle a unit was drawn at. The
// compositor uses this registry to locate the focused unit.
func (s *Screen) SetWritePosition(u Unit, wp WritePosition) {
	s.writePositions[u] = wp
}

// WritePositionOf returns the rectangle a unit was drawn at.
func (s *Screen) WritePositionOf(u Unit) (WritePosition, bool) {
	wp, ok := s.writePositions[u]
	return wp, ok
}

// EachWritePosition calls fn for every recorded write position.
func (s *Screen) EachWritePosition(fn func(u Unit, wp WritePosition)) {
	for u, wp := range s.writePositions {
		fn(u, wp)
	}
}

// DeferFloat queues a draw operation to run during DrawAllFloats,
// ordered by z-index.
func (s *Screen) DeferFloat(zIndex int, draw func()) {
	s.floats = append(s.floats, deferredFloat{zIndex: zIndex, draw: draw})
}

// DrawAllFloats runs all deferred float draws in ascending z-order.
// Drawing a float may defer further floats; the queue is re-sorted after
// every pop so late arrivals composite at their proper depth.
func (s *Screen) DrawAllFloats() {
	for len(s.floats) > 0 {
		sort.SliceStable(s.floats, func(i, j int) bool {
			return s.floats[i].zIndex < s.floats[j].zIndex
		})
		f := s.floats[0]
		s.floats = s.floats[1:]
		f.draw()
	}
}
