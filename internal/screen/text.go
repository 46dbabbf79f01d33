package screen

import "github.com/rivo/uniseg"

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// CellsFromString converts a string into styled cells, one cell per
// grapheme cluster. Wide clusters are followed by a continuation cell so
// the slice length equals the display width.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))

	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width <= 0 {
			// Zero-width cluster (control char, combining mark on its
			// own). Nothing to place in the cell grid.
			continue
		}

		r := []rune(cluster)[0]
		cells = append(cells, Cell{Rune: r, Width: width, Style: style})
		for i := 1; i < width; i++ {
			cells = append(cells, ContinuationCell())
		}
	}

	return cells
}

// StringFromCells converts cells back to a string, skipping continuation
// cells.
func StringFromCells(cells []Cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if !c.IsContinuation() && c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}
