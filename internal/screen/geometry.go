package screen

import "fmt"

// Point is a coordinate in some screen's space.
type Point struct {
	X, Y int
}

// Add returns a new point offset by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// WritePosition is an axis-aligned rectangle describing where a unit
// renders within a screen's coordinate space.
type WritePosition struct {
	XPos   int
	YPos   int
	Width  int
	Height int
}

// NewWritePosition creates a write position.
func NewWritePosition(xpos, ypos, width, height int) WritePosition {
	return WritePosition{XPos: xpos, YPos: ypos, Width: width, Height: height}
}

// Translate returns a write position shifted by the given delta.
// Width and height pass through unchanged.
func (wp WritePosition) Translate(dx, dy int) WritePosition {
	wp.XPos += dx
	wp.YPos += dy
	return wp
}

// Contains returns true if the point lies inside the rectangle.
func (wp WritePosition) Contains(p Point) bool {
	return p.X >= wp.XPos && p.X < wp.XPos+wp.Width &&
		p.Y >= wp.YPos && p.Y < wp.YPos+wp.Height
}

// String returns a string representation of the write position.
func (wp WritePosition) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", wp.Width, wp.Height, wp.XPos, wp.YPos)
}
