package layout

// MaxDimensionValue is the stand-in for an unbounded dimension.
const MaxDimensionValue = 1_000_000

// Dimension describes the negotiated size of a container along one axis.
type Dimension struct {
	// Min is the smallest acceptable size.
	Min int
	// Max is the largest useful size.
	Max int
	// Preferred is the size the container would pick given free choice.
	Preferred int
}

// NewDimension creates a dimension with the given preferred size,
// unbounded above and free to shrink to zero.
func NewDimension(preferred int) Dimension {
	return Dimension{Min: 0, Max: MaxDimensionValue, Preferred: preferred}
}

// ExactDimension creates a dimension fixed to a single size.
func ExactDimension(size int) Dimension {
	return Dimension{Min: size, Max: size, Preferred: size}
}

// Clamp returns v limited to the dimension's min/max range.
func (d Dimension) Clamp(v int) int {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}
