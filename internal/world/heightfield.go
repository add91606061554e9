package world

import "fmt"

// HeightField stores one elevation value per tile in a dense array.
// It is allocated once at construction and never resized.
type HeightField struct {
	width  int
	depth  int
	values []float64
}

// NewHeightField creates a width x depth field with every tile at defaultZ.
func NewHeightField(width, depth int, defaultZ float64) *HeightField {
	values := make([]float64, width*depth)
	for i := range values {
		values[i] = defaultZ
	}
	return &HeightField{
		width:  width,
		depth:  depth,
		values: values,
	}
}

// Width returns the field's extent along the x axis.
func (h *HeightField) Width() int {
	return h.width
}

// Depth returns the field's extent along the y axis.
func (h *HeightField) Depth() int {
	return h.depth
}

// At returns the elevation of tile (x, y).
// Coordinates must be within bounds.
func (h *HeightField) At(x, y int) float64 {
	h.checkBounds(x, y)
	return h.values[y*h.width+x]
}

// Set writes the elevation of tile (x, y).
// Coordinates must be within bounds.
func (h *HeightField) Set(x, y int, z float64) {
	h.checkBounds(x, y)
	h.values[y*h.width+x] = z
}

func (h *HeightField) checkBounds(x, y int) {
	if x < 0 || x >= h.width || y < 0 || y >= h.depth {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds for %dx%d field", x, y, h.width, h.depth))
	}
}
