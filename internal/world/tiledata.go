package world

import "fmt"

// TileDataStore attaches one opaque payload value to each tile. The payload
// type is entirely up to the caller; every tile starts at the type's zero
// value.
type TileDataStore[T any] struct {
	width  int
	depth  int
	values []T
}

// NewTileDataStore creates a width x depth store of zero-valued payloads.
func NewTileDataStore[T any](width, depth int) *TileDataStore[T] {
	return &TileDataStore[T]{
		width:  width,
		depth:  depth,
		values: make([]T, width*depth),
	}
}

// At returns the payload of tile (x, y).
// Coordinates must be within bounds.
func (s *TileDataStore[T]) At(x, y int) T {
	s.checkBounds(x, y)
	return s.values[y*s.width+x]
}

// Set writes the payload of tile (x, y).
// Coordinates must be within bounds.
func (s *TileDataStore[T]) Set(x, y int, value T) {
	s.checkBounds(x, y)
	s.values[y*s.width+x] = value
}

func (s *TileDataStore[T]) checkBounds(x, y int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.depth {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds for %dx%d store", x, y, s.width, s.depth))
	}
}
