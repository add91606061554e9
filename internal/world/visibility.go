package world

import "math"

// Visibility is a square boolean mask of side 2r+1 centered on an observer
// tile, produced by VisibleFrom.
type Visibility struct {
	origin Position
	radius int
	cells  [][]bool
}

// Origin returns the observer position the mask was computed for.
func (v *Visibility) Origin() Position {
	return v.origin
}

// Radius returns the view radius the mask was computed with.
func (v *Visibility) Radius() int {
	return v.radius
}

// Side returns the mask's side length, 2*radius+1.
func (v *Visibility) Side() int {
	return 2*v.radius + 1
}

// At returns the mask cell at matrix coordinates (row, col). The observer
// sits at (radius, radius).
func (v *Visibility) At(row, col int) bool {
	return v.cells[row][col]
}

// Visible reports whether the absolute tile (x, y) is visible. Tiles outside
// the mask's window are not.
func (v *Visibility) Visible(x, y int) bool {
	col := x - v.origin.X + v.radius
	row := y - v.origin.Y + v.radius
	if row < 0 || row >= v.Side() || col < 0 || col >= v.Side() {
		return false
	}
	return v.cells[row][col]
}

// Grid returns the underlying mask, indexed [row][col].
func (v *Visibility) Grid() [][]bool {
	return v.cells
}

// VisibleFrom computes which tiles an observer at pos can see within the
// given radius, by marching 10*radius rays outward and stopping each ray at
// the first blocked edge. Movement legality doubles as sight legality, so a
// wall that blocks a step also blocks the line of sight across it.
//
// This is a cheap approximate sample, not exact shadow-casting: rays overlap
// near the observer and thin out near the rim, so minor artifacts at ray
// boundaries are expected. The observer's own tile is always visible.
func (l *Level[F, W]) VisibleFrom(pos Position, radius int) *Visibility {
	side := 2*radius + 1
	cells := make([][]bool, side)
	for i := range cells {
		cells[i] = make([]bool, side)
	}
	cells[radius][radius] = true

	v := &Visibility{
		origin: pos,
		radius: radius,
		cells:  cells,
	}

	steps := 10 * radius
	limit := float64(radius * radius)
	for s := 0; s < steps; s++ {
		angle := 2 * math.Pi * float64(s) / float64(steps)
		stepX := math.Cos(angle)
		stepY := math.Sin(angle)

		// Continuous offset from the observer, advanced one unit at a time.
		var ox, oy float64
		prev := pos
		for {
			ox += stepX
			oy += stepY
			if ox*ox+oy*oy >= limit {
				break
			}
			cand := Position{
				X: pos.X + int(math.Round(ox)),
				Y: pos.Y + int(math.Round(oy)),
			}
			if cand == prev {
				continue
			}
			if !l.IsMovePossible(prev, cand) {
				// Occlusion is permanent: nothing past a blocking edge is
				// visible along this ray.
				break
			}
			row := cand.Y - pos.Y + radius
			col := cand.X - pos.X + radius
			if row >= 0 && row < side && col >= 0 && col < side {
				cells[row][col] = true
			}
			prev = cand
		}
	}
	return v
}
