package world

import "fmt"

// Direction identifies one of a tile's four edges. Top points toward +y,
// Right toward +x.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Payload is the constraint for wall payload types. Bulk generators store an
// independent copy per edge, so the type must know how to duplicate itself.
type Payload[T any] interface {
	Clone() T
}

// Unit is the trivial wall payload, for levels that only care about wall
// presence.
type Unit struct{}

// Clone returns a copy of the unit payload.
func (u Unit) Clone() Unit {
	return u
}

// WallGrid stores an optional wall payload for every edge of a width x depth
// grid. Horizontal edges separate tiles along the y axis, vertical edges
// along the x axis. Each physical edge occupies exactly one slot, shared by
// its two bordering tiles: the Top edge of (x,y) is the Bottom edge of
// (x,y+1), and the Right edge of (x,y) is the Left edge of (x+1,y).
//
// A wall is present iff its slot holds a non-nil payload.
type WallGrid[W Payload[W]] struct {
	width      int
	depth      int
	horizontal []*W // width * (depth+1) slots
	vertical   []*W // (width+1) * depth slots
}

// NewWallGrid creates a wall grid for a width x depth tile grid with every
// edge open.
func NewWallGrid[W Payload[W]](width, depth int) *WallGrid[W] {
	return &WallGrid[W]{
		width:      width,
		depth:      depth,
		horizontal: make([]*W, width*(depth+1)),
		vertical:   make([]*W, (width+1)*depth),
	}
}

// Set writes the wall slot for the given edge of tile (x, y). A nil payload
// removes the wall. The tile coordinates must be within bounds.
func (g *WallGrid[W]) Set(x, y int, dir Direction, payload *W) {
	g.checkBounds(x, y)
	switch dir {
	case Bottom:
		g.horizontal[y*g.width+x] = payload
	case Top:
		g.horizontal[(y+1)*g.width+x] = payload
	case Left:
		g.vertical[y*(g.width+1)+x] = payload
	case Right:
		g.vertical[y*(g.width+1)+x+1] = payload
	default:
		panic(fmt.Sprintf("world: invalid direction %d", dir))
	}
}

// At returns the wall payload for the given edge of tile (x, y), or nil if
// the edge is open. The tile coordinates must be within bounds.
func (g *WallGrid[W]) At(x, y int, dir Direction) *W {
	g.checkBounds(x, y)
	switch dir {
	case Bottom:
		return g.horizontal[y*g.width+x]
	case Top:
		return g.horizontal[(y+1)*g.width+x]
	case Left:
		return g.vertical[y*(g.width+1)+x]
	case Right:
		return g.vertical[y*(g.width+1)+x+1]
	default:
		panic(fmt.Sprintf("world: invalid direction %d", dir))
	}
}

// AddBorder walls off the outer boundary of the grid: every Bottom edge at
// y=0, Top edge at y=depth-1, Left edge at x=0, and Right edge at x=width-1.
// Each edge receives its own duplicate of payload.
func (g *WallGrid[W]) AddBorder(payload W) {
	for x := 0; x < g.width; x++ {
		bottom := payload.Clone()
		top := payload.Clone()
		g.Set(x, 0, Bottom, &bottom)
		g.Set(x, g.depth-1, Top, &top)
	}
	for y := 0; y < g.depth; y++ {
		left := payload.Clone()
		right := payload.Clone()
		g.Set(0, y, Left, &left)
		g.Set(g.width-1, y, Right, &right)
	}
}

func (g *WallGrid[W]) checkBounds(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.depth {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds for %dx%d wall grid", x, y, g.width, g.depth))
	}
}
