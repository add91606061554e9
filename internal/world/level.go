// Package world models an isometric game level: per-tile elevation, per-edge
// walls, move legality, and radius-bounded visibility.
package world

import "math"

// Position is a tile coordinate pair.
type Position struct {
	X, Y int
}

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Level is a fixed-size rectangular grid of tiles. Each tile carries an
// elevation and an opaque payload of type F; each edge between tiles (or on
// the boundary) may carry a wall payload of type W.
//
// A Level is owned by a single caller; concurrent mutation must be
// serialized externally.
type Level[F any, W Payload[W]] struct {
	width   int
	depth   int
	heights *HeightField
	tiles   *TileDataStore[F]
	walls   *WallGrid[W]
}

// New creates a width x depth level with every tile at defaultZ, every edge
// open, and every tile payload at its zero value. The x axis runs from 0 to
// width, the y axis from 0 to depth.
func New[F any, W Payload[W]](width, depth int, defaultZ float64) *Level[F, W] {
	return &Level[F, W]{
		width:   width,
		depth:   depth,
		heights: NewHeightField(width, depth, defaultZ),
		tiles:   NewTileDataStore[F](width, depth),
		walls:   NewWallGrid[W](width, depth),
	}
}

// Width returns the level's extent along the x axis.
func (l *Level[F, W]) Width() int {
	return l.width
}

// Depth returns the level's extent along the y axis.
func (l *Level[F, W]) Depth() int {
	return l.depth
}

// Contains reports whether the position lies within the level.
func (l *Level[F, W]) Contains(p Position) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.depth
}

// Z returns the elevation of tile (x, y).
func (l *Level[F, W]) Z(x, y int) float64 {
	return l.heights.At(x, y)
}

// SetZ writes the elevation of tile (x, y).
func (l *Level[F, W]) SetZ(x, y int, z float64) {
	l.heights.Set(x, y, z)
}

// Heights returns the level's elevation field.
func (l *Level[F, W]) Heights() *HeightField {
	return l.heights
}

// Data returns the payload of tile (x, y).
func (l *Level[F, W]) Data(x, y int) F {
	return l.tiles.At(x, y)
}

// SetData writes the payload of tile (x, y).
func (l *Level[F, W]) SetData(x, y int, value F) {
	l.tiles.Set(x, y, value)
}

// Wall returns the wall payload on the given edge of tile (x, y), or nil if
// the edge is open.
func (l *Level[F, W]) Wall(x, y int, dir Direction) *W {
	return l.walls.At(x, y, dir)
}

// SetWall writes the wall slot on the given edge of tile (x, y). A nil
// payload removes the wall.
func (l *Level[F, W]) SetWall(x, y int, dir Direction, payload *W) {
	l.walls.Set(x, y, dir, payload)
}

// HasWall reports whether a wall is present on the given edge of tile (x, y).
func (l *Level[F, W]) HasWall(x, y int, dir Direction) bool {
	return l.walls.At(x, y, dir) != nil
}

// Walls returns the level's wall grid.
func (l *Level[F, W]) Walls() *WallGrid[W] {
	return l.walls
}

// AddBorderWalls walls off the level's outer boundary. Each boundary edge
// receives its own duplicate of payload.
func (l *Level[F, W]) AddBorderWalls(payload W) {
	l.walls.AddBorder(payload)
}

// AddCliffWalls places a wall between interior adjacent tiles whose
// elevations differ by at least threshold (inclusive). Pairs are scanned
// along +x and +y; the outer border is AddBorderWalls' job.
func (l *Level[F, W]) AddCliffWalls(threshold float64, payload W) {
	for x := 0; x < l.width-1; x++ {
		for y := 0; y < l.depth-1; y++ {
			z := l.heights.At(x, y)
			if math.Abs(z-l.heights.At(x+1, y)) >= threshold {
				wall := payload.Clone()
				l.walls.Set(x, y, Right, &wall)
			}
			if math.Abs(z-l.heights.At(x, y+1)) >= threshold {
				wall := payload.Clone()
				l.walls.Set(x, y, Top, &wall)
			}
		}
	}
}

// IsMovePossible reports whether a character can move from start to end.
//
// Staying in place is always possible. A move to an out-of-bounds or
// non-adjacent tile is not. An orthogonal step is possible iff the wall in
// that direction at the start tile is absent. A diagonal step is possible iff
// at least one of its two orthogonal L-paths (x then y, or y then x) is fully
// open.
func (l *Level[F, W]) IsMovePossible(start, end Position) bool {
	if start == end {
		return true
	}
	if !l.Contains(end) {
		return false
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return false
	}
	if dx != 0 && dy != 0 {
		viaX := Position{X: end.X, Y: start.Y}
		viaY := Position{X: start.X, Y: end.Y}
		return (l.stepOpen(start, viaX) && l.stepOpen(viaX, end)) ||
			(l.stepOpen(start, viaY) && l.stepOpen(viaY, end))
	}
	return l.stepOpen(start, end)
}

// stepOpen reports whether the single orthogonal step from one tile to an
// adjacent one crosses an open edge. Both bordering tiles share the edge
// slot, so checking from the start side is sufficient.
func (l *Level[F, W]) stepOpen(from, to Position) bool {
	switch {
	case to.X == from.X+1:
		return l.walls.At(from.X, from.Y, Right) == nil
	case to.X == from.X-1:
		return l.walls.At(from.X, from.Y, Left) == nil
	case to.Y == from.Y+1:
		return l.walls.At(from.X, from.Y, Top) == nil
	default:
		return l.walls.At(from.X, from.Y, Bottom) == nil
	}
}
