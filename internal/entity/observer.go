// Package entity provides the entities moving through the level.
package entity

import "github.com/samdwyer/isoworld/internal/world"

// Observer is the moving viewpoint the fog-of-war is computed around.
type Observer struct {
	Pos    world.Position // Current tile
	Symbol rune           // Display symbol
	Radius int            // View radius in tiles
}

// NewObserver creates an observer at the given position.
func NewObserver(pos world.Position, radius int) *Observer {
	return &Observer{
		Pos:    pos,
		Symbol: '@',
		Radius: radius,
	}
}

// MoveTo places the observer on the given tile.
func (o *Observer) MoveTo(pos world.Position) {
	o.Pos = pos
}
