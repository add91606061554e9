package game

import "github.com/samdwyer/isoworld/internal/world"

// TileInfo is the opaque per-tile payload the explorer attaches to the level.
type TileInfo struct {
	Biome string
}

// EdgeWall is the wall payload. Bulk generators clone it so every edge holds
// its own copy.
type EdgeWall struct {
	Material string
}

// Clone returns an independent copy of the wall payload.
func (w EdgeWall) Clone() EdgeWall {
	return w
}

// Level is the concrete level type the explorer works with.
type Level = world.Level[TileInfo, EdgeWall]

// classifyTiles derives a biome name from each tile's elevation and stores
// it in the tile payload.
func classifyTiles(level *Level) {
	for y := 0; y < level.Depth(); y++ {
		for x := 0; x < level.Width(); x++ {
			level.SetData(x, y, TileInfo{Biome: biomeFor(level.Z(x, y))})
		}
	}
}

func biomeFor(z float64) string {
	switch {
	case z < -1.5:
		return "water"
	case z < 1.5:
		return "plain"
	case z < 4.0:
		return "hills"
	default:
		return "peaks"
	}
}
