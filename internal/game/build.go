package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/isoworld/internal/preset"
	"github.com/samdwyer/isoworld/internal/terrain"
	"github.com/samdwyer/isoworld/internal/world"
)

// ResolvePreset loads the preset registry and picks the preset named by the
// config, or the default when none is named.
func ResolvePreset(cfg Config) (*preset.Def, error) {
	registry, err := preset.LoadRegistry()
	if err != nil {
		return nil, err
	}
	if cfg.Preset == "" {
		return registry.Default(), nil
	}
	def := registry.GetByID(cfg.Preset)
	if def == nil {
		return nil, fmt.Errorf("unknown preset %q", cfg.Preset)
	}
	return def, nil
}

// BuildLevel creates a level from a preset: Perlin terrain, border walls
// around the whole grid, cliff walls wherever the terrain steps too steeply,
// and a biome classification in each tile payload.
func BuildLevel(ctx context.Context, def *preset.Def, seed int64) *Level {
	level := world.New[TileInfo, EdgeWall](def.Width, def.Depth, def.DefaultZ)

	gen := terrain.NewGenerator(terrain.Params{
		Alpha:     def.Noise.Alpha,
		Beta:      def.Noise.Beta,
		Octaves:   def.Noise.Octaves,
		Scale:     def.Noise.Scale,
		Amplitude: def.Noise.Amplitude,
	}, seed)
	gen.Fill(ctx, level.Heights())

	level.AddBorderWalls(EdgeWall{Material: "bedrock"})
	level.AddCliffWalls(def.CliffThreshold, EdgeWall{Material: "stone"})
	classifyTiles(level)

	return level
}

// StartPosition returns the observer's initial tile, the level center.
func StartPosition(level *Level) world.Position {
	return world.Position{X: level.Width() / 2, Y: level.Depth() / 2}
}
