// Package terrain fills elevation fields with Perlin-noise landscapes.
package terrain

import (
	"context"
	"time"

	"github.com/aquilax/go-perlin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/isoworld/internal/telemetry"
	"github.com/samdwyer/isoworld/internal/world"
)

// Params controls the shape of the generated landscape.
type Params struct {
	// Alpha and Beta are the Perlin smoothness and harmonic scaling factors.
	Alpha float64
	Beta  float64
	// Octaves is the number of noise iterations.
	Octaves int32
	// Scale maps tile coordinates into noise space; smaller values give
	// wider features.
	Scale float64
	// Amplitude scales the noise output into world elevation units.
	Amplitude float64
}

// Generator produces deterministic elevation landscapes for a given seed.
type Generator struct {
	noise  *perlin.Perlin
	params Params
}

// NewGenerator creates a generator seeded for reproducible output.
func NewGenerator(params Params, seed int64) *Generator {
	return &Generator{
		noise:  perlin.NewPerlin(params.Alpha, params.Beta, params.Octaves, seed),
		params: params,
	}
}

// Fill writes a noise landscape into every tile of the height field.
func (g *Generator) Fill(ctx context.Context, heights *world.HeightField) {
	tracer := telemetry.Tracer("terrain")
	_, span := tracer.Start(ctx, "terrain.generate")
	defer span.End()

	startTime := time.Now()

	width := heights.Width()
	depth := heights.Depth()
	for y := 0; y < depth; y++ {
		for x := 0; x < width; x++ {
			n := g.noise.Noise2D(float64(x)*g.params.Scale, float64(y)*g.params.Scale)
			heights.Set(x, y, n*g.params.Amplitude)
		}
	}

	span.SetAttributes(
		attribute.Int("terrain.width", width),
		attribute.Int("terrain.depth", depth),
		attribute.Float64("terrain.amplitude", g.params.Amplitude),
		attribute.Int64("terrain.generation_ms", time.Since(startTime).Milliseconds()),
	)
}
