package game

import (
	"os"
	"strconv"
	"time"
)

// Config holds explorer configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible terrain.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Preset is the terrain preset ID. Empty selects the default preset.
	Preset string
	// Radius overrides the preset's view radius when positive.
	Radius int
}

// FromEnv builds a Config from ISOWORLD_* environment variables. Unset or
// malformed values fall back to their zero defaults.
func FromEnv() Config {
	cfg := Config{
		Preset: os.Getenv("ISOWORLD_PRESET"),
	}
	if v, err := strconv.ParseInt(os.Getenv("ISOWORLD_SEED"), 10, 64); err == nil {
		cfg.Seed = v
	}
	if v, err := strconv.Atoi(os.Getenv("ISOWORLD_RADIUS")); err == nil {
		cfg.Radius = v
	}
	return cfg
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
