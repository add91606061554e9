package preset

import "errors"

// NoiseDef holds the Perlin parameters of a preset.
type NoiseDef struct {
	Alpha     float64 `json:"alpha"`     // Smoothness factor
	Beta      float64 `json:"beta"`      // Harmonic scaling factor
	Octaves   int32   `json:"octaves"`   // Number of noise iterations
	Scale     float64 `json:"scale"`     // Tile-to-noise coordinate scale
	Amplitude float64 `json:"amplitude"` // Elevation range in world units
}

// Def defines a terrain preset loaded from JSON.
type Def struct {
	ID             string   `json:"id"`             // Unique identifier (e.g., "highlands")
	Name           string   `json:"name"`           // Display name
	Width          int      `json:"width"`          // Level extent along x
	Depth          int      `json:"depth"`          // Level extent along y
	DefaultZ       float64  `json:"defaultZ"`       // Elevation before generation
	CliffThreshold float64  `json:"cliffThreshold"` // Minimum step that raises a cliff wall
	ViewRadius     int      `json:"viewRadius"`     // Default observer view radius
	Noise          NoiseDef `json:"noise"`
}

// File represents the structure of presets.json.
type File struct {
	Presets []Def `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Def, error) {
	file, err := Load[File]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// Registry holds loaded preset definitions.
type Registry struct {
	presets []Def
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return &Registry{presets: presets}, nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	for i := range r.presets {
		if r.presets[i].ID == id {
			return &r.presets[i]
		}
	}
	return nil
}

// Default returns the first preset in the file.
func (r *Registry) Default() *Def {
	return &r.presets[0]
}

// All returns all preset definitions.
func (r *Registry) All() []Def {
	return r.presets
}

// Count returns the number of loaded presets.
func (r *Registry) Count() int {
	return len(r.presets)
}
