// Package game provides the explorer loop and its state management.
package game

// State represents the current view mode.
type State int

const (
	// StateFog is the default mode where only tiles the observer can see
	// are drawn.
	StateFog State = iota
	// StateOverview lifts the fog and draws the whole level.
	StateOverview
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateFog:
		return "fog"
	case StateOverview:
		return "overview"
	default:
		return "unknown"
	}
}
