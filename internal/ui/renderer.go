package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/isoworld/internal/entity"
	"github.com/samdwyer/isoworld/internal/world"
)

// LevelView is the subset of level queries the renderer needs.
type LevelView interface {
	Width() int
	Depth() int
	Z(x, y int) float64
	HasWall(x, y int, dir world.Direction) bool
}

// cellWidth is the number of terminal columns per tile: left wall, floor,
// right wall.
const cellWidth = 3

// shadeRamp maps elevation buckets to floor glyphs, lowest first.
var shadeRamp = []rune{'.', ':', '-', '=', '+', '*', '#'}

// Renderer draws the level with fog-of-war applied.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the level, dimming everything the observer cannot see. When
// overview is true the fog is lifted and the whole level is drawn.
func (r *Renderer) Render(view LevelView, vis *world.Visibility, observer *entity.Observer, overview bool) {
	r.screen.Clear()

	for y := 0; y < view.Depth(); y++ {
		for x := 0; x < view.Width(); x++ {
			r.renderTile(view, vis, observer, overview, x, y)
		}
	}

	r.screen.Show()
}

func (r *Renderer) renderTile(view LevelView, vis *world.Visibility, observer *entity.Observer, overview bool, x, y int) {
	sx := x * cellWidth

	if observer.Pos.X == x && observer.Pos.Y == y {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(sx+1, y, observer.Symbol, style)
		return
	}

	if !overview && !vis.Visible(x, y) {
		style := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
		r.screen.SetContent(sx+1, y, '░', style)
		return
	}

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if view.HasWall(x, y, world.Left) {
		r.screen.SetContent(sx, y, '|', wallStyle)
	}
	if view.HasWall(x, y, world.Right) {
		r.screen.SetContent(sx+2, y, '|', wallStyle)
	}

	top := view.HasWall(x, y, world.Top)
	bottom := view.HasWall(x, y, world.Bottom)
	switch {
	case top && bottom:
		r.screen.SetContent(sx+1, y, '=', wallStyle)
	case top:
		r.screen.SetContent(sx+1, y, '_', wallStyle)
	case bottom:
		r.screen.SetContent(sx+1, y, '-', wallStyle)
	default:
		r.screen.SetContent(sx+1, y, floorGlyph(view.Z(x, y)), floorStyle(view.Z(x, y)))
	}
}

// floorGlyph picks a shade rune for an elevation, assuming elevations stay
// roughly within the presets' amplitude range.
func floorGlyph(z float64) rune {
	idx := int((z + 8) / 16 * float64(len(shadeRamp)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(shadeRamp) {
		idx = len(shadeRamp) - 1
	}
	return shadeRamp[idx]
}

// floorStyle brightens higher ground.
func floorStyle(z float64) tcell.Style {
	if z > 2 {
		return tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	}
	if z < -2 {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

// RenderMessage displays a message at the given row of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
