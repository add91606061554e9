package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/isoworld/internal/entity"
	"github.com/samdwyer/isoworld/internal/preset"
	"github.com/samdwyer/isoworld/internal/telemetry"
	"github.com/samdwyer/isoworld/internal/ui"
	"github.com/samdwyer/isoworld/internal/world"
)

// Game holds the entire explorer state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *Level
	def      *preset.Def
	observer *entity.Observer
	vis      *world.Visibility
	state    State
	rng      *rand.Rand
	seed     int64
	running  bool
}

// New creates a new explorer instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		state:    StateFog,
		running:  true,
	}, nil
}

// Run executes the main explorer loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")

	def, err := ResolvePreset(g.cfg)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	g.def = def
	g.seed = g.cfg.ResolveSeed()
	g.rng = rand.New(rand.NewSource(g.seed))

	g.level = BuildLevel(ctx, def, g.seed)

	radius := def.ViewRadius
	if g.cfg.Radius > 0 {
		radius = g.cfg.Radius
	}
	g.observer = entity.NewObserver(StartPosition(g.level), radius)
	g.refreshVisibility()

	initSpan.SetAttributes(
		attribute.String("level.preset", def.ID),
		attribute.Int64("level.seed", g.seed),
		attribute.Int("level.width", g.level.Width()),
		attribute.Int("level.depth", g.level.Depth()),
		attribute.Int("observer.radius", radius),
	)
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// render draws the level and a status line.
func (g *Game) render() {
	g.renderer.Render(g.level, g.vis, g.observer, g.state == StateOverview)
	pos := g.observer.Pos
	status := fmt.Sprintf("%s seed=%d pos=(%d,%d) r=%d %s view=%s | arrows/yubn move, v view, r regen, +/- radius, q quit",
		g.def.Name, g.seed, pos.X, pos.Y, g.observer.Radius,
		g.level.Data(pos.X, pos.Y).Biome, g.state)
	g.renderer.RenderMessage(status, g.level.Depth()+1)
	g.screen.Show()
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Screen rows grow downward, so the
// up arrow decreases y.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'y':
			g.tryMove(-1, -1)
		case 'u':
			g.tryMove(1, -1)
		case 'b':
			g.tryMove(-1, 1)
		case 'n':
			g.tryMove(1, 1)
		case 'v':
			g.toggleView()
		case 'r':
			g.regenerate(ctx)
		case '+':
			g.setRadius(g.observer.Radius + 1)
		case '-':
			g.setRadius(g.observer.Radius - 1)
		}
	}
}

// tryMove attempts to move the observer by the given delta, including
// diagonals, and refreshes the fog on success.
func (g *Game) tryMove(dx, dy int) {
	target := g.observer.Pos.Offset(dx, dy)
	if g.level.IsMovePossible(g.observer.Pos, target) {
		g.observer.MoveTo(target)
		g.refreshVisibility()
	}
}

func (g *Game) toggleView() {
	if g.state == StateFog {
		g.state = StateOverview
	} else {
		g.state = StateFog
	}
}

func (g *Game) setRadius(radius int) {
	if radius < 1 || radius > 32 {
		return
	}
	g.observer.Radius = radius
	g.refreshVisibility()
}

// regenerate rebuilds the level with a fresh seed and recenters the observer.
func (g *Game) regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.regenerate")
	defer span.End()

	g.seed = g.rng.Int63()
	g.level = BuildLevel(ctx, g.def, g.seed)
	g.observer.MoveTo(StartPosition(g.level))
	g.refreshVisibility()

	span.SetAttributes(attribute.Int64("level.seed", g.seed))
}

func (g *Game) refreshVisibility() {
	g.vis = g.level.VisibleFrom(g.observer.Pos, g.observer.Radius)
}

// Close cleans up explorer resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
