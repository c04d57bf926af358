package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	BulletChar = '•'
	hudRows    = 1 // Top row is reserved for the score line
)

// shipGlyphs indexes the ship's heading in 45° steps, counter-clockwise from up.
var shipGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Game adapts a Session to the terminal platform: it maps actions to ship
// events, handles pause, and draws the world scaled onto the screen.
type Game struct {
	cfg     config.AsteroidsConfig
	session *Session
	config  core.RuntimeConfig
	paused  bool
}

// New creates a new asteroids game with the given configuration.
func New(cfg config.AsteroidsConfig) *Game {
	return &Game{cfg: cfg}
}

// NewDefault creates a game with the embedded default configuration.
func NewDefault() *Game {
	return New(config.DefaultAsteroidsConfig())
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Config returns the simulation configuration.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a fresh session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paused = false
	if g.session == nil || g.session.Seed() != cfg.Seed {
		g.session = NewSession(g.cfg, cfg.Seed)
		return
	}
	g.session.StartNew()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.IsOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Input during a pause is queued so releases are not lost
	for _, a := range in.Actions {
		g.session.Event(EventForAction(a))
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.session.Update()

	return core.StepResult{State: g.State()}
}

// EventForAction maps a platform action to a ship event.
// Actions that do not steer the ship map to EventNone.
func EventForAction(a core.Action) Event {
	switch a {
	case core.ActionTurnLeft:
		return BeginTurnLeft
	case core.ActionTurnRight:
		return BeginTurnRight
	case core.ActionReleaseLeft:
		return EndTurnLeft
	case core.ActionReleaseRight:
		return EndTurnRight
	case core.ActionThrust:
		return BeginThrust
	case core.ActionReleaseThrust:
		return EndThrust
	case core.ActionFire:
		return Fire
	default:
		return EventNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Ticks:    g.session.Ticks(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := newViewport(g.session.Bounds(), dst.Width(), dst.Height()-hudRows)
	for _, e := range g.session.Drawables() {
		switch e := e.(type) {
		case *Bullet:
			x, y := v.point(e.Box().Center())
			dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
		case *Ship:
			g.drawShip(dst, v, e)
		case *Asteroid:
			dst.DrawBoxColor(v.rect(e.Box()), core.ColorGray)
		}
	}

	g.drawHUD(dst)
}

func (g *Game) drawShip(dst *core.Screen, v viewport, s *Ship) {
	x, y := v.point(s.Box().Center())
	color := core.ColorCyan
	if s.Thrusting() {
		color = core.ColorBrightCyan
	}
	dst.SetColor(x, y, shipGlyph(s.Heading()), color)
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(angle float64) rune {
	idx := int(math.Floor((angle+22.5)/45)) % len(shipGlyphs)
	if idx < 0 {
		idx += len(shipGlyphs)
	}
	return shipGlyphs[idx]
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite)

	switch {
	case g.session.IsOver():
		midY := dst.Height() / 2
		dst.DrawTextCentered(midY-1, "GAME OVER")
		dst.DrawTextCentered(midY+1, fmt.Sprintf("Final Score: %d", g.session.Score()))
		dst.DrawTextCentered(midY+3, "Press R to restart or Q to quit")
	case g.session.Ship() == nil:
		dst.DrawTextCentered(dst.Height()/2, "SHIP LOST")
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - Press P to continue")
	}
}

// viewport scales world coordinates onto the cell grid below the HUD.
type viewport struct {
	world      core.Box
	cols, rows float64
}

func newViewport(world core.Box, cols, rows int) viewport {
	return viewport{world: world, cols: float64(cols), rows: float64(rows)}
}

func (v viewport) col(x float64) float64 {
	if v.world.W <= 0 {
		return 0
	}
	return (x - v.world.X) * v.cols / v.world.W
}

func (v viewport) row(y float64) float64 {
	if v.world.H <= 0 {
		return 0
	}
	return (y-v.world.Y)*v.rows/v.world.H + hudRows
}

// point maps a world position to a screen cell.
func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(v.col(x))), int(math.Floor(v.row(y)))
}

// rect maps a world box to the cells it covers, at least one cell each way.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.point(b.X, b.Y)
	x1 := int(math.Ceil(v.col(b.Right())))
	y1 := int(math.Ceil(v.row(b.Bottom())))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}
