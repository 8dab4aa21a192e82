// Package lander implements the Moon Lander game: a spacecraft descends
// under gravity and limited fuel-driven thrust, trying to touch down
// within velocity and angle tolerances on a pad carved into procedurally
// generated terrain.
package lander

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lunarcade/lander/internal/config"
	"github.com/lunarcade/lander/internal/core"
	"github.com/lunarcade/lander/internal/registry"
)

// Spawn parameters, world units.
const (
	spawnY        = 120 // spawn altitude above the world origin
	spawnOffset   = 80  // max horizontal offset from the pad center
	spawnDriftMax = 0.6 // max initial horizontal drift, units per tick
)

// Star-field background: fixed seed so the sky is the same every session.
const (
	starSeed  = 1234
	starCount = 180
)

// Sprite projection: the body polygon is tiny relative to the world, so
// it is drawn at its own scale around the projected center. Terminal
// cells are roughly twice as tall as wide, hence the split factors.
const (
	spriteScaleX = 0.28
	spriteScaleY = 0.14
)

// Phase is the session state for the current attempt.
type Phase int

const (
	PhaseFlying Phase = iota
	PhaseLanded
	PhaseCrashed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "Flying"
	case PhaseLanded:
		return "Landed"
	case PhaseCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

type star struct {
	pos    core.Vec2
	bright bool
}

// Game implements the Moon Lander session: terrain, pad, vehicle and the
// attempt state machine (flying -> landed/crashed -> restart).
type Game struct {
	cfg core.RuntimeConfig
	tun config.LanderConfig
	dt  float64 // fixed seconds per tick

	seed    int64
	terrain Terrain
	pad     core.RectF
	vehicle *Vehicle

	phase     Phase
	score     int
	best      int
	paused    bool
	thrusting bool
	tick      uint64

	stars    []star
	spawnRng *rand.Rand
}

// configPath is an optional custom tuning file set before creation.
var configPath string

// SetConfigPath sets a custom YAML tuning path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Moon Lander game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Moon Lander"
}

// Reset initializes or restarts the session. The seed determines the
// terrain; spawn randomization draws from a separate stream so a whole
// session is reproducible from RuntimeConfig alone.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.cfg = cfg
	g.dt = 1.0 / float64(cfg.TickRate)

	tun, err := config.LoadLander(configPath)
	if err != nil {
		tun = config.DefaultLanderConfig()
	}
	g.tun = tun

	g.score = 0
	g.best = 0
	g.paused = false
	g.tick = 0
	g.spawnRng = rand.New(rand.NewSource(cfg.Seed))

	g.generateStars()
	g.newWorld(cfg.Seed)
}

// generateStars fills the fixed background sky in world coordinates.
func (g *Game) generateStars() {
	rng := rand.New(rand.NewSource(starSeed))
	g.stars = make([]star, 0, starCount)
	for i := 0; i < starCount; i++ {
		g.stars = append(g.stars, star{
			pos: core.Vec2{
				X: float64(randBetween(rng, 0, int(g.tun.World.Width))),
				Y: float64(randBetween(rng, 0, int(g.tun.World.Height))),
			},
			bright: randBetween(rng, 1, 2) == 2,
		})
	}
}

// newWorld regenerates terrain and pad for a seed and respawns the
// vehicle above the pad with a small randomized offset and drift.
func (g *Game) newWorld(seed int64) {
	g.seed = seed
	g.terrain, g.pad = GenerateTerrain(seed, g.tun)

	spawnX := g.pad.CenterX() + float64(randBetween(g.spawnRng, -spawnOffset, spawnOffset))
	v := NewVehicle(spawnX, spawnY, g.tun.Physics, g.tun.World)
	v.Vel = core.Vec2{X: (g.spawnRng.Float64()*2 - 1) * spawnDriftMax}

	g.vehicle = v
	g.phase = PhaseFlying
	g.thrusting = false
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.phase == PhaseFlying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Terminal phases only wait for a restart command.
	if g.phase != PhaseFlying {
		switch {
		case in.Has(core.ActionRestart):
			g.newWorld(g.seed)
		case in.Has(core.ActionNewSeed):
			g.newWorld(g.spawnRng.Int63())
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++

	g.thrusting = g.vehicle.Update(g.dt, Controls{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
		StrafeLeft:  in.Has(core.ActionStrafeLeft),
		StrafeRight: in.Has(core.ActionStrafeRight),
	})

	attemptOver := false
	switch Classify(g.vehicle, g.terrain, g.pad, g.tun.Landing) {
	case OutcomeLand:
		g.vehicle.Landed = true
		g.phase = PhaseLanded
		g.score += g.tun.Scoring.LandBase + g.landingBonus()
		if g.score > g.best {
			g.best = g.score
		}
		attemptOver = true
	case OutcomeCrash:
		g.enterCrash()
		attemptOver = true
	default:
		// Leaving the world's vertical bound is a crash, not an error.
		if !g.vehicle.Alive {
			g.enterCrash()
			attemptOver = true
		}
	}

	return core.StepResult{State: g.State(), AttemptOver: attemptOver}
}

// landingBonus awards remaining fuel plus a gentleness bonus that drops
// linearly with vertical speed, floored at zero.
func (g *Game) landingBonus() int {
	bonus := int(g.tun.Scoring.GentleBonus - math.Abs(g.vehicle.Vel.Y)*g.tun.Scoring.GentleVYCost)
	if bonus < 0 {
		bonus = 0
	}
	return int(g.vehicle.Fuel) + bonus
}

// enterCrash moves the session to the crashed phase and applies the
// score penalty, floored at zero.
func (g *Game) enterCrash() {
	g.vehicle.Alive = false
	g.phase = PhaseCrashed
	g.score -= g.tun.Scoring.CrashPenalty
	if g.score < 0 {
		g.score = 0
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Best:   g.best,
		Paused: g.paused,
	}
}

// Snapshot-friendly accessors used by the platform and tests.

// Phase returns the current attempt phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Seed returns the seed of the current world.
func (g *Game) Seed() int64 {
	return g.seed
}

// ---- rendering ----

// toScreen projects a world point onto the terminal cell grid.
func (g *Game) toScreen(dst *core.Screen, p core.Vec2) (int, int) {
	sx := int(math.Round(p.X / g.tun.World.Width * float64(dst.Width()-1)))
	sy := int(math.Round(p.Y / g.tun.World.Height * float64(dst.Height()-1)))
	return sx, sy
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawStars(dst)
	g.drawTerrain(dst)
	g.drawPad(dst)
	g.drawVehicle(dst)
	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseLanded:
		g.drawCenteredMessage(dst, "TOUCHDOWN!", "[R] retry same seed  |  [N] new terrain")
	case g.phase == PhaseCrashed:
		g.drawCenteredMessage(dst, "CRASH!", "[R] retry  |  [N] new terrain")
	default:
		hint := "Thrust: W/Up/Space  Rotate: A/D  Strafe: Q/E  Pause: P"
		dst.DrawTextColor((dst.Width()-len(hint))/2, dst.Height()-1, hint, core.ColorGray)
	}
}

func (g *Game) drawStars(dst *core.Screen) {
	for _, s := range g.stars {
		x, y := g.toScreen(dst, s.pos)
		// Keep the sky above the terrain fill
		if s.pos.Y >= g.terrain.HeightAt(s.pos.X) {
			continue
		}
		r := '·'
		if s.bright {
			r = '✦'
		}
		dst.SetCell(x, y, r, core.ColorGray)
	}
}

func (g *Game) drawTerrain(dst *core.Screen) {
	for sx := 0; sx < dst.Width(); sx++ {
		wx := float64(sx) / float64(dst.Width()-1) * g.tun.World.Width
		_, sy := g.toScreen(dst, core.Vec2{X: wx, Y: g.terrain.HeightAt(wx)})
		dst.SetCell(sx, sy, '▓', core.ColorGray)
		for y := sy + 1; y < dst.Height(); y++ {
			dst.SetCell(sx, y, '░', core.ColorGray)
		}
	}
}

func (g *Game) drawPad(dst *core.Screen) {
	x0, py := g.toScreen(dst, core.Vec2{X: g.pad.X, Y: g.pad.Y})
	x1, _ := g.toScreen(dst, core.Vec2{X: g.pad.Right(), Y: g.pad.Y})
	for x := x0; x <= x1; x++ {
		dst.SetCell(x, py, '▀', core.ColorBrightGreen)
	}
}

func (g *Game) drawVehicle(dst *core.Screen) {
	v := g.vehicle
	cx, cy := g.toScreen(dst, v.Pos)

	// Project body polygon at sprite scale around the center.
	poly := v.WorldPolygon()
	px := make([]int, len(poly))
	py := make([]int, len(poly))
	for i, p := range poly {
		d := p.Sub(v.Pos)
		px[i] = cx + int(math.Round(d.X*spriteScaleX))
		py[i] = cy + int(math.Round(d.Y*spriteScaleY))
	}

	bodyColor := core.ColorBrightWhite
	if !v.Alive {
		bodyColor = core.ColorBrightRed
	}
	for i := range poly {
		j := (i + 1) % len(poly)
		dst.DrawLine(px[i], py[i], px[j], py[j], '█', bodyColor)
	}

	// Engine flame from the nozzle while the main engine fires.
	if g.thrusting && v.Fuel > 0 && v.Alive && !v.Landed {
		nozzle := core.Rotate(v.Pos.Add(core.Vec2{Y: bodyHeight / 2}), v.Pos, v.Angle)
		tip := core.Rotate(v.Pos.Add(core.Vec2{Y: bodyHeight/2 + 18}), v.Pos, v.Angle)
		nd := nozzle.Sub(v.Pos)
		td := tip.Sub(v.Pos)
		dst.DrawLine(
			cx+int(math.Round(nd.X*spriteScaleX)), cy+int(math.Round(nd.Y*spriteScaleY)),
			cx+int(math.Round(td.X*spriteScaleX)), cy+int(math.Round(td.Y*spriteScaleY)),
			'▒', core.ColorOrange,
		)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	v := g.vehicle

	// Fuel bar
	const barW = 20
	filled := int(v.Fuel / g.tun.Physics.FuelStart * barW)
	filled = core.Clamp(filled, 0, barW)
	barColor := core.ColorOrange
	if filled <= barW/10 {
		barColor = core.ColorBrightRed
	}
	dst.DrawText(1, 0, "FUEL [")
	for i := 0; i < barW; i++ {
		r := '─'
		c := core.ColorGray
		if i < filled {
			r = '█'
			c = barColor
		}
		dst.SetCell(7+i, 0, r, c)
	}
	dst.DrawText(7+barW, 0, fmt.Sprintf("] %3.0f", v.Fuel))

	dst.DrawText(1, 1, fmt.Sprintf("Vx:%6.2f  Vy:%6.2f", v.Vel.X, v.Vel.Y))

	// Signed angle readout in [-180, 180)
	ang := math.Mod(v.Angle+540, 360) - 180
	dst.DrawText(1, 2, fmt.Sprintf("Ang:%7.2f°", ang))

	dst.DrawTextColor(1, 3, fmt.Sprintf("Score: %d   Best: %d", g.score, g.best), core.ColorBrightYellow)
	dst.DrawTextColor(1, 4, fmt.Sprintf("Seed: %d", g.seed), core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleColor := core.ColorBrightWhite
	if g.phase == PhaseLanded {
		titleColor = core.ColorBrightGreen
	} else if g.phase == PhaseCrashed {
		titleColor = core.ColorBrightRed
	}
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
}
