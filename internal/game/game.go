package game

import (
	"fmt"
	"math"

	"github.com/mkovrin/crystal-drift/internal/config"
	"github.com/mkovrin/crystal-drift/internal/core"
	"github.com/mkovrin/crystal-drift/internal/registry"
)

// Visual glyphs for rendering.
const (
	playerGlyph   = '◆'
	chaserGlyph   = '▲'
	wandererGlyph = '●'
	bulletGlyph   = '•'
	crystalGlyphA = '◇'
	crystalGlyphB = '✦'
	particleGlyph = '·'
)

// fieldTop is the number of screen rows reserved for the HUD; the
// simulation bounds cover the rest.
const fieldTop = 2

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Session to the platform-facing registry.Game interface
// and owns the presentation of snapshots to the screen buffer.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.DriftConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Crystal Drift game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "drift"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crystal Drift"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDrift(configPath)
	if err != nil {
		cfg = config.DefaultDriftConfig()
	}
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.session = NewSession(cfg, runtime.Seed,
		float64(runtime.ScreenW), float64(runtime.ScreenH-fieldTop))
}

// Session exposes the underlying simulation for the tuning panel and tests.
func (g *Game) Session() *Session {
	return g.session
}

// Tuning returns the live tunables.
func (g *Game) Tuning() Tuning {
	return g.session.Tuning()
}

// SetTuning replaces the live tunables; applied at the next tick.
func (g *Game) SetTuning(t Tuning) {
	g.session.SetTuning(t)
}

// Resize updates the world bounds after a viewport change. Entities stay
// where they are; only future placement and clamping use the new bounds.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
	g.session.SetBounds(float64(w), float64(h-fieldTop))
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Map the pointer from screen rows to field rows.
	in.Target.Y -= fieldTop

	g.session.Advance(dt, in)

	events := g.session.DrainSounds()
	sounds := make([]string, 0, len(events))
	for _, ev := range events {
		sounds = append(sounds, string(ev))
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		Lives:    s.Lives(),
		GameOver: s.State() == StateGameOver,
		Paused:   s.State() == StatePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)
	if snap.State == StateMenu {
		g.renderOverlay(dst, snap)
		return
	}
	g.renderGate(dst, snap.Gate)
	g.renderCrystals(dst, snap.Crystals)
	g.renderParticles(dst, snap.Particles)
	g.renderBullets(dst, snap.Bullets)
	g.renderEnemies(dst, snap.Enemies)
	g.renderPlayer(dst, snap)
	g.renderOverlay(dst, snap)
}

// fieldCell converts simulation coordinates to a screen cell.
func fieldCell(p core.Vec2) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y)) + fieldTop
}

// renderHUD draws the score, lives, and level indicators.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", snap.Lives))

	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderGate(dst *core.Screen, gate Gate) {
	x, y := fieldCell(gate.Pos)
	color := core.ColorGray
	glyph := '▒'
	if gate.Open {
		color = core.ColorBrightGreen
		// Pulse between two fill densities.
		if math.Mod(gate.Pulse, 0.8) < 0.4 {
			glyph = '█'
		} else {
			glyph = '▓'
		}
	}
	r := int(gate.Radius)
	for dx := -r; dx <= r; dx++ {
		dst.SetCell(x+dx, y, glyph, color)
	}
	dst.SetCell(x, y-1, glyph, color)
	dst.SetCell(x, y+1, glyph, color)
}

func (g *Game) renderCrystals(dst *core.Screen, crystals []Crystal) {
	for _, c := range crystals {
		x, y := fieldCell(c.Pos)
		glyph := crystalGlyphA
		if math.Mod(c.Spin, 2*math.Pi) > math.Pi {
			glyph = crystalGlyphB
		}
		dst.SetCell(x, y, glyph, core.ColorBrightCyan)
	}
}

func (g *Game) renderParticles(dst *core.Screen, particles []Particle) {
	for _, p := range particles {
		x, y := fieldCell(p.Pos)
		dst.SetCell(x, y, particleGlyph, p.Color)
	}
}

func (g *Game) renderBullets(dst *core.Screen, bullets []Bullet) {
	for _, b := range bullets {
		x, y := fieldCell(b.Pos)
		dst.SetCell(x, y, bulletGlyph, core.ColorBrightYellow)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, enemies []Enemy) {
	for _, e := range enemies {
		x, y := fieldCell(e.Pos)
		switch e.Kind {
		case Chaser:
			dst.SetCell(x, y, chaserGlyph, core.ColorBrightRed)
		case Wanderer:
			dst.SetCell(x, y, wandererGlyph, core.ColorMagenta)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, snap Snapshot) {
	if snap.State != StatePlaying && snap.State != StatePaused {
		return
	}
	// Blink while invulnerable.
	if snap.Player.Invuln > 0 && snap.Tick%8 < 4 {
		return
	}
	x, y := fieldCell(snap.Player.Pos)
	dst.SetCell(x, y, playerGlyph, core.ColorBrightWhite)
}

// renderOverlay draws state-dependent messages.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.State {
	case StateMenu:
		g.drawCenteredBox(dst, "CRYSTAL DRIFT", "Steer with the mouse  |  Press ENTER to start")
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the game with the registry.
func init() {
	registry.Register("drift", func() registry.Game {
		return New()
	})
}
