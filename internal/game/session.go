// Package game implements the Crystal Drift simulation core: a
// pointer-steered ship collects crystals, shoots roaming enemies, and
// advances through a gate that opens when the level is cleared.
//
// The package is pure logic with no terminal or I/O dependencies. The
// platform layer drives it with a display-synchronized tick and consumes
// snapshots and sound events.
package game

import (
	"math/rand"

	"github.com/mkovrin/crystal-drift/internal/config"
	"github.com/mkovrin/crystal-drift/internal/core"
)

// Entity radii in cells.
const (
	playerRadius  = 1.2
	enemyRadius   = 1.0
	bulletRadius  = 0.4
	crystalRadius = 0.8
	gateRadius    = 2.0
)

// maxDt caps the per-tick delta so a stalled host (suspended terminal,
// backgrounded session) cannot destabilize the integration.
const maxDt = 0.033

// State is the session's top-level machine state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (st State) String() string {
	switch st {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session is the authoritative aggregate for one play session. It owns all
// entities and counters; the tick driver owns the Session and mutates it
// only through Advance and the state-transition methods. No globals.
type Session struct {
	cfg    config.DriftConfig
	tuning Tuning
	rng    *rand.Rand

	boundsW float64
	boundsH float64

	state State
	level int
	score int
	lives int
	tick  uint64

	player    Player
	enemies   []Enemy
	bullets   []Bullet
	crystals  []Crystal
	gate      Gate
	particles []Particle

	sounds []SoundEvent
}

// NewSession creates a session in the menu state.
func NewSession(cfg config.DriftConfig, seed int64, w, h float64) *Session {
	return &Session{
		cfg:     cfg,
		tuning:  TuningFromConfig(cfg.Physics),
		rng:     rand.New(rand.NewSource(seed)),
		boundsW: w,
		boundsH: h,
		state:   StateMenu,
		lives:   cfg.Gameplay.Lives,
		level:   1,
	}
}

// SetBounds updates the world bounds after a viewport resize. Entities are
// not repositioned; only future placement and clamping use the new bounds.
func (s *Session) SetBounds(w, h float64) {
	if w > 0 {
		s.boundsW = w
	}
	if h > 0 {
		s.boundsH = h
	}
}

// Bounds returns the current world bounds.
func (s *Session) Bounds() (w, h float64) {
	return s.boundsW, s.boundsH
}

// SetTuning replaces the live tunables. Called by the platform at the
// start of a tick when the tuning panel or store changed something.
func (s *Session) SetTuning(t Tuning) {
	s.tuning = t
}

// Tuning returns the current live tunables.
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// State returns the current machine state.
func (s *Session) State() State {
	return s.state
}

// Score returns the session score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level number (1-based).
func (s *Session) Level() int {
	return s.level
}

// Lives returns the lives remaining.
func (s *Session) Lives() int {
	return s.lives
}

// Start begins play from the menu, seeding level 1.
func (s *Session) Start() {
	if s.state != StateMenu {
		return
	}
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.startLevel(1)
	s.state = StatePlaying
}

// TogglePause flips between playing and paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Restart leaves game over, resetting score, lives, and level, and
// reseeding level 1.
func (s *Session) Restart() {
	if s.state != StateGameOver {
		return
	}
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.startLevel(1)
	s.state = StatePlaying
}

// handleActions applies discrete input actions to the state machine.
func (s *Session) handleActions(in core.InputFrame) {
	if in.Has(core.ActionStart) && s.state == StateMenu {
		s.Start()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionRestart) && s.state == StateGameOver {
		s.Restart()
	}
}
