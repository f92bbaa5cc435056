package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovrin/crystal-drift/internal/audio"
	"github.com/mkovrin/crystal-drift/internal/core"
	"github.com/mkovrin/crystal-drift/internal/registry"
	"github.com/mkovrin/crystal-drift/internal/storage"
	"github.com/mkovrin/crystal-drift/internal/tuning"
)

// Model is the Bubble Tea model driving a game session. It owns the
// frame clock, translates pointer and key events into input frames, and
// fans simulation output to the screen, the speaker, and score storage.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	tuningStore *tuning.Store
	sound       *audio.Engine
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keys        keyMap
	panel       panelModel

	lastTick   time.Time
	highScore  int
	tapFire    bool // one-tick fire from the keyboard
	quitting   bool
	scoreSaved bool // whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, tuningStore *tuning.Store, sound *audio.Engine, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	highScore := 0
	if store != nil {
		if hs, err := store.HighScore(game.ID()); err == nil {
			highScore = hs
		}
	}

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		tuningStore: tuningStore,
		sound:       sound,
		config:      cfg,
		inputFrame:  core.NewInputFrame(),
		highScore:   highScore,
		keys:        defaultKeyMap(),
		panel:       newPanelModel(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.applySavedTuning()
	return tickCmd(m.config.TickRate)
}

// applySavedTuning overlays persisted panel values onto the game's
// config-derived tunables. Broken stores degrade to config defaults.
func (m Model) applySavedTuning() {
	if m.tuningStore == nil {
		return
	}
	tunable, ok := m.game.(Tunable)
	if !ok {
		return
	}
	t := tunable.Tuning()
	t.ApplyMap(m.tuningStore.Load(m.game.ID()))
	tunable.SetTuning(t)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The open panel captures navigation keys.
	if m.panel.open {
		if done := m.panel.handleKey(msg, m.game, m.tuningStore); done {
			m.panel.open = false
		}
		return m, nil
	}

	if m.keys.mapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionDebug) {
		m.panel.open = true
	}
	if m.inputFrame.Has(core.ActionMute) && m.sound != nil {
		m.sound.ToggleMute()
	}
	if msg.String() == " " {
		m.tapFire = true
	}

	return m, nil
}

// handleMouse maps pointer events to the steering target and fire intent.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Target = core.Vec2{X: float64(msg.X), Y: float64(msg.Y)}

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.inputFrame.Fire = true
		case tea.MouseActionRelease:
			m.inputFrame.Fire = false
		}
	}

	return m, nil
}

// handleResize processes window resize events. The simulation keeps its
// entities; only the bounds and screen buffer change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances the simulation by the real frame delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	interval := time.Second / time.Duration(m.config.TickRate)
	dt := interval.Seconds()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	in := m.inputFrame
	if m.tapFire {
		in.Fire = true
	}

	result := m.game.Step(in, dt)

	if m.gameState.GameOver && !result.State.GameOver {
		// Restarted: allow the next run's score to be saved.
		m.scoreSaved = false
	}
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
		}
		if m.gameState.Score > m.highScore {
			m.highScore = m.gameState.Score
		}
		m.scoreSaved = true
	}

	if m.sound != nil {
		m.sound.PlayAll(result.Sounds)
	}

	// Clear discrete input for next frame; Target and Fire persist.
	m.inputFrame.Clear()
	m.tapFire = false

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.highScore > 0 {
		m.screen.DrawTextColored(1, 1, fmt.Sprintf(" Best: %d ", m.highScore), core.ColorGray)
	}

	if m.panel.open {
		m.panel.draw(m.screen, m.game, m.keys)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, tuningStore *tuning.Store, sound *audio.Engine, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, tuningStore, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer steering needs hover tracking
	)

	_, err := p.Run()
	return err
}
