package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkovrin/crystal-drift/internal/core"
	"github.com/mkovrin/crystal-drift/internal/game"
	"github.com/mkovrin/crystal-drift/internal/registry"
	"github.com/mkovrin/crystal-drift/internal/tuning"
)

// Tunable is implemented by games that expose live-adjustable parameters
// to the debug panel.
type Tunable interface {
	Tuning() game.Tuning
	SetTuning(game.Tuning)
}

// panelModel is the tuning overlay. It adjusts parameters through the
// validated setter while the simulation keeps running underneath.
type panelModel struct {
	open     bool
	selected int
}

func newPanelModel() panelModel {
	return panelModel{}
}

// handleKey processes a key press while the panel is open.
// Returns true when the panel should close.
func (p *panelModel) handleKey(msg tea.KeyMsg, g registry.Game, store *tuning.Store) bool {
	switch msg.String() {
	case "tab", "esc", "q":
		return true
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(game.TuningNames)-1 {
			p.selected++
		}
	case "left", "h":
		p.adjust(g, store, -1)
	case "right", "l":
		p.adjust(g, store, +1)
	}
	return false
}

// adjust nudges the selected parameter by one step in the given direction.
// Out-of-range values are rejected by the setter and simply not applied.
func (p *panelModel) adjust(g registry.Game, store *tuning.Store, dir float64) {
	tunable, ok := g.(Tunable)
	if !ok {
		return
	}

	name := game.TuningNames[p.selected]
	r := game.TuningRanges[name]

	t := tunable.Tuning()
	value, _ := t.Get(name)
	if err := t.Set(name, value+dir*r.Step); err != nil {
		return
	}
	tunable.SetTuning(t)

	if store != nil {
		newValue, _ := t.Get(name)
		store.Save(g.ID(), name, newValue)
	}
}

// draw renders the panel into the right side of the screen buffer.
func (p *panelModel) draw(dst *core.Screen, g registry.Game, keys keyMap) {
	tunable, ok := g.(Tunable)
	if !ok {
		return
	}
	t := tunable.Tuning()

	boxW := 30
	boxH := len(game.TuningNames) + 5
	boxX := dst.Width() - boxW - 1
	boxY := 2
	if boxX < 0 {
		boxX = 0
	}

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+2, boxY, " TUNING ")

	for i, name := range game.TuningNames {
		value, _ := t.Get(name)
		line := fmt.Sprintf("%-14s %8.2f", name, value)
		marker := "  "
		color := core.ColorDefault
		if i == p.selected {
			marker = "> "
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(boxX+2, boxY+1+i, marker+line, color)
	}

	dst.DrawTextColored(boxX+2, boxY+boxH-3, "←/→ adjust  ↑/↓ select", core.ColorGray)
	dst.DrawTextColored(boxX+2, boxY+boxH-2, "tab close", core.ColorGray)

	// Help bar along the bottom edge. Styled help output would corrupt
	// the cell buffer, so the bindings are rendered as plain text.
	dst.DrawTextColored(1, dst.Height()-1, plainHelp(keys.ShortHelp()), core.ColorGray)
}

// plainHelp formats key bindings as an unstyled help line.
func plainHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
