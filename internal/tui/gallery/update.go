package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arclabs/arcui/internal/artwork"
	"github.com/arclabs/arcui/internal/tui"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.art = m.art.SetDimension(m.artDimension())
		return m, tui.Tick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tui.TickMsg:
		var cmd tea.Cmd
		m.art, cmd = m.art.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.items) - 1
		}
		return m.rebuildArt()

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m.rebuildArt()

	case key.Matches(msg, m.keys.Kind):
		m.kind = nextKind(m.kind)
		return m.rebuildArt()

	case key.Matches(msg, m.keys.Animate):
		m.animating = !m.animating
		m.art = m.art.WithAnimating(m.animating)
		return m, m.art.Init()

	case key.Matches(msg, m.keys.Motion):
		m.reduceMotion = !m.reduceMotion
		return m.rebuildArt()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// rebuildArt replaces the artwork view after a selection change, keeping the
// requested animation state.
func (m Model) rebuildArt() (tea.Model, tea.Cmd) {
	m.art = m.buildArt().WithAnimating(m.animating)
	return m, m.art.Init()
}

func nextKind(kind artwork.AnimKind) artwork.AnimKind {
	switch kind {
	case artwork.AnimSpin:
		return artwork.AnimPulse
	case artwork.AnimPulse:
		return artwork.AnimShimmer
	case artwork.AnimShimmer:
		return artwork.AnimBreathe
	default:
		return artwork.AnimSpin
	}
}
