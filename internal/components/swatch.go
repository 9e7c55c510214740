package components

import (
	"github.com/charmbracelet/lipgloss"
)

const swatchBlock = "██"

// SwatchRow renders a theme's colors as labeled blocks, in palette order:
// primary, secondary, then accents.
type SwatchRow struct {
	tokens Tokens
}

// NewSwatchRow creates a swatch row for the given tokens.
func NewSwatchRow(tokens Tokens) *SwatchRow {
	return &SwatchRow{tokens: tokens}
}

// View renders the swatch row.
func (s *SwatchRow) View() string {
	colors := []lipgloss.Color{s.tokens.Primary, s.tokens.Secondary}
	colors = append(colors, s.tokens.Accents...)

	views := make([]string, 0, len(colors))
	for _, c := range colors {
		views = append(views, lipgloss.NewStyle().Foreground(c).Render(swatchBlock))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
