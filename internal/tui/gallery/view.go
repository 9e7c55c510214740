package gallery

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/arclabs/arcui/internal/artwork"
	"github.com/arclabs/arcui/internal/components"
)

// View renders the gallery: style list on the left, artwork detail on the
// right, help footer at the bottom.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderList(),
		m.renderDetail(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("arcui gallery"),
		body,
		footerStyle.Render(m.help.View(m.keys)),
	)
}

// renderList renders the style list grouped by category.
func (m Model) renderList() string {
	var lines []string
	var lastCategory artwork.Category = -1

	for i, typ := range m.items {
		if typ.Category != lastCategory {
			lines = append(lines, categoryStyle.Render(typ.Category.String()))
			lastCategory = typ.Category
		}
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(typ.Style.String()))
		} else {
			lines = append(lines, itemStyle.Render(typ.Style.String()))
		}
	}

	return listStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderDetail renders the animated artwork with its palette and state.
func (m Model) renderDetail() string {
	typ := m.Selected()
	theme, _ := artwork.Resolve(typ)
	theme = m.palette.Apply(typ, theme)
	tokens := components.TokensFrom(theme)

	kinds := components.NewChipRow(kindLabels(), tokens).Select(int(m.kind))

	caption := fmt.Sprintf("%s  ·  %s", typ.String(), m.statusLabel())
	info := lipgloss.JoinVertical(
		lipgloss.Left,
		components.NewSwatchRow(tokens).View(),
		kinds.View(),
		captionStyle.Render(caption),
	)

	card := components.NewCard(typ.Style.String(), tokens).
		WithBody(info).
		View()

	return detailStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		m.art.View(),
		card,
	))
}

func (m Model) statusLabel() string {
	switch {
	case m.reduceMotion:
		return "reduced motion"
	case m.art.Animating():
		return "animating"
	default:
		return "paused"
	}
}

func kindLabels() []string {
	kinds := []artwork.AnimKind{artwork.AnimSpin, artwork.AnimPulse, artwork.AnimShimmer, artwork.AnimBreathe}
	labels := make([]string, 0, len(kinds))
	for _, k := range kinds {
		labels = append(labels, k.String())
	}
	return labels
}
