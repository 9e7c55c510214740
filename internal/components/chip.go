package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chip is a compact selectable label.
type Chip struct {
	label    string
	selected bool
	tokens   Tokens
}

// NewChip creates an unselected chip.
func NewChip(label string, tokens Tokens) *Chip {
	return &Chip{label: label, tokens: tokens}
}

// WithSelected sets the selection state.
func (c *Chip) WithSelected(selected bool) *Chip {
	c.selected = selected
	return c
}

// Selected reports the selection state.
func (c *Chip) Selected() bool {
	return c.selected
}

// View renders the chip; selected chips invert onto an accent background.
func (c *Chip) View() string {
	style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	if c.selected {
		style = style.Background(c.tokens.Accent(0)).Foreground(c.tokens.Background).Bold(true)
	} else {
		style = style.Foreground(c.tokens.Secondary)
	}
	return style.Render(c.label)
}

// ChipRow is a single-selection set of chips.
type ChipRow struct {
	labels   []string
	selected int
	tokens   Tokens
	gap      int
}

// NewChipRow creates a chip row with the first entry selected.
func NewChipRow(labels []string, tokens Tokens) *ChipRow {
	return &ChipRow{labels: labels, tokens: tokens, gap: 1}
}

// Select marks the chip at index i; out-of-range indices are ignored.
func (r *ChipRow) Select(i int) *ChipRow {
	if i >= 0 && i < len(r.labels) {
		r.selected = i
	}
	return r
}

// Next advances the selection, wrapping around.
func (r *ChipRow) Next() *ChipRow {
	if len(r.labels) > 0 {
		r.selected = (r.selected + 1) % len(r.labels)
	}
	return r
}

// Selected returns the selected index.
func (r *ChipRow) Selected() int {
	return r.selected
}

// View renders all chips horizontally.
func (r *ChipRow) View() string {
	views := make([]string, 0, len(r.labels))
	for i, label := range r.labels {
		views = append(views, NewChip(label, r.tokens).WithSelected(i == r.selected).View())
	}
	return strings.Join(views, strings.Repeat(" ", r.gap))
}
