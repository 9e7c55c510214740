package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Card frames a title and body in a themed bordered box.
type Card struct {
	title    string
	body     string
	tokens   Tokens
	strategy Strategy
	width    int
}

// NewCard creates a card with the default frame strategy.
func NewCard(title string, tokens Tokens) *Card {
	return &Card{
		title:  title,
		tokens: tokens,
		strategy: Chain(
			RoundedBorder(),
			PaddingX(1),
		),
	}
}

// WithBody sets the card body text.
func (c *Card) WithBody(body string) *Card {
	c.body = body
	return c
}

// WithWidth fixes the rendered width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithStrategy replaces the frame strategy.
func (c *Card) WithStrategy(s Strategy) *Card {
	c.strategy = s
	return c
}

// View renders the card.
func (c *Card) View() string {
	frame := c.strategy.Apply(lipgloss.NewStyle(), c.tokens)
	if c.width > 0 {
		frame = frame.Width(c.width)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(c.tokens.Primary).Render(c.title)
	if c.body == "" {
		return frame.Render(title)
	}
	body := lipgloss.NewStyle().Foreground(c.tokens.Secondary).Render(c.body)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
