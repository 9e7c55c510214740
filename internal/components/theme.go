// Package components is a small themed widget kit for the gallery. Styling
// follows a strategy model: widgets hold composable StyleFunc chains that are
// resolved against theme Tokens at render time, so no global theme state
// exists and two widgets can render with different themes side by side.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arclabs/arcui/internal/artwork"
)

// Renderable is anything that can produce a terminal string.
type Renderable interface {
	View() string
}

// Tokens bridges an artwork color theme into terminal styling values.
type Tokens struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Shadow     lipgloss.Color
	Accents    []lipgloss.Color
}

// TokensFrom converts an artwork theme into lipgloss colors.
func TokensFrom(t artwork.Theme) Tokens {
	accents := make([]lipgloss.Color, 0, len(t.Accents))
	for _, a := range t.Accents {
		accents = append(accents, lipgloss.Color(a.Hex()))
	}
	return Tokens{
		Primary:    lipgloss.Color(t.Primary.Hex()),
		Secondary:  lipgloss.Color(t.Secondary.Hex()),
		Background: lipgloss.Color(t.Background.Hex()),
		Shadow:     lipgloss.Color(t.Shadow.Hex()),
		Accents:    accents,
	}
}

// Accent returns the accent color at index i, falling back to Primary when
// the index is out of range. Widgets are decorative; unlike the artwork
// builders they share one fallback.
func (tk Tokens) Accent(i int) lipgloss.Color {
	if i < 0 || i >= len(tk.Accents) {
		return tk.Primary
	}
	return tk.Accents[i]
}

// StyleFunc applies one theme-aware styling transformation.
type StyleFunc func(lipgloss.Style, Tokens) lipgloss.Style

// Strategy resolves a base style against theme tokens.
type Strategy interface {
	Apply(base lipgloss.Style, tokens Tokens) lipgloss.Style
}

type chain []StyleFunc

func (c chain) Apply(base lipgloss.Style, tokens Tokens) lipgloss.Style {
	for _, fn := range c {
		base = fn(base, tokens)
	}
	return base
}

// Chain combines style functions into a strategy applied in order.
func Chain(funcs ...StyleFunc) Strategy {
	return chain(funcs)
}

// Foreground colors text with the primary theme color.
func Foreground() StyleFunc {
	return func(base lipgloss.Style, tokens Tokens) lipgloss.Style {
		return base.Foreground(tokens.Primary)
	}
}

// AccentForeground colors text with an accent color.
func AccentForeground(i int) StyleFunc {
	return func(base lipgloss.Style, tokens Tokens) lipgloss.Style {
		return base.Foreground(tokens.Accent(i))
	}
}

// RoundedBorder frames content with a rounded border in the secondary color.
func RoundedBorder() StyleFunc {
	return func(base lipgloss.Style, tokens Tokens) lipgloss.Style {
		return base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(tokens.Secondary)
	}
}

// PaddingX applies symmetric horizontal padding.
func PaddingX(v int) StyleFunc {
	return func(base lipgloss.Style, _ Tokens) lipgloss.Style {
		return base.PaddingLeft(v).PaddingRight(v)
	}
}
