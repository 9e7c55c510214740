// Package gallery is the interactive artwork browser: a list of every style
// on the left, the animated artwork with its palette on the right.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arclabs/arcui/internal/artwork"
	"github.com/arclabs/arcui/internal/config"
	"github.com/arclabs/arcui/internal/tui"
)

const (
	defaultDimension = 40
	minDimension     = 16
	maxDimension     = 96
)

// Model is the gallery model.
type Model struct {
	// Core data
	items   []artwork.Type
	palette *config.Palette

	// UI state
	cursor       int
	kind         artwork.AnimKind
	animating    bool
	reduceMotion bool

	// Component state
	art  tui.ArtworkView
	help help.Model
	keys keyMap

	// Dimensions
	width  int
	height int
}

// NewModel creates a gallery over every artwork type. A nil palette means no
// overrides.
func NewModel(palette *config.Palette) Model {
	m := Model{
		items:     artwork.All(),
		palette:   palette,
		kind:      artwork.AnimSpin,
		animating: true,
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     80,
		height:    24,
	}
	m.art = m.buildArt().WithAnimating(true)
	return m
}

// buildArt constructs the artwork view for the current cursor, kind and
// motion settings.
func (m Model) buildArt() tui.ArtworkView {
	typ := m.items[m.cursor]
	theme, _ := artwork.Resolve(typ)
	return tui.NewArtworkView(typ, m.artDimension()).
		WithTheme(m.palette.Apply(typ, theme)).
		WithKind(m.kind).
		WithReduceMotion(m.reduceMotion)
}

// artDimension derives the artwork pixel dimension from the terminal size.
// Half-block cells carry two pixels per row, so height dominates.
func (m Model) artDimension() int {
	if m.height <= 0 {
		return defaultDimension
	}
	dim := (m.height - 8) * 2
	if dim < minDimension {
		dim = minDimension
	}
	if dim > maxDimension {
		dim = maxDimension
	}
	return dim
}

// Selected returns the type under the cursor.
func (m Model) Selected() artwork.Type {
	return m.items[m.cursor]
}

// Kind returns the active animation kind.
func (m Model) Kind() artwork.AnimKind {
	return m.kind
}

// ReduceMotion reports whether motion is reduced.
func (m Model) ReduceMotion() bool {
	return m.reduceMotion
}

// Animating reports whether the artwork is cycling.
func (m Model) Animating() bool {
	return m.art.Animating()
}

// Init starts the animation loop.
func (m Model) Init() tea.Cmd {
	return m.art.Init()
}
