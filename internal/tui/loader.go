package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arclabs/arcui/internal/artwork"
)

// LoaderView is an ArtworkView pinned to the animating state, for use as a
// themed loading indicator. Stopping it is not supported; hosts remove it
// from the tree instead, which drops any accumulated phase.
type LoaderView struct {
	art     ArtworkView
	caption string
}

// NewLoaderView builds a loader for the given type. The animation starts as
// soon as the view enters a program.
func NewLoaderView(typ artwork.Type, dimension int) LoaderView {
	return LoaderView{
		art:     NewArtworkView(typ, dimension).WithKind(artwork.AnimPulse).WithAnimating(true),
		caption: "Loading",
	}
}

// WithCaption sets the text shown under the artwork. Screen-reader oriented
// hosts surface this same string as the accessible label.
func (l LoaderView) WithCaption(caption string) LoaderView {
	l.caption = caption
	return l
}

// WithKind selects the loader's animation kind.
func (l LoaderView) WithKind(kind artwork.AnimKind) LoaderView {
	l.art = l.art.WithKind(kind).WithAnimating(true)
	return l
}

// WithPeriod overrides the animation cycle duration.
func (l LoaderView) WithPeriod(period time.Duration) LoaderView {
	l.art = l.art.WithPeriod(period)
	return l
}

// WithReduceMotion degrades the loader to its static rest frame. The caption
// still communicates that work is in progress.
func (l LoaderView) WithReduceMotion(reduce bool) LoaderView {
	l.art = l.art.WithReduceMotion(reduce)
	if !reduce {
		l.art = l.art.WithAnimating(true)
	}
	return l
}

// Caption returns the loader's status text.
func (l LoaderView) Caption() string {
	return l.caption
}

// Animating reports whether the loader is actually cycling. Reduce motion is
// the only way this goes false.
func (l LoaderView) Animating() bool {
	return l.art.Animating()
}

func (l LoaderView) Init() tea.Cmd {
	return l.art.Init()
}

func (l LoaderView) Update(msg tea.Msg) (LoaderView, tea.Cmd) {
	var cmd tea.Cmd
	l.art, cmd = l.art.Update(msg)
	return l, cmd
}

func (l LoaderView) View() string {
	body := l.art.View()
	if l.caption == "" {
		return body
	}
	caption := lipgloss.NewStyle().Faint(true).Render(l.caption + "…")
	return lipgloss.JoinVertical(lipgloss.Center, body, caption)
}
