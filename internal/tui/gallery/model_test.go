package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/arclabs/arcui/internal/artwork"
	"github.com/arclabs/arcui/internal/config"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)

	require.Equal(t, artwork.Pizza, m.Selected())
	require.Equal(t, artwork.AnimSpin, m.Kind())
	require.True(t, m.Animating())
	require.False(t, m.ReduceMotion())
	require.NotNil(t, m.Init())
}

func TestCursorWrapsBothWays(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)

	next, _ := m.Update(keyRune('k'))
	m = next.(Model)
	require.Equal(t, artwork.Horror, m.Selected(), "up from the first entry wraps to the last")

	next, _ = m.Update(keyRune('j'))
	m = next.(Model)
	require.Equal(t, artwork.Pizza, m.Selected())
}

func TestKindCycles(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)

	for _, want := range []artwork.AnimKind{artwork.AnimPulse, artwork.AnimShimmer, artwork.AnimBreathe, artwork.AnimSpin} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Model)
		require.Equal(t, want, m.Kind())
	}
}

func TestAnimateToggle(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	require.False(t, m.Animating())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	require.True(t, m.Animating())
}

func TestReduceMotionToggle(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)

	next, _ := m.Update(keyRune('m'))
	m = next.(Model)
	require.True(t, m.ReduceMotion())
	require.False(t, m.Animating(), "reduce motion overrides the animation request")

	next, _ = m.Update(keyRune('m'))
	m = next.(Model)
	require.False(t, m.ReduceMotion())
	require.True(t, m.Animating(), "motion restored resumes the requested animation")
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestPaletteOverrideReachesDetail(t *testing.T) {
	t.Parallel()

	palette := &config.Palette{Styles: map[string]config.StyleOverride{
		"pizza": {Primary: "#336699"},
	}}
	m := NewModel(palette)
	m.width, m.height = 100, 40

	require.NotEmpty(t, m.View())
}

func TestViewListsEveryStyle(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	view := m.View()
	for _, typ := range artwork.All() {
		require.Contains(t, view, typ.Style.String())
	}
	require.Contains(t, view, "food")
	require.Contains(t, view, "book")
}
