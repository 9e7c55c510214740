package artwork

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, typ := range All() {
		theme1, cfg1 := Resolve(typ)
		theme2, cfg2 := Resolve(typ)
		require.Equal(t, theme1, theme2, "theme for %s must not vary between calls", typ)
		require.Equal(t, cfg1, cfg2, "configuration for %s must not vary between calls", typ)
	}
}

func TestResolveShapeDefaults(t *testing.T) {
	t.Parallel()

	t.Run("food styles are circular and square", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []Type{Pizza, Sushi, Taco} {
			_, cfg := Resolve(typ)
			require.Equal(t, ShapeCircle, cfg.Base, "%s", typ)
			require.Equal(t, 1.0, cfg.AspectRatio, "%s", typ)
			require.True(t, cfg.Valid())
		}
	})

	t.Run("book styles are portrait rounded rectangles", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []Type{Noir, Romance, Horror} {
			_, cfg := Resolve(typ)
			require.Equal(t, ShapeRoundedRect, cfg.Base, "%s", typ)
			require.Equal(t, 0.65, cfg.AspectRatio, "%s", typ)
			require.Less(t, cfg.AspectRatio, 1.0)
			require.Greater(t, cfg.CornerRadius, 0.0)
			require.True(t, cfg.Valid())
		}
	})
}

func TestResolvePizzaTheme(t *testing.T) {
	t.Parallel()

	theme, _ := Resolve(Pizza)
	require.Equal(t, hex("#f4c26b"), theme.Primary)
	require.Len(t, theme.Accents, 3)
}

func TestThemeAccentSafeIndexing(t *testing.T) {
	t.Parallel()

	theme, _ := Resolve(Noir)

	_, ok := theme.Accent(0)
	require.True(t, ok)

	_, ok = theme.Accent(len(theme.Accents))
	require.False(t, ok)

	_, ok = theme.Accent(-1)
	require.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full identifier", func(t *testing.T) {
		t.Parallel()
		typ, err := Parse("food/pizza")
		require.NoError(t, err)
		require.Equal(t, Pizza, typ)
	})

	t.Run("bare style name", func(t *testing.T) {
		t.Parallel()
		typ, err := Parse("noir")
		require.NoError(t, err)
		require.Equal(t, Noir, typ)
	})

	t.Run("round trips through String", func(t *testing.T) {
		t.Parallel()
		for _, typ := range All() {
			parsed, err := Parse(typ.String())
			require.NoError(t, err)
			require.Equal(t, typ, parsed)
		}
	})

	t.Run("rejects unknown identifiers", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("food/burger")
		require.Error(t, err)
	})
}
