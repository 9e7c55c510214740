package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclabs/arcui/internal/artwork"
	arcerrors "github.com/arclabs/arcui/pkg/errors"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPaletteValidFile(t *testing.T) {
	t.Parallel()

	path := writePalette(t, `
styles:
  pizza:
    primary: "#ff0000"
    accents: ["#00ff00", "#0000ff"]
  book/noir:
    secondary: "#222233"
`)

	p, err := LoadPalette(path)
	require.NoError(t, err)
	require.Len(t, p.Styles, 2)
}

func TestLoadPaletteMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadPalette(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *arcerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadPaletteRejectsBadHex(t *testing.T) {
	t.Parallel()

	path := writePalette(t, `
styles:
  pizza:
    primary: "red"
`)

	_, err := LoadPalette(path)

	var validationErr *arcerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "primary")
}

func TestLoadPaletteRejectsUnknownStyle(t *testing.T) {
	t.Parallel()

	path := writePalette(t, `
styles:
  burger:
    primary: "#ffffff"
`)

	_, err := LoadPalette(path)

	var validationErr *arcerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadPaletteRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writePalette(t, "styles:\n  pizza: [\n")

	_, err := LoadPalette(path)

	var parseErr *arcerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestPaletteApply(t *testing.T) {
	t.Parallel()

	p := &Palette{Styles: map[string]StyleOverride{
		"pizza": {
			Primary: "#102030",
			Accents: []string{"#aabbcc"},
		},
	}}

	theme, _ := artwork.Resolve(artwork.Pizza)
	overridden := p.Apply(artwork.Pizza, theme)

	require.InDelta(t, 0x10/255.0, overridden.Primary.R, 1e-9)
	require.Equal(t, theme.Secondary, overridden.Secondary, "unset fields keep defaults")
	require.Len(t, overridden.Accents, 1)

	t.Run("full identifier key wins", func(t *testing.T) {
		t.Parallel()
		p2 := &Palette{Styles: map[string]StyleOverride{
			"food/pizza": {Primary: "#ffffff"},
		}}
		got := p2.Apply(artwork.Pizza, theme)
		require.InDelta(t, 1.0, got.Primary.R, 1e-9)
	})

	t.Run("other styles untouched", func(t *testing.T) {
		t.Parallel()
		noir, _ := artwork.Resolve(artwork.Noir)
		require.Equal(t, noir, p.Apply(artwork.Noir, noir))
	})

	t.Run("nil palette is identity", func(t *testing.T) {
		t.Parallel()
		var none *Palette
		require.Equal(t, theme, none.Apply(artwork.Pizza, theme))
	})
}
