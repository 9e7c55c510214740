package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlocksViewEmptyImage(t *testing.T) {
	t.Parallel()

	require.Empty(t, BlocksView(image.NewRGBA(image.Rect(0, 0, 0, 0))))
}

func TestBlocksViewPacksTwoPixelRowsPerLine(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	view := BlocksView(img)
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, 4, strings.Count(line, halfBlock))
	}
}

func TestBlocksViewOddHeightKeepsLastRow(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: 255, A: 255})
		img.SetRGBA(1, y, color.RGBA{R: 255, A: 255})
	}

	lines := strings.Split(BlocksView(img), "\n")
	require.Len(t, lines, 2)
}

func TestBlocksViewTransparentFallsThrough(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))

	view := BlocksView(img)
	require.Equal(t, "   ", view)
}

func TestBlocksViewBottomOnlyUsesLowerHalfBlock(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 1, color.RGBA{G: 255, A: 255})

	require.Contains(t, BlocksView(img), "▄")
}

func TestCellColorUnpremultiplies(t *testing.T) {
	t.Parallel()

	// Half-transparent pure red, premultiplied.
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 128, A: 128})

	hex, ok := cellColor(img, 0, 0)
	require.True(t, ok)
	require.Equal(t, "#ff0000", hex)
}
