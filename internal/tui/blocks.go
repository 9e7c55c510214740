// Package tui hosts artwork inside bubbletea programs: it renders raster
// output as terminal cells and owns the animation tick loop.
package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// alphaFloor is the premultiplied alpha below which a pixel reads as
// transparent terminal background.
const alphaFloor = 0x2000

// BlocksView converts an image into half-block terminal cells: every text row
// carries two pixel rows, the upper as foreground and the lower as
// background. Fully transparent cell halves fall through to the terminal.
func BlocksView(img image.Image) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return ""
	}

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top, topOK := cellColor(img, bounds.Min.X+x, bounds.Min.Y+y)
			bottom, bottomOK := "", false
			if y+1 < h {
				bottom, bottomOK = cellColor(img, bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case !topOK && !bottomOK:
				sb.WriteByte(' ')
			case topOK && bottomOK:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom)).
					Render(halfBlock))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Render(halfBlock))
			default:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(bottom)).
					Render("▄"))
			}
		}
	}
	return sb.String()
}

// cellColor samples one pixel as a hex color, reporting whether it is opaque
// enough to draw.
func cellColor(img image.Image, x, y int) (string, bool) {
	r, g, b, a := img.At(x, y).RGBA()
	if a < alphaFloor {
		return "", false
	}
	// Un-premultiply so dim edge pixels keep their hue.
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8), true
}
