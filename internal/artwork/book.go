package artwork

// Layer builders for the book styles. Covers are portrait: width equals the
// artwork dimension d and height is d / bookAspect, so vertical constants run
// past the ±0.5d range that circular styles use.

const (
	noirLetterFall   = "#d8d8d8"
	lampFall         = "#f5e050"
	heartFall        = "#e75480"
	glowFall         = "#fff2f7"
	scriptFall       = "#b23a67"
	bloodFall        = "#8a0303"
	moonFall         = "#bfbfbf"
	spineInset       = 0.08
	coverBorderAlpha = 0.2
)

// coverBase paints the full cover rectangle with a vertical gradient and the
// spine band that frames it. The spine is nested framing, deliberately
// independent of the container's own corner radius.
func coverBase(t Theme, d, h float64) []Element {
	return []Element{
		{
			Shape: KindRect,
			Fill: Linear(90,
				Stop{0, t.Secondary},
				Stop{1, t.Primary},
			),
			Size:    Size{d, h},
			Opacity: 1,
		},
		{
			Shape:   KindRect,
			Fill:    Solid(t.Secondary),
			Size:    Size{spineInset * d, h},
			Offset:  Offset{X: -d/2 + spineInset*d/2},
			Opacity: 0.85,
		},
	}
}

// coverOverlay is the shared cosmetic pass for covers: a faint border and a
// multiply vignette.
func coverOverlay(t Theme, d, h float64) []Element {
	return []Element{
		{
			Shape:   KindRect,
			Fill:    Solid(hex(whiteHighlight)),
			Stroke:  0.01 * d,
			Size:    Size{0.96 * d, 0.97 * h},
			Opacity: coverBorderAlpha,
			Blend:   BlendOverlay,
		},
		{
			Shape: KindRect,
			Fill: Radial(
				Stop{0, hex(whiteHighlight)},
				Stop{0.75, hex(whiteHighlight)},
				Stop{1, hex(vignetteInk)},
			),
			Size:    Size{d, h},
			Opacity: 0.18,
			Blend:   BlendMultiply,
		},
	}
}

func noirLayers(t Theme, d float64) Layers {
	h := d / bookAspect
	var l Layers

	l.Background = coverBase(t, d, h)

	// Title bars: horizontal lines in the upper third.
	for i := 0; i < 3; i++ {
		width := (0.52 - 0.1*float64(i)) * d
		l.Decoration = append(l.Decoration, Element{
			Shape:   KindLine,
			Fill:    Solid(t.accentOr(0, hex(noirLetterFall))),
			Size:    Size{width, 0.025 * d},
			Offset:  Offset{X: 0.04 * d, Y: -0.52*h + float64(i)*0.07*d},
			Opacity: 0.9,
		})
	}

	// Street lamp: one blurred accent glow low on the cover.
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindCircle,
		Fill:    Solid(t.accentOr(1, hex(lampFall))),
		Size:    Size{0.3 * d, 0.3 * d},
		Offset:  Offset{X: 0.18 * d, Y: 0.3 * h},
		Blur:    0.08 * d,
		Opacity: 0.8,
	})

	// Silhouette under the lamp.
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindCapsule,
		Fill:    Solid(t.Shadow),
		Size:    Size{0.1 * d, 0.28 * d},
		Offset:  Offset{X: 0.1 * d, Y: 0.36 * h},
		Opacity: 0.9,
	})

	l.Overlay = coverOverlay(t, d, h)
	return l
}

// heartScatter places hearts across the cover; reused modulo length.
var heartScatter = []struct {
	off   Offset // fractions of (d, h)
	scale float64
	rot   float64
}{
	{Offset{-0.22, -0.3}, 1.0, -15},
	{Offset{0.18, -0.18}, 0.7, 10},
	{Offset{0.28, 0.12}, 0.9, -8},
	{Offset{-0.1, 0.05}, 0.6, 20},
	{Offset{-0.28, 0.3}, 0.8, -18},
	{Offset{0.08, 0.38}, 0.65, 12},
}

func romanceLayers(t Theme, d float64) Layers {
	h := d / bookAspect
	var l Layers

	l.Background = coverBase(t, d, h)

	// Soft center glow behind the hearts.
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindEllipse,
		Fill:    Solid(t.accentOr(1, hex(glowFall))),
		Size:    Size{0.7 * d, 0.5 * d},
		Offset:  Offset{Y: -0.1 * h},
		Blur:    0.1 * d,
		Opacity: 0.5,
	})

	// Hearts approximated as rotated capsule pairs.
	for i := 0; i < 6; i++ {
		entry := heartScatter[i%len(heartScatter)]
		size := 0.12 * d * entry.scale
		center := Offset{X: entry.off.X * d, Y: entry.off.Y * h}
		color := t.accentOr(0, hex(heartFall))
		if i%2 == 1 {
			color = t.accentOr(2, hex(scriptFall))
		}
		for _, lean := range []float64{-32, 32} {
			l.Decoration = append(l.Decoration, Element{
				Shape:    KindCapsule,
				Fill:     Solid(color),
				Size:     Size{0.55 * size, size},
				Offset:   center,
				Rotation: entry.rot + lean,
				Opacity:  0.95,
			})
		}
	}

	// Script title band near the bottom.
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindLine,
		Fill:    Solid(t.accentOr(2, hex(scriptFall))),
		Size:    Size{0.46 * d, 0.02 * d},
		Offset:  Offset{X: 0.04 * d, Y: 0.58 * h},
		Opacity: 0.85,
	})

	l.Overlay = coverOverlay(t, d, h)
	return l
}

// dripTable gives x positions (fraction of d) and lengths (fraction of h)
// for blood drips hanging from the top edge.
var dripTable = []struct {
	x      float64
	length float64
}{
	{-0.3, 0.22},
	{-0.12, 0.34},
	{0.02, 0.16},
	{0.18, 0.4},
	{0.33, 0.26},
}

func horrorLayers(t Theme, d float64) Layers {
	h := d / bookAspect
	var l Layers

	l.Background = coverBase(t, d, h)

	// Moon glow upper right.
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindCircle,
		Fill:    Solid(t.accentOr(1, hex(moonFall))),
		Size:    Size{0.26 * d, 0.26 * d},
		Offset:  Offset{X: 0.24 * d, Y: -0.46 * h},
		Blur:    0.06 * d,
		Opacity: 0.7,
	})

	// Blood drips from the top edge.
	for i := 0; i < len(dripTable); i++ {
		entry := dripTable[i%len(dripTable)]
		length := entry.length * h
		l.Decoration = append(l.Decoration, Element{
			Shape:   KindCapsule,
			Fill:    Solid(t.accentOr(0, hex(bloodFall))),
			Size:    Size{0.035 * d, length},
			Offset:  Offset{X: entry.x * d, Y: -h/2 + length/2},
			Opacity: 0.95,
		})
	}

	// Splatter dots echo the drip x positions, shifted down.
	for i := 0; i < 4; i++ {
		entry := dripTable[(i+2)%len(dripTable)]
		l.Decoration = append(l.Decoration, Element{
			Shape:   KindCircle,
			Fill:    Solid(t.accentOr(0, hex(bloodFall))),
			Size:    Size{0.05 * d, 0.05 * d},
			Offset:  Offset{X: entry.x*d + 0.04*d, Y: (entry.length - 0.44) * h},
			Opacity: 0.9,
		})
	}

	l.Overlay = coverOverlay(t, d, h)
	return l
}
