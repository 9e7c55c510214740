package artwork

// Layer builders for the food styles. Every size and offset is a fractional
// multiple of d (the artwork dimension), which keeps the output identical in
// shape at any render size. Accent lookups go through accentOr with a literal
// fallback chosen per call site to match the style's palette.

const (
	pizzaCrustBumps  = 6
	pizzaPepperoni   = 7
	whiteHighlight   = "#ffffff"
	vignetteInk      = "#000000"
	pepperoniFall    = "#b03a2e"
	herbFall         = "#3f7a3f"
	sauceFall        = "#c0392b"
	salmonFall       = "#fa8072"
	sesameFall       = "#fdf6d8"
	lettuceFall      = "#6fa85c"
	tomatoFall       = "#c23b22"
	shreddedCheese   = "#f3c14b"
)

// herbScatter is the irregular placement table for leafy toppings. Indexed
// modulo its length so any ornament count stays in bounds.
var herbScatter = []struct {
	off Offset
	rot float64
}{
	{Offset{-0.18, -0.09}, 20},
	{Offset{0.11, -0.21}, 115},
	{Offset{0.24, 0.08}, 65},
	{Offset{-0.06, 0.22}, 150},
	{Offset{0.02, -0.02}, 40},
	{Offset{-0.27, 0.12}, 95},
	{Offset{0.17, 0.25}, 10},
	{Offset{-0.12, -0.28}, 70},
}

func pizzaLayers(t Theme, d float64) Layers {
	var l Layers

	// Cheese disc fading into the baked rim.
	l.Background = append(l.Background, Element{
		Shape: KindCircle,
		Fill: Radial(
			Stop{0, t.Primary},
			Stop{0.78, t.Primary},
			Stop{1, t.Secondary},
		),
		Size:    Size{d, d},
		Opacity: 1,
	})
	l.Background = append(l.Background, Element{
		Shape:   KindCircle,
		Fill:    Solid(t.accentOr(2, hex(sauceFall))),
		Size:    Size{0.82 * d, 0.82 * d},
		Opacity: 0.35,
	})

	// Crust bumps: 6 at 60 degree spacing.
	for _, off := range ring(pizzaCrustBumps, 0.46*d, -90) {
		l.Decoration = append(l.Decoration, Element{
			Shape:   KindCircle,
			Fill:    Solid(t.Secondary),
			Size:    Size{0.15 * d, 0.15 * d},
			Offset:  off,
			Opacity: 0.9,
		})
	}

	// Pepperoni ring, alternating accent colors by index parity.
	for i, off := range ring(pizzaPepperoni, 0.26*d, -60) {
		color := t.accentOr(0, hex(pepperoniFall))
		if i%2 == 1 {
			color = t.accentOr(2, hex(sauceFall))
		}
		l.Decoration = append(l.Decoration, Element{
			Shape:   KindCircle,
			Fill:    Solid(color),
			Size:    Size{0.12 * d, 0.12 * d},
			Offset:  off,
			Opacity: 1,
		})
	}

	// Herb flecks from the scatter table.
	for i := 0; i < 8; i++ {
		entry := herbScatter[i%len(herbScatter)]
		l.Decoration = append(l.Decoration, Element{
			Shape:    KindEllipse,
			Fill:     Solid(t.accentOr(1, hex(herbFall))),
			Size:     Size{0.055 * d, 0.03 * d},
			Offset:   Offset{entry.off.X * d, entry.off.Y * d},
			Rotation: entry.rot,
			Opacity:  0.95,
		})
	}

	l.Overlay = append(l.Overlay, overlayRing(d)...)
	return l
}

func sushiLayers(t Theme, d float64) Layers {
	var l Layers

	// Maki cross-section: rice disc wrapped in nori.
	l.Background = append(l.Background, Element{
		Shape: KindCircle,
		Fill: Radial(
			Stop{0, t.Primary},
			Stop{0.92, t.Primary},
			Stop{1, t.Secondary},
		),
		Size:    Size{d, d},
		Opacity: 1,
	})

	// Nori band, then the inner rice ring it frames.
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindCircle,
		Fill:    Solid(t.Secondary),
		Stroke:  0.09 * d,
		Size:    Size{0.9 * d, 0.9 * d},
		Opacity: 1,
	})
	l.Decoration = append(l.Decoration, Element{
		Shape:   KindCircle,
		Fill:    Solid(t.accentOr(0, hex(salmonFall))),
		Size:    Size{0.4 * d, 0.34 * d},
		Opacity: 1,
	})

	// Sesame seeds on the rice.
	for i, off := range ring(6, 0.3*d, 10) {
		rot := float64(i%3) * 35
		l.Decoration = append(l.Decoration, Element{
			Shape:    KindEllipse,
			Fill:     Solid(t.accentOr(1, hex(sesameFall))),
			Size:     Size{0.045 * d, 0.028 * d},
			Offset:   off,
			Rotation: rot,
			Opacity:  0.9,
		})
	}

	l.Overlay = append(l.Overlay, overlayRing(d)...)
	return l
}

// fillingScatter places taco toppings irregularly across the upper half.
var fillingScatter = []struct {
	off Offset
	rot float64
}{
	{Offset{-0.22, -0.12}, 25},
	{Offset{-0.05, -0.2}, 140},
	{Offset{0.14, -0.14}, 75},
	{Offset{0.27, -0.02}, 170},
	{Offset{-0.3, 0.02}, 55},
	{Offset{0.04, -0.04}, 110},
	{Offset{0.2, -0.24}, 15},
	{Offset{-0.14, -0.27}, 85},
}

func tacoLayers(t Theme, d float64) Layers {
	var l Layers

	l.Background = append(l.Background, Element{
		Shape: KindCircle,
		Fill: Radial(
			Stop{0, t.Primary},
			Stop{0.7, t.Primary},
			Stop{1, t.Secondary},
		),
		Size:    Size{d, d},
		Opacity: 1,
	})

	// Lettuce bed.
	for i := 0; i < 8; i++ {
		entry := fillingScatter[i%len(fillingScatter)]
		l.Decoration = append(l.Decoration, Element{
			Shape:    KindEllipse,
			Fill:     Solid(t.accentOr(0, hex(lettuceFall))),
			Size:     Size{0.13 * d, 0.06 * d},
			Offset:   Offset{entry.off.X * d, entry.off.Y * d},
			Rotation: entry.rot,
			Opacity:  0.95,
		})
	}

	// Tomato dice.
	for _, off := range ring(5, 0.24*d, -72) {
		l.Decoration = append(l.Decoration, Element{
			Shape:   KindCircle,
			Fill:    Solid(t.accentOr(1, hex(tomatoFall))),
			Size:    Size{0.08 * d, 0.08 * d},
			Offset:  off,
			Opacity: 1,
		})
	}

	// Cheese shreds: thin rotated lines reusing the scatter table shifted
	// by half its length so they interleave with the lettuce.
	for i := 0; i < 6; i++ {
		entry := fillingScatter[(i+4)%len(fillingScatter)]
		l.Decoration = append(l.Decoration, Element{
			Shape:    KindLine,
			Fill:     Solid(t.accentOr(2, hex(shreddedCheese))),
			Size:     Size{0.16 * d, 0.016 * d},
			Offset:   Offset{entry.off.X * d, entry.off.Y*d + 0.06*d},
			Rotation: entry.rot + 30,
			Opacity:  1,
		})
	}

	l.Overlay = append(l.Overlay, overlayRing(d)...)
	return l
}

// overlayRing is the shared cosmetic pass for circular food artwork: a faint
// highlight ring plus a vignette wash. It must stay subtle enough not to
// obscure the decoration pass.
func overlayRing(d float64) []Element {
	return []Element{
		{
			Shape:   KindCircle,
			Fill:    Solid(hex(whiteHighlight)),
			Stroke:  0.012 * d,
			Size:    Size{0.97 * d, 0.97 * d},
			Opacity: 0.25,
			Blend:   BlendOverlay,
		},
		{
			Shape: KindCircle,
			Fill: Radial(
				Stop{0, hex(whiteHighlight)},
				Stop{0.8, hex(whiteHighlight)},
				Stop{1, hex(vignetteInk)},
			),
			Size:    Size{d, d},
			Opacity: 0.12,
			Blend:   BlendMultiply,
		},
	}
}
