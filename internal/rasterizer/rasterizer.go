// Package rasterizer consumes the artwork drawing-instruction tree and
// produces pixels. It is one of two interchangeable consumers of
// artwork.Layers (the other renders terminal cells); the engine itself never
// touches pixel data.
package rasterizer

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/arclabs/arcui/internal/artwork"
)

// Options bundles one rasterization request. Dimension is the artwork
// dimension (min of width/height); the canvas grows along the long axis
// according to the configuration's aspect ratio.
type Options struct {
	Layers    artwork.Layers
	Config    artwork.ShapeConfig
	Transform artwork.Transform
	Dimension int
	Shadow    colorful.Color
}

// RenderArtwork rasterizes an artwork type at its resolved theme and
// recommended configuration.
func RenderArtwork(t artwork.Type, dimension int, tr artwork.Transform) *image.RGBA {
	theme, cfg := artwork.Resolve(t)
	return Render(Options{
		Layers:    artwork.RenderLayers(t, float64(dimension)),
		Config:    cfg,
		Transform: tr,
		Dimension: dimension,
		Shadow:    theme.Shadow,
	})
}

// Render rasterizes layers into an RGBA image: elements composite in z-order,
// the result is clipped to the base shape and a drop shadow is laid
// underneath. Invalid geometry renders an empty image rather than failing.
func Render(opts Options) *image.RGBA {
	if opts.Dimension <= 0 || !opts.Config.Valid() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	d := float64(opts.Dimension)
	w, h := canvasSize(opts.Config.AspectRatio, opts.Dimension)

	content := newCanvas(w, h)
	cx, cy := float64(w)/2, float64(h)/2

	tr := opts.Transform
	if tr.Scale == 0 {
		tr = artwork.Rest()
	}

	for _, el := range opts.Layers.Background {
		content.paint(el, cx, cy, tr)
	}
	for _, el := range opts.Layers.Decoration {
		content.paint(el, cx, cy, tr)
	}
	for _, el := range opts.Layers.Overlay {
		content.paint(el, cx, cy, tr)
	}
	if tr.Shimmer >= 0 {
		content.paint(shimmerBand(d, float64(w), float64(h), tr.Shimmer), cx, cy, artwork.Rest())
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	compose(out, content, opts, cx, cy)
	return out
}

// canvasSize derives pixel bounds from the aspect ratio, keeping the short
// side equal to the artwork dimension.
func canvasSize(aspect float64, dim int) (int, int) {
	if aspect <= 1 {
		return dim, int(math.Round(float64(dim) / aspect))
	}
	return int(math.Round(float64(dim) * aspect)), dim
}

// shimmerBand is the synthetic highlight element injected for shimmer frames.
// It travels across the full width (with overshoot so the band fully enters
// and exits) using the normalized band position.
func shimmerBand(d, w, h, pos float64) artwork.Element {
	travel := w * 1.6
	x := -0.8*w + pos*travel
	return artwork.Element{
		Shape:    artwork.KindRect,
		Fill:     artwork.Solid(white()),
		Size:     artwork.Size{W: 0.22 * d, H: 2.2 * h},
		Offset:   artwork.Offset{X: x, Y: 0},
		Rotation: 18,
		Opacity:  0.35,
		Blend:    artwork.BlendOverlay,
	}
}

func white() colorful.Color {
	return colorful.Color{R: 1, G: 1, B: 1}
}

// canvas is a float RGBA working buffer, straight alpha.
type canvas struct {
	w, h int
	pix  []float64 // r,g,b,a per pixel
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]float64, w*h*4)}
}

// paint composites one element onto the canvas. The animation transform is
// applied in instruction space: offsets rotate and scale around the canvas
// center, so the whole composition spins or pulses as a unit.
func (c *canvas) paint(el artwork.Element, cx, cy float64, tr artwork.Transform) {
	if el.Opacity <= 0 || el.Size.W <= 0 || el.Size.H <= 0 {
		return
	}

	scale := tr.Scale
	opacity := el.Opacity * tr.Opacity
	if opacity <= 0 {
		return
	}

	// Element center after the frame transform.
	off := rotatePoint(el.Offset.X, el.Offset.Y, tr.Rotation)
	ex := cx + off.X*scale
	ey := cy + off.Y*scale
	rot := el.Rotation + tr.Rotation
	sw := el.Size.W * scale
	sh := el.Size.H * scale

	// Edge softness: one pixel of antialiasing widened by blur.
	soft := 1.0 + el.Blur

	reach := math.Hypot(sw, sh)/2 + soft + el.Stroke
	x0 := clampInt(int(ex-reach), 0, c.w)
	x1 := clampInt(int(ex+reach)+1, 0, c.w)
	y0 := clampInt(int(ey-reach), 0, c.h)
	y1 := clampInt(int(ey+reach)+1, 0, c.h)

	sinR, cosR := math.Sincos(rad(-rot))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Pixel center in element-local, unrotated space.
			dx := float64(x) + 0.5 - ex
			dy := float64(y) + 0.5 - ey
			lx := dx*cosR - dy*sinR
			ly := dx*sinR + dy*cosR

			sd := signedDistance(el.Shape, sw, sh, lx, ly)
			if el.Stroke > 0 {
				sd = math.Abs(sd) - el.Stroke/2
			}
			coverage := clamp01(0.5 - sd/soft)
			if coverage <= 0 {
				continue
			}

			col := fillAt(el.Fill, sw, sh, lx, ly)
			c.blend(x, y, col, coverage*opacity, el.Blend)
		}
	}
}

func (c *canvas) blend(x, y int, src colorful.Color, alpha float64, mode artwork.BlendMode) {
	i := (y*c.w + x) * 4
	dr, dg, db, da := c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3]

	sr, sg, sb := src.R, src.G, src.B
	switch mode {
	case artwork.BlendMultiply:
		sr, sg, sb = sr*dr, sg*dg, sb*db
	case artwork.BlendOverlay:
		sr = overlayChannel(dr, sr)
		sg = overlayChannel(dg, sg)
		sb = overlayChannel(db, sb)
	}

	c.pix[i] = sr*alpha + dr*(1-alpha)
	c.pix[i+1] = sg*alpha + dg*(1-alpha)
	c.pix[i+2] = sb*alpha + db*(1-alpha)
	c.pix[i+3] = alpha + da*(1-alpha)
}

func overlayChannel(base, blend float64) float64 {
	if base < 0.5 {
		return 2 * base * blend
	}
	return 1 - 2*(1-base)*(1-blend)
}

// compose clips the content canvas to the base shape, lays the drop shadow
// underneath and writes the result into the output image.
func compose(out *image.RGBA, content *canvas, opts Options, cx, cy float64) {
	d := float64(opts.Dimension)
	w, h := content.w, content.h

	shadowSoft := math.Max(1, opts.Config.ShadowRadius*d)
	shadowDX := opts.Config.ShadowOffset.X * d
	shadowDY := opts.Config.ShadowOffset.Y * d
	hasShadow := opts.Config.ShadowRadius > 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5

			clip := clamp01(0.5 - clipDistance(opts.Config, d, float64(w), float64(h), px-cx, py-cy))

			var r, g, b, a float64
			if hasShadow {
				sd := clipDistance(opts.Config, d, float64(w), float64(h), px-cx-shadowDX, py-cy-shadowDY)
				sa := clamp01(0.5-sd/shadowSoft) * 0.55
				if sa > 0 {
					r, g, b = opts.Shadow.R*sa, opts.Shadow.G*sa, opts.Shadow.B*sa
					a = sa
				}
			}

			if clip > 0 {
				i := (y*w + x) * 4
				ca := content.pix[i+3] * clip
				cr := content.pix[i] * ca
				cg := content.pix[i+1] * ca
				cb := content.pix[i+2] * ca
				r = cr + r*(1-ca)
				g = cg + g*(1-ca)
				b = cb + b*(1-ca)
				a = ca + a*(1-ca)
			}

			if a <= 0 {
				continue
			}
			// color.RGBA is alpha-premultiplied, which is what the
			// compositing above accumulates.
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp01(r) * 255),
				G: uint8(clamp01(g) * 255),
				B: uint8(clamp01(b) * 255),
				A: uint8(clamp01(a) * 255),
			})
		}
	}
}

// clipDistance is the signed distance from a point (relative to the canvas
// center) to the container clip shape boundary.
func clipDistance(cfg artwork.ShapeConfig, d, w, h, x, y float64) float64 {
	switch cfg.Base {
	case artwork.ShapeCircle:
		return math.Hypot(x, y) - d/2
	case artwork.ShapeCapsule:
		return roundedRectDistance(x, y, w/2, h/2, math.Min(w, h)/2)
	default:
		return roundedRectDistance(x, y, w/2, h/2, cfg.CornerRadius*d)
	}
}

// signedDistance evaluates an element shape centered at the origin.
func signedDistance(kind artwork.ShapeKind, w, h, x, y float64) float64 {
	switch kind {
	case artwork.KindCircle:
		return math.Hypot(x, y) - w/2
	case artwork.KindEllipse:
		// Scaled-space approximation, adequate for small ornaments.
		return (math.Hypot(x/(w/2), y/(h/2)) - 1) * math.Min(w, h) / 2
	case artwork.KindCapsule:
		return roundedRectDistance(x, y, w/2, h/2, math.Min(w, h)/2)
	case artwork.KindLine:
		return roundedRectDistance(x, y, w/2, h/2, h/2)
	default:
		return roundedRectDistance(x, y, w/2, h/2, 0)
	}
}

func roundedRectDistance(x, y, hw, hh, r float64) float64 {
	r = math.Min(r, math.Min(hw, hh))
	qx := math.Abs(x) - hw + r
	qy := math.Abs(y) - hh + r
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - r
}

// fillAt evaluates an element's paint at a local point.
func fillAt(f artwork.Fill, w, h, x, y float64) colorful.Color {
	switch f.Kind {
	case artwork.FillLinear:
		sinA, cosA := math.Sincos(rad(f.Angle))
		support := math.Abs(w*cosA) + math.Abs(h*sinA)
		if support <= 0 {
			return f.At(0)
		}
		return f.At((x*cosA+y*sinA)/support + 0.5)
	case artwork.FillRadial:
		return f.At(math.Hypot(x/(w/2), y/(h/2)))
	default:
		return f.Color
	}
}

func rotatePoint(x, y, deg float64) artwork.Offset {
	if deg == 0 {
		return artwork.Offset{X: x, Y: y}
	}
	s, c := math.Sincos(rad(deg))
	return artwork.Offset{X: x*c - y*s, Y: x*s + y*c}
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
