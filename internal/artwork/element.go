package artwork

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Offset is a displacement from the artwork center, in dimension units.
type Offset struct {
	X float64
	Y float64
}

// Size is a width/height pair in dimension units.
type Size struct {
	W float64
	H float64
}

// ShapeKind enumerates the primitive shapes an element can take.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindEllipse
	KindRect
	KindCapsule
	KindLine
)

// BlendMode controls how an element composites over the pixels below it.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendOverlay
	BlendMultiply
)

// FillKind selects the paint applied inside an element's shape.
type FillKind int

const (
	FillSolid FillKind = iota
	FillLinear
	FillRadial
)

// Stop is one gradient color stop at a normalized position in [0,1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Fill describes an element's paint. Gradient geometry is normalized to the
// element's own bounds so fills scale with the element.
type Fill struct {
	Kind  FillKind
	Color colorful.Color // FillSolid
	Stops []Stop         // FillLinear, FillRadial; ordered by Pos
	Angle float64        // FillLinear: travel direction in degrees, 0 = left to right
}

// Solid returns a solid-color fill.
func Solid(c colorful.Color) Fill {
	return Fill{Kind: FillSolid, Color: c}
}

// Linear returns a linear gradient fill travelling along the given angle.
func Linear(angle float64, stops ...Stop) Fill {
	return Fill{Kind: FillLinear, Angle: angle, Stops: stops}
}

// Radial returns a radial gradient fill centered on the element.
func Radial(stops ...Stop) Fill {
	return Fill{Kind: FillRadial, Stops: stops}
}

// At evaluates the fill at a normalized position in [0,1] along the gradient
// axis. Solid fills ignore the position.
func (f Fill) At(pos float64) colorful.Color {
	if f.Kind == FillSolid || len(f.Stops) == 0 {
		return f.Color
	}
	if pos <= f.Stops[0].Pos {
		return f.Stops[0].Color
	}
	last := f.Stops[len(f.Stops)-1]
	if pos >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(f.Stops); i++ {
		lo, hi := f.Stops[i-1], f.Stops[i]
		if pos <= hi.Pos {
			span := hi.Pos - lo.Pos
			if span <= 0 {
				return hi.Color
			}
			return lo.Color.BlendRgb(hi.Color, (pos-lo.Pos)/span)
		}
	}
	return last.Color
}

// Element is a single drawing instruction: one shape with paint, placement
// and compositing attributes. Geometry is in absolute dimension units; the
// layer builders scale fractional constants by the artwork dimension before
// constructing elements. Elements are never mutated after construction.
type Element struct {
	Shape    ShapeKind
	Fill     Fill
	Stroke   float64 // >0 renders the outline only, with this width
	Size     Size
	Offset   Offset
	Rotation float64 // degrees, clockwise
	Blur     float64 // gaussian-ish blur radius, >= 0
	Opacity  float64 // 0..1
	Blend    BlendMode
}

// Layers holds the three stacked passes of one artwork. Z-order is fixed:
// background below decoration below overlay. Within a pass, elements draw in
// index order; later elements may occlude earlier ones, and dense ornament
// layouts rely on that.
type Layers struct {
	Background []Element
	Decoration []Element
	Overlay    []Element
}

// Empty reports whether no pass contains any element.
func (l Layers) Empty() bool {
	return len(l.Background) == 0 && len(l.Decoration) == 0 && len(l.Overlay) == 0
}

// ring places count offsets evenly around a circle of the given radius,
// starting at startDeg and proceeding clockwise. Used for topping rings and
// crust bumps: count N yields 360/N degree spacing.
func ring(count int, radius, startDeg float64) []Offset {
	offsets := make([]Offset, 0, count)
	for i := 0; i < count; i++ {
		a := rad(startDeg + float64(i)*360.0/float64(count))
		offsets = append(offsets, Offset{X: radius * cos(a), Y: radius * sin(a)})
	}
	return offsets
}
