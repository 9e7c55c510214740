package artwork

// BaseShape enumerates supported clip shapes for an artwork container.
type BaseShape int

const (
	ShapeCircle BaseShape = iota
	ShapeRoundedRect
	ShapeCapsule
)

func (b BaseShape) String() string {
	switch b {
	case ShapeCircle:
		return "circle"
	case ShapeRoundedRect:
		return "rounded-rect"
	case ShapeCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// ShapeConfig describes the artwork container: clip shape, proportions and
// drop shadow. All scalar fields are fractions of the artwork dimension so a
// configuration is valid at any render size.
//
// CornerRadius belongs to the clip shape and is independent of any nested
// framing a style draws inside it (e.g. a book spine inset).
type ShapeConfig struct {
	Base         BaseShape
	AspectRatio  float64 // width / height, > 0
	CornerRadius float64
	ShadowRadius float64
	ShadowOffset Offset
}

// Valid reports whether the configuration satisfies its invariants.
func (c ShapeConfig) Valid() bool {
	return c.AspectRatio > 0 && c.ShadowRadius >= 0
}

const bookAspect = 0.65 // paperback proportions

// circleConfig is the recommended container for food styles.
func circleConfig() ShapeConfig {
	return ShapeConfig{
		Base:         ShapeCircle,
		AspectRatio:  1.0,
		ShadowRadius: 0.06,
		ShadowOffset: Offset{X: 0, Y: 0.03},
	}
}

// coverConfig is the recommended container for book styles.
func coverConfig() ShapeConfig {
	return ShapeConfig{
		Base:         ShapeRoundedRect,
		AspectRatio:  bookAspect,
		CornerRadius: 0.05,
		ShadowRadius: 0.08,
		ShadowOffset: Offset{X: 0.02, Y: 0.04},
	}
}
