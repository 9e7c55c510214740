package artwork

import (
	"math"
)

// RenderLayers produces the three visual passes for an artwork type at the
// given dimension, using the style's resolved theme. Pure: identical inputs
// yield identical layers, and all geometry scales as fractions of dimension.
//
// A non-positive dimension renders nothing; every downstream constant is
// multiplicative and would otherwise collapse to degenerate shapes.
func RenderLayers(t Type, dimension float64) Layers {
	theme, _ := Resolve(t)
	return RenderLayersWith(t, theme, dimension)
}

// RenderLayersWith renders with an explicit theme, which may carry fewer
// accent colors than the style's builder expects; builders substitute their
// own literal fallbacks instead of failing.
func RenderLayersWith(t Type, theme Theme, dimension float64) Layers {
	if dimension <= 0 {
		return Layers{}
	}

	switch t.Style {
	case StylePizza:
		return pizzaLayers(theme, dimension)
	case StyleSushi:
		return sushiLayers(theme, dimension)
	case StyleTaco:
		return tacoLayers(theme, dimension)
	case StyleNoir:
		return noirLayers(theme, dimension)
	case StyleRomance:
		return romanceLayers(theme, dimension)
	case StyleHorror:
		return horrorLayers(theme, dimension)
	default:
		return Layers{}
	}
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func cos(a float64) float64 { return math.Cos(a) }

func sin(a float64) float64 { return math.Sin(a) }
