package artwork

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is the immutable color bundle for one artwork style.
//
// Accents is ordered and semantically positional: index 0/1/2 map to specific
// ornament roles per style (e.g. pepperoni/herb/sauce for pizza). It may be
// shorter than a layer builder expects; builders recover via Accent and a
// call-site fallback color.
type Theme struct {
	Primary    colorful.Color
	Secondary  colorful.Color
	Background colorful.Color
	Shadow     colorful.Color
	Accents    []colorful.Color
}

// Accent returns the accent color at index i, reporting whether it exists.
// Out-of-range indices are not an error; the caller substitutes its own
// style-specific fallback.
func (t Theme) Accent(i int) (colorful.Color, bool) {
	if i < 0 || i >= len(t.Accents) {
		return colorful.Color{}, false
	}
	return t.Accents[i], true
}

// accentOr is the safe-indexing helper used by layer builders.
func (t Theme) accentOr(i int, fallback colorful.Color) colorful.Color {
	if c, ok := t.Accent(i); ok {
		return c
	}
	return fallback
}

// hex parses a compile-time color literal. The theme tables below only use
// well-formed 7-character hex strings, so the error branch is unreachable in
// practice and collapses to black rather than panicking.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// themeFor returns the color table for a style. Exhaustive over Style.
func themeFor(s Style) Theme {
	switch s {
	case StylePizza:
		return Theme{
			Primary:    hex("#f4c26b"), // melted cheese
			Secondary:  hex("#c87f2f"), // baked crust
			Background: hex("#fdf3e3"),
			Shadow:     hex("#6b3f12"),
			Accents: []colorful.Color{
				hex("#b03a2e"), // pepperoni
				hex("#3f7a3f"), // herbs
				hex("#c0392b"), // sauce
			},
		}
	case StyleSushi:
		return Theme{
			Primary:    hex("#f7f3ec"), // rice
			Secondary:  hex("#1f2a24"), // nori
			Background: hex("#eef2ef"),
			Shadow:     hex("#22312a"),
			Accents: []colorful.Color{
				hex("#f98866"), // salmon
				hex("#fdf6d8"), // sesame
				hex("#7aa05c"), // wasabi
			},
		}
	case StyleTaco:
		return Theme{
			Primary:    hex("#f2c879"), // toasted shell
			Secondary:  hex("#cf9543"),
			Background: hex("#fbf0dc"),
			Shadow:     hex("#7a4a18"),
			Accents: []colorful.Color{
				hex("#6fa85c"), // lettuce
				hex("#c23b22"), // tomato
				hex("#f3c14b"), // cheese
			},
		}
	case StyleNoir:
		return Theme{
			Primary:    hex("#15171c"),
			Secondary:  hex("#2c313c"),
			Background: hex("#0c0d10"),
			Shadow:     hex("#000000"),
			Accents: []colorful.Color{
				hex("#d8d8d8"), // title lettering
				hex("#f5e050"), // street lamp
			},
		}
	case StyleRomance:
		return Theme{
			Primary:    hex("#f6c8d8"),
			Secondary:  hex("#e291b7"),
			Background: hex("#fdf0f5"),
			Shadow:     hex("#8f4a66"),
			Accents: []colorful.Color{
				hex("#e75480"), // hearts
				hex("#fff2f7"), // glow
				hex("#b23a67"), // script title
			},
		}
	case StyleHorror:
		return Theme{
			Primary:    hex("#1a0d0d"),
			Secondary:  hex("#3d0f0f"),
			Background: hex("#0d0707"),
			Shadow:     hex("#000000"),
			Accents: []colorful.Color{
				hex("#8a0303"), // blood
				hex("#bfbfbf"), // moon
			},
		}
	default:
		return Theme{}
	}
}
