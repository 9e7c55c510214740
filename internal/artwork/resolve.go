package artwork

// Resolve maps an artwork type to its theme and recommended container
// configuration. Pure and total: every style has an entry, and repeated calls
// return identical values. Callers may discard the recommended configuration
// and supply their own.
func Resolve(t Type) (Theme, ShapeConfig) {
	theme := themeFor(t.Style)

	switch t.Style {
	case StylePizza, StyleSushi, StyleTaco:
		return theme, circleConfig()
	case StyleNoir, StyleRomance, StyleHorror:
		return theme, coverConfig()
	default:
		return theme, circleConfig()
	}
}
