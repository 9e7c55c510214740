package artwork

import (
	"fmt"
	"strings"
)

// Category groups artwork styles into thematic families.
type Category int

const (
	CategoryFood Category = iota
	CategoryBook
)

func (c Category) String() string {
	switch c {
	case CategoryFood:
		return "food"
	case CategoryBook:
		return "book"
	default:
		return "unknown"
	}
}

// Style identifies one concrete artwork rendering. The set is closed:
// adding a style is a compile-time obligation to extend every exhaustive
// switch over it (theme table, shape defaults, layer builders).
type Style int

const (
	StylePizza Style = iota
	StyleSushi
	StyleTaco
	StyleNoir
	StyleRomance
	StyleHorror
)

func (s Style) String() string {
	switch s {
	case StylePizza:
		return "pizza"
	case StyleSushi:
		return "sushi"
	case StyleTaco:
		return "taco"
	case StyleNoir:
		return "noir"
	case StyleRomance:
		return "romance"
	case StyleHorror:
		return "horror"
	default:
		return "unknown"
	}
}

// Category returns the family a style belongs to.
func (s Style) Category() Category {
	switch s {
	case StylePizza, StyleSushi, StyleTaco:
		return CategoryFood
	case StyleNoir, StyleRomance, StyleHorror:
		return CategoryBook
	default:
		return CategoryFood
	}
}

// Type is the two-level artwork identifier. Equality is structural.
type Type struct {
	Category Category
	Style    Style
}

func (t Type) String() string {
	return t.Category.String() + "/" + t.Style.String()
}

// Predefined artwork types, one per style.
var (
	Pizza   = Type{CategoryFood, StylePizza}
	Sushi   = Type{CategoryFood, StyleSushi}
	Taco    = Type{CategoryFood, StyleTaco}
	Noir    = Type{CategoryBook, StyleNoir}
	Romance = Type{CategoryBook, StyleRomance}
	Horror  = Type{CategoryBook, StyleHorror}
)

// All returns every artwork type in stable display order.
func All() []Type {
	return []Type{Pizza, Sushi, Taco, Noir, Romance, Horror}
}

// Parse converts a "category/style" identifier (e.g. "food/pizza") into a Type.
func Parse(s string) (Type, error) {
	for _, t := range All() {
		if strings.EqualFold(s, t.String()) || strings.EqualFold(s, t.Style.String()) {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("unknown artwork type %q", s)
}
