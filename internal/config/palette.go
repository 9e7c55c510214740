// Package config loads palette override files for the CLI. The artwork
// engine itself is configured purely through in-memory parameters; files are
// a host concern layered on top.
package config

import (
	"fmt"
	"os"
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/arclabs/arcui/internal/artwork"
	arcerrors "github.com/arclabs/arcui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Palette holds per-style color overrides keyed by style name ("pizza") or
// full identifier ("food/pizza").
type Palette struct {
	Styles map[string]StyleOverride `yaml:"styles" validate:"required,dive"`
}

// StyleOverride replaces selected theme colors. Empty fields keep the
// resolved default; a non-empty Accents list replaces the whole accent set.
type StyleOverride struct {
	Primary    string   `yaml:"primary" validate:"omitempty,hexcolor"`
	Secondary  string   `yaml:"secondary" validate:"omitempty,hexcolor"`
	Background string   `yaml:"background" validate:"omitempty,hexcolor"`
	Shadow     string   `yaml:"shadow" validate:"omitempty,hexcolor"`
	Accents    []string `yaml:"accents" validate:"omitempty,dive,hexcolor"`
}

// LoadPalette reads a palette file from disk, validates it, and returns the
// resulting model.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, arcerrors.NewParseError(path, 0, err)
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, arcerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidatePalette(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// ValidatePalette performs structural validation: hex color fields and known
// style keys.
func ValidatePalette(p *Palette) error {
	if p == nil {
		return arcerrors.NewValidationError("palette", "palette is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(p); err != nil {
		return convertValidationError(err)
	}

	for key := range p.Styles {
		if _, err := artwork.Parse(key); err != nil {
			return arcerrors.NewValidationError("styles", fmt.Sprintf("unknown style %q", key), err)
		}
	}

	return nil
}

// Apply returns the theme with this palette's overrides for the given type
// applied. Missing entries leave the theme untouched.
func (p *Palette) Apply(t artwork.Type, theme artwork.Theme) artwork.Theme {
	if p == nil {
		return theme
	}

	override, ok := p.Styles[t.String()]
	if !ok {
		override, ok = p.Styles[t.Style.String()]
	}
	if !ok {
		return theme
	}

	apply := func(dst *colorful.Color, hex string) {
		if hex == "" {
			return
		}
		if c, err := colorful.Hex(hex); err == nil {
			*dst = c
		}
	}

	apply(&theme.Primary, override.Primary)
	apply(&theme.Secondary, override.Secondary)
	apply(&theme.Background, override.Background)
	apply(&theme.Shadow, override.Shadow)

	if len(override.Accents) > 0 {
		accents := make([]colorful.Color, 0, len(override.Accents))
		for _, hex := range override.Accents {
			if c, err := colorful.Hex(hex); err == nil {
				accents = append(accents, c)
			}
		}
		theme.Accents = accents
	}

	return theme
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
