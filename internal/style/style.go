// Package style defines the fixed visual presets applied to title, heading,
// and body blocks.
package style

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidStyle is returned when a preset has an out-of-range value.
var ErrInvalidStyle = errors.New("invalid style")

// DefaultFontFamily is the CSS font stack used by every preset.
const DefaultFontFamily = "Helvetica, Arial, sans-serif"

// Size bounds in points.
const (
	MinFontSize = 4.0
	MaxFontSize = 96.0
	MaxSpacing  = 144.0
)

// hexColorPattern matches #rgb and #rrggbb.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Style is one visual preset. Sizes are in points.
type Style struct {
	Name        string
	FontFamily  string
	FontSize    float64
	Leading     float64
	Color       string
	SpaceBefore float64
	SpaceAfter  float64
	Bold        bool
}

// Sheet groups the three presets and the spacer height.
type Sheet struct {
	Title        Style
	Heading      Style
	Body         Style
	SpacerHeight float64
}

// Default returns the built-in presets.
func Default() Sheet {
	return Sheet{
		Title: Style{
			Name:       "title",
			FontFamily: DefaultFontFamily,
			FontSize:   16,
			Leading:    22,
			Color:      "#1a1a1a",
			SpaceAfter: 12,
			Bold:       true,
		},
		Heading: Style{
			Name:        "heading",
			FontFamily:  DefaultFontFamily,
			FontSize:    14,
			Leading:     18,
			Color:       "#2c3e50",
			SpaceBefore: 12,
			SpaceAfter:  8,
			Bold:        true,
		},
		Body: Style{
			Name:       "body",
			FontFamily: DefaultFontFamily,
			FontSize:   11,
			Leading:    14,
			Color:      "#333333",
			SpaceAfter: 6,
		},
		SpacerHeight: 6,
	}
}

// Validate checks every preset and the spacer height.
func (s Sheet) Validate() error {
	for _, st := range []Style{s.Title, s.Heading, s.Body} {
		if err := st.Validate(); err != nil {
			return err
		}
	}
	if s.SpacerHeight < 0 || s.SpacerHeight > MaxSpacing {
		return fmt.Errorf("%w: spacer height %.1f (must be between 0 and %.0f)", ErrInvalidStyle, s.SpacerHeight, MaxSpacing)
	}
	return nil
}

// Validate checks font size, leading, spacing, and color.
func (s Style) Validate() error {
	if s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		return fmt.Errorf("%w: %s font size %.1f (must be between %.0f and %.0f)", ErrInvalidStyle, s.Name, s.FontSize, MinFontSize, MaxFontSize)
	}
	if s.Leading < s.FontSize {
		return fmt.Errorf("%w: %s leading %.1f is smaller than font size %.1f", ErrInvalidStyle, s.Name, s.Leading, s.FontSize)
	}
	if s.SpaceBefore < 0 || s.SpaceBefore > MaxSpacing || s.SpaceAfter < 0 || s.SpaceAfter > MaxSpacing {
		return fmt.Errorf("%w: %s spacing must be between 0 and %.0f", ErrInvalidStyle, s.Name, MaxSpacing)
	}
	if !hexColorPattern.MatchString(s.Color) {
		return fmt.Errorf("%w: %s color %q (must be #rgb or #rrggbb)", ErrInvalidStyle, s.Name, s.Color)
	}
	return nil
}

// Overrides holds optional replacements for a preset. Zero sizes, an empty
// color and nil spacings keep the default; spacing may be set to 0.
type Overrides struct {
	FontSize    float64
	Leading     float64
	Color       string
	SpaceBefore *float64
	SpaceAfter  *float64
}

// Apply returns a copy of s with the set overrides applied.
// When only the font size changes, leading keeps its ratio to the size.
func (s Style) Apply(o Overrides) Style {
	if o.FontSize > 0 {
		if o.Leading == 0 && s.FontSize > 0 {
			s.Leading = s.Leading * o.FontSize / s.FontSize
		}
		s.FontSize = o.FontSize
	}
	if o.Leading > 0 {
		s.Leading = o.Leading
	}
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.SpaceBefore != nil {
		s.SpaceBefore = *o.SpaceBefore
	}
	if o.SpaceAfter != nil {
		s.SpaceAfter = *o.SpaceAfter
	}
	return s
}
