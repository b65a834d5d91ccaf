package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-txt2pdf/internal/fileutil"
	"github.com/alnah/go-txt2pdf/internal/style"
	"github.com/alnah/go-txt2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under the user config dir.
const AppDirName = "go-txt2pdf"

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
	MaxOrientationLength = 10 // "portrait", "landscape"
	MaxModeLength        = 10 // "auto", "chrome", "basic"
	MaxFontNameLength    = 100
	MaxColorLength       = 7 // "#rrggbb"
)

// Accepted values.
var (
	validPageSizes    = []string{"letter", "a4", "legal"}
	validOrientations = []string{"portrait", "landscape"}
	validModes        = []string{"auto", "chrome", "basic"}
)

// Timeout bounds.
const (
	MinTimeout = time.Second
	MaxTimeout = 10 * time.Minute
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Config holds every option a conversion run reads from file.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Page     PageConfig     `yaml:"page"`
	Renderer RendererConfig `yaml:"renderer"`
	Styles   StylesConfig   `yaml:"styles"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig defines the source text file.
type InputConfig struct {
	Path string `yaml:"path"` // empty = sample-prd-enhanced.txt
}

// OutputConfig defines the PDF destination.
type OutputConfig struct {
	Path string `yaml:"path"` // empty = input path with .pdf extension
}

// PageConfig overrides the renderer's page geometry.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// RendererConfig selects and tunes the renderer chain.
type RendererConfig struct {
	Mode         string `yaml:"mode"`         // "auto" (default), "chrome", "basic"
	Timeout      string `yaml:"timeout"`      // Go duration, e.g. "30s"
	Fallback     *bool  `yaml:"fallback"`     // nil = enabled
	FallbackFont string `yaml:"fallbackFont"` // TrueType font name for the basic renderer
}

// StylesConfig overrides the block presets.
type StylesConfig struct {
	Title        StyleConfig `yaml:"title"`
	Heading      StyleConfig `yaml:"heading"`
	Body         StyleConfig `yaml:"body"`
	SpacerHeight *float64    `yaml:"spacerHeight"` // nil = default
}

// StyleConfig overrides one preset. Zero sizes and an empty color keep the
// default; spacings are pointers so 0 can be set explicitly.
type StyleConfig struct {
	FontSize    float64  `yaml:"fontSize"`
	Leading     float64  `yaml:"leading"`
	Color       string   `yaml:"color"`
	SpaceBefore *float64 `yaml:"spaceBefore"`
	SpaceAfter  *float64 `yaml:"spaceAfter"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
}

// DefaultConfig returns an empty configuration; every field falls back to
// the converter defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks lengths, enumerations and ranges. Called by LoadConfig,
// and by the CLI after environment overrides are applied.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"renderer.mode", c.Renderer.Mode, MaxModeLength},
		{"renderer.fallbackFont", c.Renderer.FallbackFont, MaxFontNameLength},
		{"styles.title.color", c.Styles.Title.Color, MaxColorLength},
		{"styles.heading.color", c.Styles.Heading.Color, MaxColorLength},
		{"styles.body.color", c.Styles.Body.Color, MaxColorLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	if err := validateOneOf("page.size", c.Page.Size, validPageSizes); err != nil {
		return err
	}
	if err := validateOneOf("page.orientation", c.Page.Orientation, validOrientations); err != nil {
		return err
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.2f and %.1f, got %.2f", ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	if err := validateOneOf("renderer.mode", c.Renderer.Mode, validModes); err != nil {
		return err
	}
	if _, err := c.Renderer.TimeoutDuration(); err != nil {
		return err
	}

	if _, err := c.StyleSheet(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Renderer.Timeout. Zero means unset.
func (r RendererConfig) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: renderer.timeout %q: %v", ErrInvalidValue, r.Timeout, err)
	}
	if d < MinTimeout || d > MaxTimeout {
		return 0, fmt.Errorf("%w: renderer.timeout must be between %s and %s, got %s", ErrInvalidValue, MinTimeout, MaxTimeout, d)
	}
	return d, nil
}

// FallbackEnabled reports whether the basic renderer may back up Chrome.
func (r RendererConfig) FallbackEnabled() bool {
	return r.Fallback == nil || *r.Fallback
}

// StyleSheet merges the style overrides into the default presets and
// validates the result.
func (c *Config) StyleSheet() (style.Sheet, error) {
	sheet := style.Default()
	sheet.Title = sheet.Title.Apply(c.Styles.Title.overrides())
	sheet.Heading = sheet.Heading.Apply(c.Styles.Heading.overrides())
	sheet.Body = sheet.Body.Apply(c.Styles.Body.overrides())
	if c.Styles.SpacerHeight != nil {
		sheet.SpacerHeight = *c.Styles.SpacerHeight
	}

	if err := sheet.Validate(); err != nil {
		return style.Sheet{}, err
	}
	return sheet, nil
}

func (s StyleConfig) overrides() style.Overrides {
	return style.Overrides{
		FontSize:    s.FontSize,
		Leading:     s.Leading,
		Color:       s.Color,
		SpaceBefore: s.SpaceBefore,
		SpaceAfter:  s.SpaceAfter,
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts empty values and case-insensitive members of allowed.
func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as <name>.yaml or <name>.yml in the working
// directory, then in the user config directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where LoadConfig looks for a config name, in order:
// the working directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
