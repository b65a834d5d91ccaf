package txt2pdf

import (
	"time"

	"github.com/alnah/go-txt2pdf/internal/style"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout      time.Duration
	mode         RendererMode
	fallback     bool
	fallbackFont string
	sheet        style.Sheet
	assetPath    string
}

// defaultTimeout bounds one renderer run when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-renderer timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("txt2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithRendererMode restricts the renderer chain. Default: ModeAuto.
func WithRendererMode(m RendererMode) Option {
	return func(c *Converter) {
		c.cfg.mode = m
	}
}

// WithFallback enables or disables the basic renderer behind Chrome in
// auto mode. Default: enabled.
func WithFallback(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.fallback = enabled
	}
}

// WithFallbackFont makes the basic renderer embed a TrueType font, given
// by path or system font name, instead of the cp1252 core font.
// When the basic renderer is the primary, NewConverter fails with
// ErrFontNotFound for an unresolvable font. When it is only the fallback,
// the error is returned by Convert if Chrome fails and the fallback runs.
func WithFallbackFont(name string) Option {
	return func(c *Converter) {
		c.cfg.fallbackFont = name
	}
}

// WithStyleSheet replaces the title, heading and body presets.
func WithStyleSheet(s style.Sheet) Option {
	return func(c *Converter) {
		c.cfg.sheet = s
	}
}

// WithAssetPath loads the page template and base stylesheet from dir,
// falling back to the embedded copies for missing files.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithProber replaces host capability detection.
func WithProber(p Prober) Option {
	return func(c *Converter) {
		c.prober = p
	}
}

// withRenderer injects a renderer for tests.
func withRenderer(r renderer) Option {
	return func(c *Converter) {
		c.renderers[r.Kind()] = r
	}
}
