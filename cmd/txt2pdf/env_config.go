package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-txt2pdf/internal/config"
)

// envConfig holds configuration from TXT2PDF_* environment variables.
type envConfig struct {
	ConfigPath   string // TXT2PDF_CONFIG: config file name or path
	Renderer     string // TXT2PDF_RENDERER: auto, chrome, basic
	Timeout      string // TXT2PDF_TIMEOUT: per-renderer timeout
	PageSize     string // TXT2PDF_PAGE_SIZE: a4, letter, legal
	FallbackFont string // TXT2PDF_FALLBACK_FONT: basic renderer font
	Output       string // TXT2PDF_OUTPUT: output PDF path
}

// knownEnvVars lists valid TXT2PDF_* environment variables.
var knownEnvVars = map[string]bool{
	"TXT2PDF_CONFIG":        true,
	"TXT2PDF_RENDERER":      true,
	"TXT2PDF_TIMEOUT":       true,
	"TXT2PDF_PAGE_SIZE":     true,
	"TXT2PDF_FALLBACK_FONT": true,
	"TXT2PDF_OUTPUT":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Values are validated later, together with the config file.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:   os.Getenv("TXT2PDF_CONFIG"),
		Renderer:     os.Getenv("TXT2PDF_RENDERER"),
		Timeout:      os.Getenv("TXT2PDF_TIMEOUT"),
		PageSize:     os.Getenv("TXT2PDF_PAGE_SIZE"),
		FallbackFont: os.Getenv("TXT2PDF_FALLBACK_FONT"),
		Output:       os.Getenv("TXT2PDF_OUTPUT"),
	}
}

// warnUnknownEnvVars prints a warning for each unrecognized TXT2PDF_*
// variable, in name order.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "TXT2PDF_") {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Order: CLI flags > env vars > config file > defaults
// (flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Renderer != "" {
		cfg.Renderer.Mode = strings.ToLower(env.Renderer)
	}
	if env.Timeout != "" {
		cfg.Renderer.Timeout = env.Timeout
	}
	if env.PageSize != "" {
		cfg.Page.Size = strings.ToLower(env.PageSize)
	}
	if env.FallbackFont != "" {
		cfg.Renderer.FallbackFont = env.FallbackFont
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
}
