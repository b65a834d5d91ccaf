package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	txt2pdf "github.com/alnah/go-txt2pdf"
	"github.com/alnah/go-txt2pdf/internal/config"
	"github.com/alnah/go-txt2pdf/internal/document"
	"github.com/alnah/go-txt2pdf/internal/fileutil"
)

// defaultInput is converted when no input argument or config path is given.
const defaultInput = "sample-prd-enhanced.txt"

// runConvertCmd parses convert flags, runs the conversion and returns the
// exit code.
func runConvertCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		return reportError(env, fmt.Errorf("%w: %v", ErrInvalidFlags, err))
	}

	return reportError(env, runConvert(ctx, positional, flags, env))
}

// runConvert resolves configuration, converts one text file and writes
// the PDF (and optionally the HTML page).
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyInputs, len(positionalArgs))
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	inputPath := resolveInputPath(positionalArgs, cfg)
	outputPath := resolveOutputPath(inputPath, cfg)

	opts, err := buildOptions(cfg, flags.outputMode.htmlOnly)
	if err != nil {
		return err
	}

	conv, err := env.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Renderer plan: %s\n", conv.Plan())
	}

	doc, err := document.Load(inputPath)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := conv.Convert(ctx, txt2pdf.Input{
		Text:     doc.Text(),
		Name:     doc.Name,
		Page:     buildPageSettings(cfg),
		HTMLOnly: flags.outputMode.htmlOnly,
	})
	if err != nil {
		return err
	}

	if flags.outputMode.html || flags.outputMode.htmlOnly {
		htmlPath := fileutil.ReplaceExt(outputPath, ".html")
		if err := fileutil.WriteFile(htmlPath, result.HTML); err != nil {
			return fmt.Errorf("%w: %w", txt2pdf.ErrWritePDF, err)
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "HTML created successfully: %s\n", htmlPath)
		}
	}
	if flags.outputMode.htmlOnly {
		return nil
	}

	if err := fileutil.WriteFile(outputPath, result.PDF); err != nil {
		return fmt.Errorf("%w: %w", txt2pdf.ErrWritePDF, err)
	}

	if result.FellBack() {
		fmt.Fprintf(env.Stderr, "primary renderer failed: %v; used %s renderer\n",
			result.Attempts[0].Err, result.Renderer)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "PDF created successfully: %s\n", outputPath)
	}
	if flags.common.verbose {
		printAttempts(env, result, env.Now().Sub(start))
	}

	return nil
}

// resolveConfig loads the config file named by --config or TXT2PDF_CONFIG,
// then layers environment variables and flags on top and validates the
// result.
func resolveConfig(flags *convertFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := env.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if name != "" {
		loaded, err := loadConfigFile(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env.Config = cfg
	return cfg, nil
}

// loadConfigFile wraps config.LoadConfig, recording the searched paths for
// the not-found hint.
func loadConfigFile(name string) (*config.Config, error) {
	cfg, err := config.LoadConfig(name)
	if err == nil {
		return cfg, nil
	}
	searched := []string{name}
	if !fileutil.IsFilePath(name) {
		searched = config.SearchPaths(name)
	}
	return nil, &configError{searched: searched, err: err}
}

// mergeFlags overrides config values with explicitly set CLI flags.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	if flags.renderer.mode != "" {
		cfg.Renderer.Mode = strings.ToLower(flags.renderer.mode)
	}
	if flags.renderer.timeout != "" {
		cfg.Renderer.Timeout = flags.renderer.timeout
	}
	if flags.renderer.noFallback {
		disabled := false
		cfg.Renderer.Fallback = &disabled
	}
	if flags.renderer.fallbackFont != "" {
		cfg.Renderer.FallbackFont = flags.renderer.fallbackFont
	}

	if flags.page.size != "" {
		cfg.Page.Size = strings.ToLower(flags.page.size)
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = strings.ToLower(flags.page.orientation)
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}
}

// resolveInputPath returns the positional argument, else input.path,
// else the default sample file.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.Path != "" {
		return cfg.Input.Path
	}
	return defaultInput
}

// resolveOutputPath returns output.path, else the input path with a .pdf
// extension.
func resolveOutputPath(inputPath string, cfg *config.Config) string {
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	return fileutil.ReplaceExt(inputPath, ".pdf")
}

// buildOptions turns the validated config into converter options.
// HTML-only runs never print, so they skip the browser probe.
func buildOptions(cfg *config.Config, htmlOnly bool) ([]txt2pdf.Option, error) {
	mode, err := txt2pdf.ParseRendererMode(cfg.Renderer.Mode)
	if err != nil {
		return nil, err
	}
	if htmlOnly {
		mode = txt2pdf.ModeBasic
	}

	sheet, err := cfg.StyleSheet()
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.Renderer.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	opts := []txt2pdf.Option{
		txt2pdf.WithRendererMode(mode),
		txt2pdf.WithFallback(cfg.Renderer.FallbackEnabled()),
		txt2pdf.WithStyleSheet(sheet),
	}
	if timeout > 0 {
		opts = append(opts, txt2pdf.WithTimeout(timeout))
	}
	if cfg.Renderer.FallbackFont != "" && !htmlOnly {
		opts = append(opts, txt2pdf.WithFallbackFont(cfg.Renderer.FallbackFont))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, txt2pdf.WithAssetPath(cfg.Assets.BasePath))
	}

	return opts, nil
}

// buildPageSettings returns nil when no page option is set, letting each
// renderer keep its own defaults.
func buildPageSettings(cfg *config.Config) *txt2pdf.PageSettings {
	p := cfg.Page
	if p.Size == "" && p.Orientation == "" && p.Margin == 0 {
		return nil
	}
	return &txt2pdf.PageSettings{
		Size:        p.Size,
		Orientation: p.Orientation,
		Margin:      p.Margin,
	}
}

// printAttempts writes one line per renderer run and a summary.
func printAttempts(env *Environment, result *txt2pdf.Result, elapsed time.Duration) {
	for _, a := range result.Attempts {
		status := "ok"
		if a.Err != nil {
			status = "failed: " + a.Err.Error()
		}
		fmt.Fprintf(env.Stderr, "  %s renderer: %s (%v)\n", a.Renderer, status, a.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(env.Stderr, "Pages: %d, total: %v\n", result.Pages, elapsed.Round(time.Millisecond))
}
