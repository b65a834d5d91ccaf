package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// rendererFlags selects and tunes the renderer chain.
type rendererFlags struct {
	mode         string
	timeout      string
	noFallback   bool
	fallbackFont string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // write HTML alongside PDF
	htmlOnly bool // write HTML only, skip PDF
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	assetPath  string
	renderer   rendererFlags
	page       pageFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show renderer plan and timing")
}

// addRendererFlags adds renderer flags to a FlagSet.
func addRendererFlags(fs *flag.FlagSet, f *rendererFlags) {
	fs.StringVarP(&f.mode, "renderer", "r", "", "renderer mode: auto, chrome, basic")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-renderer timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noFallback, "no-fallback", false, "do not fall back to the basic renderer")
	fs.StringVar(&f.fallbackFont, "fallback-font", "", "TrueType font name or path for the basic renderer")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "write HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
}

// parseConvertFlags parses convert command flags and returns positional args.
// Errors are returned, not printed; -h/--help yields flag.ErrHelp.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVar(&f.assetPath, "assets", "", "directory overriding the embedded template and stylesheet")

	addCommonFlags(fs, &f.common)
	addRendererFlags(fs, &f.renderer)
	addPageFlags(fs, &f.page)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
