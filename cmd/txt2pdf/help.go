package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2pdf [command] [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert          Convert a text file to PDF (default)")
	fmt.Fprintln(w, "  doctor           Check Chrome, fonts, and environment")
	fmt.Fprintln(w, "  install-browser  Download a managed Chromium")
	fmt.Fprintln(w, "  config           Print the effective configuration")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'txt2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2pdf [convert] [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a plain-text file to a styled PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  input    Text file (default: input.path from config, else %s)\n", defaultInput)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF (default: input with .pdf extension)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --assets <dir>        Override embedded template and stylesheet")
	fmt.Fprintln(w, "      --html                Also write the intermediate HTML")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renderer:")
	fmt.Fprintln(w, "  -r, --renderer <mode>     auto (Chrome, basic on failure), chrome, basic")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-renderer timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --no-fallback         Fail instead of using the basic renderer")
	fmt.Fprintln(w, "      --fallback-font <s>   TrueType font name or path for the basic renderer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show renderer plan and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TXT2PDF_CONFIG, TXT2PDF_RENDERER, TXT2PDF_TIMEOUT, TXT2PDF_PAGE_SIZE,")
	fmt.Fprintln(w, "  TXT2PDF_FALLBACK_FONT, TXT2PDF_OUTPUT (flags take precedence)")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (containers)")
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2pdf doctor [--json] [--fallback-font <s>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a browser, the basic renderer font, and a writable temp")
	fmt.Fprintln(w, "directory are available. Exits 1 when a check fails.")
}

func printInstallUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2pdf install-browser [-q]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download a managed Chromium build. Conversions find it automatically")
	fmt.Fprintln(w, "when no system Chrome is installed.")
}

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2pdf config [input] [convert flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration convert would use, after merging")
	fmt.Fprintln(w, "the config file, TXT2PDF_* variables and flags.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "install-browser":
		printInstallUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: txt2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: txt2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
