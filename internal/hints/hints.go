// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-txt2pdf/internal/config"
	"github.com/alnah/go-txt2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a common CI environment variable is set.
func inCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForBrowserMissing returns hints when no Chrome binary was found.
func ForBrowserMissing() string {
	return formatHints([]string{
		"install Chrome or Chromium",
		"set ROD_BROWSER_BIN to an existing binary",
		"run 'txt2pdf install-browser'",
		"or use --renderer basic",
	})
}

// ForBrowserConnect returns hints for browser launch and connection errors.
func ForBrowserConnect() string {
	var hints []string

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config and, when one was searched, the user
// config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := "/" + config.AppDirName + "/"
	for _, p := range searchedPaths {
		if strings.Contains(filepathToSlash(p), marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFontNotFound returns hints when the fallback TrueType font is missing.
func ForFontNotFound() string {
	return format("pass a font name such as DejaVuSans or an absolute .ttf path; leave --fallback-font empty for the core font")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputNotFound returns hints when the source text file is missing.
func ForInputNotFound() string {
	return format("pass the text file as first argument, default is sample-prd-enhanced.txt")
}

// ForUsage points to the help text of a command.
func ForUsage(command string) string {
	return format("run 'txt2pdf help " + command + "'")
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
