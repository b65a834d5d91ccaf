package main

import (
	"context"
	"errors"
	"os"

	txt2pdf "github.com/alnah/go-txt2pdf"
	"github.com/alnah/go-txt2pdf/internal/config"
	"github.com/alnah/go-txt2pdf/internal/hints"
)

// Exit codes for the txt2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, txt2pdf.ErrBrowserNotFound) ||
		errors.Is(err, txt2pdf.ErrBrowserInstall) ||
		errors.Is(err, txt2pdf.ErrBrowserConnect) ||
		errors.Is(err, txt2pdf.ErrPageCreate) ||
		errors.Is(err, txt2pdf.ErrPageLoad) ||
		errors.Is(err, txt2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, txt2pdf.ErrReadText) ||
		errors.Is(err, txt2pdf.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, txt2pdf.ErrInvalidRendererMode) ||
		errors.Is(err, txt2pdf.ErrInvalidPageSize) ||
		errors.Is(err, txt2pdf.ErrInvalidOrientation) ||
		errors.Is(err, txt2pdf.ErrInvalidMargin) ||
		errors.Is(err, txt2pdf.ErrInvalidStyle) ||
		errors.Is(err, txt2pdf.ErrInvalidAssetPath) ||
		errors.Is(err, txt2pdf.ErrFontNotFound) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrTooManyInputs) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns the actionable hint lines for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, txt2pdf.ErrBrowserNotFound):
		return hints.ForBrowserMissing()
	case errors.Is(err, txt2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, txt2pdf.ErrFontNotFound):
		return hints.ForFontNotFound()
	case errors.Is(err, txt2pdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, txt2pdf.ErrReadText) && errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound()
	case errors.Is(err, ErrInvalidFlags), errors.Is(err, ErrTooManyInputs):
		return hints.ForUsage("convert")
	}

	var cfgErr *configError
	if errors.As(err, &cfgErr) && errors.Is(err, config.ErrConfigNotFound) {
		return hints.ForConfigNotFound(cfgErr.searched)
	}
	return ""
}

// configError carries the paths searched for a config name.
type configError struct {
	searched []string
	err      error
}

func (e *configError) Error() string { return "loading config: " + e.err.Error() }

func (e *configError) Unwrap() error { return e.err }
