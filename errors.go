package txt2pdf

import (
	"errors"

	"github.com/alnah/go-txt2pdf/internal/document"
	"github.com/alnah/go-txt2pdf/internal/style"
)

// Sentinel errors for library operations.
var (
	ErrReadText = document.ErrReadSource
	ErrWritePDF = errors.New("failed to write PDF file")

	// Chrome renderer errors.
	ErrBrowserNotFound = errors.New("no Chrome or Chromium browser found")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserInstall  = errors.New("failed to install browser")

	// Basic renderer errors.
	ErrFallbackRender = errors.New("basic PDF rendering failed")
	ErrFontNotFound   = errors.New("fallback font not found")

	// Renderer chain errors.
	ErrNoFallback          = errors.New("neither renderer available")
	ErrAllRenderersFailed  = errors.New("all renderers failed")
	ErrInvalidRendererMode = errors.New("invalid renderer mode")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	ErrInvalidStyle     = style.ErrInvalidStyle
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
