package txt2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/flopp/go-findfont"
	"github.com/jung-kurt/gofpdf"

	"github.com/alnah/go-txt2pdf/internal/fileutil"
)

// Basic renderer geometry, in millimetres.
const (
	basicCoreFont       = "Arial"
	basicUTF8Font       = "fallback"
	basicFontSize       = 11
	basicLineHeight     = 6
	basicBlankAdvance   = 3
	basicPageBreak      = 15
	basicWrapRunes      = 100
	basicDefaultPage    = "A4"
	millimetresPerInch  = 25.4
	trueTypeFontSuffix  = ".ttf"
	basicPageSizeLetter = "Letter"
	basicPageSizeLegal  = "Legal"
)

var basicPageSizes = map[string]string{
	PageSizeA4:     basicDefaultPage,
	PageSizeLetter: basicPageSizeLetter,
	PageSizeLegal:  basicPageSizeLegal,
}

// basicRenderer draws one cell per source line with gofpdf. It applies no
// classification, markup, size or color.
type basicRenderer struct {
	fontPath string // TrueType font; empty = core Arial with cp1252 translation
	fontData []byte
	fontErr  error // deferred font lookup failure, returned by Render
}

// newBasicRenderer resolves the optional TrueType font up front.
func newBasicRenderer(fontName string) (*basicRenderer, error) {
	r := &basicRenderer{}
	if fontName == "" {
		return r, nil
	}

	path, err := FindFallbackFont(fontName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- font path resolved from user config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontNotFound, err)
	}

	r.fontPath = path
	r.fontData = data
	return r, nil
}

// FindFallbackFont locates a TrueType font by path or by name in the system
// font directories.
func FindFallbackFont(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrFontNotFound)
	}

	var path string
	if fileutil.IsFilePath(name) {
		if !fileutil.FileExists(name) {
			return "", fmt.Errorf("%w: %s", ErrFontNotFound, name)
		}
		path = name
	} else {
		candidate := name
		if !strings.EqualFold(filepath.Ext(name), trueTypeFontSuffix) {
			candidate = name + trueTypeFontSuffix
		}
		found, err := findfont.Find(candidate)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrFontNotFound, name)
		}
		path = found
	}

	if !strings.EqualFold(filepath.Ext(path), trueTypeFontSuffix) {
		return "", fmt.Errorf("%w: %s is not a TrueType (.ttf) font", ErrFontNotFound, path)
	}
	return path, nil
}

func (r *basicRenderer) Kind() RendererKind { return RendererBasic }

func (r *basicRenderer) Close() error { return nil }

// Render emits the document's FallbackLines on A4 pages unless the job's
// page settings say otherwise.
func (r *basicRenderer) Render(ctx context.Context, job renderJob) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.fontErr != nil {
		return nil, r.fontErr
	}

	pdf := r.newDocument(job.Page)

	translate := func(s string) string { return s }
	if r.fontData != nil {
		pdf.AddUTF8FontFromBytes(basicUTF8Font, "", r.fontData)
		pdf.SetFont(basicUTF8Font, "", basicFontSize)
	} else {
		translate = pdf.UnicodeTranslatorFromDescriptor("")
		pdf.SetFont(basicCoreFont, "", basicFontSize)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrFallbackRender, pdf.Error())
	}

	var lines []string
	if job.Doc != nil {
		lines = job.Doc.FallbackLines()
	}
	if err := emitLines(ctx, pdf, lines, translate); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFallbackRender, err)
	}
	return buf.Bytes(), nil
}

// lineWriter is the part of *gofpdf.Fpdf the line emitter drives.
type lineWriter interface {
	Ln(h float64)
	MultiCell(w, h float64, txtStr, borderStr, alignStr string, fill bool)
	CellFormat(w, h float64, txtStr, borderStr string, ln int, alignStr string, fill bool, link int, linkStr string)
}

var _ lineWriter = (*gofpdf.Fpdf)(nil)

// emitLines writes one cell per line. Lines over basicWrapRunes runes go
// into a wrapping multi-line cell; blank lines only advance.
func emitLines(ctx context.Context, w lineWriter, lines []string, translate func(string) string) error {
	for i, line := range lines {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		switch {
		case line == "":
			w.Ln(basicBlankAdvance)
		case utf8.RuneCountInString(line) > basicWrapRunes:
			w.MultiCell(0, basicLineHeight, translate(line), "", "", false)
		default:
			w.CellFormat(0, basicLineHeight, translate(line), "", 1, "", false, 0, "")
		}
	}
	return nil
}

// newDocument creates the page-set-up gofpdf document with one page.
func (r *basicRenderer) newDocument(p *PageSettings) *gofpdf.Fpdf {
	orientation := "P"
	if p.isLandscape() {
		orientation = "L"
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		SizeStr:        basicPageSizes[p.sizeOr(PageSizeA4)],
	})
	if p != nil && p.Margin > 0 {
		m := p.Margin * millimetresPerInch
		pdf.SetMargins(m, m, m)
	}
	pdf.SetAutoPageBreak(true, basicPageBreak)
	pdf.AddPage()
	return pdf
}
