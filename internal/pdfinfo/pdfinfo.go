// Package pdfinfo reads back a generated PDF to report its page count and
// text layer.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrInvalidPDF is returned when the bytes cannot be parsed as a PDF.
var ErrInvalidPDF = errors.New("invalid PDF")

// Info summarizes a PDF document.
type Info struct {
	Pages int
	Text  string // plain text of all pages, one page per paragraph
}

// Inspect parses data and extracts page count and plain text. Pages whose
// text layer cannot be decoded contribute no text.
func Inspect(data []byte) (info Info, err error) {
	if len(data) == 0 {
		return Info{}, fmt.Errorf("%w: empty input", ErrInvalidPDF)
	}

	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			info = Info{}
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	info.Pages = reader.NumPage()

	fonts := make(map[string]*pdf.Font)
	var parts []string
	for i := 1; i <= info.Pages; i++ {
		p := reader.Page(i)
		if p.V.IsNull() || p.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	info.Text = strings.Join(parts, "\n\n")

	return info, nil
}

// PageCount returns the number of pages, or 0 when data is not a readable PDF.
func PageCount(data []byte) int {
	info, err := Inspect(data)
	if err != nil {
		return 0
	}
	return info.Pages
}
