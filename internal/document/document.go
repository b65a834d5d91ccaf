// Package document loads plain-text sources and turns their lines into
// styled blocks (title, heading, body, spacer).
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrReadSource is returned when the source file cannot be read.
var ErrReadSource = errors.New("failed to read source text")

// Document is a plain-text source split into raw lines.
// It is built once by Parse or Load and never modified afterwards.
type Document struct {
	Name  string
	Lines []string
	text  string
}

// Parse splits text on "\n" into a Document. A trailing newline yields a
// final empty line, which classifies as a spacer.
func Parse(name, text string) *Document {
	return &Document{
		Name:  name,
		Lines: strings.Split(text, "\n"),
		text:  text,
	}
}

// Load reads a UTF-8 text file into a Document named after the file
// without its extension. Read errors wrap both ErrReadSource and the
// underlying os error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, string(data)), nil
}

// Text returns the source text the document was built from.
func (d *Document) Text() string {
	return d.text
}

// Blocks classifies every line and returns one block per line in reading order.
func (d *Document) Blocks() []Block {
	blocks := make([]Block, 0, len(d.Lines))
	for _, line := range d.Lines {
		blocks = append(blocks, NewBlock(line))
	}
	return blocks
}

// FallbackLines returns the trimmed lines as seen when iterating the file
// line by line: unlike Lines, a trailing newline does not add an empty line.
func (d *Document) FallbackLines() []string {
	if d.text == "" {
		return nil
	}
	raw := strings.SplitAfter(d.text, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
