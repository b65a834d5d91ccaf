package document

import (
	"html"
	"strings"
)

// Block is one classified line ready for layout.
// Text holds HTML-safe markup; it is empty for spacers.
type Block struct {
	Kind   Kind
	Text   string
	Source string
}

// NewBlock trims a raw line, classifies it and builds its markup.
// Only body lines get the inline transform; titles and headings are escaped.
func NewBlock(raw string) Block {
	line := strings.TrimSpace(raw)
	kind := Classify(line)

	b := Block{Kind: kind, Source: line}
	switch kind {
	case KindSpacer:
	case KindBody:
		b.Text = TransformInline(line)
	default:
		b.Text = html.EscapeString(line)
	}
	return b
}

// IsSpacer reports whether the block only adds vertical space.
func (b Block) IsSpacer() bool {
	return b.Kind == KindSpacer
}
