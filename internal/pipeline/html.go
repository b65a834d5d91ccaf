package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/alnah/go-txt2pdf/internal/assets"
	"github.com/alnah/go-txt2pdf/internal/document"
	"github.com/alnah/go-txt2pdf/internal/style"
)

// Sentinel errors for HTML building.
var (
	ErrTemplateParse  = errors.New("document template parse failed")
	ErrTemplateRender = errors.New("document template rendering failed")
)

// defaultTitle is used when the document has no name.
const defaultTitle = "Document"

// HTMLBuilder renders blocks into a full HTML page.
type HTMLBuilder struct {
	tmpl    *template.Template
	baseCSS string
}

// pageData is the template input.
type pageData struct {
	Title  string
	CSS    template.CSS
	Blocks []blockView
}

// blockView exposes block markup as trusted HTML. document.Block text is
// escaped before any tags are added, so only <b> and </b> survive.
type blockView struct {
	Kind   string
	Spacer bool
	Text   template.HTML
}

// NewHTMLBuilder loads the document template and base style from loader.
func NewHTMLBuilder(loader assets.AssetLoader) (*HTMLBuilder, error) {
	tmplContent, err := loader.LoadTemplate(assets.DocumentTemplateName)
	if err != nil {
		return nil, err
	}
	baseCSS, err := loader.LoadStyle(assets.BaseStyleName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(assets.DocumentTemplateName).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	return &HTMLBuilder{tmpl: tmpl, baseCSS: baseCSS}, nil
}

// Build renders blocks in order using sheet for the block rules.
func (b *HTMLBuilder) Build(ctx context.Context, title string, blocks []document.Block, sheet style.Sheet) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = defaultTitle
	}

	views := make([]blockView, len(blocks))
	for i, blk := range blocks {
		// #nosec G203 -- text was escaped by document.NewBlock
		views[i] = blockView{Kind: string(blk.Kind), Spacer: blk.IsSpacer(), Text: template.HTML(blk.Text)}
	}

	data := pageData{
		Title: title,
		// #nosec G203 -- CSS is generated from validated presets plus trusted assets
		CSS:    template.CSS(sanitizeCSS(b.baseCSS + BuildCSS(sheet))),
		Blocks: views,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
