package txt2pdf

import (
	"context"

	"github.com/alnah/go-txt2pdf/internal/document"
)

// renderJob carries everything a renderer may need. Chrome prints HTML;
// the basic renderer ignores it and walks the raw lines.
type renderJob struct {
	Doc  *document.Document
	HTML string
	Page *PageSettings
}

// renderer turns one job into PDF bytes.
type renderer interface {
	Kind() RendererKind
	Render(ctx context.Context, job renderJob) ([]byte, error)
	Close() error
}

var (
	_ renderer = (*chromeRenderer)(nil)
	_ renderer = (*basicRenderer)(nil)
)
