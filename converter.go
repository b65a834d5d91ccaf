package txt2pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-txt2pdf/internal/assets"
	"github.com/alnah/go-txt2pdf/internal/document"
	"github.com/alnah/go-txt2pdf/internal/pdfinfo"
	"github.com/alnah/go-txt2pdf/internal/pipeline"
	"github.com/alnah/go-txt2pdf/internal/style"
)

// Converter turns plain text into PDF through an ordered renderer chain.
// Create with NewConverter, call Convert, and Close when done.
// A Converter is not safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	prober    Prober
	caps      Capabilities
	plan      Plan
	html      *pipeline.HTMLBuilder
	renderers map[RendererKind]renderer
}

// NewConverter probes the host, selects the renderer plan and loads the
// page template. It fails fast when the plan cannot be satisfied, for
// instance ErrBrowserNotFound in auto mode on a host without Chrome.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:  defaultTimeout,
			mode:     ModeAuto,
			fallback: true,
			sheet:    style.Default(),
		},
		prober:    SystemProber,
		renderers: make(map[RendererKind]renderer),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.sheet.Validate(); err != nil {
		return nil, err
	}

	c.caps = c.prober.Probe()
	plan, err := SelectPlan(c.cfg.mode, c.caps, c.cfg.fallback)
	if err != nil {
		return nil, err
	}
	c.plan = plan

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	c.html, err = pipeline.NewHTMLBuilder(loader)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}

	for _, kind := range plan.Renderers {
		if _, ok := c.renderers[kind]; ok {
			continue
		}
		r, err := c.newRenderer(kind)
		if err != nil {
			return nil, err
		}
		c.renderers[kind] = r
	}

	return c, nil
}

func (c *Converter) newRenderer(kind RendererKind) (renderer, error) {
	switch kind {
	case RendererChrome:
		return newChromeRenderer(c.caps.BrowserPath, c.cfg.timeout), nil
	case RendererBasic:
		r, err := newBasicRenderer(c.cfg.fallbackFont)
		if err != nil && kind != c.plan.Primary() {
			// Only a fallback: report the font if the basic renderer runs.
			return &basicRenderer{fontErr: err}, nil
		}
		return r, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRendererMode, kind)
	}
}

// Plan returns the renderer chain selected at construction.
func (c *Converter) Plan() Plan {
	return c.plan
}

// Capabilities returns the probe result used to select the plan.
func (c *Converter) Capabilities() Capabilities {
	return c.caps
}

// Convert classifies the text, builds the HTML page and runs the renderer
// chain. A renderer error or panic moves on to the next renderer; a
// cancelled ctx stops the chain. Recovers from internal panics.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Page.Validate(); err != nil {
		return nil, err
	}

	doc := document.Parse(input.Name, input.Text)
	blocks := doc.Blocks()

	htmlContent, err := c.html.Build(ctx, doc.Name, blocks, c.cfg.sheet)
	if err != nil {
		return nil, fmt.Errorf("building HTML: %w", err)
	}

	res := &Result{
		HTML:   []byte(htmlContent),
		Blocks: blocks,
	}
	if input.HTMLOnly {
		return res, nil
	}

	job := renderJob{Doc: doc, HTML: htmlContent, Page: input.Page}

	var failures []error
	for _, kind := range c.plan.Renderers {
		start := time.Now()
		pdf, renderErr := c.runRenderer(ctx, c.renderers[kind], job)
		res.Attempts = append(res.Attempts, Attempt{Renderer: kind, Err: renderErr, Duration: time.Since(start)})

		if renderErr == nil {
			res.PDF = pdf
			res.Renderer = kind
			res.Pages = pdfinfo.PageCount(pdf)
			return res, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s renderer: %w", kind, ctxErr)
		}
		failures = append(failures, fmt.Errorf("%s renderer: %w", kind, renderErr))
	}

	chainErr := ErrAllRenderersFailed
	if !c.plan.HasFallback() && c.plan.Primary() == RendererChrome {
		chainErr = ErrNoFallback
	}
	return nil, errors.Join(append([]error{chainErr}, failures...)...)
}

// runRenderer bounds one run with the converter timeout and turns a
// renderer panic into an error.
func (c *Converter) runRenderer(ctx context.Context, r renderer, job renderJob) (pdf []byte, err error) {
	if r == nil {
		return nil, fmt.Errorf("%w: renderer not initialized", ErrNoFallback)
	}

	defer func() {
		if p := recover(); p != nil {
			pdf = nil
			err = fmt.Errorf("%s renderer panicked: %v", r.Kind(), p)
		}
	}()

	rctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	return r.Render(rctx, job)
}

// Close releases renderer resources (the headless browser).
func (c *Converter) Close() error {
	var errs []error
	for _, r := range c.renderers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
