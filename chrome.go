package txt2pdf

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-txt2pdf/internal/fileutil"
	"github.com/alnah/go-txt2pdf/internal/process"
)

// pdfRenderer abstracts printing an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

var _ pdfRenderer = (*rodRenderer)(nil)

// pdfOptions is the resolved page geometry in inches.
type pdfOptions struct {
	Width  float64
	Height float64
	Margin float64
}

// Paper sizes in inches, portrait.
var chromePaperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// chromePDFOptions resolves page settings against the Chrome defaults.
func chromePDFOptions(p *PageSettings) *pdfOptions {
	dims := chromePaperSizes[p.sizeOr(PageSizeLetter)]
	w, h := dims[0], dims[1]
	if p.isLandscape() {
		w, h = h, w
	}

	margin := DefaultMargin
	if p != nil && p.Margin > 0 {
		margin = p.Margin
	}

	return &pdfOptions{Width: w, Height: h, Margin: margin}
}

// rodRenderer implements pdfRenderer with go-rod. It launches the browser
// found by the capability probe and never downloads one.
type rodRenderer struct {
	browserPath string
	timeout     time.Duration
	launcher    *launcher.Launcher
	browser     *rod.Browser
}

func newRodRenderer(browserPath string, timeout time.Duration) *rodRenderer {
	return &rodRenderer{browserPath: browserPath, timeout: timeout}
}

// noSandbox reports whether Chrome must run without its sandbox.
func noSandbox() bool {
	return os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true"
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New().Bin(r.browserPath).Headless(true)
	if noSandbox() {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return nil
}

// Close releases browser resources and kills the browser process tree.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

func (r *rodRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	pid := r.launcher.PID()
	r.launcher.Kill()
	process.KillProcessGroup(pid)
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL(filePath)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()
	page = page.Context(ctx)

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(opts.Width),
		PaperHeight:     floatPtr(opts.Height),
		MarginTop:       floatPtr(opts.Margin),
		MarginBottom:    floatPtr(opts.Margin),
		MarginLeft:      floatPtr(opts.Margin),
		MarginRight:     floatPtr(opts.Margin),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// fileURL builds a file:// URL that also works for Windows paths.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if u.Path != "" && u.Path[0] != '/' {
		u.Path = "/" + u.Path
	}
	return u.String()
}

func floatPtr(v float64) *float64 {
	return &v
}

// chromeRenderer prints the converter's HTML page through a pdfRenderer.
type chromeRenderer struct {
	pdf pdfRenderer
}

func newChromeRenderer(browserPath string, timeout time.Duration) *chromeRenderer {
	return &chromeRenderer{pdf: newRodRenderer(browserPath, timeout)}
}

func (c *chromeRenderer) Kind() RendererKind { return RendererChrome }

// Render writes the HTML to a temp file and prints it.
func (c *chromeRenderer) Render(ctx context.Context, job renderJob) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(job.HTML, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.pdf.RenderFromFile(ctx, tmpPath, chromePDFOptions(job.Page))
}

func (c *chromeRenderer) Close() error {
	return c.pdf.Close()
}
