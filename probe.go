package txt2pdf

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-txt2pdf/internal/fileutil"
)

// RendererKind names a PDF engine.
type RendererKind string

// Renderer kinds.
const (
	RendererChrome RendererKind = "chrome"
	RendererBasic  RendererKind = "basic"
)

// RendererMode selects which renderers may run.
type RendererMode string

// Renderer modes.
const (
	ModeAuto   RendererMode = "auto"   // Chrome, basic renderer on failure
	ModeChrome RendererMode = "chrome" // Chrome only
	ModeBasic  RendererMode = "basic"  // basic renderer only
)

// ParseRendererMode accepts mode names case-insensitively. Empty means auto.
func ParseRendererMode(s string) (RendererMode, error) {
	switch m := RendererMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeChrome, ModeBasic:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (must be auto, chrome, or basic)", ErrInvalidRendererMode, s)
	}
}

// Browser sources reported by ProbeCapabilities.
const (
	SourceEnv     = "ROD_BROWSER_BIN"
	SourceSystem  = "system"
	SourceManaged = "managed"
)

// Capabilities describes what the host can render with.
type Capabilities struct {
	BrowserPath   string
	BrowserFound  bool
	BrowserSource string // SourceEnv, SourceSystem, SourceManaged; empty when not found
}

// Prober reports host capabilities. Tests swap it to simulate missing engines.
type Prober interface {
	Probe() Capabilities
}

// ProberFunc adapts a function to Prober.
type ProberFunc func() Capabilities

// Probe calls f.
func (f ProberFunc) Probe() Capabilities { return f() }

// SystemProber probes the real host.
var SystemProber Prober = ProberFunc(ProbeCapabilities)

// managedBrowserPath returns where install-browser places Chromium.
var managedBrowserPath = func() string {
	return launcher.NewBrowser().BinPath()
}

// InstallBrowser downloads the managed Chromium build into rod's cache,
// unless it is already there, and returns the binary path. Progress lines
// go to progress. ProbeCapabilities finds the result as SourceManaged.
func InstallBrowser(ctx context.Context, progress io.Writer) (string, error) {
	b := launcher.NewBrowser()
	b.Context = ctx
	b.Logger = log.New(progress, "", 0)

	path, err := b.Get()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBrowserInstall, err)
	}
	return path, nil
}

// lookPath wraps launcher.LookPath for tests.
var lookPath = launcher.LookPath

// ProbeCapabilities locates a browser without downloading anything.
// ROD_BROWSER_BIN wins when set, even if the file is missing, so a broken
// override is reported instead of silently ignored.
func ProbeCapabilities() Capabilities {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		return Capabilities{
			BrowserPath:   bin,
			BrowserFound:  fileutil.FileExists(bin),
			BrowserSource: SourceEnv,
		}
	}

	if path, found := lookPath(); found {
		return Capabilities{BrowserPath: path, BrowserFound: true, BrowserSource: SourceSystem}
	}

	if path := managedBrowserPath(); path != "" && fileutil.FileExists(path) {
		return Capabilities{BrowserPath: path, BrowserFound: true, BrowserSource: SourceManaged}
	}

	return Capabilities{}
}

// Plan is the ordered renderer chain for a converter.
type Plan struct {
	Renderers []RendererKind
}

// Primary returns the first renderer.
func (p Plan) Primary() RendererKind {
	if len(p.Renderers) == 0 {
		return ""
	}
	return p.Renderers[0]
}

// HasFallback reports whether a second renderer backs up the first.
func (p Plan) HasFallback() bool {
	return len(p.Renderers) > 1
}

// String renders the chain as "chrome -> basic".
func (p Plan) String() string {
	names := make([]string, len(p.Renderers))
	for i, r := range p.Renderers {
		names[i] = string(r)
	}
	return strings.Join(names, " -> ")
}

// SelectPlan chooses the renderer chain. A missing browser is an error in
// auto and chrome modes: the caller must install one or pick basic.
func SelectPlan(mode RendererMode, caps Capabilities, fallback bool) (Plan, error) {
	switch mode {
	case ModeAuto:
		if !caps.BrowserFound {
			return Plan{}, browserNotFoundError(caps)
		}
		if fallback {
			return Plan{Renderers: []RendererKind{RendererChrome, RendererBasic}}, nil
		}
		return Plan{Renderers: []RendererKind{RendererChrome}}, nil
	case ModeChrome:
		if !caps.BrowserFound {
			return Plan{}, browserNotFoundError(caps)
		}
		return Plan{Renderers: []RendererKind{RendererChrome}}, nil
	case ModeBasic:
		return Plan{Renderers: []RendererKind{RendererBasic}}, nil
	default:
		return Plan{}, fmt.Errorf("%w: %q", ErrInvalidRendererMode, mode)
	}
}

func browserNotFoundError(caps Capabilities) error {
	if caps.BrowserSource == SourceEnv {
		return fmt.Errorf("%w: ROD_BROWSER_BIN=%s does not exist", ErrBrowserNotFound, caps.BrowserPath)
	}
	return ErrBrowserNotFound
}
