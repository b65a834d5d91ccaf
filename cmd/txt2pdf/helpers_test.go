package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	txt2pdf "github.com/alnah/go-txt2pdf"
	"github.com/alnah/go-txt2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake converter and environment
// ---------------------------------------------------------------------------

// fakeConverter records its input and returns a canned result.
type fakeConverter struct {
	result    *txt2pdf.Result
	err       error
	plan      txt2pdf.Plan
	lastInput txt2pdf.Input
	calls     int
	closed    bool
}

func (f *fakeConverter) Convert(_ context.Context, input txt2pdf.Input) (*txt2pdf.Result, error) {
	f.calls++
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &txt2pdf.Result{
		PDF:      []byte("%PDF-1.4 fake"),
		HTML:     []byte("<html></html>"),
		Renderer: txt2pdf.RendererChrome,
		Attempts: []txt2pdf.Attempt{{Renderer: txt2pdf.RendererChrome}},
		Pages:    1,
	}, nil
}

func (f *fakeConverter) Plan() txt2pdf.Plan { return f.plan }

func (f *fakeConverter) Close() error {
	f.closed = true
	return nil
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	conv    *fakeConverter
	opts    []txt2pdf.Option
	factErr error
}

// newTestEnv returns an environment whose converter factory hands out a
// fakeConverter, or factErr when set.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		conv: &fakeConverter{
			plan: txt2pdf.Plan{Renderers: []txt2pdf.RendererKind{txt2pdf.RendererChrome, txt2pdf.RendererBasic}},
		},
	}
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	te.Environment = &Environment{
		Now:    func() time.Time { return start },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Config: config.DefaultConfig(),
		NewConverter: func(opts ...txt2pdf.Option) (Converter, error) {
			te.opts = opts
			if te.factErr != nil {
				return nil, te.factErr
			}
			return te.conv, nil
		},
		Prober: fakeProber(false),
		Install: func(context.Context, io.Writer) (string, error) {
			return "/cache/chromium/chrome", nil
		},
	}
	return te
}

// realConverterFactory builds real converters on a host reported as
// having no browser, so only the basic renderer can be selected.
func realConverterFactory(opts ...txt2pdf.Option) (Converter, error) {
	return txt2pdf.NewConverter(append(opts, txt2pdf.WithProber(fakeProber(false)))...)
}

func fakeProber(found bool) txt2pdf.Prober {
	return txt2pdf.ProberFunc(func() txt2pdf.Capabilities {
		if !found {
			return txt2pdf.Capabilities{}
		}
		return txt2pdf.Capabilities{BrowserPath: "/usr/bin/chromium", BrowserFound: true, BrowserSource: txt2pdf.SourceSystem}
	})
}

// writeInput creates a text file in a temp dir and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}
