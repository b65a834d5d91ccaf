package pipeline

// Notes:
// - Output is parsed with golang.org/x/net/html so assertions hold on the
//   document tree rather than on string layout
// - stubLoader feeds templates directly to cover load and parse failures

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/alnah/go-txt2pdf/internal/assets"
	"github.com/alnah/go-txt2pdf/internal/document"
	"github.com/alnah/go-txt2pdf/internal/style"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type stubLoader struct {
	tmpl    string
	css     string
	tmplErr error
	cssErr  error
}

func (s *stubLoader) LoadStyle(string) (string, error)    { return s.css, s.cssErr }
func (s *stubLoader) LoadTemplate(string) (string, error) { return s.tmpl, s.tmplErr }

type element struct {
	tag   string
	class string
	text  string
}

// bodyElements returns the direct element children of <body>.
func bodyElements(t *testing.T, page string) []element {
	t.Helper()

	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	var body *html.Node
	var find func(n *html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil && body == nil; c = c.NextSibling {
			find(c)
		}
	}
	find(root)
	if body == nil {
		t.Fatal("no <body> in output")
	}

	var out []element
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		el := element{tag: c.Data, text: innerHTML(t, c)}
		for _, a := range c.Attr {
			if a.Key == "class" {
				el.class = a.Val
			}
		}
		out = append(out, el)
	}
	return out
}

func innerHTML(t *testing.T, n *html.Node) string {
	t.Helper()
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			t.Fatalf("html.Render() error = %v", err)
		}
	}
	return sb.String()
}

func newEmbeddedBuilder(t *testing.T) *HTMLBuilder {
	t.Helper()
	b, err := NewHTMLBuilder(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("NewHTMLBuilder() error = %v", err)
	}
	return b
}

// ---------------------------------------------------------------------------
// NewHTMLBuilder
// ---------------------------------------------------------------------------

func TestNewHTMLBuilder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		loader  *stubLoader
		wantErr error
	}{
		{"template missing", &stubLoader{tmplErr: assets.ErrTemplateNotFound}, assets.ErrTemplateNotFound},
		{"style missing", &stubLoader{tmpl: "<p></p>", cssErr: assets.ErrStyleNotFound}, assets.ErrStyleNotFound},
		{"template does not parse", &stubLoader{tmpl: "{{.Broken", css: ""}, ErrTemplateParse},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewHTMLBuilder(tt.loader)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewHTMLBuilder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Build
// ---------------------------------------------------------------------------

func TestHTMLBuilder_Build_BlockOrderAndKinds(t *testing.T) {
	t.Parallel()

	doc := document.Parse("sample", "PRODUCT REQUIREMENTS DOCUMENT\n\nOVERVIEW\n1. Goals\n- **Fast** startup\n")
	page, err := newEmbeddedBuilder(t).Build(context.Background(), doc.Name, doc.Blocks(), style.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := bodyElements(t, page)
	want := []element{
		{"h1", "title", "PRODUCT REQUIREMENTS DOCUMENT"},
		{"div", "spacer", ""},
		{"h2", "heading", "OVERVIEW"},
		{"h2", "heading", "1. Goals"},
		{"p", "body", "• <b>Fast</b> startup"},
		{"div", "spacer", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHTMLBuilder_Build_CustomTemplateSeesSpacers(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{tmpl: "{{range .Blocks}}{{if .Spacer}}-{{else}}{{.Kind}}{{end}};{{end}}"}
	b, err := NewHTMLBuilder(loader)
	if err != nil {
		t.Fatalf("NewHTMLBuilder() error = %v", err)
	}

	doc := document.Parse("x", "OVERVIEW\n\nbody")
	page, err := b.Build(context.Background(), doc.Name, doc.Blocks(), style.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if page != "heading;-;body;" {
		t.Errorf("page = %q, want %q", page, "heading;-;body;")
	}
}

func TestHTMLBuilder_Build_EscapesText(t *testing.T) {
	t.Parallel()

	blocks := []document.Block{
		document.NewBlock("a <script>alert(1)</script> & b"),
		document.NewBlock("SECTION <X>"),
	}
	page, err := newEmbeddedBuilder(t).Build(context.Background(), "x", blocks, style.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if strings.Contains(page, "<script>") {
		t.Error("raw <script> leaked into output")
	}

	got := bodyElements(t, page)
	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2", len(got))
	}
	if got[0].text != "a &lt;script&gt;alert(1)&lt;/script&gt; &amp; b" {
		t.Errorf("body text = %q", got[0].text)
	}
	if got[1].tag != "h2" || got[1].text != "SECTION &lt;X&gt;" {
		t.Errorf("heading = %+v", got[1])
	}
}

func TestHTMLBuilder_Build_TitleAndCSS(t *testing.T) {
	t.Parallel()

	page, err := newEmbeddedBuilder(t).Build(context.Background(), "", nil, style.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(page, "<title>"+defaultTitle+"</title>") {
		t.Error("empty title should fall back to default")
	}
	if !strings.Contains(page, ".title {") || !strings.Contains(page, "box-sizing") {
		t.Error("page should carry base and generated CSS")
	}
}

func TestHTMLBuilder_Build_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEmbeddedBuilder(t).Build(ctx, "x", nil, style.Default())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}
