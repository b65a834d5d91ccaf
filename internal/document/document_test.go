package document

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParse - Line splitting
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	doc := Parse("prd", "TITLE LINE\n\nbody\n")

	want := []string{"TITLE LINE", "", "body", ""}
	if !reflect.DeepEqual(doc.Lines, want) {
		t.Errorf("Lines = %q, want %q", doc.Lines, want)
	}
	if doc.Name != "prd" {
		t.Errorf("Name = %q, want %q", doc.Name, "prd")
	}
	if doc.Text() != "TITLE LINE\n\nbody\n" {
		t.Errorf("Text() = %q", doc.Text())
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Blocks - One block per line, reading order preserved
// ---------------------------------------------------------------------------

func TestDocument_Blocks(t *testing.T) {
	t.Parallel()

	doc := Parse("prd", "PRODUCT REQUIREMENTS DOCUMENT\n\n1. Overview\n  - item one  \r\nSee **this** now")
	blocks := doc.Blocks()

	want := []Block{
		{Kind: KindTitle, Text: "PRODUCT REQUIREMENTS DOCUMENT", Source: "PRODUCT REQUIREMENTS DOCUMENT"},
		{Kind: KindSpacer, Source: ""},
		{Kind: KindHeading, Text: "1. Overview", Source: "1. Overview"},
		{Kind: KindBody, Text: BulletMarker + "item one", Source: "- item one"},
		{Kind: KindBody, Text: "See <b>this</b> now", Source: "See **this** now"},
	}

	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Blocks() mismatch\n got: %#v\nwant: %#v", blocks, want)
	}
}

func TestDocument_Blocks_HeadingNotTransformed(t *testing.T) {
	t.Parallel()

	blocks := Parse("x", "1. **Scope** & goals").Blocks()

	if blocks[0].Kind != KindHeading {
		t.Fatalf("Kind = %q, want heading", blocks[0].Kind)
	}
	if blocks[0].Text != "1. **Scope** &amp; goals" {
		t.Errorf("Text = %q, want escaped literal", blocks[0].Text)
	}
}

func TestDocument_Blocks_EmptyText(t *testing.T) {
	t.Parallel()

	blocks := Parse("empty", "").Blocks()

	if len(blocks) != 1 || !blocks[0].IsSpacer() {
		t.Errorf("expected a single spacer, got %#v", blocks)
	}
}

// ---------------------------------------------------------------------------
// TestDocument_FallbackLines - File iteration semantics
// ---------------------------------------------------------------------------

func TestDocument_FallbackLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\n  \nb\n", []string{"a", "", "", "b"}},
		{"crlf trimmed", "a\r\nb\r\n", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse("x", tt.text).FallbackLines()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FallbackLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoad - Reading from disk
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample-prd-enhanced.txt")
	if err := os.WriteFile(path, []byte("ÉTÉ PRD\nbody"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "sample-prd-enhanced" {
		t.Errorf("Name = %q, want %q", doc.Name, "sample-prd-enhanced")
	}
	if len(doc.Lines) != 2 || doc.Lines[0] != "ÉTÉ PRD" {
		t.Errorf("Lines = %q", doc.Lines)
	}
	if doc.Text() != "ÉTÉ PRD\nbody" {
		t.Errorf("Text() = %q", doc.Text())
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrReadSource) {
		t.Errorf("expected ErrReadSource, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist to stay matchable, got %v", err)
	}
}

func TestBlock_IsSpacer(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "\t"} {
		if !NewBlock(line).IsSpacer() {
			t.Errorf("NewBlock(%q).IsSpacer() = false, want true", line)
		}
	}
	for _, line := range []string{"OVERVIEW", "1. Goals", "- item"} {
		if NewBlock(line).IsSpacer() {
			t.Errorf("NewBlock(%q).IsSpacer() = true, want false", line)
		}
	}
}
