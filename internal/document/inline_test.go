package document

// Notes:
// - The bold rule deliberately converts only the first two "**" delimiters;
//   tests pin that behavior rather than pairwise conversion.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTransformInline - Bold, bullet, and escaping
// ---------------------------------------------------------------------------

func TestTransformInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "plain text unchanged",
			line: "Plain body text",
			want: "Plain body text",
		},
		{
			name: "single bold pair",
			line: "**bold** text",
			want: "<b>bold</b> text",
		},
		{
			name: "only first two delimiters converted",
			line: "**bold** text **more**",
			want: "<b>bold</b> text **more**",
		},
		{
			name: "lone delimiter opens bold only",
			line: "a ** b",
			want: "a <b> b",
		},
		{
			name: "leading bullet",
			line: "- item one",
			want: BulletMarker + "item one",
		},
		{
			name: "bullet replaced once",
			line: "- - nested",
			want: BulletMarker + "- nested",
		},
		{
			name: "inner dash untouched",
			line: "pre - post",
			want: "pre - post",
		},
		{
			name: "dash without space is not a bullet",
			line: "-item",
			want: "-item",
		},
		{
			name: "bullet with bold",
			line: "- **Goal**: ship",
			want: BulletMarker + "<b>Goal</b>: ship",
		},
		{
			name: "html escaped before markup",
			line: "a < b & **c**",
			want: "a &lt; b &amp; <b>c</b>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TransformInline(tt.line); got != tt.want {
				t.Errorf("TransformInline(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTransformInline_BulletOnlyAtStart - Marker count
// ---------------------------------------------------------------------------

func TestTransformInline_BulletOnlyAtStart(t *testing.T) {
	t.Parallel()

	got := TransformInline("- first - second - third")

	if !strings.HasPrefix(got, BulletMarker) {
		t.Fatalf("expected bullet prefix, got %q", got)
	}
	if n := strings.Count(got, BulletMarker); n != 1 {
		t.Errorf("bullet marker count = %d, want 1 in %q", n, got)
	}
}
