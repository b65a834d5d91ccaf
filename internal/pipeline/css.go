package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-txt2pdf/internal/style"
)

// BuildCSS generates the block rules for sheet. Sizes are emitted in points
// so they match the PDF coordinate space.
func BuildCSS(sheet style.Sheet) string {
	var buf strings.Builder

	buf.WriteString("\n/* Block presets */\n")
	writeBlockRule(&buf, "body", sheet.Body)
	writeBlockRule(&buf, "heading", sheet.Heading)
	writeBlockRule(&buf, "title", sheet.Title)

	fmt.Fprintf(&buf, ".spacer {\n  height: %spt;\n  margin: 0;\n}\n", formatPt(sheet.SpacerHeight))

	return buf.String()
}

func writeBlockRule(buf *strings.Builder, class string, s style.Style) {
	weight := "normal"
	if s.Bold {
		weight = "bold"
	}
	fmt.Fprintf(buf, `.%s {
  font-family: %s;
  font-size: %spt;
  line-height: %spt;
  color: %s;
  font-weight: %s;
  margin: %spt 0 %spt 0;
}
`, class, s.FontFamily, formatPt(s.FontSize), formatPt(s.Leading), s.Color, weight,
		formatPt(s.SpaceBefore), formatPt(s.SpaceAfter))
}

// formatPt prints a size without trailing zeros.
func formatPt(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
