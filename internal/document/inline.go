package document

import (
	"html"
	"strings"
)

// Inline markup tokens.
const (
	boldDelimiter = "**"
	boldOpen      = "<b>"
	boldClose     = "</b>"
	bulletPrefix  = "- "

	// BulletMarker replaces a leading "- " on body lines.
	BulletMarker = "• "
)

// TransformInline converts a trimmed body line into HTML-safe markup.
//
// The text is escaped first. Then only the first "**" becomes <b> and the
// next one </b>; any later "**" is left as typed. A leading "- " becomes
// BulletMarker, once.
func TransformInline(line string) string {
	s := html.EscapeString(line)
	s = strings.Replace(s, boldDelimiter, boldOpen, 1)
	s = strings.Replace(s, boldDelimiter, boldClose, 1)
	if rest, ok := strings.CutPrefix(s, bulletPrefix); ok {
		s = BulletMarker + rest
	}
	return s
}
