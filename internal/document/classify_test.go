package document

// Notes:
// - Classify is tested against the documented heuristics; each case names the
//   rule it exercises.
// - isUpper and isNumbered are covered through Classify, plus a few direct
//   cases for the rune-counting edge (multi-byte prefixes).

import "testing"

// ---------------------------------------------------------------------------
// TestClassify - Line kind heuristics
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Kind
	}{
		// Spacer
		{"empty line is spacer", "", KindSpacer},

		// Title: all-caps, longer than 5, title marker
		{"product requirements title", "PRODUCT REQUIREMENTS DOCUMENT", KindTitle},
		{"PRD acronym title", "ACME PRD V2", KindTitle},
		{"PRD embedded in word", "SPRDX TEAM", KindTitle},
		{"numbered all-caps with PRD goes through caps branch", "1. PRD SCOPE", KindTitle},

		// Heading: all-caps, longer than 5
		{"all-caps heading", "EXECUTIVE SUMMARY", KindHeading},
		{"all-caps with digits", "PHASE 2 GOALS", KindHeading},
		{"numbered all-caps heading", "2. GOALS", KindHeading},
		{"exactly six runes", "ABCDEF", KindHeading},

		// All-caps too short falls through
		{"five runes all-caps is body", "ABCDE", KindBody},
		{"short PRD is body", "PRD", KindBody},

		// Numbered heading
		{"numbered section", "1. Overview", KindHeading},
		{"multi-level number", "3.2 Success metrics", KindHeading},
		{"dot at fifth rune", "1234. Item", KindHeading},
		{"numbered with prd stays heading", "4. prd scope", KindHeading},
		{"numbered mentioning product requirements stays heading", "5. Product Requirements recap", KindHeading},

		// Numbered heuristic misses
		{"dot after fifth rune", "12345. Late dot", KindBody},
		{"digit without dot", "2024 roadmap", KindBody},
		{"dot without leading digit", "a. lettered item", KindBody},

		// Body
		{"mixed case prose", "The product ships in Q3.", KindBody},
		{"bullet line", "- item one", KindBody},
		{"no cased runes is not upper", "123456789", KindBody},
		{"all-caps with one lowercase", "PRODUCT REQUIREMENTs", KindBody},
		{"feminine ordinal is lower-case", "ABCDEFª", KindBody},
		{"circled small letter is lower-case", "ⓐBCDEFG", KindBody},
		{"roman numerals are upper-case", "ⅠⅡⅢⅣⅤⅥ", KindHeading},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify_TitleNeverHeading - Title condition always wins in caps branch
// ---------------------------------------------------------------------------

func TestClassify_TitleNeverHeading(t *testing.T) {
	t.Parallel()

	lines := []string{
		"PRODUCT REQUIREMENTS",
		"PRODUCT REQUIREMENTS DOCUMENT V1",
		"THE PRD",
		"PRD: CHECKOUT FLOW",
		"DRAFT PRD - 2025",
	}

	for _, line := range lines {
		if got := Classify(line); got != KindTitle {
			t.Errorf("Classify(%q) = %q, want %q", line, got, KindTitle)
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsUpper - Cased rune detection
// ---------------------------------------------------------------------------

func TestIsUpper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"ABC", true},
		{"ABC 123 !?", true},
		{"ÉTÉ EN FRANCE", true},
		{"Abc", false},
		{"123", false},
		{"", false},
		{"ǅ", false}, // title-case rune

		// Other_Lowercase and Other_Uppercase runes.
		{"ABCª", false},
		{"ⓐBC", false},
		{"ⅠⅡⅢ", true},
		{"Ⓐ 12", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := isUpper(tt.in); got != tt.want {
				t.Errorf("isUpper(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsNumbered - Rune-based prefix window
// ---------------------------------------------------------------------------

func TestIsNumbered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"1.", true},
		{"1", false},
		{"1ééé.", true},   // dot is the fifth rune
		{"1éééé.", false}, // dot is the sixth rune
		{"١. Arabic-Indic digit", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := isNumbered(tt.in); got != tt.want {
				t.Errorf("isNumbered(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
