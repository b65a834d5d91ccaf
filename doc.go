// Package txt2pdf converts plain-text documents to PDF.
//
// # Quick Start
//
//	conv, err := txt2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err) // e.g. ErrBrowserNotFound on a host without Chrome
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, txt2pdf.Input{
//	    Name: "notes",
//	    Text: "PRODUCT REQUIREMENTS\n\n1. Scope\n- **Fast** start",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.pdf", result.PDF, 0644)
//
// # Line Styling
//
// Each trimmed line becomes one block:
//
//   - empty: vertical spacer
//   - upper-case and longer than five characters: heading, or title when it
//     mentions PRODUCT REQUIREMENTS or PRD
//   - starting with a digit and a dot within five characters: heading
//   - anything else: body
//
// Body lines get two inline rules: the first pair of ** becomes bold and a
// leading "- " becomes a bullet.
//
// # Renderers
//
// The primary renderer prints an HTML page with headless Chrome (go-rod).
// The basic renderer (gofpdf) writes one unstyled cell per raw line and runs
// when Chrome fails at runtime. NewConverter probes the host once and picks
// a Plan:
//
//	ModeAuto   chrome -> basic (or chrome alone with WithFallback(false))
//	ModeChrome chrome
//	ModeBasic  basic
//
// A missing browser is reported by NewConverter as ErrBrowserNotFound;
// conversions never download one. InstallBrowser fetches a managed
// Chromium that later probes pick up.
//
// # Configuration
//
//	conv, err := txt2pdf.NewConverter(
//	    txt2pdf.WithTimeout(time.Minute),
//	    txt2pdf.WithRendererMode(txt2pdf.ModeAuto),
//	    txt2pdf.WithFallbackFont("DejaVuSans"),
//	    txt2pdf.WithAssetPath("/path/to/assets"),
//	)
//
// Per-conversion page geometry goes through Input.Page:
//
//	conv.Convert(ctx, txt2pdf.Input{Text: text, Page: &txt2pdf.PageSettings{Size: "a4"}})
package txt2pdf
