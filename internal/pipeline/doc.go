// Package pipeline turns classified blocks into the standalone HTML page
// that headless Chrome prints.
//
// The page comes from the "document" template; its stylesheet is the base
// CSS followed by rules generated from a style.Sheet. PDF generation lives in
// the root txt2pdf package so this package stays about document structure.
package pipeline
