// Package font loads glyph-width tables for the 14 standard Type-1 base
// fonts referenced by the intermediate language. Fonts are never embedded:
// only their short names (as used on the "x font" command) and
// their widths (as used by the text-content builder to advance the
// horizontal cursor) are needed.
package font

// Standard is the short-name to PDF base-font-name table for the 14
// standard Type-1 fonts. Short names follow the groff devpdf convention
// (e.g. "TR" for Times-Roman, "TB" for Times-Bold, "CR" for Courier).
var Standard = map[string]string{
	"HR":  "Helvetica",
	"HI":  "Helvetica-Oblique",
	"HB":  "Helvetica-Bold",
	"HBI": "Helvetica-BoldOblique",
	"CR":  "Courier",
	"CI":  "Courier-Oblique",
	"CB":  "Courier-Bold",
	"CBI": "Courier-BoldOblique",
	"TR":  "Times-Roman",
	"TI":  "Times-Italic",
	"TB":  "Times-Bold",
	"TBI": "Times-BoldItalic",
	"S":   "Symbol",
	"ZD":  "ZapfDingbats",
}

// BaseFontName returns the PDF /BaseFont name for a font short name. If
// short does not match one of the 14 standard fonts, it is used verbatim
// as the base font name; this keeps font mounting permissive for any
// locally configured device font while still recognizing the device's
// built-in short names.
func BaseFontName(short string) string {
	if name, ok := Standard[short]; ok {
		return name
	}
	return short
}
