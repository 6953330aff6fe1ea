package pdf

import (
	"fmt"
	"io"
)

// Catalog is the document's root object (§3.3).
type Catalog struct {
	Pages Reference
}

func (c *Catalog) PDF(w io.Writer) error {
	return Dict{
		"Type":  Name("Catalog"),
		"Pages": c.Pages,
	}.PDF(w)
}

// PagesRoot is the single node of the page tree (§3.3): this translator
// never nests page trees, so every Page's parent is this one object.
type PagesRoot struct {
	Kids []Reference
}

func (p *PagesRoot) PDF(w io.Writer) error {
	kids := make(Array, len(p.Kids))
	for i, k := range p.Kids {
		kids[i] = k
	}
	return Dict{
		"Type":  Name("Pages"),
		"Kids":  kids,
		"Count": Integer(len(p.Kids)),
	}.PDF(w)
}

// FontSlot is one entry of a Page's /Resources /Font dictionary: the
// page-local slot name ("F0", "F1", ...) and the document font it names.
type FontSlot struct {
	Slot int
	Font Reference
}

// Page is one page of the document (§3.3). MediaBox is stored as whole
// points: page geometry in this translator is always requested by the
// front-end at PostScript-point precision (default 612x792, or the "X
// papersize" escape), and every worked example in §8 renders MediaBox
// without fractional digits even though the papersize itself arrives as
// a fixed-point value; a fixed.Decimal MediaBox would print "595.000"
// where the spec's own S2 scenario expects "595".
type Page struct {
	Parent   Reference
	Contents Reference
	Width    int
	Height   int
	Fonts    []FontSlot
}

func (p *Page) PDF(w io.Writer) error {
	fontDict := Dict{}
	for _, slot := range p.Fonts {
		fontDict[Name(slotName(slot.Slot))] = slot.Font
	}

	resources := Dict{
		"Font": fontDict,
	}

	return Dict{
		"Type":      Name("Page"),
		"Parent":    p.Parent,
		"Contents":  p.Contents,
		"MediaBox":  Array{Integer(0), Integer(0), Integer(p.Width), Integer(p.Height)},
		"Resources": resources,
	}.PDF(w)
}

func slotName(slot int) string {
	return fmt.Sprintf("F%d", slot)
}

// Font is a Type1 font resource naming one of the 14 standard base fonts
// (or a locally configured device font used by the same name); this
// translator never embeds a font program.
type Font struct {
	BaseFont string
}

func (f *Font) PDF(w io.Writer) error {
	return Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name(f.BaseFont),
	}.PDF(w)
}
