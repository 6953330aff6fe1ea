package pdf

import "io"

// DocumentFontHandle names a font registered at document scope: its
// index in the document's font list (§3.4).
type DocumentFontHandle int

type registeredFont struct {
	short  string
	number int
}

// PageHandle is a live handle to a page under construction. It wraps the
// serialized Page object and its not-yet-finalized content stream, plus
// the bookkeeping needed to enforce "at most one page-font slot per
// underlying document font per page" (§3.4).
type PageHandle struct {
	Number int

	page   *Page
	stream *Stream
	slots  map[DocumentFontHandle]int
}

// SetContent finalizes the page's content stream. It must be called
// exactly once, after the page's text has been fully built, since the
// stream's /Length is computed from the final byte slice (§5).
func (p *PageHandle) SetContent(data []byte) {
	p.stream.Data = data
}

// SetMediaBox overrides this page's media-box dimensions, for the "X
// papersize=" escape (§4.3) when it arrives while this page is current.
func (p *PageHandle) SetMediaBox(width, height int) {
	p.page.Width = width
	p.page.Height = height
}

// MediaBox reports this page's current media-box dimensions, in whole
// points.
func (p *PageHandle) MediaBox() (width, height int) {
	return p.page.Width, p.page.Height
}

// Document owns the linear, insertion-ordered list of indirect objects,
// the document-scope font list, the Pages root, and the Catalog (§3.4).
// The Pages root and Catalog are allocated at construction, so an empty
// document (no pages, no fonts) still serializes to a valid PDF (§8
// property 11).
type Document struct {
	objects []Object

	catalogNumber   int
	pagesRootNumber int
	pagesRoot       *PagesRoot

	fonts    []registeredFont
	fontByID map[string]DocumentFontHandle
}

// NewDocument creates an empty document: a Catalog pointing at an empty
// Pages root.
func NewDocument() *Document {
	d := &Document{fontByID: make(map[string]DocumentFontHandle)}

	catalog := &Catalog{}
	d.catalogNumber = d.alloc(catalog)

	d.pagesRoot = &PagesRoot{}
	d.pagesRootNumber = d.alloc(d.pagesRoot)

	catalog.Pages = Reference{Number: d.pagesRootNumber}

	return d
}

func (d *Document) alloc(obj Object) int {
	d.objects = append(d.objects, obj)
	return len(d.objects)
}

// RegisterFont returns the document-scope handle for the font named by
// short, registering a new Font indirect object the first time short is
// seen. Repeated registrations of the same short name return the same
// handle rather than emitting a duplicate Font object.
func (d *Document) RegisterFont(short, baseFontName string) DocumentFontHandle {
	if handle, ok := d.fontByID[short]; ok {
		return handle
	}

	number := d.alloc(&Font{BaseFont: baseFontName})
	handle := DocumentFontHandle(len(d.fonts))
	d.fonts = append(d.fonts, registeredFont{short: short, number: number})
	d.fontByID[short] = handle

	return handle
}

// AddPage creates a new page with the given media-box dimensions (in
// whole points) and an empty content stream, and links it into the
// Pages root's Kids array.
func (d *Document) AddPage(width, height int) *PageHandle {
	page := &Page{
		Parent: Reference{Number: d.pagesRootNumber},
		Width:  width,
		Height: height,
	}
	pageNumber := d.alloc(page)

	stream := &Stream{}
	streamNumber := d.alloc(stream)
	page.Contents = Reference{Number: streamNumber}

	d.pagesRoot.Kids = append(d.pagesRoot.Kids, Reference{Number: pageNumber})

	return &PageHandle{Number: pageNumber, page: page, stream: stream}
}

// PageFont returns the page-local slot for a document font, allocating a
// new slot the first time this document font is used on this page.
func (d *Document) PageFont(p *PageHandle, doc DocumentFontHandle) int {
	if p.slots == nil {
		p.slots = make(map[DocumentFontHandle]int)
	}
	if slot, ok := p.slots[doc]; ok {
		return slot
	}

	slot := len(p.page.Fonts)
	p.page.Fonts = append(p.page.Fonts, FontSlot{
		Slot: slot,
		Font: Reference{Number: d.fonts[doc].number},
	})
	p.slots[doc] = slot

	return slot
}

// Serialize writes the complete document to w: header, every indirect
// object in insertion order, the cross-reference table, and the trailer
// (§4.6). It is a single finalization pass, called once all pages have
// had their content finalized with SetContent.
func (d *Document) Serialize(w io.Writer) error {
	pw, err := NewWriter(w)
	if err != nil {
		return err
	}

	for i, obj := range d.objects {
		if err := pw.WriteObject(i+1, obj); err != nil {
			return err
		}
	}

	return pw.Close(Reference{Number: d.catalogNumber})
}
