package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmptyDocumentSerializes(t *testing.T) {
	doc := NewDocument()
	var buf bytes.Buffer
	if err := doc.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "/Type /Catalog") {
		t.Error("missing Catalog object")
	}
	if !strings.Contains(out, "/Count 0") {
		t.Error("empty Pages root should report /Count 0")
	}
}

func TestRegisterFontDedupsByShortName(t *testing.T) {
	doc := NewDocument()
	a := doc.RegisterFont("TR", "Times-Roman")
	b := doc.RegisterFont("TR", "Times-Roman")
	if a != b {
		t.Errorf("RegisterFont(\"TR\") returned distinct handles %v, %v", a, b)
	}
	if len(doc.fonts) != 1 {
		t.Errorf("len(fonts) = %d, want 1", len(doc.fonts))
	}
}

func TestPageFontReusesSlotPerPage(t *testing.T) {
	doc := NewDocument()
	font := doc.RegisterFont("TR", "Times-Roman")
	page := doc.AddPage(612, 792)

	slot1 := doc.PageFont(page, font)
	slot2 := doc.PageFont(page, font)
	if slot1 != slot2 {
		t.Errorf("PageFont returned distinct slots %d, %d for the same document font on the same page", slot1, slot2)
	}
	if len(page.page.Fonts) != 1 {
		t.Errorf("page should have exactly one font slot, got %d", len(page.page.Fonts))
	}
}

func TestPageFontSlotsAreIndependentPerPage(t *testing.T) {
	doc := NewDocument()
	font := doc.RegisterFont("TR", "Times-Roman")
	page1 := doc.AddPage(612, 792)
	page2 := doc.AddPage(612, 792)

	doc.PageFont(page1, font)
	doc.PageFont(page2, font)

	if len(page1.page.Fonts) != 1 || len(page2.page.Fonts) != 1 {
		t.Error("each page should register its own font slot independently")
	}
}

func TestSetMediaBoxOverridesPageDimensions(t *testing.T) {
	doc := NewDocument()
	page := doc.AddPage(612, 792)
	page.SetMediaBox(595, 842)

	w, h := page.MediaBox()
	if w != 595 || h != 842 {
		t.Errorf("MediaBox() = (%d, %d), want (595, 842)", w, h)
	}
}

func TestTwoPagesAppearInPagesKidsInOrder(t *testing.T) {
	doc := NewDocument()
	p1 := doc.AddPage(612, 792)
	p2 := doc.AddPage(612, 792)

	if len(doc.pagesRoot.Kids) != 2 {
		t.Fatalf("len(Kids) = %d, want 2", len(doc.pagesRoot.Kids))
	}
	if doc.pagesRoot.Kids[0].Number != p1.Number || doc.pagesRoot.Kids[1].Number != p2.Number {
		t.Error("Kids order does not match page creation order")
	}
}
