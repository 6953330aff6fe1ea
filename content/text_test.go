package content

import (
	"strings"
	"testing"

	"gropdf.dev/gropdf/fixed"
)

func TestBasicWordShow(t *testing.T) {
	b := New()
	b.SetFont(0, 11)
	b.MoveAbsoluteV(fixed.From(692000, 1000))
	b.MoveAbsoluteH(fixed.From(72000, 1000))
	b.AddGlyphs([]byte("hello"), fixed.Decimal{Integer: 30, Fraction: 0})
	out := string(b.Bytes())

	for _, want := range []string{"BT\n", "/F0 11. Tf\n", "692.000", "72.000", "Tm\n", "(hello) Tj", "ET\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDuplicateMatrixSuppressed(t *testing.T) {
	b := New()
	e := fixed.Decimal{Integer: 10}
	f := fixed.Decimal{Integer: 20}
	b.MoveAbsoluteH(e)
	b.MoveAbsoluteV(f)
	b.AddGlyphs([]byte("a"), fixed.Decimal{})
	b.MoveAbsoluteH(e) // e unchanged, f unchanged -> no new Tm
	out := string(b.Bytes())

	// One Tm for the first H, one for the V that changes f, none for the
	// final H that leaves the matrix as it was.
	if got := strings.Count(out, "Tm"); got != 2 {
		t.Errorf("Tm count = %d, want 2 (the unchanged matrix must not add a third); output: %q", got, out)
	}
}

func TestUnknownGlyphDoesNotAdvance(t *testing.T) {
	b := New()
	before := b.E()
	b.AddGlyphsWithoutMove([]byte("xy"))
	if b.E() != before {
		t.Errorf("E() = %v after AddGlyphsWithoutMove, want unchanged %v", b.E(), before)
	}
}

func TestWordSpacingOnlyEmittedOnChange(t *testing.T) {
	b := New()
	b.SetWordSpacing(fixed.Decimal{Integer: 2, Fraction: 750})
	b.SetWordSpacing(fixed.Decimal{Integer: 2, Fraction: 750})
	b.SetWordSpacing(fixed.Decimal{Integer: 3, Fraction: 0})
	out := string(b.Bytes())

	if got := strings.Count(out, "Tw"); got != 2 {
		t.Errorf("Tw count = %d, want 2; output: %q", got, out)
	}
}

func TestFontSelectionNeverSuppressed(t *testing.T) {
	b := New()
	b.SetFont(0, 11)
	b.SetFont(0, 11)
	out := string(b.Bytes())

	if got := strings.Count(out, "Tf"); got != 2 {
		t.Errorf("Tf count = %d, want 2 (duplicate selections are not suppressed); output: %q", got, out)
	}
}
