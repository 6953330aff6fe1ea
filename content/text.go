// Package content implements the per-page text-content builder (§3.5,
// §4.5): it accumulates glyph bytes into PDF text-showing operators,
// tracks the text cursor in fixed-point user-space coordinates, and
// emits compacted positioning operators, wrapping the whole thing in a
// BT/ET text object once the page is done.
package content

import (
	"bytes"
	"fmt"

	"gropdf.dev/gropdf/fixed"
)

// Builder accumulates the operator lines of one page's text object. The
// dispatcher owns font selection, glyph-width lookup, and unit-scale
// conversion (§4.4); Builder only tracks the resulting cursor position
// and emits operators, suppressing the redundant ones §4.5 calls out.
type Builder struct {
	ops  bytes.Buffer
	word []byte

	e, f fixed.Decimal
	w    fixed.Decimal
	wSet bool

	lastE, lastF fixed.Decimal
	tmSet        bool
}

// New returns an empty Builder positioned at the origin.
func New() *Builder {
	return &Builder{}
}

// Flush emits the buffered word, if any, as a single "(...) Tj" operator.
func (b *Builder) Flush() {
	if len(b.word) == 0 {
		return
	}
	fmt.Fprintf(&b.ops, "(%s) Tj\n", escapeString(b.word))
	b.word = b.word[:0]
}

// AddGlyphs appends bytes to the current word and advances the cursor by
// advance, per the word-advance rule of §4.5.
func (b *Builder) AddGlyphs(glyphs []byte, advance fixed.Decimal) {
	b.word = append(b.word, glyphs...)
	b.e = b.e.Add(advance)
}

// AddGlyphsWithoutMove appends bytes to the current word without moving
// the cursor. Every "C" special glyph, recognized or not, goes through
// this path (§4.4, §8 S3): the bytes are still shown, but e must not
// advance, since the next positioning command is assumed to already
// account for the movement.
func (b *Builder) AddGlyphsWithoutMove(glyphs []byte) {
	b.word = append(b.word, glyphs...)
}

// MoveRelativeH flushes the current word, advances e by delta, and
// re-emits the text matrix if it changed (§4.4 "h"/"wh").
func (b *Builder) MoveRelativeH(delta fixed.Decimal) {
	b.Flush()
	b.e = b.e.Add(delta)
	b.emitMatrixIfChanged()
}

// MoveAbsoluteH flushes the current word, sets e, and re-emits the text
// matrix if it changed (§4.4 "H").
func (b *Builder) MoveAbsoluteH(e fixed.Decimal) {
	b.Flush()
	b.e = e
	b.emitMatrixIfChanged()
}

// MoveAbsoluteV flushes the current word, sets f, and re-emits the text
// matrix if it changed (§4.4 "V"). Flushing here is not spelled out
// explicitly by §4.4's "V" bullet, but is required by the general rule
// of §4.5 that any change to e or f keeps the cursor invariant intact:
// without it, glyphs buffered before a mid-word vertical jump would be
// shown at the new position instead of the one they were laid out at.
func (b *Builder) MoveAbsoluteV(f fixed.Decimal) {
	b.Flush()
	b.f = f
	b.emitMatrixIfChanged()
}

// SetWordSpacing flushes the current word and emits "Tw" if the value
// actually changed (§4.5). This is invoked by the dispatcher when a
// "w"-prefixed horizontal move re-dispatches as "h" (§4.3, §4.4).
// Flushing first keeps the word typeset before this call out of the new
// spacing's scope, the same invariant Move*/SetFont already preserve.
func (b *Builder) SetWordSpacing(w fixed.Decimal) {
	if b.wSet && w == b.w {
		return
	}
	b.Flush()
	b.w = w
	b.wSet = true
	fmt.Fprintf(&b.ops, "%s Tw\n", w)
}

// SetFont flushes the current word and emits "/F<slot> <size>. Tf".
// Unlike the text matrix, successive identical font selections are not
// suppressed (§4.4, §9): a caller re-selecting the same font at the same
// size still gets a fresh Tf, since callers only re-select on an actual
// "f" or "s" command.
func (b *Builder) SetFont(slot, size int) {
	b.Flush()
	fmt.Fprintf(&b.ops, "/F%d %d. Tf\n", slot, size)
}

func (b *Builder) emitMatrixIfChanged() {
	if b.tmSet && b.e == b.lastE && b.f == b.lastF {
		return
	}
	fmt.Fprintf(&b.ops, "1 0 0 1 %s %s Tm\n", b.e, b.f)
	b.lastE, b.lastF = b.e, b.f
	b.tmSet = true
}

// E and F report the current cursor position, for callers verifying the
// cursor invariant (§8 property 7).
func (b *Builder) E() fixed.Decimal { return b.e }
func (b *Builder) F() fixed.Decimal { return b.f }

// Bytes finalizes the text object: flushes any pending word and wraps
// the accumulated operators in "BT" ... "ET".
func (b *Builder) Bytes() []byte {
	b.Flush()

	var out bytes.Buffer
	out.WriteString("BT\n")
	out.Write(b.ops.Bytes())
	out.WriteString("ET\n")
	return out.Bytes()
}

func escapeString(word []byte) []byte {
	var out bytes.Buffer
	for _, ch := range word {
		switch ch {
		case '(', ')', '\\':
			out.WriteByte('\\')
			out.WriteByte(ch)
		default:
			out.WriteByte(ch)
		}
	}
	return out.Bytes()
}
