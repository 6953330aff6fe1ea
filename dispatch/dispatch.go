// Package dispatch implements the command dispatcher of §4.4: the state
// machine that turns a stream of intermediate-language lines into calls
// against the PDF document builder and the per-page text-content
// builder, owning the cursor, font, and page-lifecycle state along the
// way.
package dispatch

import (
	"fmt"
	"io"
	"strings"

	pdf "gropdf.dev/gropdf"
	"gropdf.dev/gropdf/content"
	"gropdf.dev/gropdf/errs"
	"gropdf.dev/gropdf/fixed"
	"gropdf.dev/gropdf/font"
	"gropdf.dev/gropdf/intermediate"
)

// state is the dispatcher's observable position in the document
// lifecycle (§4.4): pre-document, in-document-no-page, or in-page.
// There is no separate type for "in page" vs "no page" beyond whether
// currentPage is nil, since that single pointer already carries the
// distinction.
type state int

const (
	statePreDocument state = iota
	stateInDocument
)

func (s state) String() string {
	if s == statePreDocument {
		return "pre-document"
	}
	return "in-document"
}

// specialGlyphs maps the two-letter names recognized by the "C" command
// to their PDF StandardEncoding code (§4.4).
var specialGlyphs = map[string]byte{
	"hy": 45,
	"lq": 141,
	"rq": 142,
	"fi": 174,
	"fl": 175,
	"cq": 169,
}

type mountedFont struct {
	doc   pdf.DocumentFontHandle
	table font.Table
}

const defaultFontSize = 11
const defaultPageWidth = 612
const defaultPageHeight = 792

// Logf is the shape of a diagnostic sink for the "-d" and "-w" flags
// (§6.1). A nil Logf is a valid, silent sink.
type Logf func(format string, args ...any)

// Dispatcher drives one run of the translator from an intermediate
// stream to a finished pdf.Document.
type Dispatcher struct {
	doc   *pdf.Document
	debug Logf
	warn  Logf

	state     state
	device    string
	unitScale int

	fontCache   map[string]font.Table // short name -> width table, loaded at most once per run
	fontsByNum  map[int]mountedFont   // grout font number -> mounted font
	currentFont int                   // grout font number currently selected, -1 if none
	currentSize int
	currentSlot int // page-font slot currently selected, -1 if none

	pageWidth, pageHeight int // carried-forward media-box default

	currentPage *pdf.PageHandle
	builder     *content.Builder
}

// New returns a Dispatcher ready to process an intermediate stream.
// Either logger may be nil to discard that diagnostic stream.
func New(debug, warn Logf) *Dispatcher {
	if debug == nil {
		debug = func(string, ...any) {}
	}
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Dispatcher{
		doc:         pdf.NewDocument(),
		debug:       debug,
		warn:        warn,
		state:       statePreDocument,
		fontCache:   make(map[string]font.Table),
		fontsByNum:  make(map[int]mountedFont),
		currentFont: -1,
		currentSize: defaultFontSize,
		currentSlot: -1,
		unitScale:   1, // overwritten by "x res"; never left at zero, since fixed.From divides by it
		pageWidth:   defaultPageWidth,
		pageHeight:  defaultPageHeight,
	}
}

// Run processes every line of r and, on success, serializes the
// resulting document to w. A fatal error (§7) aborts before any bytes
// are written to w. If the stream never reaches "x init", Run writes
// nothing at all and returns nil (§8 property 10): there is no document
// to serialize.
func (d *Dispatcher) Run(r io.Reader, w io.Writer) error {
	scanner := intermediate.NewScanner(r)

	for {
		line, ok := scanner.Next()
		if !ok {
			break
		}
		if err := d.dispatch(line); err != nil {
			if f, isFatal := err.(errs.Fatal); isFatal && f.Fatal() {
				return err
			}
			d.warn("%v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if d.state == statePreDocument {
		return nil
	}

	if d.currentPage != nil {
		d.currentPage.SetContent(d.builder.Bytes())
	}
	return d.doc.Serialize(w)
}

// dispatch processes one already-comment-stripped line, including the
// re-dispatched remainder of a "w"-prefixed line (§4.3); the inter-word
// gap update for that case happens in dispatchWordGap before the
// remainder reaches here.
func (d *Dispatcher) dispatch(line intermediate.Line) error {
	if line.Text == "" {
		return nil
	}
	letter := line.Text[0]
	rest := line.Text[1:]

	d.debug("line %d: %q (state=%s)", line.Number, line.Text, d.state)

	switch letter {
	case 'w':
		return d.dispatchWordGap(line, rest)
	case 'x':
		return d.dispatchX(line, rest)
	case 'p':
		return d.dispatchBeginPage(line)
	case 'f':
		return d.dispatchSelectFont(line, rest)
	case 's':
		return d.dispatchSetSize(line, rest)
	case 't':
		return d.dispatchTypesetWord(line, rest)
	case 'C':
		return d.dispatchSpecialGlyph(line, rest)
	case 'D':
		return nil // drawing: out of scope, parsed-and-ignored
	case 'h':
		return d.dispatchRelativeH(line, rest)
	case 'v':
		if err := d.requireInPage(line); err != nil {
			return err
		}
		d.warn("line %d: 'v' (relative vertical move) is not supported and was ignored", line.Number)
		return nil
	case 'H':
		return d.dispatchAbsoluteH(line, rest)
	case 'V':
		return d.dispatchAbsoluteV(line, rest)
	case 'n':
		if err := d.requireInPage(line); err != nil {
			return err
		}
		d.builder.Flush()
		return nil
	case 'm':
		return nil // color: out of scope, parsed-and-ignored
	default:
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("unknown command letter %q", letter)}
	}
}

func (d *Dispatcher) dispatchWordGap(line intermediate.Line, rest string) error {
	if rest == "" {
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'w' with no following command")}
	}

	inner := intermediate.Line{Number: line.Number, Text: rest}

	if rest[0] == 'h' {
		n, err := d.parseNumber(line, rest[1:])
		if err == nil && d.currentPage != nil {
			d.builder.SetWordSpacing(fixed.From(n, d.unitScale))
		}
	}

	return d.dispatch(inner)
}

func (d *Dispatcher) dispatchX(line intermediate.Line, rest string) error {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'x' with no sub-command")}
	}

	switch fields[0] {
	case "init":
		d.state = stateInDocument
		return nil

	case "res":
		if len(fields) < 2 {
			return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'x res' missing resolution argument")}
		}
		n, err := d.parseNumber(line, fields[1])
		if err != nil {
			return err
		}
		if n <= 0 {
			return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'x res' resolution must be positive, got %d", n)}
		}
		d.unitScale = n / 72
		if d.unitScale <= 0 {
			d.unitScale = 1
		}
		return nil

	case "T":
		if len(fields) < 2 {
			return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'x T' missing device name")}
		}
		d.device = fields[1]
		if d.device != "pdf" {
			return &errs.WrongDevice{Device: d.device}
		}
		return nil

	case "font":
		return d.dispatchMountFont(line, fields)

	case "X":
		return d.dispatchEscape(line, fields)

	case "trailer", "stop":
		return nil

	default:
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("unknown 'x' sub-command %q", fields[0])}
	}
}

func (d *Dispatcher) dispatchMountFont(line intermediate.Line, fields []string) error {
	if len(fields) < 3 {
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'x font' needs a slot number and a short name")}
	}
	n, err := d.parseNumber(line, fields[1])
	if err != nil {
		return err
	}
	short := fields[2]

	table, ok := d.fontCache[short]
	if !ok {
		table, err = font.Read(short)
		if err != nil {
			return err
		}
		d.fontCache[short] = table
	}

	docHandle := d.doc.RegisterFont(short, font.BaseFontName(short))
	d.fontsByNum[n] = mountedFont{doc: docHandle, table: table}
	return nil
}

func (d *Dispatcher) dispatchEscape(line intermediate.Line, fields []string) error {
	if len(fields) < 2 {
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("'x X' with no payload")}
	}
	payload := strings.Join(fields[1:], " ")

	const prefix = "papersize="
	if !strings.HasPrefix(payload, prefix) {
		// Only the papersize payload is recognized; anything else is a
		// silently accepted escape, matching §4.3's "sole recognized
		// payload" wording without treating every other escape as fatal.
		return nil
	}

	dims := strings.Split(strings.TrimPrefix(payload, prefix), ",")
	if len(dims) != 2 {
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("malformed papersize payload %q", payload)}
	}

	wn, err := d.parseNumber(line, dims[0])
	if err != nil {
		return err
	}
	hn, err := d.parseNumber(line, dims[1])
	if err != nil {
		return err
	}

	width := fixed.From(wn, d.unitScale).Integer
	height := fixed.From(hn, d.unitScale).Integer

	d.pageWidth, d.pageHeight = width, height
	if d.currentPage != nil {
		d.currentPage.SetMediaBox(width, height)
	}
	return nil
}

func (d *Dispatcher) dispatchBeginPage(line intermediate.Line) error {
	if err := d.requireInDocument(line); err != nil {
		return err
	}

	if d.currentPage != nil {
		d.currentPage.SetContent(d.builder.Bytes())
	}

	d.currentPage = d.doc.AddPage(d.pageWidth, d.pageHeight)
	d.builder = content.New()
	d.currentSlot = -1

	return nil
}

func (d *Dispatcher) dispatchSelectFont(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	n, err := d.parseNumber(line, rest)
	if err != nil {
		return err
	}

	mounted, ok := d.fontsByNum[n]
	if !ok {
		return &errs.ParseError{Line: line.Number, Err: fmt.Errorf("font slot %d was never mounted with 'x font'", n)}
	}

	slot := d.doc.PageFont(d.currentPage, mounted.doc)
	d.currentFont = n
	d.currentSlot = slot
	d.builder.SetFont(slot, d.currentSize)
	return nil
}

func (d *Dispatcher) dispatchSetSize(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	n, err := d.parseNumber(line, rest)
	if err != nil {
		return err
	}

	d.currentSize = n / d.unitScale
	if d.currentSlot >= 0 {
		d.builder.SetFont(d.currentSlot, d.currentSize)
	}
	return nil
}

func (d *Dispatcher) dispatchTypesetWord(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	if d.currentFont == -1 {
		return &errs.StateViolation{Command: "t", State: "no font selected"}
	}

	glyphs := []byte(rest)
	table := d.fontsByNum[d.currentFont].table

	advance := fixed.Decimal{}
	for _, b := range glyphs {
		width := int(table[b])
		advance = advance.Add(fixed.From(width*d.currentSize, d.unitScale))
	}
	d.builder.AddGlyphs(glyphs, advance)
	return nil
}

func (d *Dispatcher) dispatchSpecialGlyph(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	if d.currentFont == -1 {
		return &errs.StateViolation{Command: "C", State: "no font selected"}
	}

	code, ok := specialGlyphs[rest]
	if !ok {
		d.warn("line %d: unknown special glyph %q, appending raw bytes without advancing the cursor", line.Number, rest)
		d.builder.AddGlyphsWithoutMove([]byte(rest))
		return nil
	}

	// Per §4.4, a "C" glyph never advances e, known name or not: the
	// following positioning command is assumed to already account for it.
	d.builder.AddGlyphsWithoutMove([]byte{code})
	return nil
}

func (d *Dispatcher) dispatchRelativeH(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	n, err := d.parseNumber(line, rest)
	if err != nil {
		return err
	}
	d.builder.MoveRelativeH(fixed.From(n, d.unitScale))
	return nil
}

func (d *Dispatcher) dispatchAbsoluteH(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	n, err := d.parseNumber(line, rest)
	if err != nil {
		return err
	}
	d.builder.MoveAbsoluteH(fixed.From(n, d.unitScale))
	return nil
}

func (d *Dispatcher) dispatchAbsoluteV(line intermediate.Line, rest string) error {
	if err := d.requireInPage(line); err != nil {
		return err
	}
	n, err := d.parseNumber(line, rest)
	if err != nil {
		return err
	}

	v := fixed.From(n, d.unitScale)
	_, height := d.currentPage.MediaBox()
	if v.Integer > height || (v.Integer == height && v.Fraction > 0) {
		d.warn("line %d: V position %s exceeds page height %d, ignoring", line.Number, v, height)
		return nil
	}

	d.builder.MoveAbsoluteV(v.SubtractFrom(height))
	return nil
}

func (d *Dispatcher) parseNumber(line intermediate.Line, s string) (int, error) {
	n, err := intermediate.ParseNumber(s)
	if err != nil {
		return 0, &errs.ParseError{Line: line.Number, Err: fmt.Errorf("bad numeric argument %q: %w", s, err)}
	}
	return n, nil
}

func (d *Dispatcher) requireInDocument(line intermediate.Line) error {
	if d.state == statePreDocument {
		return &errs.StateViolation{Command: string(line.Text[0]), State: d.state.String()}
	}
	return nil
}

func (d *Dispatcher) requireInPage(line intermediate.Line) error {
	if d.currentPage == nil {
		return &errs.StateViolation{Command: string(line.Text[0]), State: "no page"}
	}
	return nil
}
