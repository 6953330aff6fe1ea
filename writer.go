package pdf

import (
	"fmt"
	"io"

	"gropdf.dev/gropdf/errs"
)

// Writer serializes a classic (pre-1.5), non-encrypted, non-compressed
// PDF file: a header, a run of numbered indirect objects, a single
// cross-reference table, and a trailer (§4.6).
type Writer struct {
	w       *offsetWriter
	offsets []int64 // offsets[i] is object number i+1's starting byte offset
}

// NewWriter writes the file header and returns a Writer ready to accept
// indirect objects.
func NewWriter(w io.Writer) (*Writer, error) {
	pw := &Writer{w: &offsetWriter{w: w}}
	if _, err := fmt.Fprint(pw.w, "%PDF-1.1\n%\x80\x80\x80\x80\n"); err != nil {
		return nil, &errs.IO{Err: err}
	}
	return pw, nil
}

// WriteObject writes one indirect object. Object numbers must be written
// in order starting at 1: the Writer does not support writing object N+1
// before object N.
func (pw *Writer) WriteObject(number int, body Object) error {
	if number != len(pw.offsets)+1 {
		return fmt.Errorf("gropdf: internal error: object numbers must be written densely from 1, got %d after %d objects", number, len(pw.offsets))
	}

	pw.offsets = append(pw.offsets, pw.w.pos)

	if _, err := fmt.Fprintf(pw.w, "%d 0 obj\n", number); err != nil {
		return &errs.IO{Err: err}
	}
	if err := body.PDF(pw.w); err != nil {
		return &errs.IO{Err: err}
	}
	if _, err := fmt.Fprint(pw.w, "\nendobj\n"); err != nil {
		return &errs.IO{Err: err}
	}
	return nil
}

// Close writes the cross-reference table and trailer and points
// "startxref" at it. catalog must reference an object already written
// with WriteObject.
func (pw *Writer) Close(catalog Reference) error {
	n := len(pw.offsets)
	xrefPos := pw.w.pos

	if _, err := fmt.Fprintf(pw.w, "xref\n0 %d\n", n+1); err != nil {
		return &errs.IO{Err: err}
	}
	if _, err := fmt.Fprint(pw.w, "0000000000 65535 f\r\n"); err != nil {
		return &errs.IO{Err: err}
	}
	for _, offset := range pw.offsets {
		if _, err := fmt.Fprintf(pw.w, "%010d 00000 n\r\n", offset); err != nil {
			return &errs.IO{Err: err}
		}
	}

	trailer := Dict{
		"Root": catalog,
		"Size": Integer(n + 1),
	}
	if _, err := fmt.Fprint(pw.w, "trailer\n"); err != nil {
		return &errs.IO{Err: err}
	}
	if err := trailer.PDF(pw.w); err != nil {
		return &errs.IO{Err: err}
	}

	if _, err := fmt.Fprintf(pw.w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos); err != nil {
		return &errs.IO{Err: err}
	}
	return nil
}

// offsetWriter wraps an io.Writer, tracking the total number of bytes
// written so object offsets can be recorded exactly as they are emitted.
type offsetWriter struct {
	w   io.Writer
	pos int64
}

func (o *offsetWriter) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	o.pos += int64(n)
	return n, err
}
