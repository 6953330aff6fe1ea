// Package intermediate implements the line-oriented tokens of the
// typesetting front-end's intermediate language (§4.3, §6.2): reading
// lines from the input stream, skipping comment/continuation markers,
// and parsing the scaled-integer argument grammar shared by most
// commands.
package intermediate

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"gropdf.dev/gropdf/errs"
)

// Line is one non-comment, non-empty input line, with its 1-based line
// number for diagnostics.
type Line struct {
	Number int
	Text   string
}

// Scanner reads intermediate-language lines from an io.Reader, skipping
// "+"-prefixed comment/continuation lines. Per §4.3, an empty line
// terminates input, so Scanner.Next returns false at the first empty
// line exactly as it does at end-of-file; the two are indistinguishable
// to a caller, by design.
type Scanner struct {
	scanner *bufio.Scanner
	lineNo  int
	err     error
}

// NewScanner returns a Scanner reading lines from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// Next advances to the next command line, skipping comments, and
// reports whether one was found. It returns false both at end-of-input
// and at the first empty line (§4.3).
func (s *Scanner) Next() (Line, bool) {
	for s.scanner.Scan() {
		s.lineNo++
		text := s.scanner.Text()

		if text == "" {
			return Line{}, false
		}
		if text[0] == '+' {
			continue
		}

		return Line{Number: s.lineNo, Text: text}, true
	}

	if err := s.scanner.Err(); err != nil {
		s.err = &errs.IO{Err: err}
	}
	return Line{}, false
}

// Err returns the first I/O error encountered, if any. It is nil after a
// clean end-of-input or an empty-line terminator.
func (s *Scanner) Err() error {
	return s.err
}

// ParseNumber parses a scaled-integer argument: unsigned decimal digits,
// with an optional trailing "z" tag stripped before parsing (§4.3,
// §6.2).
func ParseNumber(s string) (int, error) {
	s = strings.TrimSuffix(s, "z")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
