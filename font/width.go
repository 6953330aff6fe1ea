package font

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gropdf.dev/gropdf/errs"
)

// WidthTableSize is the number of character-code slots in a Table: codes
// 0 through 256 inclusive, per §3.2.
const WidthTableSize = 257

// Table is a dense character-code to glyph-advance-width mapping for one
// font, in font units. Codes with no entry in the description file read
// as zero.
type Table [WidthTableSize]int

// SearchPaths are the candidate roots searched, in order, for a font
// short name's description file, each extended by "font/devpdf/<short>".
// A reader implementation may override this with an environment variable;
// none is required here, so the list is fixed.
var SearchPaths = []string{
	"/usr/share/groff/current",
	"/usr/local/share/groff/current",
	"/opt/homebrew/share/groff/current",
}

// Read locates and parses the font description file for the given short
// name, returning its glyph-width table. It returns *errs.FontNotFound if
// no candidate path has the file, or *errs.ParseError if the charset
// section is malformed.
func Read(short string) (Table, error) {
	var tried []string
	for _, root := range SearchPaths {
		path := filepath.Join(root, "font", "devpdf", short)
		tried = append(tried, path)

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Table{}, &errs.IO{Err: err}
		}
		defer f.Close()

		return parse(f)
	}

	return Table{}, &errs.FontNotFound{Short: short, Paths: tried}
}

// parse reads a font description file already positioned at its start,
// skipping the header and parsing the charset section per §4.2.
func parse(r io.Reader) (Table, error) {
	var table Table

	scanner := bufio.NewScanner(r)
	lineNo := 0
	inCharset := false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !inCharset {
			if strings.TrimSpace(line) == "charset" {
				inCharset = true
			}
			continue
		}

		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			return Table{}, &errs.ParseError{Line: lineNo, Err: fmt.Errorf("malformed charset line: %q", line)}
		}

		metrics := fields[1]
		if metrics == `"` {
			// continuation line: this glyph shares the previous entry's
			// metrics and width, nothing more to record.
			continue
		}

		widthField := metrics
		if i := strings.IndexByte(metrics, ','); i >= 0 {
			widthField = metrics[:i]
		}
		width, err := strconv.Atoi(strings.TrimSpace(widthField))
		if err != nil {
			return Table{}, &errs.ParseError{Line: lineNo, Err: fmt.Errorf("bad width %q: %w", widthField, err)}
		}

		codeField := strings.TrimSpace(fields[3])
		code, err := strconv.Atoi(codeField)
		if err != nil {
			return Table{}, &errs.ParseError{Line: lineNo, Err: fmt.Errorf("bad code %q: %w", codeField, err)}
		}
		if code < 0 || code >= WidthTableSize {
			continue
		}

		table[code] = width
	}

	if err := scanner.Err(); err != nil {
		return Table{}, &errs.IO{Err: err}
	}

	return table, nil
}
