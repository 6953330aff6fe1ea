package pdf

import (
	"fmt"
	"io"
)

// Stream is a content-stream indirect object. Data must be fully
// materialized before the stream is written, since the dictionary's
// /Length entry must equal the exact byte length of the data (§5): this
// translator builds each page's content into an in-memory buffer via
// content.Builder and only converts it to a Stream once the page is
// complete.
type Stream struct {
	Data []byte
}

func (s *Stream) PDF(w io.Writer) error {
	dict := Dict{
		"Length": Integer(len(s.Data)),
	}
	if err := dict.PDF(w); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(s.Data); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\nendstream")
	return err
}
