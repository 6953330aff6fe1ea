package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterHeaderAndTrailer(t *testing.T) {
	var buf bytes.Buffer
	pw, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	if err := pw.WriteObject(1, &Catalog{Pages: Reference{Number: 2}}); err != nil {
		t.Fatalf("WriteObject: %v", err)
	}
	if err := pw.WriteObject(2, &PagesRoot{}); err != nil {
		t.Fatalf("WriteObject: %v", err)
	}
	if err := pw.Close(Reference{Number: 1}); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.1\n") {
		t.Errorf("missing header, got %q", out[:20])
	}
	if !strings.Contains(out, "1 0 obj\n") || !strings.Contains(out, "2 0 obj\n") {
		t.Error("missing object headers")
	}
	if !strings.Contains(out, "xref\n0 3\n") {
		t.Errorf("wrong xref subsection size, got:\n%s", out)
	}
	if !strings.Contains(out, "/Size 3") {
		t.Errorf("wrong trailer Size, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		msg := "output does not end with %%EOF"
		t.Error(msg)
	}
}

func TestWriterRejectsOutOfOrderObjectNumbers(t *testing.T) {
	var buf bytes.Buffer
	pw, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := pw.WriteObject(2, &Catalog{}); err == nil {
		t.Fatal("expected an error writing object 2 before object 1")
	}
}

func TestOffsetsMatchObjectPositions(t *testing.T) {
	var buf bytes.Buffer
	pw, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := pw.WriteObject(1, Integer(42)); err != nil {
		t.Fatalf("WriteObject: %v", err)
	}
	want := int64(len("%PDF-1.1\n%\x80\x80\x80\x80\n"))
	if pw.offsets[0] != want {
		t.Errorf("offsets[0] = %d, want %d", pw.offsets[0], want)
	}
}
