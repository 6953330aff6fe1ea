package font

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCharset(t *testing.T) {
	data := `name	TimesRoman
special	x
charset
space	278,32	0	32	space
A	722	0	65	capital A
B	"		66	continuation of A, same width
hyphen	333	0	45	hyphen
`
	table, err := parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var want Table
	want[32] = 278
	want[65] = 722
	want[45] = 333
	// code 66 is a continuation line and records no width of its own.

	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("parsed table differs from expected (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	data := "charset\nA\tonly\ttwo\n"
	_, err := parse(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected a parse error for a short charset line")
	}
}

func TestParseSkipsHeader(t *testing.T) {
	data := "this is ignored\ncharset\nspace\t278\t0\t32\tspace\n"
	table, err := parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table[32] != 278 {
		t.Errorf("table[32] = %d, want 278", table[32])
	}
}

func TestBaseFontName(t *testing.T) {
	if got, want := BaseFontName("TR"), "Times-Roman"; got != want {
		t.Errorf("BaseFontName(TR) = %q, want %q", got, want)
	}
	if got, want := BaseFontName("ZZ"), "ZZ"; got != want {
		t.Errorf("BaseFontName(ZZ) = %q, want %q", got, want)
	}
}
