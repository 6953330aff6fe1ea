// Command gropdf is the "pdf" groff output-device driver: it reads an
// intermediate-language document on stdin and writes a self-contained
// PDF 1.1 file on stdout (§6.1).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"gropdf.dev/gropdf/dispatch"
)

func main() {
	os.Exit(run())
}

// run contains the entire program body so that main's only job is the
// single os.Exit call site; every other exit path returns a status
// instead of calling os.Exit directly.
func run() int {
	fs := flag.NewFlagSet("gropdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	debug := fs.Bool("d", false, "print a trace of every dispatched command to stderr")
	warn := fs.Bool("w", false, "print non-fatal warnings to stderr")

	// Unrecognized flags are warned about and otherwise ignored rather
	// than aborting the run (§6.1): groff's output-device drivers are
	// invoked with a shared flag set that grows over time, and a driver
	// that doesn't yet understand a new flag should still produce output.
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gropdf: %v, continuing with defaults\n", err)
	}

	colorize := term.IsTerminal(int(os.Stderr.Fd()))
	logger := log.New(os.Stderr, "", 0)

	var debugf, warnf dispatch.Logf
	if *debug {
		debugf = makeLogf(logger, colorize, "debug")
	}
	if *warn {
		warnf = makeLogf(logger, colorize, "warning")
	}

	d := dispatch.New(debugf, warnf)
	if err := d.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gropdf: %v\n", err)
		return 1
	}
	return 0
}

func makeLogf(logger *log.Logger, colorize bool, label string) dispatch.Logf {
	prefix := label + ": "
	if colorize {
		const (
			yellow = "\x1b[33m"
			reset  = "\x1b[0m"
		)
		prefix = yellow + label + ":" + reset + " "
	}
	return func(format string, args ...any) {
		logger.Printf(prefix+format, args...)
	}
}
