// Package errs defines the error taxonomy shared by every stage of the
// translator: the font reader, the intermediate-language scanner, the
// command dispatcher, and the PDF serializer all report failures using
// these few kinds, so that a caller can decide fatal-vs-warning through
// the Fatal interface instead of inspecting error strings.
package errs

import "fmt"

// Fatal reports whether an error should abort the run with exit status 1.
// Non-fatal errors (currently only *ParseError) are warned on stderr and
// the offending line is skipped.
type Fatal interface {
	error
	Fatal() bool
}

// WrongDevice is raised when the intermediate stream names a typesetter
// device other than "pdf" in its "x T" command.
type WrongDevice struct {
	Device string
}

func (e *WrongDevice) Error() string {
	return fmt.Sprintf("wrong device %q, this translator only supports %q", e.Device, "pdf")
}

func (e *WrongDevice) Fatal() bool { return true }

// FontNotFound is raised when a font short name has no description file on
// any candidate search path.
type FontNotFound struct {
	Short string
	Paths []string
}

func (e *FontNotFound) Error() string {
	return fmt.Sprintf("font %q not found on any of %v", e.Short, e.Paths)
}

func (e *FontNotFound) Fatal() bool { return true }

// ParseError is raised for a malformed numeric argument, an unknown command
// letter, or an unknown "x" sub-command. It is the one kind in this
// taxonomy that is not fatal: the caller warns and continues with the next
// line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Fatal() bool { return false }

// IO wraps a read or write failure on the input or output stream.
type IO struct {
	Err error
}

func (e *IO) Error() string {
	return fmt.Sprintf("io: %s", e.Err)
}

func (e *IO) Unwrap() error { return e.Err }

func (e *IO) Fatal() bool { return true }

// StateViolation is raised when a command arrives in a state that does not
// support it, such as "p" before "x init" or "t" before the first "p".
type StateViolation struct {
	Command string
	State   string
}

func (e *StateViolation) Error() string {
	return fmt.Sprintf("command %q is not valid in state %q", e.Command, e.State)
}

func (e *StateViolation) Fatal() bool { return true }
