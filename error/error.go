// Package error provides an error container for command-line applications:
// a dynamically-typed cause chain plus an optional user-facing help message.
//
// It defines a single concrete type Error whose chain grows only by
// prepending context, and which supports errors.Is / errors.As at every
// link via Unwrap.
package error

import (
	"errors"
	"fmt"
	"io"

	"github.com/next-trace/scg-narrate/contract"
	"github.com/next-trace/scg-narrate/exitcode"
)

// Error is the canonical error type for CLI applications.
//
// It owns an arbitrary underlying cause together with the context layers
// wrapped around it, and an optional help message suggesting further
// actions a user might take. Help text never participates in the cause
// chain; it is advisory only.
type Error struct {
	inner error
	help  string
}

// compile-time guarantees that *Error implements the package contracts
var (
	_ contract.Error     = (*Error)(nil)
	_ contract.ExitCoder = (*Error)(nil)
)

// New wraps cause into a fresh Error with no help and a chain consisting of
// cause and its own unwrap sequence. If cause is already an *Error it is
// returned as-is (same pointer). A nil cause becomes an opaque one.
func New(cause error) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	if e, ok := cause.(*Error); ok {
		return e
	}

	return &Error{inner: cause}
}

// Errorf builds an ad-hoc Error from a formatted message. The resulting
// chain has length 1.
func Errorf(format string, args ...any) *Error {
	return &Error{inner: fmt.Errorf(format, args...)}
}

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil || e.inner == nil {
		return "<nil>"
	}
	// Outermost message only; causes and help are available through
	// Chain, Help and the %+v verb.
	return e.inner.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.inner
}

// ------ chain growth

// Wrap returns a new Error whose chain is context followed by e's full
// prior chain. The help text carries over unchanged. O(1); the existing
// chain is shared, never copied or traversed.
func (e *Error) Wrap(context error) *Error {
	if context == nil {
		context = errors.New("unknown")
	}

	return &Error{
		inner: &wrapErr{context: context, cause: e.inner},
		help:  e.help,
	}
}

// Wrapf wraps e with a formatted message context.
func (e *Error) Wrapf(format string, args ...any) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// ------ help

// Help returns the attached help text, newline-joined in the order the
// messages were added. Empty string means no help.
func (e *Error) Help() string {
	if e == nil {
		return ""
	}

	return e.help
}

// AddHelp attaches msg as help text. If help already exists the new
// message is appended after a newline, never replacing what came before:
// the earliest-attached (innermost) help stays first.
func (e *Error) AddHelp(msg string) {
	if e.help == "" {
		e.help = msg
		return
	}

	e.help = e.help + "\n" + msg
}

// AddHelpWith is AddHelp with the message produced by f, invoked exactly
// once, only when this call executes.
func (e *Error) AddHelpWith(f func() string) {
	e.AddHelp(f())
}

// ------ inspection

// RootCause returns the last (deepest) link of the chain. O(depth);
// chains are typically shallow.
func (e *Error) RootCause() error {
	if e == nil || e.inner == nil {
		return nil
	}

	links := flatten(e.inner)

	return links[len(links)-1]
}

// ExitCode resolves the process exit code for the chain; see exitcode.From.
func (e *Error) ExitCode() int {
	return exitcode.From(e.inner)
}

// Format implements fmt.Formatter.
//
// The %v and %s verbs print the outermost message only. The %+v verb
// prints the verbose rendering used when an Error escapes main: the
// message, one "Cause: " line per remaining link, and the help text after
// a blank line.
func (e *Error) Format(f fmt.State, verb rune) {
	if e == nil || e.inner == nil {
		io.WriteString(f, "<nil>")
		return
	}

	switch {
	case verb == 'v' && f.Flag('+'):
		links := flatten(e.inner)
		io.WriteString(f, links[0].Error())

		for _, cause := range links[1:] {
			io.WriteString(f, "\nCause: "+cause.Error())
		}

		if e.help != "" {
			io.WriteString(f, "\n\n"+e.help)
		}
	case verb == 'v', verb == 's':
		io.WriteString(f, e.Error())
	case verb == 'q':
		fmt.Fprintf(f, "%q", e.Error())
	}
}

// ------ downcasting

// IsType reports whether any link in err's chain has concrete type T,
// including the deepest original cause.
func IsType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// Downcast returns the first link in err's chain (outermost first) with
// concrete type T. On failure the zero T is returned and err is left
// untouched.
func Downcast[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)

	return target, ok
}
