package error

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-narrate/contract"
)

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise err becomes the root of a fresh Error; help attached to a
//     buried *Error (or anything else implementing contract.Error) is
//     carried over so it is not lost behind foreign wrapping
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	e := &Error{inner: err}

	var c contract.Error
	if errors.As(err, &c) {
		e.help = c.Help()
	}

	return e
}

// The combinators below adapt a fallible call's error in the same
// expression that attaches context: a nil err passes through untouched,
// anything else is converted via Ensure. The *With forms never invoke
// their callback on the nil path and invoke it exactly once otherwise.

// Wrap attaches a message context to err, growing its chain by one link.
func Wrap(err error, context string) *Error {
	if err == nil {
		return nil
	}

	return Ensure(err).Wrap(errors.New(context))
}

// Wrapf attaches a formatted message context to err.
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return Ensure(err).Wrap(fmt.Errorf(format, args...))
}

// WrapWith attaches a lazily-built message context to err.
func WrapWith(err error, context func() string) *Error {
	if err == nil {
		return nil
	}

	return Ensure(err).Wrap(errors.New(context()))
}

// WrapErr attaches a typed context value (for example a clierror variant)
// to err; the context keeps its identity for Downcast and errors.As.
func WrapErr(err error, context error) *Error {
	if err == nil {
		return nil
	}

	return Ensure(err).Wrap(context)
}

// WrapErrWith attaches a lazily-built typed context value to err.
func WrapErrWith(err error, context func() error) *Error {
	if err == nil {
		return nil
	}

	return Ensure(err).Wrap(context())
}

// AddHelp appends help text to err without growing its chain.
func AddHelp(err error, help string) *Error {
	if err == nil {
		return nil
	}

	e := Ensure(err)
	e.AddHelp(help)

	return e
}

// AddHelpWith appends lazily-built help text to err without growing its
// chain.
func AddHelpWith(err error, help func() string) *Error {
	if err == nil {
		return nil
	}

	e := Ensure(err)
	e.AddHelp(help())

	return e
}
