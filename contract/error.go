// Package contract exposes the minimal error interfaces used by other packages.
//
// Implementations must support errors.Unwrap for proper interoperability with
// standard error helpers.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the outermost (most recently wrapped) message from Error().
//   - Return the complete, newline-joined help text from Help(), or the
//     empty string when no help has been attached.
//   - Support errors.Unwrap via Unwrap().
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal and presentation-agnostic.
type Error interface {
	error
	// Help returns the attached help text; empty string means none.
	Help() string
	Unwrap() error
}

// ExitCoder is implemented by errors that classify themselves with a
// process exit code, in the sysexits.h numbering.
type ExitCoder interface {
	error
	// ExitCode returns the exit code the process should terminate with.
	ExitCode() int
}
