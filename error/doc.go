// Package error provides a production-grade error container for command-line
// applications, with contextual wrapping and user-facing help messages.
//
// It exposes a single concrete type Error that implements contract.Error and
// integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - An owned cause chain that only ever grows by prepending context
//   - Typed identity preserved at every link (errors.As finds any cause)
//   - Optional multi-line help text, appended in call order
//   - Lazy combinators that never run their callbacks on the success path
//   - Exit-code classification delegated to the exitcode package
//
// Construction happens via New and Errorf, context is layered with Wrap and
// Wrapf, and the package-level combinators (Wrap, WrapWith, AddHelp, ...)
// adapt arbitrary errors in the same expression that attaches context.
package error
