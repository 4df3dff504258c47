// Package report prints status and error messages to stderr.
//
// Similar to Cargo output, a Status title is right-justified, colored and
// made bold. Err prints a red "error:" title followed by the error's
// outermost message and, when present, its most recently added help line.
// ErrFull additionally lists every cause and the full help text.
//
// Color is applied only when stderr is a terminal. Reporting is the
// process's last channel: a failed write to stderr panics rather than
// attempting recovery.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	narrate "github.com/next-trace/scg-narrate/error"
)

const stderrMsg = "writing to stderr"

// Status reports a title and message to stderr.
//
//	    <title> <msg>
//
// The title is justified in the style of Cargo's statuses. If stderr is
// directed to a TTY (as is normal for a CLI app) it is colored with attr
// and made bold.
func Status(title, msg string, attr color.Attribute) {
	var c *color.Color
	if isTerminal() {
		c = enabled(attr, color.Bold)
	}

	f := os.Stderr
	must(formatStatus(f, title, msg, c))
}

// Err reports an error to stderr in quiet form.
//
// The message consists of a red "error:" title followed by err's
// outermost message. If err carries help, only the last-added (most
// specific) help line is printed after a blank line.
func Err(err error) {
	e := narrate.Ensure(err)
	if e == nil {
		return
	}

	must(writeErr(os.Stderr, e, isTerminal()))
}

// ErrFull reports an error to stderr, printing its full causal chain.
//
// After the red "error:" title line, each remaining chain link gets its
// own "cause:" line; any help text follows in full after a blank line,
// earliest-attached message first.
func ErrFull(err error) {
	e := narrate.Ensure(err)
	if e == nil {
		return
	}

	must(writeErrFull(os.Stderr, e, isTerminal()))
}

func writeErr(f io.Writer, e *narrate.Error, colored bool) error {
	if err := formatErrorTitle(f, e.Error(), colored); err != nil {
		return err
	}

	return formatErrorHelpLast(f, e)
}

func writeErrFull(f io.Writer, e *narrate.Error, colored bool) error {
	if err := formatErrorTitle(f, e.Error(), colored); err != nil {
		return err
	}

	if err := formatErrorCauses(f, e, colored); err != nil {
		return err
	}

	return formatErrorHelpAll(f, e)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// enabled builds a color that renders regardless of the global NoColor
// detection; callers gate on isTerminal instead.
func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()

	return c
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("report: %s: %v", stderrMsg, err))
	}
}

func formatErrorTitle(f io.Writer, msg string, colored bool) error {
	var c *color.Color
	if colored {
		c = enabled(color.FgRed, color.Bold)
	}

	return formatLine(f, "error", msg, c)
}

func formatErrorCauses(f io.Writer, e *narrate.Error, colored bool) error {
	var c *color.Color
	if colored {
		c = enabled(color.FgRed)
	}

	chain := e.Chain()
	chain.Next() // the title line already shows the outermost message

	for cause := range chain.All() {
		if err := formatLine(f, "cause", cause.Error(), c); err != nil {
			return err
		}
	}

	return nil
}

func formatErrorHelpAll(f io.Writer, e *narrate.Error) error {
	help := e.Help()
	if help == "" {
		return nil
	}

	_, err := fmt.Fprintf(f, "\n%s\n", help)

	return err
}

func formatErrorHelpLast(f io.Writer, e *narrate.Error) error {
	help := e.Help()
	if help == "" {
		return nil
	}

	lines := strings.Split(help, "\n")
	_, err := fmt.Fprintf(f, "\n%s\n", lines[len(lines)-1])

	return err
}

func formatLine(f io.Writer, title, msg string, c *color.Color) error {
	if c == nil {
		_, err := fmt.Fprintf(f, "%s: %s\n", title, msg)
		return err
	}

	colon := enabled(color.FgWhite, color.Bold)
	_, err := fmt.Fprintf(f, "%s%s %s\n", c.Sprint(title), colon.Sprint(":"), msg)

	return err
}

func formatStatus(f io.Writer, title, msg string, c *color.Color) error {
	// Pad before coloring; escape sequences would break the justification.
	padded := fmt.Sprintf("%12s", title)
	if c != nil {
		padded = c.Sprint(padded)
	}

	_, err := fmt.Fprintf(f, "%s %s\n", padded, msg)

	return err
}
