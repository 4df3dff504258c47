// Package exitcode provides standardized process exit codes following
// sysexits.h conventions, and resolution of an exit code from an error
// chain.
package exitcode

import (
	"errors"

	"github.com/next-trace/scg-narrate/contract"
)

// Exit codes following sysexits.h conventions.
const (
	// OK indicates successful completion.
	OK = 0

	// Usage indicates a command line usage error.
	Usage = 64

	// DataErr indicates user input data was incorrect in some way.
	DataErr = 65

	// NoInput indicates an input file did not exist or was not readable.
	NoInput = 66

	// NoUser indicates the user specified did not exist.
	NoUser = 67

	// NoHost indicates the host specified did not exist.
	NoHost = 68

	// Unavailable indicates a required service is unavailable.
	Unavailable = 69

	// Software indicates an internal software error.
	Software = 70

	// OSErr indicates an operating system error, such as being unable
	// to fork.
	OSErr = 71

	// OSFile indicates a system file did not exist or could not be
	// opened.
	OSFile = 72

	// CantCreat indicates a user-specified output file cannot be
	// created.
	CantCreat = 73

	// IOErr indicates an error occurred while doing I/O on some file.
	IOErr = 74

	// TempFail indicates a temporary failure; the user is invited to
	// retry.
	TempFail = 75

	// Protocol indicates the remote system returned something
	// impossible during a protocol exchange.
	Protocol = 76

	// NoPerm indicates the operation was not permitted.
	NoPerm = 77

	// Config indicates something was found in an unconfigured or
	// misconfigured state.
	Config = 78
)

// From resolves a process exit code for err.
//
// The first link in err's chain (outermost first, the order errors.As
// traverses) that implements contract.ExitCoder decides the code; when
// two classified errors are nested, the outermost one wins. Unrecognized
// errors default to Software. A nil err resolves to OK.
func From(err error) int {
	if err == nil {
		return OK
	}

	var coder contract.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return Software
}

// IsSuccess reports whether code indicates successful completion.
func IsSuccess(code int) bool { return code == OK }

// IsFailure reports whether code indicates a failure of any kind.
func IsFailure(code int) bool { return code != OK }
