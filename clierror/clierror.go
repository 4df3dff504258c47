package clierror

import (
	"fmt"

	"github.com/next-trace/scg-narrate/contract"
	"github.com/next-trace/scg-narrate/exitcode"
)

// Kind identifies one failure category.
type Kind uint8

const (
	// KindConfig reports invalid configuration.
	KindConfig Kind = iota + 1
	// KindCreateFile reports a file that cannot be created.
	KindCreateFile
	// KindInputData reports invalid input data.
	KindInputData
	// KindInputFileNotFound reports a supplied file that was not found.
	KindInputFileNotFound
	// KindNoUser reports a user that was not found.
	KindNoUser
	// KindNoHost reports a host that was not found.
	KindNoHost
	// KindOperationPermission reports a missing permission for an operation.
	KindOperationPermission
	// KindOSErr reports an operating system error.
	KindOSErr
	// KindOSFileNotFound reports a missing system file.
	KindOSFileNotFound
	// KindReadFile reports a file that cannot be read.
	KindReadFile
	// KindResourceNotFound reports a resource that was not found.
	KindResourceNotFound
	// KindProtocol reports a protocol that is not possible.
	KindProtocol
	// KindTemporary reports a temporary, non-fatal failure.
	KindTemporary
	// KindUsage reports incorrect command usage.
	KindUsage
	// KindWriteFile reports a file that cannot be written to.
	KindWriteFile
)

// Error is a standard command-line application error: a Kind plus, for
// the categories that take one, a path, name or operation argument.
// Construct values with the package functions; never mutate them.
type Error struct {
	kind Kind
	arg  string
}

// compile-time guarantee that *Error classifies its own exit code
var _ contract.ExitCoder = (*Error)(nil)

// Config reports invalid configuration.
func Config() *Error { return &Error{kind: KindConfig} }

// CreateFile reports that path cannot be created.
func CreateFile(path string) *Error { return &Error{kind: KindCreateFile, arg: path} }

// InputData reports invalid input data.
func InputData() *Error { return &Error{kind: KindInputData} }

// InputFileNotFound reports that the supplied path was not found.
func InputFileNotFound(path string) *Error { return &Error{kind: KindInputFileNotFound, arg: path} }

// NoUser reports that the named user was not found.
func NoUser(name string) *Error { return &Error{kind: KindNoUser, arg: name} }

// NoHost reports that the named host was not found.
func NoHost(name string) *Error { return &Error{kind: KindNoHost, arg: name} }

// OperationPermission reports a missing permission for op.
func OperationPermission(op string) *Error { return &Error{kind: KindOperationPermission, arg: op} }

// OSErr reports an operating system error.
func OSErr() *Error { return &Error{kind: KindOSErr} }

// OSFileNotFound reports that a system file at path was not found.
func OSFileNotFound(path string) *Error { return &Error{kind: KindOSFileNotFound, arg: path} }

// ReadFile reports that path cannot be read.
func ReadFile(path string) *Error { return &Error{kind: KindReadFile, arg: path} }

// ResourceNotFound reports that the named resource was not found.
func ResourceNotFound(name string) *Error { return &Error{kind: KindResourceNotFound, arg: name} }

// Protocol reports that the protocol is not possible.
func Protocol() *Error { return &Error{kind: KindProtocol} }

// Temporary reports a temporary, non-fatal failure.
func Temporary() *Error { return &Error{kind: KindTemporary} }

// Usage reports incorrect command usage.
func Usage() *Error { return &Error{kind: KindUsage} }

// WriteFile reports that path cannot be written to.
func WriteFile(path string) *Error { return &Error{kind: KindWriteFile, arg: path} }

// Kind returns the failure category.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	switch e.kind {
	case KindConfig:
		return "invalid configuration"
	case KindCreateFile:
		return "cannot create file: " + e.arg
	case KindInputData:
		return "invalid input data"
	case KindInputFileNotFound:
		return "file not found: " + e.arg
	case KindNoUser:
		return "user not found: " + e.arg
	case KindNoHost:
		return "host not found: " + e.arg
	case KindOperationPermission:
		return "no permission for operation: " + e.arg
	case KindOSErr:
		return "operating system error"
	case KindOSFileNotFound:
		return "system file not found: " + e.arg
	case KindReadFile:
		return "cannot read file: " + e.arg
	case KindResourceNotFound:
		return "resource not found: " + e.arg
	case KindProtocol:
		return "protocol not possible"
	case KindTemporary:
		return "temporary failure"
	case KindUsage:
		return "incorrect usage"
	case KindWriteFile:
		return "cannot write to file: " + e.arg
	}

	return fmt.Sprintf("unknown cli error kind: %d", e.kind)
}

// ExitCode maps the category to its sysexits.h code.
func (e *Error) ExitCode() int {
	switch e.kind {
	case KindConfig:
		return exitcode.Config
	case KindCreateFile:
		return exitcode.CantCreat
	case KindInputData, KindResourceNotFound:
		return exitcode.DataErr
	case KindInputFileNotFound:
		return exitcode.NoInput
	case KindNoUser:
		return exitcode.NoUser
	case KindNoHost:
		return exitcode.NoHost
	case KindOperationPermission:
		return exitcode.NoPerm
	case KindOSErr:
		return exitcode.OSErr
	case KindOSFileNotFound:
		return exitcode.OSFile
	case KindReadFile, KindWriteFile:
		return exitcode.IOErr
	case KindProtocol:
		return exitcode.Protocol
	case KindTemporary:
		return exitcode.TempFail
	case KindUsage:
		return exitcode.Usage
	}

	return exitcode.Software
}

// Is reports variant equality for errors.Is: same kind and same argument.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind && t.arg == e.arg
}
