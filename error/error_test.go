package error_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/next-trace/scg-narrate/clierror"
	narrate "github.com/next-trace/scg-narrate/error"
)

// errorStub is a typed leaf cause for downcast assertions.
type errorStub struct{}

func (errorStub) Error() string { return "ErrorStub" }

// nestedError carries its own unwrap chain, like a foreign library error.
type nestedError struct {
	cause error
}

func (e *nestedError) Error() string { return "NestedError: " + e.cause.Error() }
func (e *nestedError) Unwrap() error { return e.cause }

func TestNew_TransparentDisplay(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	if got, want := e.Error(), "ErrorStub"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}
}

func TestNew_NilCause(t *testing.T) {
	t.Parallel()

	e := narrate.New(nil)
	if got, want := e.Error(), "unknown"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}
}

func TestNew_ExistingErrorPassesThrough(t *testing.T) {
	t.Parallel()

	e := narrate.Errorf("boom")
	if got := narrate.New(e); got != e {
		t.Fatalf("New(*Error) returned a different pointer")
	}
}

func TestErrorf_Display(t *testing.T) {
	t.Parallel()

	e := narrate.Errorf("missing key: %q", "port")
	if got, want := e.Error(), `missing key: "port"`; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	if got, want := e.Chain().Len(), 1; got != want {
		t.Fatalf("Chain().Len()=%d want=%d", got, want)
	}
}

func TestWrap_TransparentDisplay(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{}).Wrap(clierror.Temporary())
	if got, want := e.Error(), "temporary failure"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}
}

func TestWrap_ChainGrowsByOne(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	for i, want := 0, 1; i < 5; i, want = i+1, want+1 {
		if got := e.Chain().Len(); got != want {
			t.Fatalf("after %d wraps Chain().Len()=%d want=%d", i, got, want)
		}

		e = e.Wrapf("layer %d", i)
	}
}

func TestIsType_Original(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})

	if !narrate.IsType[errorStub](e) {
		t.Fatalf("IsType[errorStub] = false; want true")
	}

	if narrate.IsType[*clierror.Error](e) {
		t.Fatalf("IsType[*clierror.Error] = true; want false")
	}
}

func TestIsType_AnyLinkInChain(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{}).Wrap(clierror.Temporary()).Wrapf("outer")

	if !narrate.IsType[*clierror.Error](e) {
		t.Fatalf("wrapped clierror not found by IsType")
	}

	if !narrate.IsType[errorStub](e) {
		t.Fatalf("deep original cause not found by IsType")
	}
}

func TestDowncast_Original(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})

	got, ok := narrate.Downcast[errorStub](e)
	if !ok {
		t.Fatalf("Downcast[errorStub] failed")
	}

	if got != (errorStub{}) {
		t.Fatalf("Downcast returned %v", got)
	}
}

func TestDowncast_WrappedContext(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{}).Wrap(clierror.CreateFile("/tmp/f"))

	got, ok := narrate.Downcast[*clierror.Error](e)
	if !ok {
		t.Fatalf("Downcast[*clierror.Error] failed")
	}

	if got.Kind() != clierror.KindCreateFile {
		t.Fatalf("Kind=%v want KindCreateFile", got.Kind())
	}
}

func TestDowncast_FailureIsLossless(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{}).Wrapf("context")
	before := e.Error()

	if _, ok := narrate.Downcast[*clierror.Error](e); ok {
		t.Fatalf("Downcast should fail for absent type")
	}

	if after := e.Error(); after != before {
		t.Fatalf("Error() changed across failed downcast: %q -> %q", before, after)
	}
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	e := narrate.New(&nestedError{cause: errorStub{}}).Wrapf("context")

	if got, want := e.RootCause().Error(), "ErrorStub"; got != want {
		t.Fatalf("RootCause()=%q want=%q", got, want)
	}
}

func TestHelp_NoneByDefault(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	if got := e.Help(); got != "" {
		t.Fatalf("Help()=%q want empty", got)
	}
}

func TestAddHelp_Once(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	e.AddHelp("help message")

	if got, want := e.Help(), "help message"; got != want {
		t.Fatalf("Help()=%q want=%q", got, want)
	}
}

func TestAddHelp_AppendsInCallOrder(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	msgs := []string{"first help", "second help", "third help"}

	for _, msg := range msgs {
		e.AddHelp(msg)
	}

	if got, want := e.Help(), strings.Join(msgs, "\n"); got != want {
		t.Fatalf("Help()=%q want=%q", got, want)
	}
}

func TestAddHelpWith(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	calls := 0
	e.AddHelpWith(func() string {
		calls++
		return "computed help"
	})

	if calls != 1 {
		t.Fatalf("callback ran %d times; want 1", calls)
	}

	if got, want := e.Help(), "computed help"; got != want {
		t.Fatalf("Help()=%q want=%q", got, want)
	}
}

func TestWrap_PreservesHelp(t *testing.T) {
	t.Parallel()

	e := narrate.New(errorStub{})
	e.AddHelp("keep me")

	wrapped := e.Wrapf("context")
	if got, want := wrapped.Help(), "keep me"; got != want {
		t.Fatalf("Help()=%q want=%q", got, want)
	}
}

func TestUnwrap_StdInterop(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	e := narrate.New(cause).Wrapf("context")

	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is(e, cause) = false; want true")
	}

	var stub errorStub
	if errors.As(narrate.New(errorStub{}), &stub) == false {
		t.Fatalf("errors.As should find the original cause")
	}
}

func TestFormat_Minimal(t *testing.T) {
	t.Parallel()

	e := narrate.Errorf("inner error").Wrapf("outer error")
	e.AddHelp("help message")

	if got, want := fmt.Sprintf("%v", e), "outer error"; got != want {
		t.Fatalf("%%v=%q want=%q", got, want)
	}

	if got, want := fmt.Sprintf("%s", e), "outer error"; got != want {
		t.Fatalf("%%s=%q want=%q", got, want)
	}
}

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	e := narrate.Errorf("inner error").Wrapf("outer error")
	e.AddHelp("help message")

	want := "outer error\nCause: inner error\n\nhelp message"
	if got := fmt.Sprintf("%+v", e); got != want {
		t.Fatalf("%%+v=%q want=%q", got, want)
	}
}

func TestFormat_VerboseNoHelp(t *testing.T) {
	t.Parallel()

	e := narrate.Errorf("inner error").Wrapf("outer error")

	want := "outer error\nCause: inner error"
	if got := fmt.Sprintf("%+v", e); got != want {
		t.Fatalf("%%+v=%q want=%q", got, want)
	}
}

func TestNilReceiverBehaviors(t *testing.T) {
	t.Parallel()

	var e *narrate.Error

	if got := e.Error(); got != "<nil>" {
		t.Fatalf("nil receiver Error()=%q", got)
	}

	if got := e.Help(); got != "" {
		t.Fatalf("nil receiver Help()=%q", got)
	}

	if got := e.Unwrap(); got != nil {
		t.Fatalf("nil receiver Unwrap()=%v", got)
	}
}

// FuzzAddHelp checks the append-only newline-join property.
func FuzzAddHelp(f *testing.F) {
	f.Add("first", "second")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, first, second string) {
		t.Parallel()

		e := narrate.New(errorStub{})
		e.AddHelp(first)
		e.AddHelp(second)

		want := first + "\n" + second
		if first == "" {
			// an empty string is "no help yet", so the second message
			// becomes the initial one
			want = second
		}

		if got := e.Help(); got != want {
			t.Fatalf("Help()=%q want=%q", got, want)
		}
	})
}
