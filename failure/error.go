package failure

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-shared-error/contract"
)

// Error is the type-erased representation of a single failure.
//
// Fields:
//   - failure:   the concrete error value, exactly as supplied
//   - backtrace: stack captured at erasure when the failure carries none
//
// Both fields are set once by the constructor. No method mutates them.
type Error struct {
	failure   error
	backtrace pkgerrors.StackTrace
}

// compile-time guarantee that *Error implements contract.Failure
var _ contract.Failure = (*Error)(nil)

// errUnknown is erased in place of a nil input so that New never returns nil.
var errUnknown = errors.New("unknown")

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.failure.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.failure
}

// ------ contract.Failure

// Cause returns the erased failure itself. It is the base of the chain and is
// never nil for a non-nil receiver; deeper causes are reachable through Chain.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}

	return e.failure
}

// Backtrace returns the failure's own stack when it has one, otherwise the
// stack captured at erasure. The result is empty when neither exists.
func (e *Error) Backtrace() pkgerrors.StackTrace {
	if e == nil {
		return nil
	}

	if st := ownStack(e.failure); len(st) > 0 {
		return st
	}

	return e.backtrace
}

// Format implements fmt.Formatter.
//
//	%s, %v  the failure's text
//	%q      the failure's text, quoted
//	%+v     the failure's text followed by one backtrace frame per line
//
// Any other verb prints %!verb(text), as fmt does for unsupported verbs.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			if bt := e.Backtrace(); len(bt) > 0 {
				fmt.Fprintf(s, "%+v", bt)
			}

			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprintf(s, "%%!%c(%s)", verb, e.Error())
	}
}

// ------ core constructors

// New erases err into an *Error. A nil err is replaced by an opaque "unknown"
// failure, so the result is never nil.
func New(err error, opts ...Option) *Error {
	return newError(err, 1, opts)
}

// newError builds the *Error. skip is the number of frames between the public
// entry point's caller and newError, excluding newError itself.
func newError(err error, skip int, opts []Option) *Error {
	if err == nil {
		err = errUnknown
	}

	cfg := newConfig(opts)
	e := &Error{failure: err}

	if cfg.backtrace && len(ownStack(err)) == 0 {
		e.backtrace = callers(skip + 1 + cfg.callerSkip)
	}

	return e
}

func ownStack(err error) pkgerrors.StackTrace {
	if f, ok := err.(contract.Failure); ok {
		if st := f.Backtrace(); len(st) > 0 {
			return st
		}
	}

	if st, ok := err.(contract.StackTracer); ok {
		return st.StackTrace()
	}

	return nil
}
