package shared

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-shared-error/contract"
	"github.com/next-trace/scg-shared-error/failure"
)

// Error is a shareable handle to an erased failure. The zero value is valid
// and renders "<nil>".
type Error struct {
	inner *failure.Error
}

// compile-time guarantee that Error implements contract.Failure
var _ contract.Failure = Error{}

// New erases err and wraps it for sharing. A nil err is erased as an opaque
// "unknown" failure, as failure.New does.
func New(err error, opts ...failure.Option) Error {
	// Skip this frame so captured backtraces start at the caller.
	opts = append(opts[:len(opts):len(opts)], failure.WithCallerSkip(1))

	return Error{inner: failure.New(err, opts...)}
}

// FromErased wraps an already erased failure. A nil e yields the zero Error.
func FromErased(e *failure.Error) Error {
	return Error{inner: e}
}

// Clone returns a duplicate that shares the same payload. It is identical to
// plain assignment.
func (s Error) Clone() Error { return s }

// Erased returns the shared payload. It is nil only for the zero Error.
func (s Error) Erased() *failure.Error { return s.inner }

// ------ standard error interface

func (s Error) Error() string { return s.inner.Error() }

// Unwrap returns the erased payload so that errors.Is and errors.As see the
// whole chain.
func (s Error) Unwrap() error {
	if s.inner == nil {
		return nil
	}

	return s.inner
}

// ------ contract.Failure

// Cause returns the original concrete failure. It is never nil unless s is
// the zero Error.
func (s Error) Cause() error { return s.inner.Cause() }

func (s Error) Backtrace() pkgerrors.StackTrace { return s.inner.Backtrace() }

// Chain returns the payload's causal chain, starting at the concrete failure.
func (s Error) Chain() []error { return failure.Chain(s.Cause()) }

func (s Error) RootCause() error { return failure.RootCause(s.Cause()) }

// Format delegates to the payload; see failure.Error.Format.
func (s Error) Format(st fmt.State, verb rune) { s.inner.Format(st, verb) }

// Downcast recovers the original concrete failure when its dynamic type is
// exactly T. It gives the same answer on every duplicate of s.
func Downcast[T error](s Error) (T, bool) {
	return failure.Downcast[T](s.inner)
}
