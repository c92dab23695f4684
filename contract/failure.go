// Package contract exposes the minimal failure interfaces used by other packages.
//
// Implementations should support errors.Unwrap so that standard error helpers
// keep working once a value has been erased or shared.
package contract

import "github.com/pkg/errors"

// Failure is the erasable-failure capability: something that can be displayed,
// that may have an immediate cause, and that may carry a backtrace.
//
// Implementations must:
//   - Return the same text from Error() for the lifetime of the value.
//   - Return nil from Cause() when there is no deeper cause.
//   - Return an empty StackTrace from Backtrace() when none was recorded.
//
// Plain errors do not need to implement it; package failure adapts them.
type Failure interface {
	error
	Cause() error
	Backtrace() errors.StackTrace
}

// StackTracer is satisfied by errors created with github.com/pkg/errors.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// Causer is the single-method cause accessor, compatible with github.com/pkg/errors.
type Causer interface {
	Cause() error
}
