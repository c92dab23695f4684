// Package failure provides the generic, type-erased error representation.
//
// An *Error holds exactly one concrete error value behind a uniform surface:
// display text, a causal chain and an optional backtrace. It integrates with
// the standard library's errors helpers (Is/As) via Unwrap, and the concrete
// value can be recovered exactly with Downcast.
//
// Key characteristics:
//   - Immutable after construction; safe to share between goroutines
//   - Error() is the wrapped error's text, verbatim
//   - Cause() is never nil for a non-nil *Error: it is the wrapped error itself
//   - Backtrace() prefers the wrapped error's own stack, then one captured at erasure
//
// Backtrace capture at erasure is off unless SCG_BACKTRACE is set to 1, true or
// full, or WithBacktrace(true) is passed. Errors built with github.com/pkg/errors
// already carry a stack and never trigger a capture.
package failure
