package failure

import "reflect"

// From converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise erase it with New
//
// Only the top-level value is checked. An *Error buried under fmt.Errorf("%w")
// is erased again so the outer text is not lost.
func From(err error, opts ...Option) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return newError(err, 1, opts)
}

// Downcast recovers the concrete failure when its dynamic type is exactly T.
// Otherwise it returns the zero T and false. T must be a concrete type; an
// interface T never matches. The chain is not searched; use errors.As for that.
func Downcast[T error](e *Error) (T, bool) {
	var zero T
	if e == nil || reflect.TypeFor[T]().Kind() == reflect.Interface {
		return zero, false
	}

	t, ok := e.failure.(T)
	if !ok {
		return zero, false
	}

	return t, true
}
