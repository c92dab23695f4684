package failure

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-shared-error/contract"
)

// maxChain bounds every chain walk; causes that loop stop here.
const maxChain = 64

var errCapture = errors.New("capture")

// callers returns the current goroutine's stack without its first skip frames
// above callers itself.
func callers(skip int) pkgerrors.StackTrace {
	st := pkgerrors.WithStack(errCapture).(contract.StackTracer).StackTrace()

	skip++ // callers
	if skip >= len(st) {
		return nil
	}

	return st[skip:]
}

// Chain returns err followed by its causes, breadth-first. Successors are taken
// from Cause() when it yields a different error, otherwise from Unwrap.
func Chain(err error) []error {
	var out []error

	queue := []error{err}
	for len(queue) > 0 && len(out) < maxChain {
		current := queue[0]
		queue = queue[1:]

		if current == nil {
			continue
		}

		out = append(out, current)
		queue = append(queue, successors(current)...)
	}

	return out
}

// RootCause follows the first successor of each link and returns the last one.
func RootCause(err error) error {
	for range maxChain {
		next := successors(err)
		if len(next) == 0 {
			return err
		}

		err = next[0]
	}

	return err
}

// DebugString returns one "N: <type>: <text>" line per chain entry.
func DebugString(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder

	for i, item := range Chain(err) {
		if i > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "%d: %T: %s", i+1, item, item.Error())
	}

	return b.String()
}

func successors(err error) []error {
	if err == nil {
		return nil
	}

	if c, ok := err.(contract.Causer); ok {
		if cause := c.Cause(); cause != nil && !samePointer(cause, err) {
			return []error{cause}
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		var out []error
		for _, next := range u.Unwrap() {
			if next != nil {
				out = append(out, next)
			}
		}

		return out
	case interface{ Unwrap() error }:
		if next := u.Unwrap(); next != nil && !samePointer(next, err) {
			return []error{next}
		}
	}

	return nil
}

// samePointer reports whether a and b are the same pointer of the same type.
// Non-pointer values are never considered the same; maxChain ends their loops.
func samePointer(a, b error) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || va.Kind() != reflect.Pointer {
		return false
	}

	return va.Pointer() == vb.Pointer()
}
