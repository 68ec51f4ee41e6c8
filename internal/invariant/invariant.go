// Package invariant provides contract assertions for mf2core: Invariant
// checks internal consistency (loop progress, span containment) that must
// never fail for well-formed implementation code. These are programming-
// error detectors, not user-input validation — user input always produces
// a diagnostic, never a panic, through the parser and scope analyzer's
// public entry points.
package invariant

import (
	"fmt"
	"runtime"
)

// Invariant panics with an INVARIANT VIOLATION message if condition is
// false. Use it for loop-progress checks and internal state consistency
// that a correct implementation can never violate.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// Precondition panics with a PRECONDITION VIOLATION message if condition
// is false. Use it at function entry to document caller contracts.
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

func fail(kind, format string, args ...any) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}
	panic(msg)
}
