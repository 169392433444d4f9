// Package lazyerrors provides a way to annotate errors with a caller's stack
// frame without changing their message or identity.
//
// Unlike fmt.Errorf("%w", err), New and Errorf do not add any text to the
// error chain; errors.Is/errors.As keep working exactly as they would on the
// wrapped error. The only thing added is a single program-counter recorded
// at the call site, retrievable for logging via Frame.
package lazyerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// wrapped wraps another error with the caller's program counter.
type wrapped struct {
	err error
	pc  uintptr
}

// New is similar to errors.New, but the returned error also captures the caller's frame.
func New(text string) error {
	return newWrapped(errors.New(text), 1)
}

// Error wraps err, capturing the caller's frame. It returns nil if err is nil.
func Error(err error) error {
	if err == nil {
		return nil
	}

	return newWrapped(err, 1)
}

// Errorf is similar to fmt.Errorf, but the returned error also captures the caller's frame.
func Errorf(format string, args ...any) error {
	return newWrapped(fmt.Errorf(format, args...), 1)
}

func newWrapped(err error, skip int) error {
	var pc [1]uintptr
	runtime.Callers(skip+2, pc[:])

	return &wrapped{
		err: err,
		pc:  pc[0],
	}
}

// Error implements the error interface. It returns the wrapped error's message unchanged.
func (w *wrapped) Error() string {
	return w.err.Error()
}

// Unwrap allows errors.Is/errors.As to see through the annotation.
func (w *wrapped) Unwrap() error {
	return w.err
}

// Frame returns the caller's runtime.Frame, or a zero Frame if it is not available.
func (w *wrapped) Frame() runtime.Frame {
	if w.pc == 0 {
		return runtime.Frame{}
	}

	frames := runtime.CallersFrames([]uintptr{w.pc})
	frame, _ := frames.Next()

	return frame
}

// Format implements fmt.Formatter, printing the file:line of the annotation with %+v.
func (w *wrapped) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		frame := w.Frame()
		fmt.Fprintf(f, "%s:%d: %s", frame.File, frame.Line, w.err.Error())
	default:
		fmt.Fprint(f, w.Error())
	}
}
