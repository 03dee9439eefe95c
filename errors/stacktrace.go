package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors that carry a stack trace attached by
// the github.com/pkg/errors package.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the cause chain, or nil
// when no error in the chain carries one.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// trimInternal cuts off the redundant frames at the top and the bottom of
// the stack: the wrapping machinery of this package and the runtime frames
// added on panics.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 1 && matchesFile(st[0],
		// where we create errors
		"quorum/errors/errors.go",
		"quorum/errors/stacktrace.go",
		// runtime frames are added on panics
		"/runtime/") {
		st = st[1:]
	}
	// trim out outer wrappers (runtime)
	for l := len(st) - 1; l > 0 && matchesFile(st[l], "/runtime/"); l-- {
		st = st[:l]
	}
	return st
}

func matchesFile(f errors.Frame, substrs ...string) bool {
	file, _ := fileLine(f)
	for _, sub := range substrs {
		if strings.Contains(file, sub) {
			return true
		}
	}
	return false
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// cut the file path at "github.com/" to keep the output short
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}

// Format works like pkg/errors, with additions.
// %s is just the error message
// %+v is the full stack trace
// %v appends a compressed [filename:line] where the error
// was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	st := stackTrace(e)
	if verb == 'v' && s.Flag('+') {
		if st != nil {
			fmt.Fprintf(s, "%+v\n", trimInternal(st))
		}
		fmt.Fprint(s, e.Error())
		return
	}
	fmt.Fprint(s, e.Error())
	if verb == 'v' && st != nil {
		writeSimpleFrame(s, trimInternal(st)[0])
	}
}
