package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to a stream, stderr by
// default.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer
}

// Writer returns the stream the handler logs to.
func (h *LogHandler) Writer() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a StoreError.
func (h *LogHandler) HandleError(err *StoreError) {
	if err == nil {
		return
	}
	w := h.Writer()
	if !h.Verbose {
		fmt.Fprintf(w, "[recall error] %s: %v\n", err.Op, err.Err)
		return
	}
	fmt.Fprintf(w, "[recall error] %s [%s]", err.Op, err.Kind)
	if err.Field != "" {
		fmt.Fprintf(w, " field=%s", err.Field)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.Writer()
	if err.Op != "" {
		fmt.Fprintf(w, "[recall panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[recall panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// Debugf writes a debug trace line. Callers decide whether tracing is on.
func (h *LogHandler) Debugf(format string, args ...any) {
	fmt.Fprintf(h.Writer(), "[recall] "+format+"\n", args...)
}

// Debugger is implemented by handlers that accept debug traces.
type Debugger interface {
	Debugf(format string, args ...any)
}

// Debugf forwards a trace line to the global handler if it is a Debugger.
func Debugf(format string, args ...any) {
	if d, ok := Handler().(Debugger); ok {
		d.Debugf(format, args...)
	}
}
