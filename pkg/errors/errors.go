// Package errors provides structured error handling for recall stores and
// components.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrReadOnly is returned when writing a field marked read-only.
var ErrReadOnly = stderrors.New("field is read-only")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindReadOnly indicates a write to a non-writable store field.
	KindReadOnly
	// KindUpdater indicates a failure inside an updater callback.
	KindUpdater
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindRender indicates a render surface failure.
	KindRender
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindReadOnly:
		return "read-only"
	case KindUpdater:
		return "updater"
	case KindPanic:
		return "panic"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// StoreError represents a structured error raised by a store, a component,
// or one of their collaborators.
type StoreError struct {
	// Op is the operation that failed (e.g., "reactive.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Field is the store field or component field involved, if any.
	Field string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StoreError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "reactive.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by recall.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StoreError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
// It mirrors the standard library so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
