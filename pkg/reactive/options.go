package reactive

import "fmt"

// DispatchPolicy controls how a write issued during a notification pass is
// dispatched.
type DispatchPolicy int

const (
	// DispatchImmediate notifies nested writes recursively, before the
	// outer pass resumes.
	DispatchImmediate DispatchPolicy = iota
	// DispatchQueued performs nested writes immediately but queues their
	// notification passes until the current pass completes. The queue is
	// drained in FIFO order before the outermost Set returns.
	DispatchQueued
)

func (p DispatchPolicy) String() string {
	switch p {
	case DispatchImmediate:
		return "immediate"
	case DispatchQueued:
		return "queued"
	default:
		return fmt.Sprintf("DispatchPolicy(%d)", int(p))
	}
}

// ParseDispatchPolicy parses "immediate" or "queued". An empty string means
// DispatchImmediate.
func ParseDispatchPolicy(s string) (DispatchPolicy, error) {
	switch s {
	case "", "immediate":
		return DispatchImmediate, nil
	case "queued":
		return DispatchQueued, nil
	default:
		return DispatchImmediate, fmt.Errorf("unknown dispatch policy %q (use immediate or queued)", s)
	}
}

// Option configures a Store.
type Option func(*Store)

// WithDispatch sets the store's dispatch policy.
func WithDispatch(p DispatchPolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// WithRecover makes the store recover panics raised by updaters. Recovered
// panics are reported to the errors handler and dispatch continues with the
// next updater.
func WithRecover(enabled bool) Option {
	return func(s *Store) {
		s.recover = enabled
	}
}

// ReadOnly marks fields as non-writable. Set on them fails with
// errors.ErrReadOnly.
func ReadOnly(names ...string) Option {
	return func(s *Store) {
		for _, name := range names {
			s.readOnly[name] = true
		}
	}
}

// DebugMode enables a trace line per write, routed through the errors
// handler. The default LogHandler prints traces whatever its verbosity.
var DebugMode = false

// SetDebugMode enables or disables write tracing.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
