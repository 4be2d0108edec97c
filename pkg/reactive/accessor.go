package reactive

// Accessor is a typed view of one store field. All writes go through
// Store.Set, so they notify like any other write.
//
// Example:
//
//	count := reactive.Access[int](store, "count")
//	count.Update(func(n int) int { return n + 1 })
type Accessor[T any] struct {
	store *Store
	name  string
}

// Access returns a typed accessor for field name of s.
func Access[T any](s *Store, name string) Accessor[T] {
	return Accessor[T]{store: s, name: name}
}

// Name returns the field name.
func (a Accessor[T]) Name() string {
	return a.name
}

// Store returns the underlying store.
func (a Accessor[T]) Store() *Store {
	return a.store
}

// Get returns the field value. It reports false when the field is absent or
// holds a value of another type.
func (a Accessor[T]) Get() (T, bool) {
	var zero T
	v, ok := a.store.Get(a.name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Value returns the field value, or the zero value of T when Get would
// report false.
func (a Accessor[T]) Value() T {
	v, _ := a.Get()
	return v
}

// Set writes value to the field.
func (a Accessor[T]) Set(value T) error {
	return a.store.Set(a.name, value)
}

// Update applies transform to the current value and writes the result.
func (a Accessor[T]) Update(transform func(T) T) error {
	return a.Set(transform(a.Value()))
}

// Source returns a data source function that reads the field. It reports
// false while the field is absent.
func (a Accessor[T]) Source() func() (any, bool) {
	return func() (any, bool) {
		return a.store.Get(a.name)
	}
}
