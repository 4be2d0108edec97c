package reactive

import (
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/go-drift/recall/pkg/errors"
)

// ID identifies a subscriber in a store's registry.
type ID = uuid.UUID

// NewID returns a fresh subscriber ID.
func NewID() ID {
	return uuid.New()
}

// Updater is invoked when a dependency of its field changes. It receives the
// previous value of the written store field, or nil when invoked at bind
// time.
type Updater func(old any)

// Subscriber is anything that can be registered with a store.
type Subscriber interface {
	// ID returns the subscriber's registry key.
	ID() ID
	// Notify invokes the updater bound to field.
	Notify(field string, old any)
}

// Field is a named initial value for RememberFields.
type Field struct {
	Name  string
	Value any
}

type registration struct {
	sub  Subscriber
	desc Descriptor
}

type pending struct {
	prop string
	old  any
}

// Store is an observable record of named fields.
//
// A Store holds a registry of subscribers keyed by ID. The registry keeps
// at most one descriptor per ID and dispatches in registration order.
type Store struct {
	fields   []string
	data     map[string]any
	readOnly map[string]bool

	subs  map[ID]*registration
	order []ID

	policy   DispatchPolicy
	recover  bool
	queue    []pending
	draining bool
}

// Remember creates a store holding a copy of initial. Fields are ordered by
// name; use RememberFields to control the order.
func Remember(initial map[string]any, opts ...Option) *Store {
	names := make([]string, 0, len(initial))
	for name := range initial {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Value: initial[name]}
	}
	return RememberFields(fields, opts...)
}

// RememberFields creates a store from an ordered list of fields. A name
// given twice keeps its last value and its first position.
func RememberFields(fields []Field, opts ...Option) *Store {
	s := &Store{
		data:     make(map[string]any, len(fields)),
		readOnly: make(map[string]bool),
		subs:     make(map[ID]*registration),
	}
	for _, f := range fields {
		if _, ok := s.data[f.Name]; !ok {
			s.fields = append(s.fields, f.Name)
		}
		s.data[f.Name] = f.Value
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the current value of prop.
func (s *Store) Get(prop string) (any, bool) {
	v, ok := s.data[prop]
	return v, ok
}

// Set writes value to prop and notifies every subscriber field that depends
// on prop, passing the previous value. Writing the value already held still
// notifies. Writing an unknown field adds it.
//
// Set fails with errors.ErrReadOnly for read-only fields, in which case
// nothing is written or notified.
func (s *Store) Set(prop string, value any) error {
	if s.readOnly[prop] {
		return &errors.StoreError{
			Op:    "reactive.Set",
			Kind:  errors.KindReadOnly,
			Field: prop,
			Err:   errors.ErrReadOnly,
		}
	}

	old, ok := s.data[prop]
	if !ok {
		s.fields = append(s.fields, prop)
	}
	s.data[prop] = value

	if DebugMode {
		errors.Debugf("set field=%s subscribers=%d policy=%s", prop, len(s.order), s.policy)
	}

	if s.policy == DispatchQueued {
		s.enqueue(prop, old)
		return nil
	}
	s.dispatch(prop, old)
	return nil
}

// IsReadOnly reports whether prop is marked read-only.
func (s *Store) IsReadOnly(prop string) bool {
	return s.readOnly[prop]
}

// Fields returns the store's field names in order.
func (s *Store) Fields() []string {
	return slices.Clone(s.fields)
}

// Snapshot returns a copy of the store's data.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Policy returns the store's dispatch policy.
func (s *Store) Policy() DispatchPolicy {
	return s.policy
}

// Register upserts sub into the registry with descriptor d. Registering an
// ID again replaces its descriptor and keeps its dispatch position. A pass
// already in progress stops notifying the replaced registration.
func (s *Store) Register(sub Subscriber, d Descriptor) {
	if sub == nil {
		return
	}
	id := sub.ID()
	if _, ok := s.subs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.subs[id] = &registration{sub: sub, desc: d}
}

// Deregister removes id from the registry. It is a no-op if id is not
// registered.
func (s *Store) Deregister(id ID) {
	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	s.order = slices.DeleteFunc(slices.Clone(s.order), func(other ID) bool {
		return other == id
	})
}

// Registered returns the descriptor registered for id.
func (s *Store) Registered(id ID) (Descriptor, bool) {
	reg, ok := s.subs[id]
	if !ok {
		return nil, false
	}
	return reg.desc, true
}

// SubscriberCount returns the number of registered subscribers.
func (s *Store) SubscriberCount() int {
	return len(s.order)
}

// enqueue appends a notification pass and drains the queue unless a drain
// is already running further up the stack.
func (s *Store) enqueue(prop string, old any) {
	s.queue = append(s.queue, pending{prop: prop, old: old})
	if s.draining {
		return
	}

	s.draining = true
	defer func() {
		s.draining = false
		s.queue = nil
	}()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue[0] = pending{}
		s.queue = s.queue[1:]
		s.dispatch(next.prop, next.old)
	}
}

// dispatch runs one notification pass for prop. Subscribers are visited in
// registration order; one deregistered or re-registered mid-pass is skipped
// from then on.
func (s *Store) dispatch(prop string, old any) {
	order := s.order
	for _, id := range order {
		reg, ok := s.subs[id]
		if !ok {
			continue
		}
		for _, field := range reg.desc.fieldsFor(s, prop) {
			if s.subs[id] != reg {
				break
			}
			s.invoke(reg.sub, field, old)
		}
	}
}

func (s *Store) invoke(sub Subscriber, field string, old any) {
	if s.recover {
		defer errors.RecoverWithCallback("reactive.dispatch", func(any) {
			if DebugMode {
				errors.Debugf("recovered updater field=%s", field)
			}
		})
	}
	sub.Notify(field, old)
}
