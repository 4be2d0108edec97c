package reactive

import "slices"

// Dependency declares that a subscriber field depends on a set of store
// fields.
type Dependency struct {
	Field string
	Props []string
}

// Dep creates a Dependency of field on props.
func Dep(field string, props ...string) Dependency {
	return Dependency{Field: field, Props: props}
}

// DependsOn reports whether prop is in the dependency set.
func (d Dependency) DependsOn(prop string) bool {
	return slices.Contains(d.Props, prop)
}

// Entry binds a list of dependencies to one store.
type Entry struct {
	Store *Store
	Deps  []Dependency
}

// Observe creates an Entry for store s.
func Observe(s *Store, deps ...Dependency) Entry {
	return Entry{Store: s, Deps: deps}
}

// Dependency returns the first dependency declared for field.
func (e Entry) Dependency(field string) (Dependency, bool) {
	for _, d := range e.Deps {
		if d.Field == field {
			return d, true
		}
	}
	return Dependency{}, false
}

// Descriptor is an ordered list of entries describing everything a
// subscriber observes.
type Descriptor []Entry

// Clone returns a deep copy of d. The copy shares store references only.
func (d Descriptor) Clone() Descriptor {
	if d == nil {
		return nil
	}
	out := make(Descriptor, len(d))
	for i, e := range d {
		deps := make([]Dependency, len(e.Deps))
		for j, dep := range e.Deps {
			deps[j] = Dependency{Field: dep.Field, Props: slices.Clone(dep.Props)}
		}
		out[i] = Entry{Store: e.Store, Deps: deps}
	}
	return out
}

// Stores returns the distinct stores referenced by d, in first-seen order.
func (d Descriptor) Stores() []*Store {
	var stores []*Store
	for _, e := range d {
		if e.Store != nil && !slices.Contains(stores, e.Store) {
			stores = append(stores, e.Store)
		}
	}
	return stores
}

// fieldsFor returns the subscriber fields in d that depend on prop of s, in
// declaration order.
func (d Descriptor) fieldsFor(s *Store, prop string) []string {
	var fields []string
	for _, e := range d {
		if e.Store != s {
			continue
		}
		for _, dep := range e.Deps {
			if dep.DependsOn(prop) {
				fields = append(fields, dep.Field)
			}
		}
	}
	return fields
}
