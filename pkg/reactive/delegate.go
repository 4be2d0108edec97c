package reactive

import "slices"

// Mapping renames a source descriptor field to a target field.
type Mapping struct {
	Source string
	Target string
}

// Rename creates a Mapping from source to target.
func Rename(source, target string) Mapping {
	return Mapping{Source: source, Target: target}
}

// Delegate derives a descriptor for a nested subscriber from src.
//
// Each entry of src that declares at least one mapped source field yields an
// entry for the same store, holding the mapped fields under their target
// names with their props copied. Entries declaring none of the source fields
// are dropped. Mappings that match nothing contribute nothing.
//
// Delegate never modifies src and never touches a store's registry; the
// result takes effect once a subscriber registers it.
func Delegate(src Descriptor, mappings ...Mapping) Descriptor {
	var out Descriptor
	for _, e := range src {
		var deps []Dependency
		for _, m := range mappings {
			if dep, ok := e.Dependency(m.Source); ok {
				deps = append(deps, Dependency{Field: m.Target, Props: slices.Clone(dep.Props)})
			}
		}
		if len(deps) > 0 {
			out = append(out, Entry{Store: e.Store, Deps: deps})
		}
	}
	return out
}
