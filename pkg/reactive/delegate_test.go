package reactive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDelegate_RenamesField(t *testing.T) {
	s := Remember(map[string]any{"value": 0})
	src := Descriptor{Observe(s, Dep("a", "value"))}

	got := Delegate(src, Rename("a", "x"))

	want := Descriptor{Observe(s, Dep("x", "value"))}
	if diff := cmp.Diff(want, got, storeIdentity); diff != "" {
		t.Errorf("Delegate mismatch (-want +got):\n%s", diff)
	}
	if got[0].Store != s {
		t.Error("delegated entry must reference the same store")
	}
}

func TestDelegate_DropsEntriesWithoutSourceField(t *testing.T) {
	people := Remember(map[string]any{"name": "ada"})
	theme := Remember(map[string]any{"color": "red"})
	src := Descriptor{
		Observe(theme, Dep("tint", "color")),
		Observe(people, Dep("name", "name")),
	}

	got := Delegate(src, Rename("name", "title"))

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	want := Descriptor{Observe(people, Dep("title", "name"))}
	if diff := cmp.Diff(want, got, storeIdentity); diff != "" {
		t.Errorf("Delegate mismatch (-want +got):\n%s", diff)
	}
}

func TestDelegate_KeepsOnlyMappedFields(t *testing.T) {
	s := Remember(map[string]any{"first": "a", "last": "b", "age": 3})
	src := Descriptor{Observe(s,
		Dep("first", "first"),
		Dep("last", "last"),
		Dep("age", "age"),
	)}

	got := Delegate(src, Rename("last", "surname"), Rename("first", "given"))

	want := Descriptor{Observe(s, Dep("surname", "last"), Dep("given", "first"))}
	if diff := cmp.Diff(want, got, storeIdentity); diff != "" {
		t.Errorf("Delegate mismatch (-want +got):\n%s", diff)
	}
}

func TestDelegate_MissingSourceContributesNothing(t *testing.T) {
	s := Remember(map[string]any{"value": 0})
	src := Descriptor{Observe(s, Dep("a", "value"))}

	if got := Delegate(src, Rename("missing", "x")); len(got) != 0 {
		t.Errorf("expected empty descriptor, got %v", got)
	}
	if got := Delegate(src); len(got) != 0 {
		t.Errorf("expected empty descriptor without mappings, got %v", got)
	}
	if got := Delegate(nil, Rename("a", "x")); len(got) != 0 {
		t.Errorf("expected empty descriptor from nil source, got %v", got)
	}
}

func TestDelegate_DoesNotMutateSource(t *testing.T) {
	s := Remember(map[string]any{"value": 0})
	src := Descriptor{Observe(s, Dep("a", "value"))}
	before := src.Clone()

	got := Delegate(src, Rename("a", "x"))
	got[0].Deps[0].Props[0] = "changed"

	if diff := cmp.Diff(before, src, storeIdentity); diff != "" {
		t.Errorf("source descriptor changed (-before +after):\n%s", diff)
	}
	if s.SubscriberCount() != 0 {
		t.Error("Delegate must not touch the store registry")
	}
}

func TestDelegate_RegisteredDescriptorReceivesRenamedField(t *testing.T) {
	s := Remember(map[string]any{"value": 0})
	parent := Descriptor{Observe(s, Dep("count", "value"))}
	child := newRecorder()
	s.Register(child, Delegate(parent, Rename("count", "badge")))

	s.Set("value", 4)

	if diff := cmp.Diff([]call{{Field: "badge", Old: 0}}, child.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptor_Stores(t *testing.T) {
	a := Remember(nil)
	b := Remember(nil)
	d := Descriptor{Observe(a), Observe(b), Observe(a), {}}

	got := d.Stores()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Stores() = %v, want [a b]", got)
	}
}

func TestDescriptor_CloneIsDeep(t *testing.T) {
	s := Remember(nil)
	d := Descriptor{Observe(s, Dep("f", "p"))}

	c := d.Clone()
	c[0].Deps[0].Props[0] = "q"
	c[0].Deps[0].Field = "g"

	if d[0].Deps[0].Props[0] != "p" || d[0].Deps[0].Field != "f" {
		t.Errorf("Clone shares state with original: %+v", d)
	}
	if Descriptor(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
