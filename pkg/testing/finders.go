package testing

import "fmt"

// Finder locates elements in a document.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root *Element) []*Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []*Element
	finder   Finder
}

// Find evaluates f against the document body.
func (d *Document) Find(f Finder) FinderResult {
	return FinderResult{elements: f.Evaluate(d.body), finder: f}
}

// FindIn evaluates f against the subtree rooted at root.
func FindIn(root *Element, f Finder) FinderResult {
	return FinderResult{elements: f.Evaluate(root), finder: f}
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.description()))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

type predicateFinder struct {
	match func(*Element) bool
	desc  string
}

func (f predicateFinder) Evaluate(root *Element) []*Element {
	var out []*Element
	var visit func(*Element)
	visit = func(e *Element) {
		if f.match(e) {
			out = append(out, e)
		}
		for _, child := range e.children {
			visit(child)
		}
	}
	if root != nil {
		visit(root)
	}
	return out
}

func (f predicateFinder) Description() string {
	return f.desc
}

// ByTag matches elements with the given tag.
func ByTag(tag string) Finder {
	return predicateFinder{
		match: func(e *Element) bool { return e.Tag == tag },
		desc:  fmt.Sprintf("ByTag(%q)", tag),
	}
}

// ByText matches elements whose own text equals text.
func ByText(text string) Finder {
	return predicateFinder{
		match: func(e *Element) bool { return e.text == text },
		desc:  fmt.Sprintf("ByText(%q)", text),
	}
}

// ByAttribute matches elements whose attribute name equals value.
func ByAttribute(name, value string) Finder {
	return predicateFinder{
		match: func(e *Element) bool {
			v, ok := e.attrs[name]
			return ok && v == value
		},
		desc: fmt.Sprintf("ByAttribute(%q, %q)", name, value),
	}
}

// ByPredicate matches elements for which match returns true.
func ByPredicate(desc string, match func(*Element) bool) Finder {
	return predicateFinder{match: match, desc: desc}
}
