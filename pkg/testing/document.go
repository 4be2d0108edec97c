package testing

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-drift/recall/pkg/render"
)

// Element is a node of an in-memory Document.
type Element struct {
	Tag      string
	text     string
	attrs    map[string]string
	style    map[string]string
	parent   *Element
	children []*Element
	removed  bool
}

func newElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// Text returns the element's own text content.
func (e *Element) Text() string {
	return e.text
}

// Attr returns attribute name.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns a copy of the element's attributes.
func (e *Element) Attrs() map[string]string {
	return maps.Clone(e.attrs)
}

// Style returns style property name, or "" if it is not set.
func (e *Element) Style(name string) string {
	return e.style[name]
}

// Styles returns a copy of the element's inline style.
func (e *Element) Styles() map[string]string {
	return maps.Clone(e.style)
}

// Parent returns the element's parent, or nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children in order.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// Removed reports whether the element was removed through the surface.
func (e *Element) Removed() bool {
	return e.removed
}

// String renders the element and its subtree as markup, for error
// messages.
func (e *Element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Element) write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, name := range slices.Sorted(maps.Keys(e.attrs)) {
		fmt.Fprintf(sb, " %s=%q", name, e.attrs[name])
	}
	if len(e.style) > 0 {
		var decls []string
		for _, name := range slices.Sorted(maps.Keys(e.style)) {
			decls = append(decls, name+": "+e.style[name])
		}
		fmt.Fprintf(sb, " style=%q", strings.Join(decls, "; "))
	}
	sb.WriteByte('>')
	sb.WriteString(e.text)
	for _, child := range e.children {
		child.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	e.parent.children = slices.DeleteFunc(e.parent.children, func(other *Element) bool {
		return other == e
	})
	e.parent = nil
}

// Call records one surface operation.
type Call struct {
	Op    string
	Tag   string
	Name  string
	Value string
}

// Document is an in-memory render.Surface. Its zero value is not usable;
// create one with NewDocument.
type Document struct {
	body  *Element
	calls []Call
}

var _ render.Surface = (*Document)(nil)

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	return &Document{body: newElement("body")}
}

// Body returns the document's body element.
func (d *Document) Body() *Element {
	return d.body
}

// Mount attaches node to the document body.
func (d *Document) Mount(node render.Node) {
	d.AppendChild(d.body, node)
}

// Calls returns the recorded surface calls.
func (d *Document) Calls() []Call {
	return slices.Clone(d.calls)
}

// ResetCalls clears the recorded surface calls.
func (d *Document) ResetCalls() {
	d.calls = nil
}

func (d *Document) record(op string, e *Element, name, value string) {
	d.calls = append(d.calls, Call{Op: op, Tag: e.Tag, Name: name, Value: value})
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) render.Node {
	e := newElement(tag)
	d.record("create", e, "", "")
	return e
}

// AppendChild attaches child as the last child of parent, detaching it from
// any previous parent.
func (d *Document) AppendChild(parent, child render.Node) {
	p, c := asElement(parent), asElement(child)
	c.detach()
	c.parent = p
	c.removed = false
	p.children = append(p.children, c)
	d.record("append", c, p.Tag, "")
}

// RemoveElement detaches node from its parent.
func (d *Document) RemoveElement(node render.Node) {
	e := asElement(node)
	e.detach()
	e.removed = true
	d.record("remove", e, "", "")
}

// SetText replaces the element's text.
func (d *Document) SetText(node render.Node, text string) {
	e := asElement(node)
	e.text = text
	d.record("text", e, "", text)
}

// SetAttribute sets an attribute.
func (d *Document) SetAttribute(node render.Node, name, value string) {
	e := asElement(node)
	e.attrs[name] = value
	d.record("attr", e, name, value)
}

// RemoveAttribute removes an attribute.
func (d *Document) RemoveAttribute(node render.Node, name string) {
	e := asElement(node)
	delete(e.attrs, name)
	d.record("remove-attr", e, name, "")
}

// SetStyleProperty sets an inline style property.
func (d *Document) SetStyleProperty(node render.Node, name, value string) {
	e := asElement(node)
	e.style[name] = value
	d.record("style", e, name, value)
}

// ClearStyleProperty removes an inline style property.
func (d *Document) ClearStyleProperty(node render.Node, name string) {
	e := asElement(node)
	delete(e.style, name)
	d.record("clear-style", e, name, "")
}

// asElement converts a node handed out by a Document. Passing a node from
// another surface is a programming error.
func asElement(node render.Node) *Element {
	e, ok := node.(*Element)
	if !ok || e == nil {
		panic(fmt.Sprintf("recall/testing: node %T was not created by a Document", node))
	}
	return e
}
