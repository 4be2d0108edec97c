// Package render defines the capability a component needs from the document
// it draws into.
//
// Components never create or mutate document nodes directly; they go
// through a Surface. The testing package provides an in-memory Surface and
// the dom package provides one backed by the browser document.
package render

// Node is an opaque handle to an element owned by a Surface.
type Node any

// Surface creates and mutates document elements.
type Surface interface {
	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) Node
	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node)
	// RemoveElement detaches node from the document.
	RemoveElement(node Node)
	// SetText replaces the text content of node.
	SetText(node Node, text string)
	// SetAttribute sets attribute name on node.
	SetAttribute(node Node, name, value string)
	// RemoveAttribute removes attribute name from node.
	RemoveAttribute(node Node, name string)
	// SetStyleProperty sets an inline style property on node.
	SetStyleProperty(node Node, name, value string)
	// ClearStyleProperty resets an inline style property to its default.
	ClearStyleProperty(node Node, name string)
}
