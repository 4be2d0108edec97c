//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/go-drift/recall/pkg/errors"
	"github.com/go-drift/recall/pkg/render"
)

// Surface renders into a browser document.
type Surface struct {
	document js.Value
}

var _ render.Surface = (*Surface)(nil)

// New returns a Surface for the global document.
func New() *Surface {
	return &Surface{document: js.Global().Get("document")}
}

// Mount appends node to the document body.
func (s *Surface) Mount(node render.Node) {
	s.AppendChild(s.document.Get("body"), node)
}

// MountOn appends node to the element matching selector. It reports an
// error when nothing matches.
func (s *Surface) MountOn(selector string, node render.Node) error {
	target := s.document.Call("querySelector", selector)
	if target.IsNull() {
		err := &errors.StoreError{
			Op:   "dom.MountOn",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("no element matches %q", selector),
		}
		errors.Report(err)
		return err
	}
	s.AppendChild(target, node)
	return nil
}

func (s *Surface) CreateElement(tag string) render.Node {
	return s.document.Call("createElement", tag)
}

func (s *Surface) AppendChild(parent, child render.Node) {
	value(parent).Call("appendChild", value(child))
}

func (s *Surface) RemoveElement(node render.Node) {
	value(node).Call("remove")
}

func (s *Surface) SetText(node render.Node, text string) {
	value(node).Set("textContent", text)
}

func (s *Surface) SetAttribute(node render.Node, name, v string) {
	value(node).Call("setAttribute", name, v)
}

func (s *Surface) RemoveAttribute(node render.Node, name string) {
	value(node).Call("removeAttribute", name)
}

func (s *Surface) SetStyleProperty(node render.Node, name, v string) {
	value(node).Get("style").Call("setProperty", name, v)
}

func (s *Surface) ClearStyleProperty(node render.Node, name string) {
	value(node).Get("style").Call("removeProperty", name)
}

func value(node render.Node) js.Value {
	v, ok := node.(js.Value)
	if !ok {
		panic(fmt.Sprintf("recall/dom: node %T was not created by a dom.Surface", node))
	}
	return v
}
