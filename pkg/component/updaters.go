package component

import (
	"fmt"

	"github.com/go-drift/recall/pkg/render"
)

// Option configures a built-in updater.
type Option func(*binding)

type binding struct {
	node render.Node
}

// On targets node instead of the component's root.
func On(node render.Node) Option {
	return func(b *binding) {
		b.node = node
	}
}

func (c *Component) bind(opts []Option) binding {
	b := binding{node: c.root}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// read evaluates the data source of field. found is false when the field
// has no data source.
func (c *Component) read(field string) (value any, set, found bool) {
	src, ok := c.Source(field)
	if !ok {
		return nil, false, false
	}
	value, set = src()
	return value, set, true
}

// Text binds field to the text content of the target node. An unset value
// renders as empty text.
func (c *Component) Text(field string, opts ...Option) {
	b := c.bind(opts)
	c.SetUpdater(field, func(any) {
		v, set, found := c.read(field)
		if !found {
			return
		}
		if !set {
			c.surface.SetText(b.node, "")
			return
		}
		c.surface.SetText(b.node, fmt.Sprint(v))
	})
}

// Attribute binds field to attribute name of the target node. An unset
// value removes the attribute.
func (c *Component) Attribute(field, name string, opts ...Option) {
	b := c.bind(opts)
	c.SetUpdater(field, func(any) {
		v, set, found := c.read(field)
		if !found {
			return
		}
		if !set {
			c.surface.RemoveAttribute(b.node, name)
			return
		}
		c.surface.SetAttribute(b.node, name, fmt.Sprint(v))
	})
}

// Style binds field to style property of the target node. An unset value
// resets the property.
func (c *Component) Style(field, property string, opts ...Option) {
	b := c.bind(opts)
	c.SetUpdater(field, func(any) {
		v, set, found := c.read(field)
		if !found {
			return
		}
		if !set {
			c.surface.ClearStyleProperty(b.node, property)
			return
		}
		c.surface.SetStyleProperty(b.node, property, fmt.Sprint(v))
	})
}
