// Package component provides the base type for UI fragments bound to
// reactive stores.
//
// A Component owns a root node, a set of data sources and a set of
// updaters. It registers with every store named by its descriptor when it is
// created and deregisters when it is destroyed:
//
//	counter := reactive.Remember(map[string]any{"value": 0})
//	value := reactive.Access[int](counter, "value")
//
//	c := component.New(surface, "span",
//	    component.Sources{"label": value.Source()},
//	    reactive.Descriptor{reactive.Observe(counter, reactive.Dep("label", "value"))},
//	)
//	c.Text("label")
//	defer c.Destroy()
//
// Components are NOT thread-safe. They must only be used from the UI thread.
package component

import (
	"maps"

	"github.com/go-drift/recall/pkg/reactive"
	"github.com/go-drift/recall/pkg/render"
)

// DataSource returns the current logical value of a field. It reports false
// when the value is unset.
type DataSource func() (any, bool)

// Sources maps field names to data sources.
type Sources map[string]DataSource

// Component is a stateful fragment owning a rendered node, its updaters and
// its subscription descriptor.
type Component struct {
	id        reactive.ID
	surface   render.Surface
	root      render.Node
	sources   Sources
	updaters  map[string]reactive.Updater
	desc      reactive.Descriptor
	disposers []func()
	destroyed bool
}

// New creates a component whose root node has the given tag, then registers
// it with every store referenced by d. Each store receives the whole
// descriptor. The descriptor is copied; later changes to d have no effect.
func New(surface render.Surface, tag string, sources Sources, d reactive.Descriptor) *Component {
	c := &Component{
		id:       reactive.NewID(),
		surface:  surface,
		sources:  maps.Clone(sources),
		updaters: make(map[string]reactive.Updater),
		desc:     d.Clone(),
	}
	if c.sources == nil {
		c.sources = make(Sources)
	}
	c.root = surface.CreateElement(tag)

	for _, e := range c.desc {
		if e.Store != nil {
			e.Store.Register(c, c.desc)
		}
	}
	return c
}

// ID returns the component's registry key.
func (c *Component) ID() reactive.ID {
	return c.id
}

// Root returns the component's root node.
func (c *Component) Root() render.Node {
	return c.root
}

// Surface returns the surface the component renders into.
func (c *Component) Surface() render.Surface {
	return c.surface
}

// Descriptor returns the descriptor the component registered with.
func (c *Component) Descriptor() reactive.Descriptor {
	return c.desc
}

// Delegate derives a descriptor for a nested component from this
// component's descriptor.
func (c *Component) Delegate(mappings ...reactive.Mapping) reactive.Descriptor {
	return reactive.Delegate(c.desc, mappings...)
}

// Source returns the data source for field.
func (c *Component) Source(field string) (DataSource, bool) {
	src, ok := c.sources[field]
	return src, ok && src != nil
}

// SetUpdater binds fn to field, replacing any previous updater, and invokes
// it once with a nil previous value. A nil fn removes the binding.
func (c *Component) SetUpdater(field string, fn reactive.Updater) {
	if fn == nil {
		delete(c.updaters, field)
		return
	}
	c.updaters[field] = fn
	fn(nil)
}

// HasUpdater reports whether field has an updater bound.
func (c *Component) HasUpdater(field string) bool {
	_, ok := c.updaters[field]
	return ok
}

// Notify invokes the updater bound to field. Stores call it during dispatch.
// It does nothing after Destroy.
func (c *Component) Notify(field string, old any) {
	if c.destroyed {
		return
	}
	if fn := c.updaters[field]; fn != nil {
		fn(old)
	}
}

// Append attaches child's root under this component's root. The child is
// destroyed together with this component.
func (c *Component) Append(child *Component) {
	c.surface.AppendChild(c.root, child.root)
	c.OnDestroy(child.Destroy)
}

// OnDestroy registers a cleanup function run by Destroy, in reverse order of
// registration. Returns a function that unregisters it. Registering after
// Destroy runs cleanup immediately.
func (c *Component) OnDestroy(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if c.destroyed {
		cleanup()
		return func() {}
	}
	index := len(c.disposers)
	c.disposers = append(c.disposers, cleanup)
	return func() {
		if index < len(c.disposers) {
			c.disposers[index] = nil
		}
	}
}

// Destroy runs cleanup functions, removes the root node, clears updaters and
// data sources, and deregisters from every store in the descriptor.
// Calling Destroy again is a no-op; any other use after Destroy is a
// programming error.
func (c *Component) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	for i := len(c.disposers) - 1; i >= 0; i-- {
		if c.disposers[i] != nil {
			c.disposers[i]()
		}
	}
	c.disposers = nil

	c.surface.RemoveElement(c.root)
	clear(c.updaters)
	clear(c.sources)

	for _, e := range c.desc {
		if e.Store != nil {
			e.Store.Deregister(c.id)
		}
	}
}

// IsDestroyed reports whether Destroy has been called.
func (c *Component) IsDestroyed() bool {
	return c.destroyed
}
