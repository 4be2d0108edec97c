package main

import (
	"github.com/go-drift/recall/pkg/component"
	"github.com/go-drift/recall/pkg/reactive"
	"github.com/go-drift/recall/pkg/render"
)

// counterApp wires one store to a container and a delegated label.
type counterApp struct {
	state *reactive.Store
	count reactive.Accessor[int]
	limit reactive.Accessor[int]
	view  *component.Component
}

func newCounterApp(surface render.Surface, limit int, opts ...reactive.Option) *counterApp {
	opts = append(opts, reactive.ReadOnly("limit"))
	state := reactive.RememberFields([]reactive.Field{
		{Name: "count", Value: 0},
		{Name: "limit", Value: limit},
	}, opts...)

	a := &counterApp{
		state: state,
		count: reactive.Access[int](state, "count"),
		limit: reactive.Access[int](state, "limit"),
	}

	a.view = component.New(surface, "div",
		component.Sources{
			"color": a.warning("red"),
			"full":  a.warning("true"),
		},
		reactive.Descriptor{reactive.Observe(state,
			reactive.Dep("label", "count"),
			reactive.Dep("color", "count", "limit"),
			reactive.Dep("full", "count", "limit"),
		)},
	)
	a.view.Style("color", "color")
	a.view.Attribute("full", "data-full")

	label := component.New(surface, "span",
		component.Sources{"text": a.count.Source()},
		a.view.Delegate(reactive.Rename("label", "text")),
	)
	label.Text("text")
	a.view.Append(label)

	return a
}

// warning returns a data source yielding v once the limit is reached and
// unset before.
func (a *counterApp) warning(v string) component.DataSource {
	return func() (any, bool) {
		if a.count.Value() < a.limit.Value() {
			return nil, false
		}
		return v, true
	}
}

// Increment adds one to the counter.
func (a *counterApp) Increment() error {
	return a.count.Update(func(n int) int { return n + 1 })
}

// Root returns the node to mount.
func (a *counterApp) Root() render.Node {
	return a.view.Root()
}

// Destroy tears down both components.
func (a *counterApp) Destroy() {
	a.view.Destroy()
}
