package reactive_test

import (
	"fmt"

	"github.com/go-drift/recall/pkg/reactive"
)

type printer struct {
	id   reactive.ID
	name string
}

func (p printer) ID() reactive.ID { return p.id }

func (p printer) Notify(field string, old any) {
	fmt.Printf("%s.%s: previous value %v\n", p.name, field, old)
}

// This example shows a store notifying a subscriber on every write,
// including a write of the value already held.
func ExampleStore_Set() {
	counter := reactive.Remember(map[string]any{"value": 0})
	sub := printer{id: reactive.NewID(), name: "label"}
	counter.Register(sub, reactive.Descriptor{
		reactive.Observe(counter, reactive.Dep("text", "value")),
	})

	counter.Set("value", 5)
	counter.Set("value", 5)

	counter.Deregister(sub.ID())
	counter.Set("value", 6)

	// Output:
	// label.text: previous value 0
	// label.text: previous value 5
}

// This example derives a renamed descriptor for a nested subscriber.
func ExampleDelegate() {
	user := reactive.Remember(map[string]any{"name": "Ada"})
	settings := reactive.Remember(map[string]any{"theme": "dark"})

	parent := reactive.Descriptor{
		reactive.Observe(settings, reactive.Dep("mode", "theme")),
		reactive.Observe(user, reactive.Dep("name", "name")),
	}
	child := reactive.Delegate(parent, reactive.Rename("name", "title"))

	fmt.Println(len(child), child[0].Store == user, child[0].Deps[0].Field, child[0].Deps[0].Props)

	// Output:
	// 1 true title [name]
}

// This example uses queued dispatch so a write made by an updater is
// delivered after the current notification pass.
func ExampleWithDispatch() {
	s := reactive.Remember(map[string]any{"celsius": 0, "fahrenheit": 32},
		reactive.WithDispatch(reactive.DispatchQueued))
	fahrenheit := reactive.Access[int](s, "fahrenheit")

	sub := &converter{id: reactive.NewID(), store: s, fahrenheit: fahrenheit}
	s.Register(sub, reactive.Descriptor{reactive.Observe(s,
		reactive.Dep("toF", "celsius"),
		reactive.Dep("show", "fahrenheit"),
	)})

	s.Set("celsius", 100)

	// Output:
	// converting
	// converted
	// fahrenheit is now 212
}

type converter struct {
	id         reactive.ID
	store      *reactive.Store
	fahrenheit reactive.Accessor[int]
}

func (c *converter) ID() reactive.ID { return c.id }

func (c *converter) Notify(field string, old any) {
	switch field {
	case "toF":
		fmt.Println("converting")
		celsius := reactive.Access[int](c.store, "celsius").Value()
		c.fahrenheit.Set(celsius*9/5 + 32)
		fmt.Println("converted")
	case "show":
		fmt.Printf("fahrenheit is now %d\n", c.fahrenheit.Value())
	}
}
