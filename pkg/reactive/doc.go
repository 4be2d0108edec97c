// Package reactive provides observable stores and the subscription protocol
// that binds components to them.
//
// A Store wraps a record of named fields. Every write goes through Set,
// which looks up the subscribers whose declared dependencies include the
// written field and invokes their updaters with the field's previous value.
// Dependencies are declared explicitly; nothing is tracked automatically.
//
// # Stores
//
//	counter := reactive.Remember(map[string]any{"value": 0})
//	counter.Set("value", 5)
//
// Typed access goes through an Accessor, which still routes writes through
// Set:
//
//	value := reactive.Access[int](counter, "value")
//	value.Update(func(n int) int { return n + 1 })
//
// # Descriptors
//
// A Descriptor lists, per store, which subscriber fields depend on which
// store fields:
//
//	d := reactive.Descriptor{
//	    reactive.Observe(counter, reactive.Dep("label", "value")),
//	}
//
// Subscribers register the whole descriptor with every store it names. A
// store only reads the entries that reference itself.
//
// # Delegation
//
// Delegate derives a narrower, renamed descriptor for a nested subscriber
// without creating new stores:
//
//	child := reactive.Delegate(d, reactive.Rename("label", "text"))
//
// # Dispatch
//
// Every write notifies synchronously, including writes of the value already
// held. A write issued by an updater while a store is dispatching is handled
// according to the store's DispatchPolicy: DispatchImmediate (the default)
// recurses right away, DispatchQueued defers the nested notification pass
// until the current one completes.
//
// Stores are NOT thread-safe. They must only be used from the UI thread.
package reactive
