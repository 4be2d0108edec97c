// Package testing provides an in-memory render surface and helpers for
// testing components without a browser.
//
// # Quick Start
//
// Create a document, mount a component, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    doc := recalltest.NewDocument()
//	    store := reactive.Remember(map[string]any{"value": 0})
//
//	    c := component.New(doc, "span", component.Sources{
//	        "label": reactive.Access[int](store, "value").Source(),
//	    }, reactive.Descriptor{reactive.Observe(store, reactive.Dep("label", "value"))})
//	    c.Text("label")
//	    doc.Mount(c.Root())
//
//	    store.Set("value", 5)
//
//	    if !doc.Find(recalltest.ByText("5")).Exists() {
//	        t.Error("expected label to show 5")
//	    }
//	}
//
// # Call Recording
//
// Every surface call is recorded, so tests can assert that an updater did
// or did not touch the document:
//
//	doc.ResetCalls()
//	store.Set("value", 6)
//	if len(doc.Calls()) != 1 { ... }
//
// # Snapshot Testing
//
// Capture and compare document snapshots stored as YAML:
//
//	doc.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update snapshots with:
//
//	RECALL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import recalltest "github.com/go-drift/recall/pkg/testing"
package testing
