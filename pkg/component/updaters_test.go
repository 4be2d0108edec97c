package component

import (
	"testing"

	"github.com/go-drift/recall/pkg/reactive"
	recalltest "github.com/go-drift/recall/pkg/testing"
)

// optional returns a data source backed by a store field that reports unset
// when the field holds nil.
func optional(s *reactive.Store, name string) DataSource {
	return func() (any, bool) {
		v, ok := s.Get(name)
		return v, ok && v != nil
	}
}

func TestText_RendersAndFollowsStore(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"value": 0})
	c := New(doc, "span", Sources{"label": optional(s, "value")}, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("label", "value")),
	})
	doc.Mount(c.Root())

	c.Text("label")
	if !doc.Find(recalltest.ByText("0")).Exists() {
		t.Fatal("binding should render the current value immediately")
	}

	s.Set("value", 5)
	if !doc.Find(recalltest.ByText("5")).Exists() {
		t.Error("expected text 5 after write")
	}

	s.Set("value", nil)
	if got := c.Root().(*recalltest.Element).Text(); got != "" {
		t.Errorf("unset value should render empty text, got %q", got)
	}
}

func TestText_AlternateNode(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"name": "ada"})
	c := New(doc, "div", Sources{"name": optional(s, "name")}, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("name", "name")),
	})
	inner := doc.CreateElement("b")
	doc.AppendChild(c.Root(), inner)

	c.Text("name", On(inner))

	if inner.(*recalltest.Element).Text() != "ada" {
		t.Errorf("inner text = %q, want ada", inner.(*recalltest.Element).Text())
	}
	if c.Root().(*recalltest.Element).Text() != "" {
		t.Error("root text should be untouched")
	}
}

func TestAttribute_SetAndRemove(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"href": "/home"})
	c := New(doc, "a", Sources{"link": optional(s, "href")}, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("link", "href")),
	})
	root := c.Root().(*recalltest.Element)

	c.Attribute("link", "href")
	if v, _ := root.Attr("href"); v != "/home" {
		t.Errorf("href = %q, want /home", v)
	}

	s.Set("href", nil)
	if _, ok := root.Attr("href"); ok {
		t.Error("unset value should remove the attribute")
	}
}

func TestStyle_SetAndClear(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"color": "red"})
	c := New(doc, "p", Sources{"tint": optional(s, "color")}, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("tint", "color")),
	})
	root := c.Root().(*recalltest.Element)

	c.Style("tint", "color")
	if root.Style("color") != "red" {
		t.Errorf("color = %q, want red", root.Style("color"))
	}

	s.Set("color", "blue")
	if root.Style("color") != "blue" {
		t.Errorf("color = %q, want blue", root.Style("color"))
	}

	s.Set("color", nil)
	if _, ok := root.Styles()["color"]; ok {
		t.Error("unset value should clear the style property")
	}
}

func TestUpdaters_MissingSourceSkipsSurface(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"value": 1})
	c := New(doc, "span", nil, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("label", "value")),
	})
	doc.ResetCalls()

	c.Text("label")
	c.Attribute("label", "title")
	c.Style("label", "color")
	s.Set("value", 2)

	if calls := doc.Calls(); len(calls) != 0 {
		t.Errorf("expected no surface calls without a data source, got %v", calls)
	}
}

func TestUpdaters_RenderEachWrite(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"value": 1})
	c := New(doc, "span", Sources{"label": optional(s, "value")}, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("label", "value")),
	})
	c.Text("label")
	doc.ResetCalls()

	s.Set("value", 1)
	s.Set("value", 1)

	if n := len(doc.Calls()); n != 2 {
		t.Errorf("expected a render per write, got %d calls", n)
	}
}

func TestSnapshot_BoundComponent(t *testing.T) {
	doc := recalltest.NewDocument()
	s := reactive.Remember(map[string]any{"value": 3, "color": "green"})
	c := New(doc, "span", Sources{
		"label": optional(s, "value"),
		"tint":  optional(s, "color"),
	}, reactive.Descriptor{
		reactive.Observe(s, reactive.Dep("label", "value"), reactive.Dep("tint", "color")),
	})
	c.Text("label")
	c.Style("tint", "color")
	doc.Mount(c.Root())

	want := &recalltest.Snapshot{Tree: &recalltest.SnapshotNode{
		Tag: "body",
		Children: []*recalltest.SnapshotNode{{
			Tag:   "span",
			Text:  "3",
			Style: map[string]string{"color": "green"},
		}},
	}}
	if diff := doc.CaptureSnapshot().Diff(want); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
