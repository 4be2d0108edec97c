package testing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure of a document subtree.
type Snapshot struct {
	Tree *SnapshotNode `yaml:"tree"`
}

// SnapshotNode is one element in a snapshot.
type SnapshotNode struct {
	Tag        string            `yaml:"tag"`
	Text       string            `yaml:"text,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Style      map[string]string `yaml:"style,omitempty"`
	Children   []*SnapshotNode   `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the document body.
func (d *Document) CaptureSnapshot() *Snapshot {
	return CaptureElement(d.body)
}

// CaptureElement captures the subtree rooted at e.
func CaptureElement(e *Element) *Snapshot {
	if e == nil {
		return &Snapshot{}
	}
	return &Snapshot{Tree: captureNode(e)}
}

func captureNode(e *Element) *SnapshotNode {
	node := &SnapshotNode{Tag: e.Tag, Text: e.text}
	if len(e.attrs) > 0 {
		node.Attributes = e.Attrs()
	}
	if len(e.style) > 0 {
		node.Style = e.Styles()
	}
	for _, child := range e.children {
		node.Children = append(node.Children, captureNode(child))
	}
	return node
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// RECALL_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("RECALL_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: RECALL_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: RECALL_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff between other (expected) and this snapshot (actual).
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}
