package multisplit

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	tree, a := New("editor")
	b, _ := tree.InsertSplit(a, Horizontal, "terminal", 0.3)
	tree.InsertSplit(b, Vertical, "logs", 0.5)
	tree.SetFocus(b)

	data, err := Save(tree)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	mustValidate(t, loaded)

	if !treesEqual(tree, loaded) {
		t.Error("loaded tree differs from saved tree")
	}
	if loaded.FocusedPane() != b {
		t.Errorf("focus = %q, want %q", loaded.FocusedPane(), b)
	}
}

func TestSaveLoad_MaximizeIsNotPersisted(t *testing.T) {
	tree, _ := New("editor")
	tree.InsertSplit(tree.FocusedPane(), Horizontal, "terminal", 0.5)
	if err := tree.ToggleMaximize(); err != nil {
		t.Fatalf("ToggleMaximize: %v", err)
	}

	data, err := Save(tree)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := raw["maximized_pane_id"]; present {
		t.Error("maximized_pane_id leaked into the persisted document")
	}

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.IsMaximized() {
		t.Error("sessions must always load in the normal state")
	}
}

func TestLoad_DanglingFocusFallsBackToFirstLeaf(t *testing.T) {
	doc := `{
		"root": {
			"type": "split", "orientation": "horizontal",
			"ratios": [0.5, 0.5],
			"children": [
				{"type": "leaf", "pane_id": "p1", "widget_id": "a"},
				{"type": "leaf", "pane_id": "p2", "widget_id": "b"}
			]
		},
		"focused_pane_id": "ghost"
	}`
	tree, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tree.FocusedPane() != "p1" {
		t.Errorf("focus = %q, want first leaf p1", tree.FocusedPane())
	}
}

func TestLoad_RejectsMalformedDocuments(t *testing.T) {
	tests := map[string]struct {
		doc      string
		expected error
	}{
		"split with one child": {
			doc: `{"root": {"type": "split", "orientation": "horizontal",
				"ratios": [1.0],
				"children": [{"type": "leaf", "pane_id": "p1", "widget_id": "a"}]}}`,
			expected: ErrInvalidStructure,
		},
		"ratios do not sum to one": {
			doc: `{"root": {"type": "split", "orientation": "horizontal",
				"ratios": [0.9, 0.6],
				"children": [
					{"type": "leaf", "pane_id": "p1", "widget_id": "a"},
					{"type": "leaf", "pane_id": "p2", "widget_id": "b"}]}}`,
			expected: ErrInvalidRatios,
		},
		"duplicate pane ids": {
			doc: `{"root": {"type": "split", "orientation": "vertical",
				"ratios": [0.5, 0.5],
				"children": [
					{"type": "leaf", "pane_id": "p1", "widget_id": "a"},
					{"type": "leaf", "pane_id": "p1", "widget_id": "b"}]}}`,
			expected: ErrInvalidStructure,
		},
		"unknown orientation": {
			doc: `{"root": {"type": "split", "orientation": "diagonal",
				"ratios": [0.5, 0.5],
				"children": [
					{"type": "leaf", "pane_id": "p1", "widget_id": "a"},
					{"type": "leaf", "pane_id": "p2", "widget_id": "b"}]}}`,
			expected: ErrInvalidStructure,
		},
		"leaf without pane id": {
			doc:      `{"root": {"type": "leaf", "widget_id": "a"}}`,
			expected: ErrInvalidStructure,
		},
		"unknown node type": {
			doc:      `{"root": {"type": "tab"}}`,
			expected: ErrInvalidStructure,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			if !errors.Is(err, tt.expected) {
				t.Errorf("err = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestLoad_EmptyRoot(t *testing.T) {
	tree, err := Load([]byte(`{"root": null, "focused_pane_id": null}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tree.Root() != nil {
		t.Error("root should be nil")
	}
	if tree.FocusedPane() != "" {
		t.Errorf("focus = %q, want none", tree.FocusedPane())
	}
}
