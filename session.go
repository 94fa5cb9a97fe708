package multisplit

import (
	"encoding/json"
	"fmt"
)

// Save serializes the tree's structure and focus to JSON. Only stable
// state is persisted: leaf pane IDs, widget IDs, orientations, and
// ratios. Maximize state is deliberately excluded; sessions always load
// in the normal state. Split IDs are not persisted either (they carry
// no identity across sessions) and are regenerated by Load.
func Save(t *Tree) ([]byte, error) {
	doc := sessionDoc{}
	if t.root != nil {
		doc.Root = encodeNode(t.root)
	}
	if t.focused != "" {
		id := string(t.focused)
		doc.FocusedPaneID = &id
	}
	return json.Marshal(doc)
}

// Load rebuilds a tree from data produced by Save (or any document
// matching the schema). The decoded structure is validated: ratio
// slices must match child counts and sum to 1, splits need two or more
// children, and leaf IDs must be unique. A focused_pane_id that does
// not resolve to a leaf falls back to the first leaf.
func Load(data []byte) (*Tree, error) {
	var doc sessionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("multisplit: decoding session: %w", err)
	}

	t := &Tree{}
	if doc.Root != nil {
		root, err := decodeNode(doc.Root)
		if err != nil {
			return nil, err
		}
		t.root = root
	}

	seen := map[PaneID]bool{}
	dup := false
	t.WalkLeaves(func(l *LeafNode) bool {
		if seen[l.id] {
			dup = true
			return false
		}
		seen[l.id] = true
		return true
	})
	if dup {
		return nil, fmt.Errorf("%w: duplicate pane ids in session", ErrInvalidStructure)
	}

	if doc.FocusedPaneID != nil && seen[PaneID(*doc.FocusedPaneID)] {
		t.focused = PaneID(*doc.FocusedPaneID)
	} else if l := firstLeaf(t.root); l != nil {
		t.focused = l.id
	}
	return t, nil
}

type sessionDoc struct {
	Root          *sessionNode `json:"root"`
	FocusedPaneID *string      `json:"focused_pane_id"`
}

type sessionNode struct {
	Type        string         `json:"type"`
	Orientation string         `json:"orientation,omitempty"`
	Ratios      []float64      `json:"ratios,omitempty"`
	Children    []*sessionNode `json:"children,omitempty"`
	PaneID      string         `json:"pane_id,omitempty"`
	WidgetID    string         `json:"widget_id,omitempty"`
}

func encodeNode(n Node) *sessionNode {
	switch n := n.(type) {
	case *LeafNode:
		return &sessionNode{
			Type:     "leaf",
			PaneID:   string(n.id),
			WidgetID: string(n.widget),
		}
	case *SplitNode:
		out := &sessionNode{
			Type:        "split",
			Orientation: n.orientation.String(),
			Ratios:      n.Ratios(),
		}
		for _, child := range n.children {
			out.Children = append(out.Children, encodeNode(child))
		}
		return out
	}
	return nil
}

func decodeNode(sn *sessionNode) (Node, error) {
	switch sn.Type {
	case "leaf":
		if sn.PaneID == "" {
			return nil, fmt.Errorf("%w: leaf without pane_id", ErrInvalidStructure)
		}
		return &LeafNode{id: PaneID(sn.PaneID), widget: WidgetID(sn.WidgetID)}, nil

	case "split":
		var o Orientation
		switch sn.Orientation {
		case "horizontal":
			o = Horizontal
		case "vertical":
			o = Vertical
		default:
			return nil, fmt.Errorf("%w: unknown orientation %q", ErrInvalidStructure, sn.Orientation)
		}
		if len(sn.Children) < 2 {
			return nil, fmt.Errorf("%w: split with %d children", ErrInvalidStructure, len(sn.Children))
		}
		if err := validateRatios(sn.Ratios, len(sn.Children)); err != nil {
			return nil, err
		}
		split := &SplitNode{
			id:          newPaneID(),
			orientation: o,
			ratios:      append([]float64(nil), sn.Ratios...),
		}
		for _, child := range sn.Children {
			decoded, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			split.children = append(split.children, decoded)
		}
		return split, nil

	default:
		return nil, fmt.Errorf("%w: unknown node type %q", ErrInvalidStructure, sn.Type)
	}
}
