package multisplit

import (
	"fmt"

	"github.com/grindlemire/go-multisplit/internal/debug"
)

// Tree is a mutable split-pane layout: a recursive arrangement of
// splits and leaves plus the focused and maximized pane state. A tree
// always contains at least one pane, except after an explicit Teardown.
//
// The tree exclusively owns its nodes. It is not safe for concurrent
// use; callers serialize access externally. Mutations are synchronous
// and never block.
type Tree struct {
	root      Node
	focused   PaneID
	maximized PaneID
	policy    MaximizePolicy

	signals        signalBus
	batching       bool
	batchAnnounced bool
	batchDirty     bool
	batchFocus     PaneID
	batchMaximized PaneID
}

// New creates a tree containing a single focused leaf displaying
// widget, and returns the tree and the leaf's PaneID.
func New(widget WidgetID) (*Tree, PaneID) {
	leaf := &LeafNode{id: newPaneID(), widget: widget}
	t := &Tree{root: leaf, focused: leaf.id}
	return t, leaf.id
}

// Root returns the root node, or nil after Teardown.
func (t *Tree) Root() Node { return t.root }

// FocusedPane returns the focused leaf's PaneID, or the zero PaneID.
func (t *Tree) FocusedPane() PaneID { return t.focused }

// FindLeaf returns the leaf with the given PaneID, or nil.
func (t *Tree) FindLeaf(pane PaneID) *LeafNode {
	node, _, _ := findNode(t.root, pane)
	leaf, _ := node.(*LeafNode)
	return leaf
}

// FindNode returns the node (leaf or split) with the given PaneID, or nil.
func (t *Tree) FindNode(pane PaneID) Node {
	node, _, _ := findNode(t.root, pane)
	return node
}

// Leaves returns all leaves in depth-first child order.
func (t *Tree) Leaves() []*LeafNode {
	var out []*LeafNode
	t.WalkLeaves(func(l *LeafNode) bool {
		out = append(out, l)
		return true
	})
	return out
}

// WalkLeaves calls fn for each leaf in depth-first child order until fn
// returns false.
func (t *Tree) WalkLeaves(fn func(*LeafNode) bool) {
	if t.root != nil {
		walkLeaves(t.root, fn)
	}
}

// PaneCount returns the number of leaves in the tree.
func (t *Tree) PaneCount() int {
	n := 0
	t.WalkLeaves(func(*LeafNode) bool {
		n++
		return true
	})
	return n
}

// Clone returns a deep structural copy of the tree: nodes (IDs
// preserved), focus, maximize state, and policy. Signal handlers are
// not copied; the clone has a fresh, empty bus. Commands use clones as
// undo snapshots.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		focused:   t.focused,
		maximized: t.maximized,
		policy:    t.policy,
	}
	if t.root != nil {
		c.root = cloneNode(t.root)
	}
	return c
}

// restore overwrites the tree's structure and pane state from a
// snapshot, leaving signal handlers and batch state intact. Emits the
// standard mutation signals.
func (t *Tree) restore(snapshot *Tree) {
	t.announceChange()
	t.root = nil
	if snapshot.root != nil {
		t.root = cloneNode(snapshot.root)
	}
	if t.focused != snapshot.focused {
		t.focused = snapshot.focused
		t.emitNodeChanged(t.focused)
	}
	if t.maximized != snapshot.maximized {
		t.maximized = snapshot.maximized
		t.emitMaximizeChanged(t.maximized)
	}
	t.finishChange()
}

// InsertSplit replaces the leaf at target with a split containing that
// leaf and a new leaf displaying widget. ratio is the new pane's share
// of the target's space, exclusive within (0, 1); the target keeps the
// rest. If the target's parent is already a split with the same
// orientation, the new leaf is instead inserted as the sibling
// immediately after the target, subdividing the target's share, so
// repeated same-axis splits stay flat.
//
// Returns the new leaf's PaneID.
func (t *Tree) InsertSplit(target PaneID, o Orientation, widget WidgetID, ratio float64) (PaneID, error) {
	return t.insertSplit(target, o, widget, ratio, "", "")
}

// insertSplit implements InsertSplit. A non-zero pane (and, for the
// nested case, split) reuses that ID for the created node instead of
// minting a fresh one: redoing a split must recreate the identical
// PaneIDs, or every later history entry referencing them would dangle.
func (t *Tree) insertSplit(target PaneID, o Orientation, widget WidgetID, ratio float64, pane, splitID PaneID) (PaneID, error) {
	if ratio <= 0 || ratio >= 1 {
		return "", fmt.Errorf("%w: split ratio %v outside (0, 1)", ErrInvalidRatios, ratio)
	}
	node, parent, idx := findNode(t.root, target)
	leaf, ok := node.(*LeafNode)
	if !ok {
		return "", fmt.Errorf("%w: %q does not resolve to a leaf", ErrPaneNotFound, target)
	}

	t.announceChange()

	// Splitting always exits maximize mode first; operating on a hidden
	// layout would desynchronize the View.
	t.restoreMaximize()

	if pane == "" {
		pane = newPaneID()
	}
	newLeaf := &LeafNode{id: pane, widget: widget}

	if parent != nil && parent.orientation == o {
		share := parent.ratios[idx]
		parent.ratios[idx] = share * (1 - ratio)
		parent.ratios = insertFloat(parent.ratios, idx+1, share*ratio)
		parent.children = insertNode(parent.children, idx+1, newLeaf)
	} else {
		if splitID == "" {
			splitID = newPaneID()
		}
		split := &SplitNode{
			id:          splitID,
			orientation: o,
			ratios:      []float64{1 - ratio, ratio},
			children:    []Node{leaf, newLeaf},
		}
		t.replaceChild(parent, idx, split)
	}

	debug.Log("InsertSplit: %s %s of %s -> %s", o, widget, target, newLeaf.id)
	t.finishChange()
	return newLeaf.id, nil
}

// RemoveLeaf deletes the leaf at pane. If the parent split is left with
// a single child, the split collapses into that child (its ratio
// renormalized), cascading upward. The focused pane is reassigned to
// the first leaf if it was removed; the maximized pane is restored to
// normal if it was removed. Removing the tree's only leaf fails with
// ErrLastPane; use Teardown to dispose of a whole tree.
func (t *Tree) RemoveLeaf(pane PaneID) error {
	node, parent, idx := findNode(t.root, pane)
	if _, ok := node.(*LeafNode); !ok {
		return fmt.Errorf("%w: %q does not resolve to a leaf", ErrPaneNotFound, pane)
	}
	if parent == nil {
		return ErrLastPane
	}

	t.announceChange()
	parent.children = removeNode(parent.children, idx)
	parent.ratios = removeFloat(parent.ratios, idx)
	renormalize(parent.ratios)

	// A one-child split collapses into its child. The cascade loop
	// terminates immediately in practice (collapsing never shrinks the
	// grandparent), but walking up keeps the invariant locally obvious.
	for cur := parent; cur != nil && len(cur.children) == 1; {
		child := cur.children[0]
		_, gp, gpIdx := findNode(t.root, cur.id)
		t.replaceChild(gp, gpIdx, child)
		cur = gp
	}

	if t.maximized == pane {
		t.restoreMaximize()
	}
	if t.focused == pane {
		t.focused = ""
		if l := firstLeaf(t.root); l != nil {
			t.focused = l.id
		}
		t.emitNodeChanged(t.focused)
	}

	debug.Log("RemoveLeaf: %s (now %d panes)", pane, t.PaneCount())
	t.finishChange()
	return nil
}

// Teardown disposes of the entire tree: the root is cleared and focus
// and maximize state are reset. This is the only operation that leaves
// a tree with zero panes.
func (t *Tree) Teardown() {
	if t.root == nil {
		return
	}
	t.announceChange()
	t.root = nil
	t.focused = ""
	t.restoreMaximize()
	t.emitNodeChanged("")
	t.finishChange()
}

// SetRatios replaces the child shares of the split at split. The slice
// must have one entry per child, all positive, summing to 1 within
// tolerance.
func (t *Tree) SetRatios(split PaneID, ratios []float64) error {
	node, _, _ := findNode(t.root, split)
	s, ok := node.(*SplitNode)
	if !ok {
		return fmt.Errorf("%w: %q does not resolve to a split", ErrPaneNotFound, split)
	}
	if err := validateRatios(ratios, len(s.children)); err != nil {
		return err
	}

	t.announceChange()
	s.ratios = make([]float64, len(ratios))
	copy(s.ratios, ratios)
	t.finishChange()
	return nil
}

// SetFocus moves focus to the leaf at pane. Focusing the already
// focused pane is a no-op. Moving focus away from a maximized pane
// auto-restores the tree to normal under the default policy, or fails
// with ErrFocusLocked under MaximizeLockFocus.
func (t *Tree) SetFocus(pane PaneID) error {
	node, _, _ := findNode(t.root, pane)
	if _, ok := node.(*LeafNode); !ok {
		return fmt.Errorf("%w: %q does not resolve to a leaf", ErrPaneNotFound, pane)
	}
	if t.focused == pane {
		return nil
	}
	if t.maximized != "" && t.maximized != pane && t.policy == MaximizeLockFocus {
		return ErrFocusLocked
	}

	t.announceChange()
	t.focused = pane
	if t.maximized != pane {
		t.restoreMaximize()
	}
	t.emitNodeChanged(pane)
	t.finishChange()
	return nil
}

// replaceChild installs n at index idx of parent, or as the root when
// parent is nil.
func (t *Tree) replaceChild(parent *SplitNode, idx int, n Node) {
	if parent == nil {
		t.root = n
		return
	}
	parent.children[idx] = n
}

func renormalize(ratios []float64) {
	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		return
	}
	for i := range ratios {
		ratios[i] /= sum
	}
}

func insertNode(s []Node, i int, n Node) []Node {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = n
	return s
}

func removeNode(s []Node, i int) []Node {
	return append(s[:i], s[i+1:]...)
}

func insertFloat(s []float64, i int, v float64) []float64 {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeFloat(s []float64, i int) []float64 {
	return append(s[:i], s[i+1:]...)
}
