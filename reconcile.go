package multisplit

import (
	"sort"

	"github.com/grindlemire/go-multisplit/pkg/geometry"
)

// OpKind discriminates reconciliation operations.
type OpKind uint8

const (
	// OpDestroy tears down the widget of a pane no longer in the tree.
	OpDestroy OpKind = iota
	// OpCreate instantiates the widget for a new pane.
	OpCreate
	// OpMove repositions a pane's widget whose size is unchanged.
	OpMove
	// OpUpdateRect resizes a pane's widget (and possibly moves it).
	OpUpdateRect
)

// String returns the operation kind's name.
func (k OpKind) String() string {
	switch k {
	case OpDestroy:
		return "destroy"
	case OpCreate:
		return "create"
	case OpMove:
		return "move"
	case OpUpdateRect:
		return "update-rect"
	}
	return "unknown"
}

// Operation is one widget lifecycle step produced by reconciliation.
// Widget is set on creates; Rect on moves and rect updates.
type Operation struct {
	Kind   OpKind
	Pane   PaneID
	Widget WidgetID
	Rect   geometry.Rect
}

// Reconcile computes the widget churn needed to turn the layout of prev
// into the layout of next. Leaves are matched by PaneID, never by
// position: a pane present in both trees yields neither create nor
// destroy, no matter how the structure around it changed — a parent
// split collapsing never recreates a surviving pane's widget. Split
// nodes carry no identity across trees and are never matched.
//
// The result is destroys (prev-tree walk order) followed by creates
// (next-tree walk order). Position and size changes are a geometry
// concern; diff Layout results with ReconcileRects. Either tree may be
// nil or torn down (treated as empty).
func Reconcile(prev, next *Tree) []Operation {
	oldLeaves := collectLeaves(prev)
	newLeaves := collectLeaves(next)

	var ops []Operation
	for _, l := range oldLeaves.ordered {
		if !newLeaves.ids[l.id] {
			ops = append(ops, Operation{Kind: OpDestroy, Pane: l.id})
		}
	}
	for _, l := range newLeaves.ordered {
		if !oldLeaves.ids[l.id] {
			ops = append(ops, Operation{Kind: OpCreate, Pane: l.id, Widget: l.widget})
		}
	}
	return ops
}

// ReconcileRects diffs two geometry results (as returned by Layout). A
// pane whose rectangle kept its size but changed origin yields a move;
// a pane whose size changed (or that has no previous rectangle) yields
// a rect update. Unchanged panes yield nothing, and panes absent from
// next yield nothing (their destroy comes from Reconcile).
//
// Operations are ordered by PaneID for determinism.
func ReconcileRects(prev, next map[PaneID]geometry.Rect) []Operation {
	ids := make([]PaneID, 0, len(next))
	for id := range next {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var ops []Operation
	for _, id := range ids {
		r := next[id]
		old, existed := prev[id]
		switch {
		case existed && old == r:
			// unchanged
		case existed && old.Width == r.Width && old.Height == r.Height:
			ops = append(ops, Operation{Kind: OpMove, Pane: id, Rect: r})
		default:
			ops = append(ops, Operation{Kind: OpUpdateRect, Pane: id, Rect: r})
		}
	}
	return ops
}

type leafEntry struct {
	id     PaneID
	widget WidgetID
}

type leafSet struct {
	ordered []leafEntry
	ids     map[PaneID]bool
}

func collectLeaves(t *Tree) leafSet {
	set := leafSet{ids: map[PaneID]bool{}}
	if t == nil {
		return set
	}
	t.WalkLeaves(func(l *LeafNode) bool {
		set.ordered = append(set.ordered, leafEntry{id: l.id, widget: l.widget})
		set.ids[l.id] = true
		return true
	})
	return set
}
