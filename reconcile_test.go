package multisplit

import (
	"testing"

	"github.com/grindlemire/go-multisplit/pkg/geometry"
)

func TestReconcile_SplitCreatesOnlyTheNewPane(t *testing.T) {
	tree, l1 := New("editor")
	prev := tree.Clone()
	l2, _ := tree.InsertSplit(l1, Vertical, "terminal", 0.5)

	ops := Reconcile(prev, tree)
	if len(ops) != 1 {
		t.Fatalf("ops = %v, want exactly one create", ops)
	}
	op := ops[0]
	if op.Kind != OpCreate || op.Pane != l2 || op.Widget != "terminal" {
		t.Errorf("op = %+v, want Create(%s, terminal)", op, l2)
	}
}

func TestReconcile_CollapseDestroysOnlyTheRemovedPane(t *testing.T) {
	// Removing l1 collapses the split and moves l2 to the root; l2's
	// widget must survive untouched — identity matters, not position.
	tree, l1 := New("editor")
	tree.InsertSplit(l1, Vertical, "terminal", 0.5)
	prev := tree.Clone()

	if err := tree.RemoveLeaf(l1); err != nil {
		t.Fatalf("RemoveLeaf: %v", err)
	}
	ops := Reconcile(prev, tree)
	if len(ops) != 1 {
		t.Fatalf("ops = %v, want exactly one destroy", ops)
	}
	if ops[0].Kind != OpDestroy || ops[0].Pane != l1 {
		t.Errorf("op = %+v, want Destroy(%s)", ops[0], l1)
	}
}

func TestReconcile_SurvivorsNeverChurn(t *testing.T) {
	// Property: a pane present in both trees yields no create and no
	// destroy, across an aggressive restructure.
	tree, a := New("w0")
	b, _ := tree.InsertSplit(a, Horizontal, "w1", 0.5)
	c, _ := tree.InsertSplit(b, Vertical, "w2", 0.5)
	prev := tree.Clone()

	tree.RemoveLeaf(a)                           // collapses root
	d, _ := tree.InsertSplit(c, Horizontal, "w3", 0.3) // new structure around c

	survivors := map[PaneID]bool{b: true, c: true}
	for _, op := range Reconcile(prev, tree) {
		if (op.Kind == OpCreate || op.Kind == OpDestroy) && survivors[op.Pane] {
			t.Errorf("survivor %q churned: %+v", op.Pane, op)
		}
	}

	// And the expected churn is exactly: destroy a, create d.
	ops := Reconcile(prev, tree)
	if len(ops) != 2 {
		t.Fatalf("ops = %v, want [Destroy(a) Create(d)]", ops)
	}
	if ops[0].Kind != OpDestroy || ops[0].Pane != a {
		t.Errorf("ops[0] = %+v, want Destroy(%s)", ops[0], a)
	}
	if ops[1].Kind != OpCreate || ops[1].Pane != d {
		t.Errorf("ops[1] = %+v, want Create(%s)", ops[1], d)
	}
}

func TestReconcile_DestroysBeforeCreates(t *testing.T) {
	tree, a := New("w0")
	prev := tree.Clone()
	b, _ := tree.InsertSplit(a, Horizontal, "w1", 0.5)
	tree.RemoveLeaf(a)
	tree.InsertSplit(b, Vertical, "w2", 0.5)

	ops := Reconcile(prev, tree)
	sawCreate := false
	for _, op := range ops {
		switch op.Kind {
		case OpCreate:
			sawCreate = true
		case OpDestroy:
			if sawCreate {
				t.Fatalf("destroy after create in %v", ops)
			}
		}
	}
}

func TestReconcile_TeardownDestroysEverything(t *testing.T) {
	tree, a := New("w0")
	b, _ := tree.InsertSplit(a, Horizontal, "w1", 0.5)
	prev := tree.Clone()
	tree.Teardown()

	ops := Reconcile(prev, tree)
	if len(ops) != 2 {
		t.Fatalf("ops = %v, want two destroys", ops)
	}
	if ops[0].Kind != OpDestroy || ops[0].Pane != a {
		t.Errorf("ops[0] = %+v, want Destroy(%s) (prev-tree walk order)", ops[0], a)
	}
	if ops[1].Kind != OpDestroy || ops[1].Pane != b {
		t.Errorf("ops[1] = %+v, want Destroy(%s)", ops[1], b)
	}
}

func TestReconcile_NilTrees(t *testing.T) {
	tree, a := New("w0")
	ops := Reconcile(nil, tree)
	if len(ops) != 1 || ops[0].Kind != OpCreate || ops[0].Pane != a {
		t.Errorf("ops = %v, want [Create(%s)]", ops, a)
	}
	if ops := Reconcile(tree, nil); len(ops) != 1 || ops[0].Kind != OpDestroy {
		t.Errorf("ops = %v, want [Destroy(%s)]", ops, a)
	}
	if ops := Reconcile(nil, nil); len(ops) != 0 {
		t.Errorf("ops = %v, want none", ops)
	}
}

func TestReconcileRects(t *testing.T) {
	r := geometry.NewRect

	type tc struct {
		prev     map[PaneID]geometry.Rect
		next     map[PaneID]geometry.Rect
		expected []Operation
	}
	tests := map[string]tc{
		"unchanged rect yields nothing": {
			prev:     map[PaneID]geometry.Rect{"p1": r(0, 0, 100, 50)},
			next:     map[PaneID]geometry.Rect{"p1": r(0, 0, 100, 50)},
			expected: nil,
		},
		"same size new origin is a move": {
			prev: map[PaneID]geometry.Rect{"p1": r(0, 0, 100, 50)},
			next: map[PaneID]geometry.Rect{"p1": r(50, 0, 100, 50)},
			expected: []Operation{
				{Kind: OpMove, Pane: "p1", Rect: r(50, 0, 100, 50)},
			},
		},
		"resize is a rect update": {
			prev: map[PaneID]geometry.Rect{"p1": r(0, 0, 100, 50)},
			next: map[PaneID]geometry.Rect{"p1": r(0, 0, 60, 50)},
			expected: []Operation{
				{Kind: OpUpdateRect, Pane: "p1", Rect: r(0, 0, 60, 50)},
			},
		},
		"new pane gets its initial rect": {
			prev: map[PaneID]geometry.Rect{},
			next: map[PaneID]geometry.Rect{"p1": r(0, 0, 10, 10)},
			expected: []Operation{
				{Kind: OpUpdateRect, Pane: "p1", Rect: r(0, 0, 10, 10)},
			},
		},
		"vanished pane yields nothing": {
			prev:     map[PaneID]geometry.Rect{"p1": r(0, 0, 10, 10)},
			next:     map[PaneID]geometry.Rect{},
			expected: nil,
		},
		"ordering is deterministic by pane id": {
			prev: map[PaneID]geometry.Rect{},
			next: map[PaneID]geometry.Rect{
				"p2": r(0, 0, 1, 1),
				"p1": r(1, 0, 1, 1),
				"p3": r(2, 0, 1, 1),
			},
			expected: []Operation{
				{Kind: OpUpdateRect, Pane: "p1", Rect: r(1, 0, 1, 1)},
				{Kind: OpUpdateRect, Pane: "p2", Rect: r(0, 0, 1, 1)},
				{Kind: OpUpdateRect, Pane: "p3", Rect: r(2, 0, 1, 1)},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ReconcileRects(tt.prev, tt.next)
			if len(got) != len(tt.expected) {
				t.Fatalf("ops = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("ops[%d] = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestReconcile_EndToEndWithGeometry(t *testing.T) {
	// The View's full loop: layout, mutate, layout again, reconcile
	// structure and rects, and apply. The surviving pane resizes
	// without being recreated.
	bounds := geometry.NewRect(0, 0, 100, 100)
	tree, a := New("w0")
	prev := tree.Clone()
	prevRects := Layout(prev, bounds)
	if prevRects[a] != bounds {
		t.Fatalf("initial rect = %+v, want full bounds", prevRects[a])
	}

	b, _ := tree.InsertSplit(a, Horizontal, "w1", 0.5)
	rects := Layout(tree, bounds)

	ops := append(Reconcile(prev, tree), ReconcileRects(prevRects, rects)...)

	var kinds []string
	for _, op := range ops {
		kinds = append(kinds, op.Kind.String()+":"+string(op.Pane))
	}
	wantCreate := "create:" + string(b)
	if kinds[0] != wantCreate {
		t.Errorf("first op = %s, want %s", kinds[0], wantCreate)
	}
	// Both panes' rects changed: a shrank, b appeared.
	updates := 0
	for _, op := range ops[1:] {
		if op.Kind == OpUpdateRect {
			updates++
		}
	}
	if updates != 2 {
		t.Errorf("rect updates = %d, want 2 (ops: %v)", updates, kinds)
	}
}
