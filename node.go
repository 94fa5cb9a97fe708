package multisplit

// Orientation is the axis along which a split divides its space.
type Orientation uint8

const (
	// Horizontal splits divide space left-to-right (children side by side).
	Horizontal Orientation = iota
	// Vertical splits divide space top-to-bottom (children stacked).
	Vertical
)

// String returns the persisted name of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Node is one node of a pane tree: either a *SplitNode or a *LeafNode.
// The variant set is closed; consumers type-switch over the two
// concrete types. Nodes are owned exclusively by their Tree and must
// not be mutated by callers.
type Node interface {
	// ID returns the node's identifier. Only leaf IDs are stable
	// across sessions; see PaneID.
	ID() PaneID

	isNode()
}

// SplitNode divides its rectangle among two or more children along one
// axis. Each child's share is its ratio; the ratios are positive and
// sum to 1. A split with fewer than two children never survives a
// mutation (it is collapsed into its remaining child).
type SplitNode struct {
	id          PaneID
	orientation Orientation
	ratios      []float64
	children    []Node
}

func (s *SplitNode) isNode() {}

// ID returns the split's identifier.
func (s *SplitNode) ID() PaneID { return s.id }

// Orientation returns the split axis.
func (s *SplitNode) Orientation() Orientation { return s.orientation }

// Ratios returns a copy of the children's shares, in child order.
func (s *SplitNode) Ratios() []float64 {
	out := make([]float64, len(s.ratios))
	copy(out, s.ratios)
	return out
}

// Children returns the child nodes in order. The slice is owned by the
// tree; treat it as read-only.
func (s *SplitNode) Children() []Node { return s.children }

// LeafNode is a terminal node representing one pane of content. The
// engine never instantiates the content itself; Widget names it for the
// external Provider.
type LeafNode struct {
	id     PaneID
	widget WidgetID
}

func (l *LeafNode) isNode() {}

// ID returns the leaf's pane identifier.
func (l *LeafNode) ID() PaneID { return l.id }

// Widget returns the opaque widget identifier for this pane.
func (l *LeafNode) Widget() WidgetID { return l.widget }

// cloneNode deep-copies a subtree, preserving all IDs.
func cloneNode(n Node) Node {
	switch n := n.(type) {
	case *LeafNode:
		c := *n
		return &c
	case *SplitNode:
		c := &SplitNode{
			id:          n.id,
			orientation: n.orientation,
			ratios:      make([]float64, len(n.ratios)),
			children:    make([]Node, len(n.children)),
		}
		copy(c.ratios, n.ratios)
		for i, child := range n.children {
			c.children[i] = cloneNode(child)
		}
		return c
	default:
		return nil
	}
}

// walkLeaves calls fn for each leaf under n in depth-first child order.
// fn returning false stops the walk.
func walkLeaves(n Node, fn func(*LeafNode) bool) bool {
	switch n := n.(type) {
	case *LeafNode:
		return fn(n)
	case *SplitNode:
		for _, child := range n.children {
			if !walkLeaves(child, fn) {
				return false
			}
		}
	}
	return true
}

// walkNodes calls fn for each node under n (including n itself) in
// depth-first pre-order. fn returning false stops the walk.
func walkNodes(n Node, fn func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if s, ok := n.(*SplitNode); ok {
		for _, child := range s.children {
			if !walkNodes(child, fn) {
				return false
			}
		}
	}
	return true
}

// findNode locates id under n, returning the node, its parent split
// (nil for the root), and its index within the parent.
func findNode(n Node, id PaneID) (node Node, parent *SplitNode, index int) {
	var walk func(cur Node, par *SplitNode, idx int) bool
	walk = func(cur Node, par *SplitNode, idx int) bool {
		if cur.ID() == id {
			node, parent, index = cur, par, idx
			return false
		}
		if s, ok := cur.(*SplitNode); ok {
			for i, child := range s.children {
				if !walk(child, s, i) {
					return false
				}
			}
		}
		return true
	}
	if n != nil {
		walk(n, nil, 0)
	}
	return node, parent, index
}

// firstLeaf returns the first leaf in depth-first order, or nil.
func firstLeaf(n Node) *LeafNode {
	var found *LeafNode
	walkLeaves(n, func(l *LeafNode) bool {
		found = l
		return false
	})
	return found
}
