package multisplit

import "github.com/grindlemire/go-multisplit/pkg/geometry"

// LayoutOption adjusts a Layout computation.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	minExtent int
}

// WithMinExtent sets a minimum extent per pane along each split's axis.
// When a parent rectangle is too small to grant every child the
// minimum, siblings above the minimum shrink proportionally to
// compensate; when even the minimums alone do not fit, every pane is
// sized at the minimum and the overflow is left to whoever renders.
func WithMinExtent(n int) LayoutOption {
	return func(c *layoutConfig) { c.minExtent = n }
}

// Layout computes the rectangle of every leaf in the tree within
// bounds. It is a pure function of the tree structure: no state is
// stored, and focus/maximize are ignored (a View renders a maximized
// pane by giving MaximizedPane() the full bounds itself).
//
// For each split, children are partitioned along the split's axis by
// ratio, with the last child absorbing the rounding remainder; the
// cross axis always spans the full extent. The leaf rectangles exactly
// tile bounds, except in the minimum-size overflow case described at
// WithMinExtent.
func Layout(t *Tree, bounds geometry.Rect, opts ...LayoutOption) map[PaneID]geometry.Rect {
	var cfg layoutConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rects := make(map[PaneID]geometry.Rect)
	if t == nil || t.root == nil {
		return rects
	}
	layoutNode(t.root, bounds, cfg, rects)
	return rects
}

func layoutNode(n Node, bounds geometry.Rect, cfg layoutConfig, rects map[PaneID]geometry.Rect) {
	switch n := n.(type) {
	case *LeafNode:
		rects[n.id] = bounds
	case *SplitNode:
		extent := bounds.Width
		if n.orientation == Vertical {
			extent = bounds.Height
		}
		widths := geometry.Partition(extent, n.ratios, cfg.minExtent)

		offset := 0
		for i, child := range n.children {
			var r geometry.Rect
			if n.orientation == Horizontal {
				r = geometry.NewRect(bounds.X+offset, bounds.Y, widths[i], bounds.Height)
			} else {
				r = geometry.NewRect(bounds.X, bounds.Y+offset, bounds.Width, widths[i])
			}
			offset += widths[i]
			layoutNode(child, r, cfg, rects)
		}
	}
}
