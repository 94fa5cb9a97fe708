package multisplit

import (
	"fmt"
	"math"
)

// ratioTolerance is the allowed deviation of a split's ratio sum from 1.
const ratioTolerance = 1e-3

// Validate sweeps the tree for structural invariant violations and
// returns one error per violation, each matching ErrInvalidStructure
// via errors.Is. A healthy tree returns nil. Validate never mutates.
//
// Checked invariants: ratio slices match child counts, are positive,
// and sum to 1 within tolerance; every split has at least two children;
// node IDs are unique; focus and maximize references resolve to leaves.
func (t *Tree) Validate() []error {
	var violations []error
	fail := func(format string, args ...any) {
		violations = append(violations,
			fmt.Errorf("%w: %s", ErrInvalidStructure, fmt.Sprintf(format, args...)))
	}

	seen := map[PaneID]bool{}
	walkNodes(t.root, func(n Node) bool {
		if seen[n.ID()] {
			fail("duplicate node id %q", n.ID())
		}
		seen[n.ID()] = true

		s, ok := n.(*SplitNode)
		if !ok {
			return true
		}
		if len(s.children) < 2 {
			fail("split %q has %d children, need at least 2", s.id, len(s.children))
		}
		if len(s.ratios) != len(s.children) {
			fail("split %q has %d ratios for %d children", s.id, len(s.ratios), len(s.children))
			return true
		}
		sum := 0.0
		for i, r := range s.ratios {
			if r <= 0 {
				fail("split %q ratio %d is %v, must be positive", s.id, i, r)
			}
			sum += r
		}
		if math.Abs(sum-1) >= ratioTolerance {
			fail("split %q ratios sum to %v", s.id, sum)
		}
		return true
	})

	if t.focused != "" && t.FindLeaf(t.focused) == nil {
		fail("focused pane %q is not a leaf in the tree", t.focused)
	}
	if t.maximized != "" && t.FindLeaf(t.maximized) == nil {
		fail("maximized pane %q is not a leaf in the tree", t.maximized)
	}
	return violations
}

// validateRatios checks a proposed ratio slice against a child count:
// matching length, positive entries, sum within tolerance of 1.
func validateRatios(ratios []float64, children int) error {
	if len(ratios) != children {
		return fmt.Errorf("%w: %d ratios for %d children", ErrInvalidRatios, len(ratios), children)
	}
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			return fmt.Errorf("%w: ratio %d is %v, must be positive", ErrInvalidRatios, i, r)
		}
		sum += r
	}
	if math.Abs(sum-1) >= ratioTolerance {
		return fmt.Errorf("%w: ratios sum to %v, want 1", ErrInvalidRatios, sum)
	}
	return nil
}
