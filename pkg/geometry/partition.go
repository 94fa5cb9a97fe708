package geometry

import "math"

// Partition divides extent into len(ratios) integer widths proportional
// to ratios. Every width except the last is round(ratio*extent); the
// last width is the remainder, so the widths always sum to exactly
// extent regardless of rounding error.
//
// If minWidth > 0, widths below it are raised to it and the difference
// is taken proportionally from the widths above it. When
// minWidth*len(ratios) exceeds extent the minimums cannot all fit; every
// width is then minWidth and the sum exceeds extent (callers treat this
// as allowed overflow).
//
// Ratios are assumed positive and summing to 1; validation is the
// caller's job.
func Partition(extent int, ratios []float64, minWidth int) []int {
	n := len(ratios)
	widths := make([]int, n)
	if n == 0 {
		return widths
	}
	if extent < 0 {
		extent = 0
	}

	used := 0
	for i := 0; i < n-1; i++ {
		w := int(math.Round(ratios[i] * float64(extent)))
		widths[i] = w
		used += w
	}
	widths[n-1] = extent - used

	// Rounding can overshoot on tiny extents, leaving the remainder
	// negative. Pull the deficit back from earlier positive widths.
	for i := n - 2; i >= 0 && widths[n-1] < 0; i-- {
		give := min(widths[i], -widths[n-1])
		widths[i] -= give
		widths[n-1] += give
	}

	if minWidth > 0 {
		clampToMin(widths, extent, minWidth)
	}
	return widths
}

// clampToMin enforces a minimum width per entry, shrinking entries above
// the minimum proportionally to compensate. If the minimums alone exceed
// extent, every entry becomes the minimum (overflow).
func clampToMin(widths []int, extent, minWidth int) {
	n := len(widths)
	if minWidth*n >= extent {
		for i := range widths {
			widths[i] = minWidth
		}
		return
	}

	deficit := 0
	surplus := 0
	for _, w := range widths {
		if w < minWidth {
			deficit += minWidth - w
		} else {
			surplus += w - minWidth
		}
	}
	if deficit == 0 {
		return
	}
	for i, w := range widths {
		if w < minWidth {
			widths[i] = minWidth
		}
	}

	// Proportional first pass; floor division leaves a small remainder.
	remaining := deficit
	for i, w := range widths {
		if remaining == 0 {
			return
		}
		if w <= minWidth {
			continue
		}
		take := (w - minWidth) * deficit / surplus
		if take > remaining {
			take = remaining
		}
		widths[i] = w - take
		remaining -= take
	}

	// Sweep the remainder from the rightmost entries still above minimum.
	for i := n - 1; i >= 0 && remaining > 0; i-- {
		avail := widths[i] - minWidth
		if avail <= 0 {
			continue
		}
		take := min(avail, remaining)
		widths[i] -= take
		remaining -= take
	}
}
