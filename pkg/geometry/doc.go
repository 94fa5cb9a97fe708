// Package geometry provides the pure integer math used by the multisplit
// layout pass: rectangles and ratio-based extent partitioning.
//
// Nothing in this package knows about pane trees; it operates on plain
// extents and ratio slices so it can be tested exhaustively in isolation.
package geometry
