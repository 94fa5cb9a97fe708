// Package multisplit implements a recursive split-pane layout engine:
// a tree of ratio-weighted splits and content leaves, reversible
// commands with transactional grouping, a pure geometry pass turning
// ratios into pixel rectangles, and an identity-keyed reconciler that
// computes minimal widget churn between two layout states.
//
// The engine never creates or paints visual content. An external
// Provider owns the widgets; this package only decides what should
// exist, where, and at what size, and reports it through reconcile
// operations and signals.
//
// A Tree is single-threaded by design: all mutations are synchronous on
// the owning goroutine and signal dispatch is re-entrant-unsafe.
// Multiple independent trees coexist freely (one per window).
package multisplit
