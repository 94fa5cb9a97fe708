package multisplit

import "github.com/google/uuid"

// PaneID uniquely identifies a node in a pane tree. Leaf IDs are the
// stable contract surface: they survive reorders, resizes, and moves,
// are persisted, and are what the reconciler matches on. Split nodes
// also carry an ID so they can be addressed (e.g. by SetRatios), but
// split IDs are regenerated on load and never matched across trees.
//
// The zero value means "no pane".
type PaneID string

// WidgetID names the visual content a leaf should display. It is opaque
// to the engine: stored, persisted, and handed back to the Provider
// verbatim, never interpreted.
type WidgetID string

// newPaneID returns a fresh globally unique PaneID.
func newPaneID() PaneID {
	return PaneID(uuid.NewString())
}
