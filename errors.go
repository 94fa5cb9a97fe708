package multisplit

import "errors"

// Sentinel errors returned by tree operations. PaneNotFound,
// InvalidRatios, and LastPane are anticipated outcomes the caller
// handles; InvalidStructure indicates an internal bug (a post-mutation
// invariant check failed) and aborts the operation that produced it.
var (
	// ErrPaneNotFound is returned when an operation references a PaneID
	// absent from the tree, or present but of the wrong node kind.
	ErrPaneNotFound = errors.New("multisplit: pane not found")

	// ErrInvalidRatios is returned when a ratio slice fails validation:
	// wrong length, non-positive entries, or sum not within 1e-3 of 1.
	ErrInvalidRatios = errors.New("multisplit: invalid ratios")

	// ErrLastPane is returned when removing the only leaf in the tree.
	// Use Teardown to dispose of an entire tree.
	ErrLastPane = errors.New("multisplit: cannot remove the last pane")

	// ErrInvalidStructure wraps invariant violations found by Validate.
	ErrInvalidStructure = errors.New("multisplit: invalid tree structure")

	// ErrTransactionOpen is returned by Begin while another transaction
	// is still open; transactions do not nest.
	ErrTransactionOpen = errors.New("multisplit: transaction already open")

	// ErrTransactionClosed is returned when using a transaction after it
	// was committed or rolled back.
	ErrTransactionClosed = errors.New("multisplit: transaction closed")

	// ErrFocusLocked is returned by SetFocus under the MaximizeLockFocus
	// policy when focus would leave the maximized pane.
	ErrFocusLocked = errors.New("multisplit: focus locked to maximized pane")
)
