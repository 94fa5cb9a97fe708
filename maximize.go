package multisplit

import "github.com/grindlemire/go-multisplit/internal/debug"

// MaximizePolicy selects what happens when focus moves away from a
// maximized pane. The underlying behavior is genuinely ambiguous in
// tiling UIs, so it is a policy rather than a hard rule.
type MaximizePolicy uint8

const (
	// MaximizeAutoRestore (the default) restores the tree to normal
	// when focus moves to a different pane.
	MaximizeAutoRestore MaximizePolicy = iota

	// MaximizeLockFocus rejects focus changes away from the maximized
	// pane with ErrFocusLocked until it is toggled back to normal.
	MaximizeLockFocus
)

// SetMaximizePolicy sets the focus-while-maximized policy.
func (t *Tree) SetMaximizePolicy(p MaximizePolicy) { t.policy = p }

// Policy returns the current maximize policy.
func (t *Tree) Policy() MaximizePolicy { return t.policy }

// MaximizedPane returns the maximized leaf's PaneID, or the zero PaneID
// when the tree is in the normal state.
func (t *Tree) MaximizedPane() PaneID { return t.maximized }

// IsMaximized reports whether any pane is maximized. Maximize state is
// never persisted; loaded trees always start normal.
func (t *Tree) IsMaximized() bool { return t.maximized != "" }

// ToggleMaximize maximizes the focused pane, or restores the tree to
// normal if the focused pane is already maximized. Maximize is always
// toggled relative to the focused pane; there is no direct transition
// between two maximized panes.
func (t *Tree) ToggleMaximize() error {
	pane := t.focused
	if t.FindLeaf(pane) == nil {
		return ErrPaneNotFound
	}

	t.announceChange()
	if t.maximized == pane {
		t.maximized = ""
	} else {
		t.maximized = pane
	}
	debug.Log("ToggleMaximize: maximized=%q", t.maximized)
	t.emitMaximizeChanged(t.maximized)
	t.finishChange()
	return nil
}

// restoreMaximize clears maximize state as a side effect of another
// mutation (a split executing, or the maximized pane being removed).
// The caller has already announced the surrounding mutation.
func (t *Tree) restoreMaximize() {
	if t.maximized == "" {
		return
	}
	t.maximized = ""
	t.emitMaximizeChanged("")
}
