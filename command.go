package multisplit

import (
	"fmt"

	"github.com/grindlemire/go-multisplit/internal/debug"
)

// Command is one reversible tree mutation. Execute applies it; a non-nil
// error means nothing was mutated and no signals were emitted (the
// command must not be pushed onto an undo stack). Undo reverses the
// mutation using state captured at execute time, never by re-deriving.
//
// CanMerge reports whether other can be absorbed into this command as a
// single undo step (e.g. consecutive ratio drags on the same split).
type Command interface {
	Execute(t *Tree) error
	Undo(t *Tree) error
	CanMerge(other Command) bool
	Description() string
}

// mergeable is implemented by commands whose CanMerge can return true.
type mergeable interface {
	absorb(other Command)
}

// --- SplitCommand ---

// SplitCommand splits a target leaf, creating a new sibling pane. If a
// pane is maximized when the command executes, maximize is restored
// first (the split never operates on a hidden, stale layout); undo
// re-maximizes it.
type SplitCommand struct {
	target      PaneID
	orientation Orientation
	widget      WidgetID
	ratio       float64

	newPane       PaneID
	newSplit      PaneID // nested case: the created split's ID
	prevMaximized PaneID
	prevRatios    []float64 // parent's ratios, sibling-insert case only
	siblingInsert bool
}

// NewSplitCommand returns a command splitting the leaf at target.
// ratio is the new pane's share, exclusive within (0, 1).
func NewSplitCommand(target PaneID, o Orientation, widget WidgetID, ratio float64) *SplitCommand {
	return &SplitCommand{target: target, orientation: o, widget: widget, ratio: ratio}
}

// NewPane returns the PaneID created by Execute, or the zero PaneID
// before execution.
func (c *SplitCommand) NewPane() PaneID { return c.newPane }

// Execute implements Command.
func (c *SplitCommand) Execute(t *Tree) error {
	c.prevMaximized = t.maximized

	// Snapshot the parent's ratios in case the new leaf lands as a
	// sibling; removal alone cannot reverse the renormalization.
	if _, parent, _ := findNode(t.root, c.target); parent != nil && parent.orientation == c.orientation {
		c.siblingInsert = true
		c.prevRatios = parent.Ratios()
	} else {
		c.siblingInsert = false
		c.prevRatios = nil
	}

	// Re-execution (redo) passes the previously created IDs back in so
	// the recreated pane and split keep their identity; later history
	// entries reference them.
	pane, err := t.insertSplit(c.target, c.orientation, c.widget, c.ratio, c.newPane, c.newSplit)
	if err != nil {
		return err
	}
	c.newPane = pane
	if !c.siblingInsert {
		if _, parent, _ := findNode(t.root, pane); parent != nil {
			c.newSplit = parent.id
		}
	}
	return nil
}

// Undo implements Command.
func (c *SplitCommand) Undo(t *Tree) error {
	node, parent, idx := findNode(t.root, c.newPane)
	if _, ok := node.(*LeafNode); !ok || parent == nil {
		return fmt.Errorf("%w: cannot undo split, %q missing", ErrPaneNotFound, c.newPane)
	}

	t.announceChange()
	if c.siblingInsert {
		parent.children = removeNode(parent.children, idx)
		parent.ratios = removeFloat(parent.ratios, idx)
		copy(parent.ratios, c.prevRatios)
	} else {
		// Execute built parent as [original leaf, new leaf]; put the
		// original leaf back where the split sits.
		_, gp, gpIdx := findNode(t.root, parent.id)
		t.replaceChild(gp, gpIdx, parent.children[0])
	}
	if t.maximized != c.prevMaximized {
		t.maximized = c.prevMaximized
		t.emitMaximizeChanged(t.maximized)
	}
	debug.Log("undo %s", c.Description())
	t.finishChange()
	return nil
}

// CanMerge implements Command; splits never merge.
func (c *SplitCommand) CanMerge(Command) bool { return false }

// Description implements Command.
func (c *SplitCommand) Description() string {
	return fmt.Sprintf("split %s (%s)", c.target, c.orientation)
}

// --- RemoveCommand ---

// RemoveCommand removes a leaf pane. The entire structural state is
// snapshotted before removal: collapsing cascades and ratio
// renormalization make surgical reversal fragile, so undo restores the
// snapshot wholesale.
type RemoveCommand struct {
	pane     PaneID
	snapshot *Tree
}

// NewRemoveCommand returns a command removing the leaf at pane.
func NewRemoveCommand(pane PaneID) *RemoveCommand {
	return &RemoveCommand{pane: pane}
}

// Execute implements Command.
func (c *RemoveCommand) Execute(t *Tree) error {
	snapshot := t.Clone()
	if err := t.RemoveLeaf(c.pane); err != nil {
		return err
	}
	c.snapshot = snapshot
	return nil
}

// Undo implements Command.
func (c *RemoveCommand) Undo(t *Tree) error {
	if c.snapshot == nil {
		return fmt.Errorf("%w: remove of %q was never executed", ErrPaneNotFound, c.pane)
	}
	debug.Log("undo %s", c.Description())
	t.restore(c.snapshot)
	return nil
}

// CanMerge implements Command; removals never merge.
func (c *RemoveCommand) CanMerge(Command) bool { return false }

// Description implements Command.
func (c *RemoveCommand) Description() string {
	return fmt.Sprintf("remove %s", c.pane)
}

// --- SetRatiosCommand ---

// SetRatiosCommand resizes the children of one split. Consecutive ratio
// commands on the same split merge into a single undo step, so a
// continuous divider drag undoes in one go.
type SetRatiosCommand struct {
	split  PaneID
	ratios []float64

	prevRatios []float64
}

// NewSetRatiosCommand returns a command setting the child shares of the
// split at split.
func NewSetRatiosCommand(split PaneID, ratios []float64) *SetRatiosCommand {
	return &SetRatiosCommand{split: split, ratios: ratios}
}

// Execute implements Command.
func (c *SetRatiosCommand) Execute(t *Tree) error {
	node, _, _ := findNode(t.root, c.split)
	s, ok := node.(*SplitNode)
	if !ok {
		return fmt.Errorf("%w: %q does not resolve to a split", ErrPaneNotFound, c.split)
	}
	prev := s.Ratios()
	if err := t.SetRatios(c.split, c.ratios); err != nil {
		return err
	}
	c.prevRatios = prev
	return nil
}

// Undo implements Command.
func (c *SetRatiosCommand) Undo(t *Tree) error {
	return t.SetRatios(c.split, c.prevRatios)
}

// CanMerge implements Command: true for another ratio change on the
// same split.
func (c *SetRatiosCommand) CanMerge(other Command) bool {
	o, ok := other.(*SetRatiosCommand)
	return ok && o.split == c.split
}

func (c *SetRatiosCommand) absorb(other Command) {
	// Keep this command's prevRatios (the pre-drag state); adopt the
	// newest target so redo lands on the final position.
	c.ratios = other.(*SetRatiosCommand).ratios
}

// Description implements Command.
func (c *SetRatiosCommand) Description() string {
	return fmt.Sprintf("resize %s", c.split)
}

// --- SetFocusCommand ---

// SetFocusCommand moves focus to a pane. Under the auto-restore policy
// this may also restore a maximized pane; undo brings both back.
type SetFocusCommand struct {
	pane PaneID

	prevFocus     PaneID
	prevMaximized PaneID
}

// NewSetFocusCommand returns a command focusing the leaf at pane.
func NewSetFocusCommand(pane PaneID) *SetFocusCommand {
	return &SetFocusCommand{pane: pane}
}

// Execute implements Command.
func (c *SetFocusCommand) Execute(t *Tree) error {
	prevFocus, prevMaximized := t.focused, t.maximized
	if err := t.SetFocus(c.pane); err != nil {
		return err
	}
	c.prevFocus, c.prevMaximized = prevFocus, prevMaximized
	return nil
}

// Undo implements Command.
func (c *SetFocusCommand) Undo(t *Tree) error {
	if c.prevFocus != "" && t.FindLeaf(c.prevFocus) == nil {
		return fmt.Errorf("%w: cannot undo focus, %q missing", ErrPaneNotFound, c.prevFocus)
	}
	t.announceChange()
	t.focused = c.prevFocus
	if t.maximized != c.prevMaximized {
		t.maximized = c.prevMaximized
		t.emitMaximizeChanged(t.maximized)
	}
	t.emitNodeChanged(t.focused)
	t.finishChange()
	return nil
}

// CanMerge implements Command; focus changes never merge.
func (c *SetFocusCommand) CanMerge(Command) bool { return false }

// Description implements Command.
func (c *SetFocusCommand) Description() string {
	return fmt.Sprintf("focus %s", c.pane)
}

// --- ToggleMaximizeCommand ---

// ToggleMaximizeCommand toggles maximize on the currently focused pane,
// the only public entry to the maximize state machine.
type ToggleMaximizeCommand struct {
	prevMaximized PaneID
	executed      bool
}

// NewToggleMaximizeCommand returns a command toggling maximize relative
// to the focused pane at execute time.
func NewToggleMaximizeCommand() *ToggleMaximizeCommand {
	return &ToggleMaximizeCommand{}
}

// Execute implements Command.
func (c *ToggleMaximizeCommand) Execute(t *Tree) error {
	prev := t.maximized
	if err := t.ToggleMaximize(); err != nil {
		return err
	}
	c.prevMaximized = prev
	c.executed = true
	return nil
}

// Undo implements Command.
func (c *ToggleMaximizeCommand) Undo(t *Tree) error {
	if !c.executed {
		return fmt.Errorf("%w: toggle maximize was never executed", ErrPaneNotFound)
	}
	if c.prevMaximized != "" && t.FindLeaf(c.prevMaximized) == nil {
		return fmt.Errorf("%w: cannot undo maximize, %q missing", ErrPaneNotFound, c.prevMaximized)
	}
	t.announceChange()
	t.maximized = c.prevMaximized
	t.emitMaximizeChanged(t.maximized)
	t.finishChange()
	return nil
}

// CanMerge implements Command; maximize toggles never merge.
func (c *ToggleMaximizeCommand) CanMerge(Command) bool { return false }

// Description implements Command.
func (c *ToggleMaximizeCommand) Description() string { return "toggle maximize" }
