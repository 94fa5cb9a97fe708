package multisplit

import "github.com/grindlemire/go-multisplit/internal/debug"

// History executes commands against a tree and keeps the undo/redo
// stacks. Failed commands are never recorded. A new command clears the
// redo stack.
type History struct {
	tree *Tree
	undo []Command
	redo []Command
	open *Transaction
}

// NewHistory returns an empty history operating on tree.
func NewHistory(tree *Tree) *History {
	return &History{tree: tree}
}

// Tree returns the tree this history mutates.
func (h *History) Tree() *Tree { return h.tree }

// Do executes cmd. On success the command is pushed onto the undo
// stack, or merged into the previous entry when the two agree to merge
// (a continuous ratio drag collapses into one step). While a
// transaction is open, commands must go through it instead.
func (h *History) Do(cmd Command) error {
	if h.open != nil {
		return ErrTransactionOpen
	}
	if err := cmd.Execute(h.tree); err != nil {
		return err
	}
	debug.Log("do: %s", cmd.Description())
	h.redo = nil
	if n := len(h.undo); n > 0 && h.undo[n-1].CanMerge(cmd) {
		h.undo[n-1].(mergeable).absorb(cmd)
		return nil
	}
	h.undo = append(h.undo, cmd)
	return nil
}

// Undo reverses the most recent command (or committed transaction).
// With nothing to undo it is a no-op. A failing undo leaves the entry
// on the stack and returns the error.
func (h *History) Undo() error {
	if h.open != nil {
		return ErrTransactionOpen
	}
	n := len(h.undo)
	if n == 0 {
		return nil
	}
	cmd := h.undo[n-1]
	if err := cmd.Undo(h.tree); err != nil {
		return err
	}
	debug.Log("undo: %s", cmd.Description())
	h.undo = h.undo[:n-1]
	h.redo = append(h.redo, cmd)
	return nil
}

// Redo re-applies the most recently undone command. With nothing to
// redo it is a no-op.
func (h *History) Redo() error {
	if h.open != nil {
		return ErrTransactionOpen
	}
	n := len(h.redo)
	if n == 0 {
		return nil
	}
	cmd := h.redo[n-1]
	if err := cmd.Execute(h.tree); err != nil {
		return err
	}
	debug.Log("redo: %s", cmd.Description())
	h.redo = h.redo[:n-1]
	h.undo = append(h.undo, cmd)
	return nil
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of undoable entries.
func (h *History) Len() int { return len(h.undo) }
