package multisplit

import (
	"fmt"

	"github.com/grindlemire/go-multisplit/internal/debug"
)

// Transaction groups commands into one atomic unit: one signal emission
// for the whole batch, one undo entry, and all-or-nothing semantics. If
// any command fails, everything already executed is undone in reverse
// order and the tree is back where it started, with zero changed
// signals observed.
//
// Transactions do not nest.
type Transaction struct {
	history *History
	cmds    []Command
	closed  bool
}

// Begin opens a transaction. Per-command changed/layoutChanged emission
// is suppressed until Commit. Fails with ErrTransactionOpen if another
// transaction is already open.
func (h *History) Begin() (*Transaction, error) {
	if h.open != nil {
		return nil, ErrTransactionOpen
	}
	h.tree.beginBatch()
	tx := &Transaction{history: h}
	h.open = tx
	debug.Log("transaction: begin")
	return tx, nil
}

// Do executes cmd within the transaction. On failure the whole
// transaction rolls back, closes, and the command's error is returned.
func (tx *Transaction) Do(cmd Command) error {
	if tx.closed {
		return ErrTransactionClosed
	}
	if err := cmd.Execute(tx.history.tree); err != nil {
		debug.Log("transaction: %s failed (%v), rolling back %d commands",
			cmd.Description(), err, len(tx.cmds))
		tx.rollback()
		return err
	}
	tx.cmds = append(tx.cmds, cmd)
	return nil
}

// Commit closes the transaction, emits a single changed/layoutChanged
// pair covering the batch, and pushes one composite undo entry. An
// empty transaction commits without emitting or recording anything.
func (tx *Transaction) Commit() error {
	if tx.closed {
		return ErrTransactionClosed
	}
	tx.closed = true
	tx.history.open = nil
	tx.history.tree.endBatch(true)
	if len(tx.cmds) > 0 {
		tx.history.redo = nil
		tx.history.undo = append(tx.history.undo, &compositeCommand{cmds: tx.cmds})
	}
	debug.Log("transaction: committed %d commands", len(tx.cmds))
	return nil
}

// Rollback aborts an open transaction, undoing its commands in reverse
// order. No changed signals are emitted.
func (tx *Transaction) Rollback() error {
	if tx.closed {
		return ErrTransactionClosed
	}
	tx.rollback()
	return nil
}

func (tx *Transaction) rollback() {
	for i := len(tx.cmds) - 1; i >= 0; i-- {
		// Undo failures here are unrecoverable programming errors; the
		// remaining commands are still unwound to get as close to the
		// pre-transaction state as possible.
		if err := tx.cmds[i].Undo(tx.history.tree); err != nil {
			debug.Log("transaction: rollback undo of %s failed: %v",
				tx.cmds[i].Description(), err)
		}
	}
	tx.cmds = nil
	tx.closed = true
	tx.history.open = nil
	tx.history.tree.endBatch(false)
}

// compositeCommand is the undo entry for a committed transaction: its
// commands undo (and redo) in reverse (and forward) order as one
// atomic, single-emission step.
type compositeCommand struct {
	cmds []Command
}

// Execute implements Command (used for redo).
func (c *compositeCommand) Execute(t *Tree) error {
	t.beginBatch()
	for i, cmd := range c.cmds {
		if err := cmd.Execute(t); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.cmds[j].Undo(t)
			}
			t.endBatch(false)
			return err
		}
	}
	t.endBatch(true)
	return nil
}

// Undo implements Command.
func (c *compositeCommand) Undo(t *Tree) error {
	t.beginBatch()
	for i := len(c.cmds) - 1; i >= 0; i-- {
		if err := c.cmds[i].Undo(t); err != nil {
			for j := i + 1; j < len(c.cmds); j++ {
				_ = c.cmds[j].Execute(t)
			}
			t.endBatch(false)
			return err
		}
	}
	t.endBatch(true)
	return nil
}

// CanMerge implements Command; transactions never merge.
func (c *compositeCommand) CanMerge(Command) bool { return false }

// Description implements Command.
func (c *compositeCommand) Description() string {
	return fmt.Sprintf("transaction (%d commands)", len(c.cmds))
}
