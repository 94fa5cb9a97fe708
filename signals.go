package multisplit

// Signal handlers are invoked synchronously, in registration order, on
// the goroutine performing the mutation. A handler must not mutate the
// tree while a signal from an in-progress mutation is being dispatched;
// this is a caller contract, not enforced.
//
// Emission order per successful mutation:
//
//	aboutToChange → mutation → auxiliary (nodeChanged / maximizeChanged,
//	as applicable) → changed → layoutChanged
//
// Failed operations emit nothing. Within a transaction, aboutToChange
// fires once before the first mutation and all other signals fire once
// at commit: auxiliary signals are emitted only for the net focus and
// maximize difference across the batch, so transient intermediate
// states are never observable. A rolled-back transaction emits nothing
// beyond the initial aboutToChange.

// signalBus holds the registered handlers for a tree.
type signalBus struct {
	aboutToChange   []func()
	changed         []func()
	layoutChanged   []func()
	nodeChanged     []func(PaneID)
	maximizeChanged []func(PaneID)
}

// OnAboutToChange registers a handler called before any mutation is
// applied to the tree.
func (t *Tree) OnAboutToChange(fn func()) {
	t.signals.aboutToChange = append(t.signals.aboutToChange, fn)
}

// OnChanged registers a handler called after a mutation (or a committed
// transaction) has been applied.
func (t *Tree) OnChanged(fn func()) {
	t.signals.changed = append(t.signals.changed, fn)
}

// OnLayoutChanged registers a handler called after changed; the View
// typically recomputes geometry and reconciles here.
func (t *Tree) OnLayoutChanged(fn func()) {
	t.signals.layoutChanged = append(t.signals.layoutChanged, fn)
}

// OnNodeChanged registers a handler for focus changes; it receives the
// newly focused pane.
func (t *Tree) OnNodeChanged(fn func(PaneID)) {
	t.signals.nodeChanged = append(t.signals.nodeChanged, fn)
}

// OnMaximizeChanged registers a handler for maximize transitions; it
// receives the maximized pane, or the zero PaneID when the tree
// returned to normal.
func (t *Tree) OnMaximizeChanged(fn func(PaneID)) {
	t.signals.maximizeChanged = append(t.signals.maximizeChanged, fn)
}

// announceChange emits aboutToChange. In batch mode it fires only once,
// before the batch's first mutation.
func (t *Tree) announceChange() {
	if t.batching {
		if t.batchAnnounced {
			return
		}
		t.batchAnnounced = true
	}
	for _, fn := range t.signals.aboutToChange {
		fn()
	}
}

// finishChange emits changed then layoutChanged, or defers them to the
// end of the current batch.
func (t *Tree) finishChange() {
	if t.batching {
		t.batchDirty = true
		return
	}
	t.emitChanged()
}

func (t *Tree) emitChanged() {
	for _, fn := range t.signals.changed {
		fn()
	}
	for _, fn := range t.signals.layoutChanged {
		fn()
	}
}

func (t *Tree) emitNodeChanged(pane PaneID) {
	if t.batching {
		return
	}
	for _, fn := range t.signals.nodeChanged {
		fn(pane)
	}
}

func (t *Tree) emitMaximizeChanged(pane PaneID) {
	if t.batching {
		return
	}
	for _, fn := range t.signals.maximizeChanged {
		fn(pane)
	}
}

// beginBatch suppresses per-mutation signal emission until endBatch and
// records the focus/maximize state for the net auxiliary diff. Used by
// transactions; does not nest.
func (t *Tree) beginBatch() {
	t.batching = true
	t.batchAnnounced = false
	t.batchDirty = false
	t.batchFocus = t.focused
	t.batchMaximized = t.maximized
}

// endBatch leaves batch mode. If emit is true and any mutation happened
// during the batch, auxiliary signals fire for the net focus/maximize
// difference followed by one changed/layoutChanged pair. A rollback
// (emit false) nets to no change, so nothing is emitted.
func (t *Tree) endBatch(emit bool) {
	dirty := t.batchDirty
	preFocus, preMaximized := t.batchFocus, t.batchMaximized
	t.batching = false
	t.batchAnnounced = false
	t.batchDirty = false
	if !emit || !dirty {
		return
	}
	if t.focused != preFocus {
		t.emitNodeChanged(t.focused)
	}
	if t.maximized != preMaximized {
		t.emitMaximizeChanged(t.maximized)
	}
	t.emitChanged()
}
