package history

// Record creates an action, lets build fill it, and commits it by applying
// it to target.
//
// An empty name leaves the action unnamed. Record always commits, so unlike
// a bare CreateAction it never leaves a dangling future action behind: if
// build panics, the half-filled action is erased before the panic
// continues. A panic raised while the action is applied happens after the
// commit and leaves the action in applied history.
func (h *UndoRedo[T, Op]) Record(target *T, name string, build func(a *Action[T, Op])) error {
	action := h.CreateAction()
	if name != "" {
		action.SetName(name)
	}
	if build != nil {
		built := false
		defer func() {
			if !built {
				h.truncate()
			}
		}()
		build(action)
		built = true
	}
	return h.Redo(target)
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	tapehead int
}

// CreateCheckpoint creates a checkpoint at the current history position.
//
// A checkpoint only records the tapehead. If actions after it are discarded
// and replaced, returning to it walks over the replacements.
func (h *UndoRedo[T, Op]) CreateCheckpoint() Checkpoint {
	return Checkpoint{tapehead: h.tapehead}
}

// UndoToCheckpoint undoes all actions applied since the checkpoint.
func (h *UndoRedo[T, Op]) UndoToCheckpoint(cp Checkpoint, target *T) error {
	for h.tapehead > cp.tapehead {
		if err := h.Undo(target); err != nil {
			return err
		}
	}
	return nil
}

// RedoToCheckpoint redoes actions until the tapehead reaches the checkpoint.
// It stops early at the end of history if actions were discarded since.
func (h *UndoRedo[T, Op]) RedoToCheckpoint(cp Checkpoint, target *T) error {
	stop := min(cp.tapehead, len(h.actions))
	for h.tapehead < stop {
		if err := h.Redo(target); err != nil {
			return err
		}
	}
	return nil
}
