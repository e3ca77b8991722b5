package history

import "github.com/hashicorp/go-hclog"

// UndoRedo is an undo/redo history implemented as a list of actions and a
// tapehead.
//
// The tapehead is an index in [0, Len()]. Actions before it have been
// applied; the action at it, if any, is the next one Redo applies, and the
// action just before it is the next one Undo reverts.
//
// The zero value is an empty history ready to use. UndoRedo is not safe for
// concurrent use; see Locked.
type UndoRedo[T any, Op Operation[T]] struct {
	actions  []*Action[T, Op]
	tapehead int

	logger hclog.Logger
}

// Option configures an UndoRedo.
type Option func(*options)

type options struct {
	logger hclog.Logger
}

// WithLogger sets the logger history transitions are traced to.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an empty history.
func New[T any, Op Operation[T]](opts ...Option) *UndoRedo[T, Op] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &UndoRedo[T, Op]{logger: o.logger}
}

var nullLogger = hclog.NewNullLogger()

func (h *UndoRedo[T, Op]) log() hclog.Logger {
	if h.logger == nil {
		return nullLogger
	}
	return h.logger
}

// ClearHistory resets the history to its empty state.
func (h *UndoRedo[T, Op]) ClearHistory() {
	clear(h.actions)
	h.actions = h.actions[:0]
	h.tapehead = 0
	h.log().Trace("history cleared")
}

// CreateAction creates a new action at the current point in history and
// returns it so it can be filled with undo/redo operations.
//
// Any actions at or after the tapehead are erased first. The tapehead does
// not move: call Redo to apply the new action and commit it to applied
// history. An action that is never committed is discarded by the next
// CreateAction.
//
// The returned handle stays valid memory, but once its action is discarded
// (by a later CreateAction or ClearHistory) changes to it no longer reach
// the history.
func (h *UndoRedo[T, Op]) CreateAction() *Action[T, Op] {
	h.truncate()

	action := newAction[T, Op]()
	h.actions = append(h.actions, action)
	if log := h.log(); log.IsTrace() {
		log.Trace("created action", "id", action.id.String(), "index", len(h.actions)-1)
	}
	return action
}

// truncate erases every action at or after the tapehead.
func (h *UndoRedo[T, Op]) truncate() {
	if len(h.actions) <= h.tapehead {
		return
	}
	discarded := len(h.actions) - h.tapehead
	// Drop references so discarded operations can be collected.
	clear(h.actions[h.tapehead:])
	h.actions = h.actions[:h.tapehead]
	h.log().Trace("discarded future actions", "count", discarded)
}

// Redo applies the first unapplied action to target and advances the
// tapehead past it.
//
// Returns ErrNothingToDo if the tapehead is at the end of history.
func (h *UndoRedo[T, Op]) Redo(target *T) error {
	if h.tapehead >= len(h.actions) {
		return ErrNothingToDo
	}

	// tapehead < len(actions) <= math.MaxInt, so the increment cannot
	// overflow.
	action := h.actions[h.tapehead]
	h.tapehead++
	if log := h.log(); log.IsTrace() {
		log.Trace("redo", "id", action.id.String(), "tapehead", h.tapehead)
	}

	action.Apply(target)
	return nil
}

// Undo reverts the last applied action on target and moves the tapehead
// back before it.
//
// Returns ErrNothingToDo if the tapehead is at the beginning of history.
func (h *UndoRedo[T, Op]) Undo(target *T) error {
	if h.tapehead == 0 {
		return ErrNothingToDo
	}
	h.tapehead--

	if h.tapehead >= len(h.actions) {
		return ErrNothingToDo
	}

	action := h.actions[h.tapehead]
	if log := h.log(); log.IsTrace() {
		log.Trace("undo", "id", action.id.String(), "tapehead", h.tapehead)
	}

	action.Revert(target)
	return nil
}

// Len returns the number of actions in history, applied or not.
func (h *UndoRedo[T, Op]) Len() int {
	return len(h.actions)
}

// Tapehead returns the current cursor position.
func (h *UndoRedo[T, Op]) Tapehead() int {
	return h.tapehead
}

// CanUndo returns true if undo is available.
func (h *UndoRedo[T, Op]) CanUndo() bool {
	return h.tapehead > 0
}

// CanRedo returns true if redo is available.
func (h *UndoRedo[T, Op]) CanRedo() bool {
	return h.tapehead < len(h.actions)
}

// UndoCount returns the number of undo steps available.
func (h *UndoRedo[T, Op]) UndoCount() int {
	return h.tapehead
}

// RedoCount returns the number of redo steps available.
func (h *UndoRedo[T, Op]) RedoCount() int {
	return len(h.actions) - h.tapehead
}

// PeekUndo returns info about the action the next Undo would revert.
func (h *UndoRedo[T, Op]) PeekUndo() (ActionInfo, bool) {
	if h.tapehead == 0 {
		return ActionInfo{}, false
	}
	return h.actions[h.tapehead-1].Info(), true
}

// PeekRedo returns info about the action the next Redo would apply.
func (h *UndoRedo[T, Op]) PeekRedo() (ActionInfo, bool) {
	if h.tapehead >= len(h.actions) {
		return ActionInfo{}, false
	}
	return h.actions[h.tapehead].Info(), true
}

// UndoInfo returns info about applied actions, oldest first.
func (h *UndoRedo[T, Op]) UndoInfo() []ActionInfo {
	return infos(h.actions[:h.tapehead])
}

// RedoInfo returns info about unapplied actions, next redo first.
func (h *UndoRedo[T, Op]) RedoInfo() []ActionInfo {
	return infos(h.actions[h.tapehead:])
}

func infos[T any, Op Operation[T]](actions []*Action[T, Op]) []ActionInfo {
	result := make([]ActionInfo, len(actions))
	for i, action := range actions {
		result[i] = action.Info()
	}
	return result
}
