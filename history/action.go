package history

import "github.com/google/uuid"

// Action is one undoable unit of work: the operations applied when redoing
// it, the operations applied when undoing it, and an optional name.
//
// The two lists are independent. Nothing checks that the undo list inverts
// the redo list.
type Action[T any, Op Operation[T]] struct {
	id    uuid.UUID
	name  string
	named bool

	applyOps  []Op
	revertOps []Op
}

// ActionInfo provides read-only info about an action.
// Used for displaying undo/redo history to users.
type ActionInfo struct {
	ID      uuid.UUID
	Name    string // Empty when Named is false
	Named   bool
	RedoOps int
	UndoOps int
}

func newAction[T any, Op Operation[T]]() *Action[T, Op] {
	return &Action[T, Op]{id: uuid.New()}
}

// ID returns the identifier assigned when the action was created.
func (a *Action[T, Op]) ID() uuid.UUID {
	return a.id
}

// Name returns the action's label and whether one was ever set.
func (a *Action[T, Op]) Name() (string, bool) {
	return a.name, a.named
}

// SetName overwrites the action's label.
func (a *Action[T, Op]) SetName(name string) *Action[T, Op] {
	a.name = name
	a.named = true
	return a
}

// AddRedoOperation adds an operation to perform when redoing this action.
// Operations are performed in the order they're added.
func (a *Action[T, Op]) AddRedoOperation(op Op) *Action[T, Op] {
	a.applyOps = append(a.applyOps, op)
	return a
}

// AddUndoOperation adds an operation to perform when undoing this action.
// Operations are performed in the order they're added.
func (a *Action[T, Op]) AddUndoOperation(op Op) *Action[T, Op] {
	a.revertOps = append(a.revertOps, op)
	return a
}

// Apply runs the redo operations against target, front to back.
func (a *Action[T, Op]) Apply(target *T) {
	for _, op := range a.applyOps {
		op.Apply(target)
	}
}

// Revert runs the undo operations against target, front to back.
// The list is not reversed.
func (a *Action[T, Op]) Revert(target *T) {
	for _, op := range a.revertOps {
		op.Apply(target)
	}
}

// RedoLen returns the number of redo operations.
func (a *Action[T, Op]) RedoLen() int {
	return len(a.applyOps)
}

// UndoLen returns the number of undo operations.
func (a *Action[T, Op]) UndoLen() int {
	return len(a.revertOps)
}

// Info returns a snapshot describing the action.
func (a *Action[T, Op]) Info() ActionInfo {
	return ActionInfo{
		ID:      a.id,
		Name:    a.name,
		Named:   a.named,
		RedoOps: len(a.applyOps),
		UndoOps: len(a.revertOps),
	}
}
