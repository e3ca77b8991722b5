package history

import "sync"

// Locked guards an UndoRedo with a mutex so several goroutines can share it.
//
// The lock is held while operations run, so operations must not call back
// into the same Locked.
type Locked[T any, Op Operation[T]] struct {
	mu sync.Mutex
	h  *UndoRedo[T, Op]
}

// NewLocked wraps h. A nil h is replaced by an empty history.
func NewLocked[T any, Op Operation[T]](h *UndoRedo[T, Op]) *Locked[T, Op] {
	if h == nil {
		h = New[T, Op]()
	}
	return &Locked[T, Op]{h: h}
}

// With runs fn with exclusive access to the underlying history.
// Use it for multi-step work such as CreateAction followed by Redo.
func (l *Locked[T, Op]) With(fn func(h *UndoRedo[T, Op])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.h)
}

// Record is UndoRedo.Record under the lock.
func (l *Locked[T, Op]) Record(target *T, name string, build func(a *Action[T, Op])) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Record(target, name, build)
}

// Redo is UndoRedo.Redo under the lock.
func (l *Locked[T, Op]) Redo(target *T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Redo(target)
}

// Undo is UndoRedo.Undo under the lock.
func (l *Locked[T, Op]) Undo(target *T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Undo(target)
}

// ClearHistory is UndoRedo.ClearHistory under the lock.
func (l *Locked[T, Op]) ClearHistory() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.h.ClearHistory()
}

// CanUndo returns true if undo is available.
func (l *Locked[T, Op]) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.CanUndo()
}

// CanRedo returns true if redo is available.
func (l *Locked[T, Op]) CanRedo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.CanRedo()
}

// Len returns the number of actions in history.
func (l *Locked[T, Op]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Len()
}

// Tapehead returns the current cursor position.
func (l *Locked[T, Op]) Tapehead() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Tapehead()
}
