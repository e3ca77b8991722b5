// Package history provides a generic undo/redo history.
//
// The history records reversible edits made to state it does not own. It is
// parameterized over an Operation capability and the target type operations
// are applied to. Key concepts:
//
// # Operations
//
// An Operation applies one edit step to a mutable target:
//
//	type Op struct{ Delta int }
//
//	func (o Op) Apply(n *int) { *n += o.Delta }
//
// Most hosts define one operation type per kind of target, with a field or
// variant per edit kind.
//
// # Actions
//
// An Action bundles the operations that move forward through an edit (redo)
// with the operations that move backward through it (undo). Both lists run
// front to back; the caller orders undo operations so they invert the redo
// list, typically appending inverses in reverse order of authoring.
//
// # History
//
// UndoRedo keeps an ordered list of actions and a tapehead. Everything before
// the tapehead has been applied; everything at or after it has not:
//
//	var h history.UndoRedo[int, Op]
//	n := 0
//
//	h.CreateAction().
//		SetName("add five").
//		AddRedoOperation(Op{5}).
//		AddUndoOperation(Op{-5})
//	h.Redo(&n) // commit: n == 5
//
//	h.Undo(&n) // n == 0
//	h.Redo(&n) // n == 5
//
// CreateAction does not move the tapehead. The new action becomes part of
// applied history only once Redo crosses it. Creating an action while undone
// actions exist discards them.
//
// Record folds create, populate and commit into one call.
//
// UndoRedo is not safe for concurrent use. Wrap it in Locked when several
// goroutines share one history.
package history
