package history

import "errors"

// ErrNothingToDo is returned by Redo and Undo when no action exists in the
// requested direction.
var ErrNothingToDo = errors.New("nothing to perform")
