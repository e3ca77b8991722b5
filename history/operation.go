package history

// Operation applies one edit step to a target of type T.
//
// Apply mutates target in place. Each call performs exactly one step; any
// state the step needs lives in the operation value itself. There is no
// error channel: an operation that can fail should handle it or panic.
type Operation[T any] interface {
	Apply(target *T)
}

// OperationFunc adapts an ordinary function to the Operation interface.
type OperationFunc[T any] func(target *T)

// Apply calls f(target).
func (f OperationFunc[T]) Apply(target *T) {
	f(target)
}
