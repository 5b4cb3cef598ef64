package collections

// node is a singly-linked cell owned by exactly one LinkedStack or LinkedQueue.
type node[T any] struct {
	value T
	next  *node[T]
}

func newNode[T any](value T, next *node[T]) *node[T] {
	return &node[T]{value: value, next: next}
}
