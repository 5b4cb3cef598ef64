// Package collections provides the LIFO and FIFO containers used by the
// postfix converter.
//
// Accessing an empty container is a programming error: Pop, Top, Dequeue,
// Front and Back panic instead of returning a zero value.
package collections

// Stack is a last-in first-out container.
type Stack[T any] interface {
	// Push puts value on top of the stack.
	Push(value T)
	// Pop removes and returns the top value. Panics if the stack is empty.
	Pop() T
	// Top returns the top value without removing it. Panics if the stack is empty.
	Top() T
	Empty() bool
	Len() int
}

// Queue is a first-in first-out container.
type Queue[T any] interface {
	// Enqueue appends value at the back of the queue.
	Enqueue(value T)
	// Dequeue removes and returns the front value. Panics if the queue is empty.
	Dequeue() T
	// Front returns the front value without removing it. Panics if the queue is empty.
	Front() T
	// Back returns the most recently enqueued value. Panics if the queue is empty.
	Back() T
	Empty() bool
	Len() int
}

// Drain dequeues every remaining value of q in FIFO order.
func Drain[T any](q Queue[T]) []T {
	values := make([]T, 0, q.Len())
	for !q.Empty() {
		values = append(values, q.Dequeue())
	}
	return values
}

func emptyPanic(op, container string) {
	panic(op + " called on an empty " + container)
}
