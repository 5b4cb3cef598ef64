package collections

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// ArrayStack is a Stack backed by a growable array.
type ArrayStack[T any] struct {
	stack *arraystack.Stack
}

func NewArrayStack[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{stack: arraystack.New()}
}

func (s *ArrayStack[T]) Push(value T) {
	s.stack.Push(value)
}

func (s *ArrayStack[T]) Pop() T {
	v, ok := s.stack.Pop()
	if !ok {
		emptyPanic("Pop", "stack")
	}
	return v.(T)
}

func (s *ArrayStack[T]) Top() T {
	v, ok := s.stack.Peek()
	if !ok {
		emptyPanic("Top", "stack")
	}
	return v.(T)
}

func (s *ArrayStack[T]) Empty() bool {
	return s.stack.Empty()
}

func (s *ArrayStack[T]) Len() int {
	return s.stack.Size()
}

// ArrayQueue is a Queue backed by a growable array. The back value is
// tracked separately since arrayqueue only exposes the front.
type ArrayQueue[T any] struct {
	queue *arrayqueue.Queue
	back  T
}

func NewArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{queue: arrayqueue.New()}
}

func (q *ArrayQueue[T]) Enqueue(value T) {
	q.queue.Enqueue(value)
	q.back = value
}

func (q *ArrayQueue[T]) Dequeue() T {
	v, ok := q.queue.Dequeue()
	if !ok {
		emptyPanic("Dequeue", "queue")
	}
	if q.queue.Empty() {
		var zero T
		q.back = zero
	}
	return v.(T)
}

func (q *ArrayQueue[T]) Front() T {
	v, ok := q.queue.Peek()
	if !ok {
		emptyPanic("Front", "queue")
	}
	return v.(T)
}

func (q *ArrayQueue[T]) Back() T {
	if q.queue.Empty() {
		emptyPanic("Back", "queue")
	}
	return q.back
}

func (q *ArrayQueue[T]) Empty() bool {
	return q.queue.Empty()
}

func (q *ArrayQueue[T]) Len() int {
	return q.queue.Size()
}
