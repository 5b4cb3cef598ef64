package collections

// LinkedQueue is a Queue backed by a chain of nodes with separate front and
// back references, so both Enqueue and Dequeue are O(1).
type LinkedQueue[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

func (q *LinkedQueue[T]) Enqueue(value T) {
	n := newNode[T](value, nil)
	if q.size == 0 {
		q.front = n
		q.back = n
	} else {
		q.back.next = n
		q.back = n
	}
	q.size++
}

func (q *LinkedQueue[T]) Dequeue() T {
	if q.size == 0 {
		emptyPanic("Dequeue", "queue")
	}

	n := q.front
	q.front = n.next
	n.next = nil
	q.size--
	if q.size == 0 {
		q.back = nil
	}
	return n.value
}

func (q *LinkedQueue[T]) Front() T {
	if q.size == 0 {
		emptyPanic("Front", "queue")
	}
	return q.front.value
}

func (q *LinkedQueue[T]) Back() T {
	if q.size == 0 {
		emptyPanic("Back", "queue")
	}
	return q.back.value
}

func (q *LinkedQueue[T]) Empty() bool {
	return q.size == 0
}

func (q *LinkedQueue[T]) Len() int {
	return q.size
}
