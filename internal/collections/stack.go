package collections

// LinkedStack is a Stack backed by a chain of nodes rooted at top.
type LinkedStack[T any] struct {
	top  *node[T]
	size int
}

func NewLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

func (s *LinkedStack[T]) Push(value T) {
	s.top = newNode(value, s.top)
	s.size++
}

func (s *LinkedStack[T]) Pop() T {
	if s.size == 0 {
		emptyPanic("Pop", "stack")
	}

	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return n.value
}

func (s *LinkedStack[T]) Top() T {
	if s.size == 0 {
		emptyPanic("Top", "stack")
	}
	return s.top.value
}

func (s *LinkedStack[T]) Empty() bool {
	return s.size == 0
}

func (s *LinkedStack[T]) Len() int {
	return s.size
}
