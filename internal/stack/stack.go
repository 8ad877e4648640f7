// Package stack implements the frame stack backing the walker's tree
// bookkeeping.
package stack

type Stack[T any] struct {
	items []T
}

// NewWithCapacity reduces allocations when the expected nesting depth is
// known.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	s.items = s.items[:index]
	return item, true
}

// PeekRef allows modifying the top element in place; nil when empty.
func (s *Stack[T]) PeekRef() *T {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}

// At indexes from the bottom of the stack; nil when out of range.
func (s *Stack[T]) At(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}

	return &s.items[i]
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
