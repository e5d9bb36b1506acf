package lox

import "fmt"

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{top: -1, elem: make([]T, 0)}
}

// Stack is a LIFO whose elements can also be read by index, bottom first.
type Stack[T any] struct {
	top  int
	elem []T
}

func (s *Stack[T]) Get(index int) (T, error) {
	if index < 0 || index > s.top {
		var zero T
		return zero, NewStackError(index, "access illegal address.")
	}
	return s.elem[index], nil
}

func (s *Stack[T]) Size() int {
	return s.top + 1
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top < 0
}

// Top panics on an empty stack; callers check IsEmpty first.
func (s *Stack[T]) Top() T {
	return s.elem[s.top]
}

func (s *Stack[T]) expand() {
	elem := make([]T, (s.top+1)<<1)
	copy(elem, s.elem)
	s.elem = elem
}

func (s *Stack[T]) Push(value T) {
	if s.top++; s.top >= len(s.elem) {
		s.expand()
	}
	s.elem[s.top] = value
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, NewStackError(s.top, "stack empty.")
	}
	value := s.elem[s.top]
	s.elem[s.top] = zero
	s.top--
	return value, nil
}

func (s Stack[T]) String() string {
	return fmt.Sprintf("stack info: <top,%d>, <size,%d>, <elems, %v >",
		s.top, s.Size(), s.elem[:s.top+1])
}
