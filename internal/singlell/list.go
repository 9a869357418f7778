// Package singlell is a singly linked list that grows at the head.
//
// Every node is owned by its predecessor and the head is owned by the list,
// so dropping the list releases the whole chain. Nodes are never relinked
// after insertion, which keeps the chain acyclic.
package singlell

type SingleLL[T any] interface {
	// Push prepends v, making it the new head.
	Push(v T)
	Len() int
	// Iter starts a new head-to-tail traversal.
	Iter() Iterator[T]
	Values() []T
}

// Iterator walks the list once. It cannot be rewound; call Iter again.
type Iterator[T any] interface {
	Next() (T, bool)
}

type node[T any] struct {
	next  *node[T]
	value T
}

type singleLL[T any] struct {
	head   *node[T]
	length int
}

func (l *singleLL[T]) Push(v T) {
	l.head = &node[T]{next: l.head, value: v}
	l.length++
}

func (l *singleLL[T]) Len() int {
	return l.length
}

func (l *singleLL[T]) Iter() Iterator[T] {
	return &iterator[T]{current: l.head}
}

func (l *singleLL[T]) Values() []T {
	result := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		result = append(result, n.value)
	}

	return result
}

type iterator[T any] struct {
	current *node[T]
}

func (it *iterator[T]) Next() (T, bool) {
	if it.current == nil {
		var result T
		return result, false
	}

	n := it.current
	it.current = n.next

	return n.value, true
}

func New[T any]() SingleLL[T] {
	return &singleLL[T]{}
}
