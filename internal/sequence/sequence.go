// Package sequence implements a doubly-linked list bounded by two sentinel
// nodes. Sentinels never carry a value and are never returned to callers.
package sequence

import (
	"errors"
	"iter"
)

var (
	// ErrEmpty is returned by First and Last on an empty list.
	ErrEmpty = errors.New("sequence is empty")
	// ErrInvalidNode is returned when a node is a sentinel, nil, or does
	// not belong to the list it is used with.
	ErrInvalidNode = errors.New("invalid node")
	// ErrNoNeighbor is returned by Prev and Next at the ends of the list.
	ErrNoNeighbor = errors.New("no neighbor in that direction")
)

// Node is an element of a List.
type Node[T any] struct {
	value      T
	prev, next *Node[T]
	list       *List[T] // owner, nil while detached
}

// NewNode creates a detached node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the node payload.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the node payload.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// List is a doubly-linked list with head and tail sentinels.
// The zero value is not usable; call New.
type List[T any] struct {
	head, tail *Node[T]
	size       int
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{
		head: &Node[T]{},
		tail: &Node[T]{},
	}
	l.head.list = l
	l.tail.list = l
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// Len returns the number of value nodes.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no value nodes.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *List[T]) isSentinel(n *Node[T]) bool {
	return n == l.head || n == l.tail
}

// owns reports whether n is a value node of this list.
func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l && !l.isSentinel(n)
}

// First returns the node right after the head sentinel.
func (l *List[T]) First() (*Node[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmpty
	}
	return l.head.next, nil
}

// Last returns the node right before the tail sentinel.
func (l *List[T]) Last() (*Node[T], error) {
	if l.IsEmpty() {
		return nil, ErrEmpty
	}
	return l.tail.prev, nil
}

// Prev returns the node before n.
func (l *List[T]) Prev(n *Node[T]) (*Node[T], error) {
	if n == l.head || !l.owns(n) {
		return nil, ErrInvalidNode
	}
	if n.prev == l.head {
		return nil, ErrNoNeighbor
	}
	return n.prev, nil
}

// Next returns the node after n.
func (l *List[T]) Next(n *Node[T]) (*Node[T], error) {
	if n == l.tail || !l.owns(n) {
		return nil, ErrInvalidNode
	}
	if n.next == l.tail {
		return nil, ErrNoNeighbor
	}
	return n.next, nil
}

// HasPrev reports whether a value node precedes n.
func (l *List[T]) HasPrev(n *Node[T]) bool {
	return l.owns(n) && n.prev != l.head
}

// HasNext reports whether a value node follows n.
func (l *List[T]) HasNext(n *Node[T]) bool {
	return l.owns(n) && n.next != l.tail
}

// InsertBefore splices the detached node n in front of anchor.
func (l *List[T]) InsertBefore(anchor, n *Node[T]) error {
	if !l.owns(anchor) || !detached(n) {
		return ErrInvalidNode
	}
	l.link(anchor.prev, n, anchor)
	return nil
}

// InsertAfter splices the detached node n right after anchor.
func (l *List[T]) InsertAfter(anchor, n *Node[T]) error {
	if !l.owns(anchor) || !detached(n) {
		return ErrInvalidNode
	}
	l.link(anchor, n, anchor.next)
	return nil
}

// InsertFirst splices n right after the head sentinel.
func (l *List[T]) InsertFirst(n *Node[T]) error {
	if !detached(n) {
		return ErrInvalidNode
	}
	l.link(l.head, n, l.head.next)
	return nil
}

// InsertLast splices n right before the tail sentinel.
func (l *List[T]) InsertLast(n *Node[T]) error {
	if !detached(n) {
		return ErrInvalidNode
	}
	l.link(l.tail.prev, n, l.tail)
	return nil
}

// Remove unlinks n. The node is detached afterwards and may be inserted
// again, into this or another list.
func (l *List[T]) Remove(n *Node[T]) error {
	if !l.owns(n) {
		return ErrInvalidNode
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next, n.list = nil, nil, nil
	l.size--
	return nil
}

// link places n between u and w, which must be adjacent.
func (l *List[T]) link(u, n, w *Node[T]) {
	n.prev = u
	n.next = w
	u.next = n
	w.prev = n
	n.list = l
	l.size++
}

func detached[T any](n *Node[T]) bool {
	return n != nil && n.list == nil
}

// All iterates over value nodes from first to last.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns the payloads in list order.
func (l *List[T]) Values() []T {
	result := make([]T, 0, l.size)
	for n := range l.All() {
		result = append(result, n.value)
	}
	return result
}
