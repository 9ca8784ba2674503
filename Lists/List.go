// Package Lists implements a singly linked list of unsigned integers that grows at the front.
package Lists

import "github.com/g-m-twostay/locality"

type node[T locality.Element] struct {
	v    T
	next *node[T]
}

// List of T. Iteration goes from the most recently prepended element to the first one.
// The zero value is an empty list.
type List[T locality.Element] struct {
	head *node[T]
	sz   int
}

// New empty List.
func New[T locality.Element]() *List[T] {
	return &List[T]{}
}

// FromSlice prepends every element of s in order, so the list holds s reversed.
func FromSlice[T locality.Element](s []T) *List[T] {
	u := New[T]()
	for _, v := range s {
		u.Prepend(v)
	}
	return u
}

// Prepend v so that it becomes the first element.
// Time: O(1)
func (u *List[T]) Prepend(v T) {
	u.head = &node[T]{v, u.head}
	u.sz++
}

// Len is the number of elements.
func (u *List[T]) Len() int {
	return u.sz
}

// Find walks from the front until an element equal to v is met.
// Time: O(n)
func (u *List[T]) Find(v T) bool {
	for cur := u.head; cur != nil; cur = cur.next {
		if cur.v == v {
			return true
		}
	}
	return false
}

// IncLessThan adds one to every element less than v.
// Time: O(n)
func (u *List[T]) IncLessThan(v T) {
	for cur := u.head; cur != nil; cur = cur.next {
		if cur.v < v {
			cur.v = locality.Inc(cur.v)
		}
	}
}

// Clone returns an independent list with the same elements in the same order.
// Time: O(n)
func (u *List[T]) Clone() *List[T] {
	c := &List[T]{sz: u.sz}
	tail := &c.head
	for cur := u.head; cur != nil; cur = cur.next {
		*tail = &node[T]{v: cur.v}
		tail = &(*tail).next
	}
	return c
}

// Range calls f on the elements from the front until f returns false.
func (u *List[T]) Range(f func(T) bool) {
	for cur := u.head; cur != nil; cur = cur.next {
		if !f(cur.v) {
			return
		}
	}
}
