// Package Trees implements a binary tree of unsigned integers that can be shaped by two insertion
// policies. WithOrder builds a binary search tree without repeated values. WithoutOrder descends
// with a flag that flips at every level, so the resulting tree has the same depths as a search
// tree of the same values but doesn't satisfy the ordering and keeps repeated values.
// Each policy has its own Find and IncLessThan; mixing them is allowed but only the WithoutOrder
// ones are correct on every tree.
// Methods are implemented iteratively with explicit stacks, so the call stack never depends on
// the height of the tree.
package Trees

import "github.com/g-m-twostay/locality"

// Policy decides how values are placed when a tree is built.
type Policy byte

const (
	WithOrder Policy = iota
	WithoutOrder
)

func (p Policy) String() string {
	switch p {
	case WithOrder:
		return "with-order"
	case WithoutOrder:
		return "without-order"
	}
	return "unknown"
}

// Build a tree by inserting every value of s in order using policy p.
func Build[T locality.Element](p Policy, s []T) *Tree[T] {
	u := New[T]()
	if p == WithOrder {
		for _, v := range s {
			u.InsertWithOrder(v)
		}
	} else {
		for _, v := range s {
			u.InsertWithoutOrder(v)
		}
	}
	return u
}

// Find using the lookup that matches p.
func (u *Tree[T]) Find(p Policy, v T) bool {
	if p == WithOrder {
		return u.FindWithOrder(v)
	}
	return u.FindWithoutOrder(v)
}

// IncLessThan using the increment that matches p.
func (u *Tree[T]) IncLessThan(p Policy, v T) {
	if p == WithOrder {
		u.IncLessThanWithOrder(v)
	} else {
		u.IncLessThanWithoutOrder(v)
	}
}
