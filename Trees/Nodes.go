package Trees

import "github.com/g-m-twostay/locality"

// A node in the Tree. Children are owned exclusively by their parent; nil is an absent child.
type node[T locality.Element] struct {
	v    T
	l, r *node[T]
}

// incAll adds one to every value in the subtree rooted at n. st is a reusable stack buffer and
// is returned for the next call.
// Time: O(size of the subtree); Space: O(width of the subtree)
func incAll[T locality.Element](n *node[T], st []*node[T]) []*node[T] {
	for st = append(st[:0], n); len(st) > 0; {
		n, st = st[len(st)-1], st[:len(st)-1]
		if n != nil {
			n.v = locality.Inc(n.v)
			st = append(st, n.l, n.r)
		}
	}
	return st
}

// cloneNodes deep copies the subtree rooted at n without recursion.
func cloneNodes[T locality.Element](n *node[T]) *node[T] {
	var root *node[T]
	type pair struct {
		src *node[T]
		dst **node[T]
	}
	for st := []pair{{n, &root}}; len(st) > 0; {
		p := st[len(st)-1]
		st = st[:len(st)-1]
		if p.src != nil {
			c := &node[T]{v: p.src.v}
			*p.dst = c
			st = append(st, pair{p.src.l, &c.l}, pair{p.src.r, &c.r})
		}
	}
	return root
}
