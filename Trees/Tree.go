package Trees

import "github.com/g-m-twostay/locality"

// Tree of T shaped by the insertion policy used to fill it, see the package documentation.
// The zero value is an empty tree.
type Tree[T locality.Element] struct {
	root *node[T]
	sz   int
	st   []*node[T] // reused by the stack based traversals
}

// New empty tree.
func New[T locality.Element]() *Tree[T] {
	return &Tree[T]{}
}

// Size is the number of nodes.
func (u *Tree[T]) Size() int {
	return u.sz
}

// Clone returns a deep copy with the same shape.
// Time: O(n)
func (u *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: cloneNodes(u.root), sz: u.sz}
}

// InsertWithOrder v, keeping the tree a binary search tree. Returns false without modifying the
// tree if v is already present.
// Time: O(D); Space: O(1)
func (u *Tree[T]) InsertWithOrder(v T) bool {
	cur := &u.root
	for *cur != nil {
		if v < (*cur).v {
			cur = &(*cur).l
		} else if v > (*cur).v {
			cur = &(*cur).r
		} else {
			return false
		}
	}
	*cur = &node[T]{v: v}
	u.sz++
	return true
}

// InsertWithoutOrder v. The side taken at each node depends on the comparison and on a flag that
// flips at every level: less goes left on even levels and right on odd ones, greater the other
// way round, and equal goes right on even levels and left on odd ones. Repeated values are kept.
// Time: O(D); Space: O(1)
func (u *Tree[T]) InsertWithoutOrder(v T) {
	cur, reverse := &u.root, false
	for *cur != nil {
		if left := (v < (*cur).v) != reverse; left {
			cur = &(*cur).l
		} else {
			cur = &(*cur).r
		}
		reverse = !reverse
	}
	*cur = &node[T]{v: v}
	u.sz++
}

// FindWithOrder by descending the search tree.
// Time: O(D); Space: O(1)
func (u *Tree[T]) FindWithOrder(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// FindWithoutOrder by a depth first search over the whole tree, stopping at the first match.
// Time: O(n); Space: O(n)
func (u *Tree[T]) FindWithoutOrder(v T) bool {
	u.st = append(u.st[:0], u.root)
	for len(u.st) > 0 {
		cur := u.st[len(u.st)-1]
		u.st = u.st[:len(u.st)-1]
		if cur != nil {
			if cur.v == v {
				return true
			}
			u.st = append(u.st, cur.l, cur.r)
		}
	}
	return false
}

// IncLessThanWithoutOrder adds one to the value of every node less than v.
// Time: O(n); Space: O(n)
func (u *Tree[T]) IncLessThanWithoutOrder(v T) {
	u.st = append(u.st[:0], u.root)
	for len(u.st) > 0 {
		cur := u.st[len(u.st)-1]
		u.st = u.st[:len(u.st)-1]
		if cur != nil {
			if cur.v < v {
				cur.v = locality.Inc(cur.v)
			}
			u.st = append(u.st, cur.l, cur.r)
		}
	}
}

// IncLessThanWithOrder adds one to every value less than v on a search tree.
//
// The walk starts at the root. A node not less than v bounds everything below v to its left
// subtree, so the walk goes left. A node less than v has its whole left subtree less than v too;
// the node and that subtree are incremented at once and the walk continues right.
//
// Values are distinct, so the only possible collision is v-1 becoming v while v is present. The
// last incremented node on the path holds the largest incremented value, and the last bound on
// the path is its successor. If they became equal, one of them is spliced out: the incremented
// node if it has no right child (its left child takes its place), otherwise the bound, which is
// then the leftmost node of that right subtree (its right child takes its place).
// Time: O(D+k) where k is the number of values less than v.
func (u *Tree[T]) IncLessThanWithOrder(v T) {
	var inc, bound **node[T]
	for cur := &u.root; *cur != nil; {
		if n := *cur; n.v < v {
			n.v = locality.Inc(n.v)
			if n.l != nil {
				u.st = incAll(n.l, u.st)
			}
			inc, cur = cur, &n.r
		} else {
			bound, cur = cur, &n.l
		}
	}
	if inc == nil || bound == nil {
		return // nothing was below v, or everything was.
	}
	if m, b := *inc, *bound; m.v == b.v {
		if m.r == nil {
			*inc = m.l
		} else {
			*bound = b.r
		}
		u.sz--
	}
}

// InOrder calls f on the values in in-order until f returns false. On a tree built WithOrder the
// values come in ascending order. f may call other methods of u that don't change its shape.
// Time: O(n); Space: O(D)
func (u *Tree[T]) InOrder(f func(T) bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			break
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Depth of the shallowest node holding v, the root being at depth 0. Doesn't rely on ordering.
func (u *Tree[T]) Depth(v T) (int, bool) {
	type entry struct {
		n *node[T]
		d int
	}
	best, found := 0, false
	for st := []entry{{u.root, 0}}; len(st) > 0; {
		e := st[len(st)-1]
		st = st[:len(st)-1]
		if e.n == nil {
			continue
		}
		if e.n.v == v && (!found || e.d < best) {
			best, found = e.d, true
		}
		st = append(st, entry{e.n.l, e.d + 1}, entry{e.n.r, e.d + 1})
	}
	return best, found
}

// MaxDepth is the number of nodes on the longest root to leaf path.
func (u *Tree[T]) MaxDepth() int {
	type entry struct {
		n *node[T]
		d int
	}
	m := 0
	for st := []entry{{u.root, 1}}; len(st) > 0; {
		e := st[len(st)-1]
		st = st[:len(st)-1]
		if e.n != nil {
			m = max(m, e.d)
			st = append(st, entry{e.n.l, e.d + 1}, entry{e.n.r, e.d + 1})
		}
	}
	return m
}
