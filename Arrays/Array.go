package Arrays

import (
	"slices"

	"github.com/g-m-twostay/locality"
)

// Array is a resizable sequence of T kept in insertion order. It is grown only by Append.
// The Find* and IncLessThan* methods come in pairs that share one traversal order:
// good-local scans storage order, bad-local strides JumpPages pages between visits, worse-local
// interleaves two such strides over the two halves of the array, and sorted binary searches.
// The *Sorted methods require Sort to have been called and the array not to have been
// appended to since; this isn't checked.
// The zero value is an empty array.
type Array[T locality.Element] struct {
	vs []T
}

// New empty Array with room for hint elements.
func New[T locality.Element](hint int) *Array[T] {
	return &Array[T]{make([]T, 0, hint)}
}

// FromSlice appends every element of s to a new Array in order.
func FromSlice[T locality.Element](s []T) *Array[T] {
	u := New[T](len(s))
	for _, v := range s {
		u.Append(v)
	}
	return u
}

// Append v to the end.
func (u *Array[T]) Append(v T) {
	u.vs = append(u.vs, v)
}

// Sort in ascending order.
func (u *Array[T]) Sort() {
	slices.Sort(u.vs)
}

// Clone returns an independent copy.
func (u *Array[T]) Clone() *Array[T] {
	return &Array[T]{slices.Clone(u.vs)}
}

// Len is the number of stored elements.
func (u *Array[T]) Len() int {
	return len(u.vs)
}

// Range calls f on the elements in storage order until f returns false.
func (u *Array[T]) Range(f func(T) bool) {
	for _, v := range u.vs {
		if !f(v) {
			return
		}
	}
}

// Slice exposes the backing storage. The caller must not grow it.
func (u *Array[T]) Slice() []T {
	return u.vs
}

// FindGoodLocal by scanning from the first to the last element.
// Time: O(n)
func (u *Array[T]) FindGoodLocal(v T) bool {
	return !goodLocal(len(u.vs), func(i int) bool {
		return u.vs[i] != v
	})
}

// FindBadLocal visits every element once, jumping JumpPages pages between consecutive visits.
// Time: O(n+JumpElems)
func (u *Array[T]) FindBadLocal(v T) bool {
	jump, _ := strides[T]()
	return !badLocal(len(u.vs), jump, func(i int) bool {
		return u.vs[i] != v
	})
}

// FindWorseLocal visits every element once, alternating between the lower and the upper half of
// the array on top of the bad-local jumps.
// Time: O(n+JumpElems)
func (u *Array[T]) FindWorseLocal(v T) bool {
	jump, page := strides[T]()
	return !worseLocal(len(u.vs), jump, page, func(i int) bool {
		return u.vs[i] != v
	})
}

// search is a binary search over the sorted array. When found, i is the index of some element
// equal to v, not necessarily the first one. Otherwise i is where v would be inserted.
func (u *Array[T]) search(v T) (i int, found bool) {
	lo, hi := 0, len(u.vs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if c := u.vs[mid]; c < v {
			lo = mid + 1
		} else if c > v {
			hi = mid
		} else {
			return mid, true
		}
	}
	return lo, false
}

// FindSorted by binary search.
// Time: O(log n)
func (u *Array[T]) FindSorted(v T) bool {
	_, found := u.search(v)
	return found
}

// IncLessThanGoodLocal adds one to every element less than v, in the order of FindGoodLocal.
func (u *Array[T]) IncLessThanGoodLocal(v T) {
	goodLocal(len(u.vs), func(i int) bool {
		if u.vs[i] < v {
			u.vs[i] = locality.Inc(u.vs[i])
		}
		return true
	})
}

// IncLessThanBadLocal adds one to every element less than v, in the order of FindBadLocal.
func (u *Array[T]) IncLessThanBadLocal(v T) {
	jump, _ := strides[T]()
	badLocal(len(u.vs), jump, func(i int) bool {
		if u.vs[i] < v {
			u.vs[i] = locality.Inc(u.vs[i])
		}
		return true
	})
}

// IncLessThanWorseLocal adds one to every element less than v, in the order of FindWorseLocal.
func (u *Array[T]) IncLessThanWorseLocal(v T) {
	jump, page := strides[T]()
	worseLocal(len(u.vs), jump, page, func(i int) bool {
		if u.vs[i] < v {
			u.vs[i] = locality.Inc(u.vs[i])
		}
		return true
	})
}

// IncLessThanSorted adds one to every element less than v. The boundary is found by binary search
// and then moved back over the elements equal to v that precede the landing point, so that the
// prefix [0,boundary) is exactly the elements less than v. The array stays sorted.
// Time: O(log n + k) where k is the number of elements less than v plus the duplicates of v.
func (u *Array[T]) IncLessThanSorted(v T) {
	boundary, _ := u.search(v)
	for boundary > 0 && u.vs[boundary-1] >= v {
		boundary--
	}
	for i := range u.vs[:boundary] {
		u.vs[i] = locality.Inc(u.vs[i])
	}
}
