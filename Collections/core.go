package Collections

import (
	"github.com/g-m-twostay/locality"
	"github.com/g-m-twostay/locality/Arrays"
	"github.com/g-m-twostay/locality/Lists"
	"github.com/g-m-twostay/locality/Trees"
)

// Names of the core variants.
const (
	SortedArray      = "sorted-array"
	GoodLocalArray   = "good-local-array"
	BadLocalArray    = "bad-local-array"
	WorseLocalArray  = "worse-local-array"
	LinkedList       = "linked-list"
	WithOrderTree    = "with-order-tree"
	WithoutOrderTree = "without-order-tree"
)

// array shares the storage code of the four array variants; only the traversal differs.
type array[T locality.Element] struct {
	*Arrays.Array[T]
	name string
	find func(*Arrays.Array[T], T) bool
	inc  func(*Arrays.Array[T], T)
}

func (u *array[T]) Name() string { return u.name }
func (u *array[T]) Find(v T) bool { return u.find(u.Array, v) }
func (u *array[T]) IncLessThan(v T) { u.inc(u.Array, v) }
func (u *array[T]) Values() []T { return append([]T(nil), u.Slice()...) }
func (u *array[T]) Clone() Collection[T] {
	c := *u
	c.Array = u.Array.Clone()
	return &c
}

func newSortedArray[T locality.Element](s []T) Collection[T] {
	a := Arrays.FromSlice(s)
	a.Sort()
	return &array[T]{a, SortedArray, (*Arrays.Array[T]).FindSorted, (*Arrays.Array[T]).IncLessThanSorted}
}

func newGoodLocalArray[T locality.Element](s []T) Collection[T] {
	return &array[T]{Arrays.FromSlice(s), GoodLocalArray,
		(*Arrays.Array[T]).FindGoodLocal, (*Arrays.Array[T]).IncLessThanGoodLocal}
}

func newBadLocalArray[T locality.Element](s []T) Collection[T] {
	return &array[T]{Arrays.FromSlice(s), BadLocalArray,
		(*Arrays.Array[T]).FindBadLocal, (*Arrays.Array[T]).IncLessThanBadLocal}
}

func newWorseLocalArray[T locality.Element](s []T) Collection[T] {
	return &array[T]{Arrays.FromSlice(s), WorseLocalArray,
		(*Arrays.Array[T]).FindWorseLocal, (*Arrays.Array[T]).IncLessThanWorseLocal}
}

type list[T locality.Element] struct {
	*Lists.List[T]
}

func newLinkedList[T locality.Element](s []T) Collection[T] {
	return list[T]{Lists.FromSlice(s)}
}

func (u list[T]) Name() string { return LinkedList }
func (u list[T]) Clone() Collection[T] { return list[T]{u.List.Clone()} }
func (u list[T]) Values() []T { return rangeValues(u.List.Len(), u.Range) }

type tree[T locality.Element] struct {
	*Trees.Tree[T]
	p Trees.Policy
}

func newWithOrderTree[T locality.Element](s []T) Collection[T] {
	return tree[T]{Trees.Build(Trees.WithOrder, s), Trees.WithOrder}
}

func newWithoutOrderTree[T locality.Element](s []T) Collection[T] {
	return tree[T]{Trees.Build(Trees.WithoutOrder, s), Trees.WithoutOrder}
}

func (u tree[T]) Name() string { return u.p.String() + "-tree" }
func (u tree[T]) Find(v T) bool { return u.Tree.Find(u.p, v) }
func (u tree[T]) IncLessThan(v T) { u.Tree.IncLessThan(u.p, v) }
func (u tree[T]) Clone() Collection[T] { return tree[T]{u.Tree.Clone(), u.p} }
func (u tree[T]) Values() []T { return rangeValues(u.Size(), u.InOrder) }

func rangeValues[T locality.Element](hint int, r func(func(T) bool)) []T {
	vs := make([]T, 0, hint)
	r(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}
