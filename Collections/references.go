package Collections

import (
	"cmp"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/locality"
)

// Names of the reference variants.
const (
	BTreeSet      = "btree-set"
	LLRBTree      = "llrb-tree"
	RBTree        = "rb-tree"
	GodsArrayList = "gods-array-list"
	HaxMapBag     = "haxmap-bag"
	HashMapBag    = "hashmap-bag"
	RadixBag      = "radix-bag"
)

const bTreeDegree = 32

type bTreeSet[T locality.Element] struct {
	t *btree.BTreeG[T]
}

func newBTreeSet[T locality.Element](s []T) Collection[T] {
	t := btree.NewG(bTreeDegree, cmp.Less[T])
	for _, v := range s {
		t.ReplaceOrInsert(v)
	}
	return bTreeSet[T]{t}
}

func (u bTreeSet[T]) Name() string { return BTreeSet }
func (u bTreeSet[T]) Find(v T) bool { return u.t.Has(v) }
func (u bTreeSet[T]) Clone() Collection[T] {
	return bTreeSet[T]{u.t.Clone()}
}

// IncLessThan removes every item below v and inserts its successor. Successors that meet an
// existing item merge with it.
func (u bTreeSet[T]) IncLessThan(v T) {
	var below []T
	u.t.AscendLessThan(v, func(item T) bool {
		below = append(below, item)
		return true
	})
	for _, item := range below {
		u.t.Delete(item)
	}
	for _, item := range below {
		u.t.ReplaceOrInsert(locality.Inc(item))
	}
}

func (u bTreeSet[T]) Values() []T {
	vs := make([]T, 0, u.t.Len())
	u.t.Ascend(func(item T) bool {
		vs = append(vs, item)
		return true
	})
	return vs
}

// llrbItem holds a distinct value and how many times it was added. Less ignores n, so every key in
// the tree is unique.
type llrbItem[T locality.Element] struct {
	v T
	n int
}

func (a llrbItem[T]) Less(b llrb.Item) bool {
	return a.v < b.(llrbItem[T]).v
}

type llrbTree[T locality.Element] struct {
	t *llrb.LLRB
}

func newLLRBTree[T locality.Element](s []T) Collection[T] {
	u := llrbTree[T]{llrb.New()}
	for _, v := range s {
		u.add(v, 1)
	}
	return u
}

func (u llrbTree[T]) add(v T, n int) {
	if i := u.t.Get(llrbItem[T]{v: v}); i != nil {
		n += i.(llrbItem[T]).n
	}
	u.t.ReplaceOrInsert(llrbItem[T]{v, n})
}

func (u llrbTree[T]) Name() string  { return LLRBTree }
func (u llrbTree[T]) Find(v T) bool { return u.t.Has(llrbItem[T]{v: v}) }

func (u llrbTree[T]) Clone() Collection[T] {
	c := llrb.New()
	u.t.AscendGreaterOrEqual(llrbItem[T]{}, func(i llrb.Item) bool {
		c.ReplaceOrInsert(i)
		return true
	})
	return llrbTree[T]{c}
}

// IncLessThan removes every item below v and adds its count to the item of the successor.
func (u llrbTree[T]) IncLessThan(v T) {
	var below []llrbItem[T]
	u.t.AscendLessThan(llrbItem[T]{v: v}, func(i llrb.Item) bool {
		below = append(below, i.(llrbItem[T]))
		return true
	})
	for _, item := range below {
		u.t.Delete(item)
	}
	for _, item := range below {
		u.add(locality.Inc(item.v), item.n)
	}
}

func (u llrbTree[T]) Values() []T {
	var vs []T
	u.t.AscendGreaterOrEqual(llrbItem[T]{}, func(i llrb.Item) bool {
		item := i.(llrbItem[T])
		for range item.n {
			vs = append(vs, item.v)
		}
		return true
	})
	return vs
}

// rbTree keeps a count per distinct value.
type rbTree[T locality.Element] struct {
	t *redblacktree.Tree
}

func rbComparator[T locality.Element](a, b any) int {
	return cmp.Compare(a.(T), b.(T))
}

func newRBTree[T locality.Element](s []T) Collection[T] {
	u := rbTree[T]{redblacktree.NewWith(rbComparator[T])}
	for _, v := range s {
		u.add(v, 1)
	}
	return u
}

func (u rbTree[T]) add(v T, n int) {
	if c, found := u.t.Get(v); found {
		n += c.(int)
	}
	u.t.Put(v, n)
}

func (u rbTree[T]) Name() string { return RBTree }

func (u rbTree[T]) Find(v T) bool {
	_, found := u.t.Get(v)
	return found
}

func (u rbTree[T]) Clone() Collection[T] {
	c := rbTree[T]{redblacktree.NewWith(rbComparator[T])}
	for it := u.t.Iterator(); it.Next(); {
		c.t.Put(it.Key(), it.Value())
	}
	return c
}

func (u rbTree[T]) IncLessThan(v T) {
	type entry struct {
		k T
		n int
	}
	var below []entry
	for it := u.t.Iterator(); it.Next(); {
		k := it.Key().(T)
		if k >= v {
			break
		}
		below = append(below, entry{k, it.Value().(int)})
	}
	for _, e := range below {
		u.t.Remove(e.k)
	}
	for _, e := range below {
		u.add(locality.Inc(e.k), e.n)
	}
}

func (u rbTree[T]) Values() []T {
	var vs []T
	for it := u.t.Iterator(); it.Next(); {
		for range it.Value().(int) {
			vs = append(vs, it.Key().(T))
		}
	}
	return vs
}

type godsArrayList[T locality.Element] struct {
	l *arraylist.List
}

func newGodsArrayList[T locality.Element](s []T) Collection[T] {
	l := arraylist.New()
	for _, v := range s {
		l.Add(v)
	}
	return godsArrayList[T]{l}
}

func (u godsArrayList[T]) Name() string { return GodsArrayList }
func (u godsArrayList[T]) Find(v T) bool { return u.l.Contains(v) }
func (u godsArrayList[T]) Clone() Collection[T] { return godsArrayList[T]{arraylist.New(u.l.Values()...)} }

func (u godsArrayList[T]) IncLessThan(v T) {
	for i := range u.l.Size() {
		if c, _ := u.l.Get(i); c.(T) < v {
			u.l.Set(i, locality.Inc(c.(T)))
		}
	}
}

func (u godsArrayList[T]) Values() []T {
	vs := make([]T, 0, u.l.Size())
	u.l.Each(func(_ int, v any) {
		vs = append(vs, v.(T))
	})
	return vs
}
