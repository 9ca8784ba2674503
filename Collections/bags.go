package Collections

import (
	"encoding/binary"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/outofforest/iradix"

	"github.com/g-m-twostay/locality"
)

// counts maps distinct values to their multiplicities.
type counts[T locality.Element] interface {
	get(v T) (int, bool)
	set(v T, n int)
	del(v T)
	// rangeAll calls f on every entry until it returns false. The map isn't modified meanwhile.
	rangeAll(f func(v T, n int) bool)
	clone() counts[T]
	len() int
}

// bag is a multiset on top of a counts.
type bag[T locality.Element] struct {
	m    counts[T]
	name string
}

func newBag[T locality.Element](name string, m counts[T], s []T) bag[T] {
	u := bag[T]{m, name}
	for _, v := range s {
		u.add(v, 1)
	}
	return u
}

func (u bag[T]) add(v T, n int) {
	if c, ok := u.m.get(v); ok {
		n += c
	}
	u.m.set(v, n)
}

func (u bag[T]) Name() string { return u.name }

func (u bag[T]) Find(v T) bool {
	_, ok := u.m.get(v)
	return ok
}

func (u bag[T]) Clone() Collection[T] {
	return bag[T]{u.m.clone(), u.name}
}

// IncLessThan takes every entry below v out of the map first and then adds each count to the
// successor, so that a successor that is itself below v isn't incremented twice.
func (u bag[T]) IncLessThan(v T) {
	type entry struct {
		k T
		n int
	}
	var below []entry
	u.m.rangeAll(func(k T, n int) bool {
		if k < v {
			below = append(below, entry{k, n})
		}
		return true
	})
	for _, e := range below {
		u.m.del(e.k)
	}
	for _, e := range below {
		u.add(locality.Inc(e.k), e.n)
	}
}

func (u bag[T]) Values() []T {
	vs := make([]T, 0, u.m.len())
	u.m.rangeAll(func(k T, n int) bool {
		for range n {
			vs = append(vs, k)
		}
		return true
	})
	return vs
}

type haxCounts[T locality.Element] struct {
	m *haxmap.Map[T, int]
}

func newHaxMapBag[T locality.Element](s []T) Collection[T] {
	return newBag[T](HaxMapBag, haxCounts[T]{haxmap.New[T, int]()}, s)
}

func (u haxCounts[T]) get(v T) (int, bool) { return u.m.Get(v) }
func (u haxCounts[T]) set(v T, n int) { u.m.Set(v, n) }
func (u haxCounts[T]) del(v T) { u.m.Del(v) }
func (u haxCounts[T]) len() int { return int(u.m.Len()) }
func (u haxCounts[T]) rangeAll(f func(T, int) bool) {
	u.m.ForEach(f)
}
func (u haxCounts[T]) clone() counts[T] {
	c := haxmap.New[T, int]()
	u.m.ForEach(func(k T, n int) bool {
		c.Set(k, n)
		return true
	})
	return haxCounts[T]{c}
}

type hashCounts[T locality.Element] struct {
	m *hashmap.Map[T, int]
}

func newHashMapBag[T locality.Element](s []T) Collection[T] {
	return newBag[T](HashMapBag, hashCounts[T]{hashmap.New[T, int]()}, s)
}

func (u hashCounts[T]) get(v T) (int, bool) { return u.m.Get(v) }
func (u hashCounts[T]) set(v T, n int) { u.m.Set(v, n) }
func (u hashCounts[T]) del(v T) { u.m.Del(v) }
func (u hashCounts[T]) len() int { return u.m.Len() }
func (u hashCounts[T]) rangeAll(f func(T, int) bool) {
	u.m.Range(f)
}
func (u hashCounts[T]) clone() counts[T] {
	c := hashmap.New[T, int]()
	u.m.Range(func(k T, n int) bool {
		c.Set(k, n)
		return true
	})
	return hashCounts[T]{c}
}

// radixEntry is stored under the big endian encoding of k, so iteration is in ascending order.
type radixEntry[T locality.Element] struct {
	k T
	n int
}

type radixCounts[T locality.Element] struct {
	txn *iradix.Txn[radixEntry[T]]
	sz  *int
}

func newRadixBag[T locality.Element](s []T) Collection[T] {
	return newBag[T](RadixBag, radixCounts[T]{iradix.NewTxn(iradix.New[radixEntry[T]]()), new(int)}, s)
}

func radixKey[T locality.Element](v T) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(v))
}

func (u radixCounts[T]) get(v T) (int, bool) {
	if e := u.txn.Get(radixKey(v)); e != nil {
		return e.n, true
	}
	return 0, false
}

func (u radixCounts[T]) set(v T, n int) {
	if u.txn.Insert(radixKey(v), &radixEntry[T]{v, n}) == nil {
		*u.sz++
	}
}

func (u radixCounts[T]) del(v T) {
	if u.txn.Delete(radixKey(v)) != nil {
		*u.sz--
	}
}

func (u radixCounts[T]) len() int { return *u.sz }

func (u radixCounts[T]) rangeAll(f func(T, int) bool) {
	it := u.txn.Root().Iterator()
	for e := it.Next(); e != nil; e = it.Next() {
		if !f(e.k, e.n) {
			return
		}
	}
}

func (u radixCounts[T]) clone() counts[T] {
	sz := *u.sz
	return radixCounts[T]{u.txn.Clone(), &sz}
}
