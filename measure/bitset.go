package main

import (
	"math/bits"
	"slices"
)

// bitSet records one boolean per lookup target.
type bitSet struct {
	bits []uint
}

func newBitSet(size int) bitSet {
	return bitSet{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

func (u bitSet) get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u bitSet) up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u bitSet) equal(o bitSet) bool {
	return slices.Equal(u.bits, o.bits)
}
