// Package locality holds the definitions shared by every container: the element
// constraint and the page geometry used to lay out strided traversals.
package locality

import (
	"golang.org/x/exp/constraints"
	"unsafe"
)

const (
	// PageSize in bytes. It only parameterizes traversal strides.
	PageSize = 0x1000
	// JumpPages is how many pages a strided traversal skips between two consecutive visits.
	JumpPages = 16
)

// Element is any fixed width unsigned integer. Arithmetic on it wraps.
type Element interface {
	constraints.Unsigned
}

// ElemsInPage returns P, the number of T that fit in one page.
func ElemsInPage[T Element]() int {
	return PageSize / int(unsafe.Sizeof(*new(T)))
}

// JumpElems returns the distance in elements between two consecutive visits of a strided traversal.
func JumpElems[T Element]() int {
	return JumpPages * ElemsInPage[T]()
}

// Inc adds one to v, wrapping around at the maximum of T.
func Inc[T Element](v T) T {
	return v + 1
}
