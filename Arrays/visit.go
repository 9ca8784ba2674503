package Arrays

import "github.com/g-m-twostay/locality"

// The visitors below produce the index orders shared by the Find* and IncLessThan* pairs.
// visit returns false to stop the traversal; the visitor then returns false as well.

// goodLocal visits [0,n) in storage order.
func goodLocal(n int, visit func(i int) bool) bool {
	for i := 0; i < n; i++ {
		if !visit(i) {
			return false
		}
	}
	return true
}

// badLocal visits [0,n) in bands. Band offset covers the indices offset, offset+J, offset+2J... where
// J is JumpElems, so two consecutive visits are JumpPages pages apart. Every index is visited once.
func badLocal(n, jump int, visit func(i int) bool) bool {
	for offset := 0; offset < jump; offset++ {
		for i := offset; i < n; i += jump {
			if !visit(i) {
				return false
			}
		}
	}
	return true
}

// halfSize is n rounded up to whole pages, halved, and rounded down to a page boundary.
func halfSize(n, page int) int {
	pages := (n + page - 1) / page
	return pages / 2 * page
}

// worseLocal walks the bands of badLocal twice at once: a lower index valid below half and an upper
// index, lower+half, valid below n. The accesses alternate between the two halves of the array.
// A band ends when neither index is valid.
func worseLocal(n, jump, page int, visit func(i int) bool) bool {
	half := halfSize(n, page)
	for offset := 0; offset < jump; offset++ {
		for lower, inBounds := offset, true; inBounds; lower += jump {
			inBounds = false
			if lower < half {
				if !visit(lower) {
					return false
				}
				inBounds = true
			}
			if upper := lower + half; upper < n {
				if !visit(upper) {
					return false
				}
				inBounds = true
			}
		}
	}
	return true
}

func strides[T locality.Element]() (jump, page int) {
	return locality.JumpElems[T](), locality.ElemsInPage[T]()
}
