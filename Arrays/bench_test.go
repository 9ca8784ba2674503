package Arrays

import (
	"testing"

	"github.com/g-m-twostay/locality"
)

var __r1 bool

func benchArray(b *testing.B, pages int, sorted bool) (*Array[uint64], []uint64) {
	b.Helper()
	all := randomArray(pages*locality.ElemsInPage[uint64](), 1<<30)
	a := FromSlice(all)
	if sorted {
		a.Sort()
	}
	return a, all
}

func benchmarkFind(pages int, find func(*Array[uint64], uint64) bool, sorted bool, b *testing.B) {
	a, all := benchArray(b, pages, sorted)
	b.ResetTimer()
	for i := range b.N {
		__r1 = find(a, all[i%len(all)])
	}
}

func benchmarkInc(pages int, inc func(*Array[uint64], uint64), sorted bool, b *testing.B) {
	a, all := benchArray(b, pages, sorted)
	b.ResetTimer()
	for i := range b.N {
		inc(a, all[i%len(all)])
	}
}

func BenchmarkFindGoodLocal16(b *testing.B) {
	benchmarkFind(16, (*Array[uint64]).FindGoodLocal, false, b)
}
func BenchmarkFindBadLocal16(b *testing.B) {
	benchmarkFind(16, (*Array[uint64]).FindBadLocal, false, b)
}
func BenchmarkFindWorseLocal16(b *testing.B) {
	benchmarkFind(16, (*Array[uint64]).FindWorseLocal, false, b)
}
func BenchmarkFindSorted16(b *testing.B) {
	benchmarkFind(16, (*Array[uint64]).FindSorted, true, b)
}
func BenchmarkFindGoodLocal256(b *testing.B) {
	benchmarkFind(256, (*Array[uint64]).FindGoodLocal, false, b)
}
func BenchmarkFindBadLocal256(b *testing.B) {
	benchmarkFind(256, (*Array[uint64]).FindBadLocal, false, b)
}
func BenchmarkFindWorseLocal256(b *testing.B) {
	benchmarkFind(256, (*Array[uint64]).FindWorseLocal, false, b)
}
func BenchmarkFindSorted256(b *testing.B) {
	benchmarkFind(256, (*Array[uint64]).FindSorted, true, b)
}

func BenchmarkIncGoodLocal256(b *testing.B) {
	benchmarkInc(256, (*Array[uint64]).IncLessThanGoodLocal, false, b)
}
func BenchmarkIncBadLocal256(b *testing.B) {
	benchmarkInc(256, (*Array[uint64]).IncLessThanBadLocal, false, b)
}
func BenchmarkIncWorseLocal256(b *testing.B) {
	benchmarkInc(256, (*Array[uint64]).IncLessThanWorseLocal, false, b)
}
func BenchmarkIncSorted256(b *testing.B) {
	benchmarkInc(256, (*Array[uint64]).IncLessThanSorted, true, b)
}
