package Trees

import (
	"testing"

	"github.com/g-m-twostay/locality"
)

var (
	bAddN = 1 << 15
	bQryN = bAddN / 2
)

var __r1 bool

func randomValues(n int) []uint64 {
	all := make([]uint64, n)
	for i := range all {
		all[i] = rg.Uint64()
	}
	return all
}

func BenchmarkInsertWithOrder(b *testing.B) {
	all := randomValues(bAddN)
	b.ResetTimer()
	for range b.N {
		Build(WithOrder, all)
	}
}
func BenchmarkInsertWithoutOrder(b *testing.B) {
	all := randomValues(bAddN)
	b.ResetTimer()
	for range b.N {
		Build(WithoutOrder, all)
	}
}

func benchmarkFind(p Policy, b *testing.B) {
	all := randomValues(bAddN)
	tree := Build(p, all)
	b.ResetTimer()
	for i := range b.N {
		__r1 = tree.Find(p, all[i%bQryN])
	}
}
func BenchmarkFindWithOrder(b *testing.B) {
	benchmarkFind(WithOrder, b)
}
func BenchmarkFindWithoutOrder(b *testing.B) {
	benchmarkFind(WithoutOrder, b)
}

func benchmarkInc(p Policy, b *testing.B) {
	all := make([]uint64, 16*locality.ElemsInPage[uint64]())
	for i := range all {
		all[i] = uint64(rg.Intn(len(all) * 4))
	}
	tree := Build(p, all)
	b.ResetTimer()
	for i := range b.N {
		tree.IncLessThan(p, all[i%len(all)])
	}
}
func BenchmarkIncLessThanWithOrder(b *testing.B) {
	benchmarkInc(WithOrder, b)
}
func BenchmarkIncLessThanWithoutOrder(b *testing.B) {
	benchmarkInc(WithoutOrder, b)
}
