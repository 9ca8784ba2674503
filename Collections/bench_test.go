package Collections

import (
	"testing"

	"github.com/g-m-twostay/locality"
)

var __r1 bool

func benchElements(pages int) []uint64 {
	all := make([]uint64, pages*locality.ElemsInPage[uint64]())
	for i := range all {
		all[i] = uint64(rg.Intn(len(all) * 4))
	}
	return all
}

func BenchmarkCreate(b *testing.B) {
	all := benchElements(16)
	for _, v := range All[uint64]() {
		b.Run(v.Name, func(b *testing.B) {
			for range b.N {
				v.Create(all)
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	all := benchElements(16)
	for _, v := range All[uint64]() {
		c := v.Create(all)
		b.Run(v.Name, func(b *testing.B) {
			for i := range b.N {
				__r1 = c.Find(all[i%len(all)])
			}
		})
	}
}

func BenchmarkIncLessThan(b *testing.B) {
	all := benchElements(16)
	for _, v := range All[uint64]() {
		c := v.Create(all)
		b.Run(v.Name, func(b *testing.B) {
			for i := range b.N {
				c.IncLessThan(all[i%len(all)])
			}
		})
	}
}
