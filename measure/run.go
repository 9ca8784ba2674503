package main

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/g-m-twostay/locality"
	"github.com/g-m-twostay/locality/Collections"
	"github.com/g-m-twostay/locality/Reports"
)

type element = uint64

// newRand is the generator every run draws its elements and targets from.
func newRand(seed [seedBytes]byte) *rand.Rand {
	return rand.New(rand.NewChaCha8(seed))
}

// sizes ladder: a sixteenth of a page, then one page growing sixteen fold at each step.
func sizes(maxSize int) []int {
	p := locality.ElemsInPage[element]()
	ladder := []int{p / 16}
	for s := p; s <= p*16*16*16*16; s *= 16 {
		ladder = append(ladder, s)
	}
	return lo.Filter(ladder, func(s int, _ int) bool { return maxSize <= 0 || s <= maxSize })
}

type runner struct {
	mode     string
	rg       *rand.Rand
	variants []Collections.Variant[element]
	finds    int
	incs     int
	verify   bool
	out      *Reports.Writer
	log      *zap.SugaredLogger
}

func (u *runner) row(size int, op, collection string, d time.Duration) error {
	u.log.Debugf("%s %s size=%d took %s", collection, op, size, Reports.FormatTime(d))
	return u.out.Write(Reports.Row{Mode: u.mode, Size: size, Operation: op, Collection: collection, Duration: d})
}

// targets draws n values of which about half are present in elements.
func (u *runner) targets(elements []element, n int) []element {
	ts := make([]element, n)
	for i := range ts {
		if i%2 == 0 && len(elements) > 0 {
			ts[i] = elements[u.rg.IntN(len(elements))]
		} else {
			ts[i] = u.rg.Uint64()
		}
	}
	return ts
}

// runSize measures every variant on the same random elements. Each operation starts from its own
// clone of the freshly created collection.
func (u *runner) runSize(size int) error {
	elements := make([]element, size)
	for i := range elements {
		elements[i] = u.rg.Uint64()
	}
	finds, incs := u.targets(elements, u.finds), u.targets(elements, u.incs)
	present := lo.Keyify(elements)
	wantFound := newBitSet(len(finds))
	for i, v := range finds {
		if _, ok := present[v]; ok {
			wantFound.up(i)
		}
	}
	var wantInc []element
	if u.verify {
		wantInc = incremented(elements, incs)
	}

	for _, v := range u.variants {
		start := time.Now()
		c := v.Create(elements)
		if err := u.row(size, Reports.Create, v.Name, time.Since(start)); err != nil {
			return err
		}

		found := newBitSet(len(finds))
		fc := c.Clone()
		start = time.Now()
		for i, t := range finds {
			if fc.Find(t) {
				found.up(i)
			}
		}
		if err := u.row(size, Reports.Find, v.Name, time.Since(start)); err != nil {
			return err
		}
		if !wantFound.equal(found) {
			i, _ := lo.Find(lo.Range(len(finds)), func(i int) bool { return wantFound.get(i) != found.get(i) })
			return errors.Errorf("variant %s disagrees on find of %d at size %d", v.Name, finds[i], size)
		}

		ic := c.Clone()
		start = time.Now()
		for _, t := range incs {
			ic.IncLessThan(t)
		}
		if err := u.row(size, Reports.IncLessThan, v.Name, time.Since(start)); err != nil {
			return err
		}
		if u.verify {
			got := ic.Values()
			slices.Sort(got)
			want := wantInc
			if v.Set {
				want = slices.Compact(slices.Clone(want))
			}
			if !slices.Equal(want, got) {
				return errors.Errorf("variant %s disagrees on inc-less-than at size %d", v.Name, size)
			}
		}
	}
	return nil
}

// incremented applies every threshold to a sorted copy of elements. Set variants compact each step,
// which gives the same result as compacting the final multiset because increments keep the order.
func incremented(elements, ths []element) []element {
	s := slices.Clone(elements)
	slices.Sort(s)
	for _, t := range ths {
		for i, v := range s {
			if v >= t {
				break
			}
			s[i] = locality.Inc(v)
		}
	}
	return s
}

func (u *runner) run(ladder []int) error {
	for _, size := range ladder {
		start := time.Now()
		if err := u.runSize(size); err != nil {
			return err
		}
		if err := u.out.Flush(); err != nil {
			return err
		}
		bytes := size * locality.PageSize / locality.ElemsInPage[element]()
		u.log.Infof("size %d (%s) done in %s", size, Reports.FormatSize(bytes), Reports.FormatTime(time.Since(start)))
	}
	return nil
}
