// Package Collections puts every container behind the same three operations: create from a
// sequence, find, and increment everything below a threshold. Core variants wrap the Arrays,
// Lists and Trees packages; reference variants wrap third-party containers and serve as
// baselines.
package Collections

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/g-m-twostay/locality"
)

// ErrUnknownVariant is returned by Lookup for a name no variant carries.
var ErrUnknownVariant = errors.New("unknown collection")

// Collection is a multiset of T, or a set for variants that collapse repeated values.
type Collection[T locality.Element] interface {
	// Name of the variant that created the collection.
	Name() string
	Find(v T) bool
	// IncLessThan adds one to every stored value less than v.
	IncLessThan(v T)
	// Clone returns an independent collection with the same content.
	Clone() Collection[T]
	// Values returns the stored values in no particular order.
	Values() []T
}

// Variant describes how a Collection is created.
type Variant[T locality.Element] struct {
	Name string
	// Set is true when creation drops repeated values.
	Set bool
	// Reference is true for variants backed by third-party containers.
	Reference bool
	Create    func(s []T) Collection[T]
}

// Core returns the variants built on this module's containers.
func Core[T locality.Element]() []Variant[T] {
	return []Variant[T]{
		{Name: SortedArray, Create: newSortedArray[T]},
		{Name: GoodLocalArray, Create: newGoodLocalArray[T]},
		{Name: BadLocalArray, Create: newBadLocalArray[T]},
		{Name: WorseLocalArray, Create: newWorseLocalArray[T]},
		{Name: LinkedList, Create: newLinkedList[T]},
		{Name: WithOrderTree, Set: true, Create: newWithOrderTree[T]},
		{Name: WithoutOrderTree, Create: newWithoutOrderTree[T]},
	}
}

// References returns the variants built on third-party containers.
func References[T locality.Element]() []Variant[T] {
	return []Variant[T]{
		{Name: BTreeSet, Set: true, Reference: true, Create: newBTreeSet[T]},
		{Name: LLRBTree, Reference: true, Create: newLLRBTree[T]},
		{Name: RBTree, Reference: true, Create: newRBTree[T]},
		{Name: GodsArrayList, Reference: true, Create: newGodsArrayList[T]},
		{Name: HaxMapBag, Reference: true, Create: newHaxMapBag[T]},
		{Name: HashMapBag, Reference: true, Create: newHashMapBag[T]},
		{Name: RadixBag, Reference: true, Create: newRadixBag[T]},
	}
}

// All returns Core followed by References.
func All[T locality.Element]() []Variant[T] {
	return append(Core[T](), References[T]()...)
}

// Lookup the variants with the given names in the order of All. An empty names selects
// everything.
func Lookup[T locality.Element](names []string) ([]Variant[T], error) {
	all := All[T]()
	if len(names) == 0 {
		return all, nil
	}
	known := lo.Map(all, func(v Variant[T], _ int) string { return v.Name })
	for _, n := range names {
		if !lo.Contains(known, n) {
			return nil, errors.Wrapf(ErrUnknownVariant, "%q, known are %s", n, strings.Join(known, ","))
		}
	}
	return lo.Filter(all, func(v Variant[T], _ int) bool { return lo.Contains(names, v.Name) }), nil
}
