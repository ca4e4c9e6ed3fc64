package TreeMap

import (
	"cmp"

	"github.com/g-m-twostay/go-stl/Functional"
	"github.com/g-m-twostay/go-stl/Trees"
)

// MultiMap allows several values under a key and keeps them in insertion order.
type MultiMap[K, V any] struct {
	base[K, V]
}

func NewMulti[K, V any](less func(a, b K) bool, opts ...Trees.Option[K, Functional.Pair[K, V]]) *MultiMap[K, V] {
	return &MultiMap[K, V]{newBase(less, opts)}
}

func NewOrderedMulti[K cmp.Ordered, V any](opts ...Trees.Option[K, Functional.Pair[K, V]]) *MultiMap[K, V] {
	return NewMulti[K, V](Functional.Less[K], opts...)
}

// Insert v under k after the values already there.
// Time: O(log n)
func (u *MultiMap[K, V]) Insert(k K, v V) (Trees.Iterator[Functional.Pair[K, V]], error) {
	return u.t.InsertEqual(Functional.MakePair(k, v))
}

// InsertAt puts v under k right before hint if that keeps the keys in order, otherwise after the
// values already under k.
func (u *MultiMap[K, V]) InsertAt(hint Trees.Iterator[Functional.Pair[K, V]], k K, v V) (Trees.Iterator[Functional.Pair[K, V]], error) {
	return u.t.InsertEqualHint(hint, Functional.MakePair(k, v))
}

// GetAll values under k in insertion order, nil if there's none.
// Time: O(log n + count)
func (u *MultiMap[K, V]) GetAll(k K) []V {
	var r []V
	for first, last := u.t.EqualRange(k); first != last; first = first.Next() {
		r = append(r, first.Value().Second)
	}
	return r
}

// RemoveAll under k and return how many values there were.
func (u *MultiMap[K, V]) RemoveAll(k K) int {
	return u.t.EraseKey(k)
}

func (u *MultiMap[K, V]) Clone() (*MultiMap[K, V], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &MultiMap[K, V]{base[K, V]{t}}, nil
}

func (u *MultiMap[K, V]) Swap(other *MultiMap[K, V]) {
	u.t.Swap(other.t)
}

func (u *MultiMap[K, V]) Equal(other *MultiMap[K, V], eq func(a, b V) bool) bool {
	return u.equal(&other.base, eq)
}
