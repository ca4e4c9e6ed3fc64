package TreeMap

import (
	"github.com/g-m-twostay/go-stl/Functional"
	"github.com/g-m-twostay/go-stl/Trees"
)

// base holds what Map and MultiMap share. Both store Functional.Pair values ordered by First.
type base[K, V any] struct {
	t *Trees.RBTree[K, Functional.Pair[K, V]]
}

func newBase[K, V any](less func(a, b K) bool, opts []Trees.Option[K, Functional.Pair[K, V]]) base[K, V] {
	return base[K, V]{Trees.New[K, Functional.Pair[K, V]](Functional.ByFirst[K, V](less), opts...)}
}

// HasKey reports whether there's a value under k.
// Time: O(log n)
func (u *base[K, V]) HasKey(k K) bool {
	return u.t.Find(k).Valid()
}

// Count values under k.
func (u *base[K, V]) Count(k K) int {
	return u.t.Count(k)
}

// Remove everything under k. Returns whether there was anything.
// Time: O(log n * count)
func (u *base[K, V]) Remove(k K) bool {
	return u.t.EraseKey(k) > 0
}

// Size of the map.
func (u *base[K, V]) Size() uint {
	return uint(u.t.Size())
}

func (u *base[K, V]) Empty() bool {
	return u.t.Empty()
}

// Take removes and returns the pair with the smallest key. Zero values are returned when the map
// is empty.
// Time: O(log n)
func (u *base[K, V]) Take() (k K, v V) {
	if it := u.t.Begin(); it.Valid() {
		k, v = it.Value().First, it.Value().Second
		u.t.Erase(it)
	}
	return
}

// Range calls f with each key and a pointer to its value in key order until f returns false.
// The value may be modified through the pointer.
func (u *base[K, V]) Range(f func(K, *V) bool) {
	u.t.Range(func(p *Functional.Pair[K, V]) bool {
		return f(p.First, &p.Second)
	})
}

// Keys in order.
func (u *base[K, V]) Keys() func() (K, bool) {
	next := u.t.InOrder()
	return func() (K, bool) {
		p, ok := next()
		return p.First, ok
	}
}

// Values in the order of their keys.
func (u *base[K, V]) Values() func() (V, bool) {
	next := u.t.InOrder()
	return func() (V, bool) {
		p, ok := next()
		return p.Second, ok
	}
}

// Pairs in key order.
func (u *base[K, V]) Pairs() func() (K, V, bool) {
	next := u.t.InOrder()
	return func() (K, V, bool) {
		p, ok := next()
		return p.First, p.Second, ok
	}
}

// Find the first pair under k, or End.
func (u *base[K, V]) Find(k K) Trees.Iterator[Functional.Pair[K, V]] {
	return u.t.Find(k)
}

func (u *base[K, V]) LowerBound(k K) Trees.Iterator[Functional.Pair[K, V]] {
	return u.t.LowerBound(k)
}

func (u *base[K, V]) UpperBound(k K) Trees.Iterator[Functional.Pair[K, V]] {
	return u.t.UpperBound(k)
}

func (u *base[K, V]) EqualRange(k K) (Trees.Iterator[Functional.Pair[K, V]], Trees.Iterator[Functional.Pair[K, V]]) {
	return u.t.EqualRange(k)
}

func (u *base[K, V]) Begin() Trees.Iterator[Functional.Pair[K, V]] {
	return u.t.Begin()
}

func (u *base[K, V]) End() Trees.Iterator[Functional.Pair[K, V]] {
	return u.t.End()
}

// Erase the pair at it and return the position after it.
func (u *base[K, V]) Erase(it Trees.Iterator[Functional.Pair[K, V]]) Trees.Iterator[Functional.Pair[K, V]] {
	return u.t.Erase(it)
}

func (u *base[K, V]) Clear() {
	u.t.Clear()
}

func (u *base[K, V]) Verify() error {
	return u.t.Verify()
}

// equal compares pairwise in order: keys by equivalence and values by eq.
func (u *base[K, V]) equal(other *base[K, V], eq func(a, b V) bool) bool {
	less := u.t.Ordering().Less
	return u.t.Equal(other.t, func(a, b *Functional.Pair[K, V]) bool {
		return !less(a.First, b.First) && !less(b.First, a.First) && eq(a.Second, b.Second)
	})
}
