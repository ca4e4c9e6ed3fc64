package TreeSet

import (
	"github.com/g-m-twostay/go-stl/Functional"
	"github.com/g-m-twostay/go-stl/Trees"
)

// base holds what Set and MultiSet share. Elements are their own keys.
type base[E any] struct {
	t *Trees.RBTree[E, E]
}

func newBase[E any](less func(a, b E) bool, opts []Trees.Option[E, E]) base[E] {
	return base[E]{Trees.New[E, E](Functional.By(Functional.Identity[E], less), opts...)}
}

func (u *base[E]) less(a, b E) bool {
	return u.t.Ordering().Less(a, b)
}

// Has an element equivalent to e.
// Time: O(log n)
func (u *base[E]) Has(e E) bool {
	return u.t.Find(e).Valid()
}

// Count elements equivalent to e.
func (u *base[E]) Count(e E) int {
	return u.t.Count(e)
}

// Remove every element equivalent to e. Returns whether there was any.
// Time: O(log n * count)
func (u *base[E]) Remove(e E) bool {
	return u.t.EraseKey(e) > 0
}

// Size of the set.
func (u *base[E]) Size() uint {
	return uint(u.t.Size())
}

func (u *base[E]) Empty() bool {
	return u.t.Empty()
}

// Take removes and returns the minimum. The zero value is returned when the set is empty.
// Time: O(log n)
func (u *base[E]) Take() (e E) {
	if it := u.t.Begin(); it.Valid() {
		e = *it.Value()
		u.t.Erase(it)
	}
	return
}

// Range calls f on every element in order until f returns false.
func (u *base[E]) Range(f func(E) bool) {
	u.t.Range(func(e *E) bool {
		return f(*e)
	})
}

func (u *base[E]) Find(e E) Trees.Iterator[E] {
	return u.t.Find(e)
}

func (u *base[E]) LowerBound(e E) Trees.Iterator[E] {
	return u.t.LowerBound(e)
}

func (u *base[E]) UpperBound(e E) Trees.Iterator[E] {
	return u.t.UpperBound(e)
}

func (u *base[E]) EqualRange(e E) (Trees.Iterator[E], Trees.Iterator[E]) {
	return u.t.EqualRange(e)
}

func (u *base[E]) Begin() Trees.Iterator[E] {
	return u.t.Begin()
}

func (u *base[E]) End() Trees.Iterator[E] {
	return u.t.End()
}

// Erase the element at it and return the position after it.
func (u *base[E]) Erase(it Trees.Iterator[E]) Trees.Iterator[E] {
	return u.t.Erase(it)
}

func (u *base[E]) Clear() {
	u.t.Clear()
}

// Minimum element of the set.
// Time: O(1)
func (u *base[E]) Minimum() (e E, ok bool) {
	if it := u.t.Begin(); it.Valid() {
		return *it.Value(), true
	}
	return
}

// Maximum element of the set.
// Time: O(1)
func (u *base[E]) Maximum() (e E, ok bool) {
	if it := u.t.Last(); it.Valid() {
		return *it.Value(), true
	}
	return
}

// Predecessor is the greatest element less than e.
// Time: O(log n)
func (u *base[E]) Predecessor(e E) (r E, ok bool) {
	if it := u.t.LowerBound(e); it != u.t.Begin() {
		return *it.Prev().Value(), true
	}
	return
}

// Successor is the smallest element greater than e.
// Time: O(log n)
func (u *base[E]) Successor(e E) (r E, ok bool) {
	if it := u.t.UpperBound(e); it.Valid() {
		return *it.Value(), true
	}
	return
}

// InOrder [Trees.Tree.InOrder]
func (u *base[E]) InOrder() func() (E, bool) {
	return u.t.InOrder()
}

func (u *base[E]) Corrupt() bool {
	return u.t.Corrupt()
}

// Verify the underlying tree, see [Trees.RBTree.Verify].
func (u *base[E]) Verify() error {
	return u.t.Verify()
}

// Slice of the elements in order.
func (u *base[E]) Slice() []E {
	r := make([]E, 0, u.t.Size())
	u.t.Range(func(e *E) bool {
		r = append(r, *e)
		return true
	})
	return r
}

// equal compares element by element using equivalence under the ordering.
func (u *base[E]) equal(other *base[E]) bool {
	return u.t.Equal(other.t, func(a, b *E) bool {
		return !u.less(*a, *b) && !u.less(*b, *a)
	})
}
