package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-stl/Functional"
	"github.com/g-m-twostay/go-stl/Sets"
	"github.com/g-m-twostay/go-stl/Trees"
)

// MultiSet keeps equivalent elements in the order they were inserted.
type MultiSet[E any] struct {
	base[E]
}

var _ Sets.Set[int] = (*MultiSet[int])(nil)

func NewMulti[E any](less func(a, b E) bool, opts ...Trees.Option[E, E]) *MultiSet[E] {
	return &MultiSet[E]{newBase(less, opts)}
}

func NewOrderedMulti[E cmp.Ordered](opts ...Trees.Option[E, E]) *MultiSet[E] {
	return NewMulti(Functional.Less[E], opts...)
}

// Add e after any equivalent elements.
// Time: O(log n)
func (u *MultiSet[E]) Add(e E) (Trees.Iterator[E], error) {
	return u.t.InsertEqual(e)
}

// AddAt adds e right before hint if that keeps the order, otherwise after any equivalent elements.
func (u *MultiSet[E]) AddAt(hint Trees.Iterator[E], e E) (Trees.Iterator[E], error) {
	return u.t.InsertEqualHint(hint, e)
}

// Put e, false only if the node couldn't be acquired.
func (u *MultiSet[E]) Put(e E) bool {
	_, err := u.t.InsertEqual(e)
	return err == nil
}

// RemoveOne removes the first element equivalent to e.
// Time: O(log n)
func (u *MultiSet[E]) RemoveOne(e E) bool {
	if it := u.t.Find(e); it.Valid() {
		u.t.Erase(it)
		return true
	}
	return false
}

func (u *MultiSet[E]) Clone() (*MultiSet[E], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &MultiSet[E]{base[E]{t}}, nil
}

func (u *MultiSet[E]) Swap(other *MultiSet[E]) {
	u.t.Swap(other.t)
}

func (u *MultiSet[E]) Equal(other *MultiSet[E]) bool {
	return u.equal(&other.base)
}

func (u *MultiSet[E]) Less(other *MultiSet[E]) bool {
	return u.t.LexLess(other.t)
}
