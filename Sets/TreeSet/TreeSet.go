package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-stl/Functional"
	"github.com/g-m-twostay/go-stl/Sets"
	"github.com/g-m-twostay/go-stl/Trees"
)

// Set of unique elements kept in order by a red-black tree.
// Not safe for concurrent use.
type Set[E any] struct {
	base[E]
}

var (
	_ Sets.Set[int]   = (*Set[int])(nil)
	_ Trees.Tree[int] = (*Set[int])(nil)
)

// New empty Set ordered by less, which must be a strict weak order.
func New[E any](less func(a, b E) bool, opts ...Trees.Option[E, E]) *Set[E] {
	return &Set[E]{newBase(less, opts)}
}

func NewOrdered[E cmp.Ordered](opts ...Trees.Option[E, E]) *Set[E] {
	return New(Functional.Less[E], opts...)
}

// From the given elements, duplicates are dropped.
func From[E cmp.Ordered](es ...E) *Set[E] {
	s := NewOrdered[E]()
	for _, e := range es {
		s.AddAt(s.End(), e)
	}
	return s
}

// Add e if there's no equivalent element. The error comes from the node source.
// Time: O(log n)
func (u *Set[E]) Add(e E) (bool, error) {
	_, ok, err := u.t.InsertUnique(e)
	return ok, err
}

// AddAt is Add with a hint: the position e is expected to go before. Adding sorted elements at
// End takes amortized O(1) each. See [Trees.RBTree.InsertUniqueHint].
func (u *Set[E]) AddAt(hint Trees.Iterator[E], e E) (Trees.Iterator[E], bool, error) {
	return u.t.InsertUniqueHint(hint, e)
}

// Put e, returning false if an equivalent element exists or if the node couldn't be acquired.
// Use Add to tell the two apart.
func (u *Set[E]) Put(e E) bool {
	ok, _ := u.Add(e)
	return ok
}

// Insert [Trees.Tree.Insert], same as Put.
func (u *Set[E]) Insert(e E) bool {
	return u.Put(e)
}

// PutAll adds every element of other that isn't in u and returns how many were added.
func (u *Set[E]) PutAll(other Sets.Set[E]) (n uint) {
	other.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// Clone the set. The clone shares the ordering and the node source.
// Time: O(n)
func (u *Set[E]) Clone() (*Set[E], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &Set[E]{base[E]{t}}, nil
}

func (u *Set[E]) Swap(other *Set[E]) {
	u.t.Swap(other.t)
}

// Equal if both sets have equivalent elements.
func (u *Set[E]) Equal(other *Set[E]) bool {
	return u.equal(&other.base)
}

// Less compares the sets lexicographically.
func (u *Set[E]) Less(other *Set[E]) bool {
	return u.t.LexLess(other.t)
}
