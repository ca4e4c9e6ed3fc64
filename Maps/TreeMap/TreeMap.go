package TreeMap

import (
	"cmp"

	"github.com/g-m-twostay/go-stl/Functional"
	"github.com/g-m-twostay/go-stl/Maps"
	"github.com/g-m-twostay/go-stl/Trees"
)

// Map with unique keys kept in order by a red-black tree.
// Not safe for concurrent use.
type Map[K, V any] struct {
	base[K, V]
}

var _ Maps.Map[int, int] = (*Map[int, int])(nil)

// New empty Map ordered by less, which must be a strict weak order over keys.
func New[K, V any](less func(a, b K) bool, opts ...Trees.Option[K, Functional.Pair[K, V]]) *Map[K, V] {
	return &Map[K, V]{newBase(less, opts)}
}

func NewOrdered[K cmp.Ordered, V any](opts ...Trees.Option[K, Functional.Pair[K, V]]) *Map[K, V] {
	return New[K, V](Functional.Less[K], opts...)
}

// Insert v under k unless k is present, in which case the existing pair is returned with false
// and nothing changes.
// Time: O(log n)
func (u *Map[K, V]) Insert(k K, v V) (Trees.Iterator[Functional.Pair[K, V]], bool, error) {
	return u.t.InsertUnique(Functional.MakePair(k, v))
}

// InsertAt is Insert with a hint: the position k is expected to go before.
// See [Trees.RBTree.InsertUniqueHint].
func (u *Map[K, V]) InsertAt(hint Trees.Iterator[Functional.Pair[K, V]], k K, v V) (Trees.Iterator[Functional.Pair[K, V]], bool, error) {
	return u.t.InsertUniqueHint(hint, Functional.MakePair(k, v))
}

// Store v under k, overwriting any existing value. The error comes from the node source.
// Time: O(log n)
func (u *Map[K, V]) Store(k K, v V) error {
	it, ok, err := u.Insert(k, v)
	if err == nil && !ok {
		it.Value().Second = v
	}
	return err
}

// Put v under k and return the value it replaced, or the zero value if k was absent. If the
// node source fails nothing is stored; use Store to see the error.
func (u *Map[K, V]) Put(k K, v V) (old V) {
	it, ok, err := u.Insert(k, v)
	if err == nil && !ok {
		old, it.Value().Second = it.Value().Second, v
	}
	return
}

// Load the value under k.
// Time: O(log n)
func (u *Map[K, V]) Load(k K) (v V, ok bool) {
	if it := u.t.Find(k); it.Valid() {
		return it.Value().Second, true
	}
	return
}

// Get the value under k, or the zero value.
func (u *Map[K, V]) Get(k K) V {
	v, _ := u.Load(k)
	return v
}

// Ref returns a pointer to the value under k, inserting the zero value first if k is absent.
// The pointer is invalidated by erasing the pair or the pair before it.
// Time: O(log n)
func (u *Map[K, V]) Ref(k K) (*V, error) {
	it := u.t.LowerBound(k)
	if it.Valid() && !u.t.Ordering().Less(k, it.Value().First) {
		return &it.Value().Second, nil
	}
	var zero V
	it, _, err := u.InsertAt(it, k, zero)
	if err != nil {
		return nil, err
	}
	return &it.Value().Second, nil
}

// Clone the map. The clone shares the ordering and the node source.
// Time: O(n)
func (u *Map[K, V]) Clone() (*Map[K, V], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{base[K, V]{t}}, nil
}

func (u *Map[K, V]) Swap(other *Map[K, V]) {
	u.t.Swap(other.t)
}

// Equal if both maps have equivalent keys with values equal under eq.
func (u *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	return u.equal(&other.base, eq)
}
