package Trees

import (
	"cmp"
	"fmt"

	"github.com/g-m-twostay/go-stl/Alloc"
	"github.com/g-m-twostay/go-stl/Functional"
)

// RBTree is a red-black tree of values V ordered by keys K. It backs the ordered sets and maps.
// A header node anchors the tree: its parent is the root, its left and right are the minimum and
// maximum, and it serves as the end position of iterators. The header is always red, which is
// how iterators recognize it.
// Nodes come from an Alloc.Source, by default the heap. Storing a value in a node and clearing
// it are done by the tree, separately from acquiring and releasing the node.
// RBTree isn't safe for concurrent use.
type RBTree[K, V any] struct {
	header *Node[V]
	count  int
	ord    Ordering[K, V]
	src    Alloc.Source[Node[V]]
}

type Option[K, V any] func(*RBTree[K, V])

// WithSource sets where the tree gets its nodes from.
func WithSource[K, V any](src Alloc.Source[Node[V]]) Option[K, V] {
	return func(t *RBTree[K, V]) {
		t.src = src
	}
}

func newHeader[V any]() *Node[V] {
	h := &Node[V]{color: red}
	h.left, h.right = h, h
	return h
}

// New empty tree ordered by ord.
func New[K, V any](ord Ordering[K, V], opts ...Option[K, V]) *RBTree[K, V] {
	t := &RBTree[K, V]{header: newHeader[V](), ord: ord, src: Alloc.Heap[Node[V]]{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOrdered returns an empty tree of an ordered type, ordered by value.
func NewOrdered[T cmp.Ordered](opts ...Option[T, T]) *RBTree[T, T] {
	return New[T, T](Functional.Natural[T](), opts...)
}

func (u *RBTree[K, V]) key(n *Node[V]) K {
	return u.ord.KeyOf(n.v)
}

// Ordering the tree was created with.
func (u *RBTree[K, V]) Ordering() Ordering[K, V] {
	return u.ord
}

func (u *RBTree[K, V]) Size() int {
	return u.count
}

func (u *RBTree[K, V]) Empty() bool {
	return u.count == 0
}

// Begin points at the minimum, or is End when the tree is empty.
// Time: O(1)
func (u *RBTree[K, V]) Begin() Iterator[V] {
	return Iterator[V]{u.header.left}
}

// End is the position after the maximum.
func (u *RBTree[K, V]) End() Iterator[V] {
	return Iterator[V]{u.header}
}

// Last points at the maximum, or is End when the tree is empty.
// Time: O(1)
func (u *RBTree[K, V]) Last() Iterator[V] {
	return Iterator[V]{u.header.right}
}

// insert v as a child of y. x is non-nil only to force a left insertion, y is the header when
// the tree is empty. The node is acquired before anything is linked, so a failed acquisition
// leaves the tree untouched.
func (u *RBTree[K, V]) insert(x, y *Node[V], v V) (*Node[V], error) {
	z, err := u.src.Acquire()
	if err != nil {
		return nil, fmt.Errorf("inserting into tree of size %d: %w", u.count, err)
	}
	z.v = v
	h := u.header
	if y == h || x != nil || u.ord.Less(u.ord.KeyOf(v), u.key(y)) {
		y.left = z //also sets the minimum when y is the header.
		if y == h {
			h.parent = z
			h.right = z
		} else if y == h.left {
			h.left = z
		}
	} else {
		y.right = z
		if y == h.right {
			h.right = z
		}
	}
	z.parent, z.left, z.right = y, nil, nil
	insertFixup(z, &h.parent)
	u.count++
	return z, nil
}

// InsertEqual v, after any values with an equal key.
// Fails only if the node source does.
// Time: O(log n)
func (u *RBTree[K, V]) InsertEqual(v V) (Iterator[V], error) {
	k := u.ord.KeyOf(v)
	y, x := u.header, u.header.parent
	for x != nil {
		y = x
		if u.ord.Less(k, u.key(x)) {
			x = x.left
		} else {
			x = x.right
		}
	}
	z, err := u.insert(x, y, v)
	if err != nil {
		return u.End(), err
	}
	return Iterator[V]{z}, nil
}

// InsertUnique v if no value with an equal key exists. Otherwise returns the existing value and
// false, without modifying the tree.
// Time: O(log n)
func (u *RBTree[K, V]) InsertUnique(v V) (Iterator[V], bool, error) {
	k := u.ord.KeyOf(v)
	y, x := u.header, u.header.parent
	goLeft := true
	for x != nil {
		y = x
		goLeft = u.ord.Less(k, u.key(x))
		if goLeft {
			x = x.left
		} else {
			x = x.right
		}
	}
	//the only candidate for an equal key is y, or y's predecessor if v goes to y's left.
	j := y
	if goLeft {
		if j == u.header.left {
			return u.insertChecked(x, y, v)
		}
		j = decrement(j)
	}
	if u.ord.Less(u.key(j), k) {
		return u.insertChecked(x, y, v)
	}
	return Iterator[V]{j}, false, nil
}

func (u *RBTree[K, V]) insertChecked(x, y *Node[V], v V) (Iterator[V], bool, error) {
	z, err := u.insert(x, y, v)
	if err != nil {
		return u.End(), false, err
	}
	return Iterator[V]{z}, true, nil
}

// InsertUniqueHint is InsertUnique with a hint: if v belongs right before hint, it's linked
// there without searching. hint must be End or point into u. A wrong hint only costs the search.
// Time: amortized O(1) with a correct hint, O(log n) otherwise.
func (u *RBTree[K, V]) InsertUniqueHint(hint Iterator[V], v V) (Iterator[V], bool, error) {
	k, h := u.ord.KeyOf(v), u.header
	switch p := hint.n; {
	case u.count == 0, p == nil:
	case p == h.left:
		if u.ord.Less(k, u.key(p)) {
			return u.insertChecked(p, p, v)
		}
	case p == h:
		if u.ord.Less(u.key(h.right), k) {
			return u.insertChecked(nil, h.right, v)
		}
	default:
		before := decrement(p)
		if u.ord.Less(u.key(before), k) && u.ord.Less(k, u.key(p)) {
			//either before has no right child or p, its successor, has no left child.
			if before.right == nil {
				return u.insertChecked(nil, before, v)
			}
			return u.insertChecked(p, p, v)
		}
	}
	return u.InsertUnique(v)
}

// InsertEqualHint is InsertEqual with a hint: if v can go right before hint while keeping the
// order, it's linked there without searching. Values equal to v may then stay after it.
// hint must be End or point into u.
// Time: amortized O(1) with a correct hint, O(log n) otherwise.
func (u *RBTree[K, V]) InsertEqualHint(hint Iterator[V], v V) (Iterator[V], error) {
	k, h := u.ord.KeyOf(v), u.header
	var x, y *Node[V]
	switch p := hint.n; {
	case u.count == 0, p == nil:
	case p == h.left:
		if !u.ord.Less(u.key(p), k) {
			x, y = p, p
		}
	case p == h:
		if !u.ord.Less(k, u.key(h.right)) {
			y = h.right
		}
	default:
		before := decrement(p)
		if !u.ord.Less(k, u.key(before)) && !u.ord.Less(u.key(p), k) {
			if before.right == nil {
				y = before
			} else {
				x, y = p, p
			}
		}
	}
	if y == nil {
		return u.InsertEqual(v)
	}
	z, err := u.insert(x, y, v)
	if err != nil {
		return u.End(), err
	}
	return Iterator[V]{z}, nil
}

// InsertUniqueAll inserts each value with InsertUnique and returns how many were inserted.
// It stops at the first error.
func (u *RBTree[K, V]) InsertUniqueAll(vs ...V) (int, error) {
	n := 0
	for _, v := range vs {
		_, ok, err := u.InsertUnique(v)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// InsertEqualAll inserts each value with InsertEqual. It stops at the first error.
func (u *RBTree[K, V]) InsertEqualAll(vs ...V) error {
	for _, v := range vs {
		if _, err := u.InsertEqual(v); err != nil {
			return err
		}
	}
	return nil
}

// LowerBound is the first value whose key isn't less than k.
// Time: O(log n)
func (u *RBTree[K, V]) LowerBound(k K) Iterator[V] {
	y, x := u.header, u.header.parent
	for x != nil {
		if !u.ord.Less(u.key(x), k) {
			y, x = x, x.left
		} else {
			x = x.right
		}
	}
	return Iterator[V]{y}
}

// UpperBound is the first value whose key is greater than k.
// Time: O(log n)
func (u *RBTree[K, V]) UpperBound(k K) Iterator[V] {
	y, x := u.header, u.header.parent
	for x != nil {
		if u.ord.Less(k, u.key(x)) {
			y, x = x, x.left
		} else {
			x = x.right
		}
	}
	return Iterator[V]{y}
}

// Find a value whose key is equivalent to k: neither is less than the other. Returns End if
// there's none. With duplicates, Find returns the first one.
// Time: O(log n)
func (u *RBTree[K, V]) Find(k K) Iterator[V] {
	j := u.LowerBound(k)
	if j.n == u.header || u.ord.Less(k, u.key(j.n)) {
		return u.End()
	}
	return j
}

// EqualRange is [LowerBound(k), UpperBound(k)).
func (u *RBTree[K, V]) EqualRange(k K) (Iterator[V], Iterator[V]) {
	return u.LowerBound(k), u.UpperBound(k)
}

// Count values with keys equivalent to k.
// Time: O(log n + count)
func (u *RBTree[K, V]) Count(k K) int {
	n := 0
	for first, last := u.EqualRange(k); first != last; first = first.Next() {
		n++
	}
	return n
}

// destroy clears the value of a node that's no longer linked and releases it.
func (u *RBTree[K, V]) destroy(n *Node[V]) {
	var zero V
	n.v = zero
	n.parent, n.left, n.right = nil, nil, nil
	u.src.Release(n)
}

// erase z and return the node holding the next value.
func (u *RBTree[K, V]) erase(z *Node[V]) *Node[V] {
	y, next := z, z
	if z.left != nil && z.right != nil {
		//z takes over the successor's value, and the successor's node is removed instead.
		y = minimum(z.right)
		z.v = y.v
	} else {
		next = increment(z)
	}
	eraseRebalance(y, u.header)
	u.destroy(y)
	u.count--
	return next
}

// Erase the value at it, which must be Valid and belong to u. Returns the position of the value
// that followed it.
// Time: O(log n)
func (u *RBTree[K, V]) Erase(it Iterator[V]) Iterator[V] {
	return Iterator[V]{u.erase(it.n)}
}

// EraseRange erases [first, last) and returns last's new position.
// Time: O(log n * distance)
func (u *RBTree[K, V]) EraseRange(first, last Iterator[V]) Iterator[V] {
	if first.n == u.header.left && last.n == u.header {
		u.Clear()
		return u.End()
	}
	//last's node may be the one physically removed, so erase by count instead of comparing.
	n := 0
	for it := first; it != last; it = it.Next() {
		n++
	}
	for ; n > 0; n-- {
		first = u.Erase(first)
	}
	return first
}

// EraseKey erases every value with a key equivalent to k and returns how many there were.
// Time: O(log n * count)
func (u *RBTree[K, V]) EraseKey(k K) int {
	first, last := u.EqualRange(k)
	before := u.count
	u.EraseRange(first, last)
	return before - u.count
}

// destroySubtree releases every node under x. Recursive on right children.
func (u *RBTree[K, V]) destroySubtree(x *Node[V]) {
	for x != nil {
		u.destroySubtree(x.right)
		y := x.left
		u.destroy(x)
		x = y
	}
}

// Clear the tree, releasing every node.
// Time: O(n)
func (u *RBTree[K, V]) Clear() {
	u.destroySubtree(u.header.parent)
	u.header.parent = nil
	u.header.left, u.header.right = u.header, u.header
	u.count = 0
}

// copySubtree copies x and its descendants under p, storing the copy in *link. Each copy is
// linked before its children are copied, so a failure leaves a well formed partial tree.
// Recursive on right children.
func (u *RBTree[K, V]) copySubtree(x, p *Node[V], link **Node[V]) error {
	for x != nil {
		y, err := u.src.Acquire()
		if err != nil {
			return err
		}
		y.v, y.color = x.v, x.color
		y.parent, y.left, y.right = p, nil, nil
		*link = y
		if x.right != nil {
			if err = u.copySubtree(x.right, y, &y.right); err != nil {
				return err
			}
		}
		p, link, x = y, &y.left, x.left
	}
	return nil
}

// Clone the tree with the same shape and colors. The clone uses the same ordering and node
// source. On failure the partial copy is released.
// Time: O(n)
func (u *RBTree[K, V]) Clone() (*RBTree[K, V], error) {
	c := &RBTree[K, V]{header: newHeader[V](), ord: u.ord, src: u.src}
	if root := u.header.parent; root != nil {
		if err := c.copySubtree(root, c.header, &c.header.parent); err != nil {
			c.Clear()
			return nil, fmt.Errorf("cloning tree of size %d: %w", u.count, err)
		}
		c.header.left, c.header.right = minimum(c.header.parent), maximum(c.header.parent)
	}
	c.count = u.count
	return c, nil
}

// Swap contents, orderings and node sources with other.
// Time: O(1)
func (u *RBTree[K, V]) Swap(other *RBTree[K, V]) {
	*u, *other = *other, *u
}

// Range calls f on every value in order until f returns false. f must not modify the tree.
func (u *RBTree[K, V]) Range(f func(*V) bool) {
	for it := u.Begin(); it.n != u.header; it = it.Next() {
		if !f(&it.n.v) {
			return
		}
	}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *RBTree[K, V]) InOrder() func() (V, bool) {
	it := u.Begin()
	return func() (r V, has bool) {
		if it.n == u.header {
			return
		}
		r, has = it.n.v, true
		it = it.Next()
		return
	}
}

// Equal reports whether both trees hold the same number of values and eq holds pairwise in order.
func (u *RBTree[K, V]) Equal(other *RBTree[K, V], eq func(a, b *V) bool) bool {
	if u.count != other.count {
		return false
	}
	for a, b := u.Begin(), other.Begin(); a.n != u.header; a, b = a.Next(), b.Next() {
		if !eq(&a.n.v, &b.n.v) {
			return false
		}
	}
	return true
}

// LexLess compares the keys of both trees lexicographically using u's ordering.
func (u *RBTree[K, V]) LexLess(other *RBTree[K, V]) bool {
	a, b := u.Begin(), other.Begin()
	for ; a.n != u.header && b.n != other.header; a, b = a.Next(), b.Next() {
		if ka, kb := u.key(a.n), u.key(b.n); u.ord.Less(ka, kb) {
			return true
		} else if u.ord.Less(kb, ka) {
			return false
		}
	}
	return a.n == u.header && b.n != other.header
}
