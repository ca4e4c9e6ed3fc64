package Trees

import "github.com/g-m-twostay/go-stl/Iterators"

// Iterator points at a value in a RBTree, or at its end. Iterators move by following node links
// only, so they don't reference the tree. They are comparable with ==.
// Erasing an element invalidates iterators to it and to its successor, since erasing a node
// with two children moves the successor's value into it.
type Iterator[V any] struct {
	n *Node[V]
}

// Next element in order. Next of the end is the end.
// Time: amortized O(1)
func (it Iterator[V]) Next() Iterator[V] {
	return Iterator[V]{increment(it.n)}
}

// Prev element in order. Prev of the end is the maximum; Prev of the minimum is undefined.
// Time: amortized O(1)
func (it Iterator[V]) Prev() Iterator[V] {
	return Iterator[V]{decrement(it.n)}
}

// Category is always bidirectional since there is no O(1) offset operation.
func (it Iterator[V]) Category() Iterators.Category {
	return Iterators.BidirectionalTag
}

// Valid is false for the end and for the zero Iterator.
func (it Iterator[V]) Valid() bool {
	return it.n != nil && !it.n.isHeader()
}

// Value the iterator points at, nil when it isn't Valid. The part of the value the tree is
// ordered by must not be modified through the pointer.
func (it Iterator[V]) Value() *V {
	if !it.Valid() {
		return nil
	}
	return &it.n.v
}

// bidirectional only compiles for types satisfying Iterators.Bidirectional. The constraint embeds
// comparable, so it can't be the type of a variable.
func bidirectional[I Iterators.Bidirectional[I]]() {}

var _ = bidirectional[Iterator[int]]
