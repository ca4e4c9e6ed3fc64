// Package Functional holds the small function objects that glue containers together: key
// projections, comparators and the Pair type stored by maps.
package Functional

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Pair of a key and a value. Maps store Pairs and order them by First.
type Pair[K, V any] struct {
	First  K
	Second V
}

func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{k, v}
}

// Identity projection, used as the key of sets.
func Identity[T any](v T) T {
	return v
}

// Select1st projection, used as the key of maps.
func Select1st[K, V any](p Pair[K, V]) K {
	return p.First
}

// Less is the natural strict weak order of an ordered type.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Greater reverses Less.
func Greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// FromComparator adapts a three way comparator from gods, e.g. utils.StringComparator, into a
// strict weak order. The comparator must be consistent for values of type T.
func FromComparator[T any](c utils.Comparator) func(a, b T) bool {
	return func(a, b T) bool {
		return c(a, b) < 0
	}
}

// Modular orders integers by their remainder modulo m. Values with the same remainder are
// equivalent, which makes it convenient for exercising duplicate keys.
func Modular[T constraints.Integer](m T) func(a, b T) bool {
	return func(a, b T) bool {
		return a%m < b%m
	}
}

// KeyOrder is an ordering policy made of a key projection and a strict weak order over keys.
// It satisfies Trees.Ordering.
type KeyOrder[K, V any] struct {
	keyOf func(V) K
	less  func(K, K) bool
}

// By builds a KeyOrder. Both functions must be non-nil.
func By[K, V any](keyOf func(V) K, less func(K, K) bool) KeyOrder[K, V] {
	if keyOf == nil || less == nil {
		panic("Functional: nil key projection or comparator")
	}
	return KeyOrder[K, V]{keyOf, less}
}

// Natural orders values of an ordered type by themselves.
func Natural[T cmp.Ordered]() KeyOrder[T, T] {
	return By(Identity[T], Less[T])
}

// ByFirst orders Pairs by First using less.
func ByFirst[K, V any](less func(K, K) bool) KeyOrder[K, Pair[K, V]] {
	return By(Select1st[K, V], less)
}

func (u KeyOrder[K, V]) KeyOf(v V) K {
	return u.keyOf(v)
}

func (u KeyOrder[K, V]) Less(a, b K) bool {
	return u.less(a, b)
}
