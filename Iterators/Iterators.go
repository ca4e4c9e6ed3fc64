// Package Iterators defines iterator category tags and the generic helpers that pick a traversal
// strategy from them.
package Iterators

// Category of an iterator. Each category includes the capabilities of the ones before it,
// except OutputTag which is unrelated to InputTag.
type Category byte

const (
	InputTag Category = iota
	OutputTag
	ForwardTag
	BidirectionalTag
	RandomAccessTag
)

func (c Category) String() string {
	switch c {
	case InputTag:
		return "input"
	case OutputTag:
		return "output"
	case ForwardTag:
		return "forward"
	case BidirectionalTag:
		return "bidirectional"
	case RandomAccessTag:
		return "random access"
	default:
		return "unknown"
	}
}

// Forward iterators can only move ahead. Iterators are values; Next returns the moved copy.
type Forward[I any] interface {
	comparable
	Next() I
	Category() Category
}

// Bidirectional iterators can also move back.
type Bidirectional[I any] interface {
	Forward[I]
	Prev() I
}

// jumper is the part of a random access iterator that Advance and Distance use.
type jumper[I any] interface {
	Offset(n int) I
	Sub(I) int
}

// RandomAccess iterators move by arbitrary offsets in O(1).
type RandomAccess[I any] interface {
	Bidirectional[I]
	jumper[I]
}

// Advance it by n steps, backwards when n<0. Random access iterators use Offset.
// Time: O(1) for random access iterators, O(|n|) otherwise.
func Advance[I Bidirectional[I]](it I, n int) I {
	if r, ok := any(it).(jumper[I]); ok && it.Category() == RandomAccessTag {
		return r.Offset(n)
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance from first to last, which must be reachable from first by calling Next.
// Time: O(1) for random access iterators, O(distance) otherwise.
func Distance[I Forward[I]](first, last I) int {
	if r, ok := any(last).(jumper[I]); ok && last.Category() == RandomAccessTag {
		return r.Sub(first)
	}
	n := 0
	for ; first != last; first = first.Next() {
		n++
	}
	return n
}
