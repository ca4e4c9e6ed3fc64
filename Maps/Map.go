package Maps

// Map from keys to values. The closures returned by Keys, Values and Pairs behave like
// iterators: the bool result turns false once they are exhausted.
type Map[K, V any] interface {
	Put(K, V) V
	HasKey(K) bool
	Get(K) V
	Remove(K) bool
	Take() (K, V)
	Keys() func() (K, bool)
	Values() func() (V, bool)
	Pairs() func() (K, V, bool)
	Size() uint
}
