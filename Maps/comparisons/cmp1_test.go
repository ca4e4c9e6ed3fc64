package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/g-m-twostay/go-stl/Maps/TreeMap"
)

const benchmarkItemCount = 1024

// compares TreeMap with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap
// for point lookups, and with gods' treemap, which is also a red-black tree, for ordered use.
// The hash maps only show what keeping keys in order costs; they can't answer ordered queries.
func setupTreeMap(b *testing.B) *TreeMap.Map[uintptr, uintptr] {
	b.Helper()
	m := TreeMap.NewOrdered[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupGodsMap(b *testing.B) *treemap.Map {
	b.Helper()
	m := treemap.NewWith(func(a, b any) int {
		x, y := a.(uintptr), b.(uintptr)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func Benchmark1ReadTreeMapUint(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadGodsMapUint(b *testing.B) {
	m := setupGodsMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j.(uintptr) != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1WriteTreeMapUint(b *testing.B) {
	for range b.N {
		m := TreeMap.NewOrdered[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i += 2 {
			m.Remove(i)
		}
	}
}

func Benchmark1WriteGodsMapUint(b *testing.B) {
	for range b.N {
		m := setupGodsMap(b)
		for i := uintptr(0); i < benchmarkItemCount; i += 2 {
			m.Remove(i)
		}
	}
}

func Benchmark1WriteHaxMapUint(b *testing.B) {
	for range b.N {
		m := setupHaxMap(b)
		for i := uintptr(0); i < benchmarkItemCount; i += 2 {
			m.Del(i)
		}
	}
}

func Benchmark1WriteHashMapUint(b *testing.B) {
	for range b.N {
		m := setupHashMap(b)
		for i := uintptr(0); i < benchmarkItemCount; i += 2 {
			m.Del(i)
		}
	}
}

func Benchmark1IterateTreeMapUint(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		var prev uintptr
		next := m.Keys()
		for k, ok := next(); ok; k, ok = next() {
			if k < prev {
				b.Fail()
			}
			prev = k
		}
	}
}

func Benchmark1IterateGodsMapUint(b *testing.B) {
	m := setupGodsMap(b)
	b.ResetTimer()
	for range b.N {
		var prev uintptr
		for it := m.Iterator(); it.Next(); {
			if k := it.Key().(uintptr); k < prev {
				b.Fail()
			} else {
				prev = k
			}
		}
	}
}
