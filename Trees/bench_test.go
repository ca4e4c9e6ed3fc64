package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-stl/Alloc"
)

var (
	bAddN = 200000
	bQryN = bAddN / 2
)

func randomKeys(n int) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func BenchmarkAdd_Heap(b *testing.B) {
	all := randomKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := NewOrdered[int]()
		for _, v := range all {
			tree.InsertUnique(v)
		}
	}
}

func BenchmarkAdd_Pool(b *testing.B) {
	all := randomKeys(bAddN)
	pool := Alloc.NewPool[Node[int]](Alloc.WithChunk[Node[int]](1024))
	b.ResetTimer()
	for range b.N {
		tree := NewOrdered[int](WithSource[int, int](pool))
		for _, v := range all {
			tree.InsertUnique(v)
		}
		b.StopTimer()
		tree.Clear()
		b.StartTimer()
	}
}

func BenchmarkAdd_Gods(b *testing.B) {
	all := randomKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range all {
			tree.Put(v, struct{}{})
		}
	}
}

func BenchmarkAdd_BTree(b *testing.B) {
	all := randomKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range all {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkAdd_LLRB(b *testing.B) {
	all := randomKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range all {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkDel(b *testing.B) {
	all := randomKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := NewOrdered[int]()
		tree.InsertUniqueAll(all...)
		b.StartTimer()
		for _, v := range all {
			tree.EraseKey(v)
		}
	}
}

func BenchmarkDel_Gods(b *testing.B) {
	all := randomKeys(bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := redblacktree.NewWithIntComparator()
		for _, v := range all {
			tree.Put(v, struct{}{})
		}
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

var sideEff *int

func BenchmarkQry(b *testing.B) {
	all := randomKeys(bAddN)
	tree := NewOrdered[int]()
	tree.InsertUniqueAll(all...)
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Find(v).Value()
		}
	}
}

func BenchmarkQry_BTree(b *testing.B) {
	all := randomKeys(bAddN)
	tree := btree.NewOrderedG[int](32)
	for _, v := range all {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			if r, ok := tree.Get(v); ok {
				sideEff = &r
			}
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	tree := NewOrdered[int]()
	tree.InsertUniqueAll(randomKeys(bAddN)...)
	b.ResetTimer()
	for range b.N {
		tree.Range(func(v *int) bool {
			sideEff = v
			return true
		})
	}
}
