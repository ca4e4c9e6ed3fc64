// Package workload drives the red-black tree and other ordered containers through the same
// randomized operations, for benchmarking and for checking them against each other.
package workload

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-stl/Alloc"
	"github.com/g-m-twostay/go-stl/Trees"
)

// Engine is an ordered set of ints. Engines aren't safe for concurrent use; each run owns one.
type Engine interface {
	Name() string
	// Insert k, false if it was present.
	Insert(k int) (bool, error)
	Find(k int) bool
	// Erase k, false if it was absent.
	Erase(k int) bool
	Len() int
	// Ascend calls f on each key in order until f returns false.
	Ascend(f func(int) bool)
}

const (
	EngineRBTree = "rbtree"
	EngineGods   = "gods"
	EngineBTree  = "btree"
	EngineLLRB   = "llrb"
)

// Engines lists every engine name NewEngine accepts.
var Engines = []string{EngineRBTree, EngineGods, EngineBTree, EngineLLRB}

// NewEngine by name. The red-black tree takes its nodes from src, or from the heap if src is nil.
func NewEngine(name string, src Alloc.Source[Trees.Node[int]]) (Engine, error) {
	switch strings.ToLower(name) {
	case EngineRBTree:
		var opts []Trees.Option[int, int]
		if src != nil {
			opts = append(opts, Trees.WithSource[int, int](src))
		}
		return &rbEngine{Trees.NewOrdered[int](opts...)}, nil
	case EngineGods:
		return &godsEngine{redblacktree.NewWith(utils.IntComparator)}, nil
	case EngineBTree:
		return &btreeEngine{btree.NewOrderedG[int](32)}, nil
	case EngineLLRB:
		return &llrbEngine{llrb.New()}, nil
	}
	return nil, fmt.Errorf("unknown engine %q, expected one of %s", name, strings.Join(Engines, ","))
}

type rbEngine struct {
	t *Trees.RBTree[int, int]
}

func (e *rbEngine) Name() string { return EngineRBTree }

func (e *rbEngine) Insert(k int) (bool, error) {
	_, ok, err := e.t.InsertUnique(k)
	return ok, err
}

func (e *rbEngine) Find(k int) bool { return e.t.Find(k).Valid() }

func (e *rbEngine) Erase(k int) bool { return e.t.EraseKey(k) > 0 }

func (e *rbEngine) Len() int { return e.t.Size() }

func (e *rbEngine) Ascend(f func(int) bool) {
	e.t.Range(func(v *int) bool { return f(*v) })
}

type godsEngine struct {
	t *redblacktree.Tree
}

func (e *godsEngine) Name() string { return EngineGods }

func (e *godsEngine) Insert(k int) (bool, error) {
	if _, found := e.t.Get(k); found {
		return false, nil
	}
	e.t.Put(k, nil)
	return true, nil
}

func (e *godsEngine) Find(k int) bool {
	_, found := e.t.Get(k)
	return found
}

func (e *godsEngine) Erase(k int) bool {
	if _, found := e.t.Get(k); !found {
		return false
	}
	e.t.Remove(k)
	return true
}

func (e *godsEngine) Len() int { return e.t.Size() }

func (e *godsEngine) Ascend(f func(int) bool) {
	for it := e.t.Iterator(); it.Next(); {
		if !f(it.Key().(int)) {
			return
		}
	}
}

type btreeEngine struct {
	t *btree.BTreeG[int]
}

func (e *btreeEngine) Name() string { return EngineBTree }

func (e *btreeEngine) Insert(k int) (bool, error) {
	_, replaced := e.t.ReplaceOrInsert(k)
	return !replaced, nil
}

func (e *btreeEngine) Find(k int) bool { return e.t.Has(k) }

func (e *btreeEngine) Erase(k int) bool {
	_, ok := e.t.Delete(k)
	return ok
}

func (e *btreeEngine) Len() int { return e.t.Len() }

func (e *btreeEngine) Ascend(f func(int) bool) { e.t.Ascend(f) }

type llrbEngine struct {
	t *llrb.LLRB
}

func (e *llrbEngine) Name() string { return EngineLLRB }

func (e *llrbEngine) Insert(k int) (bool, error) {
	return e.t.ReplaceOrInsert(llrb.Int(k)) == nil, nil
}

func (e *llrbEngine) Find(k int) bool { return e.t.Has(llrb.Int(k)) }

func (e *llrbEngine) Erase(k int) bool { return e.t.Delete(llrb.Int(k)) != nil }

func (e *llrbEngine) Len() int { return e.t.Len() }

func (e *llrbEngine) Ascend(f func(int) bool) {
	if e.t.Len() == 0 {
		return
	}
	e.t.AscendGreaterOrEqual(e.t.Min(), func(i llrb.Item) bool {
		return f(int(i.(llrb.Int)))
	})
}
