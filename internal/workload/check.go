package workload

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	Go_Utils "github.com/g-m-twostay/go-stl"
	"github.com/g-m-twostay/go-stl/Alloc"
	"github.com/g-m-twostay/go-stl/Trees"
)

type CheckConfig struct {
	// KeyRange bounds the keys to [0, KeyRange).
	KeyRange int
	Rounds   int
	// OpsPerRound random insertions and erasures.
	OpsPerRound int
	Seed        int64
	// PoolLimit caps the live nodes, 0 for no cap.
	PoolLimit uint
}

type CheckReport struct {
	Rounds        int         `yaml:"rounds"`
	Size          int         `yaml:"size"`
	Height        int         `yaml:"height"`
	BlackHeight   int         `yaml:"black_height"`
	AllocFailures int         `yaml:"alloc_failures"`
	Pool          Alloc.Stats `yaml:"pool"`
}

// Check runs random insertions and erasures on a pool backed red-black tree, mirroring them in
// a bitmap. After every round the tree must pass Verify and hold exactly the keys in the bitmap.
// Allocation failures are expected once the pool limit is reached and leave the tree unchanged.
func Check(cfg CheckConfig, log zerolog.Logger) (CheckReport, error) {
	if cfg.KeyRange <= 0 {
		return CheckReport{}, fmt.Errorf("key range must be positive, got %d", cfg.KeyRange)
	}
	pool := Alloc.NewPool[Trees.Node[int]](Alloc.WithLimit[Trees.Node[int]](cfg.PoolLimit), Alloc.WithLogger[Trees.Node[int]](log))
	tree := Trees.NewOrdered[int](Trees.WithSource[int, int](pool))
	model := Go_Utils.NewBitArray(cfg.KeyRange)
	rg := rand.New(rand.NewSource(cfg.Seed))
	rep := CheckReport{}
	for round := range cfg.Rounds {
		for range cfg.OpsPerRound {
			k := rg.Intn(cfg.KeyRange)
			if rg.Intn(3) == 0 {
				if n := tree.EraseKey(k); (n == 1) != model.Get(k) {
					return rep, fmt.Errorf("round %d: erasing %d removed %d elements", round, k, n)
				}
				model.Down(k)
				continue
			}
			_, ok, err := tree.InsertUnique(k)
			switch {
			case errors.Is(err, Alloc.ErrExhausted):
				rep.AllocFailures++
				continue
			case err != nil:
				return rep, err
			case ok == model.Get(k):
				return rep, fmt.Errorf("round %d: inserting %d returned %v", round, k, ok)
			}
			model.Up(k)
		}
		if err := tree.Verify(); err != nil {
			return rep, fmt.Errorf("round %d: %w", round, err)
		}
		if err := sameKeys(tree, model); err != nil {
			return rep, fmt.Errorf("round %d: %w", round, err)
		}
		rep.Rounds++
		log.Debug().Int("round", round).Int("size", tree.Size()).Int("height", tree.Height()).Msg("round verified")
	}
	rep.Size, rep.Height, rep.BlackHeight = tree.Size(), tree.Height(), tree.BlackHeight()
	rep.Pool = pool.Stats()
	return rep, nil
}

func sameKeys(tree *Trees.RBTree[int, int], model Go_Utils.BitArray) error {
	if tree.Size() != model.Count() {
		return fmt.Errorf("tree has %d keys, model has %d", tree.Size(), model.Count())
	}
	k := model.Next(0)
	var err error
	tree.Range(func(v *int) bool {
		if *v != k {
			err = fmt.Errorf("tree has %d where model has %d", *v, k)
			return false
		}
		k = model.Next(k + 1)
		return true
	})
	return err
}
