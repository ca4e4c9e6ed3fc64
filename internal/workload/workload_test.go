package workload

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	Go_Utils "github.com/g-m-twostay/go-stl"
	"github.com/g-m-twostay/go-stl/Alloc"
	"github.com/g-m-twostay/go-stl/Trees"
)

func newEngines(t *testing.T) []Engine {
	t.Helper()
	var es []Engine
	for _, name := range Engines {
		e, err := NewEngine(name, nil)
		require.NoError(t, err)
		require.Equal(t, name, e.Name())
		es = append(es, e)
	}
	return es
}

func TestGenerate(t *testing.T) {
	a := Generate[int](7, 1000, 50)
	require.Equal(t, a, Generate[int](7, 1000, 50))
	require.NotEqual(t, a, Generate[int](8, 1000, 50))
	counts := map[Op]int{}
	for _, s := range a {
		require.GreaterOrEqual(t, s.Key, 0)
		require.Less(t, s.Key, 50)
		counts[s.Op]++
	}
	require.Len(t, counts, 3)
	require.Greater(t, counts[OpInsert], counts[OpErase])

	small := Generate[uint8](1, 100, 10)
	for _, s := range small {
		require.Less(t, s.Key, uint8(10))
	}
}

func TestOp_String(t *testing.T) {
	require.Equal(t, "insert", OpInsert.String())
	require.Equal(t, "erase", OpErase.String())
	require.Equal(t, "Op(9)", Op(9).String())
}

func TestNewEngine_Unknown(t *testing.T) {
	_, err := NewEngine("skiplist", nil)
	require.ErrorContains(t, err, "unknown engine")
}

func TestEngines_Basic(t *testing.T) {
	for _, e := range newEngines(t) {
		t.Run(e.Name(), func(t *testing.T) {
			for _, k := range []int{5, 1, 3} {
				ok, err := e.Insert(k)
				require.NoError(t, err)
				require.True(t, ok)
			}
			ok, err := e.Insert(3)
			require.NoError(t, err)
			require.False(t, ok)
			require.True(t, e.Find(1))
			require.False(t, e.Find(2))
			require.True(t, e.Erase(1))
			require.False(t, e.Erase(1))
			require.Equal(t, 2, e.Len())
			var keys []int
			e.Ascend(func(k int) bool {
				keys = append(keys, k)
				return true
			})
			require.Equal(t, []int{3, 5}, keys)
		})
	}
}

func TestRunAll_Agree(t *testing.T) {
	steps := Generate[int](42, 20000, 3000)
	var ops Go_Utils.AtomicUint
	results, err := RunAll(context.Background(), newEngines(t), steps, &ops, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, results, len(Engines))
	require.Equal(t, uint(len(steps)*len(Engines)), ops.Load())
	for i, r := range results {
		require.Equal(t, Engines[i], r.Engine)
		require.Equal(t, results[0].Checksum, r.Checksum)
		require.Positive(t, r.Size)
	}
}

func TestRunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunAll(ctx, newEngines(t), Generate[int](1, 100, 10), nil, zerolog.Nop())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunAll_AllocationFailure(t *testing.T) {
	pool := Alloc.NewPool[Trees.Node[int]](Alloc.WithLimit[Trees.Node[int]](10))
	e, err := NewEngine(EngineRBTree, pool)
	require.NoError(t, err)
	_, err = RunAll(context.Background(), []Engine{e}, Generate[int](3, 1000, 1000), nil, zerolog.Nop())
	require.ErrorIs(t, err, Alloc.ErrExhausted)
}

type lying struct {
	Engine
}

func (l lying) Find(int) bool { return true }

func TestRunAll_Mismatch(t *testing.T) {
	a, err := NewEngine(EngineBTree, nil)
	require.NoError(t, err)
	b, err := NewEngine(EngineLLRB, nil)
	require.NoError(t, err)
	_, err = RunAll(context.Background(), []Engine{a, lying{b}}, Generate[int](5, 500, 100), nil, zerolog.Nop())
	require.True(t, errors.Is(err, ErrMismatch))
}

func TestCheck(t *testing.T) {
	rep, err := Check(CheckConfig{KeyRange: 500, Rounds: 20, OpsPerRound: 200, Seed: 9}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 20, rep.Rounds)
	require.Zero(t, rep.AllocFailures)
	require.Positive(t, rep.Size)
	require.Equal(t, rep.Size, int(rep.Pool.Live))
	require.LessOrEqual(t, rep.Height, 2*rep.BlackHeight)
}

func TestCheck_PoolLimit(t *testing.T) {
	rep, err := Check(CheckConfig{KeyRange: 1000, Rounds: 5, OpsPerRound: 400, Seed: 2, PoolLimit: 64}, zerolog.Nop())
	require.NoError(t, err)
	require.Positive(t, rep.AllocFailures)
	require.LessOrEqual(t, rep.Size, 64)
}

func TestCheck_BadConfig(t *testing.T) {
	_, err := Check(CheckConfig{}, zerolog.Nop())
	require.Error(t, err)
}
