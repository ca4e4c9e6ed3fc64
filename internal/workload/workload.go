package workload

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	Go_Utils "github.com/g-m-twostay/go-stl"
)

type Op byte

const (
	OpInsert Op = iota
	OpFind
	OpErase
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpFind:
		return "find"
	case OpErase:
		return "erase"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

type Step[K constraints.Integer] struct {
	Op  Op
	Key K
}

// Generate n steps on keys in [0, keyRange) from seed. Half the steps insert, a quarter find and
// a quarter erase, so the structure grows towards keyRange/2 distinct keys.
func Generate[K constraints.Integer](seed int64, n int, keyRange K) []Step[K] {
	rg := rand.New(rand.NewSource(seed))
	steps := make([]Step[K], n)
	for i := range steps {
		op := OpInsert
		switch rg.Intn(4) {
		case 2:
			op = OpFind
		case 3:
			op = OpErase
		}
		steps[i] = Step[K]{op, K(rg.Int63n(int64(keyRange)))}
	}
	return steps
}

// Result of running steps on one engine.
type Result struct {
	Engine   string        `yaml:"engine"`
	Inserted uint          `yaml:"inserted"`
	Found    uint          `yaml:"found"`
	Erased   uint          `yaml:"erased"`
	Size     int           `yaml:"size"`
	Elapsed  time.Duration `yaml:"elapsed"`
	Checksum uint64        `yaml:"checksum"`
}

// ErrMismatch is returned when engines disagree on the outcome of the same steps.
var ErrMismatch = errors.New("engines disagree")

const ctxCheckEvery = 1 << 10

// Run steps on e. It stops early if ctx is done or if an insertion fails.
func Run(ctx context.Context, e Engine, steps []Step[int], ops *Go_Utils.AtomicUint) (Result, error) {
	r := Result{Engine: e.Name()}
	start := time.Now()
	for i, s := range steps {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}
		switch s.Op {
		case OpInsert:
			ok, err := e.Insert(s.Key)
			if err != nil {
				return r, fmt.Errorf("%s: step %d: %w", e.Name(), i, err)
			}
			if ok {
				r.Inserted++
			}
		case OpFind:
			if e.Find(s.Key) {
				r.Found++
			}
		case OpErase:
			if e.Erase(s.Key) {
				r.Erased++
			}
		}
	}
	r.Elapsed = time.Since(start)
	if ops != nil {
		ops.Add(uint(len(steps)))
	}
	r.Size = e.Len()
	r.Checksum = Checksum(e)
	return r, nil
}

// Checksum hashes the keys of e in order, so engines holding the same keys agree.
func Checksum(e Engine) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	e.Ascend(func(k int) bool {
		for i := range buf {
			buf[i] = byte(uint64(k) >> (8 * i))
		}
		h.Write(buf[:])
		return true
	})
	return h.Sum64()
}

// RunAll runs the same steps on every engine concurrently and checks that they agree. Results are
// in the order of engines. ops, if not nil, accumulates the number of steps run.
func RunAll(ctx context.Context, engines []Engine, steps []Step[int], ops *Go_Utils.AtomicUint, log zerolog.Logger) ([]Result, error) {
	results := make([]Result, len(engines))
	g, ctx := errgroup.WithContext(ctx)
	for i, e := range engines {
		g.Go(func() error {
			r, err := Run(ctx, e, steps, ops)
			if err != nil {
				return err
			}
			log.Debug().Str("engine", r.Engine).Dur("elapsed", r.Elapsed).Int("size", r.Size).Msg("run done")
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, compare(results)
}

func compare(results []Result) error {
	var errs []error
	for _, r := range results[min(1, len(results)):] {
		w := results[0]
		if r.Inserted != w.Inserted || r.Found != w.Found || r.Erased != w.Erased || r.Size != w.Size || r.Checksum != w.Checksum {
			errs = append(errs, fmt.Errorf("%w: %s and %s", ErrMismatch, w.Engine, r.Engine))
		}
	}
	return errors.Join(errs...)
}
