package Alloc

import (
	"github.com/rs/zerolog"
)

// Stats of a Pool.
type Stats struct {
	Live, Free, Acquired, Released uint
}

// Pool is a Source that recycles released objects through a free list before asking the heap
// for more. Objects are allocated in chunks so that consecutive acquisitions are close in memory.
// The zero value isn't usable; create it with NewPool.
type Pool[T any] struct {
	free     []*T //free list, popped from the back.
	chunk    uint
	limit    uint //0 means unlimited.
	live     uint
	acquired uint
	released uint
	//set once the limit is hit, cleared when an object can be acquired again.
	exhausted bool
	log       zerolog.Logger
}

type Option[T any] func(*Pool[T])

// WithLimit caps the number of live objects. Acquire fails with *AllocationError when reached.
func WithLimit[T any](n uint) Option[T] {
	return func(p *Pool[T]) {
		p.limit = n
	}
}

// WithChunk sets how many objects are allocated at once when the free list is empty.
func WithChunk[T any](n uint) Option[T] {
	return func(p *Pool[T]) {
		if n > 0 {
			p.chunk = n
		}
	}
}

// WithLogger sets the logger used to report exhaustion and trimming. Exhaustion is reported once
// each time the pool runs into its limit, not on every failed Acquire.
func WithLogger[T any](l zerolog.Logger) Option[T] {
	return func(p *Pool[T]) {
		p.log = l
	}
}

func NewPool[T any](opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{chunk: 32, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// refill the free list with a chunk of objects, respecting the limit.
func (u *Pool[T]) refill() {
	n := u.chunk
	if u.limit != 0 && u.live+n > u.limit {
		n = u.limit - u.live
	}
	blk := make([]T, n)
	for i := range blk {
		u.free = append(u.free, &blk[len(blk)-1-i])
	}
}

// Acquire [Source.Acquire]
// Time: amortized O(1)
func (u *Pool[T]) Acquire() (*T, error) {
	if u.limit != 0 && u.live >= u.limit {
		if !u.exhausted {
			u.exhausted = true
			u.log.Warn().Uint("live", u.live).Uint("limit", u.limit).Msg("node pool exhausted")
		}
		return nil, &AllocationError{Live: u.live, Limit: u.limit}
	}
	u.exhausted = false
	if len(u.free) == 0 {
		u.refill()
	}
	t := u.free[len(u.free)-1]
	u.free[len(u.free)-1] = nil
	u.free = u.free[:len(u.free)-1]
	u.live++
	u.acquired++
	return t, nil
}

// Release [Source.Release]. The object is zeroed before it's put on the free list.
func (u *Pool[T]) Release(t *T) {
	*t = *new(T)
	u.free = append(u.free, t)
	u.live--
	u.released++
}

// Trim drops the free list so that the memory can be collected.
func (u *Pool[T]) Trim() {
	u.log.Debug().Int("dropped", len(u.free)).Msg("trimming node pool")
	clear(u.free)
	u.free = nil
}

func (u *Pool[T]) Stats() Stats {
	return Stats{Live: u.live, Free: uint(len(u.free)), Acquired: u.acquired, Released: u.released}
}

// SetLimit changes the live object limit. A limit lower than the current live count only
// prevents further growth.
func (u *Pool[T]) SetLimit(n uint) {
	u.limit = n
}
