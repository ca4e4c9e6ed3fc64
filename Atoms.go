package Go_Utils

import "sync/atomic"

// AtomicUint backed by uintptr
type AtomicUint struct {
	v uintptr
}

func (u *AtomicUint) Load() uint {
	return uint(atomic.LoadUintptr(&u.v))
}

func (u *AtomicUint) Add(d uint) uint {
	return uint(atomic.AddUintptr(&u.v, uintptr(d)))
}

// Swap is used to read and reset a counter at once.
func (u *AtomicUint) Swap(v uint) uint {
	return uint(atomic.SwapUintptr(&u.v, uintptr(v)))
}
