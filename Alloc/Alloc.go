package Alloc

import (
	"errors"
	"fmt"
)

// ErrExhausted is wrapped by every AllocationError.
var ErrExhausted = errors.New("node source exhausted")

// Source hands out storage for objects of type T. Acquire returns zeroed storage; the caller is
// responsible for putting a value into it and for clearing the value before Release.
// A Source must not be shared by containers that are used concurrently.
type Source[T any] interface {
	//Acquire storage for one T. Fails with an error wrapping ErrExhausted.
	Acquire() (*T, error)
	//Release storage obtained from Acquire. Releasing the same pointer twice is undefined.
	Release(*T)
}

// AllocationError is returned when a Source can't provide more storage.
type AllocationError struct {
	Live, Limit uint
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocation failed: %d live objects, limit %d", e.Live, e.Limit)
}

func (e *AllocationError) Unwrap() error {
	return ErrExhausted
}

// Heap is the default Source. It never fails and leaves reclamation to the garbage collector.
type Heap[T any] struct{}

func (Heap[T]) Acquire() (*T, error) {
	return new(T), nil
}

func (Heap[T]) Release(*T) {}
