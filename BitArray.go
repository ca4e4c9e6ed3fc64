// Package Go_Utils has small building blocks shared by the containers and tools.
package Go_Utils

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size bitmap. Copies share the bits.
type BitArray struct {
	bits []uint
}

// Len is the capacity in bits, rounded up to a word.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Flip bit i and return its new state.
func (u BitArray) Flip(i int) bool {
	u.bits[i/bits.UintSize] ^= 1 << (i % bits.UintSize)
	return u.Get(i)
}

// Count the bits that are up.
func (u BitArray) Count() (n int) {
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return
}

// Next bit that is up at or after i, or -1.
func (u BitArray) Next(i int) int {
	if i < 0 {
		i = 0
	}
	for w := i / bits.UintSize; w < len(u.bits); w++ {
		word := u.bits[w]
		if w == i/bits.UintSize {
			word &= ^uint(0) << (i % bits.UintSize)
		}
		if word != 0 {
			return w*bits.UintSize + bits.TrailingZeros(word)
		}
	}
	return -1
}
