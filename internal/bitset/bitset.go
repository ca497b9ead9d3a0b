// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset provides the fixed-size occupancy set the construction
// pipeline uses to track which storage slots have been written.
package bitset

import (
	"math/bits"
)

// Bitset is an in-memory bitmap that is conceptually similar to []bool, but more memory efficient.
type Bitset struct {
	bits   []uint64
	length int
}

func getOffsets(off int) (sliceOff int, bitOff uint) {
	sliceOff = off / 64
	bitOff = uint(off) % 64
	return
}

// Set sets the bit at position `off` to 1.
func (b *Bitset) Set(off int) {
	if off < 0 || off >= b.length {
		return
	}
	sliceOff, bitOff := getOffsets(off)
	u64 := &b.bits[sliceOff]
	*u64 |= 1 << bitOff
}

// IsSet returns true if the bit at position `off` is 1.
func (b *Bitset) IsSet(off int) bool {
	if off < 0 || off >= b.length {
		return false
	}
	sliceOff, bitOff := getOffsets(off)
	u64 := &b.bits[sliceOff]
	return *u64&(1<<bitOff) != 0
}

// FirstClear returns the position of the lowest 0 bit, or false if every
// bit is set.
func (b *Bitset) FirstClear() (int, bool) {
	for i, u64 := range b.bits {
		if u64 == ^uint64(0) {
			continue
		}
		off := i*64 + bits.TrailingZeros64(^u64)
		if off >= b.length {
			break
		}
		return off, true
	}
	return 0, false
}

// OnesCount returns the number of set bits.
func (b *Bitset) OnesCount() int {
	n := 0
	for _, u64 := range b.bits {
		n += bits.OnesCount64(u64)
	}
	return n
}

// Len returns the number of bits the set was created with.
func (b *Bitset) Len() int {
	return b.length
}

// New returns a new in-memory bitset where you can set and test for individual bits.
func New(length int) *Bitset {
	sliceLen := (length + 63) / 64
	return &Bitset{
		bits:   make([]uint64, sliceLen),
		length: length,
	}
}
