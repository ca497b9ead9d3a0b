// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package reinterp provides zero-cost bit-level reinterpretation of
// enum-like keys as storage indices, along with unchecked slice
// addressing built on top of it.
package reinterp

import (
	"unsafe"
)

// AsIndex reinterprets the bits of k as its primitive discriminant and
// widens (or, on 32-bit platforms, narrows) it to the platform index
// type.  The width dispatch below is resolved by the compiler: for any
// concrete K exactly one arm survives.
//
// SAFETY: k must have a primitive integer representation of 1, 2, 4, or
// 8 bytes, and its discriminant must be non-negative.  Both hold for
// every type admitted by the assoc.Key constraint; the final arm is
// unreachable for those types.  On platforms with a 32-bit index type an
// 8-byte discriminant is narrowed, which is lossless for any in-contract
// key because a valid discriminant is less than MaxVariants, which fits
// in an int.
func AsIndex[K any](k K) uint {
	switch unsafe.Sizeof(k) {
	case 1:
		return uint(*(*uint8)(unsafe.Pointer(&k)))
	case 2:
		return uint(*(*uint16)(unsafe.Pointer(&k)))
	case 4:
		return uint(*(*uint32)(unsafe.Pointer(&k)))
	case 8:
		return uint(*(*uint64)(unsafe.Pointer(&k)))
	default:
		panic("reinterp: key is not a 1, 2, 4, or 8-byte primitive")
	}
}

// At returns a pointer to element i of s without a bounds check.
// SAFETY: i must be less than len(s).
func At[T any](s []T, i uint) *T {
	var elem T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(elem)))
}
