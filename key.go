// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package assoc

import (
	"golang.org/x/exp/constraints"

	"github.com/bpowers/assoc/internal/reinterp"
)

// Key is the contract an enumeration type satisfies to address an
// Assoc.  The integer type set is the reinterpretation guarantee: a
// Key's bits are exactly its discriminant, an 8, 16, 32, or 64-bit
// primitive integer.
//
// Implementations must ensure that every named value's discriminant is
// distinct, non-negative, and less than MaxVariants.  That guarantee is
// established once, here; the unchecked accessors on Assoc rely on it
// and never re-verify it.  Supplying a value outside the enumeration is
// a contract violation, not a recoverable error.
type Key interface {
	constraints.Integer

	// MaxVariants returns one plus the greatest discriminant among the
	// type's named values.  It must return the same constant for every
	// value of the type; cmd/keygen generates it from a const block.
	MaxVariants() int
}

// maxVariants returns the storage length for the key type K.
func maxVariants[K Key]() int {
	var k K
	return k.MaxVariants()
}

// index converts a key to its dense storage index.  For every
// in-contract key, index(key) < maxVariants[K]().
func index[K Key](key K) uint {
	return reinterp.AsIndex(key)
}
