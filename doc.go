// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package assoc provides a fixed-size associative array keyed by a
// closed, integer-backed enumeration.
//
// Storage is a flat array with one slot per possible discriminant,
// sized by the key type's MaxVariants method and addressed by
// reinterpreting a key's bits as its discriminant.  Lookups on a
// finalized Assoc cannot fail and perform no hashing, no bounds check,
// and no allocation.
//
//	type Letter uint8
//
//	const (
//		A Letter = iota
//		B
//		C
//	)
//
//	func (Letter) MaxVariants() int { return 3 }
//
//	var letters = assoc.MustFromEntries(
//		assoc.Entry[Letter, rune]{Key: A, Value: 'a'},
//		assoc.Entry[Letter, rune]{Key: B, Value: 'b'},
//		assoc.Entry[Letter, rune]{Key: C, Value: 'c'},
//	)
//
//	letters.Get(A) // 'a'
//
// The MaxVariants method is normally generated with cmd/keygen rather
// than written by hand.
package assoc
