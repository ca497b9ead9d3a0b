// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero provides a function to zero slices.
package zero

// Slice resets every element of s to the zero value of T, releasing
// anything the elements referenced.
func Slice[T any](s []T) {
	var zeroValue T
	for i := 0; i < len(s); i++ {
		s[i] = zeroValue
	}
}
