// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package assoc

import (
	"fmt"
	"iter"

	"github.com/bpowers/assoc/internal/reinterp"
	"github.com/bpowers/assoc/internal/zero"
)

// Assoc associates every value of the key type K with a value of type
// V.  Storage is a flat array of MaxVariants slots; slot i holds the
// value for whichever key reinterprets to index i.
//
// An Assoc is always fully initialized: it is built either in one step
// from a complete set of values (New, FromValues) or through the
// validated entry-wise pipeline (Builder, FromEntries).  Once built, no
// operation on it can fail.
//
// An Assoc performs no synchronization of its own; exclusive access is
// required for mutation, the same as for any Go value.
type Assoc[K Key, V any] struct {
	values []V
}

// New returns an Assoc with every slot holding the zero value of V.
func New[K Key, V any]() *Assoc[K, V] {
	return &Assoc[K, V]{values: make([]V, maxVariants[K]())}
}

// FromValues builds an Assoc directly from one value per storage slot,
// in storage (discriminant) order.  It panics unless exactly
// MaxVariants values are supplied; supplying the wrong count is a
// programming error on the order of a malformed literal, not a
// runtime condition.
func FromValues[K Key, V any](values ...V) *Assoc[K, V] {
	n := maxVariants[K]()
	if len(values) != n {
		panic(fmt.Sprintf("assoc: FromValues needs exactly %d values for this key type (got %d)", n, len(values)))
	}
	vs := make([]V, n)
	copy(vs, values)
	return &Assoc[K, V]{values: vs}
}

// Len returns the number of storage slots, fixed at MaxVariants for K.
func (a *Assoc[K, V]) Len() int {
	return len(a.values)
}

// IsEmpty reports whether the Assoc has zero slots.
func (a *Assoc[K, V]) IsEmpty() bool {
	return a.Len() == 0
}

// Get returns the value associated with key.
//
// This is the hot path: it indexes storage without a bounds check,
// which is sound because the Key contract guarantees every in-contract
// key reinterprets to an index below Len.
func (a *Assoc[K, V]) Get(key K) V {
	return *reinterp.At(a.values, index(key))
}

// Ptr returns a pointer to the value associated with key, through which
// the slot can be mutated in place.  Like Get, it skips the bounds
// check.
func (a *Assoc[K, V]) Ptr(key K) *V {
	return reinterp.At(a.values, index(key))
}

// Set stores value in the slot associated with key.
func (a *Assoc[K, V]) Set(key K, value V) {
	*reinterp.At(a.values, index(key)) = value
}

// GetChecked is Get with an ordinary bounds-checked index, for contexts
// that forbid unchecked access.
func (a *Assoc[K, V]) GetChecked(key K) V {
	return a.values[index(key)]
}

// PtrChecked is Ptr with an ordinary bounds-checked index, for contexts
// that forbid unchecked access.
func (a *Assoc[K, V]) PtrChecked(key K) *V {
	return &a.values[index(key)]
}

// Values returns an iterator over copies of all values in storage
// order.  The iterator is restartable: the returned sequence may be
// ranged over any number of times.
func (a *Assoc[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range a.values {
			if !yield(a.values[i]) {
				return
			}
		}
	}
}

// Pointers returns a restartable iterator over pointers to all slots in
// storage order, through which the slots can be mutated.
func (a *Assoc[K, V]) Pointers() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := range a.values {
			if !yield(&a.values[i]) {
				return
			}
		}
	}
}

// IntoValues consumes the Assoc and returns a one-shot iterator over
// all values in storage order.  The Assoc must not be used after the
// call; the sequence yields nothing on a second range.
func (a *Assoc[K, V]) IntoValues() iter.Seq[V] {
	values := a.values
	a.values = nil
	return func(yield func(V) bool) {
		for i := range values {
			if !yield(values[i]) {
				break
			}
		}
		zero.Slice(values)
		values = nil
	}
}
