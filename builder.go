// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package assoc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bpowers/assoc/internal/bitset"
)

var (
	// ErrDuplicateKey is returned by Put when a second entry maps to an
	// already-written storage slot.
	ErrDuplicateKey = errors.New("an associative array cannot have two entries with identical keys")
	// ErrMissingKey is returned by Finalize when some storage slot was
	// never written.
	ErrMissingKey = errors.New("an associative array must have an entry for every key")
)

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	logger *slog.Logger
}

// WithBuilderLogger sets an optional logger for the builder to use for progress updates.
// If not provided, no logging output will be produced.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

// Builder constructs an Assoc slot by slot.  Building should happen
// once: each key is assigned at most one value, and Finalize refuses to
// produce an Assoc until every slot has been written.
//
// A zero Builder is not usable; create one with NewBuilder.
type Builder[K Key, V any] struct {
	values []V
	filled *bitset.Bitset
	logger *slog.Logger
}

// NewBuilder creates a Builder for the key type K with all
// MaxVariants slots unassigned.
func NewBuilder[K Key, V any](opts ...BuilderOption) *Builder[K, V] {
	var options builderOptions
	options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&options)
	}
	n := maxVariants[K]()
	return &Builder[K, V]{
		values: make([]V, n),
		filled: bitset.New(n),
		logger: options.logger,
	}
}

// Put assigns value to the slot for key.  Assigning two keys that share
// a storage slot fails with ErrDuplicateKey, regardless of the values.
func (b *Builder[K, V]) Put(key K, value V) error {
	idx := int(index(key))
	if b.filled.IsSet(idx) {
		b.logger.Error("rejecting duplicate key", "index", idx)
		return ErrDuplicateKey
	}
	// the builder is the cold path, so indexing here stays checked
	b.values[idx] = value
	b.filled.Set(idx)
	b.logger.Debug("assigned slot", "index", idx, "assigned", b.filled.OnesCount(), "len", b.filled.Len())
	return nil
}

// Finalize checks that every slot was written exactly once and returns
// the finished Assoc.  Exactly once is already proven at this point:
// Put rejected any slot written twice, so all that remains is to find a
// slot never written.  On success the builder gives up its storage and
// must not be reused.
func (b *Builder[K, V]) Finalize() (*Assoc[K, V], error) {
	if missing, ok := b.filled.FirstClear(); ok {
		return nil, fmt.Errorf("%w: no entry maps to index %d of %d", ErrMissingKey, missing, b.filled.Len())
	}
	values := b.values
	b.values = nil
	b.filled = nil
	return &Assoc[K, V]{values: values}, nil
}

// Entry is a single key/value pair for the entry-wise construction
// paths.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// FromEntries builds a fully initialized Assoc from one entry per key,
// failing with ErrDuplicateKey or ErrMissingKey exactly as the
// equivalent sequence of Put calls and Finalize would.
func FromEntries[K Key, V any](entries []Entry[K, V], opts ...BuilderOption) (*Assoc[K, V], error) {
	b := NewBuilder[K, V](opts...)
	for _, e := range entries {
		if err := b.Put(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b.Finalize()
}

// MustFromEntries is FromEntries for literal constructions in
// package-level variable initializers: a rejected construction panics,
// aborting startup before the map can be used.
func MustFromEntries[K Key, V any](entries ...Entry[K, V]) *Assoc[K, V] {
	m, err := FromEntries(entries)
	if err != nil {
		panic("assoc: " + err.Error())
	}
	return m
}
