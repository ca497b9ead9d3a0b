// Copyright 2025 The assoc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package assoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Letter is the dense common case: discriminants 0..2.
type Letter uint8

const (
	LetterA Letter = iota
	LetterB
	LetterC
)

func (Letter) MaxVariants() int { return 3 }

// Solo has exactly one named value.
type Solo uint8

const SoloOnly Solo = 0

func (Solo) MaxVariants() int { return 1 }

// Gap is sparse: discriminants 0 and 5 with nothing in between.
type Gap uint16

const (
	GapX Gap = 0
	GapY Gap = 5
)

func (Gap) MaxVariants() int { return 6 }

// Wide is backed by the platform-width signed integer.
type Wide int

const (
	WideLo Wide = 0
	WideHi Wide = 3
)

func (Wide) MaxVariants() int { return 4 }

var letters = MustFromEntries(
	Entry[Letter, rune]{Key: LetterA, Value: 'a'},
	Entry[Letter, rune]{Key: LetterB, Value: 'b'},
	Entry[Letter, rune]{Key: LetterC, Value: 'c'},
)

func TestLetters(t *testing.T) {
	require.Equal(t, 3, letters.Len())
	require.False(t, letters.IsEmpty())
	require.Equal(t, 'a', letters.Get(LetterA))
	require.Equal(t, 'c', letters.Get(LetterC))
	require.Equal(t, 'b', letters.GetChecked(LetterB))
	require.Equal(t, 'b', *letters.PtrChecked(LetterB))

	// reading twice without mutation returns equal values
	require.Equal(t, letters.Get(LetterB), letters.Get(LetterB))
}

func TestFromValuesRoundTrip(t *testing.T) {
	m := FromValues[Letter]("alpha", "beta", "gamma")
	for _, testcase := range []struct {
		key  Letter
		want string
	}{
		{LetterA, "alpha"},
		{LetterB, "beta"},
		{LetterC, "gamma"},
	} {
		require.Equal(t, testcase.want, m.Get(testcase.key))
		require.Equal(t, testcase.want, m.GetChecked(testcase.key))
	}
}

func TestFromValuesWrongCountPanics(t *testing.T) {
	require.Panics(t, func() {
		FromValues[Letter]('a', 'b')
	})
	require.Panics(t, func() {
		FromValues[Letter]('a', 'b', 'c', 'd')
	})
}

func TestMutationIsConfinedToOneSlot(t *testing.T) {
	m := FromValues[Letter](1, 2, 3)

	*m.Ptr(LetterB) = 20
	require.Equal(t, 1, m.Get(LetterA))
	require.Equal(t, 20, m.Get(LetterB))
	require.Equal(t, 3, m.Get(LetterC))

	m.Set(LetterC, 30)
	require.Equal(t, 1, m.Get(LetterA))
	require.Equal(t, 20, m.Get(LetterB))
	require.Equal(t, 30, m.Get(LetterC))
}

func TestNewDefaultsToZeroValues(t *testing.T) {
	m := New[Letter, int]()
	require.Equal(t, 3, m.Len())
	for v := range m.Values() {
		require.Zero(t, v)
	}
}

func TestSingleVariant(t *testing.T) {
	m := New[Solo, string]()
	require.Equal(t, 1, m.Len())
	require.False(t, m.IsEmpty())

	m.Set(SoloOnly, "only")
	require.Equal(t, "only", m.Get(SoloOnly))
	require.Equal(t, "only", m.GetChecked(SoloOnly))
	require.Equal(t, "only", *m.Ptr(SoloOnly))
	require.Equal(t, "only", *m.PtrChecked(SoloOnly))
}

func TestSparseDiscriminants(t *testing.T) {
	// storage is sized by the greatest discriminant, not the number of
	// named values: the four slots between X and Y exist but hold zero
	// values no key addresses
	m := New[Gap, rune]()
	require.Equal(t, 6, m.Len())

	m.Set(GapX, 'x')
	m.Set(GapY, 'y')
	require.Equal(t, 'x', m.Get(GapX))
	require.Equal(t, 'y', m.Get(GapY))

	count := 0
	for range m.Values() {
		count++
	}
	require.Equal(t, 6, count)

	// the entry-wise pipeline requires dense coverage, so a sparse key
	// type cannot finish it
	b := NewBuilder[Gap, rune]()
	require.NoError(t, b.Put(GapX, 'x'))
	require.NoError(t, b.Put(GapY, 'y'))
	_, err := b.Finalize()
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestWideKeys(t *testing.T) {
	m := FromValues[Wide]("lo", "", "", "hi")
	require.Equal(t, 4, m.Len())
	require.Equal(t, "lo", m.Get(WideLo))
	require.Equal(t, "hi", m.Get(WideHi))
}

func TestValuesIsRestartable(t *testing.T) {
	collect := func(m *Assoc[Letter, rune]) []rune {
		var got []rune
		for v := range m.Values() {
			got = append(got, v)
		}
		return got
	}

	m := FromValues[Letter]('a', 'b', 'c')
	first := collect(m)
	second := collect(m)
	require.Equal(t, []rune{'a', 'b', 'c'}, first)
	require.Equal(t, first, second)
}

func TestPointersMutateEverySlot(t *testing.T) {
	m := FromValues[Letter](1, 2, 3)
	for p := range m.Pointers() {
		*p *= 10
	}
	require.Equal(t, 10, m.Get(LetterA))
	require.Equal(t, 20, m.Get(LetterB))
	require.Equal(t, 30, m.Get(LetterC))
}

func TestIntoValuesConsumes(t *testing.T) {
	m := FromValues[Letter]('a', 'b', 'c')
	seq := m.IntoValues()

	var got []rune
	for v := range seq {
		got = append(got, v)
	}
	require.Equal(t, []rune{'a', 'b', 'c'}, got)

	// not restartable: a second range yields nothing
	for range seq {
		t.Fatal("IntoValues sequence restarted")
	}
}

func TestIntoValuesEarlyBreak(t *testing.T) {
	m := FromValues[Letter]('a', 'b', 'c')
	for v := range m.IntoValues() {
		require.Equal(t, 'a', v)
		break
	}
}

func TestGetDoesNotAllocate(t *testing.T) {
	m := FromValues[Letter]('a', 'b', 'c')
	var v rune
	allocs := testing.AllocsPerRun(100, func() {
		v = m.Get(LetterB)
		_ = m.Ptr(LetterC)
	})
	require.Zero(t, allocs)
	require.Equal(t, 'b', v)
}

func BenchmarkGet(b *testing.B) {
	m := FromValues[Letter]('a', 'b', 'c')
	keys := []Letter{LetterA, LetterB, LetterC}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		if v := m.Get(key); v == 0 {
			b.Fatal("bad lookup")
		}
	}
}

func BenchmarkHashmap(b *testing.B) {
	m := map[Letter]rune{LetterA: 'a', LetterB: 'b', LetterC: 'c'}
	keys := []Letter{LetterA, LetterB, LetterC}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		if v, ok := m[key]; !ok || v == 0 {
			b.Fatal("bad lookup")
		}
	}
}
