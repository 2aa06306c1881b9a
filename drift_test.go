package sizedarray

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriftWorkedExamples(t *testing.T) {
	array := [7]int{1, 2, 3, 0, 0, 0, 0}
	require.Equal(t, [7]int{0, 1, 2, 3, 0, 0, 0}, DriftToBegin(array, 0, 1, 0x00))
	require.Equal(t, [7]int{42, 42, 42, 42, 1, 2, 3}, DriftToEnd(array, 3, 0, 42))
}

func TestDriftWorkedExamplesOnBytes(t *testing.T) {
	// untyped constants make fill an int
	array := [7]byte{1, 2, 3, 0, 0, 0, 0}
	require.Equal(t, [7]byte{0, 1, 2, 3, 0, 0, 0}, DriftToBegin(array, 0, 1, 0x00))
	require.Equal(t, [7]byte{42, 42, 42, 42, 1, 2, 3}, DriftToEnd(array, 3, 0, 42))
	require.Equal(t, [7]byte{1, 2, 3, 0, 0, 0, 0}, array)

	words := [3]string{"a", "b", "c"}
	require.Equal(t, words, DriftToBegin(words, 0, 1, 0))
	require.Equal(t, words, DriftToEnd(words, 3, 1, 0))
}

func TestDriftConvertedFillMatchesTyped(t *testing.T) {
	condition := func(a [10]int8, s, m int8, fill int8) bool {
		start, margin := int(s%14), int(m%14)
		return DriftToBegin(a, start, margin, int(fill)) == DriftToBegin(a, start, margin, fill) &&
			DriftToEnd(a, start, margin, int(fill)) == DriftToEnd(a, start, margin, fill)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 1000}))
}

func TestDriftToBegin(t *testing.T) {
	array := InitializeFrom[[13]int](identity)
	for margin := range 3 {
		expected := Superimpose(InitializeFrom[[13]int](func(int) int { return 42 }), []int{10, 11, 12}, margin)
		assert.Equal(t, expected, DriftToBegin(array, 10, margin, 42), "margin %d", margin)
	}
}

func TestDriftToBeginEdges(t *testing.T) {
	array := [5]int{1, 2, 3, 4, 5}
	all := [5]int{9, 9, 9, 9, 9}
	cases := []struct {
		name     string
		start    int
		margin   int
		expected [5]int
	}{
		{"identity", 0, 0, array},
		{"truncates tail", 0, 2, [5]int{9, 9, 1, 2, 3}},
		{"start at end", 5, 0, all},
		{"start far past end", math.MaxInt, 0, all},
		{"margin fills array", 0, 5, all},
		{"margin past array", 1, math.MaxInt, all},
		{"negative margin", 3, -4, [5]int{4, 5, 9, 9, 9}},
		{"negative start", math.MinInt, 1, [5]int{9, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, DriftToBegin(array, tc.start, tc.margin, 9))
		})
	}
}

func TestDriftToEnd(t *testing.T) {
	require.Equal(t, [7]int{42, 42, 0, 1, 2, 42, 42}, DriftToEnd(InitializeFrom[[7]int](identity), 3, 2, 42))
	require.Equal(t, [5]int{42, 42, 0, 1, 2}, DriftToEnd(InitializeFrom[[5]int](identity), 3, 0, 42))
	require.Equal(t, [4]int{0, 1, 2, 42}, DriftToEnd(InitializeFrom[[4]int](identity), 3, 1, 42))
}

func TestDriftToEndEdges(t *testing.T) {
	array := [5]int{1, 2, 3, 4, 5}
	all := [5]int{9, 9, 9, 9, 9}
	cases := []struct {
		name     string
		end      int
		margin   int
		expected [5]int
	}{
		{"identity", 5, 0, array},
		{"zero end", 0, 1, all},
		{"negative end", math.MinInt, 0, all},
		{"end past array", math.MaxInt, 0, array},
		{"drops leading elements", 5, 2, [5]int{3, 4, 5, 9, 9}},
		{"margin fills array", 3, 5, all},
		{"margin past array", 3, math.MaxInt, all},
		{"negative margin", 2, -1, [5]int{9, 9, 9, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, DriftToEnd(array, tc.end, tc.margin, 9))
		})
	}
}

// Drifting is a shortcut for slicing and superimposing onto a fill array.
func TestDriftMatchesSliceAndSuperimpose(t *testing.T) {
	fill := int8(-1)
	blank := InitializeFrom[[10]int8](func(int) int8 { return fill })
	condition := func(a [10]int8, s, m uint8) bool {
		start, margin := int(s%12), int(m%12)

		begin := DriftToBegin(a, start, margin, fill)
		tail := SliceRange[[10]int8](a[:], start, len(a), fill)
		if begin != Superimpose(blank, tail[:len(a)-min(start, len(a))], margin) {
			return false
		}

		end := min(start, len(a))
		moved := a[:end]
		return DriftToEnd(a, start, margin, fill) == Superimpose(blank, moved, len(a)-margin-end)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 1000}))
}

func TestDriftIntoSeparateBuffers(t *testing.T) {
	dst := make([]byte, 6)
	DriftToBeginInto(dst, []byte("abc"), 1, 2, '.')
	require.Equal(t, []byte("..bc.."), dst)

	DriftToEndInto(dst, []byte("abc"), 3, 1, '.')
	require.Equal(t, []byte("..abc."), dst)

	short := make([]byte, 2)
	DriftToEndInto(short, []byte("abcdef"), 6, 0, '.')
	require.Equal(t, []byte("ef"), short)
}
