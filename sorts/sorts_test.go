package sorts

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellegous/stepsort/trace"
)

var names = []string{
	Bubble,
	Selection,
	Insertion,
	Merge,
	Quick,
	Heap,
	Counting,
}

// mustRun traces input with the named algorithm and default limits.
func mustRun(name string, input []int) []trace.Snapshot {
	steps, err := Run(name, input)
	if err != nil {
		panic(err)
	}
	return steps
}

func last(steps []trace.Snapshot) trace.Snapshot {
	return steps[len(steps)-1]
}

func TestLookup(t *testing.T) {
	for _, name := range names {
		a, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, a.Name)
	}

	a, ok := Lookup("  QuIcK ")
	require.True(t, ok)
	assert.Equal(t, Quick, a.Name)

	_, ok = Lookup("nonsense")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(names))
	for i, a := range all {
		assert.Equal(t, names[i], a.Name)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.TimeComplexity)
		assert.NotNil(t, a.Sort)
	}
}

func TestFallback(t *testing.T) {
	input := []int{9, 4, 7, 1, 1, 3}
	assert.Equal(t, mustRun(Bubble, input), mustRun("nonsense", input))
	assert.Equal(t, mustRun(Bubble, input), mustRun("", input))

	e := Engine{Fallback: Heap}
	a, ok := e.Resolve("nonsense")
	assert.False(t, ok)
	assert.Equal(t, Heap, a.Name)
	steps, err := e.Run("nonsense", input)
	require.NoError(t, err)
	assert.Equal(t, mustRun(Heap, input), steps)

	e = Engine{Fallback: "also-nonsense"}
	a, ok = e.Resolve("nonsense")
	assert.False(t, ok)
	assert.Equal(t, Bubble, a.Name)

	a, ok = e.Resolve("MERGE")
	assert.True(t, ok)
	assert.Equal(t, Merge, a.Name)
}

func TestEmptyInput(t *testing.T) {
	for _, name := range names {
		steps := mustRun(name, []int{})
		require.Len(t, steps, 2, name)
		for _, s := range steps {
			assert.NotNil(t, s.Array, name)
			assert.Empty(t, s.Array, name)
			assert.Empty(t, s.CurrentIndices, name)
			assert.Zero(t, s.Comparisons, name)
			assert.Zero(t, s.Swaps, name)
		}
	}

	steps := mustRun(Quick, nil)
	require.Len(t, steps, 2)
	assert.Equal(t, []int{}, last(steps).Array)
}

func TestSingleElement(t *testing.T) {
	for _, name := range names {
		steps := mustRun(name, []int{42})
		require.Len(t, steps, 2, name)
		assert.Equal(t, steps[0], steps[1], name)
		assert.Equal(t, []int{42}, steps[1].Array, name)
		assert.Zero(t, steps[1].Comparisons, name)
		assert.Zero(t, steps[1].Swaps, name)
	}
}

func TestInputNotModified(t *testing.T) {
	for _, name := range names {
		input := []int{5, -2, 9, 0, 3}
		mustRun(name, input)
		assert.Equal(t, []int{5, -2, 9, 0, 3}, input, name)
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	for _, name := range names {
		steps := mustRun(name, []int{4, 3, 2, 1})
		steps[0].Array[0] = 100
		for _, s := range steps[1:] {
			assert.NotEqual(t, 100, s.Array[0], name)
		}
	}
}

func TestBubble(t *testing.T) {
	steps := mustRun(Bubble, []int{3, 1, 2})
	require.Len(t, steps, 7)

	f := last(steps)
	assert.Equal(t, []int{1, 2, 3}, f.Array)
	assert.Equal(t, 3, f.Comparisons)
	assert.Equal(t, 2, f.Swaps)

	assert.Equal(t, []int{0, 1}, steps[1].CurrentIndices)
	assert.Equal(t, []int{3, 1, 2}, steps[1].Array)
	assert.Equal(t, []int{1, 3, 2}, steps[2].Array)
	assert.Equal(t, []int{1, 2}, steps[3].CurrentIndices)
	assert.Equal(t, []int{0, 1}, steps[5].CurrentIndices)
}

func TestBubbleSorted(t *testing.T) {
	f := last(mustRun(Bubble, []int{1, 2, 3, 4, 5}))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, f.Array)
	assert.Equal(t, 10, f.Comparisons)
	assert.Zero(t, f.Swaps)
}

func TestSelection(t *testing.T) {
	steps := mustRun(Selection, []int{5, 5, 5})
	f := last(steps)
	assert.Equal(t, []int{5, 5, 5}, f.Array)
	assert.Equal(t, 3, f.Comparisons)
	assert.Zero(t, f.Swaps)

	// indices track the running minimum, not the start of the scan.
	steps = mustRun(Selection, []int{3, 1, 2})
	assert.Equal(t, []int{0, 1}, steps[1].CurrentIndices)
	assert.Equal(t, []int{1, 2}, steps[2].CurrentIndices)
	assert.Equal(t, []int{0, 1}, steps[3].CurrentIndices)
	assert.Equal(t, []int{1, 3, 2}, steps[3].Array)
	f = last(steps)
	assert.Equal(t, []int{1, 2, 3}, f.Array)
	assert.Equal(t, 3, f.Comparisons)
	assert.Equal(t, 2, f.Swaps)
}

func TestInsertion(t *testing.T) {
	steps := mustRun(Insertion, []int{3, 1, 2})
	require.Len(t, steps, 11)

	indices := [][]int{
		{},
		{1}, {0, 1}, {0, 1}, {0},
		{2}, {1, 2}, {1, 2}, {0, 1}, {1},
		{},
	}
	for i, s := range steps {
		assert.Equal(t, indices[i], s.CurrentIndices, "step %d", i)
	}

	// shifts copy the larger neighbour right before the key is placed.
	assert.Equal(t, []int{3, 3, 2}, steps[3].Array)
	assert.Equal(t, []int{1, 3, 2}, steps[4].Array)
	assert.Equal(t, []int{1, 3, 3}, steps[7].Array)

	f := last(steps)
	assert.Equal(t, []int{1, 2, 3}, f.Array)
	assert.Equal(t, 3, f.Comparisons)
	assert.Equal(t, 2, f.Swaps)
}

func TestInsertionKeyInPlace(t *testing.T) {
	steps := mustRun(Insertion, []int{1, 2})
	// key, comparison, final. no placement step since the key never moved.
	require.Len(t, steps, 4)
	assert.Equal(t, []int{1}, steps[1].CurrentIndices)
	assert.Equal(t, []int{0, 1}, steps[2].CurrentIndices)
	assert.Zero(t, last(steps).Swaps)
}

func TestMerge(t *testing.T) {
	steps := mustRun(Merge, []int{3, 1, 2})

	assert.Equal(t, []int{0, 1, 2}, steps[1].CurrentIndices)
	assert.Nil(t, steps[1].Auxiliary)
	assert.Equal(t, []int{1, 2, 2}, steps[2].CurrentIndices)

	assert.Equal(t, []int{1, 2}, steps[3].CurrentIndices)
	assert.Equal(t, []int{1, 2}, steps[3].Auxiliary)

	// the outer merge shows both runs for its whole duration.
	assert.Equal(t, []int{0, 1, 2}, steps[6].CurrentIndices)
	for _, s := range steps[6:9] {
		assert.Equal(t, []int{3, 1, 2}, s.Auxiliary)
	}
	assert.Equal(t, []int{1, 1, 2}, steps[7].Array)
	assert.Equal(t, []int{0}, steps[7].CurrentIndices)
	assert.Equal(t, []int{1, 2, 3}, steps[9].Array)
	assert.Equal(t, []int{2}, steps[9].CurrentIndices)

	f := last(steps)
	assert.Len(t, steps, 11)
	assert.Equal(t, []int{1, 2, 3}, f.Array)
	assert.Equal(t, 3, f.Comparisons)
	assert.Equal(t, 5, f.Swaps)
	assert.Nil(t, f.Auxiliary)
}

func TestQuick(t *testing.T) {
	steps := mustRun(Quick, []int{3, 1, 2})
	require.Len(t, steps, 7)

	type expect struct {
		indices []int
		pivot   int
	}

	exp := []expect{
		{[]int{0, 2}, 2},
		{[]int{0, 2}, 2},
		{[]int{1, 2}, 2},
		{[]int{0, 1}, 2},
		{[]int{1, 2}, 1},
	}
	for i, e := range exp {
		s := steps[i+1]
		require.True(t, s.HasPivot(), "step %d", i+1)
		assert.Equal(t, e.pivot, *s.PivotIndex, "step %d", i+1)
		assert.Equal(t, e.indices, s.CurrentIndices, "step %d", i+1)
	}

	f := last(steps)
	assert.False(t, f.HasPivot())
	assert.Equal(t, []int{1, 2, 3}, f.Array)
	assert.Equal(t, 2, f.Comparisons)
	assert.Equal(t, 2, f.Swaps)
}

func TestQuickCountsSelfSwaps(t *testing.T) {
	f := last(mustRun(Quick, []int{1, 2}))
	assert.Equal(t, 1, f.Comparisons)
	assert.Equal(t, 2, f.Swaps)
}

func TestHeap(t *testing.T) {
	steps := mustRun(Heap, []int{3, 1, 2})

	indices := [][]int{
		{},
		{0, 1}, {0, 2},
		{0, 2}, {0, 1},
		{0, 1},
		{},
	}
	require.Len(t, steps, len(indices))
	for i, s := range steps {
		assert.Equal(t, indices[i], s.CurrentIndices, "step %d", i)
	}
	assert.Equal(t, []int{2, 1, 3}, steps[3].Array)

	f := last(steps)
	assert.Equal(t, []int{1, 2, 3}, f.Array)
	assert.Equal(t, 3, f.Comparisons)
	assert.Equal(t, 2, f.Swaps)
}

func TestHeapSiftsDown(t *testing.T) {
	steps := mustRun(Heap, []int{1, 3, 2})
	// build phase moves 3 to the root.
	assert.Equal(t, []int{0, 1}, steps[3].CurrentIndices)
	assert.Equal(t, []int{3, 1, 2}, steps[3].Array)
	assert.Equal(t, []int{1, 2, 3}, last(steps).Array)
}

func TestCounting(t *testing.T) {
	steps := mustRun(Counting, []int{4, 2, 7, 1})
	assert.Len(t, steps[1].Auxiliary, 7)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, steps[1].Auxiliary)

	f := last(steps)
	assert.Equal(t, []int{1, 2, 4, 7}, f.Array)
	assert.Equal(t, 4, f.Comparisons)
	assert.Equal(t, 4, f.Swaps)
	assert.Nil(t, f.Auxiliary)
}

// The placement phase shows placed output values over a prefix of the input,
// which does not correspond to any real in-place state. The zero at the front
// of the first placement step is an output slot that has not been filled yet.
func TestCountingPlacementDisplay(t *testing.T) {
	steps := mustRun(Counting, []int{3, 1, 2})
	require.Len(t, steps, 11)

	type expect struct {
		array   []int
		indices []int
		aux     []int
	}

	exp := []expect{
		{[]int{3, 1, 2}, []int{}, []int{0, 0, 0}},
		{[]int{3, 1, 2}, []int{0}, []int{0, 0, 1}},
		{[]int{3, 1, 2}, []int{1}, []int{1, 0, 1}},
		{[]int{3, 1, 2}, []int{2}, []int{1, 1, 1}},
		{[]int{3, 1, 2}, []int{}, []int{1, 2, 1}},
		{[]int{3, 1, 2}, []int{}, []int{1, 2, 3}},
		{[]int{0, 1, 2}, []int{1}, []int{1, 1, 3}},
		{[]int{1, 2, 2}, []int{0}, []int{0, 1, 3}},
		{[]int{1, 2, 3}, []int{2}, []int{0, 1, 2}},
	}
	for i, e := range exp {
		s := steps[i+1]
		assert.Equal(t, e.array, s.Array, "step %d", i+1)
		assert.Equal(t, e.indices, s.CurrentIndices, "step %d", i+1)
		assert.Equal(t, e.aux, s.Auxiliary, "step %d", i+1)
	}

	assert.Equal(t, 3, steps[6].Comparisons)
	assert.Zero(t, steps[6].Swaps)
	assert.Equal(t, 3, last(steps).Swaps)
}

func TestCountingNegative(t *testing.T) {
	steps := mustRun(Counting, []int{0, -3, 2, -3})
	assert.Len(t, steps[1].Auxiliary, 6)
	assert.Equal(t, []int{-3, -3, 0, 2}, last(steps).Array)
}

func TestCountingExtremeRange(t *testing.T) {
	for _, input := range [][]int{
		{math.MinInt, math.MaxInt},
		{-(math.MaxInt/2 + 1), math.MaxInt/2 + 1},
		{math.MaxInt, 0, math.MinInt + 1},
	} {
		_, err := CountingRange(input)
		assert.True(t, errors.Is(err, ErrRange), "%v", input)

		steps, err := Run(Counting, input)
		assert.True(t, errors.Is(err, ErrRange), "%v", input)
		assert.Nil(t, steps, "%v", input)
	}

	steps, err := Run(Counting, []int{0, DefaultMaxValueRange})
	assert.True(t, errors.Is(err, ErrRange))
	assert.EqualError(t, err, "value range too wide: span 1001 exceeds the limit of 1000")
	assert.Nil(t, steps)

	// other algorithms do not depend on the range
	steps, err = Run(Quick, []int{math.MaxInt, math.MinInt})
	require.NoError(t, err)
	assert.Equal(t, []int{math.MinInt, math.MaxInt}, last(steps).Array)
}

func TestCountingRange(t *testing.T) {
	tests := []struct {
		input []int
		span  int
	}{
		{nil, 0},
		{[]int{7}, 1},
		{[]int{4, 2, 7, 1}, 7},
		{[]int{0, -3, 2, -3}, 6},
		{[]int{math.MaxInt, 1}, math.MaxInt},
	}

	for _, test := range tests {
		span, err := CountingRange(test.input)
		require.NoError(t, err, "%v", test.input)
		assert.Equal(t, test.span, span, "%v", test.input)
	}

	a, _ := Lookup(Counting)
	assert.NoError(t, a.Check([]int{0, DefaultMaxValueRange - 1}, 0))
	assert.Error(t, a.Check([]int{0, 10}, 10))
	assert.NoError(t, a.Check([]int{0, 10}, 11))
	assert.NoError(t, a.Check([]int{math.MinInt}, 1))

	e := Engine{MaxValueRange: 4}
	_, err := e.Run(Counting, []int{1, 5})
	assert.True(t, errors.Is(err, ErrRange))
	steps, err := e.Run(Counting, []int{1, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, last(steps).Array)

	b, _ := Lookup(Bubble)
	assert.NoError(t, b.Check([]int{math.MinInt, math.MaxInt}, 1))
}
