// Package sorts implements the instrumented sorting routines. Each routine
// sorts a buffer in place and reports every comparison, swap, partition,
// merge and heap operation to a trace.Recorder so the run can be replayed
// step by step.
//
// Every snapshot holds a full copy of the array, so a trace costs
// O(steps * n) memory. For the quadratic sorts that is O(n^3) integers;
// callers serving interactive clients should cap the input length.
package sorts

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kellegous/stepsort/trace"
)

// Func sorts buf in place, reporting each step to rec. Routines never record
// the initial or final snapshot; Run does that.
type Func func(buf []int, rec *trace.Recorder)

// Algorithm describes one of the supported sorts.
type Algorithm struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	BestCase        string `json:"best_case"`
	Description     string `json:"description"`

	Sort Func `json:"-"`

	// rangeBound marks algorithms whose cost grows with the value range.
	rangeBound bool
}

// Names of the supported algorithms.
const (
	Bubble    = "bubble"
	Selection = "selection"
	Insertion = "insertion"
	Merge     = "merge"
	Quick     = "quick"
	Heap      = "heap"
	Counting  = "counting"
)

// DefaultAlgorithm is used whenever a name cannot be resolved.
const DefaultAlgorithm = Bubble

// DefaultMaxValueRange is the widest value range (max-min+1) counting sort
// accepts unless configured otherwise. Each prefix-sum step copies the whole
// count table, so a trace stores O(range^2) integers.
const DefaultMaxValueRange = 1000

// ErrRange is returned, wrapped, for input whose value range is too wide to
// trace.
var ErrRange = errors.New("value range too wide")

var algorithms = []*Algorithm{
	{
		Name:            Bubble,
		Title:           "Bubble Sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		BestCase:        "O(n) on already sorted input",
		Description:     "Walks the list comparing adjacent pairs and swapping those that are out of order, settling the largest remaining value at the end of each pass.",
		Sort:            bubbleSort,
	},
	{
		Name:            Selection,
		Title:           "Selection Sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		BestCase:        "O(n²) regardless of input order",
		Description:     "Repeatedly scans the unsorted suffix for its minimum and swaps it to the front of that suffix.",
		Sort:            selectionSort,
	},
	{
		Name:            Insertion,
		Title:           "Insertion Sort",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		BestCase:        "O(n) on nearly sorted input",
		Description:     "Grows a sorted prefix one element at a time by shifting larger values right until the new key fits.",
		Sort:            insertionSort,
	},
	{
		Name:            Merge,
		Title:           "Merge Sort",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(n)",
		BestCase:        "O(n log n) on any input",
		Description:     "Splits the range in half, sorts each half recursively and merges the two sorted halves back together.",
		Sort:            mergeSort,
	},
	{
		Name:            Quick,
		Title:           "Quick Sort",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(log n)",
		BestCase:        "O(n log n) with balanced partitions",
		Description:     "Partitions the range around its last element so smaller values land left of it, then sorts each side recursively.",
		Sort:            quickSort,
	},
	{
		Name:            Heap,
		Title:           "Heap Sort",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(1)",
		BestCase:        "O(n log n) on any input",
		Description:     "Arranges the array as a max heap, then repeatedly moves the root to the end and restores the heap on what is left.",
		Sort:            heapSort,
	},
	{
		Name:            Counting,
		Title:           "Counting Sort",
		TimeComplexity:  "O(n + k)",
		SpaceComplexity: "O(n + k)",
		BestCase:        "O(n + k) where k is the value range",
		Description:     "Counts occurrences of each value, turns the counts into positions and writes every element straight to its slot.",
		Sort:            countingSort,
		rangeBound:      true,
	},
}

var byName = func() map[string]*Algorithm {
	m := make(map[string]*Algorithm, len(algorithms))
	for _, a := range algorithms {
		m[a.Name] = a
	}
	return m
}()

// All returns the supported algorithms in presentation order.
func All() []Algorithm {
	res := make([]Algorithm, 0, len(algorithms))
	for _, a := range algorithms {
		res = append(res, *a)
	}
	return res
}

// Lookup finds an algorithm by name, ignoring case and surrounding space.
func Lookup(name string) (*Algorithm, bool) {
	a, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// CountingRange returns max-min+1 for buf, or an error wrapping ErrRange when
// that does not fit in an int. An empty buf has a range of zero.
func CountingRange(buf []int) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	lo, hi := bounds(buf)

	// hi >= lo, so the unsigned difference is exact even when hi-lo overflows.
	d := uint64(hi) - uint64(lo)
	if d >= uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d..%d overflows int", ErrRange, lo, hi)
	}

	return int(d) + 1, nil
}

// Engine resolves algorithm names and produces traces.
type Engine struct {
	// Fallback names the algorithm used when a requested name is unknown. An
	// empty or unknown Fallback means bubble sort.
	Fallback string

	// MaxValueRange caps max-min+1 for range-bound algorithms. Zero means
	// DefaultMaxValueRange.
	MaxValueRange int
}

// Resolve returns the algorithm for name and whether name was recognized.
// Unrecognized names resolve to the fallback rather than failing.
func (e *Engine) Resolve(name string) (*Algorithm, bool) {
	if a, ok := Lookup(name); ok {
		return a, true
	}

	if a, ok := Lookup(e.Fallback); ok {
		return a, false
	}

	return byName[DefaultAlgorithm], false
}

// Run sorts a copy of input with the named algorithm and returns the full
// trace. The input slice is never modified.
func (e *Engine) Run(name string, input []int) ([]trace.Snapshot, error) {
	a, _ := e.Resolve(name)
	return a.Run(input, e.MaxValueRange)
}

// Check reports whether input can be traced by a without exceeding
// maxRange, the widest value range a range-bound algorithm will accept. A
// maxRange of zero or less means DefaultMaxValueRange.
func (a *Algorithm) Check(input []int, maxRange int) error {
	if !a.rangeBound || len(input) <= 1 {
		return nil
	}

	if maxRange <= 0 {
		maxRange = DefaultMaxValueRange
	}

	span, err := CountingRange(input)
	if err != nil {
		return err
	}

	if span > maxRange {
		return fmt.Errorf("%w: span %d exceeds the limit of %d", ErrRange, span, maxRange)
	}

	return nil
}

// Run sorts a copy of input and returns the full trace. The first snapshot is
// always the untouched input with zero counters and the last is the sorted
// array with no indices. An error is returned, before any work is done, when
// the input fails Check.
func (a *Algorithm) Run(input []int, maxRange int) ([]trace.Snapshot, error) {
	if err := a.Check(input, maxRange); err != nil {
		return nil, err
	}

	buf := make([]int, len(input))
	copy(buf, input)

	rec := trace.NewRecorder(len(buf) * 4)
	rec.Record(buf)

	if len(buf) > 1 {
		a.Sort(buf, rec)
	}

	rec.Record(buf)
	return rec.Steps(), nil
}

// Run sorts input with the named algorithm using the default fallback and
// value range limit.
func Run(name string, input []int) ([]trace.Snapshot, error) {
	var e Engine
	return e.Run(name, input)
}
