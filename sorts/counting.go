package sorts

import "github.com/kellegous/stepsort/trace"

// bounds returns the smallest and largest values in a non-empty buf.
func bounds(buf []int) (int, int) {
	lo, hi := buf[0], buf[0]
	for _, v := range buf[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// countingSort sorts buf using a table of max-min+1 counters, so memory and
// time grow with the value range as well as the length. Since every prefix
// sum step records the whole table the trace holds O(range^2) integers;
// Algorithm.Check refuses ranges wider than the configured limit
// (DefaultMaxValueRange unless set) or too wide for an int before this runs.
// The comparison
// counter is used as an elements-processed counter; counting sort never
// compares two elements.
//
// During placement the recorded array is a display of progress rather than a
// real intermediate state: position p shows output[p] for the first n-i
// positions and the untouched input elsewhere, where i is the input index
// just placed.
func countingSort(buf []int, rec *trace.Recorder) {
	n := len(buf)
	if n == 0 {
		return
	}

	lo, hi := bounds(buf)
	count := make([]int, hi-lo+1)
	output := make([]int, n)

	rec.RecordAux(buf, count)

	for i, v := range buf {
		count[v-lo]++
		rec.Compare()
		rec.RecordAux(buf, count, i)
	}

	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
		rec.RecordAux(buf, count)
	}

	display := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		b := buf[i] - lo
		output[count[b]-1] = buf[i]
		count[b]--
		rec.Swap()

		copy(display, buf)
		copy(display, output[:n-i])
		rec.RecordAux(display, count, count[b])
	}

	copy(buf, output)
}
