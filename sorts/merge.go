package sorts

import "github.com/kellegous/stepsort/trace"

func mergeSort(buf []int, rec *trace.Recorder) {
	mergeRange(buf, 0, len(buf), rec)
}

// mergeRange sorts buf[start:end].
func mergeRange(buf []int, start, end int, rec *trace.Recorder) {
	if end-start <= 1 {
		return
	}

	mid := (start + end) / 2
	rec.Record(buf, start, mid, end-1)

	mergeRange(buf, start, mid, rec)
	mergeRange(buf, mid, end, rec)
	merge(buf, start, mid, end, rec)
}

// merge combines the sorted runs buf[start:mid] and buf[mid:end]. The
// auxiliary buffer shown with every step is the two runs as they were before
// the merge began.
func merge(buf []int, start, mid, end int, rec *trace.Recorder) {
	halves := make([]int, end-start)
	copy(halves, buf[start:end])
	left, right := halves[:mid-start], halves[mid-start:]

	span := make([]int, 0, end-start)
	for k := start; k < end; k++ {
		span = append(span, k)
	}
	rec.RecordAux(buf, halves, span...)

	i, j, k := 0, 0, start
	place := func(v int) {
		buf[k] = v
		k++
		rec.Swap()
		rec.RecordAux(buf, halves, k-1)
	}

	for i < len(left) && j < len(right) {
		rec.Compare()
		// ties take from the left run, which keeps the sort stable.
		if left[i] <= right[j] {
			v := left[i]
			i++
			place(v)
		} else {
			v := right[j]
			j++
			place(v)
		}
	}

	for ; i < len(left); i++ {
		place(left[i])
	}

	for ; j < len(right); j++ {
		place(right[j])
	}
}
