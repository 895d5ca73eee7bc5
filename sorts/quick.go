package sorts

import "github.com/kellegous/stepsort/trace"

func quickSort(buf []int, rec *trace.Recorder) {
	quickRange(buf, 0, len(buf)-1, rec)
}

// quickRange sorts buf[low:high+1].
func quickRange(buf []int, low, high int, rec *trace.Recorder) {
	if low >= high {
		return
	}

	p := partition(buf, low, high, rec)
	quickRange(buf, low, p-1, rec)
	quickRange(buf, p+1, high, rec)
}

// partition is a Lomuto partition around buf[high]. It returns the final
// position of the pivot. Every exchange is counted, including those that
// swap an element with itself.
func partition(buf []int, low, high int, rec *trace.Recorder) int {
	pivot := buf[high]
	rec.RecordPivot(buf, high, low, high)

	i := low - 1
	for j := low; j < high; j++ {
		rec.Compare()
		rec.RecordPivot(buf, high, j, high)

		if buf[j] <= pivot {
			i++
			buf[i], buf[j] = buf[j], buf[i]
			rec.Swap()
			rec.RecordPivot(buf, high, i, j)
		}
	}

	buf[i+1], buf[high] = buf[high], buf[i+1]
	rec.Swap()
	rec.RecordPivot(buf, i+1, i+1, high)

	return i + 1
}
