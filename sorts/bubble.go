package sorts

import "github.com/kellegous/stepsort/trace"

func bubbleSort(buf []int, rec *trace.Recorder) {
	n := len(buf)
	for i := 0; i < n; i++ {
		// the last i elements are already in place.
		for j := 0; j < n-i-1; j++ {
			rec.Compare()
			rec.Record(buf, j, j+1)

			if buf[j] > buf[j+1] {
				buf[j], buf[j+1] = buf[j+1], buf[j]
				rec.Swap()
				rec.Record(buf, j, j+1)
			}
		}
	}
}
