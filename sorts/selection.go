package sorts

import "github.com/kellegous/stepsort/trace"

func selectionSort(buf []int, rec *trace.Recorder) {
	n := len(buf)
	for i := 0; i < n; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			rec.Compare()
			rec.Record(buf, m, j)

			if buf[j] < buf[m] {
				m = j
			}
		}

		if m != i {
			buf[i], buf[m] = buf[m], buf[i]
			rec.Swap()
			rec.Record(buf, i, m)
		}
	}
}
