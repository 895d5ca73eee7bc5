package sorts

import "github.com/kellegous/stepsort/trace"

// insertionSort counts every shift of the sorted prefix as a swap.
func insertionSort(buf []int, rec *trace.Recorder) {
	for i := 1; i < len(buf); i++ {
		key := buf[i]
		rec.Record(buf, i)

		j := i - 1
		for j >= 0 {
			rec.Compare()
			rec.Record(buf, j, j+1)

			if buf[j] <= key {
				break
			}

			buf[j+1] = buf[j]
			rec.Swap()
			rec.Record(buf, j, j+1)
			j--
		}

		buf[j+1] = key
		if j+1 != i {
			rec.Record(buf, j+1)
		}
	}
}
