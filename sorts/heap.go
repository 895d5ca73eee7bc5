package sorts

import "github.com/kellegous/stepsort/trace"

func heapSort(buf []int, rec *trace.Recorder) {
	n := len(buf)

	for i := n/2 - 1; i >= 0; i-- {
		heapify(buf, n, i, rec)
	}

	for i := n - 1; i > 0; i-- {
		buf[0], buf[i] = buf[i], buf[0]
		rec.Swap()
		rec.Record(buf, 0, i)

		heapify(buf, i, 0, rec)
	}
}

// heapify sifts buf[i] down within the max heap buf[:size].
func heapify(buf []int, size, i int, rec *trace.Recorder) {
	largest := i
	left, right := 2*i+1, 2*i+2

	if left < size {
		rec.Compare()
		rec.Record(buf, i, left)
		if buf[left] > buf[largest] {
			largest = left
		}
	}

	if right < size {
		rec.Compare()
		rec.Record(buf, largest, right)
		if buf[right] > buf[largest] {
			largest = right
		}
	}

	if largest == i {
		return
	}

	buf[i], buf[largest] = buf[largest], buf[i]
	rec.Swap()
	rec.Record(buf, i, largest)

	heapify(buf, size, largest, rec)
}
