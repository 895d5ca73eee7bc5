package trace

// Counters are the cumulative operation counts of a single sort.
type Counters struct {
	Comparisons int
	Swaps       int
}

// Compare counts one comparison.
func (c *Counters) Compare() {
	c.Comparisons++
}

// Swap counts one swap or write.
func (c *Counters) Swap() {
	c.Swaps++
}

// Recorder accumulates snapshots, in emission order, for one sort invocation.
// It is not safe for concurrent use; each invocation gets its own.
type Recorder struct {
	Counters

	steps []Snapshot
}

// NewRecorder creates an empty Recorder. sizeHint is used to preallocate the
// step list and may be zero.
func NewRecorder(sizeHint int) *Recorder {
	return &Recorder{
		steps: make([]Snapshot, 0, sizeHint),
	}
}

// Record appends a snapshot of buf with the current counters.
func (r *Recorder) Record(buf []int, indices ...int) {
	r.add(buf, nil, nil, indices)
}

// RecordAux is identical to Record but also captures an auxiliary buffer.
func (r *Recorder) RecordAux(buf, aux []int, indices ...int) {
	if aux == nil {
		aux = []int{}
	}
	r.add(buf, aux, nil, indices)
}

// RecordPivot is identical to Record but also marks the pivot position.
func (r *Recorder) RecordPivot(buf []int, pivot int, indices ...int) {
	r.add(buf, nil, &pivot, indices)
}

func (r *Recorder) add(buf, aux []int, pivot *int, indices []int) {
	s := Snapshot{
		Array:          clone(buf),
		Comparisons:    r.Comparisons,
		Swaps:          r.Swaps,
		CurrentIndices: clone(indices),
	}

	if aux != nil {
		s.Auxiliary = clone(aux)
	}

	if pivot != nil {
		p := *pivot
		s.PivotIndex = &p
	}

	r.steps = append(r.steps, s)
}

// Len returns the number of snapshots recorded so far.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Steps returns the recorded trace. The Recorder should not be used after
// Steps is called since the caller now owns the slice.
func (r *Recorder) Steps() []Snapshot {
	return r.steps
}
