package trace

// Snapshot is a single recorded instant of a sort. The slices it holds are
// owned by the snapshot and never alias the buffer being sorted.
type Snapshot struct {
	Array          []int `json:"array" yaml:"array"`
	Comparisons    int   `json:"comparisons" yaml:"comparisons"`
	Swaps          int   `json:"swaps" yaml:"swaps"`
	CurrentIndices []int `json:"current_indices" yaml:"current_indices"`

	// Auxiliary exposes state kept outside the main array, the two halves of
	// a merge or the counting table.
	Auxiliary []int `json:"auxiliary,omitempty" yaml:"auxiliary,omitempty"`

	// PivotIndex is only set by partition based sorts.
	PivotIndex *int `json:"pivot_index,omitempty" yaml:"pivot_index,omitempty"`
}

// HasPivot reports whether the snapshot carries a pivot index.
func (s *Snapshot) HasPivot() bool {
	return s.PivotIndex != nil
}

func clone(v []int) []int {
	c := make([]int, len(v))
	copy(c, v)
	return c
}
