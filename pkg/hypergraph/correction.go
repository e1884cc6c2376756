package hypergraph

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ExclusionSet holds the raw (pre-remap) vertex indices that must not appear
// in any output. It wraps a roaring bitmap; indices are 1-based positives.
type ExclusionSet struct {
	rb *roaring.Bitmap
}

// NewExclusionSet creates an exclusion set from the given raw indices.
// Duplicates collapse.
func NewExclusionSet(indices ...int) *ExclusionSet {
	es := &ExclusionSet{rb: roaring.New()}
	for _, idx := range indices {
		es.Add(idx)
	}
	return es
}

// Add marks a raw index as excluded.
func (es *ExclusionSet) Add(index int) {
	es.rb.Add(uint32(index))
}

// Contains reports whether index is excluded.
func (es *ExclusionSet) Contains(index int) bool {
	return es.rb.Contains(uint32(index))
}

// Len returns the number of excluded indices.
func (es *ExclusionSet) Len() int {
	return int(es.rb.GetCardinality())
}

// Max returns the largest excluded index, or 0 if the set is empty.
func (es *ExclusionSet) Max() int {
	if es.rb.IsEmpty() {
		return 0
	}
	return int(es.rb.Maximum())
}

// Indices returns the excluded indices in ascending order.
func (es *ExclusionSet) Indices() []int {
	out := make([]int, 0, es.Len())
	it := es.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// BuildCorrection computes the renumbering of retained indices after the
// excluded ones are dropped. Old indices 1..universeSize are scanned in
// order with a running correction counter, so retained index old maps to
// old - correction: survivors stay in relative order and land on a dense
// 1..M sequence.
//
// Excluded indices are absent from the result; callers must filter both
// endpoints of an edge against excluded before remapping either. An excluded
// index beyond universeSize (or below 1) is a caller contract violation and
// returns an error wrapping ErrInvalidInput.
func BuildCorrection(universeSize int, excluded *ExclusionSet) (map[int]int, error) {
	if universeSize < 0 {
		return nil, ValidationError{
			Field:   "universe_size",
			Message: "must be non-negative",
			Value:   fmt.Sprintf("%d", universeSize),
		}
	}
	if excluded == nil {
		excluded = NewExclusionSet()
	}
	if excluded.Contains(0) {
		return nil, ValidationError{
			Field:   "excluded",
			Message: "exclusion indices are 1-based",
			Value:   "0",
		}
	}
	if max := excluded.Max(); max > universeSize {
		return nil, ValidationError{
			Field:   "excluded",
			Message: fmt.Sprintf("excluded index exceeds universe size %d", universeSize),
			Value:   fmt.Sprintf("%d", max),
		}
	}

	correction := 0
	mapping := make(map[int]int, universeSize-excluded.Len())
	for old := 1; old <= universeSize; old++ {
		if excluded.Contains(old) {
			correction++
			continue
		}
		mapping[old] = old - correction
	}
	return mapping, nil
}
