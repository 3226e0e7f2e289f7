// Package model defines the value types shared by the almanac pipeline.
package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyRange is returned when a range or rule is declared with zero length.
	ErrEmptyRange = errors.New("range length must be greater than zero")
	// ErrRangeOverflow is returned when start+length does not fit in a uint64.
	ErrRangeOverflow = errors.New("range end overflows uint64")
)

// Range is the half-open interval [Start, Start+Length).
type Range struct {
	Start  uint64
	Length uint64
}

// NewRange builds a non-empty range whose end fits in a uint64.
func NewRange(start, length uint64) (Range, error) {
	if length == 0 {
		return Range{}, ErrEmptyRange
	}

	if length > math.MaxUint64-start {
		return Range{}, fmt.Errorf("%w: start %d length %d", ErrRangeOverflow, start, length)
	}

	return Range{Start: start, Length: length}, nil
}

// span returns [start, end). Callers guarantee start <= end.
func span(start, end uint64) Range {
	return Range{Start: start, Length: end - start}
}

// End returns the exclusive upper bound.
func (r Range) End() uint64 {
	return r.Start + r.Length
}

// IsEmpty reports whether the range holds no values.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains reports whether x lies in the range.
func (r Range) Contains(x uint64) bool {
	return x >= r.Start && x-r.Start < r.Length
}

// Intersect returns the overlap of r and o, and false when they share no value.
func (r Range) Intersect(o Range) (Range, bool) {
	start := max(r.Start, o.Start)
	end := min(r.End(), o.End())

	if start >= end {
		return Range{}, false
	}

	return span(start, end), true
}

// Shift translates the range so that from maps onto to.
func (r Range) Shift(from, to uint64) Range {
	return Range{Start: r.Start - from + to, Length: r.Length}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}

// Coalesce sorts ranges and merges the ones that overlap or touch.
// Empty ranges are dropped. The input slice is not modified.
func Coalesce(ranges []Range) []Range {
	sorted := make([]Range, 0, len(ranges))

	for _, r := range ranges {
		if !r.IsEmpty() {
			sorted = append(sorted, r)
		}
	}

	if len(sorted) < 2 {
		return sorted
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := sorted[:1]

	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End() {
			if r.End() > last.End() {
				*last = span(last.Start, r.End())
			}

			continue
		}

		merged = append(merged, r)
	}

	return merged
}

// TotalLength sums the lengths of ranges, saturating at math.MaxUint64.
func TotalLength(ranges []Range) uint64 {
	var total uint64

	for _, r := range ranges {
		if r.Length > math.MaxUint64-total {
			return math.MaxUint64
		}

		total += r.Length
	}

	return total
}
