package model

import (
	"fmt"
	"math"
)

// Rule rewrites every x in [Source, Source+Length) to x - Source + Destination.
type Rule struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// NewRule validates a (destination, source, length) triple.
func NewRule(destination, source, length uint64) (Rule, error) {
	if length == 0 {
		return Rule{}, ErrEmptyRange
	}

	if length > math.MaxUint64-source {
		return Rule{}, fmt.Errorf("%w: source %d length %d", ErrRangeOverflow, source, length)
	}

	if length > math.MaxUint64-destination {
		return Rule{}, fmt.Errorf("%w: destination %d length %d", ErrRangeOverflow, destination, length)
	}

	return Rule{Destination: destination, Source: source, Length: length}, nil
}

// SourceRange is the interval of inputs the rule claims.
func (r Rule) SourceRange() Range {
	return Range{Start: r.Source, Length: r.Length}
}

// DestinationRange is the interval the rule produces.
func (r Rule) DestinationRange() Range {
	return Range{Start: r.Destination, Length: r.Length}
}

// Overlaps reports whether both rules claim at least one common input.
func (r Rule) Overlaps(o Rule) bool {
	_, ok := r.SourceRange().Intersect(o.SourceRange())
	return ok
}

// TryMap returns the image of x, or false when x is outside the source interval.
func (r Rule) TryMap(x uint64) (uint64, bool) {
	if !r.SourceRange().Contains(x) {
		return 0, false
	}

	return x - r.Source + r.Destination, true
}

// TryMapRange splits in into the part covered by the rule, translated to the
// destination interval, and up to two uncovered leftovers (left first).
func (r Rule) TryMapRange(in Range) (mapped Range, ok bool, remainder []Range) {
	overlap, ok := in.Intersect(r.SourceRange())
	if !ok {
		if in.IsEmpty() {
			return Range{}, false, nil
		}

		return Range{}, false, []Range{in}
	}

	if in.Start < overlap.Start {
		remainder = append(remainder, span(in.Start, overlap.Start))
	}

	if overlap.End() < in.End() {
		remainder = append(remainder, span(overlap.End(), in.End()))
	}

	return overlap.Shift(r.Source, r.Destination), true, remainder
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.SourceRange(), r.DestinationRange())
}
