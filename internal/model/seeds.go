package model

import (
	"errors"
	"fmt"
)

// SeedMode selects how the numbers on the seed line are read.
type SeedMode string

const (
	// SeedValues reads every number as one seed.
	SeedValues SeedMode = "values"
	// SeedRanges reads numbers pairwise as (start, length).
	SeedRanges SeedMode = "ranges"
	// SeedBoth solves both readings of the same line.
	SeedBoth SeedMode = "both"
)

// ErrUnpairedSeeds is returned when the range reading meets an odd count of numbers.
var ErrUnpairedSeeds = errors.New("seed ranges need an even count of numbers")

// ParseSeedMode accepts the names of the modes above.
func ParseSeedMode(s string) (SeedMode, error) {
	switch mode := SeedMode(s); mode {
	case SeedValues, SeedRanges, SeedBoth:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown seed mode %q (want values, ranges or both)", s)
	}
}

// Modes expands SeedBoth into the two concrete readings.
func (m SeedMode) Modes() []SeedMode {
	if m == SeedBoth {
		return []SeedMode{SeedValues, SeedRanges}
	}

	return []SeedMode{m}
}

// Seeds holds the numbers of the seed line in declaration order.
type Seeds struct {
	numbers []uint64
}

// NewSeeds copies numbers into a Seeds value.
func NewSeeds(numbers ...uint64) Seeds {
	return Seeds{numbers: append([]uint64(nil), numbers...)}
}

// Len is the count of declared numbers.
func (s Seeds) Len() int {
	return len(s.numbers)
}

// Values returns every number as an individual seed.
func (s Seeds) Values() []uint64 {
	return append([]uint64(nil), s.numbers...)
}

// Ranges reads the numbers as (start, length) pairs. Zero-length pairs hold no
// seeds and are skipped.
func (s Seeds) Ranges() ([]Range, error) {
	if len(s.numbers)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrUnpairedSeeds, len(s.numbers))
	}

	ranges := make([]Range, 0, len(s.numbers)/2)

	for i := 0; i < len(s.numbers); i += 2 {
		start, length := s.numbers[i], s.numbers[i+1]
		if length == 0 {
			continue
		}

		r, err := NewRange(start, length)
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2, err)
		}

		ranges = append(ranges, r)
	}

	return ranges, nil
}
