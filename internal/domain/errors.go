package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for loading and mapping almanacs.
var (
	// ErrIO indicates the almanac file could not be opened or read.
	ErrIO = errors.New("almanac i/o error")
	// ErrMissingSeedLine indicates the input does not start with a "seeds:" line.
	ErrMissingSeedLine = errors.New("missing seed line")
	// ErrMalformedSeedLine indicates the seed line holds something other than integers.
	ErrMalformedSeedLine = errors.New("malformed seed line")
	// ErrMissingSectionHeader indicates an expected "<name> map:" header was not found.
	ErrMissingSectionHeader = errors.New("missing section header")
	// ErrMalformedNumberLine indicates a rule line is not a valid integer triple.
	ErrMalformedNumberLine = errors.New("malformed number line")
	// ErrUnexpectedSectionOrder indicates a known section appeared out of place.
	ErrUnexpectedSectionOrder = errors.New("unexpected section order")
	// ErrOverlap indicates a value matched more than one rule of a stage.
	ErrOverlap = errors.New("overlapping rules")
	// ErrBrokenChain indicates consecutive stages whose categories do not line up.
	ErrBrokenChain = errors.New("broken stage chain")
	// ErrNoSeeds indicates there was nothing to map.
	ErrNoSeeds = errors.New("no seeds to map")
	// ErrInvalidAlmanac indicates validation found at least one issue.
	ErrInvalidAlmanac = errors.New("almanac has validation issues")
)

// ParseErrorKind classifies a parse failure for programmatic handling.
type ParseErrorKind string

// Parse error kinds, one per sentinel above.
const (
	KindMissingSeedLine        ParseErrorKind = "missing_seed_line"
	KindMalformedSeedLine      ParseErrorKind = "malformed_seed_line"
	KindMissingSectionHeader   ParseErrorKind = "missing_section_header"
	KindMalformedNumberLine    ParseErrorKind = "malformed_number_line"
	KindUnexpectedSectionOrder ParseErrorKind = "unexpected_section_order"
)

var kindSentinels = map[ParseErrorKind]error{
	KindMissingSeedLine:        ErrMissingSeedLine,
	KindMalformedSeedLine:      ErrMalformedSeedLine,
	KindMissingSectionHeader:   ErrMissingSectionHeader,
	KindMalformedNumberLine:    ErrMalformedNumberLine,
	KindUnexpectedSectionOrder: ErrUnexpectedSectionOrder,
}

// ParseError records where and why the almanac text was rejected.
type ParseError struct {
	Kind     ParseErrorKind
	Line     int    // 1-based, 0 when the input ended
	Section  string // section being read, if any
	Expected string
	Found    string
	Err      error // underlying cause, e.g. a strconv error
}

func (e *ParseError) Error() string {
	var b strings.Builder

	b.WriteString(kindSentinels[e.Kind].Error())

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	} else {
		b.WriteString(" at end of input")
	}

	if e.Section != "" {
		fmt.Fprintf(&b, " in %q", e.Section)
	}

	if e.Expected != "" {
		fmt.Fprintf(&b, ": expected %q", e.Expected)
		if e.Found != "" {
			fmt.Fprintf(&b, ", found %q", e.Found)
		}
	} else if e.Found != "" {
		fmt.Fprintf(&b, ": %q", e.Found)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	errs := []error{kindSentinels[e.Kind]}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// OverlapError reports a value claimed by more than one rule of a stage.
type OverlapError struct {
	Stage   string
	Value   uint64
	Matches int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("stage %q: value %d matched %d rules", e.Stage, e.Value, e.Matches)
}

// Unwrap returns ErrOverlap.
func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}

// ChainError reports two consecutive stages that do not connect.
type ChainError struct {
	Previous string
	Next     string
	Produces string
	Consumes string
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("stage %q produces %q but next stage %q consumes %q",
		e.Previous, e.Produces, e.Next, e.Consumes)
}

// Unwrap returns ErrBrokenChain.
func (e *ChainError) Unwrap() error {
	return ErrBrokenChain
}
