package domain

import (
	"errors"
	"strings"

	m "github.com/mouse-blink/almanac/internal/model"
)

const categorySeparator = "-to-"

// Stage is one named category conversion made of rewrite rules. A value
// covered by no rule passes through unchanged.
type Stage struct {
	name  string
	from  string
	to    string
	rules []m.Rule
}

// NewStage copies rules into a stage. Names of the form "<from>-to-<to>"
// also declare the source and destination categories. Rules are not checked
// for disjointness here; overlaps surface from Validate or when a shared
// value is mapped.
func NewStage(name string, rules ...m.Rule) *Stage {
	s := &Stage{
		name:  name,
		rules: append([]m.Rule(nil), rules...),
	}

	if from, to, ok := strings.Cut(name, categorySeparator); ok && from != "" && to != "" {
		s.from, s.to = from, to
	}

	return s
}

// Name returns the declared section name.
func (s *Stage) Name() string { return s.name }

// Source returns the input category, empty when the name declares none.
func (s *Stage) Source() string { return s.from }

// Destination returns the output category, empty when the name declares none.
func (s *Stage) Destination() string { return s.to }

// Rules returns a copy of the rules in declaration order.
func (s *Stage) Rules() []m.Rule {
	return append([]m.Rule(nil), s.rules...)
}

// Coverage is the count of inputs claimed by at least one rule.
func (s *Stage) Coverage() uint64 {
	sources := make([]m.Range, 0, len(s.rules))
	for _, rule := range s.rules {
		sources = append(sources, rule.SourceRange())
	}

	return m.TotalLength(m.Coalesce(sources))
}

// Apply maps x through the only rule that claims it.
func (s *Stage) Apply(x uint64) (uint64, error) {
	var (
		image   uint64
		matches int
	)

	for _, rule := range s.rules {
		if y, ok := rule.TryMap(x); ok {
			image = y
			matches++
		}
	}

	switch matches {
	case 0:
		return x, nil
	case 1:
		return image, nil
	default:
		return 0, &OverlapError{Stage: s.name, Value: x, Matches: matches}
	}
}

// ApplyRange splits in along the rule boundaries and maps every piece.
// Pieces covered by no rule are returned unchanged. The output is not sorted.
func (s *Stage) ApplyRange(in m.Range) ([]m.Range, error) {
	if in.IsEmpty() {
		return nil, nil
	}

	if err := s.checkClaims(in); err != nil {
		return nil, err
	}

	pending := []m.Range{in}

	var out []m.Range

	for _, rule := range s.rules {
		if len(pending) == 0 {
			break
		}

		next := make([]m.Range, 0, len(pending)+1)

		for _, piece := range pending {
			mapped, ok, rest := rule.TryMapRange(piece)
			if ok {
				out = append(out, mapped)
			}

			next = append(next, rest...)
		}

		pending = next
	}

	return append(out, pending...), nil
}

// checkClaims fails when two rules claim a common part of in.
func (s *Stage) checkClaims(in m.Range) error {
	claims := make([]m.Range, 0, len(s.rules))

	for _, rule := range s.rules {
		claim, ok := in.Intersect(rule.SourceRange())
		if !ok {
			continue
		}

		for _, prev := range claims {
			if shared, ok := claim.Intersect(prev); ok {
				return s.overlapAt(shared.Start)
			}
		}

		claims = append(claims, claim)
	}

	return nil
}

func (s *Stage) overlapAt(x uint64) *OverlapError {
	matches := 0

	for _, rule := range s.rules {
		if rule.SourceRange().Contains(x) {
			matches++
		}
	}

	return &OverlapError{Stage: s.name, Value: x, Matches: matches}
}

// Conflicts lists one OverlapError per pair of rules sharing inputs.
func (s *Stage) Conflicts() []*OverlapError {
	var conflicts []*OverlapError

	for i := range s.rules {
		for j := i + 1; j < len(s.rules); j++ {
			shared, ok := s.rules[i].SourceRange().Intersect(s.rules[j].SourceRange())
			if ok {
				conflicts = append(conflicts, s.overlapAt(shared.Start))
			}
		}
	}

	return conflicts
}

// Validate checks that rule sources are pairwise disjoint.
func (s *Stage) Validate() error {
	conflicts := s.Conflicts()

	errs := make([]error, 0, len(conflicts))
	for _, c := range conflicts {
		errs = append(errs, c)
	}

	return errors.Join(errs...)
}
