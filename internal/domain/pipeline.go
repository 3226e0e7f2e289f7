package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/almanac/internal/model"
)

// Pipeline applies stages in declaration order.
type Pipeline struct {
	stages []*Stage
}

// NewPipeline builds a pipeline from stages in order.
func NewPipeline(stages ...*Stage) *Pipeline {
	return &Pipeline{stages: append([]*Stage(nil), stages...)}
}

// Stages returns the stages in order.
func (p *Pipeline) Stages() []*Stage {
	return append([]*Stage(nil), p.stages...)
}

// Len is the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Apply folds x through every stage.
func (p *Pipeline) Apply(x uint64) (uint64, error) {
	for _, stage := range p.stages {
		y, err := stage.Apply(x)
		if err != nil {
			return 0, err
		}

		x = y
	}

	return x, nil
}

// Trace records the value of seed after each stage.
func (p *Pipeline) Trace(seed uint64) (m.Trace, error) {
	trace := m.Trace{Seed: seed, Steps: make([]m.TraceStep, 0, len(p.stages))}

	x := seed
	for _, stage := range p.stages {
		y, err := stage.Apply(x)
		if err != nil {
			return trace, err
		}

		x = y
		trace.Steps = append(trace.Steps, m.TraceStep{Stage: stage.Name(), Value: x})
	}

	return trace, nil
}

// ApplyRanges folds a set of ranges through every stage. The working set is
// coalesced between stages, so the result is sorted and non-overlapping.
func (p *Pipeline) ApplyRanges(ranges []m.Range) ([]m.Range, error) {
	working := m.Coalesce(ranges)

	for _, stage := range p.stages {
		next := make([]m.Range, 0, len(working))

		for _, r := range working {
			pieces, err := stage.ApplyRange(r)
			if err != nil {
				return nil, err
			}

			next = append(next, pieces...)
		}

		working = m.Coalesce(next)
	}

	return working, nil
}

// MinimumOverValues maps every seed and returns the smallest result.
func (p *Pipeline) MinimumOverValues(seeds []uint64) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}

	lowest, err := p.Apply(seeds[0])
	if err != nil {
		return 0, err
	}

	for _, seed := range seeds[1:] {
		x, err := p.Apply(seed)
		if err != nil {
			return 0, err
		}

		lowest = min(lowest, x)
	}

	return lowest, nil
}

// MinimumOverRanges maps every seed range and returns the smallest start of
// the resulting ranges. Each rule is a translation, so the minimum of a
// mapped piece is always its start.
func (p *Pipeline) MinimumOverRanges(ranges []m.Range) (uint64, error) {
	out, err := p.ApplyRanges(ranges)
	if err != nil {
		return 0, err
	}

	if len(out) == 0 {
		return 0, ErrNoSeeds
	}

	// out is coalesced, so it is sorted by start.
	return out[0].Start, nil
}

// ChainErrors lists every pair of consecutive stages whose categories do not
// line up. Stages without declared categories are skipped.
func (p *Pipeline) ChainErrors() []*ChainError {
	var errs []*ChainError

	for i := 1; i < len(p.stages); i++ {
		prev, next := p.stages[i-1], p.stages[i]
		if prev.Destination() == "" || next.Source() == "" {
			continue
		}

		if prev.Destination() != next.Source() {
			errs = append(errs, &ChainError{
				Previous: prev.Name(),
				Next:     next.Name(),
				Produces: prev.Destination(),
				Consumes: next.Source(),
			})
		}
	}

	return errs
}

// CheckChain verifies that every stage consumes the category the previous
// one produces.
func (p *Pipeline) CheckChain() error {
	chain := p.ChainErrors()

	errs := make([]error, 0, len(chain))
	for _, err := range chain {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks every stage for overlapping rules and the stage chain.
func (p *Pipeline) Validate() error {
	errs := make([]error, 0, len(p.stages)+1)

	for _, stage := range p.stages {
		if err := stage.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := p.CheckChain(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid pipeline: %w", err)
	}

	return nil
}
