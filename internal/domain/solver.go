package domain

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/almanac/internal/model"
)

// Solver computes minimums across independent seed ranges with a bounded
// number of workers.
type Solver struct {
	pipeline *Pipeline
	workers  int
}

// NewSolver builds a Solver. Workers below 1 are treated as 1.
func NewSolver(pipeline *Pipeline, workers int) *Solver {
	return &Solver{pipeline: pipeline, workers: max(workers, 1)}
}

// Workers is the effective concurrency.
func (s *Solver) Workers() int {
	return s.workers
}

// ApplyRanges maps each range on its own worker and coalesces the union of
// the results. The first failure cancels the remaining work.
func (s *Solver) ApplyRanges(ctx context.Context, ranges []m.Range) ([]m.Range, error) {
	if s.workers == 1 || len(ranges) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return s.pipeline.ApplyRanges(ranges)
	}

	parts := make([][]m.Range, len(ranges))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, r := range ranges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := s.pipeline.ApplyRanges([]m.Range{r})
			if err != nil {
				return err
			}

			parts[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m.Coalesce(slices.Concat(parts...)), nil
}

// MinimumOverRanges is the smallest start among the mapped ranges.
func (s *Solver) MinimumOverRanges(ctx context.Context, ranges []m.Range) (uint64, error) {
	out, err := s.ApplyRanges(ctx, ranges)
	if err != nil {
		return 0, err
	}

	if len(out) == 0 {
		return 0, ErrNoSeeds
	}

	return out[0].Start, nil
}

// MinimumOverValues maps values in chunks, one chunk per worker.
func (s *Solver) MinimumOverValues(ctx context.Context, values []uint64) (uint64, error) {
	if s.workers == 1 || len(values) < 2 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		return s.pipeline.MinimumOverValues(values)
	}

	chunks := chunk(values, s.workers)
	lows := make([]uint64, len(chunks))
	found := make([]bool, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, part := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			low, err := s.pipeline.MinimumOverValues(part)
			if err != nil {
				return err
			}

			lows[i], found[i] = low, true

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return reduceMinimum(lows, found)
}

func reduceMinimum(lows []uint64, found []bool) (uint64, error) {
	var (
		lowest uint64
		seen   bool
	)

	for i, low := range lows {
		if !found[i] {
			continue
		}

		if !seen || low < lowest {
			lowest, seen = low, true
		}
	}

	if !seen {
		return 0, ErrNoSeeds
	}

	return lowest, nil
}

// chunk splits values into at most n contiguous parts of similar size.
func chunk(values []uint64, n int) [][]uint64 {
	size := (len(values) + n - 1) / n

	parts := make([][]uint64, 0, n)
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		parts = append(parts, values[start:end])
	}

	return parts
}
