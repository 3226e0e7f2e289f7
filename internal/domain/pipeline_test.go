package domain

import (
	"os"
	"testing"

	m "github.com/mouse-blink/almanac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExample(t *testing.T) *Almanac {
	t.Helper()

	f, err := os.Open("testdata/almanac.txt")
	require.NoError(t, err)

	defer func() { _ = f.Close() }()

	almanac, err := Parse(f)
	require.NoError(t, err)

	return almanac
}

func TestPipeline_MinimumOverValues_Example(t *testing.T) {
	almanac := loadExample(t)

	lowest, err := almanac.Pipeline.MinimumOverValues(almanac.SeedValues())
	require.NoError(t, err)
	assert.Equal(t, uint64(35), lowest)
}

func TestPipeline_MinimumOverRanges_Example(t *testing.T) {
	almanac := loadExample(t)

	ranges, err := almanac.SeedRanges()
	require.NoError(t, err)

	lowest, err := almanac.Pipeline.MinimumOverRanges(ranges)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), lowest)
}

func TestPipeline_Trace_Example(t *testing.T) {
	almanac := loadExample(t)

	tests := []struct {
		seed uint64
		want []uint64
	}{
		{seed: 79, want: []uint64{81, 81, 81, 74, 78, 78, 82}},
		{seed: 14, want: []uint64{14, 53, 49, 42, 42, 43, 43}},
		{seed: 55, want: []uint64{57, 57, 53, 46, 82, 82, 86}},
		{seed: 13, want: []uint64{13, 52, 41, 34, 34, 35, 35}},
	}

	for _, tt := range tests {
		trace, err := almanac.Pipeline.Trace(tt.seed)
		require.NoError(t, err)
		require.Len(t, trace.Steps, len(DefaultSections))

		for i, step := range trace.Steps {
			assert.Equal(t, DefaultSections[i], step.Stage)
			assert.Equal(t, tt.want[i], step.Value, "seed %d after %s", tt.seed, step.Stage)
		}

		final, err := almanac.Pipeline.Apply(tt.seed)
		require.NoError(t, err)
		assert.Equal(t, trace.Final(), final)
	}
}

func TestPipeline_ApplyRanges_AgreesWithApply(t *testing.T) {
	almanac := loadExample(t)

	for seed := uint64(0); seed < 120; seed++ {
		want, err := almanac.Pipeline.Apply(seed)
		require.NoError(t, err)

		got, err := almanac.Pipeline.ApplyRanges([]m.Range{{Start: seed, Length: 1}})
		require.NoError(t, err)
		assert.Equal(t, []m.Range{{Start: want, Length: 1}}, got, "seed %d", seed)
	}
}

func TestPipeline_ApplyRanges_MinimumMatchesBruteForce(t *testing.T) {
	almanac := loadExample(t)

	ranges, err := almanac.SeedRanges()
	require.NoError(t, err)

	var brute uint64 = 1<<64 - 1

	for _, r := range ranges {
		for x := r.Start; x < r.End(); x++ {
			y, err := almanac.Pipeline.Apply(x)
			require.NoError(t, err)

			brute = min(brute, y)
		}
	}

	out, err := almanac.Pipeline.ApplyRanges(ranges)
	require.NoError(t, err)
	assert.Equal(t, brute, out[0].Start)
	assert.Equal(t, m.TotalLength(ranges), m.TotalLength(out), "mapping is a bijection on disjoint inputs")
}

func TestPipeline_MonotonicMinimum(t *testing.T) {
	p := NewPipeline(NewStage("a-to-b", m.Rule{Destination: 1000, Source: 0, Length: 1 << 40}))

	lowest, err := p.MinimumOverRanges([]m.Range{{Start: 12345, Length: 1 << 30}})
	require.NoError(t, err)

	image, err := p.Apply(12345)
	require.NoError(t, err)
	assert.Equal(t, image, lowest)
}

func TestPipeline_HugeRangesStayTractable(t *testing.T) {
	almanac := loadExample(t)

	lowest, err := almanac.Pipeline.MinimumOverRanges([]m.Range{{Start: 0, Length: 1 << 62}})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), lowest)
}

func TestPipeline_NoSeeds(t *testing.T) {
	p := NewPipeline(seedToSoil())

	_, err := p.MinimumOverValues(nil)
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = p.MinimumOverRanges(nil)
	assert.ErrorIs(t, err, ErrNoSeeds)
}

func TestPipeline_OverlapAbortsWithStageName(t *testing.T) {
	p := NewPipeline(
		seedToSoil(),
		NewStage("soil-to-fertilizer",
			m.Rule{Destination: 0, Source: 0, Length: 100},
			m.Rule{Destination: 500, Source: 80, Length: 5},
		),
	)

	_, err := p.MinimumOverValues([]uint64{1, 79})

	var overlap *OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, "soil-to-fertilizer", overlap.Stage)
	assert.Equal(t, uint64(81), overlap.Value)

	_, err = p.MinimumOverRanges([]m.Range{{Start: 79, Length: 1}})
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, "soil-to-fertilizer", overlap.Stage)
}

func TestPipeline_CheckChain(t *testing.T) {
	require.NoError(t, loadExample(t).Pipeline.CheckChain())

	p := NewPipeline(
		NewStage("seed-to-soil"),
		NewStage("water-to-light"),
		NewStage("custom"),
		NewStage("light-to-location"),
	)

	err := p.CheckChain()

	var chain *ChainError
	require.ErrorAs(t, err, &chain)
	assert.ErrorIs(t, err, ErrBrokenChain)
	assert.Equal(t, "soil", chain.Produces)
	assert.Equal(t, "water", chain.Consumes)
}

func TestPipeline_ChainErrors(t *testing.T) {
	assert.Empty(t, loadExample(t).Pipeline.ChainErrors())

	p := NewPipeline(
		NewStage("seed-to-soil"),
		NewStage("water-to-light"),
		NewStage("light-to-heat"),
		NewStage("cold-to-location"),
	)

	errs := p.ChainErrors()
	require.Len(t, errs, 2)
	assert.Equal(t, "seed-to-soil", errs[0].Previous)
	assert.Equal(t, "water-to-light", errs[0].Next)
	assert.Equal(t, "heat", errs[1].Produces)
	assert.Equal(t, "cold", errs[1].Consumes)
}

func TestPipeline_Validate(t *testing.T) {
	require.NoError(t, loadExample(t).Pipeline.Validate())

	p := NewPipeline(
		NewStage("seed-to-soil", m.Rule{Destination: 0, Source: 0, Length: 5}, m.Rule{Destination: 9, Source: 4, Length: 1}),
		NewStage("water-to-light"),
	)

	err := p.Validate()
	assert.ErrorIs(t, err, ErrOverlap)
	assert.ErrorIs(t, err, ErrBrokenChain)
}
