package domain

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	m "github.com/mouse-blink/almanac/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoStage = `seeds: 1 2

alpha-to-beta map:
10 0 5

beta-to-gamma map:
0 10 5
`

func TestParse_Example(t *testing.T) {
	almanac := loadExample(t)

	assert.Equal(t, []uint64{79, 14, 55, 13}, almanac.SeedValues())
	require.Equal(t, len(DefaultSections), almanac.Pipeline.Len())

	for i, stage := range almanac.Pipeline.Stages() {
		assert.Equal(t, DefaultSections[i], stage.Name())
	}

	first := almanac.Pipeline.Stages()[0].Rules()
	assert.Equal(t, []m.Rule{{Destination: 50, Source: 98, Length: 2}, {Destination: 52, Source: 50, Length: 48}}, first)
}

func TestParse_AnySections(t *testing.T) {
	almanac, err := ParseString(twoStage, WithAnySections())
	require.NoError(t, err)
	require.Equal(t, 2, almanac.Pipeline.Len())
	assert.Equal(t, "beta", almanac.Pipeline.Stages()[1].Source())

	got, err := almanac.Pipeline.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got)
}

func TestParse_WithSections(t *testing.T) {
	_, err := ParseString(twoStage, WithSections("alpha-to-beta", "beta-to-gamma"))
	require.NoError(t, err)

	_, err = ParseString(twoStage, WithSections("beta-to-gamma", "alpha-to-beta"))
	assert.ErrorIs(t, err, ErrUnexpectedSectionOrder)
}

func TestParse_ToleratesLayout(t *testing.T) {
	text := "seeds: 7\r\n\r\n\r\nalpha-to-beta map:\r\n1 7 1   \r\n\n\n"

	almanac, err := ParseString(text, WithAnySections())
	require.NoError(t, err)

	got, err := almanac.Pipeline.Apply(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestParse_EmptySection(t *testing.T) {
	almanac, err := ParseString("seeds: 4\n\nalpha-to-beta map:\n", WithAnySections())
	require.NoError(t, err)
	assert.Empty(t, almanac.Pipeline.Stages()[0].Rules())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		opts    []LoaderOption
		kind    ParseErrorKind
		want    error
		line    int
		section string
	}{
		{name: "empty input", text: "", kind: KindMissingSeedLine, want: ErrMissingSeedLine},
		{name: "no seed line", text: "seed-to-soil map:\n1 2 3\n", kind: KindMissingSeedLine, want: ErrMissingSeedLine, line: 1},
		{name: "seed line without seeds", text: "seeds:\n", kind: KindMalformedSeedLine, want: ErrMalformedSeedLine, line: 1},
		{name: "seed not a number", text: "seeds: 1 x 3\n", kind: KindMalformedSeedLine, want: ErrMalformedSeedLine, line: 1},
		{name: "negative seed", text: "seeds: -1\n", kind: KindMalformedSeedLine, want: ErrMalformedSeedLine, line: 1},
		{
			name: "header mismatch",
			text: "seeds: 1\n\nseed-to-dirt map:\n1 2 3\n",
			kind: KindMissingSectionHeader, want: ErrMissingSectionHeader, line: 3,
		},
		{
			name: "not a header",
			text: "seeds: 1\n\n1 2 3\n",
			kind: KindMissingSectionHeader, want: ErrMissingSectionHeader, line: 3,
		},
		{
			name: "sections missing at end",
			text: "seeds: 1\n\nseed-to-soil map:\n1 2 3\n",
			kind: KindMissingSectionHeader, want: ErrMissingSectionHeader,
		},
		{
			name: "known section out of order",
			text: "seeds: 1\n\nsoil-to-fertilizer map:\n1 2 3\n",
			kind: KindUnexpectedSectionOrder, want: ErrUnexpectedSectionOrder, line: 3,
		},
		{
			name: "extra section",
			text: twoStage + "\ngamma-to-delta map:\n",
			opts: []LoaderOption{WithSections("alpha-to-beta", "beta-to-gamma")},
			kind: KindUnexpectedSectionOrder, want: ErrUnexpectedSectionOrder, line: 9,
		},
		{
			name: "two numbers",
			text: "seeds: 1\n\nalpha-to-beta map:\n1 2\n",
			opts: []LoaderOption{WithAnySections()},
			kind: KindMalformedNumberLine, want: ErrMalformedNumberLine, line: 4, section: "alpha-to-beta",
		},
		{
			name: "not numbers",
			text: "seeds: 1\n\nalpha-to-beta map:\n1 2 three\n",
			opts: []LoaderOption{WithAnySections()},
			kind: KindMalformedNumberLine, want: ErrMalformedNumberLine, line: 4, section: "alpha-to-beta",
		},
		{
			name: "zero length rule",
			text: "seeds: 1\n\nalpha-to-beta map:\n1 2 0\n",
			opts: []LoaderOption{WithAnySections()},
			kind: KindMalformedNumberLine, want: m.ErrEmptyRange, line: 4, section: "alpha-to-beta",
		},
		{
			name: "overflowing rule",
			text: "seeds: 1\n\nalpha-to-beta map:\n1 18446744073709551615 2\n",
			opts: []LoaderOption{WithAnySections()},
			kind: KindMalformedNumberLine, want: m.ErrRangeOverflow, line: 4, section: "alpha-to-beta",
		},
		{
			name: "header directly after rules",
			text: "seeds: 1\n\nalpha-to-beta map:\n1 2 3\nbeta-to-gamma map:\n",
			opts: []LoaderOption{WithAnySections()},
			kind: KindMalformedNumberLine, want: ErrMalformedNumberLine, line: 5, section: "alpha-to-beta",
		},
		{
			name: "any sections still need headers",
			text: "seeds: 1\n\nalpha-to-beta:\n",
			opts: []LoaderOption{WithAnySections()},
			kind: KindMissingSectionHeader, want: ErrMissingSectionHeader, line: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			almanac, err := ParseString(tt.text, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, almanac)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.section, pe.Section)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseString("seeds: 1\n\nseed-to-dirt map:\n")
	require.Error(t, err)
	assert.Equal(t, `missing section header at line 3: expected "seed-to-soil", found "seed-to-dirt map:"`, err.Error())

	_, err = ParseString("seeds: 1\n\nseed-to-soil map:\n")
	require.Error(t, err)
	assert.Equal(t, `missing section header at end of input: expected "soil-to-fertilizer"`, err.Error())
}

func TestParse_Strict(t *testing.T) {
	text := "seeds: 1\n\nalpha-to-beta map:\n0 0 10\n5 5 10\n"

	_, err := ParseString(text, WithAnySections())
	require.NoError(t, err, "overlaps are only reported when a shared value is mapped")

	_, err = ParseString(text, WithAnySections(), WithStrict())
	assert.ErrorIs(t, err, ErrOverlap)

	_, err = ParseString(twoStage, WithAnySections(), WithStrict())
	assert.NoError(t, err)
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := iotest.ErrReader(boom)

	_, err := Parse(r)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, boom)

	r = iotest.TimeoutReader(strings.NewReader("seeds: 1\n\nseed-to-soil map:\n" + strings.Repeat("1 2 3\n", 2000)))
	_, err = Parse(r)
	assert.ErrorIs(t, err, ErrIO)
}

func TestAlmanac_SeedRanges_Unpaired(t *testing.T) {
	almanac, err := ParseString("seeds: 1 2 3\n\nalpha-to-beta map:\n", WithAnySections())
	require.NoError(t, err)

	_, err = almanac.SeedRanges()
	assert.ErrorIs(t, err, ErrMalformedSeedLine)
	assert.ErrorIs(t, err, m.ErrUnpairedSeeds)
}

func TestAlmanac_Document(t *testing.T) {
	doc := loadExample(t).Document("almanac.txt")

	assert.Equal(t, m.Path("almanac.txt"), doc.File)
	assert.Equal(t, []uint64{79, 14, 55, 13}, doc.Seeds)
	require.Len(t, doc.Stages, 7)
	assert.Equal(t, "humidity", doc.Stages[6].From)
	assert.Equal(t, "location", doc.Stages[6].To)
	assert.Equal(t, uint64(41), doc.Stages[6].Coverage)
	assert.Equal(t, m.RuleDocument{Destination: 60, Source: 56, Length: 37}, doc.Stages[6].Rules[0])
}
