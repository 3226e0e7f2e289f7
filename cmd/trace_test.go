package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/almanac/internal/domain"
	domainmocks "github.com/mouse-blink/almanac/internal/domain/mocks"
)

func TestTraceCmd_ParsesSeeds(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root, _ := newTestRoot(t, mockWorkflow, newTraceCmd)

	mockWorkflow.EXPECT().Trace(mock.Anything, mock.MatchedBy(func(args domain.TraceArgs) bool {
		return args.Path == "almanac.txt" && assert.ObjectsAreEqual([]uint64{79, 14}, args.Seeds)
	})).Return(nil)

	root.SetArgs([]string{"trace", "almanac.txt", "79", "14"})
	require.NoError(t, root.Execute())
}

func TestTraceCmd_NoSeeds(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root, _ := newTestRoot(t, mockWorkflow, newTraceCmd)

	mockWorkflow.EXPECT().Trace(mock.Anything, mock.MatchedBy(func(args domain.TraceArgs) bool {
		return len(args.Seeds) == 0
	})).Return(nil)

	root.SetArgs([]string{"trace", "almanac.txt"})
	require.NoError(t, root.Execute())
}

func TestTraceCmd_InvalidSeed(t *testing.T) {
	root, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newTraceCmd)

	root.SetArgs([]string{"trace", "almanac.txt", "abc"})
	err := root.Execute()

	require.Error(t, err)
}

func TestParseSeeds(t *testing.T) {
	seeds, err := parseSeeds([]string{"0", "18446744073709551615"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1<<64 - 1}, seeds)

	_, err = parseSeeds([]string{"12", "x"})
	assert.ErrorContains(t, err, `invalid seed "x"`)

	seeds, err = parseSeeds(nil)
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestTraceCmd_EndToEnd(t *testing.T) {
	root, out := newTestRoot(t, nil, newTraceCmd)
	t.Setenv("ALMANAC_HISTORY_ENABLED", "false")

	root.SetArgs([]string{"trace", "testdata/almanac.txt", "13"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "humidity-to-location")
	assert.Contains(t, out.String(), "35")
}
