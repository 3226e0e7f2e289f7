package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/almanac/internal/domain"
	domainmocks "github.com/mouse-blink/almanac/internal/domain/mocks"
)

func TestInspectCmd_DefaultFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root, _ := newTestRoot(t, mockWorkflow, newInspectCmd)

	mockWorkflow.EXPECT().Inspect(mock.Anything, mock.MatchedBy(func(args domain.InspectArgs) bool {
		return args.Path == "almanac.txt" && args.Format == "table" && args.Out != nil
	})).Return(nil)

	root.SetArgs([]string{"inspect", "almanac.txt"})
	require.NoError(t, root.Execute())
}

func TestInspectCmd_Format(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root, _ := newTestRoot(t, mockWorkflow, newInspectCmd)

	mockWorkflow.EXPECT().Inspect(mock.Anything, mock.MatchedBy(func(args domain.InspectArgs) bool {
		return args.Format == "yaml" && args.AnySections
	})).Return(nil)

	root.SetArgs([]string{"inspect", "--any-sections", "-f", "yaml", "almanac.txt"})
	require.NoError(t, root.Execute())
}

func TestInspectCmd_EndToEndJSON(t *testing.T) {
	root, out := newTestRoot(t, nil, newInspectCmd)
	t.Setenv("ALMANAC_HISTORY_ENABLED", "false")

	root.SetArgs([]string{"inspect", "testdata/almanac.txt", "--format", "json"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), `"name": "seed-to-soil"`)
	assert.Contains(t, out.String(), `"to": "location"`)
}

func TestNewInspectCmd(t *testing.T) {
	cmd := newInspectCmd()

	assert.Equal(t, "inspect FILE", cmd.Use)
	assert.Equal(t, inspectLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}
