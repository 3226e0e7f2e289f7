package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/almanac/internal/domain"
	domainmocks "github.com/mouse-blink/almanac/internal/domain/mocks"
)

func TestHistoryCmd_DefaultLimit(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root, _ := newTestRoot(t, mockWorkflow, newHistoryCmd)

	mockWorkflow.EXPECT().History(mock.Anything, domain.HistoryArgs{Limit: 20}).Return(nil)

	root.SetArgs([]string{"history"})
	require.NoError(t, root.Execute())
}

func TestHistoryCmd_Limit(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	root, _ := newTestRoot(t, mockWorkflow, newHistoryCmd)

	mockWorkflow.EXPECT().History(mock.Anything, domain.HistoryArgs{Limit: 5}).Return(nil)

	root.SetArgs([]string{"history", "-n", "5"})
	require.NoError(t, root.Execute())
}

func TestHistoryCmd_Disabled(t *testing.T) {
	root, _ := newTestRoot(t, nil, newHistoryCmd)
	t.Setenv("ALMANAC_HISTORY_ENABLED", "false")

	root.SetArgs([]string{"history"})
	assert.ErrorIs(t, root.Execute(), domain.ErrHistoryDisabled)
}

func TestHistoryCmd_RejectsArgs(t *testing.T) {
	root, _ := newTestRoot(t, domainmocks.NewMockWorkflow(t), newHistoryCmd)

	root.SetArgs([]string{"history", "extra"})
	assert.Error(t, root.Execute())
}
