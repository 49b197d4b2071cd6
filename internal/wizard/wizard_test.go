package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUI scripts the wizard interaction.
type fakeUI struct {
	selectResult  []string
	selectErr     error
	confirmValues []bool
	confirmErr    error
	confirmCalls  int
	seenOptions   []Option
}

func (f *fakeUI) MultiSelect(title string, options []Option, selected *[]string) error {
	f.seenOptions = options
	if f.selectErr != nil {
		return f.selectErr
	}
	*selected = f.selectResult
	return nil
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	if f.confirmCalls < len(f.confirmValues) {
		*value = f.confirmValues[f.confirmCalls]
	}
	f.confirmCalls++
	return nil
}

func TestRunReturnsSelectionInTableOrder(t *testing.T) {
	ui := &fakeUI{
		selectResult:  []string{"goose", "claude-code"},
		confirmValues: []bool{false, true},
	}

	selection, err := Run(ui, Selection{AgentIDs: []string{"claude-code"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"claude-code", "goose"}, selection.AgentIDs)
	assert.False(t, selection.Global)
}

func TestRunSeedsDefaults(t *testing.T) {
	ui := &fakeUI{
		selectResult:  []string{"codex"},
		confirmValues: []bool{true, true},
	}

	selection, err := Run(ui, Selection{AgentIDs: []string{"codex", "goose"}, Global: true})
	require.NoError(t, err)
	assert.True(t, selection.Global)

	var preselected []string
	for _, opt := range ui.seenOptions {
		if opt.Selected {
			preselected = append(preselected, opt.Value)
		}
	}
	assert.Equal(t, []string{"codex", "goose"}, preselected)
}

func TestRunListsLegacyTarget(t *testing.T) {
	ui := &fakeUI{
		selectResult:  []string{"legacy-claude"},
		confirmValues: []bool{false, true},
	}

	selection, err := Run(ui, Selection{})
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy-claude"}, selection.AgentIDs)
}

func TestRunEmptySelection(t *testing.T) {
	ui := &fakeUI{selectResult: nil}

	_, err := Run(ui, Selection{})
	require.Error(t, err)
}

func TestRunDeclinedConfirm(t *testing.T) {
	ui := &fakeUI{
		selectResult:  []string{"codex"},
		confirmValues: []bool{false, false},
	}

	_, err := Run(ui, Selection{})
	require.ErrorIs(t, err, ErrCancelled)
}

func TestRunUIErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	ui := &fakeUI{selectErr: boom}

	_, err := Run(ui, Selection{})
	require.ErrorIs(t, err, boom)
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	var selected []string
	err := ui.MultiSelect("title", []Option{{Label: "x", Value: "x"}}, &selected)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
