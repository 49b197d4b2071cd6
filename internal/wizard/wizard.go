// Package wizard implements the interactive agent selection for `webctl init
// --wizard`. All interaction goes through the UI interface so tests drive the
// flow without a terminal.
package wizard

import (
	"errors"
	"fmt"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/messages"
)

// UI defines the interaction methods the wizard needs.
type UI interface {
	MultiSelect(title string, options []Option, selected *[]string) error
	Confirm(title string, value *bool) error
}

// Option is one selectable agent entry.
type Option struct {
	Label    string
	Value    string
	Selected bool
}

// Selection is the wizard outcome.
type Selection struct {
	AgentIDs []string
	Global   bool
}

// ErrCancelled reports that the user backed out of the wizard.
var ErrCancelled = errors.New(messages.WizardCancelled)

// Run walks the user through target and scope selection. defaults seeds the
// pre-checked entries; the returned selection preserves descriptor table
// order so repeated runs report targets consistently.
func Run(ui UI, defaults Selection) (Selection, error) {
	preselected := make(map[string]struct{}, len(defaults.AgentIDs))
	for _, id := range defaults.AgentIDs {
		preselected[id] = struct{}{}
	}

	all := agents.All()
	options := make([]Option, 0, len(all))
	for _, target := range all {
		_, selected := preselected[target.ID]
		options = append(options, Option{
			Label:    fmt.Sprintf("%s (%s)", target.Name, target.ID),
			Value:    target.ID,
			Selected: selected,
		})
	}

	var chosen []string
	if err := ui.MultiSelect(messages.WizardAgentsTitle, options, &chosen); err != nil {
		return Selection{}, err
	}
	if len(chosen) == 0 {
		return Selection{}, errors.New(messages.WizardNoSelection)
	}

	global := defaults.Global
	if err := ui.Confirm(messages.WizardScopeTitle, &global); err != nil {
		return Selection{}, err
	}

	confirmed := true
	if err := ui.Confirm(messages.WizardConfirmTitle, &confirmed); err != nil {
		return Selection{}, err
	}
	if !confirmed {
		return Selection{}, ErrCancelled
	}

	return Selection{AgentIDs: orderByTable(chosen), Global: global}, nil
}

// orderByTable reorders the chosen ids to descriptor table order.
func orderByTable(chosen []string) []string {
	chosenSet := make(map[string]struct{}, len(chosen))
	for _, id := range chosen {
		chosenSet[id] = struct{}{}
	}
	out := make([]string, 0, len(chosen))
	for _, target := range agents.All() {
		if _, ok := chosenSet[target.ID]; ok {
			out = append(out, target.ID)
		}
	}
	return out
}
