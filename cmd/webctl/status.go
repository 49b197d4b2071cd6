package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/messages"
	"github.com/webctl-dev/webctl/internal/provision"
)

func newStatusCmd() *cobra.Command {
	var agentsFlag string
	var global bool

	cmd := &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}

			scope := agents.ScopeLocal
			if global {
				scope = agents.ScopeGlobal
			}
			targets, err := selectTargets(splitAgentsFlag(agentsFlag), scope)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if scope == agents.ScopeGlobal {
				_, _ = fmt.Fprint(out, messages.StatusHeaderGlobal)
			} else {
				_, _ = fmt.Fprintf(out, messages.StatusHeaderLocalFmt, root)
			}
			for _, target := range targets {
				printTargetStatus(out, target, root, scope)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&agentsFlag, "agents", "", messages.InitFlagAgents)
	cmd.Flags().BoolVar(&global, "global", false, messages.InitFlagGlobal)

	return cmd
}

// printTargetStatus reports one target's install state. Status never mutates
// the filesystem; problems are reported as lines, not errors, so every target
// gets a row.
func printTargetStatus(out io.Writer, target agents.Target, root string, scope agents.Scope) {
	path, err := target.Path(root, scope)
	if err != nil {
		if errors.Is(err, agents.ErrUnsupportedScope) {
			line := fmt.Sprintf(messages.StatusNoScopeFmt, scope)
			_, _ = fmt.Fprintf(out, messages.StatusLineFmt, messages.StatusAbsentLabel, target.ID, line)
			return
		}
		_, _ = fmt.Fprintf(out, messages.StatusErrFmt, color.RedString(messages.StatusFailLabel), target.ID, err)
		return
	}

	desired, err := provision.Render(target)
	if err != nil {
		_, _ = fmt.Fprintf(out, messages.StatusErrFmt, color.RedString(messages.StatusFailLabel), target.ID, err)
		return
	}
	marker := target.Format.Marker()
	state, err := provision.Scan(provision.RealSystem{}, path, marker)
	if err != nil {
		_, _ = fmt.Fprintf(out, messages.StatusErrFmt, color.RedString(messages.StatusFailLabel), target.ID, err)
		return
	}

	shown := path
	if scope == agents.ScopeLocal {
		if rel, relErr := filepath.Rel(root, path); relErr == nil {
			shown = rel
		}
	}

	var label, line string
	switch state.Kind {
	case provision.StateAbsent:
		label = messages.StatusAbsentLabel
		line = messages.StatusAbsent
	case provision.StateNoMarker:
		label = color.YellowString(messages.StatusWarnLabel)
		line = fmt.Sprintf(messages.StatusNotManagedFmt, shown)
	case provision.StateManaged:
		version := provision.BlockVersion(state, marker)
		if state.Hash == desired.Hash {
			label = color.GreenString(messages.StatusOKLabel)
			line = fmt.Sprintf(messages.StatusInstalledFmt, version)
		} else {
			label = color.YellowString(messages.StatusWarnLabel)
			line = fmt.Sprintf(messages.StatusOutdatedFmt, version)
		}
	case provision.StateConflict:
		label = color.RedString(messages.StatusFailLabel)
		line = fmt.Sprintf(messages.StatusConflictFmt, state.Reason, shown)
	}
	_, _ = fmt.Fprintf(out, messages.StatusLineFmt, label, target.ID, line)
}
