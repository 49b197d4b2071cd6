package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/config"
	"github.com/webctl-dev/webctl/internal/messages"
	"github.com/webctl-dev/webctl/internal/provision"
	"github.com/webctl-dev/webctl/internal/terminal"
	"github.com/webctl-dev/webctl/internal/wizard"
)

var isTerminal = terminal.IsInteractive

var runWizard = func(defaults wizard.Selection) (wizard.Selection, error) {
	return wizard.Run(wizard.NewHuhUI(), defaults)
}

func newInitCmd() *cobra.Command {
	var agentsFlag string
	var global bool
	var force bool
	var dryRun bool
	var showDiff bool
	var useWizard bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Long:  messages.InitLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("global") {
				global = cfg.Init.Global
			}
			ids := splitAgentsFlag(agentsFlag)
			if ids == nil && len(cfg.Init.Agents) > 0 {
				ids = cfg.Init.Agents
			}

			if useWizard {
				if !isTerminal() {
					return errors.New(messages.InitWizardNoTTY)
				}
				selection, err := runWizard(wizardDefaults(ids, global))
				if err != nil {
					return err
				}
				ids = selection.AgentIDs
				global = selection.Global
			}

			scope := agents.ScopeLocal
			if global {
				scope = agents.ScopeGlobal
			}
			targets, err := selectTargets(ids, scope)
			if err != nil {
				return err
			}

			report, err := provision.Run(targets, provision.Options{
				Root:         root,
				Scope:        scope,
				Force:        force,
				DryRun:       dryRun,
				Diff:         showDiff,
				DiffMaxLines: diffLines,
				System:       provision.RealSystem{},
			})
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			if code := report.ExitCode(); code != provision.ExitOK {
				return &SilentExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&agentsFlag, "agents", "", messages.InitFlagAgents)
	cmd.Flags().BoolVar(&global, "global", false, messages.InitFlagGlobal)
	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.InitFlagDryRun)
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.InitFlagDiff)
	cmd.Flags().IntVar(&diffLines, "diff-lines", provision.DefaultDiffMaxLines, messages.InitFlagDiffMax)
	cmd.Flags().BoolVar(&useWizard, "wizard", false, messages.InitFlagWizard)

	return cmd
}

// splitAgentsFlag parses the comma-separated --agents value; nil means the
// flag was omitted and defaults apply.
func splitAgentsFlag(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// selectTargets resolves the target list. An explicit selection surfaces
// scope errors per target during the run; the built-in default selection is
// pre-filtered so agents without a location for the scope are left out
// rather than failing the whole run.
func selectTargets(ids []string, scope agents.Scope) ([]agents.Target, error) {
	if ids == nil {
		return agents.DefaultTargetsFor(scope), nil
	}
	return agents.ResolveList(ids)
}

func wizardDefaults(ids []string, global bool) wizard.Selection {
	if ids == nil {
		for _, target := range agents.DefaultTargets() {
			ids = append(ids, target.ID)
		}
	}
	return wizard.Selection{AgentIDs: ids, Global: global}
}

// printReport renders per-target outcome lines and a summary.
func printReport(out io.Writer, report *provision.Report) {
	if len(report.Results) == 0 {
		_, _ = fmt.Fprint(out, messages.ReportNothingPlanned)
		return
	}

	var created, updated, unchanged, skipped, failed int
	for _, result := range report.Results {
		if result.Failed() {
			failed++
			_, _ = fmt.Fprintf(out, messages.StatusErrFmt, color.RedString(messages.StatusFailLabel), result.Target.ID, result.Err)
			continue
		}
		label, line := actionLine(result)
		if report.DryRun {
			line += messages.InitDryRunSuffix
		}
		_, _ = fmt.Fprintf(out, messages.StatusLineFmt, label, result.Target.ID, line)
		if result.Diff != "" {
			_, _ = fmt.Fprintln(out, indent(result.Diff, "    "))
		}
		switch result.Action {
		case provision.ActionCreate:
			created++
		case provision.ActionUpdate:
			updated++
		case provision.ActionSkipUnchanged:
			unchanged++
		default:
			skipped++
		}
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, messages.ReportSummaryFmt, created, updated, unchanged, skipped, failed)
}

func actionLine(result provision.TargetResult) (label string, line string) {
	switch result.Action {
	case provision.ActionCreate, provision.ActionUpdate:
		return color.GreenString(messages.StatusOKLabel), result.Message
	case provision.ActionSkipUnchanged:
		return color.GreenString(messages.StatusOKLabel), result.Message
	case provision.ActionSkipExists:
		return color.YellowString(messages.StatusWarnLabel), result.Message
	case provision.ActionSkipConflict:
		return color.RedString(messages.StatusFailLabel), result.Message
	}
	return messages.StatusAbsentLabel, result.Message
}

func indent(text string, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
