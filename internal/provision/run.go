package provision

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/messages"
)

// Exit codes derived from a report. They are stable so scripts can branch on
// "nothing installed due to conflicts" separately from a crashed run.
const (
	// ExitOK means every target resolved to create/update/unchanged (or a
	// dry-run preview of those).
	ExitOK = 0
	// ExitFailed means at least one target hit an I/O or render failure.
	ExitFailed = 2
	// ExitSkipped means at least one target was skipped (conflict, or
	// foreign content without --force) and nothing failed outright.
	ExitSkipped = 3
)

// DefaultDiffMaxLines caps the per-file diff preview length.
const DefaultDiffMaxLines = 40

// Options controls a provisioning run.
type Options struct {
	// Root is the project directory used for local-scope destinations.
	Root  string
	Scope agents.Scope
	// Force widens Update permission to append into files without markers.
	Force bool
	// DryRun previews the plan without mutating the filesystem.
	DryRun bool
	// Diff renders a unified diff for planned updates.
	Diff         bool
	DiffMaxLines int
	System       System
}

// TargetResult is one report entry: the action taken (or previewed) for a
// single agent target, or the error that stopped that target alone.
type TargetResult struct {
	Target  agents.Target
	Path    string
	Action  Action
	Message string
	Diff    string
	Err     error
}

// Failed reports whether this target hit an error (as opposed to a skip).
func (r TargetResult) Failed() bool {
	return r.Err != nil
}

// Report collects per-target outcomes in selection order.
type Report struct {
	Results []TargetResult
	DryRun  bool
}

// ExitCode derives the process exit status from the aggregated outcomes.
func (r *Report) ExitCode() int {
	code := ExitOK
	for _, result := range r.Results {
		if result.Failed() {
			return ExitFailed
		}
		if result.Action == ActionSkipConflict || result.Action == ActionSkipExists {
			code = ExitSkipped
		}
	}
	return code
}

// Run provisions every target in order. Each target is independent: an error
// is recorded in its result and never aborts the remaining targets. The
// report preserves the input target order.
func Run(targets []agents.Target, opts Options) (*Report, error) {
	if opts.System == nil {
		return nil, errors.New(messages.ProvisionSystemRequired)
	}
	if opts.Scope == agents.ScopeLocal && opts.Root == "" {
		return nil, errors.New(messages.ProvisionRootRequired)
	}

	report := &Report{DryRun: opts.DryRun}
	for _, target := range targets {
		report.Results = append(report.Results, runTarget(target, opts))
	}
	return report, nil
}

// runTarget walks one target through resolve, scan, plan, and apply/preview.
func runTarget(target agents.Target, opts Options) TargetResult {
	result := TargetResult{Target: target}

	path, err := target.Path(opts.Root, opts.Scope)
	if err != nil {
		result.Err = err
		return result
	}
	result.Path = path

	desired, err := Render(target)
	if err != nil {
		result.Err = err
		return result
	}

	existing, err := Scan(opts.System, path, target.Format.Marker())
	if err != nil {
		result.Err = err
		return result
	}

	result.Action = PlanAction(existing, desired, opts.Force)
	result.Message = actionMessage(result.Action, displayPath(path, opts), existing)
	if opts.Diff && result.Action == ActionUpdate {
		result.Diff = updateDiff(displayPath(path, opts), existing, desired, opts.DiffMaxLines)
	}

	if opts.DryRun || !result.Action.Mutates() {
		return result
	}

	merged := merge(result.Action, existing, desired)
	if err := opts.System.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		result.Err = fmt.Errorf(messages.ProvisionFailedCreateDirFmt, path, err)
		return result
	}
	if err := opts.System.WriteFileAtomic(path, merged, 0o644); err != nil {
		result.Err = fmt.Errorf(messages.ProvisionFailedWriteFmt, path, err)
		return result
	}
	return result
}

func actionMessage(action Action, path string, existing FileState) string {
	switch action {
	case ActionCreate:
		return fmt.Sprintf(messages.ActionCreateFmt, path)
	case ActionUpdate:
		return fmt.Sprintf(messages.ActionUpdateFmt, path)
	case ActionSkipUnchanged:
		return fmt.Sprintf(messages.ActionSkipUnchangedFmt, path)
	case ActionSkipExists:
		return fmt.Sprintf(messages.ActionSkipExistsFmt, path)
	case ActionSkipConflict:
		return fmt.Sprintf(messages.ActionSkipConflictFmt, path, existing.Reason)
	}
	return path
}

// displayPath shortens local destinations to be root-relative for report
// output; global destinations stay absolute.
func displayPath(path string, opts Options) string {
	if opts.Scope != agents.ScopeLocal {
		return path
	}
	rel, err := filepath.Rel(opts.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// updateDiff renders a capped unified diff between the installed block (or
// whole file for forced appends) and the desired block.
func updateDiff(path string, existing FileState, desired Content, maxLines int) string {
	from := string(existing.Content)
	if existing.Kind == StateManaged {
		from = string(existing.Content[existing.Start:existing.End])
	}
	diff := udiff.Unified(
		fmt.Sprintf(messages.ReportDiffOldLabel, path),
		fmt.Sprintf(messages.ReportDiffNewLabel, path),
		from,
		string(desired.Block),
	)
	return truncateDiff(diff, maxLines)
}

func truncateDiff(diff string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	trimmed := strings.TrimRight(diff, "\n")
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) <= maxLines {
		return trimmed + "\n"
	}
	lines = append(lines[:maxLines], fmt.Sprintf(messages.ReportDiffTruncated, maxLines))
	return strings.Join(lines, "\n") + "\n"
}
