package messages

// Provisioning messages shared by the planner, executor, and report rendering.
const (
	ProvisionRootRequired   = "project root is required"
	ProvisionSystemRequired = "system is required"

	ProvisionFailedReadFmt         = "failed to read %s: %w"
	ProvisionFailedWriteFmt        = "failed to write %s: %w"
	ProvisionFailedCreateDirFmt    = "failed to create directory for %s: %w"
	ProvisionRenderFailedFmt       = "failed to render %s content: %w"
	ProvisionReadTemplateFailedFmt = "failed to read embedded template %s: %w"

	// ActionCreateFmt and friends are per-target report lines.
	ActionCreateFmt        = "create %s"
	ActionUpdateFmt        = "update webctl block in %s"
	ActionSkipUnchangedFmt = "skip %s: already up to date"
	ActionSkipExistsFmt    = "skip %s: existing content without webctl markers (re-run with --force to append)"
	ActionSkipConflictFmt  = "skip %s: %s; remove the stray webctl markers and re-run"

	// ScanConflictDuplicateBegin and friends describe marker conflicts.
	ScanConflictDuplicateBegin = "duplicate webctl begin marker"
	ScanConflictDuplicateEnd   = "duplicate webctl end marker"
	ScanConflictMissingEnd     = "webctl begin marker without matching end marker"
	ScanConflictMissingBegin   = "webctl end marker without matching begin marker"
	ScanConflictEndBeforeBegin = "webctl end marker precedes begin marker"

	ReportSummaryFmt     = "%d installed, %d updated, %d unchanged, %d skipped, %d failed\n"
	ReportDiffTruncated  = "... (truncated to %d lines; re-run with --diff-lines <n> to see more)"
	ReportDiffOldLabel   = "%s (installed)"
	ReportDiffNewLabel   = "%s (desired)"
	ReportNothingPlanned = "no agents selected; nothing to do\n"

	// AgentsUnknownFmt rejects unrecognized --agents values.
	AgentsUnknownFmt        = "unknown agent %q (supported: %s)"
	AgentsDuplicateFmt      = "agent %q listed more than once"
	AgentsEmptySelection    = "at least one agent id is required"
	AgentsNoScopePathFmt  = "agent %s has no %s install location"
	AgentsExpandGlobalFmt = "failed to expand global path for agent %s: %w"

	// ConfigInvalidFmt wraps .webctl.toml parse failures.
	ConfigInvalidFmt  = "invalid config %s: %w"
	ConfigReadFmt     = "failed to read config %s: %w"
	ConfigUnknownKeys = "config %s contains unknown keys: %w"
)
