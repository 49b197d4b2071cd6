package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "webctl"
	// RootShort is the short description for the root command.
	RootShort = "Control a headless browser from the command line"

	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Install webctl skill and prompt files for supported agent CLIs"
	InitLong  = "Install or update the webctl skill/prompt block for each selected agent CLI.\n" +
		"Existing user content is never modified outside the webctl-owned marker block."

	InitFlagAgents   = "Comma-separated agent ids to install (default: all standard agents)"
	InitFlagGlobal   = "Install into the user-wide location instead of the current project"
	InitFlagForce    = "Append the webctl block to files that exist without webctl markers"
	InitFlagDryRun   = "Report planned actions without writing any files"
	InitFlagDiff     = "Show a unified diff for planned updates"
	InitFlagDiffMax  = "Maximum diff lines shown per file"
	InitFlagWizard   = "Interactively choose agents and scope before installing"
	InitWizardNoTTY  = "the init wizard requires an interactive terminal"
	InitDryRunSuffix = " (dry run)"

	// AgentsUse is the agents command name.
	AgentsUse   = "agents"
	AgentsShort = "List supported agent CLIs and their install destinations"

	AgentsHeaderFmt     = "Supported agents (%d):\n"
	AgentsLineFmt       = "  %-14s %-10s local: %-40s global: %s\n"
	AgentsDefaultLabel  = "default"
	AgentsOnDemandLabel = "on-demand"
	AgentsNoPathLabel   = "-"

	// StatusUse is the status command name.
	StatusUse   = "status"
	StatusShort = "Report the webctl install state for each agent CLI"

	StatusOKLabel     = "[ OK ]"
	StatusAbsentLabel = "[ -- ]"
	StatusWarnLabel   = "[WARN]"
	StatusFailLabel   = "[FAIL]"

	StatusHeaderLocalFmt = "webctl install state (project %s):\n"
	StatusHeaderGlobal   = "webctl install state (global):\n"
	StatusLineFmt        = "  %s %-14s %s\n"
	StatusAbsent         = "not installed"
	StatusNotManagedFmt  = "file exists without webctl markers (%s)"
	StatusInstalledFmt   = "installed, up to date (%s)"
	StatusOutdatedFmt    = "installed, differs from current content (%s)"
	StatusConflictFmt    = "marker conflict: %s (%s)"
	StatusNoScopeFmt     = "no %s install location"
	StatusErrFmt         = "  %s %-14s error: %v\n"

	// WizardAgentsTitle asks which agents to provision.
	WizardAgentsTitle      = "Which agent CLIs should webctl provision?"
	WizardScopeTitle       = "Install globally (user-wide) instead of into this project?"
	WizardConfirmTitle     = "Install the webctl block for the selected agents now?"
	WizardCancelled        = "wizard cancelled"
	WizardNoSelection      = "no agents selected"
	WizardRequiresTerminal = "wizard requires an interactive terminal"
)
