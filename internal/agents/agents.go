// Package agents holds the static descriptor table for supported agent CLIs:
// where each agent's webctl skill/prompt file lives, in which format, and
// which install scopes the agent supports.
package agents

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/webctl-dev/webctl/internal/messages"
)

// Scope selects between a project-local and a user-wide install location.
type Scope int

const (
	// ScopeLocal installs into the current project.
	ScopeLocal Scope = iota
	// ScopeGlobal installs into the user's home configuration.
	ScopeGlobal
)

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "local"
}

// Format describes how a destination file is structured, which in turn fixes
// the marker comment syntax webctl uses inside it.
type Format int

const (
	// FormatMarkdown is plain markdown; markers are HTML comments.
	FormatMarkdown Format = iota
	// FormatFrontmatterMarkdown is markdown with a YAML frontmatter header.
	FormatFrontmatterMarkdown
	// FormatHashComment is line-oriented text where '#' starts a comment
	// (goose hints, shell-style config).
	FormatHashComment
)

// Marker is the delimiter pair around the webctl-owned region of a file.
// BeginPrefix is version-independent so newer webctl builds recognize blocks
// written by older ones.
type Marker struct {
	BeginPrefix string
	End         string
}

// Begin returns the full begin line for the given content schema version.
func (m Marker) Begin(version string) string {
	return m.BeginPrefix + " " + version + m.beginSuffix()
}

func (m Marker) beginSuffix() string {
	if strings.HasPrefix(m.BeginPrefix, "<!--") {
		return " -->"
	}
	return ""
}

// Marker returns the delimiter pair for the format.
func (f Format) Marker() Marker {
	if f == FormatHashComment {
		return Marker{BeginPrefix: "# >>> webctl skills", End: "# <<< webctl skills"}
	}
	return Marker{BeginPrefix: "<!-- webctl:begin skills", End: "<!-- webctl:end skills -->"}
}

// Target describes one supported agent CLI.
type Target struct {
	ID         string
	Name       string
	Format     Format
	LocalPath  string // relative to the project root; empty when unsupported
	GlobalPath string // "~"-relative; empty when unsupported
	Default    bool   // part of the selection used when --agents is omitted
}

// ErrUnknownAgent reports an agent id missing from the descriptor table.
var ErrUnknownAgent = errors.New("unknown agent")

// ErrUnsupportedScope reports an agent/scope combination the agent's CLI has
// no file convention for.
var ErrUnsupportedScope = errors.New("unsupported scope")

// table is the full descriptor table. Adding an agent is a one-entry change;
// everything else dispatches on Format and the path fields.
var table = []Target{
	{
		ID:         "claude-code",
		Name:       "Claude Code",
		Format:     FormatFrontmatterMarkdown,
		LocalPath:  filepath.Join(".claude", "skills", "webctl", "SKILL.md"),
		GlobalPath: filepath.Join("~", ".claude", "skills", "webctl", "SKILL.md"),
		Default:    true,
	},
	{
		ID:         "gemini-cli",
		Name:       "Gemini CLI",
		Format:     FormatMarkdown,
		LocalPath:  "GEMINI.md",
		GlobalPath: filepath.Join("~", ".gemini", "GEMINI.md"),
		Default:    true,
	},
	{
		ID:        "copilot",
		Name:      "GitHub Copilot",
		Format:    FormatMarkdown,
		LocalPath: filepath.Join(".github", "copilot-instructions.md"),
		Default:   true,
	},
	{
		ID:         "codex",
		Name:       "Codex CLI",
		Format:     FormatMarkdown,
		LocalPath:  "AGENTS.md",
		GlobalPath: filepath.Join("~", ".codex", "AGENTS.md"),
		Default:    true,
	},
	{
		ID:         "goose",
		Name:       "Goose",
		Format:     FormatHashComment,
		LocalPath:  ".goosehints",
		GlobalPath: filepath.Join("~", ".config", "goose", ".goosehints"),
		Default:    true,
	},
	{
		// Pre-skill Claude prompt file; superseded by claude-code skills and
		// therefore only installed when named explicitly.
		ID:         "legacy-claude",
		Name:       "Claude (legacy prompt)",
		Format:     FormatMarkdown,
		LocalPath:  "CLAUDE.md",
		GlobalPath: filepath.Join("~", ".claude", "CLAUDE.md"),
		Default:    false,
	},
}

// All returns every known target in table order.
func All() []Target {
	return append([]Target(nil), table...)
}

// DefaultTargets returns the targets installed when no --agents filter is
// given. The legacy prompt target is excluded by policy.
func DefaultTargets() []Target {
	out := make([]Target, 0, len(table))
	for _, t := range table {
		if t.Default {
			out = append(out, t)
		}
	}
	return out
}

// DefaultTargetsFor returns the default targets that support the scope.
// A default selection never fails on scope; only explicitly named agents do.
func DefaultTargetsFor(scope Scope) []Target {
	out := make([]Target, 0, len(table))
	for _, t := range DefaultTargets() {
		if t.SupportsScope(scope) {
			out = append(out, t)
		}
	}
	return out
}

// Resolve looks up a target by id.
func Resolve(id string) (Target, error) {
	for _, t := range table {
		if t.ID == id {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf(messages.AgentsUnknownFmt+": %w", id, strings.Join(IDs(), ", "), ErrUnknownAgent)
}

// ResolveList resolves a list of agent ids, preserving input order and
// rejecting duplicates so the report order matches the user's selection.
func ResolveList(ids []string) ([]Target, error) {
	if len(ids) == 0 {
		return nil, errors.New(messages.AgentsEmptySelection)
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]Target, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf(messages.AgentsDuplicateFmt, id)
		}
		seen[id] = struct{}{}
		target, err := Resolve(id)
		if err != nil {
			return nil, err
		}
		out = append(out, target)
	}
	if len(out) == 0 {
		return nil, errors.New(messages.AgentsEmptySelection)
	}
	return out, nil
}

// IDs returns all known agent ids, sorted for stable error messages.
func IDs() []string {
	ids := make([]string, 0, len(table))
	for _, t := range table {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}

// SupportsScope reports whether the agent has a file convention for the scope.
func (t Target) SupportsScope(scope Scope) bool {
	if scope == ScopeGlobal {
		return t.GlobalPath != ""
	}
	return t.LocalPath != ""
}

// Path resolves the destination file for the scope. Local paths are joined
// under root; global paths expand the leading "~" via the user's home.
func (t Target) Path(root string, scope Scope) (string, error) {
	if !t.SupportsScope(scope) {
		return "", fmt.Errorf(messages.AgentsNoScopePathFmt+": %w", t.ID, scope, ErrUnsupportedScope)
	}
	if scope == ScopeGlobal {
		expanded, err := homedir.Expand(t.GlobalPath)
		if err != nil {
			return "", fmt.Errorf(messages.AgentsExpandGlobalFmt, t.ID, err)
		}
		return expanded, nil
	}
	return filepath.Join(root, t.LocalPath), nil
}
