package provision

// Action is the planner's decision for one target.
type Action int

const (
	// ActionCreate writes a new destination file.
	ActionCreate Action = iota
	// ActionUpdate replaces the managed block (or appends one under --force).
	ActionUpdate
	// ActionSkipUnchanged leaves an up-to-date install alone.
	ActionSkipUnchanged
	// ActionSkipExists refuses to touch a user-owned file without --force.
	ActionSkipExists
	// ActionSkipConflict refuses to touch a file with malformed or
	// duplicated markers regardless of flags.
	ActionSkipConflict
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionSkipUnchanged:
		return "skip-unchanged"
	case ActionSkipExists:
		return "skip-exists"
	case ActionSkipConflict:
		return "skip-conflict"
	}
	return "unknown"
}

// Mutates reports whether the action writes to the filesystem.
func (a Action) Mutates() bool {
	return a == ActionCreate || a == ActionUpdate
}

// PlanAction applies the merge decision table. force only ever widens
// permission to inject a block into a foreign file; it never downgrades a
// conflict into an overwrite. Dry-run is not a planning input: it changes
// whether the executor writes, not what it would do.
func PlanAction(existing FileState, desired Content, force bool) Action {
	switch existing.Kind {
	case StateAbsent:
		return ActionCreate
	case StateConflict:
		return ActionSkipConflict
	case StateNoMarker:
		if force {
			return ActionUpdate
		}
		return ActionSkipExists
	case StateManaged:
		if existing.Hash == desired.Hash {
			return ActionSkipUnchanged
		}
		return ActionUpdate
	}
	return ActionSkipConflict
}

// merge computes the full destination bytes for a mutating action.
func merge(action Action, existing FileState, desired Content) []byte {
	switch action {
	case ActionCreate:
		out := make([]byte, 0, len(desired.Preamble)+len(desired.Block))
		out = append(out, desired.Preamble...)
		return append(out, desired.Block...)
	case ActionUpdate:
		if existing.Kind == StateManaged {
			out := make([]byte, 0, len(existing.Content)-(existing.End-existing.Start)+len(desired.Block))
			out = append(out, existing.Content[:existing.Start]...)
			out = append(out, desired.Block...)
			return append(out, existing.Content[existing.End:]...)
		}
		// Forced append into a user-owned file: the original bytes stay as
		// an unmodified prefix, separated from the block by a blank line.
		out := append([]byte(nil), existing.Content...)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		return append(out, desired.Block...)
	}
	return nil
}
