package provision

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/messages"
)

// StateKind classifies a destination file before planning.
type StateKind int

const (
	// StateAbsent means the destination file does not exist.
	StateAbsent StateKind = iota
	// StateNoMarker means the file exists but carries no webctl markers;
	// its content is treated as user-owned.
	StateNoMarker
	// StateManaged means the file contains exactly one well-formed
	// webctl marker pair.
	StateManaged
	// StateConflict means markers are present but malformed or duplicated.
	// The planner must skip such files; no automatic repair is attempted.
	StateConflict
)

// FileState is the scanner's view of a destination file.
type FileState struct {
	Kind    StateKind
	Content []byte
	// Start and End bound the managed block, including both marker lines
	// and the end marker's trailing newline. Valid only for StateManaged.
	Start int
	End   int
	// Hash is the sha256 of the managed block. Valid only for StateManaged.
	Hash string
	// Reason describes the conflict. Valid only for StateConflict.
	Reason string
}

// Scan reads the destination (if present) and locates the webctl marker pair.
// I/O failures other than absence are returned as errors; marker problems are
// reported through StateConflict so the caller can keep processing targets.
func Scan(sys System, path string, marker agents.Marker) (FileState, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileState{Kind: StateAbsent}, nil
		}
		return FileState{}, fmt.Errorf(messages.ProvisionFailedReadFmt, path, err)
	}

	begins, ends := findMarkerLines(data, marker)
	switch {
	case len(begins) == 0 && len(ends) == 0:
		return FileState{Kind: StateNoMarker, Content: data}, nil
	case len(begins) > 1:
		return conflict(data, messages.ScanConflictDuplicateBegin), nil
	case len(ends) > 1:
		return conflict(data, messages.ScanConflictDuplicateEnd), nil
	case len(begins) == 1 && len(ends) == 0:
		return conflict(data, messages.ScanConflictMissingEnd), nil
	case len(begins) == 0 && len(ends) == 1:
		return conflict(data, messages.ScanConflictMissingBegin), nil
	case ends[0].start < begins[0].start:
		return conflict(data, messages.ScanConflictEndBeforeBegin), nil
	}

	start := begins[0].start
	end := ends[0].end
	block := data[start:end]
	return FileState{
		Kind:    StateManaged,
		Content: data,
		Start:   start,
		End:     end,
		Hash:    HashBlock(block),
	}, nil
}

func conflict(data []byte, reason string) FileState {
	return FileState{Kind: StateConflict, Content: data, Reason: reason}
}

type lineSpan struct {
	start int // byte offset of the line start
	end   int // byte offset past the line, including its newline when present
}

// findMarkerLines locates lines that look like the begin or end marker.
// A begin line starts with the version-independent prefix; an end line must
// match the end marker exactly after trimming trailing whitespace.
func findMarkerLines(data []byte, marker agents.Marker) (begins []lineSpan, ends []lineSpan) {
	offset := 0
	content := string(data)
	for offset <= len(content) {
		lineEnd := strings.IndexByte(content[offset:], '\n')
		span := lineSpan{start: offset}
		var line string
		if lineEnd < 0 {
			line = content[offset:]
			span.end = len(content)
			offset = len(content) + 1
		} else {
			line = content[offset : offset+lineEnd]
			span.end = offset + lineEnd + 1
			offset = span.end
		}
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(trimmed, marker.BeginPrefix) {
			begins = append(begins, span)
		} else if trimmed == marker.End {
			ends = append(ends, span)
		}
		if lineEnd < 0 {
			break
		}
	}
	return begins, ends
}

// BlockVersion extracts the schema version recorded in a managed block's
// begin marker, or "" when the state is not managed.
func BlockVersion(state FileState, marker agents.Marker) string {
	if state.Kind != StateManaged {
		return ""
	}
	block := string(state.Content[state.Start:state.End])
	firstLine, _, _ := strings.Cut(block, "\n")
	rest := strings.TrimPrefix(strings.TrimRight(firstLine, " \t\r"), marker.BeginPrefix)
	rest = strings.TrimSuffix(rest, "-->")
	return strings.TrimSpace(rest)
}
