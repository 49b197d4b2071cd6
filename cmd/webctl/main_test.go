package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"webctl", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"webctl", "unknown"}, &out, &out); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"webctl", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"webctl", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainGetwdError(t *testing.T) {
	orig := getwd
	t.Cleanup(func() { getwd = orig })
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	var out bytes.Buffer
	code := 0
	runMain([]string{"webctl", "init", "--dry-run"}, &out, &out, func(c int) { code = c })

	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "getwd failed") {
		t.Errorf("expected getwd error output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"webctl", "--version"}
	main()
}

func TestSilentExitErrorSuppressesOutput(t *testing.T) {
	var out bytes.Buffer
	code := 0
	err := &SilentExitError{Code: 3}
	if got := err.Error(); got != "exit 3" {
		t.Fatalf("unexpected error string %q", got)
	}

	// runMain must pass the code through without printing anything.
	origGetwd := getwd
	t.Cleanup(func() { getwd = origGetwd })
	dir := t.TempDir()
	getwd = func() (string, error) { return dir, nil }

	// A pre-existing unmarked file without --force yields skip-exists and
	// the skipped exit code.
	writeProjectFile(t, dir, "AGENTS.md", "# mine\n")
	runMain([]string{"webctl", "init", "--agents", "codex"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d\noutput: %s", code, out.String())
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	if got := versionString(); got != "1.2.3" {
		t.Errorf("expected bare version, got %q", got)
	}

	Commit = "abc1234"
	BuildDate = "2026-01-02"
	got := versionString()
	if !strings.Contains(got, "1.2.3") || !strings.Contains(got, "abc1234") || !strings.Contains(got, "2026-01-02") {
		t.Errorf("expected full version metadata, got %q", got)
	}
}
