package main

import (
	"strings"
	"testing"
)

func TestStatusReportsAbsent(t *testing.T) {
	useProjectDir(t)

	out, err := runCLI(t, "status", "--agents", "codex")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "not installed") {
		t.Errorf("expected absent state:\n%s", out)
	}
}

func TestStatusReportsInstalled(t *testing.T) {
	useProjectDir(t)
	if out, err := runCLI(t, "init", "--agents", "codex"); err != nil {
		t.Fatalf("seed init: %v\n%s", err, out)
	}

	out, err := runCLI(t, "status", "--agents", "codex")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "installed, up to date (v1)") {
		t.Errorf("expected up-to-date state:\n%s", out)
	}
}

func TestStatusReportsOutdated(t *testing.T) {
	dir := useProjectDir(t)
	writeProjectFile(t, dir, "AGENTS.md",
		"<!-- webctl:begin skills v0 -->\nold body\n<!-- webctl:end skills -->\n")

	out, err := runCLI(t, "status", "--agents", "codex")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "differs from current content (v0)") {
		t.Errorf("expected outdated state:\n%s", out)
	}
}

func TestStatusReportsUnmanagedAndConflict(t *testing.T) {
	dir := useProjectDir(t)
	writeProjectFile(t, dir, "AGENTS.md", "# mine\n")
	writeProjectFile(t, dir, "GEMINI.md",
		"<!-- webctl:begin skills v1 -->\nno end marker\n")

	out, err := runCLI(t, "status", "--agents", "codex,gemini-cli")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "file exists without webctl markers (AGENTS.md)") {
		t.Errorf("expected unmanaged state:\n%s", out)
	}
	if !strings.Contains(out, "marker conflict:") {
		t.Errorf("expected conflict state:\n%s", out)
	}
}

func TestStatusGlobalHeaderAndScopeFiltering(t *testing.T) {
	useProjectDir(t)
	useHomeDir(t)

	out, err := runCLI(t, "status", "--global", "--agents", "copilot,codex")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "webctl install state (global):") {
		t.Errorf("expected global header:\n%s", out)
	}
	if !strings.Contains(out, "no global install location") {
		t.Errorf("expected scope note for copilot:\n%s", out)
	}
	if !strings.Contains(out, "not installed") {
		t.Errorf("expected absent state for codex:\n%s", out)
	}
}

func TestStatusNeverWrites(t *testing.T) {
	dir := useProjectDir(t)

	if out, err := runCLI(t, "status"); err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	entries := mustReadDir(t, dir)
	if len(entries) != 0 {
		t.Errorf("status created files: %v", entries)
	}
}
