package main

// NOTE: Tests in this package mutate package-level globals (getwd, isTerminal,
// runWizard). Do not use t.Parallel(). Each test restores globals via
// t.Cleanup().

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// useProjectDir points the CLI's working directory at a fresh temp dir and
// returns it.
func useProjectDir(t *testing.T) string {
	t.Helper()
	orig := getwd
	t.Cleanup(func() { getwd = orig })
	dir := t.TempDir()
	getwd = func() (string, error) { return dir, nil }
	return dir
}

// useHomeDir redirects the user's home (and the go-homedir cache) to a fresh
// temp dir so global installs stay inside the test sandbox.
func useHomeDir(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return home
}

func writeProjectFile(t *testing.T, root string, rel string, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

func mustReadDir(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	return entries
}

func readProjectFile(t *testing.T, root string, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}
