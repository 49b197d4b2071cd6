package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webctl-dev/webctl/internal/messages"
)

var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAgentsCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// resolveProjectRoot walks up from the working directory looking for a
// project anchor (.git or .webctl.toml). When none is found the working
// directory itself is the project root.
func resolveProjectRoot() (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for {
		for _, anchor := range []string{".git", ".webctl.toml"} {
			if _, err := os.Stat(filepath.Join(dir, anchor)); err == nil {
				return dir, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
