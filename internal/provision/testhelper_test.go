package provision

import (
	"testing"

	"github.com/mitchellh/go-homedir"
)

// resetHomedirCache clears go-homedir's cached home so t.Setenv("HOME", ...)
// takes effect, and restores the cache state after the test.
func resetHomedirCache(t *testing.T) {
	t.Helper()
	homedir.Reset()
	t.Cleanup(homedir.Reset)
}
