// Package version normalizes and classifies webctl build version strings.
package version

import (
	"fmt"
	"regexp"
	"strings"
)

var semverPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)$`)

// Normalize strips an optional leading "v" and validates X.Y.Z form.
func Normalize(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	match := semverPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", fmt.Errorf("version %q must be in the form vX.Y.Z or X.Y.Z", value)
	}
	return fmt.Sprintf("%s.%s.%s", match[1], match[2], match[3]), nil
}

// IsDev reports whether the build version is a development placeholder
// rather than a released semver.
func IsDev(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "dev") {
		return true
	}
	return !semverPattern.MatchString(trimmed)
}
