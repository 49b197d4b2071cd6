// Package templates embeds the skill and prompt bodies installed for agent CLIs.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templateFS embed.FS

// Read returns the contents of an embedded template by its path relative to
// the templates root, e.g. "skills/webctl.md".
func Read(path string) ([]byte, error) {
	return templateFS.ReadFile("templates/" + path)
}

// Walk walks the embedded template tree rooted at root.
func Walk(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(templateFS, "templates/"+root, fn)
}
