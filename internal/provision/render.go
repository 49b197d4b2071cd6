package provision

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"github.com/webctl-dev/webctl/internal/agents"
	"github.com/webctl-dev/webctl/internal/messages"
	"github.com/webctl-dev/webctl/internal/templates"
)

// SchemaVersion tags the begin marker of every rendered block. Bump it when
// the rendered content changes shape; detection matches on the
// version-independent marker prefix, so older blocks are still recognized
// and upgraded in place.
const SchemaVersion = "v1"

const (
	skillName        = "webctl"
	skillDescription = "Browse and interact with live web pages through the webctl CLI. " +
		"Use when a task needs to read a web page, fill a form, or verify rendered site content."
)

// Content is the rendered install payload for one target.
type Content struct {
	Target agents.Target
	// Preamble is written only on Create, ahead of the block. It carries the
	// YAML frontmatter for skill-file formats and stays untouched on Update.
	Preamble []byte
	// Block is the marker-delimited region webctl owns and replaces wholesale.
	Block []byte
	// Hash is the sha256 of Block, used for the Update/SkipUnchanged decision.
	Hash string
}

// Render produces the desired content for a target. Output is deterministic:
// the same target and SchemaVersion always yield byte-identical content.
func Render(target agents.Target) (Content, error) {
	body, err := renderBody(target.Format)
	if err != nil {
		return Content{}, fmt.Errorf(messages.ProvisionRenderFailedFmt, target.ID, err)
	}

	marker := target.Format.Marker()
	var block strings.Builder
	block.WriteString(marker.Begin(SchemaVersion))
	block.WriteString("\n")
	block.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		block.WriteString("\n")
	}
	block.WriteString(marker.End)
	block.WriteString("\n")

	content := Content{
		Target: target,
		Block:  []byte(block.String()),
	}
	content.Hash = HashBlock(content.Block)

	if target.Format == agents.FormatFrontmatterMarkdown {
		preamble, err := renderFrontmatter()
		if err != nil {
			return Content{}, fmt.Errorf(messages.ProvisionRenderFailedFmt, target.ID, err)
		}
		content.Preamble = preamble
	}
	return content, nil
}

// HashBlock returns the hex sha256 of a marker block.
func HashBlock(block []byte) string {
	sum := sha256.Sum256(block)
	return hex.EncodeToString(sum[:])
}

func renderBody(format agents.Format) (string, error) {
	path := "skills/webctl.md"
	if format == agents.FormatHashComment {
		path = "hints/webctl.txt"
	}
	data, err := templates.Read(path)
	if err != nil {
		return "", fmt.Errorf(messages.ProvisionReadTemplateFailedFmt, path, err)
	}
	return string(data), nil
}

// renderFrontmatter builds the YAML frontmatter header for skill-file formats.
// Encoding goes through yaml.Node so field order and folding are stable.
func renderFrontmatter() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "name"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: skillName},
		&yaml.Node{Kind: yaml.ScalarNode, Value: "description"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: skillDescription, Style: yaml.FoldedStyle},
	)

	var body strings.Builder
	encoder := yaml.NewEncoder(&body)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	var out strings.Builder
	out.WriteString("---\n")
	out.WriteString(strings.TrimSuffix(body.String(), "\n"))
	out.WriteString("\n---\n\n")
	return []byte(out.String()), nil
}
