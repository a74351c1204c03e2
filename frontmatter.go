package md2docx

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/nicholasgasior/md2docx-go/internal/docx"
)

// splitFrontMatter extracts a leading YAML, TOML or JSON front matter block.
// Input without front matter is returned unchanged with empty metadata.
func splitFrontMatter(text string) (Metadata, string, error) {
	var meta Metadata
	body, err := frontmatter.Parse(strings.NewReader(text), &meta)
	if err != nil {
		return Metadata{}, "", fmt.Errorf("parse front matter: %w", err)
	}
	return meta, string(body), nil
}

// applyMetadata copies non-empty metadata fields into the package properties.
func applyMetadata(props *docx.CoreProperties, meta Metadata) {
	if meta.Title != "" {
		props.Title = meta.Title
	}
	if meta.Author != "" {
		props.Creator = meta.Author
	}
	if meta.Subject != "" {
		props.Subject = meta.Subject
	}
	if meta.Description != "" {
		props.Description = meta.Description
	}
	if len(meta.Keywords) > 0 {
		props.Keywords = append([]string(nil), meta.Keywords...)
	}
}
