package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"articleflow"
)

// Markdown returns the article as Markdown. withFrontMatter keeps the
// leading YAML block; CMSes that manage their own metadata take the
// document without it.
func Markdown(a *articleflow.AssembledArticle, withFrontMatter bool) string {
	doc := a.FullMarkdown
	if withFrontMatter {
		return doc
	}
	rest, ok := strings.CutPrefix(doc, "---\n")
	if !ok {
		return doc
	}
	if _, body, ok := strings.Cut(rest, "\n---\n"); ok {
		return strings.TrimLeft(body, "\n")
	}
	return doc
}

// WriteMarkdown writes the canonical full-Markdown document to path,
// creating parent directories as needed.
func WriteMarkdown(a *articleflow.AssembledArticle, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(a.FullMarkdown), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
