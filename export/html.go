package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"articleflow"

	"github.com/yuin/goldmark"
)

// HTML renders the article as a standalone page: head metadata from the
// chosen meta title/description, the body converted from Markdown, and
// the structured data inlined as a JSON-LD script tag.
func HTML(a *articleflow.AssembledArticle) (string, error) {
	body, err := bodyHTML(a)
	if err != nil {
		return "", err
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html lang=\"fr\">\n<head>\n")
	page.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(a.MetaTitle))
	if a.MetaDescription != "" {
		fmt.Fprintf(&page, "<meta name=\"description\" content=%q>\n", a.MetaDescription)
	}
	if a.StructuredData != "" {
		page.WriteString("<script type=\"application/ld+json\">\n")
		page.WriteString(a.StructuredData)
		page.WriteString("\n</script>\n")
	}
	page.WriteString("</head>\n<body>\n")
	page.WriteString(body)
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// bodyHTML converts the title, introduction and body to HTML.
func bodyHTML(a *articleflow.AssembledArticle) (string, error) {
	var md strings.Builder
	md.WriteString("# " + a.Title + "\n\n")
	if a.Introduction != "" {
		md.WriteString(a.Introduction + "\n\n")
	}
	md.WriteString(a.Body)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
