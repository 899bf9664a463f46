package articleflow

import (
	"fmt"
	"regexp"
	"strings"

	"articleflow/parse"
	"articleflow/store"
)

// ArticleImage is one illustration referenced by the assembled article.
type ArticleImage struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
}

// AssembledArticle is the final document broken into its parts plus the
// canonical full-Markdown rendering every exporter consumes.
type AssembledArticle struct {
	Title           string         `json:"title"`
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
	Introduction    string         `json:"introduction"`
	Body            string         `json:"body"`
	StructuredData  string         `json:"structuredData"`
	Images          []ArticleImage `json:"images"`
	FullMarkdown    string         `json:"fullMarkdown"`
}

// The introduction step emits two candidates under "## Introduction 1"
// and "## Introduction 2" headings. When the model skips the headings
// the whole raw text is used as-is.
var introSplit = regexp.MustCompile(`(?i)##\s*Introduction\s*\d`)

// AssembleArticle builds the final article from a project's step
// records and image assets. It is a pure function over persisted state;
// selections recorded at validation time win over fallbacks (project
// title, full raw text, filename as alt).
func AssembleArticle(p *store.Project, steps []*store.StepRecord, images []*store.ImageRecord) *AssembledArticle {
	byNumber := make(map[int]*store.StepRecord, len(steps))
	for _, rec := range steps {
		byNumber[rec.StepNumber] = rec
	}
	text := func(n int) string {
		if rec, ok := byNumber[n]; ok {
			return rec.OutputText
		}
		return ""
	}
	data := func(n int) *store.StepOutput {
		if rec, ok := byNumber[n]; ok {
			return rec.Output
		}
		return nil
	}

	title := p.Title
	if d := data(StepTitles); d != nil && d.SelectedText != "" {
		title = d.SelectedText
	}

	introduction := text(StepIntroduction)
	if d := data(StepIntroduction); d != nil && d.SelectedIndex != nil {
		parts := introCandidates(introduction)
		if idx := *d.SelectedIndex; idx >= 0 && idx < len(parts) {
			introduction = parts[idx]
		}
	}

	body := text(StepOptimize)

	metaTitle := title
	metaDescription := ""
	if d := data(StepMeta); d != nil {
		if d.SelectedMetaTitle != "" {
			metaTitle = d.SelectedMetaTitle
		}
		metaDescription = d.SelectedMetaDescription
	}

	structuredData := text(StepStructuredData)

	altMap := parse.AltTexts(text(StepAltTexts))
	var articleImages []ArticleImage
	for _, img := range images {
		if img.URL == "" || img.Filename == "" {
			continue
		}
		alt := altMap[img.Filename]
		if alt == "" {
			alt = img.AltText
		}
		if alt == "" {
			alt = img.Filename
		}
		articleImages = append(articleImages, ArticleImage{
			Filename: img.Filename,
			URL:      img.URL,
			Alt:      alt,
		})
	}

	a := &AssembledArticle{
		Title:           title,
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		Introduction:    introduction,
		Body:            body,
		StructuredData:  structuredData,
		Images:          articleImages,
	}
	a.FullMarkdown = buildFullMarkdown(a)
	return a
}

// introCandidates splits raw introduction output on its section
// markers. Without a recognizable marker the full text is the single
// candidate; a degraded split never blocks the operator.
func introCandidates(text string) []string {
	parts := splitNonEmpty(introSplit.Split(text, -1))
	if len(parts) == 0 && strings.TrimSpace(text) != "" {
		return []string{text}
	}
	return parts
}

func splitNonEmpty(parts []string) []string {
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// buildFullMarkdown renders the canonical document: front matter, title
// heading, introduction, body, then structured data as an HTML comment.
func buildFullMarkdown(a *AssembledArticle) string {
	var sections []string

	sections = append(sections, fmt.Sprintf("---\ntitle: %q\ndescription: %q\n---",
		a.MetaTitle, a.MetaDescription))
	sections = append(sections, "# "+a.Title)
	if a.Introduction != "" {
		sections = append(sections, a.Introduction)
	}
	if a.Body != "" {
		sections = append(sections, a.Body)
	}
	if a.StructuredData != "" {
		sections = append(sections, "<!-- Schema.org JSON-LD\n"+a.StructuredData+"\n-->")
	}
	return strings.Join(sections, "\n\n")
}
