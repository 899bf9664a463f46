package parse

import (
	"regexp"
	"strings"
)

var (
	numberedPrefix = regexp.MustCompile(`^\d+[.)]\s*`)
	numberedItem   = regexp.MustCompile(`^\d+[.)]\s*(.+)`)
	quoteEdges     = regexp.MustCompile(`^["«]|["»]$`)
	fileLabel      = regexp.MustCompile(`(?i)^[-*•]?\s*(?:Image|Fichier|File)\s*:\s*(.+)`)
	promptLabel    = regexp.MustCompile(`(?i)^[-*•]?\s*Prompt\s*:\s*(.+)`)
	altFileLabel   = regexp.MustCompile(`(?i)^[-*•]?\s*(?:Fichier|File)\s*:\s*(.+)`)
	altLabel       = regexp.MustCompile(`(?i)^[-*•]?\s*Alt\s*:\s*(.+)`)
)

// NumberedList extracts the items of a numbered list, one per line.
// Numbering may use "1." or "1)" style; blank lines are skipped and
// unnumbered lines are kept as-is.
//
//	"1. Premier titre\n2. Deuxième titre" -> ["Premier titre", "Deuxième titre"]
func NumberedList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item := strings.TrimSpace(numberedPrefix.ReplaceAllString(line, ""))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Meta holds the two candidate lists of a metadata step.
type Meta struct {
	Titles       []string
	Descriptions []string
}

// MetaOutput splits metadata output into title and description
// candidates. Section headers are recognized by keyword ("meta title",
// "titre", "description", in French or English); numbered items under a
// header join that section, with surrounding quotes and guillemets
// stripped. Items before any header are dropped.
func MetaOutput(text string) Meta {
	var m Meta

	const (
		secNone = iota
		secTitles
		secDescriptions
	)
	section := secNone

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "meta title") ||
			strings.Contains(lower, "titre") ||
			strings.Contains(lower, "title"):
			if strings.Contains(lower, "description") {
				section = secDescriptions
			} else {
				section = secTitles
			}
			continue
		case strings.Contains(lower, "description"):
			section = secDescriptions
			continue
		}

		match := numberedItem.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		item := strings.TrimSpace(quoteEdges.ReplaceAllString(match[1], ""))
		if item == "" {
			continue
		}
		switch section {
		case secTitles:
			m.Titles = append(m.Titles, item)
		case secDescriptions:
			m.Descriptions = append(m.Descriptions, item)
		}
	}
	return m
}

// ImagePrompt is one filename/prompt pair from an imagery step.
type ImagePrompt struct {
	Filename string
	Prompt   string
}

// ImagePrompts extracts labeled filename/prompt pairs. A pair starts at
// an "Image:", "Fichier:" or "File:" line, its prompt starts at the next
// "Prompt:" line, and bare lines after a prompt fold into it as
// continuations. Pairs missing either half are dropped.
func ImagePrompts(text string) []ImagePrompt {
	var (
		results  []ImagePrompt
		filename string
		prompt   string
	)

	flush := func() {
		if filename != "" && prompt != "" {
			results = append(results, ImagePrompt{
				Filename: strings.TrimSpace(filename),
				Prompt:   strings.TrimSpace(prompt),
			})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if match := fileLabel.FindStringSubmatch(trimmed); match != nil {
			flush()
			filename = strings.TrimSpace(match[1])
			prompt = ""
			continue
		}
		if match := promptLabel.FindStringSubmatch(trimmed); match != nil {
			prompt = strings.TrimSpace(match[1])
			continue
		}
		if filename != "" && prompt != "" && trimmed != "" && !strings.HasPrefix(trimmed, "-") {
			prompt += " " + trimmed
		}
	}
	flush()
	return results
}

// AltTexts extracts a filename to alt text mapping. A "Fichier:" or
// "File:" line names the file and the following "Alt:" line carries its
// text; files without an Alt line are omitted.
func AltTexts(text string) map[string]string {
	result := make(map[string]string)

	var file string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if match := altFileLabel.FindStringSubmatch(trimmed); match != nil {
			file = strings.TrimSpace(match[1])
			continue
		}
		if match := altLabel.FindStringSubmatch(trimmed); match != nil && file != "" {
			result[file] = strings.TrimSpace(match[1])
			file = ""
		}
	}
	return result
}
