package imagegen

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	deaccent   = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	unsafeRune = regexp.MustCompile(`[^a-z0-9.-]+`)
	dashRuns   = regexp.MustCompile(`-{2,}`)
)

// SanitizeFilename turns a model-suggested filename into a safe asset
// name: accents are stripped, everything is lowercased, and any
// remaining unsafe characters collapse to single dashes.
//
//	"Broderie Éléphant.PNG" -> "broderie-elephant.png"
func SanitizeFilename(name string) string {
	if flat, _, err := transform.String(deaccent, name); err == nil {
		name = flat
	}
	name = strings.ToLower(name)
	name = unsafeRune.ReplaceAllString(name, "-")
	name = dashRuns.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
