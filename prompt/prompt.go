package prompt

import "regexp"

// Variables maps template token names to their values. Conventional keys
// are keyword, title, persona, brand, intents, research, questions,
// enrichedQuestions, plan, article, imagePrompts and metaData, but any
// word token works.
type Variables map[string]string

var token = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Interpolate substitutes {{name}} tokens from vars. Tokens with no
// entry in vars are preserved verbatim.
func Interpolate(template string, vars Variables) string {
	return token.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := vars[name]; ok {
			return v
		}
		return match
	})
}

// Template is a system/user prompt pair for one step.
type Template struct {
	System string
	User   string
}

// Built is the resolved prompt pair ready to send to the model.
type Built struct {
	System string
	User   string
}

// Override replaces the default templates for a step. Empty fields fall
// back to the default half.
type Override struct {
	System string
	User   string
}

// Build resolves the templates for stepNumber and interpolates vars.
// A non-nil override takes precedence, field by field, over the default.
// Steps without defaults (validation-only steps) resolve to empty
// templates unless overridden.
func Build(stepNumber int, vars Variables, override *Override) Built {
	def := Defaults[stepNumber]

	system := def.System
	user := def.User
	if override != nil {
		if override.System != "" {
			system = override.System
		}
		if override.User != "" {
			user = override.User
		}
	}

	return Built{
		System: Interpolate(system, vars),
		User:   Interpolate(user, vars),
	}
}
