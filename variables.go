package articleflow

import (
	"strconv"
	"strings"

	"articleflow/prompt"
	"articleflow/store"
)

// Sentinel values substituted when project data is missing. Operator
// content is French, so the placeholders are too.
const (
	personaUndefined   = "Non défini"
	intentsUnspecified = "Non spécifiées"
)

// ExtractVariables builds the prompt variable set for a project from its
// configuration and the validated output of earlier steps. Unvalidated
// or empty steps contribute nothing, so a prompt never sees draft text
// the operator has not signed off on.
func ExtractVariables(p *store.Project, c *store.Client, steps []*store.StepRecord) prompt.Variables {
	vars := prompt.Variables{
		"keyword": p.Keyword,
		"title":   p.Title,
	}
	if len(p.SearchIntents) > 0 {
		vars["intents"] = strings.Join(p.SearchIntents, ", ")
	} else {
		vars["intents"] = intentsUnspecified
	}

	if c != nil {
		vars["persona"] = formatPersona(c.Persona)
		vars["brand"] = formatBrand(c.Brand)
	} else {
		vars["persona"] = personaUndefined
		vars["brand"] = ""
	}

	for _, rec := range steps {
		if !rec.Validated || rec.OutputText == "" {
			continue
		}
		switch rec.StepNumber {
		case StepTitles:
			if rec.Output != nil && rec.Output.SelectedText != "" {
				vars["title"] = rec.Output.SelectedText
			}
		case StepResearch:
			vars["research"] = rec.OutputText
		case StepQuestions:
			vars["questions"] = rec.OutputText
		case StepIntentQuestions:
			vars["enrichedQuestions"] = rec.OutputText
		case StepPlan:
			vars["plan"] = rec.OutputText
		case StepArticle:
			vars["article"] = rec.OutputText
		case StepOptimize:
			// The optimized article replaces the raw draft.
			vars["article"] = rec.OutputText
		case StepImageTitles:
			vars["imagePrompts"] = rec.OutputText
		case StepMeta:
			vars["metaData"] = rec.OutputText
		}
	}
	return vars
}

func formatPersona(p *store.Persona) string {
	if p == nil {
		return personaUndefined
	}
	var parts []string
	if p.Name != "" {
		parts = append(parts, "Prénom : "+p.Name)
	}
	if p.Age > 0 {
		parts = append(parts, "Âge : "+strconv.Itoa(p.Age))
	}
	if p.Profession != "" {
		parts = append(parts, "Profession : "+p.Profession)
	}
	if len(p.Problems) > 0 {
		parts = append(parts, "Problèmes : "+strings.Join(p.Problems, ", "))
	}
	if len(p.Goals) > 0 {
		parts = append(parts, "Objectifs : "+strings.Join(p.Goals, ", "))
	}
	if p.Tone != "" {
		parts = append(parts, "Ton préféré : "+p.Tone)
	}
	if p.Description != "" {
		parts = append(parts, "Description : "+p.Description)
	}
	if len(parts) == 0 {
		return personaUndefined
	}
	return strings.Join(parts, "\n")
}

func formatBrand(b *store.BrandGuidelines) string {
	if b == nil {
		return ""
	}
	var parts []string
	if b.Tone != "" {
		parts = append(parts, "Ton de marque : "+b.Tone)
	}
	if b.PreferredStyle != "" {
		parts = append(parts, "Style : "+b.PreferredStyle)
	}
	if len(b.ForbiddenWords) > 0 {
		parts = append(parts, "Mots interdits : "+strings.Join(b.ForbiddenWords, ", "))
	}
	if b.AdditionalNotes != "" {
		parts = append(parts, "Notes : "+b.AdditionalNotes)
	}
	return strings.Join(parts, "\n")
}
