package articleflow

import (
	"strings"
	"testing"

	"articleflow/store"
)

func TestAssembleArticle_SelectionsWin(t *testing.T) {
	p := &store.Project{Title: "Titre de travail"}
	steps := []*store.StepRecord{
		{StepNumber: StepTitles, Output: &store.StepOutput{SelectedText: "Titre choisi"}},
		{StepNumber: StepIntroduction,
			OutputText: "## Introduction 1\nPremière intro.\n\n## Introduction 2\nSeconde intro.",
			Output:     &store.StepOutput{SelectedIndex: intPtr(1)}},
		{StepNumber: StepOptimize, OutputText: "## Section\nCorps optimisé."},
		{StepNumber: StepMeta, Output: &store.StepOutput{
			SelectedMetaTitle:       "Meta titre",
			SelectedMetaDescription: "Meta description",
		}},
		{StepNumber: StepStructuredData, OutputText: `{"@type":"Article"}`},
		{StepNumber: StepAltTexts, OutputText: "Fichier: a.png\nAlt: tambour à broder"},
	}
	images := []*store.ImageRecord{
		{Filename: "a.png", URL: "/uploads/images/p/a.png", Status: store.ImageDone},
		{Filename: "skipped.png", URL: "", Status: store.ImagePending},
	}

	a := AssembleArticle(p, steps, images)

	if a.Title != "Titre choisi" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.Introduction != "Seconde intro." {
		t.Errorf("Introduction = %q", a.Introduction)
	}
	if a.MetaTitle != "Meta titre" || a.MetaDescription != "Meta description" {
		t.Errorf("meta = %q / %q", a.MetaTitle, a.MetaDescription)
	}
	if len(a.Images) != 1 {
		t.Fatalf("Images = %+v", a.Images)
	}
	if a.Images[0].Alt != "tambour à broder" {
		t.Errorf("Alt = %q", a.Images[0].Alt)
	}

	md := a.FullMarkdown
	for _, want := range []string{
		"title: \"Meta titre\"",
		"description: \"Meta description\"",
		"# Titre choisi",
		"Seconde intro.",
		"Corps optimisé.",
		"<!-- Schema.org JSON-LD",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("FullMarkdown missing %q:\n%s", want, md)
		}
	}
	// Front matter comes first, structured data last.
	if !strings.HasPrefix(md, "---\n") {
		t.Errorf("FullMarkdown does not start with front matter:\n%s", md)
	}
	if !strings.HasSuffix(md, "-->") {
		t.Errorf("FullMarkdown does not end with the structured-data comment:\n%s", md)
	}
}

func TestAssembleArticle_Fallbacks(t *testing.T) {
	p := &store.Project{Title: "Titre de travail"}
	steps := []*store.StepRecord{
		// No selection recorded for the introduction.
		{StepNumber: StepIntroduction, OutputText: "Texte brut des deux intros."},
		{StepNumber: StepOptimize, OutputText: "Corps."},
	}
	images := []*store.ImageRecord{
		{Filename: "b.png", URL: "/u/b.png", AltText: "alt stocké"},
		{Filename: "c.png", URL: "/u/c.png"},
	}

	a := AssembleArticle(p, steps, images)

	if a.Title != "Titre de travail" {
		t.Errorf("Title = %q, want project title fallback", a.Title)
	}
	if a.Introduction != "Texte brut des deux intros." {
		t.Errorf("Introduction = %q, want full raw text", a.Introduction)
	}
	if a.MetaTitle != "Titre de travail" {
		t.Errorf("MetaTitle = %q, want title fallback", a.MetaTitle)
	}
	if a.MetaDescription != "" {
		t.Errorf("MetaDescription = %q, want empty", a.MetaDescription)
	}
	if a.Images[0].Alt != "alt stocké" {
		t.Errorf("Alt = %q, want stored alt fallback", a.Images[0].Alt)
	}
	if a.Images[1].Alt != "c.png" {
		t.Errorf("Alt = %q, want filename fallback", a.Images[1].Alt)
	}
	if strings.Contains(a.FullMarkdown, "<!--") {
		t.Error("empty structured data should not emit a comment block")
	}
}
