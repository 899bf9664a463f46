// Package testutil provides shared fixtures for engine tests.
package testutil

import (
	"context"
	"testing"

	"articleflow/store"
)

// SeedClient creates a client with a filled-in persona and brand.
func SeedClient(t *testing.T, st store.Store) *store.Client {
	t.Helper()

	c := &store.Client{
		Name: "Atelier Fil Rouge",
		Slug: "atelier-fil-rouge",
		Persona: &store.Persona{
			Name:       "Claire",
			Age:        34,
			Profession: "artisane brodeuse",
			Problems:   []string{"peu de visibilité en ligne"},
			Goals:      []string{"vendre ses créations", "fidéliser sa clientèle"},
			Tone:       "chaleureux",
		},
		Brand: &store.BrandGuidelines{
			Tone:           "artisanal et authentique",
			ForbiddenWords: []string{"pas cher", "low cost"},
			PreferredStyle: "tutoiement",
		},
	}
	if err := st.CreateClient(context.Background(), c); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

// SeedProject creates a project for the client with one step record per
// entry of stepNumbers.
func SeedProject(t *testing.T, st store.Store, clientID string, stepNumbers []int) *store.Project {
	t.Helper()

	p := &store.Project{
		ClientID:      clientID,
		Keyword:       "tendances broderie",
		SearchIntents: []string{"informational", "commercial"},
	}
	if err := st.CreateProject(context.Background(), p, stepNumbers); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

// FillStep writes output text on a step record and optionally marks it
// validated, bypassing the validation state machine for test setup.
func FillStep(t *testing.T, st store.Store, projectID string, stepNumber int, text string, validated bool) {
	t.Helper()

	ctx := context.Background()
	rec, err := st.Step(ctx, projectID, stepNumber)
	if err != nil {
		t.Fatalf("load step %d: %v", stepNumber, err)
	}
	rec.OutputText = text
	rec.Output = &store.StepOutput{Type: "text", Text: text}
	rec.Validated = validated
	if err := st.UpdateStep(ctx, rec); err != nil {
		t.Fatalf("fill step %d: %v", stepNumber, err)
	}
}
