package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// runBackends runs fn against every Store implementation.
func runBackends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "articleflow.db"))
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		fn(t, s)
	})
}

func newClient(t *testing.T, s Store, slug string) *Client {
	t.Helper()
	c := &Client{
		Name: "Atelier Broderie",
		Slug: slug,
		Persona: &Persona{
			Name:       "Claire",
			Age:        34,
			Profession: "artisane",
			Problems:   []string{"peu de visibilité en ligne"},
			Goals:      []string{"vendre ses créations"},
			Tone:       "chaleureux",
		},
	}
	if err := s.CreateClient(context.Background(), c); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	return c
}

func newProject(t *testing.T, s Store, clientID string) *Project {
	t.Helper()
	p := &Project{
		ClientID:      clientID,
		Keyword:       "tendances broderie",
		SearchIntents: []string{"informational"},
	}
	if err := s.CreateProject(context.Background(), p, []int{0, 1, 2, 3}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	return p
}

func TestStore_ClientLifecycle(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		c := newClient(t, s, "atelier-broderie")

		got, err := s.Client(ctx, c.ID)
		if err != nil {
			t.Fatalf("Client: %v", err)
		}
		if got.Persona == nil || got.Persona.Name != "Claire" {
			t.Errorf("persona not round-tripped: %+v", got.Persona)
		}

		bySlug, err := s.ClientBySlug(ctx, "atelier-broderie")
		if err != nil {
			t.Fatalf("ClientBySlug: %v", err)
		}
		if bySlug.ID != c.ID {
			t.Errorf("ClientBySlug ID = %q, want %q", bySlug.ID, c.ID)
		}

		got.Name = "Atelier Broderie & Fils"
		got.Brand = &BrandGuidelines{Tone: "artisanal", ForbiddenWords: []string{"cheap"}}
		if err := s.UpdateClient(ctx, got); err != nil {
			t.Fatalf("UpdateClient: %v", err)
		}
		again, err := s.Client(ctx, c.ID)
		if err != nil {
			t.Fatalf("Client after update: %v", err)
		}
		if again.Brand == nil || again.Brand.Tone != "artisanal" {
			t.Errorf("brand not round-tripped: %+v", again.Brand)
		}

		if err := s.DeleteClient(ctx, c.ID); err != nil {
			t.Fatalf("DeleteClient: %v", err)
		}
		if _, err := s.Client(ctx, c.ID); !IsNotFound(err) {
			t.Errorf("Client after delete = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_SlugConflict(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		newClient(t, s, "dupe")

		err := s.CreateClient(ctx, &Client{Name: "Other", Slug: "dupe"})
		if err != ErrSlugTaken {
			t.Fatalf("CreateClient duplicate slug = %v, want ErrSlugTaken", err)
		}

		other := newClient(t, s, "other")
		other.Slug = "dupe"
		if err := s.UpdateClient(ctx, other); err != ErrSlugTaken {
			t.Fatalf("UpdateClient to taken slug = %v, want ErrSlugTaken", err)
		}
	})
}

func TestStore_ProjectSeedsStepRecords(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		c := newClient(t, s, "seed")
		p := newProject(t, s, c.ID)

		if p.Status != StatusDraft {
			t.Errorf("status = %q, want %q", p.Status, StatusDraft)
		}

		steps, err := s.Steps(ctx, p.ID)
		if err != nil {
			t.Fatalf("Steps: %v", err)
		}
		if len(steps) != 4 {
			t.Fatalf("len(steps) = %d, want 4", len(steps))
		}
		for i, rec := range steps {
			if rec.StepNumber != i {
				t.Errorf("steps[%d].StepNumber = %d, want %d", i, rec.StepNumber, i)
			}
			if rec.Validated {
				t.Errorf("steps[%d] starts validated", i)
			}
		}
	})
}

func TestStore_StepRecordRoundTrip(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		c := newClient(t, s, "steps")
		p := newProject(t, s, c.ID)

		sel := 1
		now := time.Now()
		rec, err := s.Step(ctx, p.ID, 1)
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		rec.OutputText = "1. Premier titre\n2. Deuxième titre"
		rec.Output = &StepOutput{
			Type:          "choose",
			Options:       []string{"Premier titre", "Deuxième titre"},
			SelectedIndex: &sel,
			SelectedText:  "Deuxième titre",
		}
		rec.TokensUsed = 820
		rec.CostUSD = 0.0123
		rec.Validated = true
		rec.ValidatedAt = &now
		if err := s.UpdateStep(ctx, rec); err != nil {
			t.Fatalf("UpdateStep: %v", err)
		}

		got, err := s.Step(ctx, p.ID, 1)
		if err != nil {
			t.Fatalf("Step after update: %v", err)
		}
		if got.Output == nil || got.Output.SelectedIndex == nil || *got.Output.SelectedIndex != 1 {
			t.Errorf("selection not round-tripped: %+v", got.Output)
		}
		if got.Output.SelectedText != "Deuxième titre" {
			t.Errorf("SelectedText = %q", got.Output.SelectedText)
		}
		if !got.Validated || got.ValidatedAt == nil {
			t.Errorf("validation flags lost: validated=%v validatedAt=%v", got.Validated, got.ValidatedAt)
		}
		if got.TokensUsed != 820 {
			t.Errorf("TokensUsed = %d, want 820", got.TokensUsed)
		}
	})
}

func TestStore_AdvanceCursor(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		c := newClient(t, s, "cursor")
		p := newProject(t, s, c.ID)

		if err := s.AdvanceCursor(ctx, p.ID, 0, StatusInProgress); err != nil {
			t.Fatalf("AdvanceCursor: %v", err)
		}
		got, err := s.Project(ctx, p.ID)
		if err != nil {
			t.Fatalf("Project: %v", err)
		}
		if got.CurrentStep != 1 || got.Status != StatusInProgress {
			t.Errorf("cursor = (%d, %q), want (1, in_progress)", got.CurrentStep, got.Status)
		}

		// Re-validating an earlier step must not rewind the cursor.
		got.CurrentStep = 5
		if err := s.UpdateProject(ctx, got); err != nil {
			t.Fatalf("UpdateProject: %v", err)
		}
		if err := s.AdvanceCursor(ctx, p.ID, 2, StatusInProgress); err != nil {
			t.Fatalf("AdvanceCursor past-step: %v", err)
		}
		got, err = s.Project(ctx, p.ID)
		if err != nil {
			t.Fatalf("Project: %v", err)
		}
		if got.CurrentStep != 5 {
			t.Errorf("cursor rewound to %d, want 5", got.CurrentStep)
		}

		if err := s.AdvanceCursor(ctx, "missing", 0, StatusInProgress); !IsNotFound(err) {
			t.Errorf("AdvanceCursor missing project = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_OverrideVersioning(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		o := &PromptOverride{
			StepNumber:         6,
			StepName:           "Rédaction de l'article",
			SystemPrompt:       "Tu es un rédacteur SEO.",
			UserPromptTemplate: "Rédige un article sur {{keyword}}.",
		}
		if err := s.SaveOverride(ctx, o); err != nil {
			t.Fatalf("SaveOverride: %v", err)
		}
		if o.Version != 1 {
			t.Errorf("initial Version = %d, want 1", o.Version)
		}

		o2 := &PromptOverride{
			StepNumber:         6,
			StepName:           "Rédaction de l'article",
			SystemPrompt:       "Tu es un rédacteur SEO senior.",
			UserPromptTemplate: "Rédige un article détaillé sur {{keyword}}.",
		}
		if err := s.SaveOverride(ctx, o2); err != nil {
			t.Fatalf("SaveOverride update: %v", err)
		}
		if o2.Version != 2 {
			t.Errorf("updated Version = %d, want 2", o2.Version)
		}
		if o2.ID != o.ID {
			t.Errorf("update changed ID %q -> %q", o.ID, o2.ID)
		}

		active, err := s.ActiveOverride(ctx, 6)
		if err != nil {
			t.Fatalf("ActiveOverride: %v", err)
		}
		if active.SystemPrompt != "Tu es un rédacteur SEO senior." {
			t.Errorf("ActiveOverride returned stale prompt: %q", active.SystemPrompt)
		}

		if err := s.DeleteOverride(ctx, 6); err != nil {
			t.Fatalf("DeleteOverride: %v", err)
		}
		if _, err := s.ActiveOverride(ctx, 6); !IsNotFound(err) {
			t.Errorf("ActiveOverride after delete = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_UsageFilter(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		step := 6
		records := []*UsageRecord{
			{ProjectID: "p1", StepNumber: &step, Provider: "openai", Model: "gpt-4o", InputTokens: 1000, OutputTokens: 500, CostUSD: 0.01},
			{ProjectID: "p1", Provider: "openai", Model: "dall-e-3", CostUSD: 0.04},
			{ProjectID: "p2", Provider: "openai", Model: "gpt-4o", InputTokens: 200, OutputTokens: 100, CostUSD: 0.002},
		}
		for _, u := range records {
			if err := s.AppendUsage(ctx, u); err != nil {
				t.Fatalf("AppendUsage: %v", err)
			}
		}

		byProject, err := s.ListUsage(ctx, UsageFilter{ProjectID: "p1"})
		if err != nil {
			t.Fatalf("ListUsage: %v", err)
		}
		if len(byProject) != 2 {
			t.Errorf("project filter: got %d records, want 2", len(byProject))
		}

		byModel, err := s.ListUsage(ctx, UsageFilter{Model: "dall-e-3"})
		if err != nil {
			t.Fatalf("ListUsage: %v", err)
		}
		if len(byModel) != 1 || byModel[0].CostUSD != 0.04 {
			t.Errorf("model filter: %+v", byModel)
		}

		limited, err := s.ListUsage(ctx, UsageFilter{Limit: 1})
		if err != nil {
			t.Fatalf("ListUsage: %v", err)
		}
		if len(limited) != 1 {
			t.Errorf("limit: got %d records, want 1", len(limited))
		}
	})
}

func TestStore_Images(t *testing.T) {
	runBackends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		c := newClient(t, s, "images")
		p := newProject(t, s, c.ID)

		img := &ImageRecord{
			ProjectID: p.ID,
			Filename:  "broderie-tendances.png",
			Prompt:    "embroidery hoop with colorful thread, flat lay",
			Status:    ImagePending,
		}
		if err := s.SaveImage(ctx, img); err != nil {
			t.Fatalf("SaveImage: %v", err)
		}

		img.Status = ImageDone
		img.Path = "/assets/" + p.ID + "/broderie-tendances.png"
		img.CostUSD = 0.04
		if err := s.UpdateImage(ctx, img); err != nil {
			t.Fatalf("UpdateImage: %v", err)
		}

		got, err := s.Images(ctx, p.ID)
		if err != nil {
			t.Fatalf("Images: %v", err)
		}
		if len(got) != 1 || got[0].Status != ImageDone || got[0].CostUSD != 0.04 {
			t.Errorf("Images = %+v", got)
		}

		if err := s.DeleteImages(ctx, p.ID); err != nil {
			t.Fatalf("DeleteImages: %v", err)
		}
		got, err = s.Images(ctx, p.ID)
		if err != nil {
			t.Fatalf("Images after delete: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("images remain after delete: %d", len(got))
		}
	})
}
