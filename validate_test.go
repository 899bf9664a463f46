package articleflow

import (
	"errors"
	"testing"

	"articleflow/store"
	"articleflow/testutil"
)

func TestValidate_ChooseRecordsSelection(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)
	testutil.FillStep(t, st, p.ID, StepTitles,
		"1. Premier titre\n2. Deuxième titre\n3. Troisième titre", false)

	idx := 1
	if err := Validate(ctx, st, p.ID, StepTitles, ValidationInput{SelectedIndex: &idx}); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	rec, err := st.Step(ctx, p.ID, StepTitles)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !rec.Validated || rec.ValidatedAt == nil {
		t.Error("step not marked validated")
	}
	if rec.Output == nil || rec.Output.SelectedText != "Deuxième titre" {
		t.Errorf("Output = %+v", rec.Output)
	}
	if len(rec.Output.Options) != 3 {
		t.Errorf("Options = %v", rec.Output.Options)
	}

	project, err := st.Project(ctx, p.ID)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if project.CurrentStep != StepTitles+1 {
		t.Errorf("CurrentStep = %d, want %d", project.CurrentStep, StepTitles+1)
	}
	if project.Status != store.StatusInProgress {
		t.Errorf("Status = %q", project.Status)
	}
}

func TestValidate_ChooseRequiresSelection(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)
	testutil.FillStep(t, st, p.ID, StepTitles, "1. Un\n2. Deux", false)

	err := Validate(ctx, st, p.ID, StepTitles, ValidationInput{})
	if !errors.Is(err, ErrSelectionRequired) {
		t.Fatalf("Validate = %v, want ErrSelectionRequired", err)
	}

	out := 7
	err = Validate(ctx, st, p.ID, StepTitles, ValidationInput{SelectedIndex: &out})
	if !errors.Is(err, ErrSelectionOutOfRange) {
		t.Fatalf("Validate = %v, want ErrSelectionOutOfRange", err)
	}

	rec, _ := st.Step(ctx, p.ID, StepTitles)
	if rec.Validated {
		t.Error("rejected validation mutated the record")
	}
}

func TestValidate_DependencyConflictLeavesCursor(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)
	testutil.FillStep(t, st, p.ID, StepResearch, "recherche", false)

	before, _ := st.Project(ctx, p.ID)

	// Step 2 requires step 1, which is not validated.
	err := Validate(ctx, st, p.ID, StepResearch, ValidationInput{})
	if !errors.Is(err, ErrDependenciesNotValidated) {
		t.Fatalf("Validate = %v, want ErrDependenciesNotValidated", err)
	}
	if !IsConflict(err) {
		t.Error("dependency error should be a conflict")
	}

	after, _ := st.Project(ctx, p.ID)
	if after.CurrentStep != before.CurrentStep {
		t.Errorf("conflict moved cursor %d -> %d", before.CurrentStep, after.CurrentStep)
	}
	rec, _ := st.Step(ctx, p.ID, StepResearch)
	if rec.Validated {
		t.Error("conflict validated the step")
	}
}

func TestValidate_ChooseDual(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)

	// Walk dependencies up to the meta step.
	chain := []struct {
		step int
		text string
		in   ValidationInput
	}{
		{StepTitles, "1. Un\n2. Deux", ValidationInput{SelectedIndex: intPtr(0)}},
		{StepResearch, "recherche", ValidationInput{}},
		{StepQuestions, "questions", ValidationInput{}},
		{StepIntentQuestions, "questions enrichies", ValidationInput{}},
		{StepPlan, "plan", ValidationInput{}},
		{StepArticle, "brouillon", ValidationInput{}},
		{StepOptimize, "optimisé", ValidationInput{}},
	}
	for _, c := range chain {
		testutil.FillStep(t, st, p.ID, c.step, c.text, false)
		if err := Validate(ctx, st, p.ID, c.step, c.in); err != nil {
			t.Fatalf("validate step %d: %v", c.step, err)
		}
	}

	metaText := "Meta titles :\n1. \"Titre A\"\n2. \"Titre B\"\n\nMeta descriptions :\n1. \"Desc A\"\n2. \"Desc B\""
	testutil.FillStep(t, st, p.ID, StepMeta, metaText, false)

	err := Validate(ctx, st, p.ID, StepMeta, ValidationInput{TitleIndex: intPtr(0)})
	if !errors.Is(err, ErrSelectionRequired) {
		t.Fatalf("missing description index: %v", err)
	}

	err = Validate(ctx, st, p.ID, StepMeta, ValidationInput{
		TitleIndex:       intPtr(1),
		DescriptionIndex: intPtr(0),
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	rec, _ := st.Step(ctx, p.ID, StepMeta)
	if rec.Output.SelectedMetaTitle != "Titre B" || rec.Output.SelectedMetaDescription != "Desc A" {
		t.Errorf("Output = %+v", rec.Output)
	}
}

func TestValidate_IntroductionChoosesCandidate(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)

	chain := []struct {
		step int
		text string
		in   ValidationInput
	}{
		{StepTitles, "1. Un", ValidationInput{SelectedIndex: intPtr(0)}},
		{StepResearch, "recherche", ValidationInput{}},
		{StepQuestions, "questions", ValidationInput{}},
		{StepIntentQuestions, "enrichies", ValidationInput{}},
		{StepPlan, "plan", ValidationInput{}},
		{StepArticle, "brouillon", ValidationInput{}},
		{StepOptimize, "optimisé", ValidationInput{}},
	}
	for _, c := range chain {
		testutil.FillStep(t, st, p.ID, c.step, c.text, false)
		if err := Validate(ctx, st, p.ID, c.step, c.in); err != nil {
			t.Fatalf("validate step %d: %v", c.step, err)
		}
	}

	intro := "## Introduction 1\nPremière accroche.\n\n## Introduction 2\nSeconde accroche."
	testutil.FillStep(t, st, p.ID, StepIntroduction, intro, false)
	if err := Validate(ctx, st, p.ID, StepIntroduction, ValidationInput{SelectedIndex: intPtr(1)}); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	rec, _ := st.Step(ctx, p.ID, StepIntroduction)
	if len(rec.Output.Options) != 2 {
		t.Fatalf("Options = %v, want 2 candidates", rec.Output.Options)
	}
	if rec.Output.SelectedText != "Seconde accroche." {
		t.Errorf("SelectedText = %q", rec.Output.SelectedText)
	}

	// Output with no recognizable marker degrades to a single candidate.
	st = store.NewMemory()
	p2 := seedWorkspace(t, st)
	for _, c := range chain {
		testutil.FillStep(t, st, p2.ID, c.step, c.text, false)
		if err := Validate(ctx, st, p2.ID, c.step, c.in); err != nil {
			t.Fatalf("validate step %d: %v", c.step, err)
		}
	}
	testutil.FillStep(t, st, p2.ID, StepIntroduction, "Texte sans marqueur.", false)
	if err := Validate(ctx, st, p2.ID, StepIntroduction, ValidationInput{SelectedIndex: intPtr(0)}); err != nil {
		t.Fatalf("Validate without marker: %v", err)
	}
	rec, _ = st.Step(ctx, p2.ID, StepIntroduction)
	if rec.Output.SelectedText != "Texte sans marqueur." {
		t.Errorf("SelectedText = %q", rec.Output.SelectedText)
	}
}

func TestValidate_EditRequiresContent(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)
	testutil.FillStep(t, st, p.ID, StepTitles, "1. Un", false)
	if err := Validate(ctx, st, p.ID, StepTitles, ValidationInput{SelectedIndex: intPtr(0)}); err != nil {
		t.Fatalf("validate titles: %v", err)
	}

	err := Validate(ctx, st, p.ID, StepResearch, ValidationInput{})
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("Validate = %v, want ErrEmptyContent", err)
	}

	// Operator-supplied text is accepted and stored.
	if err := Validate(ctx, st, p.ID, StepResearch, ValidationInput{Text: "recherche éditée"}); err != nil {
		t.Fatalf("Validate with text: %v", err)
	}
	rec, _ := st.Step(ctx, p.ID, StepResearch)
	if rec.OutputText != "recherche éditée" {
		t.Errorf("OutputText = %q", rec.OutputText)
	}
}

func TestValidate_ImagesRequireCompletion(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)

	chain := []struct {
		step int
		text string
		in   ValidationInput
	}{
		{StepTitles, "1. Un", ValidationInput{SelectedIndex: intPtr(0)}},
		{StepResearch, "recherche", ValidationInput{}},
		{StepQuestions, "questions", ValidationInput{}},
		{StepIntentQuestions, "enrichies", ValidationInput{}},
		{StepPlan, "plan", ValidationInput{}},
		{StepArticle, "brouillon", ValidationInput{}},
		{StepOptimize, "optimisé", ValidationInput{}},
		{StepImageTitles, "Fichier : a.png", ValidationInput{}},
		{StepImagePrompts, "Image: a.png\nPrompt: an embroidery hoop", ValidationInput{}},
	}
	for _, c := range chain {
		testutil.FillStep(t, st, p.ID, c.step, c.text, false)
		if err := Validate(ctx, st, p.ID, c.step, c.in); err != nil {
			t.Fatalf("validate step %d: %v", c.step, err)
		}
	}

	// No image records at all.
	err := Validate(ctx, st, p.ID, StepImages, ValidationInput{})
	if !errors.Is(err, ErrImagesIncomplete) {
		t.Fatalf("Validate = %v, want ErrImagesIncomplete", err)
	}

	img := &store.ImageRecord{ProjectID: p.ID, Filename: "a.png", Prompt: "hoop", Status: store.ImagePending}
	if err := st.SaveImage(ctx, img); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	err = Validate(ctx, st, p.ID, StepImages, ValidationInput{})
	if !errors.Is(err, ErrImagesIncomplete) {
		t.Fatalf("Validate = %v, want ErrImagesIncomplete", err)
	}

	img.Status = store.ImageDone
	if err := st.UpdateImage(ctx, img); err != nil {
		t.Fatalf("UpdateImage: %v", err)
	}
	if err := Validate(ctx, st, p.ID, StepImages, ValidationInput{}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	rec, _ := st.Step(ctx, p.ID, StepImages)
	if rec.Output == nil || rec.Output.ImagesDone != 1 || rec.Output.ImagesTotal != 1 {
		t.Errorf("Output = %+v", rec.Output)
	}
}

func TestValidate_TerminalStepCompletesProject(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()
	p := seedWorkspace(t, st)

	full := []struct {
		step int
		text string
		in   ValidationInput
	}{
		{StepTitles, "1. Un", ValidationInput{SelectedIndex: intPtr(0)}},
		{StepResearch, "recherche", ValidationInput{}},
		{StepQuestions, "questions", ValidationInput{}},
		{StepIntentQuestions, "enrichies", ValidationInput{}},
		{StepPlan, "plan", ValidationInput{}},
		{StepArticle, "brouillon", ValidationInput{}},
		{StepOptimize, "optimisé", ValidationInput{}},
		{StepIntroduction, "## Introduction 1\nA\n## Introduction 2\nB", ValidationInput{SelectedIndex: intPtr(0)}},
		{StepImageTitles, "Fichier : a.png", ValidationInput{}},
		{StepImagePrompts, "Image: a.png\nPrompt: hoop", ValidationInput{}},
	}
	for _, c := range full {
		testutil.FillStep(t, st, p.ID, c.step, c.text, false)
		if err := Validate(ctx, st, p.ID, c.step, c.in); err != nil {
			t.Fatalf("validate step %d: %v", c.step, err)
		}
	}
	if err := st.SaveImage(ctx, &store.ImageRecord{
		ProjectID: p.ID, Filename: "a.png", Prompt: "hoop", Status: store.ImageDone,
	}); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	rest := []struct {
		step int
		text string
		in   ValidationInput
	}{
		{StepImages, "", ValidationInput{}},
		{StepAltTexts, "Fichier: a.png\nAlt: tambour", ValidationInput{}},
		{StepMeta, "Titres :\n1. T\nDescriptions :\n1. D", ValidationInput{TitleIndex: intPtr(0), DescriptionIndex: intPtr(0)}},
		{StepStructuredData, `{"@type":"Article"}`, ValidationInput{}},
		{StepExport, "", ValidationInput{}},
	}
	for _, c := range rest {
		if c.text != "" {
			testutil.FillStep(t, st, p.ID, c.step, c.text, false)
		}
		if err := Validate(ctx, st, p.ID, c.step, c.in); err != nil {
			t.Fatalf("validate step %d: %v", c.step, err)
		}
	}

	project, _ := st.Project(ctx, p.ID)
	if project.Status != store.StatusCompleted {
		t.Errorf("Status = %q, want completed", project.Status)
	}
	if project.CurrentStep != TerminalStep+1 {
		t.Errorf("CurrentStep = %d", project.CurrentStep)
	}
}

func intPtr(n int) *int { return &n }
