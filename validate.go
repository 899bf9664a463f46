package articleflow

import (
	"context"
	"fmt"
	"time"

	"articleflow/parse"
	"articleflow/store"
)

// ValidationInput carries the operator's decision for a step.
type ValidationInput struct {
	// SelectedIndex is the zero-based pick for choose steps.
	SelectedIndex *int `json:"selectedIndex,omitempty"`

	// TitleIndex and DescriptionIndex are the picks for choose-dual
	// steps; both are required.
	TitleIndex       *int `json:"titleIndex,omitempty"`
	DescriptionIndex *int `json:"descriptionIndex,omitempty"`

	// Text replaces the step's content before validation on edit steps.
	// Empty means keep the stored text.
	Text string `json:"text,omitempty"`
}

// Validate marks one step of a project as validated, applying its
// validation policy, and advances the project cursor. Dependency
// conflicts and selection errors are rejected before any mutation.
func Validate(ctx context.Context, st store.Store, projectID string, stepNumber int, input ValidationInput) error {
	def, ok := StepByNumber(stepNumber)
	if !ok {
		return ErrStepNotFound
	}

	steps, err := st.Steps(ctx, projectID)
	if err != nil {
		return err
	}
	if err := checkDependencies(def, steps); err != nil {
		return err
	}

	var rec *store.StepRecord
	for _, r := range steps {
		if r.StepNumber == stepNumber {
			rec = r
			break
		}
	}
	if rec == nil {
		return store.ErrNotFound
	}

	switch def.Validation {
	case ValidationApprove:
		if stepNumber == StepImages {
			if err := applyImagesPolicy(ctx, st, projectID, rec); err != nil {
				return err
			}
		}

	case ValidationChoose:
		if input.SelectedIndex == nil {
			return fmt.Errorf("step %d: %w", stepNumber, ErrSelectionRequired)
		}
		options := parse.NumberedList(rec.OutputText)
		if stepNumber == StepIntroduction {
			options = introCandidates(rec.OutputText)
		}
		idx := *input.SelectedIndex
		if idx < 0 || idx >= len(options) {
			return fmt.Errorf("step %d: index %d of %d options: %w",
				stepNumber, idx, len(options), ErrSelectionOutOfRange)
		}
		rec.Output = &store.StepOutput{
			Type:          string(ValidationChoose),
			Options:       options,
			SelectedIndex: input.SelectedIndex,
			SelectedText:  options[idx],
		}

	case ValidationChooseDual:
		if input.TitleIndex == nil || input.DescriptionIndex == nil {
			return fmt.Errorf("step %d: %w", stepNumber, ErrSelectionRequired)
		}
		meta := parse.MetaOutput(rec.OutputText)
		ti, di := *input.TitleIndex, *input.DescriptionIndex
		if ti < 0 || ti >= len(meta.Titles) {
			return fmt.Errorf("step %d: title index %d of %d: %w",
				stepNumber, ti, len(meta.Titles), ErrSelectionOutOfRange)
		}
		if di < 0 || di >= len(meta.Descriptions) {
			return fmt.Errorf("step %d: description index %d of %d: %w",
				stepNumber, di, len(meta.Descriptions), ErrSelectionOutOfRange)
		}
		rec.Output = &store.StepOutput{
			Type:                     string(ValidationChooseDual),
			Titles:                   meta.Titles,
			Descriptions:             meta.Descriptions,
			SelectedTitleIndex:       input.TitleIndex,
			SelectedDescriptionIndex: input.DescriptionIndex,
			SelectedMetaTitle:        meta.Titles[ti],
			SelectedMetaDescription:  meta.Descriptions[di],
		}

	case ValidationEdit:
		if input.Text != "" {
			rec.OutputText = input.Text
			rec.Output = &store.StepOutput{Type: "text", Text: input.Text}
		}
		if rec.OutputText == "" {
			return fmt.Errorf("step %d: %w", stepNumber, ErrEmptyContent)
		}
	}

	now := time.Now()
	rec.Validated = true
	rec.ValidatedAt = &now
	if err := st.UpdateStep(ctx, rec); err != nil {
		return err
	}

	status := store.StatusInProgress
	if stepNumber >= TerminalStep {
		status = store.StatusCompleted
	}
	return st.AdvanceCursor(ctx, projectID, stepNumber, status)
}

// applyImagesPolicy enforces the imagery completion rule and folds the
// batch summary into the step output.
func applyImagesPolicy(ctx context.Context, st store.Store, projectID string, rec *store.StepRecord) error {
	images, err := st.Images(ctx, projectID)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("project %s: %w", projectID, ErrImagesIncomplete)
	}
	done := 0
	for _, img := range images {
		if img.Status == store.ImageDone {
			done++
		}
	}
	if done != len(images) {
		return fmt.Errorf("project %s: %d/%d images done: %w",
			projectID, done, len(images), ErrImagesIncomplete)
	}
	rec.Output = &store.StepOutput{
		Type:        string(ValidationApprove),
		ImagesDone:  done,
		ImagesTotal: len(images),
	}
	return nil
}
