package articleflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"articleflow/imagegen"
	"articleflow/notify"
	"articleflow/parse"
	"articleflow/store"
)

// ImageBatch drives illustration generation for the imagery step. Each
// image carries its own status, so a failed entry can be retried
// without touching the others.
type ImageBatch struct {
	store    store.Store
	gen      imagegen.Client
	saver    *imagegen.Saver
	size     string
	quality  string
	notifier notify.Notifier
	logger   *slog.Logger
}

// ImageBatchOptions tune an ImageBatch. Zero values get defaults
// (square size, standard quality).
type ImageBatchOptions struct {
	Size     string
	Quality  string
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// NewImageBatch builds an ImageBatch persisting assets through saver.
// opts may be nil.
func NewImageBatch(st store.Store, gen imagegen.Client, saver *imagegen.Saver, opts *ImageBatchOptions) *ImageBatch {
	b := &ImageBatch{
		store:   st,
		gen:     gen,
		saver:   saver,
		size:    imagegen.SizeSquare,
		quality: imagegen.QualityStandard,
		logger:  slog.Default(),
	}
	if opts != nil {
		if opts.Size != "" {
			b.size = opts.Size
		}
		if opts.Quality != "" {
			b.quality = opts.Quality
		}
		b.notifier = opts.Notifier
		if opts.Logger != nil {
			b.logger = opts.Logger
		}
	}
	return b
}

// SeedFromStep parses the image-prompt step's output and creates one
// pending ImageRecord per filename/prompt pair not already present.
// It returns the project's full image list afterwards.
func (b *ImageBatch) SeedFromStep(ctx context.Context, projectID string) ([]*store.ImageRecord, error) {
	rec, err := b.store.Step(ctx, projectID, StepImagePrompts)
	if err != nil {
		return nil, err
	}
	prompts := parse.ImagePrompts(rec.OutputText)
	if len(prompts) == 0 {
		return nil, fmt.Errorf("project %s: %w", projectID, ErrNoImagePrompts)
	}

	existing, err := b.store.Images(ctx, projectID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, img := range existing {
		seen[img.Filename] = true
	}

	for _, p := range prompts {
		name := imagegen.SanitizeFilename(p.Filename)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if err := b.store.SaveImage(ctx, &store.ImageRecord{
			ProjectID: projectID,
			Filename:  name,
			Prompt:    p.Prompt,
			Status:    store.ImagePending,
		}); err != nil {
			return nil, err
		}
	}
	return b.store.Images(ctx, projectID)
}

// GenerateOne generates a single image by record ID, moving it through
// generating to done or error. The record keeps its error message so
// the operator can see what went wrong and retry.
func (b *ImageBatch) GenerateOne(ctx context.Context, projectID, imageID string) (*store.ImageRecord, error) {
	images, err := b.store.Images(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var img *store.ImageRecord
	for _, candidate := range images {
		if candidate.ID == imageID {
			img = candidate
			break
		}
	}
	if img == nil {
		return nil, store.ErrNotFound
	}

	img.Status = store.ImageGenerating
	img.Error = ""
	if err := b.store.UpdateImage(ctx, img); err != nil {
		return nil, err
	}

	result, err := b.gen.Generate(ctx, imagegen.Request{
		Prompt:  img.Prompt,
		Size:    b.size,
		Quality: b.quality,
	})
	if err != nil {
		img.Status = store.ImageError
		img.Error = err.Error()
		if uerr := b.store.UpdateImage(ctx, img); uerr != nil {
			return nil, uerr
		}
		return img, err
	}

	saved, err := b.saver.Save(projectID, img.Filename, result.Data)
	if err != nil {
		img.Status = store.ImageError
		img.Error = err.Error()
		if uerr := b.store.UpdateImage(ctx, img); uerr != nil {
			return nil, uerr
		}
		return img, err
	}

	img.Filename = saved.Filename
	img.Path = saved.Path
	img.URL = saved.URL
	img.RevisedPrompt = result.RevisedPrompt
	img.CostUSD = ImageCost(b.quality)
	img.Status = store.ImageDone
	if err := b.store.UpdateImage(ctx, img); err != nil {
		return nil, err
	}

	stepNumber := StepImages
	if err := b.store.AppendUsage(ctx, &store.UsageRecord{
		ProjectID:  projectID,
		StepNumber: &stepNumber,
		Provider:   "openai",
		Model:      "dall-e-3",
		CostUSD:    img.CostUSD,
	}); err != nil {
		return nil, err
	}
	return img, nil
}

// GenerateAll sweeps every image not already done, sequentially to
// respect provider rate limits. Provider failures mark their entry and
// the sweep continues; the error returned covers only store failures or
// cancellation.
func (b *ImageBatch) GenerateAll(ctx context.Context, projectID string) error {
	images, err := b.store.Images(ctx, projectID)
	if err != nil {
		return err
	}

	failed := 0
	for _, img := range images {
		if img.Status == store.ImageDone {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := b.GenerateOne(ctx, projectID, img.ID); err != nil {
			if store.IsNotFound(err) || ctx.Err() != nil {
				return err
			}
			failed++
			b.logger.Warn("image generation failed",
				"project_id", projectID, "image_id", img.ID, "error", err)
		}
	}

	done, total, err := b.Progress(ctx, projectID)
	if err != nil {
		return err
	}
	if failed == 0 && total > 0 && done == total && b.notifier != nil {
		event := notify.Event{
			Type:      notify.EventImagesCompleted,
			ProjectID: projectID,
			Message:   fmt.Sprintf("%d illustrations générées", total),
			Severity:  notify.SeverityInfo,
			Timestamp: time.Now(),
			Metadata:  map[string]any{"total": total},
		}
		if err := b.notifier.Notify(ctx, event); err != nil {
			b.logger.Warn("notification failed", "error", err)
		}
	}
	return nil
}

// Progress reports how many of the project's images are done.
func (b *ImageBatch) Progress(ctx context.Context, projectID string) (done, total int, err error) {
	images, err := b.store.Images(ctx, projectID)
	if err != nil {
		return 0, 0, err
	}
	for _, img := range images {
		if img.Status == store.ImageDone {
			done++
		}
	}
	return done, len(images), nil
}
