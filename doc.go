// Package articleflow drives a multi-step, AI-assisted article production
// pipeline: a fixed sequence of generation steps (titles, research, outline,
// draft, SEO optimization, metadata, imagery, export) where each step
// consumes the validated outputs of earlier steps.
//
// The package is organized into subpackages by domain:
//
//   - prompt: template interpolation and per-step default prompts
//   - parse: structured-output parsers for generated text
//   - store: persistence contracts and entities (memory and SQLite backends)
//   - llm: streaming text-generation provider
//   - imagegen: image-generation provider and asset storage
//   - export: Markdown, HTML and WordPress exporters
//   - config: YAML + environment configuration
//   - notify: notification services for pipeline events
//   - server: operator-facing HTTP surface
//
// The root package holds the orchestration engine itself: the step registry,
// the variable extractor, the generation coordinator, the validation state
// machine, the image batch coordinator and the article assembler.
//
// # Quick Start
//
//	st := store.NewMemory()
//	coord := articleflow.NewCoordinator(st, llmClient, nil)
//
//	events, _ := coord.Generate(ctx, projectID, articleflow.StepTitles)
//	for ev := range events {
//	    // text fragments, then one terminal done or error event
//	}
//
//	err := articleflow.Validate(ctx, st, projectID, articleflow.StepTitles,
//	    articleflow.ValidationInput{SelectedIndex: &choice})
//
// See individual package documentation for detailed usage.
package articleflow
