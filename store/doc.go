// Package store provides persistence for the article production pipeline.
//
// Core types:
//   - Client: a customer with persona and brand guidelines
//   - Project: one production run with its current-step cursor
//   - StepRecord: the persisted artifact of one (project, step) pair
//   - PromptOverride: operator-supplied replacement for a step's prompts
//   - UsageRecord: append-only log of provider charges
//   - ImageRecord: one generated illustration and its lifecycle status
//
// Implementations:
//   - Memory: in-memory store for tests and development
//   - SQLite: file-backed store for production use
//
// Both implementations guarantee an atomic read-then-conditional-write for
// the validation-cursor advance (AdvanceCursor), so retried validation
// requests cannot regress a project's cursor.
package store
