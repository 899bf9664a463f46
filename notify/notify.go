package notify

import (
	"context"
	"time"
)

// =============================================================================
// Notification Types
// =============================================================================

// EventType represents the type of pipeline event.
type EventType string

// Event type constants.
const (
	EventStepGenerated    EventType = "step_generated"
	EventStepFailed       EventType = "step_failed"
	EventStepValidated    EventType = "step_validated"
	EventImagesCompleted  EventType = "images_completed"
	EventProjectCompleted EventType = "project_completed"
	EventArticleExported  EventType = "article_exported"
)

// Severity constants for notifications.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes a pipeline event for notification.
type Event struct {
	Type       EventType      `json:"type"`
	ProjectID  string         `json:"project_id"`
	StepNumber int            `json:"step_number,omitempty"`
	Message    string         `json:"message"`
	Severity   string         `json:"severity"`
	Timestamp  time.Time      `json:"timestamp"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Notifier sends notifications about pipeline events.
type Notifier interface {
	// Notify sends a notification. Implementations should be non-blocking
	// and handle errors gracefully (log, don't crash).
	Notify(ctx context.Context, event Event) error
}
