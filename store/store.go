package store

import (
	"context"
	"errors"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Store errors.
var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrSlugTaken indicates a client slug is already in use.
	ErrSlugTaken = errors.New("slug already in use")
)

// IsNotFound reports whether err means a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// UsageFilter narrows a usage listing. Zero values mean "no filter".
type UsageFilter struct {
	ProjectID string
	Provider  string
	Model     string
	After     time.Time
	Limit     int
}

// Store is the persistence contract the orchestration engine depends on.
//
// Mutation discipline: the generation coordinator writes raw step output
// and usage records; the validation state machine writes validated flags,
// selections and the project cursor. Nothing else writes persisted state.
type Store interface {
	// Clients.
	CreateClient(ctx context.Context, c *Client) error
	Client(ctx context.Context, id string) (*Client, error)
	ClientBySlug(ctx context.Context, slug string) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id string) error

	// Projects. CreateProject also creates one empty StepRecord per entry
	// of stepNumbers, so every registry step has a record from day one.
	CreateProject(ctx context.Context, p *Project, stepNumbers []int) error
	Project(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context, clientID string) ([]*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id string) error

	// Step records, keyed by (project, step number).
	Step(ctx context.Context, projectID string, stepNumber int) (*StepRecord, error)
	Steps(ctx context.Context, projectID string) ([]*StepRecord, error)
	UpdateStep(ctx context.Context, rec *StepRecord) error

	// AdvanceCursor performs the atomic conditional cursor advance: the
	// project's CurrentStep becomes validatedStep+1 and its status becomes
	// next, but only when CurrentStep <= validatedStep. An already-passed
	// step leaves the cursor untouched.
	AdvanceCursor(ctx context.Context, projectID string, validatedStep int, next ProjectStatus) error

	// Prompt overrides; at most one active override per step number.
	ActiveOverride(ctx context.Context, stepNumber int) (*PromptOverride, error)
	ListOverrides(ctx context.Context) ([]*PromptOverride, error)
	SaveOverride(ctx context.Context, o *PromptOverride) error
	DeleteOverride(ctx context.Context, stepNumber int) error

	// Usage log, append-only.
	AppendUsage(ctx context.Context, u *UsageRecord) error
	ListUsage(ctx context.Context, f UsageFilter) ([]*UsageRecord, error)

	// Images.
	SaveImage(ctx context.Context, img *ImageRecord) error
	UpdateImage(ctx context.Context, img *ImageRecord) error
	Images(ctx context.Context, projectID string) ([]*ImageRecord, error)
	DeleteImages(ctx context.Context, projectID string) error
}

// NewID generates a URL-safe record identifier.
func NewID() string {
	id, err := nanoid.New()
	if err != nil {
		// nanoid only fails when the system entropy source is broken.
		panic("store: id generation failed: " + err.Error())
	}
	return id
}
