package store

import "time"

// ProjectStatus is the overall lifecycle state of a production run.
type ProjectStatus string

// Project status constants.
const (
	StatusDraft      ProjectStatus = "draft"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusPublished  ProjectStatus = "published"
)

// Persona describes the reader the content is written for.
type Persona struct {
	Name        string   `json:"name,omitempty"`
	Age         int      `json:"age,omitempty"`
	Profession  string   `json:"profession,omitempty"`
	Problems    []string `json:"problems,omitempty"`
	Goals       []string `json:"goals,omitempty"`
	Tone        string   `json:"tone,omitempty"`
	Description string   `json:"description,omitempty"`
}

// BrandGuidelines captures optional brand voice constraints.
type BrandGuidelines struct {
	Tone            string   `json:"tone,omitempty"`
	ForbiddenWords  []string `json:"forbiddenWords,omitempty"`
	PreferredStyle  string   `json:"preferredStyle,omitempty"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`
}

// Client is a customer account owning projects.
type Client struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Persona   *Persona         `json:"persona,omitempty"`
	Brand     *BrandGuidelines `json:"brandGuidelines,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Project identifies one production run.
type Project struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"clientId"`
	Keyword       string        `json:"keyword"`
	Title         string        `json:"title"`
	SearchIntents []string      `json:"searchIntents"`
	CurrentStep   int           `json:"currentStep"`
	Status        ProjectStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// StepOutput is the structured payload of a step: parser results plus any
// operator selection. Fields are populated according to the step's
// validation policy; unused fields stay empty.
type StepOutput struct {
	Type string `json:"type"`

	// Free-text steps.
	Text string `json:"text,omitempty"`

	// Single-choice steps.
	Options       []string `json:"options,omitempty"`
	SelectedIndex *int     `json:"selectedIndex,omitempty"`
	SelectedText  string   `json:"selectedText,omitempty"`

	// Dual-choice (meta) steps.
	Titles                   []string `json:"titles,omitempty"`
	Descriptions             []string `json:"descriptions,omitempty"`
	SelectedTitleIndex       *int     `json:"selectedTitleIndex,omitempty"`
	SelectedDescriptionIndex *int     `json:"selectedDescriptionIndex,omitempty"`
	SelectedMetaTitle        string   `json:"selectedMetaTitle,omitempty"`
	SelectedMetaDescription  string   `json:"selectedMetaDescription,omitempty"`

	// Imagery step summary, folded in at validation time.
	ImagesDone  int `json:"imagesDone,omitempty"`
	ImagesTotal int `json:"imagesTotal,omitempty"`
}

// StepRecord is the persisted artifact of one (project, step) pair. One
// record exists per registry entry, created at project creation.
type StepRecord struct {
	ProjectID   string      `json:"projectId"`
	StepNumber  int         `json:"stepNumber"`
	OutputText  string      `json:"outputText"`
	Output      *StepOutput `json:"outputData,omitempty"`
	TokensUsed  int         `json:"tokensUsed"`
	CostUSD     float64     `json:"costUsd"`
	Validated   bool        `json:"isValidated"`
	ValidatedAt *time.Time  `json:"validatedAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PromptOverride is an operator-supplied replacement for a step's default
// system/user templates. At most one override is active per step.
type PromptOverride struct {
	ID                 string    `json:"id"`
	StepNumber         int       `json:"stepNumber"`
	StepName           string    `json:"stepName"`
	SystemPrompt       string    `json:"systemPrompt"`
	UserPromptTemplate string    `json:"userPromptTemplate"`
	Version            int       `json:"version"`
	Active             bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// UsageRecord is one logged charge for a provider invocation.
type UsageRecord struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId,omitempty"`
	StepNumber   *int      `json:"stepNumber,omitempty"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	CostUSD      float64   `json:"costUsd"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ImageStatus is the lifecycle state of one generated illustration.
type ImageStatus string

// Image status constants.
const (
	ImagePending    ImageStatus = "pending"
	ImageGenerating ImageStatus = "generating"
	ImageDone       ImageStatus = "done"
	ImageError      ImageStatus = "error"
)

// ImageRecord is one illustration scoped to a project's imagery step.
type ImageRecord struct {
	ID            string      `json:"id"`
	ProjectID     string      `json:"projectId"`
	Filename      string      `json:"filename"`
	Prompt        string      `json:"prompt"`
	RevisedPrompt string      `json:"revisedPrompt,omitempty"`
	Path          string      `json:"path,omitempty"`
	URL           string      `json:"url,omitempty"`
	AltText       string      `json:"altText,omitempty"`
	Status        ImageStatus `json:"status"`
	CostUSD       float64     `json:"costUsd,omitempty"`
	Error         string      `json:"error,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
