package articleflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"articleflow/llm"
	"articleflow/notify"
	"articleflow/prompt"
	"articleflow/store"
)

// ===== Events =====

// EventType identifies a generation stream event.
type EventType string

// Generation event constants.
const (
	// EventText carries one incremental text fragment.
	EventText EventType = "text"

	// EventDone terminates a successful stream with usage accounting.
	EventDone EventType = "done"

	// EventError terminates a failed stream with a human-readable message.
	EventError EventType = "error"
)

// Event is one message on a generation stream. Text events arrive in
// order; exactly one done or error event closes the stream, except on
// cancellation where the channel closes with no terminal event.
type Event struct {
	Type         EventType `json:"type"`
	Text         string    `json:"text,omitempty"`
	Model        string    `json:"model,omitempty"`
	InputTokens  int       `json:"inputTokens,omitempty"`
	OutputTokens int       `json:"outputTokens,omitempty"`
	CostUSD      float64   `json:"costUsd,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// ===== Coordinator =====

// CoordinatorOptions tune a Coordinator. Zero values get defaults.
type CoordinatorOptions struct {
	// Model is the text model identifier sent to the provider.
	Model string

	// Provider is the name recorded on usage entries.
	Provider string

	// Notifier receives terminal pipeline events. Nil disables
	// notifications.
	Notifier notify.Notifier

	Logger *slog.Logger
}

// Coordinator drives step generation: it renders the step's prompts,
// streams the completion, and persists the result. It is the only
// component that writes a StepRecord's raw output or appends usage
// entries.
//
// At most one generation runs per project; starting a new one cancels
// the predecessor, whose partial output is discarded.
type Coordinator struct {
	store    store.Store
	client   llm.Client
	model    string
	provider string
	notifier notify.Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// session is the cancellable handle of one in-flight generation.
type session struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCoordinator builds a Coordinator over the given store and text
// provider. opts may be nil.
func NewCoordinator(st store.Store, client llm.Client, opts *CoordinatorOptions) *Coordinator {
	c := &Coordinator{
		store:    st,
		client:   client,
		model:    "claude-sonnet-4-20250514",
		provider: "anthropic",
		sessions: make(map[string]*session),
		logger:   slog.Default(),
	}
	if opts != nil {
		if opts.Model != "" {
			c.model = opts.Model
		}
		if opts.Provider != "" {
			c.provider = opts.Provider
		}
		c.notifier = opts.Notifier
		if opts.Logger != nil {
			c.logger = opts.Logger
		}
	}
	return c
}

// Generate starts streaming generation for one step of a project. The
// returned channel delivers text fragments followed by one terminal
// done or error event; it closes without a terminal event when the
// generation is cancelled (via ctx or a superseding Generate call).
//
// The step's dependencies must all be validated first.
func (c *Coordinator) Generate(ctx context.Context, projectID string, stepNumber int) (<-chan Event, error) {
	def, ok := StepByNumber(stepNumber)
	if !ok {
		return nil, ErrStepNotFound
	}
	if !def.Generable() {
		return nil, fmt.Errorf("step %d: %w", stepNumber, ErrStepNotGenerable)
	}

	project, err := c.store.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	client, err := c.store.Client(ctx, project.ClientID)
	if err != nil {
		return nil, err
	}
	steps, err := c.store.Steps(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := checkDependencies(def, steps); err != nil {
		return nil, err
	}

	vars := ExtractVariables(project, client, steps)

	var override *prompt.Override
	if o, err := c.store.ActiveOverride(ctx, stepNumber); err == nil {
		override = &prompt.Override{System: o.SystemPrompt, User: o.UserPromptTemplate}
	} else if !store.IsNotFound(err) {
		return nil, err
	}
	built := prompt.Build(stepNumber, vars, override)

	genCtx, cancel := context.WithCancel(ctx)
	sess := &session{cancel: cancel, done: make(chan struct{})}
	c.replaceSession(projectID, sess)

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer close(sess.done)
		defer c.clearSession(projectID, sess)
		c.run(genCtx, events, projectID, def, built)
	}()
	return events, nil
}

// Cancel stops the project's in-flight generation, if any, and waits
// for it to wind down.
func (c *Coordinator) Cancel(projectID string) {
	c.mu.Lock()
	sess := c.sessions[projectID]
	c.mu.Unlock()
	if sess == nil {
		return
	}
	sess.cancel()
	<-sess.done
}

// run consumes the provider stream and persists the outcome. Partial
// output is discarded on cancellation or failure.
func (c *Coordinator) run(ctx context.Context, events chan<- Event, projectID string, def StepDefinition, built prompt.Built) {
	emit := func(e Event) bool {
		select {
		case events <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}

	result, err := c.client.Stream(ctx, llm.Request{
		Model:       c.model,
		System:      built.System,
		User:        built.User,
		MaxTokens:   def.MaxTokens,
		Temperature: def.Temperature,
	}, func(delta string) {
		emit(Event{Type: EventText, Text: delta})
	})

	if ctx.Err() != nil {
		// Cancelled: nothing persisted, no terminal event.
		c.logger.Info("generation cancelled",
			"project_id", projectID, "step", def.Number)
		return
	}
	if err != nil {
		c.logger.Error("generation failed",
			"project_id", projectID, "step", def.Number, "error", err)
		c.notify(ctx, notify.Event{
			Type:       notify.EventStepFailed,
			ProjectID:  projectID,
			StepNumber: def.Number,
			Message:    err.Error(),
			Severity:   notify.SeverityError,
		})
		emit(Event{Type: EventError, Error: err.Error()})
		return
	}

	cost := CompletionCost(c.model, result.InputTokens, result.OutputTokens)

	rec, err := c.store.Step(ctx, projectID, def.Number)
	if err != nil {
		emit(Event{Type: EventError, Error: err.Error()})
		return
	}
	rec.OutputText = result.Text
	rec.Output = &store.StepOutput{Type: "text", Text: result.Text}
	rec.TokensUsed = result.InputTokens + result.OutputTokens
	rec.CostUSD = cost
	if err := c.store.UpdateStep(ctx, rec); err != nil {
		emit(Event{Type: EventError, Error: err.Error()})
		return
	}

	stepNumber := def.Number
	if err := c.store.AppendUsage(ctx, &store.UsageRecord{
		ProjectID:    projectID,
		StepNumber:   &stepNumber,
		Provider:     c.provider,
		Model:        c.model,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		CostUSD:      cost,
	}); err != nil {
		emit(Event{Type: EventError, Error: err.Error()})
		return
	}

	c.logger.Info("generation completed",
		"project_id", projectID, "step", def.Number,
		"tokens", rec.TokensUsed, "cost_usd", cost)
	c.notify(ctx, notify.Event{
		Type:       notify.EventStepGenerated,
		ProjectID:  projectID,
		StepNumber: def.Number,
		Message:    fmt.Sprintf("étape %d générée : %s", def.Number, def.Name),
		Severity:   notify.SeverityInfo,
		Metadata:   map[string]any{"tokens": rec.TokensUsed, "cost_usd": cost},
	})

	emit(Event{
		Type:         EventDone,
		Model:        c.model,
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		CostUSD:      cost,
	})
}

func (c *Coordinator) notify(ctx context.Context, event notify.Event) {
	if c.notifier == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := c.notifier.Notify(ctx, event); err != nil {
		c.logger.Warn("notification failed", "error", err, "event_type", event.Type)
	}
}

// replaceSession registers sess for the project, cancelling and waiting
// out any predecessor.
func (c *Coordinator) replaceSession(projectID string, sess *session) {
	c.mu.Lock()
	prev := c.sessions[projectID]
	c.sessions[projectID] = sess
	c.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}
}

func (c *Coordinator) clearSession(projectID string, sess *session) {
	c.mu.Lock()
	if c.sessions[projectID] == sess {
		delete(c.sessions, projectID)
	}
	c.mu.Unlock()
}

// checkDependencies verifies every declared dependency of def has a
// validated record in steps.
func checkDependencies(def StepDefinition, steps []*store.StepRecord) error {
	byNumber := make(map[int]*store.StepRecord, len(steps))
	for _, rec := range steps {
		byNumber[rec.StepNumber] = rec
	}
	for _, dep := range def.DependsOn {
		rec, ok := byNumber[dep]
		if !ok || !rec.Validated {
			return fmt.Errorf("step %d requires step %d: %w",
				def.Number, dep, ErrDependenciesNotValidated)
		}
	}
	return nil
}
