package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Store for tests and development. Safe for
// concurrent use.
type Memory struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	projects  map[string]*Project
	steps     map[string]map[int]*StepRecord
	overrides map[int]*PromptOverride
	usage     []*UsageRecord
	images    map[string][]*ImageRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		clients:   make(map[string]*Client),
		projects:  make(map[string]*Project),
		steps:     make(map[string]map[int]*StepRecord),
		overrides: make(map[int]*PromptOverride),
		images:    make(map[string][]*ImageRecord),
	}
}

// -----------------------------------------------------------------------------
// Clients
// -----------------------------------------------------------------------------

func (m *Memory) CreateClient(ctx context.Context, c *Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.clients {
		if existing.Slug == c.Slug {
			return ErrSlugTaken
		}
	}

	if c.ID == "" {
		c.ID = NewID()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	cp := cloneClient(c)
	m.clients[c.ID] = cp
	return nil
}

func (m *Memory) Client(ctx context.Context, id string) (*Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneClient(c), nil
}

func (m *Memory) ClientBySlug(ctx context.Context, slug string) (*Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.clients {
		if c.Slug == slug {
			return cloneClient(c), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListClients(ctx context.Context) ([]*Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, cloneClient(c))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateClient(ctx context.Context, c *Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.clients[c.ID]
	if !ok {
		return ErrNotFound
	}
	if c.Slug != existing.Slug {
		for _, other := range m.clients {
			if other.ID != c.ID && other.Slug == c.Slug {
				return ErrSlugTaken
			}
		}
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	m.clients[c.ID] = cloneClient(c)
	return nil
}

func (m *Memory) DeleteClient(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[id]; !ok {
		return ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

// -----------------------------------------------------------------------------
// Projects
// -----------------------------------------------------------------------------

func (m *Memory) CreateProject(ctx context.Context, p *Project, stepNumbers []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	m.projects[p.ID] = cloneProject(p)

	records := make(map[int]*StepRecord, len(stepNumbers))
	for _, n := range stepNumbers {
		records[n] = &StepRecord{
			ProjectID:  p.ID,
			StepNumber: n,
			UpdatedAt:  now,
		}
	}
	m.steps[p.ID] = records
	return nil
}

func (m *Memory) Project(ctx context.Context, id string) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneProject(p), nil
}

func (m *Memory) ListProjects(ctx context.Context, clientID string) ([]*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Project, 0, len(m.projects))
	for _, p := range m.projects {
		if clientID != "" && p.ClientID != clientID {
			continue
		}
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateProject(ctx context.Context, p *Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.projects[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	m.projects[p.ID] = cloneProject(p)
	return nil
}

func (m *Memory) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	delete(m.steps, id)
	delete(m.images, id)
	return nil
}

// -----------------------------------------------------------------------------
// Step records
// -----------------------------------------------------------------------------

func (m *Memory) Step(ctx context.Context, projectID string, stepNumber int) (*StepRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.steps[projectID][stepNumber]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneStep(rec), nil
}

func (m *Memory) Steps(ctx context.Context, projectID string) ([]*StepRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records, ok := m.steps[projectID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]*StepRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, cloneStep(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StepNumber < out[j].StepNumber
	})
	return out, nil
}

func (m *Memory) UpdateStep(ctx context.Context, rec *StepRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.steps[rec.ProjectID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := records[rec.StepNumber]; !ok {
		return ErrNotFound
	}
	rec.UpdatedAt = time.Now()
	records[rec.StepNumber] = cloneStep(rec)
	return nil
}

func (m *Memory) AdvanceCursor(ctx context.Context, projectID string, validatedStep int, next ProjectStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[projectID]
	if !ok {
		return ErrNotFound
	}
	if p.CurrentStep > validatedStep {
		return nil
	}
	p.CurrentStep = validatedStep + 1
	p.Status = next
	p.UpdatedAt = time.Now()
	return nil
}

// -----------------------------------------------------------------------------
// Prompt overrides
// -----------------------------------------------------------------------------

func (m *Memory) ActiveOverride(ctx context.Context, stepNumber int) (*PromptOverride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.overrides[stepNumber]
	if !ok || !o.Active {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *Memory) ListOverrides(ctx context.Context) ([]*PromptOverride, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*PromptOverride, 0, len(m.overrides))
	for _, o := range m.overrides {
		if !o.Active {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StepNumber < out[j].StepNumber
	})
	return out, nil
}

func (m *Memory) SaveOverride(ctx context.Context, o *PromptOverride) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if existing, ok := m.overrides[o.StepNumber]; ok {
		o.ID = existing.ID
		o.Version = existing.Version + 1
		o.CreatedAt = existing.CreatedAt
	} else {
		if o.ID == "" {
			o.ID = NewID()
		}
		o.Version = 1
		o.CreatedAt = now
	}
	o.Active = true
	o.UpdatedAt = now

	cp := *o
	m.overrides[o.StepNumber] = &cp
	return nil
}

func (m *Memory) DeleteOverride(ctx context.Context, stepNumber int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.overrides, stepNumber)
	return nil
}

// -----------------------------------------------------------------------------
// Usage log
// -----------------------------------------------------------------------------

func (m *Memory) AppendUsage(ctx context.Context, u *UsageRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.ID == "" {
		u.ID = NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	m.usage = append(m.usage, &cp)
	return nil
}

func (m *Memory) ListUsage(ctx context.Context, f UsageFilter) ([]*UsageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*UsageRecord
	for _, u := range m.usage {
		if f.ProjectID != "" && u.ProjectID != f.ProjectID {
			continue
		}
		if f.Provider != "" && u.Provider != f.Provider {
			continue
		}
		if f.Model != "" && u.Model != f.Model {
			continue
		}
		if !f.After.IsZero() && u.CreatedAt.Before(f.After) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Images
// -----------------------------------------------------------------------------

func (m *Memory) SaveImage(ctx context.Context, img *ImageRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if img.ID == "" {
		img.ID = NewID()
	}
	now := time.Now()
	img.CreatedAt = now
	img.UpdatedAt = now

	cp := *img
	m.images[img.ProjectID] = append(m.images[img.ProjectID], &cp)
	return nil
}

func (m *Memory) UpdateImage(ctx context.Context, img *ImageRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.images[img.ProjectID] {
		if existing.ID == img.ID {
			img.CreatedAt = existing.CreatedAt
			img.UpdatedAt = time.Now()
			cp := *img
			m.images[img.ProjectID][i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Images(ctx context.Context, projectID string) ([]*ImageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	imgs := m.images[projectID]
	out := make([]*ImageRecord, 0, len(imgs))
	for _, img := range imgs {
		cp := *img
		out = append(out, &cp)
	}
	return out, nil
}

func (m *Memory) DeleteImages(ctx context.Context, projectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.images, projectID)
	return nil
}

// -----------------------------------------------------------------------------
// Clone helpers
// -----------------------------------------------------------------------------

func cloneClient(c *Client) *Client {
	cp := *c
	if c.Persona != nil {
		p := *c.Persona
		p.Problems = append([]string(nil), c.Persona.Problems...)
		p.Goals = append([]string(nil), c.Persona.Goals...)
		cp.Persona = &p
	}
	if c.Brand != nil {
		b := *c.Brand
		b.ForbiddenWords = append([]string(nil), c.Brand.ForbiddenWords...)
		cp.Brand = &b
	}
	return &cp
}

func cloneProject(p *Project) *Project {
	cp := *p
	cp.SearchIntents = append([]string(nil), p.SearchIntents...)
	return &cp
}

func cloneStep(rec *StepRecord) *StepRecord {
	cp := *rec
	if rec.Output != nil {
		out := *rec.Output
		out.Options = append([]string(nil), rec.Output.Options...)
		out.Titles = append([]string(nil), rec.Output.Titles...)
		out.Descriptions = append([]string(nil), rec.Output.Descriptions...)
		if rec.Output.SelectedIndex != nil {
			v := *rec.Output.SelectedIndex
			out.SelectedIndex = &v
		}
		if rec.Output.SelectedTitleIndex != nil {
			v := *rec.Output.SelectedTitleIndex
			out.SelectedTitleIndex = &v
		}
		if rec.Output.SelectedDescriptionIndex != nil {
			v := *rec.Output.SelectedDescriptionIndex
			out.SelectedDescriptionIndex = &v
		}
		cp.Output = &out
	}
	if rec.ValidatedAt != nil {
		t := *rec.ValidatedAt
		cp.ValidatedAt = &t
	}
	return &cp
}
