package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is a file-backed Store using the pure-Go sqlite driver.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite store at path. Use
// ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The driver is single-writer; serializing access avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	slug       TEXT NOT NULL UNIQUE,
	persona    TEXT,
	brand      TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS projects (
	id             TEXT PRIMARY KEY,
	client_id      TEXT NOT NULL,
	keyword        TEXT NOT NULL,
	title          TEXT NOT NULL DEFAULT '',
	search_intents TEXT,
	current_step   INTEGER NOT NULL DEFAULT 0,
	status         TEXT NOT NULL DEFAULT 'draft',
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS workflow_steps (
	project_id   TEXT NOT NULL,
	step_number  INTEGER NOT NULL,
	output_text  TEXT NOT NULL DEFAULT '',
	output_data  TEXT,
	tokens_used  INTEGER NOT NULL DEFAULT 0,
	cost_usd     REAL NOT NULL DEFAULT 0,
	is_validated INTEGER NOT NULL DEFAULT 0,
	validated_at TIMESTAMP,
	updated_at   TIMESTAMP NOT NULL,
	PRIMARY KEY (project_id, step_number)
);
CREATE TABLE IF NOT EXISTS prompt_templates (
	id                   TEXT PRIMARY KEY,
	step_number          INTEGER NOT NULL UNIQUE,
	step_name            TEXT NOT NULL,
	system_prompt        TEXT NOT NULL,
	user_prompt_template TEXT NOT NULL,
	version              INTEGER NOT NULL DEFAULT 1,
	is_active            INTEGER NOT NULL DEFAULT 1,
	created_at           TIMESTAMP NOT NULL,
	updated_at           TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS api_usage_logs (
	id            TEXT PRIMARY KEY,
	project_id    TEXT,
	step_number   INTEGER,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	cost_usd      REAL NOT NULL DEFAULT 0,
	created_at    TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS generated_images (
	id             TEXT PRIMARY KEY,
	project_id     TEXT NOT NULL,
	filename       TEXT NOT NULL,
	prompt         TEXT NOT NULL,
	revised_prompt TEXT NOT NULL DEFAULT '',
	path           TEXT NOT NULL DEFAULT '',
	url            TEXT NOT NULL DEFAULT '',
	alt_text       TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL DEFAULT 'pending',
	cost_usd       REAL NOT NULL DEFAULT 0,
	error          TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Clients
// -----------------------------------------------------------------------------

func (s *SQLite) CreateClient(ctx context.Context, c *Client) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM clients WHERE slug = ?`, c.Slug).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrSlugTaken
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, slug, persona, brand, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Slug, marshalJSON(c.Persona), marshalJSON(c.Brand),
		c.CreatedAt, c.UpdatedAt)
	return err
}

func (s *SQLite) Client(ctx context.Context, id string) (*Client, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, slug, persona, brand, created_at, updated_at
		FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

func (s *SQLite) ClientBySlug(ctx context.Context, slug string) (*Client, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, slug, persona, brand, created_at, updated_at
		FROM clients WHERE slug = ?`, slug)
	return scanClient(row)
}

func (s *SQLite) ListClients(ctx context.Context) ([]*Client, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, slug, persona, brand, created_at, updated_at
		FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLite) UpdateClient(ctx context.Context, c *Client) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM clients WHERE slug = ? AND id != ?`, c.Slug, c.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrSlugTaken
	}

	c.UpdatedAt = time.Now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE clients SET name = ?, slug = ?, persona = ?, brand = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Slug, marshalJSON(c.Persona), marshalJSON(c.Brand), c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLite) DeleteClient(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// -----------------------------------------------------------------------------
// Projects
// -----------------------------------------------------------------------------

func (s *SQLite) CreateProject(ctx context.Context, p *Project, stepNumbers []int) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO projects (id, client_id, keyword, title, search_intents,
			current_step, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ClientID, p.Keyword, p.Title, marshalJSON(p.SearchIntents),
		p.CurrentStep, string(p.Status), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return err
	}

	for _, n := range stepNumbers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workflow_steps (project_id, step_number, updated_at)
			VALUES (?, ?, ?)`, p.ID, n, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Project(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_id, keyword, title, search_intents, current_step,
			status, created_at, updated_at
		FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (s *SQLite) ListProjects(ctx context.Context, clientID string) ([]*Project, error) {
	query := `
		SELECT id, client_id, keyword, title, search_intents, current_step,
			status, created_at, updated_at
		FROM projects`
	args := []any{}
	if clientID != "" {
		query += ` WHERE client_id = ?`
		args = append(args, clientID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLite) UpdateProject(ctx context.Context, p *Project) error {
	p.UpdatedAt = time.Now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET keyword = ?, title = ?, search_intents = ?,
			current_step = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		p.Keyword, p.Title, marshalJSON(p.SearchIntents),
		p.CurrentStep, string(p.Status), p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLite) DeleteProject(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workflow_steps WHERE project_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM generated_images WHERE project_id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// -----------------------------------------------------------------------------
// Step records
// -----------------------------------------------------------------------------

func (s *SQLite) Step(ctx context.Context, projectID string, stepNumber int) (*StepRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT project_id, step_number, output_text, output_data, tokens_used,
			cost_usd, is_validated, validated_at, updated_at
		FROM workflow_steps WHERE project_id = ? AND step_number = ?`,
		projectID, stepNumber)
	return scanStep(row)
}

func (s *SQLite) Steps(ctx context.Context, projectID string) ([]*StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_id, step_number, output_text, output_data, tokens_used,
			cost_usd, is_validated, validated_at, updated_at
		FROM workflow_steps WHERE project_id = ? ORDER BY step_number`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*StepRecord
	for rows.Next() {
		rec, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *SQLite) UpdateStep(ctx context.Context, rec *StepRecord) error {
	rec.UpdatedAt = time.Now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE workflow_steps SET output_text = ?, output_data = ?,
			tokens_used = ?, cost_usd = ?, is_validated = ?, validated_at = ?,
			updated_at = ?
		WHERE project_id = ? AND step_number = ?`,
		rec.OutputText, marshalJSON(rec.Output), rec.TokensUsed, rec.CostUSD,
		rec.Validated, nullableTime(rec.ValidatedAt), rec.UpdatedAt,
		rec.ProjectID, rec.StepNumber)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLite) AdvanceCursor(ctx context.Context, projectID string, validatedStep int, next ProjectStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET current_step = ?, status = ?, updated_at = ?
		WHERE id = ? AND current_step <= ?`,
		validatedStep+1, string(next), time.Now(), projectID, validatedStep)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the cursor is already past the step (fine) or the project
		// is gone.
		var exists int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM projects WHERE id = ?`, projectID).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Prompt overrides
// -----------------------------------------------------------------------------

func (s *SQLite) ActiveOverride(ctx context.Context, stepNumber int) (*PromptOverride, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, step_number, step_name, system_prompt, user_prompt_template,
			version, is_active, created_at, updated_at
		FROM prompt_templates WHERE step_number = ? AND is_active = 1`, stepNumber)
	return scanOverride(row)
}

func (s *SQLite) ListOverrides(ctx context.Context) ([]*PromptOverride, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, step_number, step_name, system_prompt, user_prompt_template,
			version, is_active, created_at, updated_at
		FROM prompt_templates WHERE is_active = 1 ORDER BY step_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*PromptOverride
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLite) SaveOverride(ctx context.Context, o *PromptOverride) error {
	now := time.Now()
	existing, err := s.ActiveOverride(ctx, o.StepNumber)
	switch {
	case err == nil:
		o.ID = existing.ID
		o.Version = existing.Version + 1
		o.CreatedAt = existing.CreatedAt
		o.Active = true
		o.UpdatedAt = now
		_, err = s.db.ExecContext(ctx, `
			UPDATE prompt_templates SET step_name = ?, system_prompt = ?,
				user_prompt_template = ?, version = ?, updated_at = ?
			WHERE id = ?`,
			o.StepName, o.SystemPrompt, o.UserPromptTemplate, o.Version,
			o.UpdatedAt, o.ID)
		return err
	case IsNotFound(err):
		if o.ID == "" {
			o.ID = NewID()
		}
		o.Version = 1
		o.Active = true
		o.CreatedAt = now
		o.UpdatedAt = now
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO prompt_templates (id, step_number, step_name,
				system_prompt, user_prompt_template, version, is_active,
				created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)`,
			o.ID, o.StepNumber, o.StepName, o.SystemPrompt,
			o.UserPromptTemplate, o.Version, o.CreatedAt, o.UpdatedAt)
		return err
	default:
		return err
	}
}

func (s *SQLite) DeleteOverride(ctx context.Context, stepNumber int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM prompt_templates WHERE step_number = ?`, stepNumber)
	return err
}

// -----------------------------------------------------------------------------
// Usage log
// -----------------------------------------------------------------------------

func (s *SQLite) AppendUsage(ctx context.Context, u *UsageRecord) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	var step sql.NullInt64
	if u.StepNumber != nil {
		step = sql.NullInt64{Int64: int64(*u.StepNumber), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO api_usage_logs (id, project_id, step_number, provider,
			model, input_tokens, output_tokens, cost_usd, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.ProjectID, step, u.Provider, u.Model,
		u.InputTokens, u.OutputTokens, u.CostUSD, u.CreatedAt)
	return err
}

func (s *SQLite) ListUsage(ctx context.Context, f UsageFilter) ([]*UsageRecord, error) {
	query := `
		SELECT id, project_id, step_number, provider, model, input_tokens,
			output_tokens, cost_usd, created_at
		FROM api_usage_logs WHERE 1=1`
	args := []any{}
	if f.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, f.ProjectID)
	}
	if f.Provider != "" {
		query += ` AND provider = ?`
		args = append(args, f.Provider)
	}
	if f.Model != "" {
		query += ` AND model = ?`
		args = append(args, f.Model)
	}
	if !f.After.IsZero() {
		query += ` AND created_at >= ?`
		args = append(args, f.After)
	}
	query += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*UsageRecord
	for rows.Next() {
		u := &UsageRecord{}
		var step sql.NullInt64
		if err := rows.Scan(&u.ID, &u.ProjectID, &step, &u.Provider, &u.Model,
			&u.InputTokens, &u.OutputTokens, &u.CostUSD, &u.CreatedAt); err != nil {
			return nil, err
		}
		if step.Valid {
			n := int(step.Int64)
			u.StepNumber = &n
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Images
// -----------------------------------------------------------------------------

func (s *SQLite) SaveImage(ctx context.Context, img *ImageRecord) error {
	if img.ID == "" {
		img.ID = NewID()
	}
	now := time.Now()
	img.CreatedAt = now
	img.UpdatedAt = now
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generated_images (id, project_id, filename, prompt,
			revised_prompt, path, url, alt_text, status, cost_usd, error,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		img.ID, img.ProjectID, img.Filename, img.Prompt, img.RevisedPrompt,
		img.Path, img.URL, img.AltText, string(img.Status), img.CostUSD,
		img.Error, img.CreatedAt, img.UpdatedAt)
	return err
}

func (s *SQLite) UpdateImage(ctx context.Context, img *ImageRecord) error {
	img.UpdatedAt = time.Now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE generated_images SET filename = ?, prompt = ?, revised_prompt = ?,
			path = ?, url = ?, alt_text = ?, status = ?, cost_usd = ?, error = ?,
			updated_at = ?
		WHERE id = ?`,
		img.Filename, img.Prompt, img.RevisedPrompt, img.Path, img.URL,
		img.AltText, string(img.Status), img.CostUSD, img.Error,
		img.UpdatedAt, img.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *SQLite) Images(ctx context.Context, projectID string) ([]*ImageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, filename, prompt, revised_prompt, path, url,
			alt_text, status, cost_usd, error, created_at, updated_at
		FROM generated_images WHERE project_id = ? ORDER BY created_at`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ImageRecord
	for rows.Next() {
		img := &ImageRecord{}
		var status string
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.Filename, &img.Prompt,
			&img.RevisedPrompt, &img.Path, &img.URL, &img.AltText, &status,
			&img.CostUSD, &img.Error, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, err
		}
		img.Status = ImageStatus(status)
		out = append(out, img)
	}
	return out, rows.Err()
}

func (s *SQLite) DeleteImages(ctx context.Context, projectID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM generated_images WHERE project_id = ?`, projectID)
	return err
}

// -----------------------------------------------------------------------------
// Scan helpers
// -----------------------------------------------------------------------------

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (*Client, error) {
	c := &Client{}
	var persona, brand sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &persona, &brand,
		&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if persona.Valid && persona.String != "" {
		c.Persona = &Persona{}
		if err := json.Unmarshal([]byte(persona.String), c.Persona); err != nil {
			return nil, fmt.Errorf("decode persona: %w", err)
		}
	}
	if brand.Valid && brand.String != "" {
		c.Brand = &BrandGuidelines{}
		if err := json.Unmarshal([]byte(brand.String), c.Brand); err != nil {
			return nil, fmt.Errorf("decode brand guidelines: %w", err)
		}
	}
	return c, nil
}

func scanProject(row scanner) (*Project, error) {
	p := &Project{}
	var intents sql.NullString
	var status string
	err := row.Scan(&p.ID, &p.ClientID, &p.Keyword, &p.Title, &intents,
		&p.CurrentStep, &status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Status = ProjectStatus(status)
	if intents.Valid && intents.String != "" {
		if err := json.Unmarshal([]byte(intents.String), &p.SearchIntents); err != nil {
			return nil, fmt.Errorf("decode search intents: %w", err)
		}
	}
	return p, nil
}

func scanStep(row scanner) (*StepRecord, error) {
	rec := &StepRecord{}
	var output sql.NullString
	var validatedAt sql.NullTime
	err := row.Scan(&rec.ProjectID, &rec.StepNumber, &rec.OutputText, &output,
		&rec.TokensUsed, &rec.CostUSD, &rec.Validated, &validatedAt,
		&rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if output.Valid && output.String != "" {
		rec.Output = &StepOutput{}
		if err := json.Unmarshal([]byte(output.String), rec.Output); err != nil {
			return nil, fmt.Errorf("decode step output: %w", err)
		}
	}
	if validatedAt.Valid {
		rec.ValidatedAt = &validatedAt.Time
	}
	return rec, nil
}

func scanOverride(row scanner) (*PromptOverride, error) {
	o := &PromptOverride{}
	err := row.Scan(&o.ID, &o.StepNumber, &o.StepName, &o.SystemPrompt,
		&o.UserPromptTemplate, &o.Version, &o.Active, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func marshalJSON(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(data)
	if s == "null" {
		return nil
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
