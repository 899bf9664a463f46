package imagegen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver writes generated images under a per-project asset directory.
type Saver struct {
	// Root is the local directory assets live in.
	Root string
	// BaseURL is the public prefix exported articles reference,
	// "/uploads/images" by default.
	BaseURL string
}

// Saved reports where an asset landed.
type Saved struct {
	Filename string
	Path     string
	URL      string
}

// Save writes data as projectID/<sanitized filename> under the root and
// returns the local path and public URL.
func (s *Saver) Save(projectID, filename string, data []byte) (*Saved, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil, fmt.Errorf("unusable filename %q", filename)
	}

	dir := filepath.Join(s.Root, projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write asset: %w", err)
	}

	base := s.BaseURL
	if base == "" {
		base = "/uploads/images"
	}
	return &Saved{
		Filename: name,
		Path:     path,
		URL:      base + "/" + projectID + "/" + name,
	}, nil
}
