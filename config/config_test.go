package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.LLM.Model != "claude-sonnet-4-20250514" {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
	if cfg.Images.Quality != "standard" {
		t.Errorf("Images.Quality = %q", cfg.Images.Quality)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
listen: ":9090"
llm:
  model: claude-haiku-3-5-20241022
images:
  quality: hd
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.LLM.Model != "claude-haiku-3-5-20241022" {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
	if cfg.Images.Quality != "hd" {
		t.Errorf("Images.Quality = %q", cfg.Images.Quality)
	}
	// Untouched keys keep their defaults.
	if cfg.DatabasePath != "articleflow.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ARTICLEFLOW_LISTEN", ":7070")
	t.Setenv("ARTICLEFLOW_LLM_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":7070" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Errorf("LLM.APIKey = %q", cfg.LLM.APIKey)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("ARTICLEFLOW_IMAGES_QUALITY", "ultra")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid quality")
	}
}
