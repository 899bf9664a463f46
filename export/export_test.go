package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"articleflow"
)

func sample() *articleflow.AssembledArticle {
	return &articleflow.AssembledArticle{
		Title:           "Tendances broderie 2026",
		MetaTitle:       "Tendances broderie : le guide",
		MetaDescription: "Tout savoir sur la broderie cette année.",
		Introduction:    "La broderie revient en force.",
		Body:            "## Les motifs\n\nLes motifs floraux dominent.",
		StructuredData:  `{"@type":"Article"}`,
		FullMarkdown:    "---\ntitle: \"Tendances broderie : le guide\"\n---\n\n# Tendances broderie 2026",
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "article.md")
	if err := WriteMarkdown(sample(), path); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != sample().FullMarkdown {
		t.Errorf("written content = %q", data)
	}
}

func TestMarkdownFrontMatter(t *testing.T) {
	a := sample()
	if got := Markdown(a, true); got != a.FullMarkdown {
		t.Errorf("with front matter = %q", got)
	}
	if got := Markdown(a, false); got != "# Tendances broderie 2026" {
		t.Errorf("without front matter = %q", got)
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML(sample())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{
		"<title>Tendances broderie : le guide</title>",
		`<meta name="description"`,
		`<script type="application/ld+json">`,
		"<h1", // title heading converted
		"<h2", // body section converted
		"Les motifs floraux dominent.",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q:\n%s", want, page)
		}
	}
}

func TestWordPress_Publish(t *testing.T) {
	var got struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Excerpt string `json:"excerpt"`
		Status  string `json:"status"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rédac" || pass != "secret" {
			t.Errorf("auth = %q/%q/%v", user, pass, ok)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 12, "link": "https://blog.example.com/article"})
	}))
	defer srv.Close()

	wp := &WordPress{BaseURL: srv.URL, Username: "rédac", AppPassword: "secret"}
	link, err := wp.Publish(context.Background(), sample())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if link != "https://blog.example.com/article" {
		t.Errorf("link = %q", link)
	}
	if got.Title != "Tendances broderie : le guide" || got.Status != "draft" {
		t.Errorf("payload = %+v", got)
	}
	if !strings.Contains(got.Content, "<h2") {
		t.Errorf("content not converted: %q", got.Content)
	}
	if got.Excerpt != "Tout savoir sur la broderie cette année." {
		t.Errorf("excerpt = %q", got.Excerpt)
	}
}

func TestWordPress_ErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"code":"rest_cannot_create"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	wp := &WordPress{BaseURL: srv.URL, Username: "u", AppPassword: "p"}
	if _, err := wp.Publish(context.Background(), sample()); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("server called %d times, want 1", calls)
	}
}
