package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"articleflow"
)

// WordPress pushes articles as posts through the WordPress REST API
// using application-password basic auth.
type WordPress struct {
	// BaseURL is the site root, e.g. "https://blog.example.com".
	BaseURL string
	// Username and AppPassword authenticate the request.
	Username    string
	AppPassword string
	// Status is the post status, "draft" unless set.
	Status string

	Client *http.Client
}

// wpPost is the REST payload for creating a post.
type wpPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt,omitempty"`
	Status  string `json:"status"`
}

// wpPostResp is the subset of the creation response we use.
type wpPostResp struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// Publish creates a post from the article and returns its URL. The
// content is the converted HTML body; meta description becomes the
// excerpt. A failed push is returned as-is, never retried.
func (w *WordPress) Publish(ctx context.Context, a *articleflow.AssembledArticle) (string, error) {
	body, err := bodyHTML(a)
	if err != nil {
		return "", err
	}

	status := w.Status
	if status == "" {
		status = "draft"
	}
	payload, err := json.Marshal(wpPost{
		Title:   a.MetaTitle,
		Content: body,
		Excerpt: a.MetaDescription,
		Status:  status,
	})
	if err != nil {
		return "", fmt.Errorf("marshal post: %w", err)
	}

	url := strings.TrimRight(w.BaseURL, "/") + "/wp-json/wp/v2/posts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(w.Username, w.AppPassword)

	client := w.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("push post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("wordpress returned %d: %s", resp.StatusCode, detail)
	}

	var created wpPostResp
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return created.Link, nil
}
