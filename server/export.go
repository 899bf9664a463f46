package server

import (
	"context"
	"fmt"
	"net/http"

	"articleflow"
	"articleflow/export"
	"articleflow/imagegen"
	"articleflow/notify"
	"articleflow/store"
)

// ===== Article assembly and export =====

func (s *Server) assembled(ctx context.Context, projectID string) (*store.Project, *articleflow.AssembledArticle, error) {
	p, err := s.store.Project(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	steps, err := s.store.Steps(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	imgs, err := s.store.Images(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	return p, articleflow.AssembleArticle(p, steps, imgs), nil
}

func (s *Server) handleArticleGet(w http.ResponseWriter, r *http.Request) {
	_, article, err := s.assembled(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleExportMarkdown(w http.ResponseWriter, r *http.Request) {
	p, article, err := s.assembled(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	withFrontMatter := r.URL.Query().Get("front_matter") != "false"
	name := imagegen.SanitizeFilename(p.Keyword + ".md")
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	fmt.Fprint(w, export.Markdown(article, withFrontMatter))
}

func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	_, article, err := s.assembled(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	page, err := export.HTML(article)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

type wordpressResp struct {
	Link string `json:"link"`
}

// handleExportWordPress pushes the assembled article to the configured
// WordPress site and marks the project published. The push is never
// retried; the operator re-triggers it after fixing the cause.
func (s *Server) handleExportWordPress(w http.ResponseWriter, r *http.Request) {
	if s.wordpress == nil {
		writeJSON(w, http.StatusNotImplemented, errResp{Error: "wordpress export is not configured"})
		return
	}

	id := r.PathValue("id")
	p, article, err := s.assembled(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	link, err := s.wordpress.Publish(r.Context(), article)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errResp{Error: err.Error()})
		return
	}

	p.Status = store.StatusPublished
	if err := s.store.UpdateProject(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}

	s.notify(r.Context(), notify.Event{
		Type:      notify.EventArticleExported,
		ProjectID: id,
		Message:   fmt.Sprintf("article exporté vers WordPress : %s", article.Title),
		Severity:  notify.SeverityInfo,
		Metadata:  map[string]any{"link": link},
	})
	writeJSON(w, http.StatusOK, wordpressResp{Link: link})
}
