package server

import (
	"net/http"

	"articleflow"
	"articleflow/store"
)

// ===== Projects =====

type projectCreateReq struct {
	ClientID      string   `json:"clientId"`
	Keyword       string   `json:"keyword"`
	Title         string   `json:"title"`
	SearchIntents []string `json:"searchIntents"`
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req projectCreateReq
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.ClientID == "" || req.Keyword == "" {
		badRequest(w, "clientId and keyword are required")
		return
	}
	if _, err := s.store.Client(r.Context(), req.ClientID); err != nil {
		s.writeError(w, err)
		return
	}

	p := &store.Project{
		ClientID:      req.ClientID,
		Keyword:       req.Keyword,
		Title:         req.Title,
		SearchIntents: req.SearchIntents,
		Status:        store.StatusDraft,
	}
	if err := s.store.CreateProject(r.Context(), p, articleflow.StepNumbers()); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleProjectList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context(), r.URL.Query().Get("clientId"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Project(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.coord.Cancel(id)
	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleProjectCancel stops the project's in-flight generation, if
// any. Cancelling an idle project is a no-op.
func (s *Server) handleProjectCancel(w http.ResponseWriter, r *http.Request) {
	s.coord.Cancel(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
