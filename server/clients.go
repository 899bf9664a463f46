package server

import (
	"net/http"

	"articleflow/store"
)

// ===== Clients =====

func (s *Server) handleClientCreate(w http.ResponseWriter, r *http.Request) {
	var c store.Client
	if err := decodeBody(r, &c); err != nil {
		badRequest(w, err.Error())
		return
	}
	if c.Name == "" || c.Slug == "" {
		badRequest(w, "name and slug are required")
		return
	}
	if err := s.store.CreateClient(r.Context(), &c); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleClientList(w http.ResponseWriter, r *http.Request) {
	clients, err := s.store.ListClients(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) handleClientGet(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Client(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleClientUpdate(w http.ResponseWriter, r *http.Request) {
	var c store.Client
	if err := decodeBody(r, &c); err != nil {
		badRequest(w, err.Error())
		return
	}
	c.ID = r.PathValue("id")
	if c.Name == "" || c.Slug == "" {
		badRequest(w, "name and slug are required")
		return
	}
	if err := s.store.UpdateClient(r.Context(), &c); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.store.Client(r.Context(), c.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleClientDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteClient(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
