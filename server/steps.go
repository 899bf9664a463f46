package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"articleflow"
	"articleflow/notify"
	"articleflow/store"
)

// ===== Steps =====

func (s *Server) handleStepDefinitions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, articleflow.WorkflowSteps)
}

func (s *Server) handleStepList(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.store.Project(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	steps, err := s.store.Steps(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, steps)
}

func (s *Server) handleStepGet(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}
	rec, err := s.store.Step(r.Context(), r.PathValue("id"), step)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type stepUpdateReq struct {
	OutputText string `json:"outputText"`
}

// handleStepUpdate saves an operator edit of the step's raw text
// without touching its validation state.
func (s *Server) handleStepUpdate(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}
	var req stepUpdateReq
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	rec, err := s.store.Step(r.Context(), r.PathValue("id"), step)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rec.OutputText = req.OutputText
	if rec.Output != nil && rec.Output.Type == "text" {
		rec.Output.Text = req.OutputText
	}
	if err := s.store.UpdateStep(r.Context(), rec); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleStepGenerate streams the generation as server-sent events: one
// data frame per engine event, closed after the terminal done or error
// event. A dropped connection cancels the generation and nothing is
// persisted.
func (s *Server) handleStepGenerate(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}

	events, err := s.coord.Generate(r.Context(), r.PathValue("id"), step)
	if err != nil {
		s.writeError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, fmt.Errorf("response writer does not support streaming"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

type validateResp struct {
	Step    *store.StepRecord `json:"step"`
	Project *store.Project    `json:"project"`
}

func (s *Server) handleStepValidate(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}
	var input articleflow.ValidationInput
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := articleflow.Validate(r.Context(), s.store, id, step, input); err != nil {
		s.writeError(w, err)
		return
	}

	rec, err := s.store.Step(r.Context(), id, step)
	if err != nil {
		s.writeError(w, err)
		return
	}
	p, err := s.store.Project(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	def, _ := articleflow.StepByNumber(step)
	s.notify(r.Context(), notify.Event{
		Type:       notify.EventStepValidated,
		ProjectID:  id,
		StepNumber: step,
		Message:    fmt.Sprintf("étape %d validée : %s", step, def.Name),
		Severity:   notify.SeverityInfo,
	})
	if p.Status == store.StatusCompleted {
		s.notify(r.Context(), notify.Event{
			Type:      notify.EventProjectCompleted,
			ProjectID: id,
			Message:   fmt.Sprintf("projet terminé : %s", p.Title),
			Severity:  notify.SeverityInfo,
		})
	}

	writeJSON(w, http.StatusOK, validateResp{Step: rec, Project: p})
}
