package server

import (
	"net/http"

	"articleflow"
	"articleflow/prompt"
	"articleflow/store"
)

// ===== Prompt overrides =====

// promptResp pairs a step's default templates with its active
// override, if any.
type promptResp struct {
	StepNumber int                   `json:"stepNumber"`
	StepName   string                `json:"stepName"`
	System     string                `json:"systemPrompt"`
	User       string                `json:"userPromptTemplate"`
	Override   *store.PromptOverride `json:"override,omitempty"`
}

func (s *Server) handlePromptList(w http.ResponseWriter, r *http.Request) {
	overrides, err := s.store.ListOverrides(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	byStep := make(map[int]*store.PromptOverride, len(overrides))
	for _, o := range overrides {
		byStep[o.StepNumber] = o
	}

	out := make([]promptResp, 0, len(articleflow.WorkflowSteps))
	for _, def := range articleflow.WorkflowSteps {
		if !def.Generable() {
			continue
		}
		tpl := prompt.Defaults[def.Number]
		out = append(out, promptResp{
			StepNumber: def.Number,
			StepName:   def.Name,
			System:     tpl.System,
			User:       tpl.User,
			Override:   byStep[def.Number],
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePromptGet(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}
	def, ok := articleflow.StepByNumber(step)
	if !ok {
		s.writeError(w, articleflow.ErrStepNotFound)
		return
	}

	resp := promptResp{StepNumber: def.Number, StepName: def.Name}
	tpl := prompt.Defaults[def.Number]
	resp.System = tpl.System
	resp.User = tpl.User

	if o, err := s.store.ActiveOverride(r.Context(), step); err == nil {
		resp.Override = o
	} else if !store.IsNotFound(err) {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type promptSaveReq struct {
	SystemPrompt       string `json:"systemPrompt"`
	UserPromptTemplate string `json:"userPromptTemplate"`
}

// handlePromptSave installs a new active override for the step. Saving
// over an existing override bumps its version.
func (s *Server) handlePromptSave(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}
	def, ok := articleflow.StepByNumber(step)
	if !ok {
		s.writeError(w, articleflow.ErrStepNotFound)
		return
	}

	var req promptSaveReq
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if req.SystemPrompt == "" && req.UserPromptTemplate == "" {
		badRequest(w, "systemPrompt or userPromptTemplate required")
		return
	}

	o := &store.PromptOverride{
		StepNumber:         step,
		StepName:           def.Name,
		SystemPrompt:       req.SystemPrompt,
		UserPromptTemplate: req.UserPromptTemplate,
		Active:             true,
	}
	if err := s.store.SaveOverride(r.Context(), o); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handlePromptDelete(w http.ResponseWriter, r *http.Request) {
	step, err := stepNumber(r)
	if err != nil {
		badRequest(w, "invalid step number")
		return
	}
	if err := s.store.DeleteOverride(r.Context(), step); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
