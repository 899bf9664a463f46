package server

import (
	"net/http"
	"strconv"
	"time"

	"articleflow"
	"articleflow/store"
)

// ===== Usage report =====

// handleUsageReport aggregates the usage log. Query parameters:
// projectId, provider, model, days (look-back window, default 7) and
// limit (number of recent entries kept in the response).
func (s *Server) handleUsageReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days := 7
	if raw := q.Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "invalid days")
			return
		}
		days = n
	}

	filter := store.UsageFilter{
		ProjectID: q.Get("projectId"),
		Provider:  q.Get("provider"),
		Model:     q.Get("model"),
	}
	if days > 0 {
		filter.After = time.Now().AddDate(0, 0, -days)
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "invalid limit")
			return
		}
		filter.Limit = n
	}

	report, err := articleflow.BuildCostReport(r.Context(), s.store, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
