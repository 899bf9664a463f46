package articleflow

import (
	"context"

	"articleflow/store"
)

// CostReport aggregates usage charges along the axes the operator cares
// about. Day keys use the "2006-01-02" form in UTC.
type CostReport struct {
	TotalUSD     float64            `json:"totalUsd"`
	InputTokens  int                `json:"inputTokens"`
	OutputTokens int                `json:"outputTokens"`
	Records      int                `json:"records"`
	ByProvider   map[string]float64 `json:"byProvider"`
	ByModel      map[string]float64 `json:"byModel"`
	ByProject    map[string]float64 `json:"byProject"`
	ByDay        map[string]float64 `json:"byDay"`
}

// BuildCostReport aggregates the usage log, narrowed by filter.
func BuildCostReport(ctx context.Context, st store.Store, filter store.UsageFilter) (*CostReport, error) {
	records, err := st.ListUsage(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &CostReport{
		ByProvider: make(map[string]float64),
		ByModel:    make(map[string]float64),
		ByProject:  make(map[string]float64),
		ByDay:      make(map[string]float64),
	}
	for _, u := range records {
		report.TotalUSD += u.CostUSD
		report.InputTokens += u.InputTokens
		report.OutputTokens += u.OutputTokens
		report.Records++
		report.ByProvider[u.Provider] += u.CostUSD
		report.ByModel[u.Model] += u.CostUSD
		if u.ProjectID != "" {
			report.ByProject[u.ProjectID] += u.CostUSD
		}
		report.ByDay[u.CreatedAt.UTC().Format("2006-01-02")] += u.CostUSD
	}
	return report, nil
}
