package articleflow

import (
	"math"
	"testing"
	"time"

	"articleflow/store"
	"articleflow/testutil"
)

func TestBuildCostReport(t *testing.T) {
	ctx := testutil.TestContext(t)
	st := store.NewMemory()

	step := StepArticle
	records := []*store.UsageRecord{
		{ProjectID: "p1", StepNumber: &step, Provider: "anthropic",
			Model: "claude-sonnet-4-20250514", InputTokens: 1000, OutputTokens: 1000, CostUSD: 0.018},
		{ProjectID: "p1", Provider: "openai", Model: "dall-e-3", CostUSD: 0.04},
		{ProjectID: "p2", Provider: "anthropic",
			Model: "claude-haiku-3-5-20241022", InputTokens: 500, OutputTokens: 100, CostUSD: 0.001},
	}
	for _, u := range records {
		if err := st.AppendUsage(ctx, u); err != nil {
			t.Fatalf("AppendUsage: %v", err)
		}
	}

	report, err := BuildCostReport(ctx, st, store.UsageFilter{})
	if err != nil {
		t.Fatalf("BuildCostReport: %v", err)
	}

	if report.Records != 3 {
		t.Errorf("Records = %d", report.Records)
	}
	if math.Abs(report.TotalUSD-0.059) > 1e-9 {
		t.Errorf("TotalUSD = %v", report.TotalUSD)
	}
	if report.InputTokens != 1500 || report.OutputTokens != 1100 {
		t.Errorf("tokens = %d/%d", report.InputTokens, report.OutputTokens)
	}
	if math.Abs(report.ByProvider["anthropic"]-0.019) > 1e-9 {
		t.Errorf("ByProvider = %v", report.ByProvider)
	}
	if math.Abs(report.ByProject["p1"]-0.058) > 1e-9 {
		t.Errorf("ByProject = %v", report.ByProject)
	}
	day := time.Now().UTC().Format("2006-01-02")
	if math.Abs(report.ByDay[day]-0.059) > 1e-9 {
		t.Errorf("ByDay = %v", report.ByDay)
	}

	filtered, err := BuildCostReport(ctx, st, store.UsageFilter{ProjectID: "p2"})
	if err != nil {
		t.Fatalf("BuildCostReport filtered: %v", err)
	}
	if filtered.Records != 1 || math.Abs(filtered.TotalUSD-0.001) > 1e-9 {
		t.Errorf("filtered = %+v", filtered)
	}
}
