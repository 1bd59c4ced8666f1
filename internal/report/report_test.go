package report

import (
	"strings"
	"testing"

	"investwise-api/internal/advisor"
	"investwise-api/internal/models"
)

func buildReport() Report {
	profile := models.UserProfile{
		UserID:               "u-1",
		Name:                 "Meena Iyer",
		Age:                  58,
		Occupation:           "Teacher",
		Income:               900000,
		InvestmentExperience: models.Beginner,
		RiskTolerance:        models.LowRisk,
		FinancialGoals:       []string{"retirement"},
		InvestmentTimeline:   "5-10 years",
	}
	engine := advisor.NewEngine(advisor.DefaultCatalog())
	assessment := engine.Assess(profile)
	return Report{
		Profile:        profile,
		Assessment:     assessment,
		Recommendation: engine.Recommend(profile, assessment),
	}
}

func TestMarkdown(t *testing.T) {
	r := buildReport()
	out, err := Markdown(r)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	for _, want := range []string{
		"# Investment Plan for Meena Iyer",
		r.Assessment.BehavioralProfile,
		"## Allocation",
		"| debt |",
		"## Funds",
		r.Recommendation.MutualFunds[0].Name,
		"### Foundation",
		"## Risk mitigation",
		string(r.Recommendation.RebalancingFrequency),
		advisor.FormatINR(float64(r.Recommendation.SIPRecommendation.TotalMonthlySIP)),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "<no value>") {
		t.Error("report has unresolved template fields")
	}
}

func TestAllocationRowsFollowCategoryOrder(t *testing.T) {
	r := buildReport()
	rows := r.Allocation()
	if len(rows) != len(r.Recommendation.PortfolioAllocation) {
		t.Fatalf("got %d rows for %d categories", len(rows), len(r.Recommendation.PortfolioAllocation))
	}
	order := map[models.Category]int{}
	for i, c := range models.Categories {
		order[c] = i
	}
	for i := 1; i < len(rows); i++ {
		if order[rows[i-1].Category] > order[rows[i].Category] {
			t.Errorf("rows out of order: %v before %v", rows[i-1].Category, rows[i].Category)
		}
	}
}
