// Package report renders an advisory result as a markdown document.
package report

import (
	"fmt"
	"strings"
	"text/template"

	"investwise-api/internal/advisor"
	"investwise-api/internal/models"
)

// Report bundles everything shown in one advisory document.
type Report struct {
	Profile        models.UserProfile
	Assessment     models.BehavioralAssessment
	Recommendation models.Recommendation
}

// Allocation rows in canonical category order.
func (r Report) Allocation() []AllocationRow {
	var rows []AllocationRow
	for _, c := range models.Categories {
		pct, ok := r.Recommendation.PortfolioAllocation[c]
		if !ok {
			continue
		}
		rows = append(rows, AllocationRow{
			Category:   c,
			Percentage: pct,
			MonthlySIP: r.Recommendation.SIPRecommendation.FundWiseSIP[c],
		})
	}
	return rows
}

type AllocationRow struct {
	Category   models.Category
	Percentage int
	MonthlySIP int
}

var funcs = template.FuncMap{
	"inr": func(v interface{}) string {
		switch n := v.(type) {
		case int:
			return advisor.FormatINR(float64(n))
		case float64:
			return advisor.FormatINR(n)
		}
		return fmt.Sprint(v)
	},
	"join": func(biases []models.Bias) string {
		parts := make([]string, len(biases))
		for i, b := range biases {
			parts[i] = strings.ReplaceAll(string(b), "_", " ")
		}
		return strings.Join(parts, ", ")
	},
}

const reportTemplate = `# Investment Plan for {{ if .Profile.Name }}{{ .Profile.Name }}{{ else }}{{ .Profile.UserID }}{{ end }}

**{{ .Assessment.BehavioralProfile }}** | risk score **{{ .Assessment.RiskScore }}/10** | confidence {{ .Assessment.ConfidenceLevel }}

- Personality: {{ .Assessment.InvestmentPersonality }}
- Market sentiment: {{ .Assessment.MarketSentiment }}
{{- if .Assessment.BehavioralBiases }}
- Biases: {{ join .Assessment.BehavioralBiases }}
{{- end }}

## Allocation

| Category | Share | Monthly SIP |
|:---|---:|---:|
{{- range .Allocation }}
| {{ .Category }} | {{ .Percentage }}% | {{ inr .MonthlySIP }} |
{{- end }}
| **Total** | **100%** | **{{ inr .Recommendation.SIPRecommendation.TotalMonthlySIP }}** |

{{- if .Recommendation.MutualFunds }}

## Funds

| Fund | Category | Rating | 3Y | Expense | SIP |
|:---|:---|---:|---:|---:|---:|
{{- range .Recommendation.MutualFunds }}
| {{ .Name }} | {{ .Category }} | {{ printf "%.1f" .Rating }} | {{ printf "%.1f" .Returns3Y }}% | {{ printf "%.2f" .ExpenseRatio }}% | {{ inr .MonthlySIP }} |
{{- end }}
{{- end }}

## Why this plan

{{ .Recommendation.Rationale }}

## Expected returns

{{ .Recommendation.ExpectedReturns.Summary }}

| Years | Invested | Future value | Gains |
|---:|---:|---:|---:|
{{- range .Recommendation.ExpectedReturns.Projections }}
| {{ .Years }} | {{ inr .TotalInvested }} | {{ inr .FutureValue }} | {{ inr .EstimatedGains }} |
{{- end }}

## Strategy
{{ range .Recommendation.InvestmentStrategy }}
### {{ .Phase }} ({{ .Horizon }})
{{ range .Actions }}
- {{ . }}
{{- end }}
{{ end }}
## Risk mitigation
{{ range .Recommendation.RiskMitigation }}
- {{ . }}
{{- end }}

## Tax

{{ .Recommendation.TaxImplications }}

Rebalance: **{{ .Recommendation.RebalancingFrequency }}**
`

var tmpl = template.Must(template.New("report").Funcs(funcs).Parse(reportTemplate))

// Markdown renders r as a markdown document.
func Markdown(r Report) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}
