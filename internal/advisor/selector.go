package advisor

import (
	"github.com/shopspring/decimal"

	"investwise-api/internal/models"
)

const (
	// savingsRate is the share of annual income suggested for monthly SIPs
	savingsRate = 0.20
	minSIP      = 500
)

// SelectFunds picks the best catalog fund for every allocated category, in
// canonical category order. Categories without catalog funds are skipped.
func SelectFunds(catalog Catalog, allocation models.Allocation, income float64) []models.RecommendedFund {
	funds := []models.RecommendedFund{}
	for _, cat := range models.Categories {
		pct := allocation[cat]
		if pct <= 0 {
			continue
		}
		best, ok := catalog.Best(cat)
		if !ok {
			continue
		}
		funds = append(funds, models.RecommendedFund{
			FundRecord:           best,
			AllocationPercentage: pct,
			MonthlySIP:           MonthlySIP(income, pct),
		})
	}
	return funds
}

// MonthlySIP is the monthly amount for a category share: 20% of income spread
// over twelve months, scaled by pct, rounded to the nearest 100 and floored at 500.
func MonthlySIP(income float64, pct int) int {
	amount := decimal.NewFromFloat(income).
		Mul(decimal.NewFromFloat(savingsRate)).
		Div(decimal.NewFromInt(12)).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(decimal.NewFromInt(100))
	rounded := amount.Round(-2).IntPart()
	if rounded < minSIP {
		return minSIP
	}
	return int(rounded)
}

// TotalMonthlySIP is the whole monthly budget, truncated to rupees.
func TotalMonthlySIP(income float64) int {
	return int(decimal.NewFromFloat(income).
		Mul(decimal.NewFromFloat(savingsRate)).
		Div(decimal.NewFromInt(12)).
		IntPart())
}

// RecommendSIP splits the monthly budget over every allocated category,
// including categories the catalog cannot fill.
func RecommendSIP(allocation models.Allocation, income float64) models.SIPRecommendation {
	perCategory := make(map[models.Category]int, len(allocation))
	for cat, pct := range allocation {
		if pct > 0 {
			perCategory[cat] = MonthlySIP(income, pct)
		}
	}
	return models.SIPRecommendation{
		TotalMonthlySIP: TotalMonthlySIP(income),
		FundWiseSIP:     perCategory,
	}
}
