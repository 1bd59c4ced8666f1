package advisor

import (
	"fmt"
	"math"
	"strings"

	"investwise-api/internal/models"
)

// Nominal long-run annual returns per category, in percent.
var categoryReturns = map[models.Category]float64{
	models.LargeCap:      12.0,
	models.MidCap:        15.0,
	models.SmallCap:      18.0,
	models.Debt:          7.5,
	models.Hybrid:        10.0,
	models.International: 11.0,
	models.ELSS:          13.0,
}

// ReferenceSIP is the monthly amount used for growth projections.
const ReferenceSIP = 10000.0

var projectionHorizons = []int{5, 10, 15}

// WeightedReturn is the allocation-weighted nominal annual return in percent.
func WeightedReturn(allocation models.Allocation) float64 {
	total := 0.0
	for _, cat := range models.Categories {
		total += float64(allocation[cat]) * categoryReturns[cat]
	}
	return total / 100
}

// TimelineMultiplier scales returns for short and long horizons.
func TimelineMultiplier(timeline string) float64 {
	switch {
	case strings.Contains(timeline, "1-3 years"):
		return 0.9
	case strings.Contains(timeline, "10+ years"):
		return 1.1
	default:
		return 1.0
	}
}

// returnBand is the spread around the weighted return for a risk score.
func returnBand(score int) (below, above float64) {
	switch {
	case score <= 3:
		return 2, 1
	case score >= 8:
		return 3, 4
	default:
		return 2, 2
	}
}

// EstimateReturns computes the expected return range of an allocation and
// projects the reference SIP over 5, 10 and 15 years at the expected rate.
func EstimateReturns(allocation models.Allocation, score int, timeline string) models.ExpectedReturns {
	expected := WeightedReturn(allocation) * TimelineMultiplier(timeline)
	below, above := returnBand(score)
	low, high := expected-below, expected+above

	projections := make([]models.SIPProjection, 0, len(projectionHorizons))
	for _, years := range projectionHorizons {
		projections = append(projections, ProjectSIP(ReferenceSIP, expected, years))
	}

	return models.ExpectedReturns{
		Summary: fmt.Sprintf(
			"Expected annual returns: %.1f%% - %.1f%% (weighted estimate %.1f%%, based on long-term category averages)",
			low, high, expected),
		AnnualReturn: expected,
		Low:          low,
		High:         high,
		Projections:  projections,
	}
}

// FutureValue is the value of a monthly SIP of p after years at an annual
// return in percent, compounded monthly as an ordinary annuity.
func FutureValue(p, annualReturn float64, years int) float64 {
	r := annualReturn / 12 / 100
	n := float64(years * 12)
	if r == 0 {
		return p * n
	}
	return p * ((math.Pow(1+r, n) - 1) / r)
}

// ProjectSIP builds the growth projection of a monthly SIP.
func ProjectSIP(monthly, annualReturn float64, years int) models.SIPProjection {
	fv := FutureValue(monthly, annualReturn, years)
	invested := monthly * float64(years*12)
	return models.SIPProjection{
		Years:             years,
		MonthlyInvestment: monthly,
		TotalInvested:     invested,
		FutureValue:       math.Round(fv),
		EstimatedGains:    math.Round(fv - invested),
	}
}

// Rebalancing maps a risk score onto a rebalancing cadence.
func Rebalancing(score int) models.RebalancingFrequency {
	switch {
	case score <= 3:
		return models.SemiAnnual
	case score <= 6:
		return models.Annual
	default:
		return models.Quarterly
	}
}
