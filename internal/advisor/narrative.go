package advisor

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"

	"investwise-api/internal/models"
)

var biasRationale = map[models.Bias]string{
	models.OverconfidenceBias: "A measured equity ramp-up keeps early successes from turning into outsized bets.",
	models.LossAversion:       "Debt and hybrid funds cushion drawdowns so short-term losses do not push you out of equities.",
	models.SectorBias:         "A diversified allocation prevents over-concentration in the sector you work in.",
	models.RecencyBias:        "Long-term category averages, not last year's winners, drive the fund choices.",
	models.HerdingBehavior:    "A written plan with fixed SIPs replaces following market tips and crowd sentiment.",
	models.StatusQuoBias:      "Automated SIPs and scheduled rebalancing move idle savings into the plan.",
	models.FomoBias:           "Spreading investments across categories avoids chasing whatever is rallying.",
	models.HomeBias:           "International funds add geographic diversification beyond the domestic market.",
	models.SmallNumbersBias:   "Fund selection relies on multi-year track records rather than a few good months.",
}

var universalStrategies = []string{
	"Invest through SIPs to average out market volatility (rupee cost averaging)",
	"Diversify across fund categories and fund houses",
}

var biasStrategies = map[models.Bias][]string{
	models.OverconfidenceBias: {"Avoid frequent trading and stick to the plan", "Cap any single fund at the recommended allocation"},
	models.LossAversion:       {"Focus on long-term goals rather than short-term market movements", "Review performance over 3-5 year windows, not monthly"},
	models.SectorBias:         {"Avoid additional concentration in your own industry", "Prefer diversified funds over sectoral or thematic funds"},
	models.RecencyBias:        {"Judge funds on 5 and 10 year returns, not the latest quarter"},
	models.HerdingBehavior:    {"Ignore social media tips and unsolicited stock recommendations"},
	models.StatusQuoBias:      {"Automate SIP debits and annual step-ups so inertia works for you"},
	models.FomoBias:           {"Wait 48 hours before acting on any investment idea outside the plan"},
	models.HomeBias:           {"Keep the international allocation even when domestic markets lead"},
	models.SmallNumbersBias:   {"Start small but stay consistent; increase SIPs as income grows"},
}

var tierStrategies = map[Tier][]string{
	TierConservative: {"Keep a higher debt share for capital preservation", "Add equity gradually through large cap and hybrid funds"},
	TierModerate:     {"Maintain the equity-debt balance through annual rebalancing"},
	TierBalanced:     {"Use hybrid funds to dampen volatility from mid and small caps"},
	TierAggressive:   {"Limit small cap exposure to the recommended share", "Shift gains into debt as goals come within 3 years"},
}

var closingStrategies = []string{
	"Review the portfolio annually against your goals",
	"Maintain an emergency fund equal to 6-8 months of expenses",
}

// RiskMitigation lists strategies in a fixed order: universal, per bias in
// the order detected, per tier, then closing strategies.
func RiskMitigation(biases []models.Bias, score int) []string {
	out := append([]string{}, universalStrategies...)
	for _, b := range biases {
		out = append(out, biasStrategies[b]...)
	}
	out = append(out, tierStrategies[TierFor(score)]...)
	return append(out, closingStrategies...)
}

const (
	taxBoilerplate = "Equity funds: gains on units held over 12 months are long-term and taxed at 12.5% above ₹1.25 lakh a year; " +
		"short-term gains are taxed at 20%. Debt funds: gains are added to your income and taxed at your slab rate. " +
		"Dividends (IDCW) are taxed at your slab rate."
	taxELSS = "ELSS: investments up to ₹1,50,000 a year qualify for deduction under Section 80C, " +
		"with a 3-year lock-in, the shortest among 80C options."
	taxHarvesting = "Tax harvesting: book up to ₹1.25 lakh of long-term equity gains each financial year to use the exemption, " +
		"and set off capital losses against gains before March 31."
)

// TaxImplications describes the tax treatment of the recommended portfolio.
func TaxImplications(profile models.UserProfile) string {
	lines := []string{taxBoilerplate}
	if profile.HasGoal("tax") {
		lines = append(lines, taxELSS)
	}
	if profile.Income > 1000000 {
		lines = append(lines, taxHarvesting)
	}
	return strings.Join(lines, "\n")
}

// Rationale explains why the allocation suits the investor.
func Rationale(profile models.UserProfile, assessment models.BehavioralAssessment, allocation models.Allocation) string {
	horizon, exposure := "moderate", "balanced"
	if profile.Age < 40 {
		horizon, exposure = "long", "higher"
	}
	equity := allocation[models.LargeCap] + allocation[models.MidCap] + allocation[models.SmallCap]

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your profile as a %d-year-old %s, here's why this allocation works for you:\n\n",
		profile.Age, assessment.BehavioralProfile)
	fmt.Fprintf(&b, "1. Age-Appropriate Strategy: At %d, you have a %s investment horizon, allowing for %s equity exposure.\n",
		profile.Age, horizon, exposure)

	b.WriteString("2. Behavioral Considerations:\n")
	if len(assessment.BehavioralBiases) == 0 {
		b.WriteString("- No strong behavioral biases were detected; the plan follows your risk score.\n")
	}
	for _, bias := range assessment.BehavioralBiases {
		fmt.Fprintf(&b, "- %s\n", biasRationale[bias])
	}

	fmt.Fprintf(&b, "3. Risk Management: %d%% in debt funds provides stability and reduces portfolio volatility.\n",
		allocation[models.Debt])
	fmt.Fprintf(&b, "4. Growth Potential: %d%% in equity funds for long-term wealth creation.\n", equity)
	if intl := allocation[models.International]; intl > 0 {
		fmt.Fprintf(&b, "5. Diversification: %d%% international exposure reduces country-specific risk.\n", intl)
	} else {
		b.WriteString("5. Diversification: spreading across fund categories reduces single-segment risk.\n")
	}
	if elss := allocation[models.ELSS]; elss > 0 {
		fmt.Fprintf(&b, "6. Tax Efficiency: %d%% in ELSS funds saves tax under Section 80C while staying invested in equity.\n", elss)
	}
	fmt.Fprintf(&b, "\nSuggested monthly investment: %s.", FormatINR(float64(TotalMonthlySIP(profile.Income))))
	return b.String()
}

// InvestmentStrategy lays out the phased plan for the allocation tier.
func InvestmentStrategy(profile models.UserProfile, score int) []models.StrategyPhase {
	tier := TierFor(score)
	monthly := FormatINR(float64(TotalMonthlySIP(profile.Income)))

	foundation := []string{
		"Build an emergency fund of 6 months of expenses in a liquid or debt fund",
		fmt.Sprintf("Start SIPs of %s per month across the recommended funds", monthly),
	}
	accumulation := []string{"Step up SIPs by 10% every year as income grows"}
	optimization := []string{fmt.Sprintf("Rebalance back to the target allocation on a %s basis", strings.ToLower(string(Rebalancing(score))))}

	switch tier {
	case TierConservative:
		foundation = append(foundation, "Begin with large cap, debt and hybrid funds before adding mid caps")
		accumulation = append(accumulation, "Raise equity exposure by 5 points a year only if drawdowns felt manageable")
		optimization = append(optimization, "Move to a higher debt share as goals approach")
	case TierModerate:
		accumulation = append(accumulation, "Keep the equity-debt split steady through market cycles")
		optimization = append(optimization, "Consider adding mid cap exposure once the core portfolio is established")
	case TierBalanced:
		accumulation = append(accumulation, "Use market corrections to top up mid and small cap funds within their targets")
		optimization = append(optimization, "Book profits from small caps when they exceed their target share")
	default:
		accumulation = append(accumulation, "Stay invested through volatility; small and mid caps need 7+ years")
		optimization = append(optimization, "Start moving gains into debt three years before each goal")
	}
	if profile.HasGoal("tax") {
		optimization = append(optimization, "Redeploy ELSS units after the 3-year lock-in to renew the 80C benefit")
	}

	return []models.StrategyPhase{
		{Phase: "Foundation", Horizon: "Months 0-6", Actions: foundation},
		{Phase: "Accumulation", Horizon: "Months 6-36", Actions: accumulation},
		{Phase: "Optimization", Horizon: "Year 3 onwards", Actions: optimization},
	}
}

// FormatINR renders a rupee amount, rounded to whole rupees.
func FormatINR(amount float64) string {
	return money.New(int64(math.Round(amount))*100, money.INR).Display()
}
