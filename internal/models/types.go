package models

import (
	"strings"
	"time"
)

// Experience is the self-declared investment experience of a user
type Experience string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Experienced  Experience = "experienced"
)

// RiskTolerance is the self-declared appetite for risk
type RiskTolerance string

const (
	LowRisk      RiskTolerance = "low"
	ModerateRisk RiskTolerance = "moderate"
	HighRisk     RiskTolerance = "high"
)

// Bias is a behavioral bias tag. The vocabulary is closed.
type Bias string

const (
	OverconfidenceBias Bias = "overconfidence_bias"
	LossAversion       Bias = "loss_aversion"
	SectorBias         Bias = "sector_bias"
	RecencyBias        Bias = "recency_bias"
	HerdingBehavior    Bias = "herding_behavior"
	StatusQuoBias      Bias = "status_quo_bias"
	FomoBias           Bias = "fomo_bias"
	HomeBias           Bias = "home_bias"
	SmallNumbersBias   Bias = "small_numbers_bias"
)

// Category is a fund category key used in allocations and the fund catalog
type Category string

const (
	LargeCap      Category = "large_cap"
	MidCap        Category = "mid_cap"
	SmallCap      Category = "small_cap"
	Debt          Category = "debt"
	Hybrid        Category = "hybrid"
	International Category = "international"
	ELSS          Category = "elss"
)

// Categories lists every category in canonical order.
var Categories = []Category{LargeCap, MidCap, SmallCap, Debt, Hybrid, International, ELSS}

// ConfidenceLevel describes how much conviction the investor is expected to hold
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// RebalancingFrequency is how often a portfolio should be brought back to target
type RebalancingFrequency string

const (
	SemiAnnual RebalancingFrequency = "Semi-Annual"
	Annual     RebalancingFrequency = "Annual"
	Quarterly  RebalancingFrequency = "Quarterly"
)

// UserProfile is the demographic and financial profile submitted by a user
type UserProfile struct {
	UserID               string        `json:"user_id"`
	Name                 string        `json:"name"`
	Age                  int           `json:"age"`
	Occupation           string        `json:"occupation"`
	Income               float64       `json:"income"`
	CurrentSavings       float64       `json:"current_savings"`
	InvestmentExperience Experience    `json:"investment_experience"`
	RiskTolerance        RiskTolerance `json:"risk_tolerance"`
	FinancialGoals       []string      `json:"financial_goals"`
	InvestmentTimeline   string        `json:"investment_timeline"`
	CreatedAt            time.Time     `json:"created_at"`
}

// HasGoal reports whether any goal tag contains tag, ignoring case.
func (p UserProfile) HasGoal(tag string) bool {
	return GoalsInclude(p.FinancialGoals, tag)
}

// GoalsInclude reports whether any of goals contains tag, ignoring case.
func GoalsInclude(goals []string, tag string) bool {
	tag = strings.ToLower(tag)
	for _, g := range goals {
		if strings.Contains(strings.ToLower(strings.TrimSpace(g)), tag) {
			return true
		}
	}
	return false
}

// WithDefaults fills the fields a partial profile may omit.
func (p UserProfile) WithDefaults() UserProfile {
	if p.Age == 0 {
		p.Age = 30
	}
	if p.InvestmentExperience == "" {
		p.InvestmentExperience = Beginner
	}
	if p.RiskTolerance == "" {
		p.RiskTolerance = ModerateRisk
	}
	return p
}

// Validate rejects profiles the rules engine cannot score meaningfully.
func (p UserProfile) Validate() error {
	if p.Age < 0 || p.Age > 120 {
		return NewValidationError("age", p.Age, "must be between 0 and 120")
	}
	if p.Income < 0 {
		return NewValidationError("income", p.Income, "must be non-negative")
	}
	if p.CurrentSavings < 0 {
		return NewValidationError("current_savings", p.CurrentSavings, "must be non-negative")
	}
	switch p.InvestmentExperience {
	case "", Beginner, Intermediate, Experienced:
	default:
		return NewValidationError("investment_experience", p.InvestmentExperience, "must be beginner, intermediate or experienced")
	}
	switch p.RiskTolerance {
	case "", LowRisk, ModerateRisk, HighRisk:
	default:
		return NewValidationError("risk_tolerance", p.RiskTolerance, "must be low, moderate or high")
	}
	return nil
}

// BehavioralAssessment is the risk and bias classification derived from one profile
type BehavioralAssessment struct {
	UserID                string          `json:"user_id"`
	RiskScore             int             `json:"risk_score"`
	BehavioralBiases      []Bias          `json:"behavioral_biases"`
	BehavioralProfile     string          `json:"behavioral_profile"`
	ConfidenceLevel       ConfidenceLevel `json:"confidence_level"`
	MarketSentiment       string          `json:"market_sentiment"`
	InvestmentPersonality string          `json:"investment_personality"`
	CreatedAt             time.Time       `json:"created_at"`
}

// HasBias reports whether b was detected.
func (a BehavioralAssessment) HasBias(b Bias) bool {
	for _, x := range a.BehavioralBiases {
		if x == b {
			return true
		}
	}
	return false
}

// FundRecord is one entry of the static mutual fund catalog
type FundRecord struct {
	Category      Category `json:"category"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`        // 1-5 stars
	Returns3Y     float64  `json:"returns_3y"`    // percent, annualized
	Returns5Y     float64  `json:"returns_5y"`    // percent, annualized
	Returns10Y    float64  `json:"returns_10y"`   // percent, annualized
	AUM           float64  `json:"aum"`           // crores
	StocksCount   int      `json:"stocks_count"`
	ExpenseRatio  float64  `json:"expense_ratio"` // percent
	ExitLoad      float64  `json:"exit_load"`     // percent
	MinInvestment float64  `json:"min_investment"`
	FundManager   string   `json:"fund_manager"`
}

// RecommendedFund is a catalog fund annotated with the user's share and SIP
type RecommendedFund struct {
	FundRecord
	AllocationPercentage int `json:"allocation_percentage"`
	MonthlySIP           int `json:"monthly_sip"`
}

// Allocation maps a fund category to its percentage of the portfolio
type Allocation map[Category]int

// Total returns the sum of all category percentages.
func (a Allocation) Total() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// SIPProjection is the compound growth of a monthly SIP over a horizon
type SIPProjection struct {
	Years             int     `json:"years"`
	MonthlyInvestment float64 `json:"monthly_investment"`
	TotalInvested     float64 `json:"total_invested"`
	FutureValue       float64 `json:"future_value"`
	EstimatedGains    float64 `json:"estimated_gains"`
}

// ExpectedReturns summarizes the expected annual return of an allocation
type ExpectedReturns struct {
	Summary      string          `json:"summary"`
	AnnualReturn float64         `json:"annual_return"`
	Low          float64         `json:"low"`
	High         float64         `json:"high"`
	Projections  []SIPProjection `json:"projections"`
}

// StrategyPhase is one step of the phased investment strategy
type StrategyPhase struct {
	Phase   string   `json:"phase"`
	Horizon string   `json:"horizon"`
	Actions []string `json:"actions"`
}

// SIPRecommendation splits the suggested monthly investment across categories
type SIPRecommendation struct {
	TotalMonthlySIP int              `json:"total_monthly_sip"`
	FundWiseSIP     map[Category]int `json:"fund_wise_sip"`
}

// Recommendation is the full advisory result for one assessed profile
type Recommendation struct {
	UserID               string               `json:"user_id"`
	PortfolioAllocation  Allocation           `json:"portfolio_allocation"`
	MutualFunds          []RecommendedFund    `json:"mutual_funds"`
	Rationale            string               `json:"rationale"`
	RiskMitigation       []string             `json:"risk_mitigation"`
	ExpectedReturns      ExpectedReturns      `json:"expected_returns"`
	TaxImplications      string               `json:"tax_implications"`
	InvestmentStrategy   []StrategyPhase      `json:"investment_strategy"`
	RebalancingFrequency RebalancingFrequency `json:"rebalancing_frequency"`
	SIPRecommendation    SIPRecommendation    `json:"sip_recommendation"`
	CreatedAt            time.Time            `json:"created_at"`
}

// Dashboard is the latest stored snapshot of everything known about a user
type Dashboard struct {
	UserProfile     *UserProfile          `json:"user_profile"`
	RiskAssessment  *BehavioralAssessment `json:"risk_assessment"`
	Recommendations *Recommendation       `json:"recommendations"`
}

// CreateProfileResponse is returned after a profile is stored
type CreateProfileResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Quote is an investing quote shown by the frontend
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// MarketInsight is a static market commentary card
type MarketInsight struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
