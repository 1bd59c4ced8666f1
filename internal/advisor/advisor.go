// Package advisor implements the profile-to-recommendation rules engine:
// behavioral analysis, allocation planning, fund selection and projections.
// Every function is pure; the only shared input is the immutable Catalog.
package advisor

import "investwise-api/internal/models"

// Engine composes the analyzer, planner, selector and generators.
type Engine struct {
	catalog Catalog
}

// NewEngine creates an engine selecting funds from catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the engine's fund catalog.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Assess derives the behavioral assessment of a profile.
func (e *Engine) Assess(profile models.UserProfile) models.BehavioralAssessment {
	return Analyze(profile)
}

// Recommend builds the full recommendation for a profile and its assessment.
func (e *Engine) Recommend(profile models.UserProfile, assessment models.BehavioralAssessment) models.Recommendation {
	p := profile.WithDefaults()
	score := assessment.RiskScore

	allocation := Plan(score, p.Age, p.FinancialGoals, p.InvestmentTimeline)

	return models.Recommendation{
		UserID:               p.UserID,
		PortfolioAllocation:  allocation,
		MutualFunds:          SelectFunds(e.catalog, allocation, p.Income),
		Rationale:            Rationale(p, assessment, allocation),
		RiskMitigation:       RiskMitigation(assessment.BehavioralBiases, score),
		ExpectedReturns:      EstimateReturns(allocation, score, p.InvestmentTimeline),
		TaxImplications:      TaxImplications(p),
		InvestmentStrategy:   InvestmentStrategy(p, score),
		RebalancingFrequency: Rebalancing(score),
		SIPRecommendation:    RecommendSIP(allocation, p.Income),
	}
}
