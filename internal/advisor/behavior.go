package advisor

import (
	"strings"

	"investwise-api/internal/models"
)

// Behavioral profile labels, ordered from lowest to highest risk.
const (
	ProfileConservative    = "Conservative Investor"
	ProfileModerate        = "Moderate Investor"
	ProfileBalancedGrowth  = "Balanced Growth Investor"
	ProfileAggressive      = "Aggressive Growth Investor"
	ProfileHighRiskBuilder = "High-Risk Wealth Builder"
)

const baseRiskScore = 5

// biasRule attaches biases to every profile its predicate matches.
// All matching rules apply; evaluation order fixes the output order.
type biasRule struct {
	name   string
	match  func(p models.UserProfile) bool
	biases []models.Bias
}

var biasRules = []biasRule{
	{"beginner", isExperience(models.Beginner), []models.Bias{models.OverconfidenceBias, models.HerdingBehavior}},
	{"low tolerance", func(p models.UserProfile) bool { return p.RiskTolerance == models.LowRisk }, []models.Bias{models.LossAversion, models.StatusQuoBias}},
	{"tech occupation", occupationMentions("tech", "software", "it"), []models.Bias{models.SectorBias, models.RecencyBias}},
	{"professional occupation", occupationMentions("doctor", "engineer"), []models.Bias{models.OverconfidenceBias}},
	{"under 25", func(p models.UserProfile) bool { return p.Age < 25 }, []models.Bias{models.OverconfidenceBias, models.FomoBias}},
	{"over 45", func(p models.UserProfile) bool { return p.Age > 45 }, []models.Bias{models.LossAversion, models.HomeBias}},
	{"income under 5L", func(p models.UserProfile) bool { return p.Income < 500000 }, []models.Bias{models.SmallNumbersBias}},
	{"income over 20L", func(p models.UserProfile) bool { return p.Income > 2000000 }, []models.Bias{models.OverconfidenceBias}},
}

// scoreRule adjusts the risk score when its predicate matches.
type scoreRule struct {
	name  string
	match func(p models.UserProfile) bool
	delta int
}

// scoreGroup is an ordered set of rules. Exclusive groups stop at the first
// match; the others apply every matching rule.
type scoreGroup struct {
	name      string
	exclusive bool
	rules     []scoreRule
}

var scoreGroups = []scoreGroup{
	{name: "age", exclusive: true, rules: []scoreRule{
		{"under 30", func(p models.UserProfile) bool { return p.Age < 30 }, 2},
		{"30 to 39", func(p models.UserProfile) bool { return p.Age < 40 }, 1},
		{"over 60", func(p models.UserProfile) bool { return p.Age > 60 }, -2},
		{"over 50", func(p models.UserProfile) bool { return p.Age > 50 }, -1},
	}},
	{name: "income", exclusive: true, rules: []scoreRule{
		{"over 10L", func(p models.UserProfile) bool { return p.Income > 1000000 }, 2},
		{"over 5L", func(p models.UserProfile) bool { return p.Income > 500000 }, 1},
		{"under 3L", func(p models.UserProfile) bool { return p.Income < 300000 }, -1},
	}},
	{name: "experience", exclusive: true, rules: []scoreRule{
		{"experienced", isExperience(models.Experienced), 2},
		{"intermediate", isExperience(models.Intermediate), 1},
		{"beginner", isExperience(models.Beginner), -1},
	}},
	{name: "tolerance", exclusive: true, rules: []scoreRule{
		{"high", func(p models.UserProfile) bool { return p.RiskTolerance == models.HighRisk }, 1},
		{"low", func(p models.UserProfile) bool { return p.RiskTolerance == models.LowRisk }, -1},
	}},
	{name: "occupation", rules: []scoreRule{
		{"self-employed", occupationMentions("entrepreneur", "business", "trader"), 2},
		{"salaried public sector", occupationMentions("government", "teacher", "clerk"), -1},
	}},
}

var profileLadder = []struct {
	max   int
	label string
}{
	{3, ProfileConservative},
	{5, ProfileModerate},
	{7, ProfileBalancedGrowth},
	{8, ProfileAggressive},
	{10, ProfileHighRiskBuilder},
}

// labelRule yields label when match holds. Ladders stop at the first match.
type labelRule struct {
	match func(s signals) bool
	label string
}

// signals is what the label ladders are evaluated against.
type signals struct {
	profile models.UserProfile
	biases  map[models.Bias]bool
	score   int
}

var sentimentLadder = []labelRule{
	{func(s signals) bool { return s.biases[models.FomoBias] && s.biases[models.OverconfidenceBias] }, "Euphoric"},
	{func(s signals) bool { return s.biases[models.LossAversion] && s.biases[models.StatusQuoBias] }, "Fearful"},
	{func(s signals) bool { return s.biases[models.LossAversion] }, "Cautious"},
	{func(s signals) bool { return s.biases[models.RecencyBias] || s.biases[models.HerdingBehavior] }, "Trend-Following"},
	{func(s signals) bool { return s.score >= 7 }, "Optimistic"},
	{func(signals) bool { return true }, "Neutral"},
}

var personalityLadder = []labelRule{
	{func(s signals) bool { return s.profile.HasGoal("retirement") }, "Retirement Planner"},
	{func(s signals) bool { return s.profile.HasGoal("tax") }, "Tax-Efficient Investor"},
	{func(s signals) bool { return s.profile.HasGoal("wealth") && s.score >= 6 }, "Wealth Creator"},
	{func(s signals) bool { return s.profile.HasGoal("education") || s.profile.HasGoal("emergency") }, "Goal-Based Investor"},
	{func(s signals) bool { return s.score <= 3 }, "Capital Preserver"},
	{func(signals) bool { return true }, "Balanced Saver"},
}

// Analyze derives the behavioral assessment of a profile. It never fails;
// missing fields take their defaults first.
func Analyze(profile models.UserProfile) models.BehavioralAssessment {
	p := profile.WithDefaults()

	biases := DetectBiases(p)
	score := RiskScore(p)

	set := make(map[models.Bias]bool, len(biases))
	for _, b := range biases {
		set[b] = true
	}
	sig := signals{profile: p, biases: set, score: score}

	return models.BehavioralAssessment{
		UserID:                p.UserID,
		RiskScore:             score,
		BehavioralBiases:      biases,
		BehavioralProfile:     ProfileLabel(score),
		ConfidenceLevel:       Confidence(score, p.InvestmentExperience),
		MarketSentiment:       firstLabel(sentimentLadder, sig),
		InvestmentPersonality: firstLabel(personalityLadder, sig),
	}
}

// DetectBiases returns the biases triggered by a profile, in rule order
// without duplicates.
func DetectBiases(p models.UserProfile) []models.Bias {
	seen := make(map[models.Bias]bool)
	biases := []models.Bias{}
	for _, rule := range biasRules {
		if !rule.match(p) {
			continue
		}
		for _, b := range rule.biases {
			if !seen[b] {
				seen[b] = true
				biases = append(biases, b)
			}
		}
	}
	return biases
}

// RiskScore scores a profile on a 1-10 scale.
func RiskScore(p models.UserProfile) int {
	score := baseRiskScore
	for _, group := range scoreGroups {
		for _, rule := range group.rules {
			if !rule.match(p) {
				continue
			}
			score += rule.delta
			if group.exclusive {
				break
			}
		}
	}
	return clamp(score, 1, 10)
}

// ProfileLabel maps a risk score onto the five-tier behavioral ladder.
func ProfileLabel(score int) string {
	for _, step := range profileLadder {
		if score <= step.max {
			return step.label
		}
	}
	return ProfileHighRiskBuilder
}

// Confidence derives the expected conviction of the investor.
func Confidence(score int, exp models.Experience) models.ConfidenceLevel {
	switch {
	case score >= 7 && exp != models.Beginner:
		return models.ConfidenceHigh
	case score <= 3 || exp == models.Beginner:
		return models.ConfidenceLow
	default:
		return models.ConfidenceMedium
	}
}

func firstLabel(ladder []labelRule, s signals) string {
	for _, rule := range ladder {
		if rule.match(s) {
			return rule.label
		}
	}
	return ""
}

func isExperience(exp models.Experience) func(models.UserProfile) bool {
	return func(p models.UserProfile) bool { return p.InvestmentExperience == exp }
}

// occupationMentions matches any keyword as a substring of the occupation,
// ignoring case.
func occupationMentions(keywords ...string) func(models.UserProfile) bool {
	return func(p models.UserProfile) bool {
		text := strings.ToLower(p.Occupation)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
