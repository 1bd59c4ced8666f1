package advisor

import (
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"investwise-api/internal/models"
)

var experiences = []models.Experience{models.Beginner, models.Intermediate, models.Experienced}
var tolerances = []models.RiskTolerance{models.LowRisk, models.ModerateRisk, models.HighRisk}

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	return parameters
}

func TestAnalyze_ConservativeBeginner(t *testing.T) {
	a := Analyze(models.UserProfile{
		Age:                  30,
		Occupation:           "Actor",
		Income:               75000,
		InvestmentExperience: models.Beginner,
		RiskTolerance:        models.LowRisk,
	})

	for _, want := range []models.Bias{models.LossAversion, models.OverconfidenceBias} {
		if !a.HasBias(want) {
			t.Errorf("expected bias %s in %v", want, a.BehavioralBiases)
		}
	}
	if a.RiskScore != 3 {
		t.Errorf("RiskScore = %d, want 3", a.RiskScore)
	}
	if a.BehavioralProfile != ProfileConservative {
		t.Errorf("BehavioralProfile = %q, want %q", a.BehavioralProfile, ProfileConservative)
	}
	if a.ConfidenceLevel != models.ConfidenceLow {
		t.Errorf("ConfidenceLevel = %q, want low", a.ConfidenceLevel)
	}
	if a.MarketSentiment != "Fearful" {
		t.Errorf("MarketSentiment = %q, want Fearful", a.MarketSentiment)
	}
	if a.InvestmentPersonality != "Capital Preserver" {
		t.Errorf("InvestmentPersonality = %q, want Capital Preserver", a.InvestmentPersonality)
	}
}

func TestAnalyze_TechProfessional(t *testing.T) {
	a := Analyze(models.UserProfile{
		Age:                  28,
		Occupation:           "Software Engineer",
		Income:               800000,
		InvestmentExperience: models.Intermediate,
		RiskTolerance:        models.ModerateRisk,
		FinancialGoals:       []string{"wealth", "tax"},
		InvestmentTimeline:   "5-10 years",
	})

	want := []models.Bias{models.SectorBias, models.RecencyBias, models.OverconfidenceBias}
	if !reflect.DeepEqual(a.BehavioralBiases, want) {
		t.Errorf("BehavioralBiases = %v, want %v", a.BehavioralBiases, want)
	}
	if a.RiskScore < 6 {
		t.Errorf("RiskScore = %d, want >= 6", a.RiskScore)
	}
	if a.BehavioralProfile != ProfileHighRiskBuilder {
		t.Errorf("BehavioralProfile = %q", a.BehavioralProfile)
	}
	if a.ConfidenceLevel != models.ConfidenceHigh {
		t.Errorf("ConfidenceLevel = %q, want high", a.ConfidenceLevel)
	}
	if a.MarketSentiment != "Trend-Following" {
		t.Errorf("MarketSentiment = %q", a.MarketSentiment)
	}
	if a.InvestmentPersonality != "Tax-Efficient Investor" {
		t.Errorf("InvestmentPersonality = %q", a.InvestmentPersonality)
	}
}

func TestRiskScore_AgeBands(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{22, 8}, {29, 8}, {30, 7}, {39, 7}, {40, 6}, {50, 6}, {51, 5}, {60, 5}, {61, 4}, {85, 4},
	}
	for _, tt := range tests {
		p := models.UserProfile{
			Age:                  tt.age,
			Occupation:           "Designer",
			Income:               400000,
			InvestmentExperience: models.Intermediate,
			RiskTolerance:        models.ModerateRisk,
		}
		if got := RiskScore(p); got != tt.want {
			t.Errorf("age %d: RiskScore = %d, want %d", tt.age, got, tt.want)
		}
	}
}

func TestRiskScore_OccupationAndClamp(t *testing.T) {
	top := models.UserProfile{
		Age:                  25,
		Occupation:           "Business owner and trader",
		Income:               5000000,
		InvestmentExperience: models.Experienced,
		RiskTolerance:        models.HighRisk,
	}
	if got := RiskScore(top); got != 10 {
		t.Errorf("RiskScore = %d, want clamp to 10", got)
	}

	bottom := models.UserProfile{
		Age:                  70,
		Occupation:           "Government clerk",
		Income:               100000,
		InvestmentExperience: models.Beginner,
		RiskTolerance:        models.LowRisk,
	}
	if got := RiskScore(bottom); got != 1 {
		t.Errorf("RiskScore = %d, want clamp to 1", got)
	}
}

func TestDetectBiases_CollapsesDuplicates(t *testing.T) {
	p := models.UserProfile{
		Age:                  22,
		Occupation:           "Doctor",
		Income:               2500000,
		InvestmentExperience: models.Beginner,
		RiskTolerance:        models.ModerateRisk,
	}
	got := DetectBiases(p)
	want := []models.Bias{models.OverconfidenceBias, models.HerdingBehavior, models.FomoBias}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectBiases = %v, want %v", got, want)
	}
}

func TestOccupationMentions_MatchesSubstrings(t *testing.T) {
	tech := occupationMentions("tech", "software", "it")
	tests := []struct {
		occupation string
		want       bool
	}{
		{"IT Consultant", true},
		{"Senior Software Developer", true},
		{"Fintech analyst", true},
		{"Writer", true},
		{"Digital marketer", true},
		{"Doctor", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tech(models.UserProfile{Occupation: tt.occupation}); got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.occupation, got, tt.want)
		}
	}
}

func TestAnalyze_OccupationContainingItHasSectorBias(t *testing.T) {
	for _, occupation := range []string{"Writer", "Architect", "Editor", "Digital marketer"} {
		a := Analyze(models.UserProfile{
			Age:                  35,
			Occupation:           occupation,
			Income:               800000,
			InvestmentExperience: models.Intermediate,
		})
		if !a.HasBias(models.SectorBias) || !a.HasBias(models.RecencyBias) {
			t.Errorf("%s: biases = %v, want sector and recency bias", occupation, a.BehavioralBiases)
		}
	}
}

func TestProfileLabel_Ladder(t *testing.T) {
	want := map[int]string{
		1: ProfileConservative, 3: ProfileConservative,
		4: ProfileModerate, 5: ProfileModerate,
		6: ProfileBalancedGrowth, 7: ProfileBalancedGrowth,
		8:  ProfileAggressive,
		9:  ProfileHighRiskBuilder,
		10: ProfileHighRiskBuilder,
	}
	for score, label := range want {
		if got := ProfileLabel(score); got != label {
			t.Errorf("ProfileLabel(%d) = %q, want %q", score, got, label)
		}
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		score int
		exp   models.Experience
		want  models.ConfidenceLevel
	}{
		{7, models.Intermediate, models.ConfidenceHigh},
		{9, models.Experienced, models.ConfidenceHigh},
		{9, models.Beginner, models.ConfidenceLow},
		{3, models.Experienced, models.ConfidenceLow},
		{5, models.Intermediate, models.ConfidenceMedium},
		{6, models.Experienced, models.ConfidenceMedium},
	}
	for _, tt := range tests {
		if got := Confidence(tt.score, tt.exp); got != tt.want {
			t.Errorf("Confidence(%d, %s) = %s, want %s", tt.score, tt.exp, got, tt.want)
		}
	}
}

func TestLabelLadders_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name        string
		profile     models.UserProfile
		sentiment   string
		personality string
	}{
		{
			name:        "young beginner is euphoric",
			profile:     models.UserProfile{Age: 21, Income: 600000, InvestmentExperience: models.Beginner, FinancialGoals: []string{"retirement", "tax"}},
			sentiment:   "Euphoric",
			personality: "Retirement Planner",
		},
		{
			name:        "older saver is cautious",
			profile:     models.UserProfile{Age: 48, Income: 900000, InvestmentExperience: models.Experienced, RiskTolerance: models.ModerateRisk, FinancialGoals: []string{"education"}},
			sentiment:   "Cautious",
			personality: "Goal-Based Investor",
		},
		{
			name:        "experienced earner is optimistic",
			profile:     models.UserProfile{Age: 35, Occupation: "Lawyer", Income: 1500000, InvestmentExperience: models.Experienced, RiskTolerance: models.HighRisk, FinancialGoals: []string{"wealth"}},
			sentiment:   "Optimistic",
			personality: "Wealth Creator",
		},
		{
			name:        "quiet middle is neutral",
			profile:     models.UserProfile{Age: 42, Occupation: "Lawyer", Income: 400000, InvestmentExperience: models.Intermediate, RiskTolerance: models.ModerateRisk},
			sentiment:   "Neutral",
			personality: "Balanced Saver",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.profile)
			if a.MarketSentiment != tt.sentiment {
				t.Errorf("MarketSentiment = %q, want %q (biases %v, score %d)", a.MarketSentiment, tt.sentiment, a.BehavioralBiases, a.RiskScore)
			}
			if a.InvestmentPersonality != tt.personality {
				t.Errorf("InvestmentPersonality = %q, want %q", a.InvestmentPersonality, tt.personality)
			}
		})
	}
}

func TestAnalyze_DefaultsMissingFields(t *testing.T) {
	a := Analyze(models.UserProfile{Income: 400000})
	// age 30 (+1), beginner (-1)
	if a.RiskScore != 5 {
		t.Errorf("RiskScore = %d, want 5", a.RiskScore)
	}
	if !a.HasBias(models.HerdingBehavior) {
		t.Errorf("expected beginner biases, got %v", a.BehavioralBiases)
	}
}

func profileGen() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(1, 100),
		gen.Float64Range(0, 5000000),
		gen.IntRange(0, len(experiences)-1),
		gen.IntRange(0, len(tolerances)-1),
		gen.OneConstOf("Software Engineer", "Teacher", "Doctor", "Trader", "Actor", "Government officer", "IT analyst", ""),
	).Map(func(v []interface{}) models.UserProfile {
		return models.UserProfile{
			Age:                  v[0].(int),
			Income:               v[1].(float64),
			InvestmentExperience: experiences[v[2].(int)],
			RiskTolerance:        tolerances[v[3].(int)],
			Occupation:           v[4].(string),
		}
	})
}

// Property: the risk score of any profile stays within [1, 10] and maps
// onto exactly one ladder label.
func TestProperty_RiskScoreBounded(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("risk score within [1, 10]", prop.ForAll(
		func(p models.UserProfile) bool {
			a := Analyze(p)
			return a.RiskScore >= 1 && a.RiskScore <= 10 && a.BehavioralProfile != ""
		},
		profileGen(),
	))

	properties.TestingRun(t)
}

// Property: analyzing an unchanged profile twice yields identical output.
func TestProperty_AnalyzeIdempotent(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("analyze is deterministic", prop.ForAll(
		func(p models.UserProfile) bool {
			return reflect.DeepEqual(Analyze(p), Analyze(p))
		},
		profileGen(),
	))

	properties.TestingRun(t)
}

// Property: raising income from 3L to 12L never lowers the risk score.
func TestProperty_IncomeMonotonic(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	incomes := []float64{300000, 400000, 500000, 500001, 750000, 1000000, 1000001, 1200000}

	properties.Property("risk score non-decreasing in income", prop.ForAll(
		func(p models.UserProfile) bool {
			prev := 0
			for _, income := range incomes {
				p.Income = income
				score := RiskScore(p)
				if score < prev {
					return false
				}
				prev = score
			}
			return true
		},
		profileGen(),
	))

	properties.TestingRun(t)
}
