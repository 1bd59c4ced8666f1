package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"investwise-api/internal/advisor"
	"investwise-api/internal/models"
	"investwise-api/internal/store"
)

// AdvisoryService coordinates profile storage, assessment and recommendation
type AdvisoryService struct {
	engine  *advisor.Engine
	records *store.Records
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

func NewAdvisoryService(engine *advisor.Engine, records *store.Records, log zerolog.Logger) *AdvisoryService {
	return &AdvisoryService{
		engine:  engine,
		records: records,
		log:     log.With().Str("component", "advisory").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
	}
}

// CreateProfile validates and stores a profile under a freshly allocated user id.
// Any user id supplied by the caller is ignored.
func (s *AdvisoryService) CreateProfile(ctx context.Context, profile models.UserProfile) (*models.CreateProfileResponse, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	profile.UserID = s.newID()
	profile.CreatedAt = s.now()

	if err := s.records.SaveProfile(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.log.Info().Str("user_id", profile.UserID).Msg("Profile created")
	return &models.CreateProfileResponse{
		UserID:  profile.UserID,
		Message: "Profile created successfully",
	}, nil
}

// AssessRisk analyzes the stored profile of a user and stores the assessment.
func (s *AdvisoryService) AssessRisk(ctx context.Context, userID string) (*models.BehavioralAssessment, error) {
	if userID == "" {
		return nil, models.NewValidationError("user_id", userID, "is required")
	}

	profile, err := s.records.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	assessment := s.engine.Assess(*profile)
	assessment.UserID = userID
	assessment.CreatedAt = s.now()

	if err := s.records.SaveAssessment(ctx, &assessment); err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Int("risk_score", assessment.RiskScore).
		Int("biases", len(assessment.BehavioralBiases)).
		Msg("Risk assessment completed")
	return &assessment, nil
}

// Recommend builds and stores a recommendation from the stored profile and
// assessment. Both must exist.
func (s *AdvisoryService) Recommend(ctx context.Context, userID string) (*models.Recommendation, error) {
	if userID == "" {
		return nil, models.NewValidationError("user_id", userID, "is required")
	}

	profile, err := s.records.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	assessment, err := s.records.Assessment(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec := s.engine.Recommend(*profile, *assessment)
	rec.UserID = userID
	rec.CreatedAt = s.now()

	if err := s.records.SaveRecommendation(ctx, &rec); err != nil {
		return nil, fmt.Errorf("failed to store recommendation: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Int("funds", len(rec.MutualFunds)).
		Int("total_monthly_sip", rec.SIPRecommendation.TotalMonthlySIP).
		Msg("Recommendation generated")
	return &rec, nil
}

// Dashboard returns the latest stored records of a user. Only a missing
// profile is an error; the other records are loaded concurrently and left nil
// when absent.
func (s *AdvisoryService) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	profile, err := s.records.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	assessmentCh := make(chan error, 1)
	recCh := make(chan error, 1)
	dashboard := &models.Dashboard{UserProfile: profile}

	go func() {
		a, err := s.records.Assessment(ctx, userID)
		if err == nil {
			dashboard.RiskAssessment = a
		}
		assessmentCh <- err
	}()
	go func() {
		r, err := s.records.Recommendation(ctx, userID)
		if err == nil {
			dashboard.Recommendations = r
		}
		recCh <- err
	}()

	for _, ch := range []chan error{assessmentCh, recCh} {
		if err := <-ch; err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}
	return dashboard, nil
}

// Funds lists the fund catalog grouped by category in canonical order.
func (s *AdvisoryService) Funds() map[models.Category][]models.FundRecord {
	catalog := s.engine.Catalog()
	out := make(map[models.Category][]models.FundRecord)
	for _, c := range models.Categories {
		if catalog.Has(c) {
			out[c] = catalog.Funds(c)
		}
	}
	return out
}

// Ready reports whether the record store is reachable.
func (s *AdvisoryService) Ready(ctx context.Context) error {
	return s.records.Ping(ctx)
}
