// Package store persists profiles, assessments and recommendations keyed by
// user id. Each user holds at most one current record per kind; the last
// write wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog"

	"investwise-api/internal/models"
)

// Kind names a record collection.
type Kind string

const (
	KindProfile        Kind = "profiles"
	KindAssessment     Kind = "assessments"
	KindRecommendation Kind = "recommendations"
)

// Backend stores opaque JSON payloads addressed by kind and user id.
// Get returns models.ErrNotFound when no record exists.
type Backend interface {
	Put(ctx context.Context, kind Kind, userID string, payload []byte) error
	Get(ctx context.Context, kind Kind, userID string) ([]byte, error)
	Ping(ctx context.Context) error
	Close() error
}

// Records is the typed record store with a read-through cache in front of
// a Backend.
type Records struct {
	backend Backend
	cache   *ristretto.Cache
	log     zerolog.Logger

	// mu orders cache updates; writes counts completed puts so a read that
	// raced a write does not cache what it loaded.
	mu     sync.Mutex
	writes uint64
}

// NewRecords wraps backend. A cacheMaxCost of zero disables caching.
func NewRecords(backend Backend, cacheMaxCost int64, log zerolog.Logger) (*Records, error) {
	r := &Records{backend: backend, log: log.With().Str("component", "store").Logger()}
	if cacheMaxCost > 0 {
		counters := cacheMaxCost / 100
		if counters < 1 {
			counters = 1
		}
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: counters,
			MaxCost:     cacheMaxCost,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create record cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// SaveProfile stores p, replacing any previous profile of the same user.
func (r *Records) SaveProfile(ctx context.Context, p *models.UserProfile) error {
	return r.put(ctx, KindProfile, p.UserID, p)
}

// Profile loads the current profile of a user.
func (r *Records) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.get(ctx, KindProfile, userID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveAssessment stores a, replacing any previous assessment of the same user.
func (r *Records) SaveAssessment(ctx context.Context, a *models.BehavioralAssessment) error {
	return r.put(ctx, KindAssessment, a.UserID, a)
}

// Assessment loads the current assessment of a user.
func (r *Records) Assessment(ctx context.Context, userID string) (*models.BehavioralAssessment, error) {
	var a models.BehavioralAssessment
	if err := r.get(ctx, KindAssessment, userID, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveRecommendation stores rec, replacing any previous recommendation of the same user.
func (r *Records) SaveRecommendation(ctx context.Context, rec *models.Recommendation) error {
	return r.put(ctx, KindRecommendation, rec.UserID, rec)
}

// Recommendation loads the current recommendation of a user.
func (r *Records) Recommendation(ctx context.Context, userID string) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.get(ctx, KindRecommendation, userID, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Ping checks the backend is reachable.
func (r *Records) Ping(ctx context.Context) error {
	return r.backend.Ping(ctx)
}

// Close releases the cache and the backend.
func (r *Records) Close() error {
	if r.cache != nil {
		r.cache.Close()
	}
	return r.backend.Close()
}

func (r *Records) put(ctx context.Context, kind Kind, userID string, v interface{}) error {
	if userID == "" {
		return fmt.Errorf("store %s: empty user id", kind)
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	if err := r.backend.Put(ctx, kind, userID, payload); err != nil {
		return fmt.Errorf("failed to store %s record: %w", kind, err)
	}

	if r.cache != nil {
		key := cacheKey(kind, userID)
		r.mu.Lock()
		defer r.mu.Unlock()
		r.writes++
		r.cache.Del(key)
		if !r.cache.Set(key, payload, int64(len(payload))) {
			r.log.Debug().Str("key", key).Msg("Cache set dropped")
		}
		r.cache.Wait()
	}
	return nil
}

func (r *Records) get(ctx context.Context, kind Kind, userID string, dst interface{}) error {
	key := cacheKey(kind, userID)
	var seen uint64
	if r.cache != nil {
		if cached, found := r.cache.Get(key); found {
			return json.Unmarshal(cached.([]byte), dst)
		}
		r.mu.Lock()
		seen = r.writes
		r.mu.Unlock()
	}

	payload, err := r.backend.Get(ctx, kind, userID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%s for user %s: %w", kind, userID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s record: %w", kind, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("failed to decode %s record: %w", kind, err)
	}

	if r.cache != nil {
		r.mu.Lock()
		if r.writes == seen {
			r.cache.Set(key, payload, int64(len(payload)))
		}
		r.mu.Unlock()
	}
	return nil
}

func cacheKey(kind Kind, userID string) string {
	return string(kind) + "/" + userID
}
