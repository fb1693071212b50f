package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fittrack-be/internal/cache"
	"fittrack-be/internal/entities"
	"fittrack-be/internal/events"
	"fittrack-be/internal/models"
	"fittrack-be/internal/observability"
	"fittrack-be/internal/repository"
)

// Fixed daily targets shown on the summary dashboard
const (
	StepsTarget    = 5000
	WaterTarget    = 3000 // ml
	CaloriesTarget = 2000
)

// FitnessService defines recording and reading of fitness entries
type FitnessService interface {
	Record(ctx context.Context, email, entryType string, value float64) (*entities.FitnessEntry, error)
	History(ctx context.Context, email string) ([]*entities.FitnessEntry, error)
	Summary(ctx context.Context, email string) (*models.SummaryResponse, error)
}

// A Summary that read the store before a concurrent Record can still write its
// result after Record's invalidation. Such a stale summary lives at most cacheTTL.
type fitnessService struct {
	repo      repository.FitnessRepository
	cache     cache.Cache
	cacheTTL  time.Duration
	publisher events.Publisher
	now       func() time.Time
}

// NewFitnessService creates a fitness service. cacheClient may be nil.
func NewFitnessService(repo repository.FitnessRepository, cacheClient cache.Cache, cacheTTL time.Duration, publisher events.Publisher) FitnessService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &fitnessService{
		repo:      repo,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		now:       time.Now,
	}
}

// Record appends an entry dated today (UTC server clock)
func (s *fitnessService) Record(ctx context.Context, email, entryType string, value float64) (*entities.FitnessEntry, error) {
	now := s.now().UTC()
	s.invalidateSummary(ctx, email)
	entry, err := s.repo.Insert(ctx, &entities.FitnessEntry{
		Email:     email,
		Type:      entryType,
		Value:     value,
		Date:      now.Format(entities.DateLayout),
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record fitness entry: %w", err)
	}
	observability.RecordEntry(entry.Type)
	s.invalidateSummary(ctx, email)

	if err := s.publisher.PublishEntryRecorded(ctx, entry); err != nil {
		log.Warn().Err(err).Str("entry_id", entry.ID).Msg("entry event not published")
	}

	return entry, nil
}

// History returns all entries for email, newest first
func (s *fitnessService) History(ctx context.Context, email string) ([]*entities.FitnessEntry, error) {
	entries, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load fitness history: %w", err)
	}
	if entries == nil {
		entries = []*entities.FitnessEntry{}
	}
	return entries, nil
}

// Summary compares the latest value of each tracked metric with its target.
// A metric with no entries reports an actual of 0.
func (s *fitnessService) Summary(ctx context.Context, email string) (*models.SummaryResponse, error) {
	key := cache.SummaryKey(email)
	if s.cache != nil {
		var cached models.SummaryResponse
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("summary cache read failed")
		}
	}

	steps, err := s.latestValue(ctx, email, entities.TypeDailySteps)
	if err != nil {
		return nil, err
	}
	water, err := s.latestValue(ctx, email, entities.TypeWaterIntake)
	if err != nil {
		return nil, err
	}
	calories, err := s.latestValue(ctx, email, entities.TypeCaloriesIntake)
	if err != nil {
		return nil, err
	}

	summary := &models.SummaryResponse{
		Success:  true,
		Steps:    models.MetricSummary{Target: StepsTarget, Actual: steps},
		Water:    models.MetricSummary{Target: WaterTarget, Actual: water},
		Calories: models.MetricSummary{Target: CaloriesTarget, Actual: calories},
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, summary, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("summary cache write failed")
		}
	}
	return summary, nil
}

// invalidateSummary runs before and after the insert to narrow the window in
// which a concurrent Summary can cache pre-insert values.
func (s *fitnessService) invalidateSummary(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.SummaryKey(email)); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("summary cache invalidation failed")
	}
}

func (s *fitnessService) latestValue(ctx context.Context, email, entryType string) (float64, error) {
	entry, err := s.repo.FindLatest(ctx, email, entryType)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load latest %s: %w", entryType, err)
	}
	return entry.Value, nil
}
