package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fittrack-be/internal/cache"
	"fittrack-be/internal/entities"
	"fittrack-be/internal/repository"
)

// UserService defines profile lookups
type UserService interface {
	Profile(ctx context.Context, email string) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewUserService creates a user service. cacheClient may be nil.
func NewUserService(userRepo repository.UserRepository, cacheClient cache.Cache, cacheTTL time.Duration) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
	}
}

// Profile returns the user registered under email. Users never change after
// signup, so a cached profile stays valid until its TTL.
func (s *userService) Profile(ctx context.Context, email string) (*entities.User, error) {
	key := cache.ProfileKey(email)
	if s.cache != nil {
		var cached entities.User
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("profile cache read failed")
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, user, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("profile cache write failed")
		}
	}
	return user, nil
}
