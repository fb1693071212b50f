package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fittrack-be/internal/entities"
	"fittrack-be/internal/jwt"
	"fittrack-be/internal/models"
	"fittrack-be/internal/observability"
	"fittrack-be/internal/repository"
)

// AuthService defines the interface for signup and login
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*entities.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     *PasswordHasher
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher *PasswordHasher, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Signup registers a new account. Duplicate emails are rejected by the store's
// uniqueness constraint, so there is no separate existence check to race against.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*entities.User, error) {
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		observability.RecordSignup(observability.SignupError)
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &entities.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		observability.RecordSignup(observability.SignupDuplicate)
		return nil, ErrEmailExists
	}
	if err != nil {
		observability.RecordSignup(observability.SignupError)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	observability.RecordSignup(observability.SignupCreated)
	return user, nil
}

// Login verifies credentials and returns a signed bearer token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		observability.RecordLogin(observability.LoginUnknownUser)
		return "", ErrUserNotFound
	}
	if err != nil {
		observability.RecordLogin(observability.LoginError)
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		observability.RecordLogin(observability.LoginError)
		return "", err
	}
	if !ok {
		observability.RecordLogin(observability.LoginBadPassword)
		return "", ErrIncorrectPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		observability.RecordLogin(observability.LoginError)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	observability.RecordLogin(observability.LoginSuccess)
	return token, nil
}
