package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"fittrack-be/internal/entities"
	"fittrack-be/internal/jwt"
	"fittrack-be/internal/models"
	"fittrack-be/internal/repository"
	"fittrack-be/internal/repository/mocks"
)

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository, *PasswordHasher, *jwt.JWTService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := jwt.NewJWTService("test-secret", "fittrack", time.Hour)
	return NewAuthService(repo, hasher, tokens), repo, hasher, tokens
}

func TestSignupStoresHashedPassword(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *entities.User) (*entities.User, error) {
			assert.Equal(t, "Ada", user.FirstName)
			assert.Equal(t, "Lovelace", user.LastName)
			assert.Equal(t, "ada@example.com", user.Email)
			assert.NotEqual(t, "s3cret", user.PasswordHash)

			ok, err := hasher.Verify("s3cret", user.PasswordHash)
			require.NoError(t, err)
			assert.True(t, ok)

			created := *user
			created.ID = "user-1"
			return &created, nil
		})

	user, err := svc.Signup(ctx, &models.SignupRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateEmail)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw"})
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestSignupStorageError(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	boom := errors.New("connection reset")

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw"})
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEmailExists)
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	svc, repo, hasher, tokens := newTestAuthService(t)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&entities.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		PasswordHash: hash,
	}, nil)

	token, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestLoginDistinguishesUnknownUserAndBadPassword(t *testing.T) {
	svc, repo, hasher, _ := newTestAuthService(t)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	repo.EXPECT().FindByEmail(gomock.Any(), "missing@example.com").Return(nil, repository.ErrNotFound)
	repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&entities.User{ID: "user-1", Email: "ada@example.com", PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "missing@example.com", Password: "s3cret"})
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestLoginStorageError(t *testing.T) {
	svc, repo, _, _ := newTestAuthService(t)
	boom := errors.New("timeout")

	repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, boom)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ada@example.com", Password: "pw"})
	require.ErrorIs(t, err, boom)
}
