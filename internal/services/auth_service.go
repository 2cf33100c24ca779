package services

import (
	"context"
	"time"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
	"crm_backend/internal/redis"
	"crm_backend/internal/repository"
)

type AuthService interface {
	// Login verifies credentials and issues a bearer token. Unknown
	// email, wrong password and inactive account all return the same
	// auth error so the response never leaks which check failed.
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	// ValidateToken re-checks the token against the revocation list and
	// the current user record.
	ValidateToken(ctx context.Context, token string) (*models.User, error)
	// Logout revokes the token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *redis.Client
	secret   []byte
	lifespan time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens *redis.Client, secret []byte, lifespan time.Duration) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, secret: secret, lifespan: lifespan}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, &apperrors.ValidationError{Msg: "Email and password are required"}
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, &apperrors.AuthError{Msg: "Invalid credentials"}
	}
	if !user.IsActive {
		return "", nil, &apperrors.AuthError{Msg: "User account is inactive"}
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", nil, &apperrors.AuthError{Msg: "Invalid credentials"}
	}

	token, err := auth.Generate(s.secret, s.lifespan, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.Parse(s.secret, token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.tokens.IsTokenRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, &apperrors.AuthError{Msg: "Invalid or expired token"}
	}
	user, err := s.userRepo.GetByID(claims.ID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, &apperrors.AuthError{Msg: "User not found or inactive"}
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := auth.Parse(s.secret, token)
	if err != nil {
		// Already invalid; nothing to revoke.
		return nil
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	return s.tokens.RevokeToken(ctx, token, ttl)
}
