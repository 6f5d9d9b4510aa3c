package services

import (
	"context"
	"time"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// TokenSvcFacade issues and validates the application's tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token carrying the user's role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and persists its
	// hash against the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a raw refresh token against the
	// stored hash and expiry, returning the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthSvcFacade handles the optional Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// Enabled reports whether Google sign-in is configured.
	Enabled() bool

	// ExchangeCode exchanges an authorization code for Google tokens,
	// validates the ID token and returns the verified email address.
	ExchangeCode(ctx context.Context, code string) (string, error)
}
