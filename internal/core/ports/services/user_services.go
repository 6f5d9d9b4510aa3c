package services

import (
	"context"
	"time"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for operator accounts.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail resolves a Google-verified email to a provisioned
	// account; unknown emails yield apperrors.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for operator accounts.
type UserWriterSvc interface {
	// StoreRefreshToken persists the hash and expiry of the user's refresh token.
	StoreRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
