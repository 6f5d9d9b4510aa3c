package repositories

import (
	"context"
	"time"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// UserReaderRepository defines read operations for operator accounts.
type UserReaderRepository interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterRepository defines write operations for operator accounts.
type UserWriterRepository interface {
	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token; empty hash and nil expiry clear it.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReaderRepository
	UserWriterRepository
}
