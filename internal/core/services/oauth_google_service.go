package services

import (
	"context"
	"fmt"

	"github.com/wazeer/wazeer_backend/internal/apperrors"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements the GoogleOAuthSvcFacade interface.
type googleOAuthService struct {
	BaseService
	cfg          *config.AppConfig
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new Google sign-in service. The service
// stays disabled (Enabled() false) when the Google settings are absent.
func NewGoogleOAuthService(cfg *config.AppConfig) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) Enabled() bool {
	return s.cfg.GoogleOAuthConfigured()
}

// ExchangeCode trades an authorization code for Google tokens, validates the
// ID token against our client ID and returns the verified email address.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("google sign-in is not configured: %w", apperrors.ErrValidation)
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", fmt.Errorf("google token response carried no id_token: %w", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return "", fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("google ID token carried no email claim: %w", apperrors.ErrUnauthorized)
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return "", fmt.Errorf("google account email is not verified: %w", apperrors.ErrUnauthorized)
	}

	return email, nil
}
