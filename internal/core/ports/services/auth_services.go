package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade mints application JWTs for authenticated users.
type TokenSvcFacade interface {
	GenerateToken(userID string) (string, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the OAuth code-exchange flow.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies an ID token's signature and audience and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
