package services

import (
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/platform/config"
	"github.com/cardwise/cardwise_backend/internal/utils"
)

type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates the service that mints application JWTs.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
