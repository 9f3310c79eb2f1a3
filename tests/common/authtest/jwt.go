//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider would for the
// configured secret, plus the usual broken variants.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return mint(t, h.cfg, userID)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	cfg := h.cfg
	cfg.Duration = -time.Minute
	return mint(t, cfg, userID)
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	cfg := h.cfg
	cfg.Secret += "-other"
	return mint(t, cfg, userID)
}

func mint(t *testing.T, cfg config.JWTConfig, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(cfg).GenerateToken(userID)
	require.NoError(t, err)
	return token
}
