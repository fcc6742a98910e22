//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rfq-offer-service/internal/pkg/config"
	"rfq-offer-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, accountID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(accountID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) SupplierToken(t *testing.T, supplierID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, supplierID, jwt.RoleSupplier)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, accountID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(accountID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
