package impl

import (
	"time"

	"neoauth/internal/observability/metrics"
	"neoauth/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

type TokenConfig struct {
	SessionTTL time.Duration // defaults to 7 days
	SigningKey []byte        // HS256 secret, loaded once at boot
}

// TokenServiceImpl issues and verifies self-contained HS256 session tokens.
// A token stays valid for its whole lifetime; there is no revocation list,
// so demotion or deactivation only bites on endpoints that re-check state.
type TokenServiceImpl struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	return &TokenServiceImpl{cfg: cfg, now: time.Now}
}

func (t *TokenServiceImpl) Issue(userID int64, email string) (string, error) {
	now := t.now().UTC()
	claims := service.SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.SessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.SigningKey)
	if err != nil {
		metrics.TokensIssuedTotal.WithLabelValues("issue", "failure").Inc()
		return "", err
	}
	metrics.TokensIssuedTotal.WithLabelValues("issue", "success").Inc()
	return signed, nil
}

// Verify accepts only well-formed three-segment tokens whose HS256 signature
// matches and whose exp claim is present and strictly in the future.
func (t *TokenServiceImpl) Verify(token string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
