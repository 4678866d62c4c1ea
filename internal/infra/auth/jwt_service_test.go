package auth

import (
	"testing"
	"time"

	"scubakeep/config"
	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Minute)
	diverID := uuid.New()

	token, err := svc.Issue(diverID, "deepdiver42", entity.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "deepdiver42", claims.Username)
	assert.Equal(t, entity.RoleUser.String(), claims.Role)

	parsedID, err := claims.DiverID()
	require.NoError(t, err)
	assert.Equal(t, diverID, parsedID)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Minute)

	// Sign an already-expired token with the same secret.
	past := time.Now().Add(-2 * time.Hour)
	claims := &service.Claims{
		Username: "deepdiver42",
		Role:     entity.RoleUser.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Minute)

	token, err := svc.Issue(uuid.New(), "deepdiver42", entity.RoleUser)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.Verify(tampered)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one", time.Minute)
	verifier := newTestJWTService(t, "secret-two", time.Minute)

	token, err := issuer.Issue(uuid.New(), "deepdiver42", entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsMissingClaims(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Minute)

	// A structurally valid token without identity claims is still rejected.
	now := time.Now()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(anonymous)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 30*time.Minute)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenTTL())

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	defaulted, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, defaulted.AccessTokenTTL())
}
