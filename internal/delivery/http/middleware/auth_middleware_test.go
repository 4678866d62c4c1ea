package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "scubakeep/internal/delivery/context"
	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/service"
	mockSvc "scubakeep/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func validClaims(diverID uuid.UUID) *service.Claims {
	return &service.Claims{
		Username: "deepdiver42",
		Role:     entity.RoleUser.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: diverID.String(),
		},
	}
}

func TestAuthenticate_NoHeaderProceedsAnonymously(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := deliverycontext.GetPrincipal(c)
	assert.False(t, ok)
}

func TestAuthenticate_InvalidTokenProceedsAnonymously(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	tokenSvc.On("Verify", "garbage").Return(nil, domainerrors.ErrInvalidToken)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer garbage")

	err := m.Authenticate(okHandler)(c)

	// A bad token makes the request anonymous; it never becomes a 500.
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := deliverycontext.GetPrincipal(c)
	assert.False(t, ok)
}

func TestAuthenticate_ValidTokenSetsPrincipal(t *testing.T) {
	diverID := uuid.New()
	tokenSvc := &mockSvc.MockTokenService{}
	tokenSvc.On("Verify", "good-token").Return(validClaims(diverID), nil)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Bearer good-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)

	principal, ok := deliverycontext.GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, diverID, principal.DiverID)
	assert.Equal(t, "deepdiver42", principal.Username)
	assert.Equal(t, entity.RoleUser, principal.Role)
}

func TestAuthenticate_Idempotent(t *testing.T) {
	diverID := uuid.New()
	tokenSvc := &mockSvc.MockTokenService{}
	tokenSvc.On("Verify", "good-token").Return(validClaims(diverID), nil).Once()
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Bearer good-token")

	// Running the middleware twice verifies the token once and keeps the
	// existing principal.
	handler := m.Authenticate(m.Authenticate(okHandler))
	require.NoError(t, handler(c))

	principal, ok := deliverycontext.GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, diverID, principal.DiverID)
	tokenSvc.AssertExpectations(t)
}

func TestRequireAuth(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")
	require.NoError(t, m.RequireAuth(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newAuthTestContext(t, "")
	deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
		DiverID:  uuid.New(),
		Username: "deepdiver42",
		Role:     entity.RoleUser,
	})
	require.NoError(t, m.RequireAuth(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	tokenSvc := &mockSvc.MockTokenService{}
	m := NewAuthMiddleware(tokenSvc)
	requireAdmin := m.RequireRole(entity.RoleAdmin)

	// No principal at all.
	c, rec := newAuthTestContext(t, "")
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but not an admin.
	c, rec = newAuthTestContext(t, "")
	deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
		DiverID: uuid.New(),
		Role:    entity.RoleUser,
	})
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin passes.
	c, rec = newAuthTestContext(t, "")
	deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
		DiverID: uuid.New(),
		Role:    entity.RoleAdmin,
	})
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
