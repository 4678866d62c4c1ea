package middleware

import (
	"strings"

	deliverycontext "scubakeep/internal/delivery/context"
	"scubakeep/internal/delivery/http/response"
	"scubakeep/internal/domain/entity"
	"scubakeep/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate resolves the bearer token into a request principal. It runs on
// every request: an absent or invalid token leaves the request anonymous and
// the route gates decide whether that is acceptable. Running it twice on the
// same request is a no-op.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetPrincipal(c); ok {
			return next(c)
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// A bad token means an anonymous request, never a server error.
			return next(c)
		}

		diverID, err := claims.DiverID()
		if err != nil {
			return next(c)
		}

		role, ok := entity.RoleFromString(claims.Role)
		if !ok {
			return next(c)
		}

		deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
			DiverID:  diverID,
			Username: claims.Username,
			Role:     role,
		})

		return next(c)
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetPrincipal(c); !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if principal.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
