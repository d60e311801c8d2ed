package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/tokens"
)

type Identity struct {
	ID    uint
	Email string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

type TokenVerifier interface {
	Verify(token string) (*tokens.Claims, error)
}

type BearerAuth struct {
	Tokens TokenVerifier
}

func NewBearerAuth(v TokenVerifier) *BearerAuth {
	return &BearerAuth{Tokens: v}
}

// RequireAuth answers 401 when no bearer token is sent and 403 when the
// token does not verify.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "auth")

		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			l.Warn("auth_failed", "status", 401, "reason", "missing bearer token")
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := m.Tokens.Verify(raw)
		if err != nil {
			if !errors.Is(err, tokens.ErrInvalidToken) {
				l.Error("auth_failed", "status", 403, "reason", "token verification error", "error", err)
			} else {
				l.Warn("auth_failed", "status", 403, "reason", "invalid or expired token", "error", err)
			}
			return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
		}

		ctx = WithIdentity(ctx, Identity{ID: claims.UserID, Email: claims.Email})
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
