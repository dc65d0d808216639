package middleware

import (
	"context"
	"strings"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/labstack/echo/v4"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal authenticated by AdminAuth.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(models.Principal)
	return p, ok
}

// AdminAuth requires a bearer token of an administrator account.
func (m *AppMiddleware) AdminAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return http.RestServiceErrorResponse(c, common.ErrPrincipalRequired)
		}

		principal, err := m.identity.AuthenticateAdmin(ctx, token)
		if err != nil {
			xlog.Warn(ctx, "[ADMIN-AUTH] request rejected", xlog.Err(err))
			return http.RestServiceErrorResponse(c, err)
		}

		ctx = xlog.WithFields(WithPrincipal(ctx, principal), xlog.String("principal_uid", principal.UID))
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
