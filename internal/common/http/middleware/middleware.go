package middleware

import (
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AppMiddleware holds what the admin API middlewares need: the app config for
// log fields and the identity service for the admin gate.
type AppMiddleware struct {
	conf     config.Config
	identity services.IdentityService
}

func NewMiddleware(conf config.Config, identity services.IdentityService) AppMiddleware {
	return AppMiddleware{
		conf:     conf,
		identity: identity,
	}
}

// Context attaches the request id to the request context so every log line
// written while serving the request carries it.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			ctx := xlog.WithFields(req.Context(),
				xlog.String("request_id", requestID),
				xlog.String("app", m.conf.App.Name),
				xlog.String("env", config.StringToEnvironment(m.conf.App.Env).String()),
			)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
