package session

import (
	nethttp "net/http"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/common/http/middleware"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

type sessionHandler struct {
	identitySvc services.IdentityService
}

type SignOutResponse struct {
	Kind string `json:"kind" example:"signOut"`
	UID  string `json:"uid"`
}

// New session handler will initialize the session/ resources endpoint
func New(app *echo.Group, identitySvc services.IdentityService) {
	handler := sessionHandler{
		identitySvc: identitySvc,
	}
	api := app.Group("/session")
	api.GET("", handler.whoAmI)
	api.POST("/sign-out", handler.signOut)
}

// whoAmI API get the signed in administrator
// @Summary Get the signed in administrator
// @Tags Session
// @Produce  json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.Principal
// @Failure 401 {object} http.RestErrorResponseModel
// @Router /v1/session [get]
func (h *sessionHandler) whoAmI(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c.Request().Context())
	if !ok {
		return http.RestServiceErrorResponse(c, common.ErrPrincipalRequired)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, principal)
}

// signOut API sign out
// @Summary Sign out
// @Description Drops the cached principal so the next request re-reads the account
// @Tags Session
// @Produce  json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} SignOutResponse
// @Router /v1/session/sign-out [post]
func (h *sessionHandler) signOut(c echo.Context) error {
	ctx := c.Request().Context()

	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return http.RestServiceErrorResponse(c, common.ErrPrincipalRequired)
	}

	if err := h.identitySvc.InvalidatePrincipal(ctx, principal.UID); err != nil {
		// the cached entry still expires on its own
		xlog.Warn(ctx, "[SIGN-OUT] failed to drop cached principal", xlog.Err(err))
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, SignOutResponse{
		Kind: "signOut",
		UID:  principal.UID,
	})
}
