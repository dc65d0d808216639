package member

import (
	nethttp "net/http"

	"github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/common/validation"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	"github.com/labstack/echo/v4"
)

type memberHandler struct {
	memberSvc    services.MemberService
	dashboardSvc services.DashboardService
}

// New member handler will initialize the members/ resources endpoint
func New(app *echo.Group, memberSvc services.MemberService, dashboardSvc services.DashboardService) {
	handler := memberHandler{
		memberSvc:    memberSvc,
		dashboardSvc: dashboardSvc,
	}
	api := app.Group("/members")
	api.GET("", handler.getAllMember)
	api.POST("", handler.createMember)
}

// getAllMember API get enrolled members
// @Summary Get enrolled members
// @Description Newest enrollment first
// @Tags Members
// @Produce  json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.MemberResponse}
// @Router /v1/members [get]
func (h *memberHandler) getAllMember(c echo.Context) error {
	data := h.dashboardSvc.GetMembers(c.Request().Context())
	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// createMember API enroll member
// @Summary Enroll a prospective account holder
// @Description Each member id can be enrolled once
// @Tags Members
// @Accept  json
// @Produce  json
// @Param body body models.CreateMemberRequest true "body"
// @Param Authorization header string true "Bearer token"
// @Success 201 {object} models.MemberResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Router /v1/members [post]
func (h *memberHandler) createMember(c echo.Context) error {
	req := new(models.CreateMemberRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.memberSvc.CreateMember(c.Request().Context(), *req)
	if err != nil {
		return http.RestServiceErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToModelResponse())
}
