package health

import (
	"context"
	nethttp "net/http"
	"sort"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common/http"

	"github.com/labstack/echo/v4"
)

const checkTimeout = 2 * time.Second

// Check is one dependency probed by the readiness endpoint, usually a
// database PingContext.
type Check func(ctx context.Context) error

type healthHandler struct {
	checks map[string]Check
}

// New registers GET /health (liveness) and GET /health/ready (dependencies).
func New(app *echo.Group, checks map[string]Check) {
	hh := healthHandler{checks: checks}
	app.GET("/health", hh.healthCheck)
	app.GET("/health/ready", hh.readinessCheck)
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}

	DoHealthCheckReadinessResponse struct {
		Kind   string            `json:"kind" example:"readiness"`
		Ready  bool              `json:"ready" example:"true"`
		Checks map[string]string `json:"checks,omitempty"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}

// readinessCheck godoc
// @Summary 	Get the status of the server dependencies
// @Produce		json
// @Success 200 {object} DoHealthCheckReadinessResponse
// @Failure 503 {object} DoHealthCheckReadinessResponse
// @Router /health/ready [get]
func (hh healthHandler) readinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(hh.checks))
	for name := range hh.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	res := DoHealthCheckReadinessResponse{Kind: "readiness", Ready: true, Checks: map[string]string{}}
	for _, name := range names {
		if err := hh.checks[name](ctx); err != nil {
			res.Ready = false
			res.Checks[name] = err.Error()
			continue
		}
		res.Checks[name] = "ok"
	}

	status := nethttp.StatusOK
	if !res.Ready {
		status = nethttp.StatusServiceUnavailable
	}
	return http.RestSuccessResponse(c, status, res)
}
