package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	commonhttp "github.com/unionconnect/go-wallet-admin/internal/common/http"
	"github.com/unionconnect/go-wallet-admin/internal/common/http/middleware"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/common/metrics"
	"github.com/unionconnect/go-wallet-admin/internal/common/retry"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/deliveries/http/health"
	"github.com/unionconnect/go-wallet-admin/internal/services"

	v1account "github.com/unionconnect/go-wallet-admin/internal/deliveries/http/v1/account"
	v1dashboard "github.com/unionconnect/go-wallet-admin/internal/deliveries/http/v1/dashboard"
	v1loan "github.com/unionconnect/go-wallet-admin/internal/deliveries/http/v1/loan"
	v1member "github.com/unionconnect/go-wallet-admin/internal/deliveries/http/v1/member"
	v1session "github.com/unionconnect/go-wallet-admin/internal/deliveries/http/v1/session"
	v1transaction "github.com/unionconnect/go-wallet-admin/internal/deliveries/http/v1/transaction"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		err := s.e.Start(s.addr)
		if err != nil && err != nethttp.ErrServerClosed {
			return err
		}
		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, mostly for tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title UNIONCONNECT WALLET ADMIN API DOCUMENTATION
// @version 1.0
// @description Admin API of the UnionConnect wallet: dashboard, members, transactions and loan decisions.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	conf config.Config,
	nr *newrelic.Application,
	srv *services.Services,
	retryer retry.Retryer,
	mtc metrics.Metrics,
	checks map[string]health.Check,
) *svc {
	app := echo.New()
	app.HideBanner = true

	s := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, srv.Identity)
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(
		echomiddleware.Recover(),
		echomiddleware.RequestID(),
		m.Context(),
		m.Logger(),
	)
	if conf.App.HTTPTimeout > 0 {
		app.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: conf.App.HTTPTimeout,
		}))
	}

	s.instrument(conf, nr, mtc)

	api := app.Group("/api")
	health.New(api, checks)

	v1 := api.Group("/v1", m.AdminAuth)
	v1session.New(v1, srv.Identity)
	v1dashboard.New(v1, srv.Dashboard)
	v1account.New(v1, srv.Dashboard)
	v1member.New(v1, srv.Member, srv.Dashboard)
	v1transaction.New(v1, srv.Dashboard)
	v1loan.New(v1, srv.Loan, retryer, conf.Ledger.HandlerTimeoutLoanDecision)

	app.Any("*", routeNotFound)

	return s
}

// instrument wires new relic transactions, prometheus request metrics and,
// outside production, pprof.
func (s *svc) instrument(conf config.Config, nr *newrelic.Application, mtc metrics.Metrics) {
	if nr != nil {
		s.e.Use(nrecho.Middleware(nr), tagRequestID)
	}

	if !config.IsProduction(conf.App.Env) || conf.FeatureFlag.EnablePprof {
		pprof.Register(s.e)
	}

	s.e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.FlattenName(conf.App.Name),
		Registerer: mtc.PrometheusRegisterer(),
	}))
	s.e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: mtc.PrometheusGatherer(),
	}))
}

func tagRequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
			txn.AddAttribute("x-request-id", c.Response().Header().Get(echo.HeaderXRequestID))
		}
		return next(c)
	}
}

func routeNotFound(c echo.Context) error {
	return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound,
		fmt.Errorf("route '%s' does not exist in this API", c.Request().URL))
}
