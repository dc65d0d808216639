package watcher

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	"github.com/unionconnect/go-wallet-admin/internal/common/metrics"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/deliveries/http/health"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type svc struct {
	e    *echo.Echo
	addr string
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
		return s.e.Shutdown(ctx)
	}
}

func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// NewHTTPServer serves /metrics and /api/health for the headless watcher.
func NewHTTPServer(conf config.Config, mtc metrics.Metrics, checks map[string]health.Check) *svc {
	app := echo.New()
	app.HideBanner = true
	svc := &svc{e: app, addr: fmt.Sprintf(":%d", conf.Aggregator.MetricsPort)}

	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())

	// Endpoint debug/pprof/
	if !config.IsProduction(conf.App.Env) {
		pprof.Register(app)
	}

	app.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: mtc.PrometheusGatherer(),
	}))

	health.New(app.Group("/api"), checks)

	return svc
}
