package main

import (
	"context"
	"sync"
	"time"

	"github.com/unionconnect/go-wallet-admin/cmd/setup"
	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	// the dashboard read path is served from this session
	if err := s.Session.Start(ctx); err != nil {
		graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		xlog.Fatalf(ctx, "failed to start aggregator session: %v", err)
	}

	httpServer := http.NewHTTPServer(s.Config, s.NewRelic,
		s.Service,
		s.Retryer,
		s.Metrics,
		s.HealthChecks(),
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, s.Session.Stop)
	stoppers = append(stoppers, httpServer.Stop())

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		failed := graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, failed, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Info(ctx, "http server stopped!")
}
