package cmd

import (
	"context"
	"time"

	"github.com/unionconnect/go-wallet-admin/cmd/setup"
	"github.com/unionconnect/go-wallet-admin/internal/aggregator"
	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/deliveries/watcher"

	"github.com/spf13/cobra"
)

var (
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run the aggregator headless",
		Long:    `Run the aggregator on the live change feed and serve its derived stats on /metrics`,
		Example: "watcher run -w=50 -p=9568",
		Run:     run,
	}
	runCmdWindow      = "window"
	runCmdMetricsPort = "metrics-port"
)

func run(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("watcher")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup watcher: %v", err)
	}

	session := s.Session
	if window, _ := ccmd.Flags().GetInt(runCmdWindow); window > 0 {
		session = aggregator.NewSession(s.Feed, window,
			aggregator.WithMetrics(s.Metrics.GetAggregatorPrometheus()),
		)
	}
	if port, _ := ccmd.Flags().GetInt(runCmdMetricsPort); port > 0 {
		s.Config.Aggregator.MetricsPort = port
	}

	// subscribe before the first fold so no revision is missed
	reporter := watcher.NewReporter(session)
	if err := session.Start(ctx); err != nil {
		graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		xlog.Fatalf(ctx, "failed to start aggregator session: %v", err)
	}

	httpServer := watcher.NewHTTPServer(s.Config, s.Metrics, s.HealthChecks())

	starters = append(starters, reporter.Start(), httpServer.Start())
	// stopped in reverse: http server, reporter, session, then setup resources
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, session.Stop)
	stoppers = append(stoppers, reporter.Stop())
	stoppers = append(stoppers, httpServer.Stop())

	xlog.Infof(ctx, "watcher started, serving metrics on :%d", s.Config.Aggregator.MetricsPort)
	failed := graceful.StartProcessAtBackground(starters...)
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, failed, stoppers...)

	xlog.Info(ctx, "watcher stopped!")
}
