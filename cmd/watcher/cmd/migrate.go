package cmd

import (
	"context"
	"time"

	"github.com/unionconnect/go-wallet-admin/cmd/setup"
	"github.com/unionconnect/go-wallet-admin/internal/common/graceful"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Install the tables and change notification triggers",
	Long:    `Apply the embedded schema on the write database. Safe to run on every deploy`,
	Example: "watcher migrate",
	Run:     migrate,
}

func migrate(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	s, stopperContract, err := setup.Init("migrate")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup migrate: %v", err)
	}

	err = s.SQLRepo.Migrate(ctx)
	graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
	if err != nil {
		xlog.Fatalf(ctx, "migration failed: %v", err)
	}

	xlog.Info(ctx, "migration finished")
}
