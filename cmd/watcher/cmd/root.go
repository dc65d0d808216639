package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "watcher",
	Short: "Watcher keeps the wallet aggregate up to date and exports its stats",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd, migrateCmd)

	runCmd.Flags().IntP(runCmdWindow, "w", 0, "transaction window, overrides aggregator.transaction_window")
	runCmd.Flags().IntP(runCmdMetricsPort, "p", 0, "metrics port, overrides aggregator.metrics_port")
}
