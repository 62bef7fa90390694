// Package main provides the farmsecure CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := newRootCmd(&app{now: time.Now})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "farmsecure",
		Short: "Biosecurity risk assessment for pig and poultry farms",
		Long: `FarmSecure scores a farm's biosecurity practices into a 0-100 risk score,
classifies it into a risk level, and reports the farm's compliance checklist,
staff training and alerts.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to config file (default: .farmsecure/config.yaml in this or a parent directory)")
	f.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	f.StringVar(&a.logFormat, "log-format", "", "Log format: json or console (default from config)")
	f.StringVar(&a.metricsFile, "metrics-file", "", "Write evaluation metrics in Prometheus text format to this file")

	rootCmd.AddCommand(
		newAssessCmd(a),
		newBatchCmd(a),
		newDashboardCmd(a),
		newChecklistCmd(a),
		newTrainingCmd(a),
		newAlertsCmd(a),
		newLabelsCmd(a),
	)

	return rootCmd
}
