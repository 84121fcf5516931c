// Package cmd wires the Cobra CLI: one root command, one subcommand per
// runnable scenario, logrus leveled by a shared --log flag.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pyroute13",
	Short: "Discrete-event fleet dispatch simulator",
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configureLogging() *logrus.Logger {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	log := logrus.New()
	log.SetLevel(level)
	return log
}
