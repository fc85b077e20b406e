package main

import (
	"fmt"
	"os"
	"strings"

	"scadenzade/cmd/deadlines"
	"scadenzade/cmd/paths"
	"scadenzade/cmd/report"
	"scadenzade/cmd/root"
	"scadenzade/cmd/run"
	"scadenzade/cmd/totals"
	"scadenzade/cmd/years"
	"scadenzade/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the shared command logger from the environment; the
	//    configuration file may refine it once a command starts
	root.Log.SetLevel(logLevelFromEnv())

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(run.Cmd)
	root.Cmd.AddCommand(totals.Cmd)
	root.Cmd.AddCommand(deadlines.Cmd)
	root.Cmd.AddCommand(years.Cmd)
	root.Cmd.AddCommand(paths.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	_, _ = config.LoadEnv()
}

// logLevelFromEnv reads SCADENZE_LOG_LEVEL, defaulting to info
func logLevelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv(config.EnvPrefix + "_LOG_LEVEL")))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
