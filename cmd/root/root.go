// Package root contains the root command for the application
package root

import (
	"fmt"

	"scadenzade/internal/config"
	"scadenzade/internal/container"
	"scadenzade/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to every command
type CommonFlags struct {
	ConfigDir string
	DataDir   string
	LogLevel  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "scadenzade",
		Short: "Track payment deadlines of electronic invoices (FatturaPA).",
		Long: `scadenzade reads FatturaPA XML invoices from a suppliers source and a
clients source, writes their payment deadlines to one CSV file per group and
totals them month by month for the active year.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initContainer,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer == nil {
				return
			}
			if err := appContainer.Close(); err != nil {
				Log.Warnf("Failed to close container: %v", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// SharedFlags are bound to the persistent flags of Cmd
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigDir, "config-dir", "", "Directory holding year.csv and path.csv (overrides store.directory)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory holding the CSV stores (overrides data.directory)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
}

// initContainer loads the configuration and wires the container once per
// process. A container installed with SetContainer is kept.
func initContainer(cmd *cobra.Command, args []string) error {
	if appContainer != nil {
		return nil
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.ConfigDir != "" {
		cfg.Store.Directory = SharedFlags.ConfigDir
	}
	if SharedFlags.DataDir != "" {
		cfg.Data.Directory = SharedFlags.DataDir
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	c, err := container.NewContainer(cfg, container.WithLogger(logging.NewLogrusAdapterFromLogger(Log)))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	appContainer = c
	return nil
}

// GetContainer returns the container wired by the root command, or nil
// before any command ran.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer installs c as the application container. Tests use it to run
// subcommands against a temporary workspace.
func SetContainer(c *container.Container) {
	appContainer = c
}

// RequireContainer returns the container or an error when none is wired.
func RequireContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return appContainer, nil
}
