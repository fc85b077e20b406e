// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"scadenzade/internal/dateutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SCADENZE_LOG_LEVEL.
const EnvPrefix = "SCADENZE"

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the tabular store files.
type DataConfig struct {
	Directory     string `mapstructure:"directory" yaml:"directory"`
	SuppliersFile string `mapstructure:"suppliers_file" yaml:"suppliers_file"`
	ClientsFile   string `mapstructure:"clients_file" yaml:"clients_file"`
}

// StoreConfig locates year.csv and path.csv.
type StoreConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// SourceConfig controls how directory sources are scanned.
type SourceConfig struct {
	Extension string `mapstructure:"extension" yaml:"extension"`
}

// DeadlineConfig is the missing-deadline policy.
type DeadlineConfig struct {
	Manual        bool   `mapstructure:"manual" yaml:"manual"`
	ManualDate    string `mapstructure:"manual_date" yaml:"manual_date"`
	EpochFallback string `mapstructure:"epoch_fallback" yaml:"epoch_fallback"`
}

// PartyConfig holds party naming defaults.
type PartyConfig struct {
	UnknownName string `mapstructure:"unknown_name" yaml:"unknown_name"`
}

// CSVConfig controls the tabular store format.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Data     DataConfig     `mapstructure:"data" yaml:"data"`
	Store    StoreConfig    `mapstructure:"store" yaml:"store"`
	Source   SourceConfig   `mapstructure:"source" yaml:"source"`
	Deadline DeadlineConfig `mapstructure:"deadline" yaml:"deadline"`
	Party    PartyConfig    `mapstructure:"party" yaml:"party"`
	CSV      CSVConfig      `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from $HOME/.scadenzade, .scadenzade or the
// working directory, then SCADENZE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.scadenzade")
	v.AddConfigPath(".scadenzade")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data_box")
	v.SetDefault("data.suppliers_file", "data_suppliers.csv")
	v.SetDefault("data.clients_file", "data_clients.csv")

	v.SetDefault("store.directory", "config")

	v.SetDefault("source.extension", ".xml")

	v.SetDefault("deadline.manual", false)
	v.SetDefault("deadline.manual_date", "")
	v.SetDefault("deadline.epoch_fallback", models.EpochFallbackDate)

	v.SetDefault("party.unknown_name", models.UnknownPartyName)

	v.SetDefault("csv.delimiter", ";")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}
	if config.CSV.Delimiter == "." {
		return fmt.Errorf("CSV delimiter must differ from the decimal separator '.'")
	}

	if config.Deadline.ManualDate != "" && !dateutils.IsISODate(config.Deadline.ManualDate) {
		return fmt.Errorf("deadline.manual_date must be YYYY-MM-DD, got: %s", config.Deadline.ManualDate)
	}
	if !dateutils.IsISODate(config.Deadline.EpochFallback) {
		return fmt.Errorf("deadline.epoch_fallback must be YYYY-MM-DD, got: %s", config.Deadline.EpochFallback)
	}

	if !strings.HasPrefix(config.Source.Extension, ".") {
		return fmt.Errorf("source.extension must start with '.', got: %s", config.Source.Extension)
	}

	if config.Data.SuppliersFile == "" || config.Data.ClientsFile == "" {
		return fmt.Errorf("data.suppliers_file and data.clients_file are required")
	}

	return nil
}

// Validate checks a configuration built outside InitializeConfig.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// StorePath returns the tabular store file of group g.
func (c *Config) StorePath(g models.Group) string {
	name := c.Data.SuppliersFile
	if g == models.GroupClients {
		name = c.Data.ClientsFile
	}
	return filepath.Join(c.Data.Directory, name)
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
// Output goes to stderr.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	return logging.NewLogrusLogger(config.Log.Level, config.Log.Format, nil)
}
