// Package container provides dependency injection for the scadenzade
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"scadenzade/internal/aggregate"
	"scadenzade/internal/batch"
	"scadenzade/internal/config"
	"scadenzade/internal/deadline"
	"scadenzade/internal/engine"
	"scadenzade/internal/extract"
	"scadenzade/internal/fileutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/report"
	"scadenzade/internal/store"
	"scadenzade/internal/tabular"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	configStore store.ConfigStore
	tabular     *tabular.Store
	extractor   *extract.Extractor
	reader      *batch.Reader
	aggregator  *aggregate.Aggregator
	reports     *report.Generator
	engine      *engine.Engine
	now         func() time.Time
}

// Option customizes a Container.
type Option func(*options)

type options struct {
	logger      logging.Logger
	configStore store.ConfigStore
	now         func() time.Time
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConfigStore replaces the CSV config store, typically with a
// store.MockConfigStore in tests.
func WithConfigStore(s store.ConfigStore) Option {
	return func(o *options) { o.configStore = s }
}

// WithClock replaces time.Now in the engine.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewContainer creates and wires all application dependencies. The data and
// store directories are created when missing.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	if err := fileutils.EnsureDirectoryExists(cfg.Data.Directory); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	configStore := o.configStore
	if configStore == nil {
		if err := fileutils.EnsureDirectoryExists(cfg.Store.Directory); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		csvStore := store.NewCSVConfigStore(cfg.Store.Directory, logger)
		if err := csvStore.EnsurePathFile(); err != nil {
			return nil, fmt.Errorf("failed to create path file: %w", err)
		}
		configStore = csvStore
	}

	resolver := deadline.NewResolver(logger, deadline.WithEpochFallback(cfg.Deadline.EpochFallback))
	extractor := extract.NewExtractor(resolver, logger, extract.WithUnknownPartyName(cfg.Party.UnknownName))
	reader := batch.NewReader(extractor, logger, cfg.Source.Extension)
	tab := tabular.NewStore(logger, cfg.DelimiterRune())
	aggregator := aggregate.NewAggregator(tab, logger)
	reports := report.NewGenerator(logger)

	c := &Container{
		logger:      logger,
		config:      cfg,
		configStore: configStore,
		tabular:     tab,
		extractor:   extractor,
		reader:      reader,
		aggregator:  aggregator,
		reports:     reports,
		now:         o.now,
	}
	eng, err := c.newEngine(deadline.Request{
		Manual:     cfg.Deadline.Manual,
		ManualDate: cfg.Deadline.ManualDate,
	})
	if err != nil {
		return nil, err
	}
	c.engine = eng

	logger.Debug("Container initialized successfully",
		logging.F("data_directory", cfg.Data.Directory),
		logging.F("store_directory", cfg.Store.Directory))

	return c, nil
}

func (c *Container) newEngine(req deadline.Request) (*engine.Engine, error) {
	return engine.New(engine.Dependencies{
		Reader:      c.reader,
		Tabular:     c.tabular,
		Aggregator:  c.aggregator,
		ConfigStore: c.configStore,
		Reports:     c.reports,
		Logger:      c.logger,
		StoreFiles: map[models.Group]string{
			models.GroupSuppliers: c.config.StorePath(models.GroupSuppliers),
			models.GroupClients:   c.config.StorePath(models.GroupClients),
		},
	},
		engine.WithClock(c.now),
		engine.WithSourceExtension(c.config.Source.Extension),
		engine.WithDeadlineRequest(req),
	)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConfigStore returns the year and path store.
func (c *Container) GetConfigStore() store.ConfigStore {
	return c.configStore
}

// GetTabularStore returns the CSV store shared by both groups.
func (c *Container) GetTabularStore() *tabular.Store {
	return c.tabular
}

// GetExtractor returns the single-document extraction pipeline.
func (c *Container) GetExtractor() *extract.Extractor {
	return c.extractor
}

// GetReader returns the batch reader.
func (c *Container) GetReader() *batch.Reader {
	return c.reader
}

// GetAggregator returns the monthly aggregator.
func (c *Container) GetAggregator() *aggregate.Aggregator {
	return c.aggregator
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// GetEngine returns the engine used by every command.
func (c *Container) GetEngine() *engine.Engine {
	return c.engine
}

// WithDeadlineRequest returns an engine sharing every collaborator of c but
// applying req to missing deadlines. Commands use it for per-run overrides.
func (c *Container) WithDeadlineRequest(req deadline.Request) (*engine.Engine, error) {
	return c.newEngine(req)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
