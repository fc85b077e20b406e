// Package engine is the entry point used by the command line: it runs both
// document groups through extraction and serialization and answers the
// questions the user asks about the result.
package engine

import (
	"fmt"
	"io"
	"time"

	"scadenzade/internal/aggregate"
	"scadenzade/internal/batch"
	"scadenzade/internal/deadline"
	"scadenzade/internal/fileutils"
	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"
	"scadenzade/internal/report"
	"scadenzade/internal/store"
	"scadenzade/internal/tabular"
)

// GroupResult is the outcome of one group in a run.
type GroupResult struct {
	Group     models.Group
	Source    string
	StoreFile string
	Documents int
	Rows      int
	Skipped   []batch.Skip
	RowErrors []tabular.RowError
	Years     []int
}

// RunResult is the outcome of RunBatchAndPersist.
type RunResult struct {
	Groups map[models.Group]*GroupResult
	Years  models.YearConfig
}

// Engine coordinates the reader, the stores and the aggregator. It holds no
// state between calls beyond its collaborators; configuration is read from
// the config store on each call.
type Engine struct {
	reader     *batch.Reader
	tab        *tabular.Store
	aggregator *aggregate.Aggregator
	config     store.ConfigStore
	reports    *report.Generator
	logger     logging.Logger

	storeFiles map[models.Group]string
	request    deadline.Request
	extension  string
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now, used to pick the active year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithDeadlineRequest sets the missing-deadline policy of every run.
func WithDeadlineRequest(req deadline.Request) Option {
	return func(e *Engine) { e.request = req }
}

// WithSourceExtension sets the extension scanned in directory sources.
func WithSourceExtension(ext string) Option {
	return func(e *Engine) {
		if ext != "" {
			e.extension = ext
		}
	}
}

// Dependencies are the collaborators of an Engine.
type Dependencies struct {
	Reader      *batch.Reader
	Tabular     *tabular.Store
	Aggregator  *aggregate.Aggregator
	ConfigStore store.ConfigStore
	Reports     *report.Generator
	Logger      logging.Logger
	// StoreFiles maps each group to its tabular store file.
	StoreFiles map[models.Group]string
}

// New creates an Engine. ConfigStore and both StoreFiles entries are
// required; other nil dependencies get defaults.
func New(deps Dependencies, opts ...Option) (*Engine, error) {
	if deps.ConfigStore == nil {
		return nil, fmt.Errorf("engine requires a config store")
	}
	for _, g := range models.Groups() {
		if deps.StoreFiles[g] == "" {
			return nil, fmt.Errorf("engine requires a store file for %s", g)
		}
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	e := &Engine{
		reader:     deps.Reader,
		tab:        deps.Tabular,
		aggregator: deps.Aggregator,
		config:     deps.ConfigStore,
		reports:    deps.Reports,
		logger:     logger.WithField(logging.FieldComponent, "engine"),
		storeFiles: deps.StoreFiles,
		extension:  batch.DefaultExtension,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reader == nil {
		e.reader = batch.NewReader(nil, logger, e.extension)
	}
	if e.tab == nil {
		e.tab = tabular.NewStore(logger, 0)
	}
	if e.aggregator == nil {
		e.aggregator = aggregate.NewAggregator(e.tab, logger)
	}
	if e.reports == nil {
		e.reports = report.NewGenerator(logger)
	}
	return e, nil
}

// StoreFile returns the tabular store file of g.
func (e *Engine) StoreFile(g models.Group) string {
	return e.storeFiles[g]
}

// RunBatchAndPersist reads the supplier and client sources, rewrites both
// tabular stores and records the discovered years. Both sources are resolved
// and both stores are staged before anything is replaced, so a bad path or an
// unwritable store leaves every store and the year configuration untouched.
// Documents that cannot be read are reported in the result, not as errors.
func (e *Engine) RunBatchAndPersist(supplierPath, clientPath string) (*RunResult, error) {
	sources := map[models.Group]string{
		models.GroupSuppliers: supplierPath,
		models.GroupClients:   clientPath,
	}
	files := make(map[models.Group][]string, len(sources))
	for _, g := range models.Groups() {
		resolved, err := batch.ResolveSource(sources[g], e.extension)
		if err != nil {
			e.logger.WithError(err).Error("Invalid source path",
				logging.F(logging.FieldGroup, string(g)),
				logging.F(logging.FieldInputPath, sources[g]))
			return nil, fmt.Errorf("%s source: %w", g, err)
		}
		files[g] = resolved
	}

	years, err := e.config.LoadYears()
	if err != nil {
		return nil, fmt.Errorf("failed to load year configuration: %w", err)
	}

	result := &RunResult{Groups: map[models.Group]*GroupResult{}}
	discovered := [][]int{years.Available}
	staged := make([]*fileutils.StagedFile, 0, len(sources))
	for _, g := range models.Groups() {
		gr, file, err := e.stageGroup(g, sources[g], files[g])
		if err != nil {
			fileutils.DiscardAll(staged...)
			return nil, err
		}
		staged = append(staged, file)
		result.Groups[g] = gr
		discovered = append(discovered, gr.Years)
	}

	if err := fileutils.CommitAll(staged...); err != nil {
		e.logger.WithError(err).Error("Failed to replace store files")
		return nil, fmt.Errorf("failed to write stores: %w", err)
	}
	for _, g := range models.Groups() {
		e.logger.Info("Wrote store file",
			logging.F(logging.FieldGroup, string(g)),
			logging.F(logging.FieldOutputFile, result.Groups[g].StoreFile),
			logging.F(logging.FieldCount, result.Groups[g].Rows))
	}

	years.Available = batch.MergeYears(discovered...)
	if years.Active == 0 {
		years.Active = e.now().Year()
	}
	if err := e.config.SaveYears(years); err != nil {
		return nil, fmt.Errorf("failed to save year configuration: %w", err)
	}
	result.Years = years.Normalized()

	e.logger.Info("Run complete",
		logging.F(logging.FieldYear, result.Years.Active),
		logging.F(logging.FieldCount, len(result.Years.Available)))
	return result, nil
}

// stageGroup reads the documents of g and stages its store file.
func (e *Engine) stageGroup(g models.Group, source string, files []string) (*GroupResult, *fileutils.StagedFile, error) {
	log := e.logger.WithFields(logging.F(logging.FieldGroup, string(g)))
	log.Info("Reading documents", logging.F(logging.FieldInputPath, source), logging.F(logging.FieldCount, len(files)))

	res := e.reader.ReadFiles(files, e.request)
	rows, rowErrs := e.tab.Prepare(res.Extractions)
	dest := e.storeFiles[g]
	file, err := e.tab.Stage(rows, dest)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to write %s store: %w", g, err)
	}

	return &GroupResult{
		Group:     g,
		Source:    source,
		StoreFile: dest,
		Documents: len(res.Extractions),
		Rows:      len(rows),
		Skipped:   res.Skipped,
		RowErrors: rowErrs,
		Years:     batch.SniffYears(res.Extractions),
	}, file, nil
}

// RunConfigured runs with the source paths saved in the config store.
func (e *Engine) RunConfigured() (*RunResult, error) {
	paths, err := e.config.LoadPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to load source paths: %w", err)
	}
	if !paths.IsComplete() {
		return nil, &parsererror.PathError{Path: store.PathFile, Reason: "source paths are not configured"}
	}
	return e.RunBatchAndPersist(paths.Suppliers, paths.Clients)
}

// MonthlyTotals returns the twelve monthly totals of g for year.
func (e *Engine) MonthlyTotals(g models.Group, year int) (aggregate.Months, error) {
	return e.aggregator.MonthlyTotalsFromStore(e.storeFiles[g], year)
}

// Overview returns both groups and their difference for year.
func (e *Engine) Overview(year int) (aggregate.Overview, error) {
	suppliers, err := e.MonthlyTotals(models.GroupSuppliers, year)
	if err != nil {
		return aggregate.Overview{}, err
	}
	clients, err := e.MonthlyTotals(models.GroupClients, year)
	if err != nil {
		return aggregate.Overview{}, err
	}
	return aggregate.NewOverview(year, suppliers, clients), nil
}

// Deadlines returns the records of g due in month of year.
func (e *Engine) Deadlines(g models.Group, year int, month time.Month) ([]tabular.Record, error) {
	records, err := e.aggregator.Records(e.storeFiles[g])
	if err != nil {
		return nil, err
	}
	return aggregate.FilterByMonth(records, year, month), nil
}

// Report writes the documents of g. Text lists every document of the
// group's source and leaves the documents unchanged; xlsx exports the
// group's tabular store.
func (e *Engine) Report(g models.Group, format report.Format, w io.Writer) error {
	switch format {
	case report.FormatText:
		paths, err := e.config.LoadPaths()
		if err != nil {
			return err
		}
		res, err := e.reader.PreviewBatch(paths.For(g), e.request)
		if err != nil {
			return err
		}
		return e.reports.WriteDocumentsText(res.Extractions, w)
	case report.FormatXLSX:
		records, err := e.aggregator.Records(e.storeFiles[g])
		if err != nil {
			return err
		}
		return e.reports.ExportXLSX(records, w)
	}
	return fmt.Errorf("unsupported report format: %s", format)
}

// Totals renders the overview of year in format.
func (e *Engine) Totals(year int, format report.Format) ([]byte, error) {
	o, err := e.Overview(year)
	if err != nil {
		return nil, err
	}
	return e.reports.GenerateTotals(o, format)
}

// ActiveYear returns the configured active year, or the current year when
// none is set.
func (e *Engine) ActiveYear() (int, error) {
	y, err := e.config.LoadYears()
	if err != nil {
		return 0, err
	}
	if y.Active == 0 {
		return e.now().Year(), nil
	}
	return y.Active, nil
}

// AvailableYears returns the years the user can switch among, ascending.
func (e *Engine) AvailableYears() ([]int, error) {
	y, err := e.config.LoadYears()
	if err != nil {
		return nil, err
	}
	return y.Normalized().Available, nil
}

// SetActiveYear persists year as the active year.
func (e *Engine) SetActiveYear(year int) error {
	if year <= 0 {
		return fmt.Errorf("invalid year: %d", year)
	}
	y, err := e.config.LoadYears()
	if err != nil {
		return err
	}
	y.Active = year
	return e.config.SaveYears(y)
}

// SetAvailableYears replaces the available years.
func (e *Engine) SetAvailableYears(years []int) error {
	y, err := e.config.LoadYears()
	if err != nil {
		return err
	}
	y.Available = models.NormalizeYears(years)
	return e.config.SaveYears(y)
}

// SourcePaths returns the saved source paths.
func (e *Engine) SourcePaths() (models.PathConfig, error) {
	return e.config.LoadPaths()
}

// SetSourcePaths saves both source paths.
func (e *Engine) SetSourcePaths(paths models.PathConfig) error {
	return e.config.SavePaths(paths)
}
