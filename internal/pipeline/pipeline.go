package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"gamelens/internal/analytics"
	"gamelens/internal/chart"
	"gamelens/internal/config"
	"gamelens/internal/dataset"
	"gamelens/internal/errors"
	"gamelens/internal/exporter"
	"gamelens/internal/infrastructure"
	"gamelens/internal/validation"
)

// Pipeline runs the extract, transform, load sequence once per invocation.
// Stages execute strictly in order; the first failure aborts the run with
// the stage name attached to the error. Re-running overwrites outputs.
type Pipeline struct {
	cfg       *config.Config
	paths     *config.Paths
	logger    *slog.Logger
	renderer  *chart.Renderer
	validator *validation.FileValidator
	now       func() time.Time
}

// Result summarizes a completed run for the command-line summary.
type Result struct {
	Records    int
	Genres     int
	Warnings   int
	MostPlayed string
	Outputs    []string
	Duration   time.Duration
}

// stage is one named step of the run. State accumulates across stages.
type stage struct {
	name string
	run  func(ctx context.Context, st *runState) error
}

type runState struct {
	table    *dataset.Table
	analysis *analytics.Analysis
	outputs  []string
}

// New assembles a pipeline from configuration. A nil logger falls back to
// slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.NewConfigError("no configuration provided", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "pipeline")

	renderer, err := chart.NewRenderer(logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:       cfg,
		paths:     config.NewPaths(cfg.Output.Dir),
		logger:    logger,
		renderer:  renderer,
		validator: validation.NewFileValidator(logger),
		now:       time.Now,
	}, nil
}

// Run executes validate, extract, transform, and load in order.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	start := time.Now()

	p.logger.InfoContext(ctx, "pipeline started",
		slog.String("input", p.cfg.Input.Path),
		slog.String("output_dir", p.cfg.Output.Dir))

	st := &runState{}
	stages := []stage{
		{name: "validate", run: p.validate},
		{name: "extract", run: p.extract},
		{name: "transform", run: p.transform},
		{name: "load", run: p.load},
	}

	for _, s := range stages {
		if err := p.runStage(ctx, s, st); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Records:  len(st.analysis.Records),
		Genres:   st.analysis.Stats().UniqueGenres,
		Warnings: st.analysis.Warnings,
		Outputs:  st.outputs,
		Duration: time.Since(start),
	}
	if most, ok := st.analysis.MostPlayed(); ok {
		result.MostPlayed = most.Title
	}

	p.logger.InfoContext(ctx, "pipeline complete",
		slog.Int("records", result.Records),
		slog.Int("outputs", len(result.Outputs)),
		slog.Int("warnings", result.Warnings),
		slog.Duration("elapsed", result.Duration))

	return result, nil
}

func (p *Pipeline) runStage(ctx context.Context, s stage, st *runState) error {
	stageStart := time.Now()
	p.logger.InfoContext(ctx, "stage started", slog.String("stage", s.name))

	if err := s.run(ctx, st); err != nil {
		infrastructure.WithError(p.logger, err).ErrorContext(ctx, "stage failed",
			slog.String("stage", s.name),
			slog.Duration("elapsed", time.Since(stageStart)))

		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return appErr.WithContext("stage", s.name)
		}
		return fmt.Errorf("%s stage: %w", s.name, err)
	}

	p.logger.InfoContext(ctx, "stage complete",
		slog.String("stage", s.name),
		slog.Duration("elapsed", time.Since(stageStart)))
	return nil
}

// validate checks the input file and prepares the output directory before
// any work happens.
func (p *Pipeline) validate(ctx context.Context, _ *runState) error {
	if err := p.validator.ValidateInputFile(p.cfg.Input.Path); err != nil {
		return err
	}
	if err := p.validator.ValidateOutputDirectory(p.cfg.Output.Dir); err != nil {
		return err
	}
	p.paths.LogPathResolution()
	return nil
}

func (p *Pipeline) extract(ctx context.Context, st *runState) error {
	table, err := dataset.Load(ctx, p.cfg.Input.Path)
	if err != nil {
		return err
	}
	st.table = table
	return nil
}

func (p *Pipeline) transform(ctx context.Context, st *runState) error {
	analysis, err := analytics.NewAnalyzer(p.logger).Analyze(ctx, st.table)
	if err != nil {
		return err
	}
	st.analysis = analysis
	return nil
}

// load writes every artifact: the text report, both CSV rankings, the
// workbook, and the four charts.
func (p *Pipeline) load(ctx context.Context, st *runState) error {
	analysis := st.analysis

	data := &exporter.ReportData{
		GeneratedAt: p.now(),
		SourceFile:  filepath.Base(p.cfg.Input.Path),
		TopGenres:   analysis.TopGenres(p.cfg.Analysis.TopGenres),
		Ratings:     analysis.RatingSummary(p.cfg.Analysis.TopGenres),
		Stats:       analysis.Stats(),
		Warnings:    analysis.Warnings,
	}
	most, hasMost := analysis.MostPlayed()
	if hasMost {
		data.MostPlayed = &most
	}

	if err := exporter.WriteReport(p.paths.ReportFile, data); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.ReportFile)

	csvWriter := exporter.NewCSVWriter(p.logger, exporter.WriteOptions{
		IncludeBOM: p.cfg.Output.IncludeBOM,
	})
	if err := csvWriter.WriteTopGenres(p.paths.TopGenresCSV, data.TopGenres); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.TopGenresCSV)

	if err := csvWriter.WriteRatingSummary(p.paths.GenreRatingsCSV, data.Ratings); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.GenreRatingsCSV)

	if err := exporter.WriteWorkbook(p.paths.WorkbookFile, data); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.WorkbookFile)

	return p.renderCharts(ctx, st, data)
}

func (p *Pipeline) renderCharts(ctx context.Context, st *runState, data *exporter.ReportData) error {
	if data.MostPlayed != nil {
		if err := p.renderer.MostPlayedChart(p.paths.MostPlayedChart, *data.MostPlayed); err != nil {
			return err
		}
		st.outputs = append(st.outputs, p.paths.MostPlayedChart)
	}

	// A dataset whose genre cells are all empty still produces the report
	// and most-played outputs; there is just nothing to rank.
	if len(data.TopGenres) == 0 {
		p.logger.WarnContext(ctx, "no genres found, skipping genre charts")
		return nil
	}

	if err := p.renderer.TopGenresChart(p.paths.TopGenresChart, data.TopGenres); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.TopGenresChart)

	// Datasets without a single rated game cannot fill the rating views;
	// the run still succeeds with the play-count outputs.
	ratings := data.Ratings
	if len(ratings) > p.cfg.Analysis.PieGenres {
		ratings = ratings[:p.cfg.Analysis.PieGenres]
	}
	if len(ratings) == 0 {
		p.logger.WarnContext(ctx, "no rated genres, skipping rating charts")
		return nil
	}

	if err := p.renderer.RatingsChart(p.paths.GenreRatingsChart, ratings); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.GenreRatingsChart)

	combined := st.analysis.Combined(p.cfg.Analysis.TopGenres, p.cfg.Analysis.CombinedGenres)
	if err := p.renderer.CombinedChart(p.paths.CombinedChart, combined); err != nil {
		return err
	}
	st.outputs = append(st.outputs, p.paths.CombinedChart)

	return nil
}
