package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aalniak/vins-dashboard-generator/domain"
	"github.com/aalniak/vins-dashboard-generator/internal/version"
)

// DashboardUseCase orchestrates the dashboard generation workflow: discover
// trajectory CSVs, aggregate them, render the static pages and write them out.
type DashboardUseCase struct {
	loader        domain.TrajectoryLoader
	summaryLoader domain.SummaryLoader
	stats         domain.StatsService
	renderer      domain.PageRenderer
	writer        domain.PageWriter
	configLoader  domain.ConfigurationLoader
	progress      domain.ProgressReporter
}

// Generate performs one complete dashboard run. Unreadable files and
// malformed rows are reported as warnings and skipped; an empty input set is
// not an error and still produces an index listing zero datasets.
func (uc *DashboardUseCase) Generate(ctx context.Context, req domain.DashboardRequest) (*domain.DashboardResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	response := &domain.DashboardResponse{
		GeneratedAt: time.Now(),
		Version:     version.Version,
	}

	paths, err := uc.loader.Discover(finalReq.InputDir, finalReq.Pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		response.Warnings = append(response.Warnings,
			fmt.Sprintf("no files matching %s found in %s", finalReq.Pattern, finalReq.InputDir))
	}

	data := &domain.DashboardData{
		Datasets:    make(map[string]*domain.Dataset, len(paths)),
		Stats:       make(map[string]domain.DatasetStats, len(paths)),
		GeneratedAt: response.GeneratedAt,
		Version:     response.Version,
	}

	if finalReq.SummaryPath != "" {
		summary, err := uc.summaryLoader.Load(finalReq.SummaryPath, finalReq.IndexColumn)
		if err != nil {
			response.Warnings = append(response.Warnings,
				fmt.Sprintf("summary CSV skipped: %v", err))
		} else {
			data.Summary = summary
		}
	}

	if uc.progress != nil {
		uc.progress.StartProgress(len(paths))
		defer uc.progress.FinishProgress()
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dataset, warnings, err := uc.loader.Load(path)
		response.Warnings = append(response.Warnings, warnings...)
		if err != nil {
			response.Warnings = append(response.Warnings,
				fmt.Sprintf("skipped %s: %v", path, err))
			continue
		}

		data.Datasets[dataset.Key] = dataset
		data.Stats[dataset.Key] = uc.stats.Compute(dataset)

		if uc.progress != nil {
			uc.progress.UpdateProgress(path, i, len(paths))
		}
	}

	data.Keys = domain.SortedKeys(data.Datasets)
	response.DatasetCount = len(data.Keys)
	if response.DatasetCount == 0 && len(paths) > 0 {
		response.Warnings = append(response.Warnings, "no readable trajectory files")
	}

	if err := uc.writePages(data, finalReq.OutputDir, response); err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(finalReq.OutputDir)
	if err != nil {
		absDir = finalReq.OutputDir
	}
	response.OutputDir = absDir

	return response, nil
}

func (uc *DashboardUseCase) writePages(data *domain.DashboardData, outputDir string, response *domain.DashboardResponse) error {
	for _, key := range data.Keys {
		page, err := uc.renderer.RenderDataset(data, key)
		if err != nil {
			return err
		}
		path, err := uc.writer.WritePage(outputDir, key+".html", page)
		if err != nil {
			return err
		}
		response.DatasetPages = append(response.DatasetPages, domain.PageInfo{Key: key, Path: path})
	}

	index, err := uc.renderer.RenderIndex(data)
	if err != nil {
		return err
	}
	if response.IndexPath, err = uc.writer.WritePage(outputDir, "index.html", index); err != nil {
		return err
	}

	compare, err := uc.renderer.RenderCompare(data)
	if err != nil {
		return err
	}
	if response.ComparePath, err = uc.writer.WritePage(outputDir, "compare.html", compare); err != nil {
		return err
	}

	return nil
}

func (uc *DashboardUseCase) validateRequest(req domain.DashboardRequest) error {
	if req.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if req.Pattern == "" {
		return fmt.Errorf("file pattern is required")
	}
	if req.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if req.SummaryPath != "" {
		if _, err := os.Stat(req.SummaryPath); err != nil {
			return fmt.Errorf("summary CSV not readable: %s", req.SummaryPath)
		}
	}
	return nil
}

// loadAndMergeConfig loads configuration from file and merges with request
func (uc *DashboardUseCase) loadAndMergeConfig(req domain.DashboardRequest) (domain.DashboardRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	var configReq *domain.DashboardRequest
	var err error

	if req.ConfigPath != "" {
		configReq, err = uc.configLoader.LoadConfig(req.ConfigPath)
		if err != nil {
			return req, fmt.Errorf("failed to load config from %s: %w", req.ConfigPath, err)
		}
	} else {
		configReq = uc.configLoader.LoadDefaultConfig()
	}

	if configReq != nil {
		// Request values win over file values.
		merged := uc.configLoader.MergeConfig(configReq, &req)
		return *merged, nil
	}

	return req, nil
}

// DashboardUseCaseBuilder provides a builder pattern for creating DashboardUseCase
type DashboardUseCaseBuilder struct {
	loader        domain.TrajectoryLoader
	summaryLoader domain.SummaryLoader
	stats         domain.StatsService
	renderer      domain.PageRenderer
	writer        domain.PageWriter
	configLoader  domain.ConfigurationLoader
	progress      domain.ProgressReporter
}

// NewDashboardUseCaseBuilder creates a new builder
func NewDashboardUseCaseBuilder() *DashboardUseCaseBuilder {
	return &DashboardUseCaseBuilder{}
}

// WithTrajectoryLoader sets the trajectory loader
func (b *DashboardUseCaseBuilder) WithTrajectoryLoader(loader domain.TrajectoryLoader) *DashboardUseCaseBuilder {
	b.loader = loader
	return b
}

// WithSummaryLoader sets the summary loader
func (b *DashboardUseCaseBuilder) WithSummaryLoader(loader domain.SummaryLoader) *DashboardUseCaseBuilder {
	b.summaryLoader = loader
	return b
}

// WithStatsService sets the statistics service
func (b *DashboardUseCaseBuilder) WithStatsService(stats domain.StatsService) *DashboardUseCaseBuilder {
	b.stats = stats
	return b
}

// WithRenderer sets the page renderer
func (b *DashboardUseCaseBuilder) WithRenderer(renderer domain.PageRenderer) *DashboardUseCaseBuilder {
	b.renderer = renderer
	return b
}

// WithWriter sets the page writer
func (b *DashboardUseCaseBuilder) WithWriter(writer domain.PageWriter) *DashboardUseCaseBuilder {
	b.writer = writer
	return b
}

// WithConfigLoader sets the configuration loader
func (b *DashboardUseCaseBuilder) WithConfigLoader(loader domain.ConfigurationLoader) *DashboardUseCaseBuilder {
	b.configLoader = loader
	return b
}

// WithProgress sets the progress reporter
func (b *DashboardUseCaseBuilder) WithProgress(progress domain.ProgressReporter) *DashboardUseCaseBuilder {
	b.progress = progress
	return b
}

// Build creates the use case, validating that required dependencies are set
func (b *DashboardUseCaseBuilder) Build() (*DashboardUseCase, error) {
	if b.loader == nil {
		return nil, fmt.Errorf("trajectory loader is required")
	}
	if b.summaryLoader == nil {
		return nil, fmt.Errorf("summary loader is required")
	}
	if b.stats == nil {
		return nil, fmt.Errorf("stats service is required")
	}
	if b.renderer == nil {
		return nil, fmt.Errorf("page renderer is required")
	}
	if b.writer == nil {
		return nil, fmt.Errorf("page writer is required")
	}

	return &DashboardUseCase{
		loader:        b.loader,
		summaryLoader: b.summaryLoader,
		stats:         b.stats,
		renderer:      b.renderer,
		writer:        b.writer,
		configLoader:  b.configLoader,
		progress:      b.progress,
	}, nil
}
