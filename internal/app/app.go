package app

import (
	"context"
	"log/slog"

	"LeadScanner/internal/config"
	"LeadScanner/internal/infrastructure/fetch"
	"LeadScanner/internal/infrastructure/parser"
	"LeadScanner/internal/logging"
	"LeadScanner/internal/score"
	"LeadScanner/internal/usecase"
)

// Application wires config to the collection pipeline.
type Application struct {
	cfg      config.Config
	opts     usecase.Options
	pipeline *usecase.Pipeline
	logger   *slog.Logger
}

// New builds a runnable application instance. sources limits which
// configured sites run; empty means all of them.
func New(cfg config.Config, baseLogger *slog.Logger, opts usecase.Options, sources []string) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := fetch.NewClient(fetch.Config{
		Timeout:    cfg.Scraper.Timeout(),
		Retries:    cfg.Scraper.MaxRetries,
		Delay:      cfg.Scraper.Delay(),
		UserAgents: cfg.Scraper.UserAgents,
	}, baseLogger.With("component", "fetch"))

	registry := parser.NewRegistry(client, cfg.Scraper.Timeout(), cfg.Scraper.Delay(), baseLogger)

	sites := filterSites(cfg.Sites, sources)
	source := parser.NewSource(registry, sites, baseLogger.With("component", "source"))

	if opts.MaxPages <= 0 {
		opts.MaxPages = cfg.Scraper.MaxPages
	}
	if opts.OutputName == "" {
		opts.OutputName = cfg.Output.Name
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Collector: source,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, opts: opts, pipeline: pipeline, logger: baseLogger}
}

// Run performs a single collection pass.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	summary, err := a.pipeline.Run(ctx, a.opts)
	if err != nil {
		return err
	}

	if summary.Collected == 0 {
		a.logger.Warn("no records collected; check source configuration")
		return nil
	}

	a.logger.Info("run complete",
		"collected", summary.Collected,
		"unique", summary.Unique,
		"high_priority", summary.Categories[score.TierHigh],
		"files", summary.Files)
	return nil
}

func filterSites(sites []config.SiteConfig, sources []string) []config.SiteConfig {
	if len(sources) == 0 {
		return sites
	}

	wanted := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		wanted[s] = struct{}{}
	}

	var filtered []config.SiteConfig
	for _, site := range sites {
		if _, ok := wanted[site.Name]; ok {
			filtered = append(filtered, site)
			continue
		}
		if _, ok := wanted[site.Scanner]; ok {
			filtered = append(filtered, site)
		}
	}
	return filtered
}

// Sites reports the configured site names, for CLI error messages.
func Sites(cfg config.Config) []string {
	names := make([]string, 0, len(cfg.Sites))
	for _, site := range cfg.Sites {
		names = append(names, site.Name)
	}
	return names
}
