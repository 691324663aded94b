package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"LeadScanner/internal/dedupe"
	"LeadScanner/internal/domain"
	"LeadScanner/internal/export"
	"LeadScanner/internal/normalize"
	"LeadScanner/internal/recency"
	"LeadScanner/internal/score"
)

// Collector supplies raw records from all configured sources. Per-source
// failures are handled inside the collector; what comes back is everything
// that could be gathered.
type Collector interface {
	Collect(ctx context.Context, maxPages int) []domain.RawRecord
}

// Options is the caller-owned run configuration. The pipeline treats it as
// opaque input; CLI syntax is validated in cmd/.
type Options struct {
	Format     export.Format
	OutputName string
	MaxPages   int
	DedupeKey  dedupe.KeyFunc
	// RecentDays keeps only records whose funding date parses and falls
	// within the last N days, newest first. Zero disables the filter.
	RecentDays int
}

// Summary reports what a pipeline run produced.
type Summary struct {
	RunID      string
	Collected  int
	Unique     int
	Categories map[string]int
	Files      []string
}

// PipelineDeps wires the collaborators into the orchestration pipeline.
type PipelineDeps struct {
	Collector Collector
	Logger    *slog.Logger
}

// Pipeline implements the lead-ingestion workflow: collect, normalize,
// deduplicate, score, export.
type Pipeline struct {
	collector Collector
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		collector: deps.Collector,
		logger:    deps.Logger,
	}
}

// Run executes one full collection pass and writes the configured exports.
// A failed export of one format does not abort the other; all export
// errors are joined into the returned error.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Summary, error) {
	summary := Summary{RunID: uuid.NewString(), Categories: map[string]int{}}
	if p.collector == nil {
		return summary, nil
	}

	log := p.logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("run_id", summary.RunID)

	raws := p.collector.Collect(ctx, opts.MaxPages)
	summary.Collected = len(raws)
	log.Info("collection finished", "records", len(raws))
	if len(raws) == 0 {
		return summary, nil
	}

	records := normalize.CanonicalAll(raws)
	records = dedupe.Records(records, opts.DedupeKey)
	summary.Unique = len(records)
	log.Info("deduplicated", "unique", len(records), "dropped", summary.Collected-len(records))

	if opts.RecentDays > 0 {
		before := len(records)
		records = recency.Filter(records, opts.RecentDays, time.Now())
		log.Info("recent-funding filter applied",
			"window_days", opts.RecentDays, "kept", len(records), "dropped", before-len(records))
		if len(records) == 0 {
			return summary, nil
		}
	}

	scrapedAt := time.Now().UTC().Format(time.RFC3339)
	for i := range records {
		records[i] = score.Annotate(records[i])
		records[i].ScrapedAt = scrapedAt
		summary.Categories[records[i].LeadCategory]++
	}

	name := opts.OutputName
	if name == "" {
		name = "funded_startups"
	}
	format := opts.Format
	if format == "" {
		format = export.FormatCSV
	}

	var exportErrs []error

	if format == export.FormatCSV || format == export.FormatBoth {
		path := name + ".csv"
		if err := export.WriteCSV(path, records); err != nil {
			exportErrs = append(exportErrs, fmt.Errorf("csv export: %w", err))
		} else {
			summary.Files = append(summary.Files, path)
			log.Info("export written", "file", path)
		}
	}

	if format == export.FormatJSON || format == export.FormatBoth {
		path := name + ".json"
		if err := export.WriteJSON(path, records); err != nil {
			exportErrs = append(exportErrs, fmt.Errorf("json export: %w", err))
		} else {
			summary.Files = append(summary.Files, path)
			log.Info("export written", "file", path)
		}
	}

	return summary, errors.Join(exportErrs...)
}
