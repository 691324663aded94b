package parser

import (
	"context"
	"log/slog"

	"LeadScanner/internal/config"
	"LeadScanner/internal/domain"
	"LeadScanner/internal/scanner"
)

// Source aggregates raw records across configured sites via registered
// scanner strategies. A failing site is logged and skipped; it never
// aborts collection from the other sites.
type Source struct {
	registry *scanner.Registry
	sites    []config.SiteConfig
	logger   *slog.Logger
}

// NewSource wires the scanner registry with config-defined sites.
func NewSource(reg *scanner.Registry, sites []config.SiteConfig, log *slog.Logger) *Source {
	return &Source{
		registry: reg,
		sites:    sites,
		logger:   log,
	}
}

// Collect iterates over configured sites and concatenates their records in
// site order.
func (s *Source) Collect(ctx context.Context, maxPages int) []domain.RawRecord {
	s.debug("collect", "sites", len(s.sites))

	var aggregated []domain.RawRecord
	for _, site := range s.sites {
		strategy, err := s.registry.Resolve(site.Scanner)
		if err != nil {
			s.warn("skipping site", "site", site.Name, "error", err)
			continue
		}

		pages := site.MaxPages
		if pages <= 0 {
			pages = maxPages
		}

		req := scanner.Request{
			SiteName: site.Name,
			BaseURL:  site.URL,
			MaxPages: pages,
			Options:  site.Options,
		}

		results, err := strategy.Scan(ctx, req)
		if err != nil {
			s.warn("site collection failed, skipping", "site", site.Name, "error", err)
			continue
		}

		for i := range results {
			if results[i][domain.FieldSourceURL] == "" {
				results[i][domain.FieldSourceURL] = site.URL
			}
		}

		s.debug("site produced records", "site", site.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("collection done", "total_records", len(aggregated))
	return aggregated
}

func (s *Source) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Source) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
