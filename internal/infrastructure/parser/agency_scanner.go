package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocolly/colly/v2"

	"LeadScanner/internal/domain"
	"LeadScanner/internal/extract"
	"LeadScanner/internal/scanner"
)

const agencyUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// AgencyScanner crawls a service-provider directory and emits one raw
// record per provider card.
type AgencyScanner struct {
	timeout time.Duration
	delay   time.Duration
	logger  *slog.Logger
}

var _ scanner.Scanner = (*AgencyScanner)(nil)

// NewAgencyScanner builds the scanner; logger may be nil.
func NewAgencyScanner(timeout, delay time.Duration, logger *slog.Logger) *AgencyScanner {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AgencyScanner{timeout: timeout, delay: delay, logger: logger}
}

// Name identifies the strategy inside the registry.
func (a *AgencyScanner) Name() string {
	return "agency"
}

// Scan visits directory pages with a fresh collector per request batch.
func (a *AgencyScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.RawRecord, error) {
	if req.BaseURL == "" {
		return nil, fmt.Errorf("site %s: no directory url configured", req.SiteName)
	}

	maxPages := req.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	c := colly.NewCollector(
		colly.UserAgent(agencyUserAgent),
	)
	c.SetRequestTimeout(a.timeout)

	var records []domain.RawRecord
	var scanErr error

	c.OnHTML("li.provider-row, div.provider-card, article.provider", func(e *colly.HTMLElement) {
		company := firstChildText(e, "h3 a", ".company-name", "h3")
		if company == "" {
			return
		}

		rec := domain.RawRecord{
			domain.FieldCompany:     company,
			domain.FieldWebsite:     e.ChildAttr("a.website-link, a.visit-site", "href"),
			domain.FieldLocation:    firstChildText(e, ".locality", ".location"),
			domain.FieldIndustry:    firstChildText(e, ".focus", ".industry"),
			domain.FieldServices:    firstChildText(e, ".services", ".service-list"),
			domain.FieldDescription: firstChildText(e, ".description", "p.tagline"),
			domain.FieldSourceURL:   e.Request.URL.String(),
			domain.FieldDataType:    "Agency",
		}
		records = append(records, rec)
	})

	c.OnError(func(r *colly.Response, err error) {
		a.warn("directory request failed", "url", r.Request.URL.String(), "error", err)
		scanErr = err
	})

	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		pageURL := req.BaseURL
		if page > 1 {
			pageURL = fmt.Sprintf("%s?page=%d", req.BaseURL, page)
		}
		if err := c.Visit(pageURL); err != nil {
			a.warn("visit failed", "url", pageURL, "error", err)
			scanErr = err
		}

		if a.delay > 0 && page < maxPages {
			time.Sleep(a.delay)
		}
	}

	c.Wait()

	if len(records) == 0 && scanErr != nil {
		return nil, fmt.Errorf("site %s: %w", req.SiteName, scanErr)
	}

	a.debug("directory scan finished", "records", len(records))
	return records, nil
}

// firstChildText tries selectors in order and returns the first non-empty,
// cleaned text. ChildText over a grouped selector would concatenate every
// match instead.
func firstChildText(e *colly.HTMLElement, selectors ...string) string {
	for _, sel := range selectors {
		if text := extract.Clean(e.ChildText(sel)); text != "" {
			return text
		}
	}
	return ""
}

func (a *AgencyScanner) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

func (a *AgencyScanner) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
