package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"LeadScanner/internal/domain"
	"LeadScanner/internal/extract"
	"LeadScanner/internal/infrastructure/fetch"
	"LeadScanner/internal/scanner"
)

const (
	defaultFundingURL   = "https://techcrunch.com/tag/funding/"
	defaultListingPages = 3
	articlesPerPage     = 10
)

// TechCrunchScanner walks the funding-tag listing pages and derives lead
// records from the article headlines and excerpts.
type TechCrunchScanner struct {
	client *fetch.Client
	logger *slog.Logger
}

var _ scanner.Scanner = (*TechCrunchScanner)(nil)

// NewTechCrunchScanner wires the shared fetch client; logger may be nil.
func NewTechCrunchScanner(client *fetch.Client, logger *slog.Logger) *TechCrunchScanner {
	return &TechCrunchScanner{client: client, logger: logger}
}

// Name identifies the strategy inside the registry.
func (t *TechCrunchScanner) Name() string {
	return "techcrunch"
}

// Scan pages through the listing until MaxPages or an empty page.
func (t *TechCrunchScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.RawRecord, error) {
	base := req.BaseURL
	if base == "" {
		base = defaultFundingURL
	}
	maxPages := req.MaxPages
	if maxPages <= 0 {
		maxPages = defaultListingPages
	}

	var records []domain.RawRecord
	seen := map[string]struct{}{}

	for page := 1; page <= maxPages; page++ {
		pageURL := base
		if page > 1 {
			pageURL = fmt.Sprintf("%spage/%d/", ensureTrailingSlash(base), page)
		}

		doc, err := t.client.Document(ctx, pageURL)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("listing page 1: %w", err)
			}
			t.debug("stopping pagination", "page", page, "error", err)
			break
		}

		pageRecords := t.extractListing(doc, base)
		if len(pageRecords) == 0 {
			break
		}

		for _, rec := range pageRecords {
			// Articles without a resolvable link must not collapse into
			// one shared key.
			key := rec[domain.FieldSourceURL]
			if key == "" {
				key = rec[domain.FieldCompany]
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			records = append(records, rec)
		}

		if page < maxPages {
			if err := t.client.Pause(ctx); err != nil {
				return records, err
			}
		}
	}

	for i := range records {
		if err := t.client.Pause(ctx); err != nil {
			return records, err
		}
		t.enrich(ctx, records[i])
	}

	t.debug("scan finished", "records", len(records))
	return records, nil
}

// enrich follows the article link and fills the fields a listing entry
// cannot carry (investors, location, fuller description). Fetch failures
// leave the listing-derived record as is.
func (t *TechCrunchScanner) enrich(ctx context.Context, rec domain.RawRecord) {
	articleURL := rec[domain.FieldSourceURL]
	if articleURL == "" {
		return
	}

	doc, err := t.client.Document(ctx, articleURL)
	if err != nil {
		t.debug("article fetch failed", "url", articleURL, "error", err)
		return
	}

	body := articleText(doc)
	if body == "" {
		return
	}

	if rec[domain.FieldInvestors] == "" {
		rec[domain.FieldInvestors] = extract.Investors(body)
	}
	if rec[domain.FieldLocation] == "" {
		rec[domain.FieldLocation] = extract.Location(body)
	}
	if rec[domain.FieldAmount] == "" {
		rec[domain.FieldAmount] = extract.Amount(body)
	}
	if rec[domain.FieldDate] == "" {
		rec[domain.FieldDate] = extract.Date(body)
	}
	if rec[domain.FieldDescription] == "" {
		rec[domain.FieldDescription] = body
	}
}

const articleParagraphs = 5

// articleText joins the leading body paragraphs of an article page.
func articleText(doc *goquery.Document) string {
	var parts []string

	doc.Find(".article-content p, .entry-content p, article p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= articleParagraphs {
			return false
		}
		if text := extract.Clean(s.Text()); text != "" {
			parts = append(parts, text)
		}
		return true
	})

	return strings.Join(parts, " ")
}

// extractListing pulls one raw record per article node on a listing page.
func (t *TechCrunchScanner) extractListing(doc *goquery.Document, base string) []domain.RawRecord {
	var records []domain.RawRecord

	doc.Find("article").EachWithBreak(func(i int, article *goquery.Selection) bool {
		if i >= articlesPerPage {
			return false
		}

		rec := extractArticle(article, base)
		if rec != nil {
			records = append(records, rec)
		}
		return true
	})

	return records
}

func extractArticle(article *goquery.Selection, base string) domain.RawRecord {
	link := article.Find("h2 a, h3 a, .post-block__title a").First()
	title := extract.Clean(link.Text())
	if title == "" {
		return nil
	}

	href, _ := link.Attr("href")
	href = absoluteURL(href, base)

	company := extract.CompanyFromTitle(title)
	if company == "" {
		return nil
	}

	rec := domain.RawRecord{
		domain.FieldCompany:   company,
		domain.FieldRound:     extract.Round(title),
		domain.FieldAmount:    extract.Amount(title),
		domain.FieldSourceURL: href,
		domain.FieldDataType:  "Funding Round",
	}

	if dateline := article.Find("time").First(); dateline.Length() > 0 {
		date := extract.Clean(dateline.Text())
		if date == "" {
			date, _ = dateline.Attr("datetime")
		}
		rec[domain.FieldDate] = extract.Clean(date)
	}

	if excerpt := article.Find(".post-block__content, .excerpt, p").First(); excerpt.Length() > 0 {
		rec[domain.FieldDescription] = extract.Clean(excerpt.Text())
	}

	return rec
}

func absoluteURL(href, base string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return href
	}
	resolved, err := parsed.Parse(href)
	if err != nil {
		return href
	}
	return resolved.String()
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func (t *TechCrunchScanner) debug(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Debug(msg, args...)
	}
}
