package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"LeadScanner/internal/domain"
	"LeadScanner/internal/scanner"
)

// FileScanner reads a JSON array of records from disk. It serves fixture
// datasets and lets a previous export be fed back through the pipeline.
type FileScanner struct {
	logger *slog.Logger
}

var _ scanner.Scanner = (*FileScanner)(nil)

// NewFileScanner builds the scanner; logger may be nil.
func NewFileScanner(logger *slog.Logger) *FileScanner {
	return &FileScanner{logger: logger}
}

// Name identifies the strategy inside the registry.
func (f *FileScanner) Name() string {
	return "file"
}

// Scan loads the file named by the site's "path" option (falling back to
// BaseURL) and stringifies every value into a raw record.
func (f *FileScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.RawRecord, error) {
	path := req.Options["path"]
	if path == "" {
		path = req.BaseURL
	}
	if path == "" {
		return nil, fmt.Errorf("site %s: no file path configured", req.SiteName)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]domain.RawRecord, 0, len(entries))
	for _, entry := range entries {
		rec := make(domain.RawRecord, len(entry))
		for key, value := range entry {
			rec[key] = stringify(value)
		}
		records = append(records, rec)
	}

	if f.logger != nil {
		f.logger.Debug("file scan finished", "path", path, "records", len(records))
	}
	return records, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
