// Package export serializes scored records to the two output formats.
// Writes are atomic: the file is assembled under a temporary name in the
// target directory and renamed into place, so a failed export never leaves
// a partial file behind.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"LeadScanner/internal/domain"
)

// Format selects which output files a pipeline run produces.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatBoth Format = "both"
)

// ParseFormat validates a format selector coming from the CLI.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatCSV, FormatJSON, FormatBoth:
		return Format(value), nil
	default:
		return "", fmt.Errorf("unknown output format %q", value)
	}
}

// WriteCSV writes the tabular export: the fixed core-field header row and
// one row per record. Extension fields are dropped.
func WriteCSV(path string, records []domain.Record) error {
	return writeAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(domain.CSVColumns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, rec := range records {
			if err := cw.Write(rec.CoreValues()); err != nil {
				return fmt.Errorf("write row for %s: %w", rec.Company, err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// WriteJSON writes the open-schema export as a pretty-printed array,
// extension fields included. A nil record list still produces an array,
// never null, so the file stays re-ingestable.
func WriteJSON(path string, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	return writeAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	})
}

// ReadJSON loads a previously written record-list export.
func ReadJSON(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	var records []domain.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode export %s: %w", path, err)
	}

	return records, nil
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}
