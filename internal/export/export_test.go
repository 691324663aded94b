package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"LeadScanner/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.csv")
	records := []domain.Record{
		{
			Company:   "Acme",
			Round:     "Seed",
			Amount:    "$5M",
			SourceURL: "https://example.org/a",
			LeadScore: 4, // extension fields must not appear in tabular mode
		},
		{Company: "DataCo"},
	}

	if err := WriteCSV(path, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], domain.CSVColumns) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Acme" || rows[1][2] != "Seed" || rows[1][3] != "$5M" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if len(rows[1]) != len(domain.CSVColumns) {
		t.Fatalf("row width %d, want %d", len(rows[1]), len(domain.CSVColumns))
	}
	if rows[2][0] != "DataCo" || rows[2][1] != "" {
		t.Fatalf("missing fields must render empty: %v", rows[2])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.json")
	records := []domain.Record{
		{
			Company:      "Acme",
			Website:      "https://acme.io",
			Round:        "Series C",
			Amount:       "$750M",
			Industry:     "Artificial Intelligence",
			LeadScore:    7,
			LeadCategory: "High Priority",
			ContactEmail: "hello@acme.io",
		},
		{Company: "DataCo", Description: "Über-fast data tooling"},
	}

	if err := WriteJSON(path, records); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if !reflect.DeepEqual(got, records) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, records)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "Über-fast") {
		t.Fatalf("expected UTF-8 text preserved, got %s", raw)
	}
	if !strings.Contains(string(raw), "\n  {") {
		t.Fatalf("expected pretty-printed output, got %s", raw)
	}
	if strings.Contains(string(raw), "Lead_Score\": 0") {
		t.Fatalf("zero extension fields must be omitted, got %s", raw)
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.json")
	if err := WriteJSON(path, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if got := strings.TrimSpace(string(raw)); got != "[]" {
		t.Fatalf("nil records must serialize as an empty array, got %s", got)
	}

	records, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestWriteLeavesNoPartialFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "leads.csv")

	if err := WriteCSV(path, []domain.Record{{Company: "Acme"}}); err == nil {
		t.Fatal("expected error for unwritable target")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should exist after failure, stat err = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"csv", "json", "both"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Fatalf("ParseFormat(%q): %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
