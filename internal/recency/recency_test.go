package recency

import (
	"testing"
	"time"

	"LeadScanner/internal/domain"
)

func TestParseDateFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-15", "2024-01-15", true},
		{"January 15, 2024", "2024-01-15", true},
		{"15/01/2024", "2024-01-15", true},
		{"", "", false},
		{"yesterday", "", false},
		{"January 15", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got.Format("2006-01-02") != tc.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestFilterWindowAndOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.Record{
		{Company: "Old", Date: "2023-11-01"},
		{Company: "Mid", Date: "January 15, 2024"},
		{Company: "New", Date: "2024-01-30"},
		{Company: "Undated"},
		{Company: "Garbled", Date: "sometime soon"},
	}

	got := Filter(records, 30, now)

	if len(got) != 2 {
		t.Fatalf("expected 2 recent records, got %d", len(got))
	}
	if got[0].Company != "New" || got[1].Company != "Mid" {
		t.Fatalf("expected most-recent-first order [New Mid], got [%s %s]",
			got[0].Company, got[1].Company)
	}
}

func TestFilterCutoffIsInclusiveOfWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.Record{
		{Company: "Edge", Date: "2024-01-02"},
		{Company: "Past", Date: "2024-01-01"},
	}

	got := Filter(records, 30, now)

	if len(got) != 1 || got[0].Company != "Edge" {
		t.Fatalf("expected only the in-window record, got %v", got)
	}
}

func TestFilterDisabledPassesThrough(t *testing.T) {
	t.Parallel()

	records := []domain.Record{
		{Company: "A", Date: "not a date"},
		{Company: "B"},
	}

	if got := Filter(records, 0, time.Now()); len(got) != 2 {
		t.Fatalf("disabled filter should pass records through, got %d", len(got))
	}
}
