package viewer

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"LeadScanner/internal/domain"
	"LeadScanner/internal/export"
	"LeadScanner/pkg/logger"
)

func newTestServer(t *testing.T, records []domain.Record) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leads.json")
	if err := export.WriteJSON(path, records); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New(path, logger.Discard())
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestIndexRendersLeads(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, []domain.Record{
		{Company: "Acme", Amount: "$1B", LeadScore: 7, LeadCategory: "High Priority"},
		{Company: "DataCo", Amount: "$5M", LeadScore: 2, LeadCategory: "Low Priority"},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	body, _ := io.ReadAll(rec.Result().Body)
	html := string(body)
	if !strings.Contains(html, "Acme") || !strings.Contains(html, "DataCo") {
		t.Fatalf("records missing from page:\n%s", html)
	}
	if strings.Index(html, "Acme") > strings.Index(html, "DataCo") {
		t.Fatal("records should be ordered by score, highest first")
	}
}

func TestAPILeads(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, []domain.Record{{Company: "Acme"}})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/leads", nil))

	var got []domain.Record
	if err := json.NewDecoder(rec.Result().Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Company != "Acme" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestAPIStats(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, []domain.Record{
		{Company: "Acme", Round: "Seed", Industry: "AI", LeadCategory: "High Priority"},
		{Company: "DataCo", Round: "Seed", LeadCategory: "Low Priority"},
	})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/stats", nil))

	var got Stats
	if err := json.NewDecoder(rec.Result().Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("unexpected total: %d", got.Total)
	}
	if got.ByRound["Seed"] != 2 {
		t.Fatalf("unexpected round counts: %v", got.ByRound)
	}
	if got.ByCategory["High Priority"] != 1 {
		t.Fatalf("unexpected category counts: %v", got.ByCategory)
	}
}

func TestRefreshReloadsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "leads.json")
	if err := export.WriteJSON(path, []domain.Record{{Company: "Acme"}}); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New(path, logger.Discard())
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := export.WriteJSON(path, []domain.Record{{Company: "Acme"}, {Company: "DataCo"}}); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/refresh", nil))
	if rec.Code != 303 {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	if len(s.snapshot()) != 2 {
		t.Fatalf("refresh did not reload, have %d records", len(s.snapshot()))
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/refresh", nil))
	if rec.Code != 500 {
		t.Fatalf("expected 500 for missing file, got %d", rec.Code)
	}
}
