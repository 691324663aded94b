// Package viewer serves a previously exported record-list file as a small
// local web page with a JSON API. It never mutates the data; /refresh just
// re-reads the file.
package viewer

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sort"
	"sync"

	"LeadScanner/internal/domain"
	"LeadScanner/internal/export"
)

// Stats summarizes the loaded dataset for the index page and /api/stats.
type Stats struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
	ByRound    map[string]int `json:"by_round"`
	ByIndustry map[string]int `json:"by_industry"`
}

// Server holds the loaded records and renders them.
type Server struct {
	dataPath string
	logger   *log.Logger

	mu      sync.RWMutex
	records []domain.Record
}

// New builds a server over the given record-list export; logger is required.
func New(dataPath string, logger *log.Logger) *Server {
	return &Server{dataPath: dataPath, logger: logger}
}

// Load reads (or re-reads) the export file.
func (s *Server) Load() error {
	records, err := export.ReadJSON(s.dataPath)
	if err != nil {
		return fmt.Errorf("load viewer data: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.logger.Printf("loaded %d records from %s", len(records), s.dataPath)
	return nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/leads", s.handleLeads)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/refresh", s.handleRefresh)
	return mux
}

func (s *Server) snapshot() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Server) stats() Stats {
	records := s.snapshot()

	st := Stats{
		Total:      len(records),
		ByCategory: map[string]int{},
		ByRound:    map[string]int{},
		ByIndustry: map[string]int{},
	}
	for _, rec := range records {
		if rec.LeadCategory != "" {
			st.ByCategory[rec.LeadCategory]++
		}
		if rec.Round != "" {
			st.ByRound[rec.Round]++
		}
		if rec.Industry != "" {
			st.ByIndustry[rec.Industry]++
		}
	}
	return st
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	records := s.snapshot()
	st := s.stats()

	// Highest-scoring leads first; ties keep collection order.
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LeadScore > sorted[j].LeadScore
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{Records: sorted, Stats: st}); err != nil {
		s.logger.Printf("render index: %v", err)
	}
}

func (s *Server) handleLeads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.snapshot(), s.logger)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.stats(), s.logger)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.Load(); err != nil {
		s.logger.Printf("refresh failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, v any, logger *log.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Printf("encode response: %v", err)
	}
}

type indexData struct {
	Records []domain.Record
	Stats   Stats
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Lead Scanner</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
.stats { margin-bottom: 1.5rem; }
.stats span { margin-right: 1.5rem; }
</style>
</head>
<body>
<h1>Lead Scanner</h1>
<div class="stats">
<span><strong>{{.Stats.Total}}</strong> leads</span>
{{range $category, $count := .Stats.ByCategory}}<span>{{$category}}: {{$count}}</span>{{end}}
<a href="/refresh">refresh</a>
</div>
<table>
<tr>
<th>Company</th><th>Round</th><th>Amount</th><th>Industry</th>
<th>Location</th><th>Score</th><th>Category</th><th>Pitch</th><th>Source</th>
</tr>
{{range .Records}}
<tr>
<td>{{.Company}}</td>
<td>{{.Round}}</td>
<td>{{.Amount}}</td>
<td>{{.Industry}}</td>
<td>{{.Location}}</td>
<td>{{.LeadScore}}</td>
<td>{{.LeadCategory}}</td>
<td>{{.PitchOpportunity}}</td>
<td>{{if .SourceURL}}<a href="{{.SourceURL}}">link</a>{{end}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`))
