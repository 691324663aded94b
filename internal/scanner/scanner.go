package scanner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"LeadScanner/internal/domain"
)

// Request carries all parameters required to execute a scan of one site.
type Request struct {
	SiteName string
	BaseURL  string
	MaxPages int
	Options  map[string]string
}

// Scanner captures a single source strategy (TechCrunch, agency
// directories, local files, etc.).
type Scanner interface {
	Name() string
	Scan(ctx context.Context, req Request) ([]domain.RawRecord, error)
}

// Registry keeps a mapping from scanner names to their implementations.
type Registry struct {
	scanners map[string]Scanner
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{scanners: map[string]Scanner{}}
}

// Register adds or replaces a scanner implementation.
func (r *Registry) Register(scanner Scanner) {
	if r.scanners == nil {
		r.scanners = map[string]Scanner{}
	}
	r.scanners[scanner.Name()] = scanner
}

// Resolve returns a scanner by name or an error naming the registered
// strategies.
func (r *Registry) Resolve(name string) (Scanner, error) {
	if scanner, ok := r.scanners[name]; ok {
		return scanner, nil
	}
	return nil, fmt.Errorf("scanner %s is not registered (have: %s)",
		name, strings.Join(r.Names(), ", "))
}

// Names lists the registered scanner names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scanners))
	for name := range r.scanners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
