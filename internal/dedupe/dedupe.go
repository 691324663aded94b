// Package dedupe removes records that refer to the same entity.
package dedupe

import (
	"strings"

	"LeadScanner/internal/domain"
)

// KeyFunc derives the identity key deciding whether two records represent
// the same entity.
type KeyFunc func(domain.Record) string

// ByCompany keys on the lowercased company name alone. Two rounds for the
// same company collapse to one record under this key.
func ByCompany(rec domain.Record) string {
	return strings.ToLower(rec.Company)
}

// ByCompanyRound keys on company plus round, for funding-specific views
// that need round-level distinctness.
func ByCompanyRound(rec domain.Record) string {
	return strings.ToLower(rec.Company) + "_" + strings.ToLower(rec.Round)
}

// Records drops duplicates, keeping the first occurrence of each key and
// preserving the remaining order. A nil key function defaults to ByCompany.
func Records(records []domain.Record, key KeyFunc) []domain.Record {
	if key == nil {
		key = ByCompany
	}

	seen := make(map[string]struct{}, len(records))
	unique := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		k := key(rec)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, rec)
	}

	return unique
}
