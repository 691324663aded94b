// Package normalize conforms raw source records to the canonical schema.
package normalize

import (
	"LeadScanner/internal/domain"
	"LeadScanner/internal/extract"
)

// Canonical maps a raw record onto the fixed schema. Every string value is
// cleaned; canonical fields left empty by the source are re-derived from
// the description where an extractor can find them.
func Canonical(raw domain.RawRecord) domain.Record {
	var rec domain.Record

	for key, value := range raw {
		v := extract.Clean(value)
		switch key {
		case domain.FieldCompany:
			rec.Company = v
		case domain.FieldWebsite:
			rec.Website = v
		case domain.FieldRound:
			rec.Round = v
		case domain.FieldAmount:
			rec.Amount = v
		case domain.FieldInvestors:
			rec.Investors = v
		case domain.FieldDate:
			rec.Date = v
		case domain.FieldIndustry:
			rec.Industry = v
		case domain.FieldLocation:
			rec.Location = v
		case domain.FieldSourceURL:
			rec.SourceURL = v
		case domain.FieldDescription:
			rec.Description = v
		case domain.FieldEmployeeCount:
			rec.EmployeeCount = v
		case domain.FieldFounded:
			rec.Founded = v
		case domain.FieldRevenue:
			rec.Revenue = v
		case domain.FieldValuation:
			rec.Valuation = v
		case domain.FieldContactEmail:
			rec.ContactEmail = v
		case domain.FieldLinkedIn:
			rec.LinkedIn = v
		case domain.FieldTwitter:
			rec.Twitter = v
		case domain.FieldServices:
			rec.Services = v
		case domain.FieldDataType:
			rec.DataType = v
		}
	}

	if rec.Description != "" {
		if rec.Round == "" {
			rec.Round = extract.Round(rec.Description)
		}
		if rec.Amount == "" {
			rec.Amount = extract.Amount(rec.Description)
		}
		if rec.Date == "" {
			rec.Date = extract.Date(rec.Description)
		}
		if rec.Investors == "" {
			rec.Investors = extract.Investors(rec.Description)
		}
		if rec.Location == "" {
			rec.Location = extract.Location(rec.Description)
		}
		if rec.ContactEmail == "" {
			rec.ContactEmail = extract.Email(rec.Description)
		}
	}

	return rec
}

// CanonicalAll normalizes a batch, preserving input order.
func CanonicalAll(raws []domain.RawRecord) []domain.Record {
	records := make([]domain.Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Canonical(raw))
	}
	return records
}
