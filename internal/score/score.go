// Package score assigns sales-lead priority to normalized records. Every
// function here is pure: the same record always yields the same score,
// tier, and annotations.
package score

import (
	"regexp"
	"strings"

	"LeadScanner/internal/domain"
)

// Lead tiers derived from the numeric score.
const (
	TierHigh   = "High Priority"
	TierMedium = "Medium Priority"
	TierLow    = "Low Priority"
)

// "ai" must match as a whole word; substrings like "retail" don't count.
var aiWord = regexp.MustCompile(`\bai\b`)

// Lead computes the additive lead score from amount magnitude, industry
// keywords, and round stage.
func Lead(rec domain.Record) int {
	amount := strings.ToLower(rec.Amount)
	industry := strings.ToLower(rec.Industry)
	round := strings.ToLower(rec.Round)

	score := 0

	switch {
	case strings.Contains(amount, "billion") || strings.Contains(amount, "b"):
		score += 3
	case strings.Contains(amount, "million") || strings.Contains(amount, "m"):
		score += 2
	default:
		score++
	}

	switch {
	case strings.Contains(industry, "artificial intelligence") || aiWord.MatchString(industry):
		score += 2
	case strings.Contains(industry, "data") || strings.Contains(industry, "analytics"):
		score += 2
	case strings.Contains(industry, "fintech") || strings.Contains(industry, "finance"):
		score++
	case strings.Contains(industry, "health") || strings.Contains(industry, "medical"):
		score++
	}

	switch {
	case strings.Contains(round, "series a"):
		score++
	case strings.Contains(round, "series b") || strings.Contains(round, "series c"):
		score += 2
	case strings.Contains(round, "series d") || strings.Contains(round, "series e"):
		score += 3
	}

	return score
}

// Tier maps a numeric score to its categorical priority label.
func Tier(score int) string {
	switch {
	case score >= 5:
		return TierHigh
	case score >= 3:
		return TierMedium
	default:
		return TierLow
	}
}

// Opportunity names the pitch angle suggested by industry, round, and
// amount, first match wins.
func Opportunity(rec domain.Record) string {
	industry := strings.ToLower(rec.Industry)
	round := strings.ToLower(rec.Round)
	amount := strings.ToLower(rec.Amount)

	switch {
	case strings.Contains(industry, "artificial intelligence") || aiWord.MatchString(industry):
		return "AI/ML Platform Expansion"
	case strings.Contains(industry, "data") || strings.Contains(industry, "analytics"):
		return "Data Platform Scaling"
	case strings.Contains(industry, "fintech") || strings.Contains(industry, "finance"):
		return "Financial Technology Solutions"
	case strings.Contains(industry, "health") || strings.Contains(industry, "medical"):
		return "Healthcare Technology"
	case strings.Contains(round, "series a"):
		return "Early-Stage Growth Support"
	case strings.Contains(round, "series b") || strings.Contains(round, "series c"):
		return "Scale-Up Solutions"
	case strings.Contains(amount, "billion") || strings.Contains(amount, "b"):
		return "Enterprise-Level Solutions"
	default:
		return "General Business Solutions"
	}
}

// ContactInfo derives where to reach the lead: the company contact page
// when a website is known, otherwise a LinkedIn lookup hint.
func ContactInfo(rec domain.Record) string {
	if rec.Website != "" {
		return rec.Website + "/contact"
	}
	return "LinkedIn: " + rec.Company
}

// Annotate returns the record with score, tier, pitch opportunity, and
// contact info filled in.
func Annotate(rec domain.Record) domain.Record {
	score := Lead(rec)
	rec.LeadScore = score
	rec.LeadCategory = Tier(score)
	rec.PitchOpportunity = Opportunity(rec)
	rec.ContactInfo = ContactInfo(rec)
	return rec
}
