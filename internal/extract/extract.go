// Package extract holds the pure text extractors used to pull funding
// details out of article titles and free-form descriptions. Every extractor
// accepts arbitrary (possibly empty) text and returns either "" or text
// that literally occurs in the input.
package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// roundVocabulary is matched in declaration order; the first hit wins.
// "seed" deliberately precedes "pre-seed", so pre-seed announcements
// classify as Seed.
var roundVocabulary = []string{
	"seed",
	"series a",
	"series b",
	"series c",
	"series d",
	"series e",
	"pre-seed",
	"angel",
	"venture",
	"growth",
	"ipo",
	"acquisition",
}

var spaceRun = regexp.MustCompile(`\s+`)

// Clean collapses internal whitespace runs to single spaces and trims the
// ends. Empty input stays empty.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return spaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}

// Round returns the title-cased funding-round label found in the text, or
// "" when no vocabulary entry occurs.
func Round(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	for _, round := range roundVocabulary {
		if strings.Contains(lower, round) {
			return titleCase(round)
		}
	}

	return ""
}

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[$€£][\d,]+(?:\.\d+)?\s*(?:million|billion|k|m|b)?`),
	regexp.MustCompile(`(?i)[\d,]+(?:\.\d+)?\s*(?:million|billion|k|m|b)`),
	regexp.MustCompile(`(?i)[$€£][\d,]+(?:\.\d+)?`),
}

// Amount returns the first monetary amount found in the text. Patterns are
// tried in order: currency-prefixed with optional magnitude suffix,
// magnitude-suffixed bare number, currency-prefixed bare number.
func Amount(text string) string {
	if text == "" {
		return ""
	}

	for _, pattern := range amountPatterns {
		if match := pattern.FindString(text); match != "" {
			return Clean(match)
		}
	}

	return ""
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`),
	regexp.MustCompile(`[A-Za-z]+ \d{1,2},? \d{4}`),
	regexp.MustCompile(`\d{1,2} [A-Za-z]+ \d{4}`),
}

// Date returns the first date-shaped substring found in the text,
// unparsed. Downstream consumers re-parse with their own format lists.
func Date(text string) string {
	if text == "" {
		return ""
	}

	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return Clean(match)
		}
	}

	return ""
}

var investorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)led\s+by\s+([^,]+)`),
	regexp.MustCompile(`(?i)investors?\s+include\s+([^.]+)`),
	regexp.MustCompile(`(?i)backed\s+by\s+([^.]+)`),
	regexp.MustCompile(`(?i)participated\s+by\s+([^.]+)`),
	regexp.MustCompile(`(?i)co-led\s+by\s+([^,]+)`),
}

// Investors concatenates every distinct investor phrase found in the text,
// comma-joined. Deduplication is by exact string equality after cleaning.
func Investors(text string) string {
	if text == "" {
		return ""
	}

	var found []string
	seen := map[string]struct{}{}
	for _, pattern := range investorPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := Clean(match[1])
			if len(name) <= 3 {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			found = append(found, name)
		}
	}

	return strings.Join(found, ", ")
}

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+raises?\s+`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+secures?\s+`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+lands?\s+`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+closes?\s+`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+announces?\s+`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+funding`),
}

var companyStopWords = map[string]struct{}{
	"the":     {},
	"a":       {},
	"an":      {},
	"startup": {},
	"company": {},
}

// CompanyFromTitle pulls the company name out of a funding-announcement
// headline such as "Acme Raises $5M in Seed Round".
func CompanyFromTitle(title string) string {
	if title == "" {
		return ""
	}

	for _, pattern := range companyPatterns {
		match := pattern.FindStringSubmatch(title)
		if match == nil {
			continue
		}

		name := Clean(match[1])
		if len(name) <= 2 {
			continue
		}
		if _, stop := companyStopWords[strings.ToLower(name)]; stop {
			continue
		}
		return name
	}

	return ""
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)headquartered\s+in\s+([^,.]+)`),
	regexp.MustCompile(`(?i)based\s+in\s+([^,.]+)`),
	regexp.MustCompile(`(?i)located\s+in\s+([^,.]+)`),
}

// Location returns the first headquarters phrase found in the text.
func Location(text string) string {
	if text == "" {
		return ""
	}

	for _, pattern := range locationPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return Clean(match[1])
		}
	}

	return ""
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Email returns the first email-shaped token in the text.
func Email(text string) string {
	if text == "" {
		return ""
	}
	return emailPattern.FindString(text)
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upper := true
	for _, r := range s {
		if upper {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		upper = !unicode.IsLetter(r)
	}

	return b.String()
}
