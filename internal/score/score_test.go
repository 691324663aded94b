package score

import (
	"testing"

	"LeadScanner/internal/domain"
)

func TestLeadScoring(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  domain.Record
		want int
		tier string
	}{
		{
			name: "billion ai series c",
			rec:  domain.Record{Amount: "$1B", Industry: "Artificial Intelligence", Round: "Series C"},
			want: 7,
			tier: TierHigh,
		},
		{
			name: "million retail seed",
			rec:  domain.Record{Amount: "$2.5M", Industry: "Retail", Round: "Seed"},
			want: 2,
			tier: TierLow,
		},
		{
			name: "million data series a",
			rec:  domain.Record{Amount: "$15M", Industry: "Data Analytics", Round: "Series A"},
			want: 5,
			tier: TierHigh,
		},
		{
			name: "small fintech",
			rec:  domain.Record{Amount: "$500K", Industry: "Fintech", Round: "Angel"},
			want: 2,
			tier: TierLow,
		},
		{
			name: "health series d",
			rec:  domain.Record{Amount: "$100 million", Industry: "Healthcare", Round: "Series D"},
			want: 6,
			tier: TierHigh,
		},
		{
			name: "empty record",
			rec:  domain.Record{},
			want: 1,
			tier: TierLow,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Lead(tc.rec)
			if got != tc.want {
				t.Fatalf("Lead() = %d, want %d", got, tc.want)
			}
			if tier := Tier(got); tier != tc.tier {
				t.Fatalf("Tier(%d) = %q, want %q", got, tier, tc.tier)
			}
		})
	}
}

func TestLeadDeterministic(t *testing.T) {
	t.Parallel()

	rec := domain.Record{Amount: "$750M", Industry: "AI", Round: "Series B"}
	first := Annotate(rec)
	second := Annotate(rec)

	if first.LeadScore != second.LeadScore || first.LeadCategory != second.LeadCategory {
		t.Fatalf("scoring not deterministic: %+v vs %+v", first, second)
	}
}

func TestRetailDoesNotTripAIBonus(t *testing.T) {
	t.Parallel()

	retail := Lead(domain.Record{Amount: "$5M", Industry: "Retail"})
	ai := Lead(domain.Record{Amount: "$5M", Industry: "AI"})

	if retail != 2 {
		t.Fatalf("retail score = %d, want 2", retail)
	}
	if ai != 4 {
		t.Fatalf("ai score = %d, want 4", ai)
	}
}

func TestOpportunity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rec  domain.Record
		want string
	}{
		{domain.Record{Industry: "Artificial Intelligence"}, "AI/ML Platform Expansion"},
		{domain.Record{Industry: "Data Labeling"}, "Data Platform Scaling"},
		{domain.Record{Industry: "Consumer Finance"}, "Financial Technology Solutions"},
		{domain.Record{Industry: "Medical Devices"}, "Healthcare Technology"},
		{domain.Record{Round: "Series A"}, "Early-Stage Growth Support"},
		{domain.Record{Round: "Series C"}, "Scale-Up Solutions"},
		{domain.Record{Amount: "$1 billion"}, "Enterprise-Level Solutions"},
		{domain.Record{}, "General Business Solutions"},
	}

	for _, tc := range cases {
		if got := Opportunity(tc.rec); got != tc.want {
			t.Fatalf("Opportunity(%+v) = %q, want %q", tc.rec, got, tc.want)
		}
	}
}

func TestContactInfo(t *testing.T) {
	t.Parallel()

	withSite := ContactInfo(domain.Record{Company: "Acme", Website: "https://acme.io"})
	if withSite != "https://acme.io/contact" {
		t.Fatalf("unexpected contact info: %q", withSite)
	}

	without := ContactInfo(domain.Record{Company: "Acme"})
	if without != "LinkedIn: Acme" {
		t.Fatalf("unexpected contact info: %q", without)
	}
}
