package domain

// RawRecord is the open field map a collection source produces before
// normalization. Keys follow the canonical column names where the source
// knows them; values may be empty.
type RawRecord map[string]string

// Canonical field names shared between raw records and export columns.
const (
	FieldCompany     = "Company"
	FieldWebsite     = "Website"
	FieldRound       = "Round"
	FieldAmount      = "Amount"
	FieldInvestors   = "Investors"
	FieldDate        = "Date"
	FieldIndustry    = "Industry"
	FieldLocation    = "Location"
	FieldSourceURL   = "Source_URL"
	FieldDescription = "Description"

	FieldEmployeeCount = "Employee_Count"
	FieldFounded       = "Founded"
	FieldRevenue       = "Revenue"
	FieldValuation     = "Valuation"
	FieldContactEmail  = "Contact_Email"
	FieldLinkedIn      = "LinkedIn"
	FieldTwitter       = "Twitter"
	FieldServices      = "Services"
	FieldDataType      = "Data_Type"
)

// CSVColumns is the fixed header order of the tabular export.
var CSVColumns = []string{
	FieldCompany,
	FieldWebsite,
	FieldRound,
	FieldAmount,
	FieldInvestors,
	FieldDate,
	FieldIndustry,
	FieldLocation,
	FieldSourceURL,
	FieldDescription,
}

// Record is a lead conformed to the fixed output schema. The ten core
// fields are always serialized, empty or not; extension fields only appear
// when set.
type Record struct {
	Company     string `json:"Company"`
	Website     string `json:"Website"`
	Round       string `json:"Round"`
	Amount      string `json:"Amount"`
	Investors   string `json:"Investors"`
	Date        string `json:"Date"`
	Industry    string `json:"Industry"`
	Location    string `json:"Location"`
	SourceURL   string `json:"Source_URL"`
	Description string `json:"Description"`

	EmployeeCount string `json:"Employee_Count,omitempty"`
	Founded       string `json:"Founded,omitempty"`
	Revenue       string `json:"Revenue,omitempty"`
	Valuation     string `json:"Valuation,omitempty"`
	ContactEmail  string `json:"Contact_Email,omitempty"`
	LinkedIn      string `json:"LinkedIn,omitempty"`
	Twitter       string `json:"Twitter,omitempty"`
	Services      string `json:"Services,omitempty"`
	DataType      string `json:"Data_Type,omitempty"`

	LeadScore        int    `json:"Lead_Score,omitempty"`
	LeadCategory     string `json:"Lead_Category,omitempty"`
	PitchOpportunity string `json:"Pitch_Opportunity,omitempty"`
	ContactInfo      string `json:"Contact_Info,omitempty"`
	ScrapedAt        string `json:"Scraped_At,omitempty"`
}

// CoreValues projects the record onto CSVColumns order.
func (r Record) CoreValues() []string {
	return []string{
		r.Company,
		r.Website,
		r.Round,
		r.Amount,
		r.Investors,
		r.Date,
		r.Industry,
		r.Location,
		r.SourceURL,
		r.Description,
	}
}
