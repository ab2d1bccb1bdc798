package models

import "strings"

// Defaults applied when optional or absent fields reach the composer.
const (
	DefaultName                = "Chicken Owner"
	DefaultQuote               = "No assessment provided."
	DefaultRecommendedPurchase = "Premium Chicken Care Package"
)

// ReportRequest is the JSON body accepted by the generation endpoints.
// Required fields are pointers so that an absent key can be told apart from a
// zero value when enumerating missing fields.
type ReportRequest struct {
	Name                *string  `json:"name"`
	CurrentFlock        *int     `json:"current_flock"`
	RealFlock           *int     `json:"real_flock"`
	YearlyEggs          *int     `json:"yearly_eggs"`
	EggRevenue          *float64 `json:"egg_revenue"`
	FeedCost            *float64 `json:"feed_cost"`
	NetProfit           *float64 `json:"net_profit"`
	FunnyQuote          *string  `json:"funny_quote"`
	RecommendedPurchase string   `json:"recommended_purchase"`

	// MemeImageURL is accepted for forward compatibility but not rendered.
	MemeImageURL string `json:"meme_image_url"`
}

// MissingFields returns the names of required fields absent from the request,
// in data-model order.
func (r ReportRequest) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"name", r.Name != nil},
		{"current_flock", r.CurrentFlock != nil},
		{"real_flock", r.RealFlock != nil},
		{"yearly_eggs", r.YearlyEggs != nil},
		{"egg_revenue", r.EggRevenue != nil},
		{"feed_cost", r.FeedCost != nil},
		{"net_profit", r.NetProfit != nil},
		{"funny_quote", r.FunnyQuote != nil},
	} {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// ToReport materializes the request into a Report, substituting defaults for
// anything left unset.
func (r ReportRequest) ToReport() Report {
	report := Report{
		Name:                DefaultName,
		FunnyQuote:          DefaultQuote,
		RecommendedPurchase: DefaultRecommendedPurchase,
	}

	if r.Name != nil {
		report.Name = *r.Name
	}
	if r.CurrentFlock != nil {
		report.CurrentFlock = *r.CurrentFlock
	}
	if r.RealFlock != nil {
		report.RealFlock = *r.RealFlock
	}
	if r.YearlyEggs != nil {
		report.YearlyEggs = *r.YearlyEggs
	}
	if r.EggRevenue != nil {
		report.EggRevenue = *r.EggRevenue
	}
	if r.FeedCost != nil {
		report.FeedCost = *r.FeedCost
	}
	if r.NetProfit != nil {
		report.NetProfit = *r.NetProfit
	}
	if r.FunnyQuote != nil {
		report.FunnyQuote = *r.FunnyQuote
	}
	if r.RecommendedPurchase != "" {
		report.RecommendedPurchase = r.RecommendedPurchase
	}

	return report
}

// Report is one flock audit record, fully defaulted and ready for rendering.
type Report struct {
	Name                string
	CurrentFlock        int
	RealFlock           int
	YearlyEggs          int
	EggRevenue          float64
	FeedCost            float64
	NetProfit           float64
	FunnyQuote          string
	RecommendedPurchase string
}

// Discrepancy is the audited count minus the declared count. It may be
// negative; the report prints it either way.
func (r Report) Discrepancy() int {
	return r.RealFlock - r.CurrentFlock
}

// DownloadFilename builds the attachment name suggested to clients.
func (r Report) DownloadFilename() string {
	return "Chicken_Math_Report_" + strings.ReplaceAll(r.Name, " ", "_") + ".pdf"
}
