package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func fltPtr(f float64) *float64 { return &f }

func completeRequest() ReportRequest {
	return ReportRequest{
		Name:         strPtr("Jane Doe"),
		CurrentFlock: intPtr(6),
		RealFlock:    intPtr(11),
		YearlyEggs:   intPtr(3146),
		EggRevenue:   fltPtr(1573.00),
		FeedCost:     fltPtr(756.00),
		NetProfit:    fltPtr(817.00),
		FunnyQuote:   strPtr("test"),
	}
}

func TestMissingFieldsComplete(t *testing.T) {
	assert.Empty(t, completeRequest().MissingFields())
}

func TestMissingFieldsSingle(t *testing.T) {
	req := completeRequest()
	req.NetProfit = nil

	assert.Equal(t, []string{"net_profit"}, req.MissingFields())
}

func TestMissingFieldsEmptyRequest(t *testing.T) {
	want := []string{
		"name", "current_flock", "real_flock", "yearly_eggs",
		"egg_revenue", "feed_cost", "net_profit", "funny_quote",
	}

	assert.Equal(t, want, ReportRequest{}.MissingFields())
}

func TestToReportDefaults(t *testing.T) {
	report := ReportRequest{}.ToReport()

	assert.Equal(t, DefaultName, report.Name)
	assert.Equal(t, DefaultQuote, report.FunnyQuote)
	assert.Equal(t, DefaultRecommendedPurchase, report.RecommendedPurchase)
	assert.Zero(t, report.CurrentFlock)
	assert.Zero(t, report.RealFlock)
	assert.Zero(t, report.YearlyEggs)
	assert.Zero(t, report.EggRevenue)
	assert.Zero(t, report.NetProfit)
}

func TestToReportKeepsValues(t *testing.T) {
	req := completeRequest()
	req.RecommendedPurchase = "Coop Expansion Kit"

	report := req.ToReport()

	assert.Equal(t, "Jane Doe", report.Name)
	assert.Equal(t, 6, report.CurrentFlock)
	assert.Equal(t, 11, report.RealFlock)
	assert.Equal(t, 3146, report.YearlyEggs)
	assert.Equal(t, 1573.00, report.EggRevenue)
	assert.Equal(t, "Coop Expansion Kit", report.RecommendedPurchase)
}

func TestDiscrepancy(t *testing.T) {
	assert.Equal(t, 5, Report{CurrentFlock: 6, RealFlock: 11}.Discrepancy())
	assert.Equal(t, -5, Report{CurrentFlock: 9, RealFlock: 4}.Discrepancy())
	assert.Zero(t, Report{CurrentFlock: 7, RealFlock: 7}.Discrepancy())
}

func TestDownloadFilename(t *testing.T) {
	assert.Equal(t, "Chicken_Math_Report_Jane_Doe.pdf", Report{Name: "Jane Doe"}.DownloadFilename())
	assert.Equal(t, "Chicken_Math_Report_Dr._Henrietta_C._Worth.pdf",
		Report{Name: "Dr. Henrietta C. Worth"}.DownloadFilename())
}
