package reportapi_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cluckaudit/chicken-math-api/internal/domain/models"
	"github.com/cluckaudit/chicken-math-api/internal/server/handlers"
	"github.com/cluckaudit/chicken-math-api/internal/server/router"
	"github.com/cluckaudit/chicken-math-api/internal/service/composer"
	"github.com/cluckaudit/chicken-math-api/pkg/clients/reportapi"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := handlers.NewReportHandler(composer.NewService(nil), t.TempDir(), nil)
	srv := httptest.NewServer(router.New(handler, nil))
	t.Cleanup(srv.Close)

	return srv
}

func sampleRequest() models.ReportRequest {
	name := "Jane Doe"
	currentFlock := 6
	realFlock := 11
	yearlyEggs := 3146
	eggRevenue := 1573.00
	feedCost := 756.00
	netProfit := 817.00
	quote := "test"

	return models.ReportRequest{
		Name:         &name,
		CurrentFlock: &currentFlock,
		RealFlock:    &realFlock,
		YearlyEggs:   &yearlyEggs,
		EggRevenue:   &eggRevenue,
		FeedCost:     &feedCost,
		NetProfit:    &netProfit,
		FunnyQuote:   &quote,
	}
}

func TestGenerateReport(t *testing.T) {
	srv := newTestServer(t)
	client := reportapi.NewClient(srv.URL)

	raw, filename, err := client.GenerateReport(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "Chicken_Math_Report_Jane_Doe.pdf", filename)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "payload is not a PDF")
}

func TestGenerateReportMissingField(t *testing.T) {
	srv := newTestServer(t)
	client := reportapi.NewClient(srv.URL)

	req := sampleRequest()
	req.NetProfit = nil

	_, _, err := client.GenerateReport(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "net_profit")
}
