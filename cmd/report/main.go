// Command report renders the canonical sample audit record to a PDF, either
// locally or through a running instance of the service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cluckaudit/chicken-math-api/internal/domain/models"
	"github.com/cluckaudit/chicken-math-api/internal/service/composer"
	"github.com/cluckaudit/chicken-math-api/pkg/clients/reportapi"
)

func main() {
	output := flag.String("o", "chicken_math_report_sample.pdf", "output path for the rendered report")
	server := flag.String("server", "", "base URL of a running instance; renders locally when empty")
	flag.Parse()

	if err := run(*output, *server); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("PDF generated successfully:", *output)
}

func run(output, server string) error {
	sample := sampleRequest()

	if server != "" {
		client := reportapi.NewClient(server)
		raw, _, err := client.GenerateReport(context.Background(), sample)
		if err != nil {
			return err
		}
		return os.WriteFile(output, raw, 0o644)
	}

	svc := composer.NewService(nil)
	_, err := svc.Generate(context.Background(), sample.ToReport(), output)
	return err
}

func sampleRequest() models.ReportRequest {
	name := "Jane Chicken Lover"
	currentFlock := 6
	realFlock := 11
	yearlyEggs := 3146
	eggRevenue := 1573.00
	feedCost := 756.00
	netProfit := 817.00
	quote := "You're making a whopping $817.00 per year! That's almost enough to cover " +
		"the emergency vet visit when one chicken looks at you funny at 3am. Worth it!"

	return models.ReportRequest{
		Name:                &name,
		CurrentFlock:        &currentFlock,
		RealFlock:           &realFlock,
		YearlyEggs:          &yearlyEggs,
		EggRevenue:          &eggRevenue,
		FeedCost:            &feedCost,
		NetProfit:           &netProfit,
		FunnyQuote:          &quote,
		RecommendedPurchase: "Premium Feed Upgrade Package + Coop Expansion Kit",
	}
}
