package composer

import (
	"github.com/dustin/go-humanize"
	"github.com/lvillar/gofpdf/table"
)

// Report palette. Hex values follow the department's house style
// (#e74c3c red, #2c3e50 slate, #f39c12 amber, #3498db blue, #2ecc71 green).
var (
	colorAccentRed  = table.RGBColor{R: 231, G: 76, B: 60}
	colorSlate      = table.RGBColor{R: 44, G: 62, B: 80}
	colorAmber      = table.RGBColor{R: 243, G: 156, B: 18}
	colorSkyBlue    = table.RGBColor{R: 52, G: 152, B: 219}
	colorGreen      = table.RGBColor{R: 46, G: 204, B: 113}
	colorBeige      = table.RGBColor{R: 245, G: 245, B: 220}
	colorLightBlue  = table.RGBColor{R: 173, G: 216, B: 230}
	colorWhiteSmoke = table.RGBColor{R: 245, G: 245, B: 245}
)

// profitFillColor picks the fill for the net-impact row: green for a
// non-negative result, red for a loss.
func profitFillColor(netProfit float64) table.RGBColor {
	if netProfit < 0 {
		return colorAccentRed
	}
	return colorGreen
}

// formatEggCount renders a yearly egg count with thousands separators and no
// decimal places, e.g. "3,146 eggs".
func formatEggCount(count int) string {
	return humanize.Comma(int64(count)) + " eggs"
}

// formatCurrency renders a dollar amount with thousands separators and exactly
// two decimal places, e.g. "$1,573.00". Negative amounts keep their sign after
// the currency symbol.
func formatCurrency(amount float64) string {
	return "$" + humanize.FormatFloat("#,###.##", amount)
}
