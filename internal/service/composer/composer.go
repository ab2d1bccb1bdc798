// Package composer lays out the two-page chicken math audit report.
package composer

import (
	"context"
	"fmt"
	"strings"
	"time"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/table"
	"go.uber.org/zap"

	"github.com/cluckaudit/chicken-math-api/internal/domain/models"
)

const (
	fontFamily   = "Helvetica"
	marginSide   = 25.4
	marginTop    = 32.0
	marginBottom = 22.0

	bodyLineHeight = 5.5
	dateLayout     = "January 2, 2006"

	departmentName     = "DEPARTMENT OF CHICKEN MATHEMATICS"
	confidentialNotice = "CONFIDENTIAL - For Chicken Owner Use Only"
)

const warningNotice = "This report contains classified information regarding the true size of " +
	"your chicken flock. The discrepancies found during this audit are NOT your fault. " +
	"Chicken Math is a scientifically proven phenomenon affecting 99.7% of backyard " +
	"chicken owners."

const recommendationPreamble = "Based on our comprehensive audit of your chicken operation, " +
	"the Department of Chicken Mathematics hereby recommends the following action:"

const recommendationClosing = "This recommendation is based on your current flock size, " +
	"production levels, and the undeniable laws of Chicken Math. Compliance is voluntary " +
	"but highly encouraged for optimal chicken happiness."

const certificationStandards = "This report has been prepared in accordance with the Official " +
	"Chicken Math Standards (OCMS) and the International Backyard Poultry Guidelines (IBPG). " +
	"All calculations have been verified by certified Chicken Mathematicians."

const certificationAssurance = "This document serves as official proof that you are not " +
	"crazy - you really do have more chickens than you thought you had."

var chickenMathFacts = []string{
	"The Chicken Math Formula has been scientifically proven in over 1 million backyard coops",
	"97% of chicken owners underestimate their true flock size by at least 40%",
	"The primary cause of Chicken Math is 'just one more won't hurt' syndrome",
	"Most chicken owners experience Chicken Math within 6 months of their first purchase",
	"There is no known cure for Chicken Math, only acceptance",
}

// Service renders audit reports. Each call is independent; no layout state
// survives between invocations.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new composer service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, now: time.Now}
}

// Generate renders the two-page report for the given record and writes it to
// outputPath, returning the path on success.
func (s *Service) Generate(ctx context.Context, report models.Report, outputPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	generated := s.now()

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Official Chicken Math Audit Report", true)
	pdf.SetAuthor(departmentName, true)
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(true, marginBottom)

	pdf.SetHeaderFunc(func() {
		pageHeader(pdf, generated)
	})
	pdf.SetFooterFunc(func() {
		pageFooter(pdf)
	})

	pdf.AddPage()
	if err := buildFindingsPage(pdf, report, generated); err != nil {
		return "", fmt.Errorf("compose findings page: %w", err)
	}

	pdf.AddPage()
	if err := buildCertificationPage(pdf, report); err != nil {
		return "", fmt.Errorf("compose certification page: %w", err)
	}

	if pdf.Err() {
		return "", fmt.Errorf("compose report: %w", pdf.Error())
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("write report to %s: %w", outputPath, err)
	}

	s.logger.Info("report generated",
		zap.String("path", outputPath),
		zap.String("recipient", report.Name))

	return outputPath, nil
}

// pageHeader draws the department banner and report date on every page.
func pageHeader(pdf *gofpdf.Fpdf, generated time.Time) {
	pdf.SetY(12)
	pdf.SetFont(fontFamily, "B", 10)
	setTextColor(pdf, colorAccentRed)

	half := contentWidth(pdf) / 2
	pdf.CellFormat(half, 6, departmentName, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Report Date: "+generated.Format(dateLayout), "", 0, "R", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(marginTop)
}

// pageFooter draws the centered page number and confidentiality line.
func pageFooter(pdf *gofpdf.Fpdf) {
	pdf.SetY(-15)
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(128, 128, 128)
	text := fmt.Sprintf("Page %d | %s", pdf.PageNo(), confidentialNotice)
	pdf.CellFormat(contentWidth(pdf), 10, text, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func buildFindingsPage(pdf *gofpdf.Fpdf, report models.Report, generated time.Time) error {
	titleLine(pdf, "OFFICIAL CHICKEN MATH AUDIT REPORT")
	stampLine(pdf, "* OFFICIAL CERTIFIED *")
	pdf.Ln(3)

	subtitleLine(pdf, "Prepared For: "+report.Name)
	bodyParagraph(pdf, "Audit Date: "+generated.Format(dateLayout))
	pdf.Ln(2)

	boldBodyLine(pdf, "OFFICIAL NOTICE")
	bodyParagraph(pdf, warningNotice)
	pdf.Ln(2)

	subtitleLine(pdf, "SECTION 1: FLOCK SIZE FINDINGS")
	if err := findingsTable(pdf, report); err != nil {
		return err
	}
	pdf.Ln(6)

	subtitleLine(pdf, "SECTION 2: ECONOMIC IMPACT ANALYSIS")
	if err := economicsTable(pdf, report); err != nil {
		return err
	}
	pdf.Ln(6)

	subtitleLine(pdf, "OFFICIAL ASSESSMENT:")
	bodyParagraph(pdf, report.FunnyQuote)

	return nil
}

func buildCertificationPage(pdf *gofpdf.Fpdf, report models.Report) error {
	titleLine(pdf, "OFFICIAL RECOMMENDATIONS & CERTIFICATION")
	pdf.Ln(2)

	subtitleLine(pdf, "SECTION 3: DEPARTMENT RECOMMENDATIONS")
	bodyParagraph(pdf, recommendationPreamble)
	boldBodyLine(pdf, "Recommended Purchase: "+report.RecommendedPurchase)
	bodyParagraph(pdf, recommendationClosing)
	pdf.Ln(2)

	subtitleLine(pdf, "SECTION 4: OFFICIAL CHICKEN MATH FACTS")
	for _, fact := range chickenMathFacts {
		bulletLine(pdf, fact)
	}
	pdf.Ln(4)

	subtitleLine(pdf, "OFFICIAL CERTIFICATION")
	bodyParagraph(pdf, certificationStandards)
	bodyParagraph(pdf, certificationAssurance)
	pdf.Ln(4)

	signatureBlock(pdf)
	pdf.Ln(4)

	stampLine(pdf, "* OFFICIAL GOVERNMENT DOCUMENT *")
	stampLine(pdf, "NOT VALID WITHOUT CHICKEN STAMP")

	return pdf.Error()
}

// findingsTable compares the declared flock size against the audited count.
func findingsTable(pdf *gofpdf.Fpdf, report models.Report) error {
	pdf.SetFont(fontFamily, "", 11)

	tb := table.New(pdf)
	tb.SetColumnWidths(76, 38, 25)
	tb.SetStyle(table.TableStyle{
		CellPadding: table.UniformPadding(2),
		HeaderStyle: &table.CellStyle{
			FillColor: &colorAccentRed,
			TextColor: &colorWhiteSmoke,
			Font:      &table.FontSpec{Family: fontFamily, Style: "B", Size: 12},
			Align:     "C",
		},
	})

	hr := tb.AddHeaderRow()
	hr.AddCell("Category")
	hr.AddCell("Count")
	hr.AddCell("Status")

	declared := tb.AddRow().SetStyle(findingsRowStyle(colorBeige, false))
	declared.AddCell("Chickens You Admit To Owning")
	declared.AddCellf("%d", report.CurrentFlock)
	declared.AddCell("OK")

	audited := tb.AddRow().SetStyle(findingsRowStyle(colorBeige, false))
	audited.AddCell("Actual Chicken Count (Per Audit)")
	audited.AddCellf("%d", report.RealFlock)
	audited.AddCell("!!")

	gap := tb.AddRow().SetStyle(findingsRowStyle(colorAmber, true))
	gap.AddCell("Discrepancy")
	gap.AddCellf("%d", report.Discrepancy())
	gap.AddCell("CRITICAL")

	if err := tb.Render(); err != nil {
		return err
	}
	pdf.SetFont(fontFamily, "", 11)
	return nil
}

// economicsTable lists annual production and the money that follows it. The
// net-impact row is filled green or red depending on the profit sign.
func economicsTable(pdf *gofpdf.Fpdf, report models.Report) error {
	pdf.SetFont(fontFamily, "", 11)

	tb := table.New(pdf)
	tb.SetColumns(
		table.ColumnDef{Width: 89, Align: "L"},
		table.ColumnDef{Width: 51, Align: "R"},
	)
	tb.SetStyle(table.TableStyle{
		CellPadding: table.UniformPadding(2),
		HeaderStyle: &table.CellStyle{
			FillColor: &colorSkyBlue,
			TextColor: &colorWhiteSmoke,
			Font:      &table.FontSpec{Family: fontFamily, Style: "B", Size: 12},
			Align:     "L",
		},
	})

	hr := tb.AddHeaderRow()
	hr.AddCell("Metric")
	hr.AddCell("Annual Amount")

	metrics := []struct {
		label string
		value string
	}{
		{"Projected Egg Production", formatEggCount(report.YearlyEggs)},
		{"Egg Revenue Value", formatCurrency(report.EggRevenue)},
		{"Feed & Bedding Costs", formatCurrency(report.FeedCost)},
	}
	for _, m := range metrics {
		row := tb.AddRow().SetStyle(economicsRowStyle(colorLightBlue, false))
		row.AddCell(m.label)
		row.AddCell(m.value)
	}

	impact := tb.AddRow().SetStyle(economicsRowStyle(profitFillColor(report.NetProfit), true))
	impact.AddCell("Net Financial Impact")
	impact.AddCell(formatCurrency(report.NetProfit))

	if err := tb.Render(); err != nil {
		return err
	}
	pdf.SetFont(fontFamily, "", 11)
	return nil
}

// signatureBlock draws the two signature columns without a grid.
func signatureBlock(pdf *gofpdf.Fpdf) {
	half := contentWidth(pdf) / 2
	line := strings.Repeat("_", 40)

	pdf.Ln(8)
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(half, 6, line, "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 6, line, "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(half, 6, "Chief Chicken Mathematician", "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 6, "Department Director", "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "B", 9)
	pdf.CellFormat(half, 5, "Dr. Henrietta Clucksworth", "", 0, "C", false, 0, "")
	pdf.CellFormat(half, 5, "Colonel Sanders III", "", 1, "C", false, 0, "")
}

func findingsRowStyle(fill table.RGBColor, emphasis bool) table.CellStyle {
	font := table.FontSpec{Family: fontFamily, Size: 11}
	if emphasis {
		font.Style = "B"
	}
	return table.CellStyle{FillColor: &fill, Font: &font, Align: "C"}
}

func economicsRowStyle(fill table.RGBColor, emphasis bool) table.CellStyle {
	font := table.FontSpec{Family: fontFamily, Size: 11}
	if emphasis {
		font.Style = "B"
	}
	return table.CellStyle{FillColor: &fill, Font: &font}
}

func titleLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "B", 24)
	setTextColor(pdf, colorAccentRed)
	pdf.MultiCell(contentWidth(pdf), 10, text, "", "C", false)
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)
}

func stampLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "B", 18)
	setTextColor(pdf, colorAccentRed)
	pdf.MultiCell(contentWidth(pdf), 8, text, "", "C", false)
	pdf.Ln(1)
	pdf.SetTextColor(0, 0, 0)
}

func subtitleLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "B", 14)
	setTextColor(pdf, colorSlate)
	pdf.MultiCell(contentWidth(pdf), 7, text, "", "L", false)
	pdf.Ln(1)
	pdf.SetTextColor(0, 0, 0)
}

func bodyParagraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "", 11)
	pdf.MultiCell(contentWidth(pdf), bodyLineHeight, text, "", "L", false)
	pdf.Ln(2)
}

func boldBodyLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "B", 11)
	pdf.MultiCell(contentWidth(pdf), bodyLineHeight, text, "", "L", false)
	pdf.Ln(2)
}

func bulletLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(fontFamily, "", 11)
	pdf.MultiCell(contentWidth(pdf), bodyLineHeight, "- "+text, "", "L", false)
	pdf.Ln(1)
}

func contentWidth(pdf *gofpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	return pageW - lm - rm
}

func setTextColor(pdf *gofpdf.Fpdf, c table.RGBColor) {
	pdf.SetTextColor(c.R, c.G, c.B)
}
