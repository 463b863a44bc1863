package export

import (
	"fmt"
	"path/filepath"

	"github.com/despesas/backend/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Column layout for the A4 report, 190mm of usable width.
var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 22, "L"},
	{"Amount", 28, "R"},
	{"Category", 35, "L"},
	{"Description", 75, "L"},
	{"Source", 30, "L"},
}

// descriptionBudget caps the description column so rows stay single-line.
const descriptionBudget = 40

// WritePDF writes the filtered expense listing to path as a paginated A4
// table with a grand total row and returns the absolute path of the
// written file.
func WritePDF(db *gorm.DB, filter models.ExpenseFilter, path string) (string, error) {
	expenses, err := models.Expenses(db, filter)
	if err != nil {
		return "", err
	}

	err = ensureDir(path)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(30, 30, 30)
	pdf.Cell(0, 12, tr("Expense Report"))
	pdf.Ln(12)

	// Period line, only when the listing is date-filtered
	if filter.From != nil || filter.To != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.Cell(0, 6, tr(periodLine(filter)))
		pdf.Ln(8)
	} else {
		pdf.Ln(2)
	}

	if len(expenses) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(50, 50, 50)
		pdf.Cell(0, 8, tr("No expenses in this period."))

		err = pdf.OutputFileAndClose(path)
		if err != nil {
			return "", fmt.Errorf("error writing PDF file: %w", err)
		}

		return filepath.Abs(path)
	}

	writeHeader(pdf, tr)

	total := decimal.Zero
	for _, expense := range expenses {
		// Keep room for the row and the totals row on this page
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader(pdf, tr)
		}

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)

		cells := []string{
			expense.Date.Format("02/01/2006"),
			displayAmount(expense.Amount),
			expense.Category.Name,
			truncate(expense.Description, descriptionBudget),
			expense.Source,
		}

		for i, column := range pdfColumns {
			pdf.CellFormat(column.width, 7, tr(cells[i]), "B", 0, column.align, false, 0, "")
		}
		pdf.Ln(-1)

		total = total.Add(expense.Amount)
	}

	// Grand total
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(pdfColumns[0].width, 9, tr("Total"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColumns[1].width, 9, tr(displayAmount(total)), "T", 0, "R", false, 0, "")
	pdf.CellFormat(190-pdfColumns[0].width-pdfColumns[1].width, 9, "", "T", 1, "L", false, 0, "")

	err = pdf.OutputFileAndClose(path)
	if err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(path)
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(99, 102, 241)
	pdf.SetTextColor(255, 255, 255)

	for _, column := range pdfColumns {
		pdf.CellFormat(column.width, 8, tr(column.title), "", 0, column.align, true, 0, "")
	}
	pdf.Ln(-1)
}

func periodLine(filter models.ExpenseFilter) string {
	switch {
	case filter.From != nil && filter.To != nil:
		return fmt.Sprintf("Period: %s to %s", filter.From.Format("02/01/2006"), filter.To.Format("02/01/2006"))
	case filter.From != nil:
		return fmt.Sprintf("Period: from %s", filter.From.Format("02/01/2006"))
	default:
		return fmt.Sprintf("Period: until %s", filter.To.Format("02/01/2006"))
	}
}
