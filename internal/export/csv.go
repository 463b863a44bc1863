package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/despesas/backend/internal/models"
	"gorm.io/gorm"
)

// utf8BOM makes spreadsheet applications detect the encoding so that
// accented category names display correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"Date", "Amount", "Category", "Description", "Source"}

// WriteCSV writes the filtered expense listing to path as a semicolon
// separated file and returns the absolute path of the written file.
func WriteCSV(db *gorm.DB, filter models.ExpenseFilter, path string) (string, error) {
	expenses, err := models.Expenses(db, filter)
	if err != nil {
		return "", err
	}

	err = ensureDir(path)
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(utf8BOM)
	if err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	err = writer.Write(csvHeader)
	if err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, expense := range expenses {
		record := []string{
			expense.Date.Format("2006-01-02"),
			csvAmount(expense.Amount),
			expense.Category.Name,
			expense.Description,
			expense.Source,
		}

		err = writer.Write(record)
		if err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(path)
}
