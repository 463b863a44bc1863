// Package export renders the filtered expense listing to CSV and PDF files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FileName returns a timestamped file name for an export, e.g.
// "despesas_20240315_174201.csv".
func FileName(now time.Time, extension string) string {
	return fmt.Sprintf("despesas_%s.%s", now.Format("20060102_150405"), extension)
}

// ensureDir creates the export directory if it does not exist yet.
func ensureDir(path string) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("error creating export directory: %w", err)
	}

	return nil
}

// csvAmount renders an amount with a comma as decimal separator, "123,45".
func csvAmount(amount decimal.Decimal) string {
	return strings.ReplaceAll(amount.StringFixed(2), ".", ",")
}

// displayAmount renders an amount with Brazilian separators, "1.234,56".
// It works on the decimal string so the value never passes through a float.
func displayAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	integer, fraction, _ := strings.Cut(s, ".")

	var groups []string
	for len(integer) > 3 {
		groups = append([]string{integer[len(integer)-3:]}, groups...)
		integer = integer[:len(integer)-3]
	}
	groups = append([]string{integer}, groups...)

	return sign + strings.Join(groups, ".") + "," + fraction
}

// truncate shortens a string to at most n runes for display.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
