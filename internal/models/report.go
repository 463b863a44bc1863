package models

import (
	"time"

	"github.com/despesas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// All aggregations in this file fetch the matching amounts and sum them
// with decimal arithmetic. SQLite's SUM() works on floating point values
// and must not be used for amounts that end up displayed or exported.

// CategoryTotal is the aggregated spend of one category over a period.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}

// MonthTotal is the aggregated spend over one calendar month.
type MonthTotal struct {
	Month types.Month     `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryTotals returns the total spend per category for all expenses with
// a date in [from, to], ordered by category name. Categories without
// expenses in the period are not part of the result.
func CategoryTotals(db *gorm.DB, from, to time.Time) ([]CategoryTotal, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Name       string
		Amount     decimal.Decimal
	}

	err := db.Table("expenses").
		Select("expenses.category_id, categories.name, expenses.amount").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.date >= ? AND expenses.date <= ?", from.In(time.UTC), to.In(time.UTC)).
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]CategoryTotal, 0)
	index := make(map[uuid.UUID]int)

	for _, row := range rows {
		i, ok := index[row.CategoryID]
		if !ok {
			index[row.CategoryID] = len(totals)
			totals = append(totals, CategoryTotal{
				CategoryID: row.CategoryID,
				Name:       row.Name,
				Total:      row.Amount,
			})
			continue
		}

		totals[i].Total = totals[i].Total.Add(row.Amount)
	}

	return totals, nil
}

// MonthlyTotals returns one total per calendar month for the window starting
// monthsBack months before the month of today and ending with today, oldest
// month first. Months without expenses are included with a total of zero.
//
// The window rolls over year boundaries, e.g. monthsBack = 3 with today in
// January 2024 starts the window at October 2023.
func MonthlyTotals(db *gorm.DB, monthsBack int, today time.Time) ([]MonthTotal, error) {
	today = today.In(time.UTC)
	current := types.MonthOf(today)
	start := current.AddDate(0, -monthsBack)

	// The window covers full months up to and including the current day.
	from := start.FirstInstant()
	year, month, day := today.Date()
	to := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond)

	var rows []struct {
		Date   time.Time
		Amount decimal.Decimal
	}

	err := db.Table("expenses").
		Select("date, amount").
		Where("date >= ? AND date <= ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]MonthTotal, 0)
	index := make(map[string]int)

	for m := start; !m.After(current); m = m.AddDate(0, 1) {
		index[m.String()] = len(totals)
		totals = append(totals, MonthTotal{Month: m, Total: decimal.Zero})
	}

	for _, row := range rows {
		i, ok := index[types.MonthOf(row.Date.In(time.UTC)).String()]
		if !ok {
			continue
		}

		totals[i].Total = totals[i].Total.Add(row.Amount)
	}

	return totals, nil
}

// TotalSpent returns the sum of all expense amounts with a date in
// [from, to]. It returns zero when no expense matches.
func TotalSpent(db *gorm.DB, from, to time.Time) (decimal.Decimal, error) {
	var amounts []decimal.Decimal

	err := db.Model(&Expense{}).
		Where("date >= ? AND date <= ?", from.In(time.UTC), to.In(time.UTC)).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}

	return total, nil
}
