// Package reports evaluates category spending against configured limits.
package reports

import (
	"github.com/despesas/backend/internal/models"
	"github.com/despesas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LimitStatus classifies a category's spending for a month.
type LimitStatus string

const (
	LimitStatusNone    LimitStatus = "NONE"    // No limit configured
	LimitStatusUnder   LimitStatus = "UNDER"   // Spending is below the limit
	LimitStatusReached LimitStatus = "REACHED" // Spending is at or above the limit
)

// CategoryLimit is the evaluation result for one category in one month.
type CategoryLimit struct {
	CategoryID uuid.UUID        `json:"categoryId"`
	Name       string           `json:"name"`
	Month      types.Month      `json:"month"`
	Limit      *decimal.Decimal `json:"limit"` // nil when no limit applies
	Spent      decimal.Decimal  `json:"spent"`
	Status     LimitStatus      `json:"status"`
}

// EvaluateLimits compares the spending of every category in the given month
// against its limit. The limit configured for the specific month wins over
// the category's default monthly limit.
//
// The evaluation is recomputed on every call, nothing is cached or
// persisted.
func EvaluateLimits(db *gorm.DB, month types.Month) ([]CategoryLimit, error) {
	categories, err := models.Categories(db)
	if err != nil {
		return nil, err
	}

	totals, err := models.CategoryTotals(db, month.FirstInstant(), month.LastInstant())
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(totals))
	for _, total := range totals {
		spent[total.CategoryID] = total.Total
	}

	limits, err := models.MonthLimits(db, month)
	if err != nil {
		return nil, err
	}

	monthLimits := make(map[uuid.UUID]decimal.Decimal, len(limits))
	for _, limit := range limits {
		monthLimits[limit.CategoryID] = limit.Limit
	}

	results := make([]CategoryLimit, 0, len(categories))
	for _, category := range categories {
		result := CategoryLimit{
			CategoryID: category.ID,
			Name:       category.Name,
			Month:      month,
			Spent:      spent[category.ID],
			Status:     LimitStatusNone,
		}

		limit, ok := monthLimits[category.ID]
		if !ok && category.MonthlyLimit != nil {
			limit = *category.MonthlyLimit
			ok = true
		}

		if ok {
			result.Limit = &limit
			if result.Spent.GreaterThanOrEqual(limit) {
				result.Status = LimitStatusReached
			} else {
				result.Status = LimitStatusUnder
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// AtOrOverLimit returns only the categories that reached their limit. This
// is what the alert list in the dashboard shows.
func AtOrOverLimit(db *gorm.DB, month types.Month) ([]CategoryLimit, error) {
	all, err := EvaluateLimits(db, month)
	if err != nil {
		return nil, err
	}

	alerts := make([]CategoryLimit, 0)
	for _, result := range all {
		if result.Status == LimitStatusReached {
			alerts = append(alerts, result)
		}
	}

	return alerts, nil
}
