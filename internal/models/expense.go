package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single dated, categorized monetary outflow.
type Expense struct {
	DefaultModel
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(15,2)"`
	Date        time.Time       `json:"date"` // Time of day is only used for sorting
	CategoryID  uuid.UUID       `json:"categoryId"`
	Category    Category        `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Description string          `json:"description"`
	Source      string          `json:"source"` // Payment origin, e.g. "Cartão" or "Pix"
}

// ExpenseUpdate contains the fields of an expense that can be changed after
// creation. A nil field is left untouched.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	Description *string          `json:"description"`
	Source      *string          `json:"source"`
}

// ExpenseFilter restricts the expense listing. The date range is inclusive
// on both ends, the source filter matches case-insensitive substrings and
// Limit caps the number of results when positive.
type ExpenseFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID uuid.UUID
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Source     string
	Limit      int
}

// BeforeSave trims whitespace, validates the amount and enforces UTC dates.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Source = strings.TrimSpace(e.Source)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// CreateExpense persists a new expense.
func CreateExpense(db *gorm.DB, expense *Expense) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(expense).Error
	})
}

// ExpenseByID returns the expense with the given ID.
func ExpenseByID(db *gorm.DB, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := db.Preload("Category").First(&expense, "id = ?", id).Error
	return expense, err
}

// UpdateExpense applies a partial update to the expense with the given ID
// and returns the updated entity.
func UpdateExpense(db *gorm.DB, id uuid.UUID, update ExpenseUpdate) (Expense, error) {
	var expense Expense

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&expense, "id = ?", id).Error
		if err != nil {
			return err
		}

		if update.Amount != nil {
			expense.Amount = *update.Amount
		}

		if update.Date != nil {
			expense.Date = *update.Date
		}

		if update.CategoryID != nil {
			expense.CategoryID = *update.CategoryID
		}

		if update.Description != nil {
			expense.Description = *update.Description
		}

		if update.Source != nil {
			expense.Source = *update.Source
		}

		return tx.Save(&expense).Error
	})

	return expense, err
}

// DeleteExpense deletes the expense with the given ID.
func DeleteExpense(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var expense Expense
		err := tx.First(&expense, "id = ?", id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&expense).Error
	})
}

// Expenses returns the filtered expense listing, most recent first. Ties on
// the expense date are broken by creation time, also descending.
func Expenses(db *gorm.DB, filter ExpenseFilter) ([]Expense, error) {
	q := db.Preload("Category").Order("date DESC, created_at DESC")

	if filter.From != nil {
		q = q.Where("date >= ?", filter.From.In(time.UTC))
	}

	if filter.To != nil {
		q = q.Where("date <= ?", filter.To.In(time.UTC))
	}

	if filter.CategoryID != uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", filter.MinAmount)
	}

	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", filter.MaxAmount)
	}

	if filter.Source != "" {
		q = q.Where("LOWER(source) LIKE ?", "%"+strings.ToLower(filter.Source)+"%")
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var expenses []Expense
	err := q.Find(&expenses).Error
	return expenses, err
}
