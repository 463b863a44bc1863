package models

import (
	"errors"

	"github.com/despesas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthLimit is a spending ceiling for a category in a specific month.
// There is at most one limit per category and month.
type MonthLimit struct {
	DefaultModel
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:month_limit_category_month"`
	Category   Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Month      types.Month     `json:"month" gorm:"uniqueIndex:month_limit_category_month"`
	Limit      decimal.Decimal `json:"limit" gorm:"type:DECIMAL(15,2)"`
}

// BeforeSave validates the limit value.
func (l *MonthLimit) BeforeSave(_ *gorm.DB) error {
	if l.Limit.IsNegative() {
		return ErrLimitNegative
	}

	return nil
}

// SetMonthLimit sets the spending limit for a category in a month.
//
// Setting a limit for a (category, month) pair that already has one
// overwrites the value instead of creating a second row.
func SetMonthLimit(db *gorm.DB, categoryID uuid.UUID, month types.Month, value decimal.Decimal) (MonthLimit, error) {
	var limit MonthLimit

	err := db.Transaction(func(tx *gorm.DB) error {
		// The category has to exist. The foreign key would also catch this,
		// but checking here returns the more helpful not found error.
		err := tx.First(&Category{}, "id = ?", categoryID).Error
		if err != nil {
			return err
		}

		err = tx.First(&limit, "category_id = ? AND month = ?", categoryID, month).Error
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		if errors.Is(err, ErrResourceNotFound) {
			limit = MonthLimit{
				CategoryID: categoryID,
				Month:      month,
				Limit:      value,
			}
			return tx.Create(&limit).Error
		}

		limit.Limit = value
		return tx.Save(&limit).Error
	})

	return limit, err
}

// MonthLimitFor returns the limit configured for a category in a month.
func MonthLimitFor(db *gorm.DB, categoryID uuid.UUID, month types.Month) (MonthLimit, error) {
	var limit MonthLimit
	err := db.First(&limit, "category_id = ? AND month = ?", categoryID, month).Error
	return limit, err
}

// MonthLimits returns all limits configured for a month.
func MonthLimits(db *gorm.DB, month types.Month) ([]MonthLimit, error) {
	var limits []MonthLimit
	err := db.Where("month = ?", month).Find(&limits).Error
	return limits, err
}
