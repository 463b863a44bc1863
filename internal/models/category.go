package models

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// DefaultColor is the color assigned to categories that do not set one.
const DefaultColor = "#6366f1"

var colorPattern = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// Category is a label attached to expenses, optionally carrying a monthly
// spending limit.
type Category struct {
	DefaultModel
	Name         string           `json:"name" gorm:"uniqueIndex"`
	Color        string           `json:"color"`
	Icon         string           `json:"icon"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit" gorm:"type:DECIMAL(15,2)"` // Default limit applied to months without an explicit one. nil means no limit.
	System       bool             `json:"system"`                                 // Seeded on first run, cannot be deleted
}

// CategoryUpdate contains the fields of a category that can be changed after
// creation. A nil field is left untouched.
type CategoryUpdate struct {
	Name         *string          `json:"name"`
	Color        *string          `json:"color"`
	Icon         *string          `json:"icon"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit"`
}

// BeforeSave trims whitespace and validates the category.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrNameEmpty
	}

	if utf8.RuneCountInString(c.Name) > 100 {
		return ErrNameTooLong
	}

	if c.Color == "" {
		c.Color = DefaultColor
	}

	if !colorPattern.MatchString(c.Color) {
		return ErrColorInvalid
	}

	if c.MonthlyLimit != nil && c.MonthlyLimit.IsNegative() {
		return ErrLimitNegative
	}

	return nil
}

// BeforeDelete blocks the deletion of system categories. Deletion of
// categories that still have expenses is blocked by the database itself,
// see deleteCallback.
func (c *Category) BeforeDelete(_ *gorm.DB) error {
	if c.System {
		return ErrCategoryIsSystem
	}

	return nil
}

// Categories returns all categories, ordered by name.
//
// SQLite cannot collate accented names correctly, so sorting happens here
// with a Brazilian Portuguese collator.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	collator := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(categories, func(i, j int) bool {
		return collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})

	return categories, nil
}

// CategoryByID returns the category with the given ID.
func CategoryByID(db *gorm.DB, id uuid.UUID) (Category, error) {
	var category Category
	err := db.First(&category, "id = ?", id).Error
	return category, err
}

// CreateCategory persists a new category.
func CreateCategory(db *gorm.DB, category *Category) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(category).Error
	})
}

// UpdateCategory applies a partial update to the category with the given ID
// and returns the updated entity.
func UpdateCategory(db *gorm.DB, id uuid.UUID, update CategoryUpdate) (Category, error) {
	var category Category

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&category, "id = ?", id).Error
		if err != nil {
			return err
		}

		if update.Name != nil {
			category.Name = *update.Name
		}

		if update.Color != nil {
			category.Color = *update.Color
		}

		if update.Icon != nil {
			category.Icon = *update.Icon
		}

		if update.MonthlyLimit != nil {
			category.MonthlyLimit = update.MonthlyLimit
		}

		return tx.Save(&category).Error
	})

	return category, err
}

// DeleteCategory deletes the category with the given ID.
//
// It returns ErrCategoryIsSystem for seeded categories and
// ErrCategoryReferenced when expenses still reference the category. Month
// limits owned by the category are deleted with it.
func DeleteCategory(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var category Category
		err := tx.First(&category, "id = ?", id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
