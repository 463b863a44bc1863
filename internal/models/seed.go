package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultCategories are created on first run. Their IDs are fixed so that
// different installations seed identical rows.
var defaultCategories = []Category{
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000001")}, Name: "Alimentação", Color: "#22c55e", System: true},
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000002")}, Name: "Transporte", Color: "#3b82f6", System: true},
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000003")}, Name: "Moradia", Color: "#8b5cf6", System: true},
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000004")}, Name: "Saúde", Color: "#ef4444", System: true},
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000005")}, Name: "Lazer", Color: "#f59e0b", System: true},
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000006")}, Name: "Compras", Color: "#ec4899", System: true},
	{DefaultModel: DefaultModel{ID: uuid.MustParse("a1111111-0000-4000-8000-000000000007")}, Name: "Outros", Color: "#64748b", System: true},
}

// Seed creates the default categories if the category table is empty.
// It is idempotent and has to be called explicitly after Migrate, seeding
// is not a side effect of connecting to the database.
func Seed(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return fmt.Errorf("error counting categories for seeding: %w", err)
	}

	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, category := range defaultCategories {
			category := category
			err := tx.Create(&category).Error
			if err != nil {
				return fmt.Errorf("error seeding category %q: %w", category.Name, err)
			}
		}

		return nil
	})
}
