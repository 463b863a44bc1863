package models_test

import (
	"strings"

	"github.com/despesas/backend/internal/models"
	"github.com/despesas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{Name: "  Mercado\t"})
	suite.Assert().Equal("Mercado", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	err := models.CreateCategory(suite.db, &models.Category{Name: "   "})
	suite.Assert().ErrorIs(err, models.ErrNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryNameTooLong() {
	err := models.CreateCategory(suite.db, &models.Category{Name: strings.Repeat("á", 101)})
	suite.Assert().ErrorIs(err, models.ErrNameTooLong)

	// 100 characters are fine, also when they are more than 100 bytes
	err = models.CreateCategory(suite.db, &models.Category{Name: strings.Repeat("á", 100)})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Mercado"})

	err := models.CreateCategory(suite.db, &models.Category{Name: "Mercado"})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryDefaultColor() {
	category := suite.createTestCategory(models.Category{})
	suite.Assert().Equal(models.DefaultColor, category.Color)
}

func (suite *TestSuiteStandard) TestCategoryColorInvalid() {
	for _, color := range []string{"red", "#12345", "#12345g", "123456"} {
		err := models.CreateCategory(suite.db, &models.Category{Name: "Colored " + color, Color: color})
		suite.Assert().ErrorIs(err, models.ErrColorInvalid, "color %q should be rejected", color)
	}
}

func (suite *TestSuiteStandard) TestCategoryNegativeLimit() {
	limit := decimal.NewFromFloat(-10)
	err := models.CreateCategory(suite.db, &models.Category{Name: "Mercado", MonthlyLimit: &limit})
	suite.Assert().ErrorIs(err, models.ErrLimitNegative)
}

func (suite *TestSuiteStandard) TestCategoriesSortedByName() {
	// pt-BR collation sorts accented names between their unaccented
	// neighbors instead of after "z"
	_ = suite.createTestCategory(models.Category{Name: "Zoológico"})
	_ = suite.createTestCategory(models.Category{Name: "Árvores"})
	_ = suite.createTestCategory(models.Category{Name: "Banco"})

	categories, err := models.Categories(suite.db)
	suite.Assert().Nil(err)
	suite.Require().Len(categories, 3)

	suite.Assert().Equal("Árvores", categories[0].Name)
	suite.Assert().Equal("Banco", categories[1].Name)
	suite.Assert().Equal("Zoológico", categories[2].Name)
}

func (suite *TestSuiteStandard) TestCategoryByIDNotFound() {
	_, err := models.CategoryByID(suite.db, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCategoryPartial() {
	category := suite.createTestCategory(models.Category{Name: "Mercado", Icon: "🛒"})

	color := "#ff0000"
	updated, err := models.UpdateCategory(suite.db, category.ID, models.CategoryUpdate{Color: &color})
	suite.Assert().Nil(err)

	suite.Assert().Equal("#ff0000", updated.Color)
	suite.Assert().Equal("Mercado", updated.Name)
	suite.Assert().Equal("🛒", updated.Icon)
}

func (suite *TestSuiteStandard) TestUpdateCategoryLimit() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})
	suite.Require().Nil(category.MonthlyLimit)

	limit := decimal.RequireFromString("512.50")
	updated, err := models.UpdateCategory(suite.db, category.ID, models.CategoryUpdate{MonthlyLimit: &limit})
	suite.Assert().Nil(err)
	suite.Require().NotNil(updated.MonthlyLimit)
	decimalEqual(suite.T(), "512.50", *updated.MonthlyLimit)
}

func (suite *TestSuiteStandard) TestUpdateCategoryNotFound() {
	name := "Mercado"
	_, err := models.UpdateCategory(suite.db, uuid.New(), models.CategoryUpdate{Name: &name})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})

	err := models.DeleteCategory(suite.db, category.ID)
	suite.Assert().Nil(err)

	_, err = models.CategoryByID(suite.db, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryNotFound() {
	err := models.DeleteCategory(suite.db, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteSystemCategory() {
	err := models.Seed(suite.db)
	suite.Require().Nil(err)

	categories, err := models.Categories(suite.db)
	suite.Require().Nil(err)
	suite.Require().NotEmpty(categories)

	err = models.DeleteCategory(suite.db, categories[0].ID)
	suite.Assert().ErrorIs(err, models.ErrCategoryIsSystem)

	// The category must still be there
	_, err = models.CategoryByID(suite.db, categories[0].ID)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestDeleteCategoryWithExpenses() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID})

	err := models.DeleteCategory(suite.db, category.ID)
	suite.Assert().ErrorIs(err, models.ErrCategoryReferenced)
}

func (suite *TestSuiteStandard) TestDeleteCategoryCascadesLimits() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})
	month := types.NewMonth(2024, 3)

	_, err := models.SetMonthLimit(suite.db, category.ID, month, decimal.NewFromFloat(300))
	suite.Require().Nil(err)

	err = models.DeleteCategory(suite.db, category.ID)
	suite.Assert().Nil(err)

	limits, err := models.MonthLimits(suite.db, month)
	suite.Assert().Nil(err)
	suite.Assert().Empty(limits)
}
