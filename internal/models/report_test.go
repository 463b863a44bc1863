package models_test

import (
	"time"

	"github.com/despesas/backend/internal/models"
	"github.com/despesas/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryTotals() {
	mercado := suite.createTestCategory(models.Category{Name: "Mercado"})
	lazer := suite.createTestCategory(models.Category{Name: "Lazer"})
	_ = suite.createTestCategory(models.Category{Name: "Transporte"})

	_ = suite.createTestExpense(models.Expense{CategoryID: mercado.ID, Date: date(2024, time.March, 5), Amount: decimal.RequireFromString("100.50")})
	_ = suite.createTestExpense(models.Expense{CategoryID: mercado.ID, Date: date(2024, time.March, 20), Amount: decimal.RequireFromString("49.50")})
	_ = suite.createTestExpense(models.Expense{CategoryID: lazer.ID, Date: date(2024, time.March, 10), Amount: decimal.RequireFromString("75.00")})

	// Outside of the period
	_ = suite.createTestExpense(models.Expense{CategoryID: mercado.ID, Date: date(2024, time.April, 1), Amount: decimal.RequireFromString("999.00")})

	month := types.NewMonth(2024, 3)
	totals, err := models.CategoryTotals(suite.db, month.FirstInstant(), month.LastInstant())
	suite.Assert().Nil(err)

	// Transporte has no expenses in the period and is not in the result
	suite.Require().Len(totals, 2)

	suite.Assert().Equal("Lazer", totals[0].Name)
	decimalEqual(suite.T(), "75.00", totals[0].Total)

	suite.Assert().Equal("Mercado", totals[1].Name)
	decimalEqual(suite.T(), "150.00", totals[1].Total)
}

func (suite *TestSuiteStandard) TestCategoryTotalsSeededScenario() {
	err := models.Seed(suite.db)
	suite.Require().Nil(err)

	categories, err := models.Categories(suite.db)
	suite.Require().Nil(err)
	suite.Require().Equal("Alimentação", categories[0].Name)

	_ = suite.createTestExpense(models.Expense{
		CategoryID: categories[0].ID,
		Date:       date(2024, time.March, 15),
		Amount:     decimal.RequireFromString("50.00"),
	})

	month := types.NewMonth(2024, 3)
	totals, err := models.CategoryTotals(suite.db, month.FirstInstant(), month.LastInstant())
	suite.Assert().Nil(err)

	suite.Require().Len(totals, 1)
	suite.Assert().Equal("Alimentação", totals[0].Name)
	decimalEqual(suite.T(), "50.00", totals[0].Total)
}

func (suite *TestSuiteStandard) TestTotalSpentEmpty() {
	month := types.NewMonth(2024, 3)

	total, err := models.TotalSpent(suite.db, month.FirstInstant(), month.LastInstant())
	suite.Assert().Nil(err)
	suite.Assert().True(total.IsZero())
}

func (suite *TestSuiteStandard) TestTotalSpentExactDecimal() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})

	// 10 * 0.10 must be exactly 1.00. Summing in the database would go
	// through floating point and fail this.
	for i := 1; i <= 10; i++ {
		_ = suite.createTestExpense(models.Expense{
			CategoryID: category.ID,
			Date:       date(2024, time.March, i),
			Amount:     decimal.RequireFromString("0.10"),
		})
	}

	month := types.NewMonth(2024, 3)
	total, err := models.TotalSpent(suite.db, month.FirstInstant(), month.LastInstant())
	suite.Assert().Nil(err)

	decimalEqual(suite.T(), "1.00", total)
	suite.Assert().Equal("1.00", total.StringFixed(2))
}

func (suite *TestSuiteStandard) TestTotalSpentPartition() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})

	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2024, time.January, 15), Amount: decimal.RequireFromString("10.01")})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2024, time.January, 31), Amount: decimal.RequireFromString("0.99")})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2024, time.February, 1), Amount: decimal.RequireFromString("20.20")})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2024, time.March, 31), Amount: decimal.RequireFromString("5.55")})

	january := types.NewMonth(2024, 1)
	march := types.NewMonth(2024, 3)

	first, err := models.TotalSpent(suite.db, january.FirstInstant(), january.LastInstant())
	suite.Require().Nil(err)

	rest, err := models.TotalSpent(suite.db, types.NewMonth(2024, 2).FirstInstant(), march.LastInstant())
	suite.Require().Nil(err)

	whole, err := models.TotalSpent(suite.db, january.FirstInstant(), march.LastInstant())
	suite.Require().Nil(err)

	// Splitting the period must not change the sum
	suite.Assert().True(first.Add(rest).Equal(whole), "%s + %s != %s", first, rest, whole)
	decimalEqual(suite.T(), "36.75", whole)
}

func (suite *TestSuiteStandard) TestMonthlyTotals() {
	category := suite.createTestCategory(models.Category{Name: "Mercado"})

	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2023, time.October, 5), Amount: decimal.RequireFromString("10.00")})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2023, time.December, 31), Amount: decimal.RequireFromString("5.50")})
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2024, time.January, 20), Amount: decimal.RequireFromString("2.25")})

	// Outside of the window
	_ = suite.createTestExpense(models.Expense{CategoryID: category.ID, Date: date(2023, time.September, 30), Amount: decimal.RequireFromString("99.00")})

	today := time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC)
	totals, err := models.MonthlyTotals(suite.db, 3, today)
	suite.Assert().Nil(err)

	// The window rolls over the year boundary and includes months
	// without expenses
	suite.Require().Len(totals, 4)

	suite.Assert().Equal(types.NewMonth(2023, 10), totals[0].Month)
	decimalEqual(suite.T(), "10.00", totals[0].Total)

	suite.Assert().Equal(types.NewMonth(2023, 11), totals[1].Month)
	suite.Assert().True(totals[1].Total.IsZero())

	suite.Assert().Equal(types.NewMonth(2023, 12), totals[2].Month)
	decimalEqual(suite.T(), "5.50", totals[2].Total)

	suite.Assert().Equal(types.NewMonth(2024, 1), totals[3].Month)
	decimalEqual(suite.T(), "2.25", totals[3].Total)
}

func (suite *TestSuiteStandard) TestMonthlyTotalsCurrentMonthOnly() {
	today := time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC)

	totals, err := models.MonthlyTotals(suite.db, 0, today)
	suite.Assert().Nil(err)

	suite.Require().Len(totals, 1)
	suite.Assert().Equal(types.NewMonth(2024, 1), totals[0].Month)
	suite.Assert().True(totals[0].Total.IsZero())
}
