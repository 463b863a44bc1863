package models_test

import (
	"github.com/despesas/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSeed() {
	err := models.Seed(suite.db)
	suite.Assert().Nil(err)

	categories, err := models.Categories(suite.db)
	suite.Assert().Nil(err)
	suite.Require().Len(categories, 7)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		suite.Assert().True(category.System, "%q must be a system category", category.Name)
		names = append(names, category.Name)
	}

	suite.Assert().Contains(names, "Alimentação")
	suite.Assert().Contains(names, "Outros")
}

func (suite *TestSuiteStandard) TestSeedIsIdempotent() {
	err := models.Seed(suite.db)
	suite.Require().Nil(err)

	err = models.Seed(suite.db)
	suite.Assert().Nil(err)

	var count int64
	err = suite.db.Model(&models.Category{}).Count(&count).Error
	suite.Assert().Nil(err)
	suite.Assert().Equal(int64(7), count)
}

func (suite *TestSuiteStandard) TestSeedSkipsExistingCategories() {
	_ = suite.createTestCategory(models.Category{Name: "Mercado"})

	// A non-empty category table is left alone
	err := models.Seed(suite.db)
	suite.Assert().Nil(err)

	var count int64
	err = suite.db.Model(&models.Category{}).Count(&count).Error
	suite.Assert().Nil(err)
	suite.Assert().Equal(int64(1), count)
}
