package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
)

type CatalogTestSuite struct {
	RepositorySuite
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) TestListIngredients_FiltersByName() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ingredients" WHERE name ILIKE $1 ORDER BY name, measurement_unit`)).
		WithArgs("%sug%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).
			AddRow(uint(4), "brown sugar", "g").
			AddRow(uint(5), "sugar", "g"))

	ingredients, err := suite.repository.ListIngredients(context.Background(), "sug")
	suite.Require().NoError(err)
	suite.Len(ingredients, 2)
	suite.Equal("brown sugar", ingredients[0].Name)
}

func (suite *CatalogTestSuite) TestListIngredients_ReturnsAllWithoutName() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ingredients" ORDER BY name, measurement_unit`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).AddRow(uint(1), "salt", "g"))

	ingredients, err := suite.repository.ListIngredients(context.Background(), "")
	suite.Require().NoError(err)
	suite.Len(ingredients, 1)
}

func (suite *CatalogTestSuite) TestGetIngredientByID_ReturnsNotFound() {
	suite.mock.ExpectQuery(`SELECT \* FROM "ingredients"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ingredient, err := suite.repository.GetIngredientByID(context.Background(), 99)
	suite.Require().ErrorIs(err, repository.ErrIngredientNotFound)
	suite.Nil(ingredient)
}

func (suite *CatalogTestSuite) TestFindIngredientsByIDs_LoadsKnownIDs() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ingredients" WHERE id IN ($1,$2)`)).
		WithArgs(uint(1), uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).AddRow(uint(1), "salt", "g"))

	ingredients, err := suite.repository.FindIngredientsByIDs(context.Background(), []uint{1, 2})
	suite.Require().NoError(err)
	suite.Len(ingredients, 1)
}

func (suite *CatalogTestSuite) TestAddIngredients_SkipsExistingPairs() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "ingredients" ("name","measurement_unit") VALUES ($1,$2),($3,$4) ON CONFLICT ("name","measurement_unit") DO NOTHING RETURNING "id"`)).
		WithArgs("salt", "g", "milk", "ml").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(12)))
	suite.mock.ExpectCommit()

	added, err := suite.repository.AddIngredients(context.Background(), []model.Ingredient{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), added)
}

func (suite *CatalogTestSuite) TestListTags_OrdersByID() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tags" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(uint(1), "Breakfast", "breakfast").
			AddRow(uint(2), "Dinner", "dinner"))

	tags, err := suite.repository.ListTags(context.Background())
	suite.Require().NoError(err)
	suite.Len(tags, 2)
	suite.Equal("dinner", tags[1].Slug)
}

func (suite *CatalogTestSuite) TestGetTagByID_ReturnsNotFound() {
	suite.mock.ExpectQuery(`SELECT \* FROM "tags"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tag, err := suite.repository.GetTagByID(context.Background(), 9)
	suite.Require().ErrorIs(err, repository.ErrTagNotFound)
	suite.Nil(tag)
}

func (suite *CatalogTestSuite) TestAddTags_IgnoresConflicts() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "tags" ("name","slug") VALUES ($1,$2) ON CONFLICT DO NOTHING RETURNING "id"`)).
		WithArgs("Lunch", "lunch").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(3)))
	suite.mock.ExpectCommit()

	added, err := suite.repository.AddTags(context.Background(), []model.Tag{{Name: "Lunch", Slug: "lunch"}})
	suite.Require().NoError(err)
	suite.Equal(int64(1), added)
}
