package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
)

type RecipeTestSuite struct {
	RepositorySuite
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func shortLinks(links ...string) repository.ShortLinkFunc {
	next := 0

	return func(_ context.Context) (string, error) {
		link := links[next]
		next++

		return link, nil
	}
}

func newRecipe() model.Recipe {
	return model.Recipe{
		AuthorID:    3,
		Name:        "Pancakes",
		Image:       "recipes/images/pancakes.png",
		Text:        "Mix and fry.",
		CookingTime: 20,
	}
}

func recipeIngredients() []model.IngredientRecipe {
	return []model.IngredientRecipe{{IngredientID: 2, Amount: 200}, {IngredientID: 4, Amount: 3}}
}

func (suite *RecipeTestSuite) expectRecipeInsert(shortLink string, recipeID uint) {
	suite.mock.ExpectQuery(`INSERT INTO "recipes" (.+) RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), uint(3), "Pancakes", "recipes/images/pancakes.png", "Mix and fry.", uint16(20), shortLink).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(recipeID))
}

func (suite *RecipeTestSuite) expectAssociationInserts(recipeID uint) {
	suite.mock.ExpectExec(`INSERT INTO "recipe_tags" \("recipe_id","tag_id"\)`).
		WithArgs(recipeID, uint(1), recipeID, uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectQuery(`INSERT INTO "ingredient_recipes" \("ingredient_id","recipe_id","amount"\)`).
		WithArgs(uint(2), recipeID, uint16(200), uint(4), recipeID, uint16(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(11)).AddRow(uint(12)))
}

func (suite *RecipeTestSuite) expectRecipePreloads(recipeID uint) {
	suite.mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(uint(3), "cook", "cook@example.com"))
	suite.mock.ExpectQuery(`SELECT \* FROM "ingredient_recipes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ingredient_id", "recipe_id", "amount"}).AddRow(uint(11), uint(2), recipeID, 200))
	suite.mock.ExpectQuery(`SELECT \* FROM "ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).AddRow(uint(2), "flour", "g"))
	suite.mock.ExpectQuery(`SELECT \* FROM "recipe_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "tag_id"}).AddRow(recipeID, uint(1)))
	suite.mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(uint(1), "Breakfast", "breakfast"))
}

func recipeRow(recipeID uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "author_id", "name", "image", "text", "cooking_time", "short_link"}).
		AddRow(recipeID, time.Now(), uint(3), "Pancakes", "recipes/images/pancakes.png", "Mix and fry.", 20, "abcde")
}

func (suite *RecipeTestSuite) TestCreateRecipe_CreatesRecipeWithAssociations() {
	suite.mock.ExpectBegin()
	suite.expectRecipeInsert("abcde", 7)
	suite.expectAssociationInserts(7)
	suite.mock.ExpectCommit()

	recipe, err := suite.repository.CreateRecipe(context.Background(), newRecipe(), []uint{1, 2}, recipeIngredients(), shortLinks("abcde"))
	suite.Require().NoError(err)
	suite.Equal(uint(7), recipe.ID)
	suite.Equal("abcde", recipe.ShortLink)
}

func (suite *RecipeTestSuite) TestCreateRecipe_RetriesWhenShortLinkRaceIsLost() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO "recipes"`).WillReturnError(pgError(uniqueViolation))
	suite.mock.ExpectRollback()
	suite.mock.ExpectBegin()
	suite.expectRecipeInsert("fghij", 8)
	suite.expectAssociationInserts(8)
	suite.mock.ExpectCommit()

	recipe, err := suite.repository.CreateRecipe(context.Background(), newRecipe(), []uint{1, 2}, recipeIngredients(), shortLinks("abcde", "fghij"))
	suite.Require().NoError(err)
	suite.Equal(uint(8), recipe.ID)
	suite.Equal("fghij", recipe.ShortLink)
	suite.Equal(1, suite.observedLogs.FilterMessage("short link taken by a concurrent insert, retrying").Len())
}

func (suite *RecipeTestSuite) TestCreateRecipe_GivesUpAfterRepeatedRaces() {
	for i := 0; i < 3; i++ {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`INSERT INTO "recipes"`).WillReturnError(pgError(uniqueViolation))
		suite.mock.ExpectRollback()
	}

	recipe, err := suite.repository.CreateRecipe(context.Background(), newRecipe(), []uint{1}, recipeIngredients(), shortLinks("aaaaa", "bbbbb", "ccccc"))
	suite.Require().ErrorIs(err, repository.ErrShortLinkTaken)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestCreateRecipe_RollsBackOnUnknownTag() {
	suite.mock.ExpectBegin()
	suite.expectRecipeInsert("abcde", 7)
	suite.mock.ExpectExec(`INSERT INTO "recipe_tags"`).WillReturnError(pgError(foreignKeyViolation))
	suite.mock.ExpectRollback()

	recipe, err := suite.repository.CreateRecipe(context.Background(), newRecipe(), []uint{1, 99}, recipeIngredients(), shortLinks("abcde"))
	suite.Require().ErrorIs(err, repository.ErrInvalidReference)
	suite.Nil(recipe)
	suite.Equal(1, suite.observedLogs.FilterMessage("error creating recipe").Len())
}

func (suite *RecipeTestSuite) TestCreateRecipe_StopsWhenAllocationFails() {
	allocate := func(_ context.Context) (string, error) {
		return "", context.Canceled
	}

	recipe, err := suite.repository.CreateRecipe(context.Background(), newRecipe(), []uint{1}, recipeIngredients(), allocate)
	suite.Require().ErrorIs(err, context.Canceled)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestGetRecipeByID_LoadsAssociations() {
	suite.mock.MatchExpectationsInOrder(false)
	suite.mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE "recipes"."id" = \$1`).
		WithArgs(uint(7), 1).
		WillReturnRows(recipeRow(7))
	suite.expectRecipePreloads(7)

	recipe, err := suite.repository.GetRecipeByID(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal("cook", recipe.Author.Username)
	suite.Require().Len(recipe.Tags, 1)
	suite.Equal("breakfast", recipe.Tags[0].Slug)
	suite.Require().Len(recipe.Ingredients, 1)
	suite.Equal("flour", recipe.Ingredients[0].Ingredient.Name)
	suite.Equal(uint16(200), recipe.Ingredients[0].Amount)
}

func (suite *RecipeTestSuite) TestGetRecipeByID_ReturnsNotFound() {
	suite.mock.ExpectQuery(`SELECT \* FROM "recipes"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	recipe, err := suite.repository.GetRecipeByID(context.Background(), 7)
	suite.Require().ErrorIs(err, repository.ErrRecipeNotFound)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_ReplacesTagsAndIngredients() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "recipes" SET "updated_at"=\$1,"name"=\$2,"image"=\$3,"text"=\$4,"cooking_time"=\$5 WHERE "recipes"."id" = \$6`).
		WithArgs(sqlmock.AnyArg(), "Pancakes", "recipes/images/pancakes.png", "Mix and fry.", uint16(20), uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`DELETE FROM "recipe_tags" WHERE recipe_id = \$1`).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	suite.mock.ExpectExec(`DELETE FROM "ingredient_recipes" WHERE recipe_id = \$1`).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.expectAssociationInserts(7)
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(`SELECT \* FROM "recipes"`).WillReturnRows(recipeRow(7))
	suite.mock.MatchExpectationsInOrder(false)
	suite.expectRecipePreloads(7)

	recipe := newRecipe()
	recipe.ID = 7

	updated, err := suite.repository.UpdateRecipe(context.Background(), recipe, []uint{1, 2}, recipeIngredients())
	suite.Require().NoError(err)
	suite.Equal(uint(7), updated.ID)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_ReturnsNotFoundForMissingRecipe() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "recipes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectRollback()

	recipe := newRecipe()
	recipe.ID = 70

	updated, err := suite.repository.UpdateRecipe(context.Background(), recipe, []uint{1}, recipeIngredients())
	suite.Require().ErrorIs(err, repository.ErrRecipeNotFound)
	suite.Nil(updated)
}

func (suite *RecipeTestSuite) TestDeleteRecipe_DeletesRecipe() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM "recipes" WHERE "recipes"."id" = \$1`).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.NoError(suite.repository.DeleteRecipe(context.Background(), 7))
}

func (suite *RecipeTestSuite) TestDeleteRecipe_ReturnsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM "recipes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	suite.ErrorIs(suite.repository.DeleteRecipe(context.Background(), 7), repository.ErrRecipeNotFound)
}

func (suite *RecipeTestSuite) TestShortLinkExists_CountsMatchingRecipes() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "recipes" WHERE short_link = \$1`).
		WithArgs("abcde").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := suite.repository.ShortLinkExists(context.Background(), "abcde")
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *RecipeTestSuite) TestListRecipes_AppliesFilters() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "recipes" WHERE (.+)recipes.author_id = \$1(.+)t.slug IN \(\$2,\$3\)(.+)FROM favorites WHERE user_id = \$4`).
		WithArgs(uint(3), "breakfast", "dinner", uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	suite.mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE (.+)ORDER BY recipes.created_at DESC, recipes.id DESC LIMIT \$5 OFFSET \$6`).
		WithArgs(uint(3), "breakfast", "dinner", uint(5), 6, 6).
		WillReturnRows(recipeRow(7))
	suite.mock.MatchExpectationsInOrder(false)
	suite.expectRecipePreloads(7)

	recipes, total, err := suite.repository.ListRecipes(context.Background(), model.RecipeFilter{
		AuthorID:    pointy.Uint(3),
		TagSlugs:    []string{"breakfast", "dinner"},
		FavoritedBy: pointy.Uint(5),
		Limit:       6,
		Offset:      6,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(9), total)
	suite.Require().Len(recipes, 1)
	suite.Equal("Pancakes", recipes[0].Name)
}

func (suite *RecipeTestSuite) TestListRecipes_FiltersShoppingCart() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "recipes" WHERE recipes.id IN \(SELECT recipe_id FROM shopping_carts WHERE user_id = \$1\)`).
		WithArgs(uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE recipes.id IN \(SELECT recipe_id FROM shopping_carts WHERE user_id = \$1\)`).
		WithArgs(uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	recipes, total, err := suite.repository.ListRecipes(context.Background(), model.RecipeFilter{InShoppingCartOf: pointy.Uint(5)})
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(recipes)
}
