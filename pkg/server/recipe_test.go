package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/mocks"
	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
	"droscher.com/RecipeBox/pkg/server"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

const (
	authorID = uint(3)
	otherID  = uint(4)
)

type RecipeTestSuite struct {
	suite.Suite
	recipeRepo     *mocks.RecipeRepository
	catalogRepo    *mocks.CatalogRepository
	membershipRepo *mocks.MembershipRepository
	cartRepo       *mocks.ShoppingCartRepository
	allocator      *mocks.ShortLinkAllocator
	service        *server.RecipeServer
	observedLogs   *observer.ObservedLogs
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func testConfig() *configs.Config {
	return &configs.Config{
		Server:     configs.Server{BaseURL: "https://recipes.test/"},
		Pagination: configs.Pagination{PageSize: 6},
	}
}

func (suite *RecipeTestSuite) SetupTest() {
	suite.recipeRepo = mocks.NewRecipeRepository(suite.T())
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	suite.membershipRepo = mocks.NewMembershipRepository(suite.T())
	suite.cartRepo = mocks.NewShoppingCartRepository(suite.T())
	suite.allocator = mocks.NewShortLinkAllocator(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.service = server.NewRecipeServer(suite.recipeRepo, suite.catalogRepo, suite.membershipRepo,
		suite.cartRepo, suite.allocator, testConfig(), zap.New(observedZapCore))
}

func validCreateRequest() api.CreateRecipeRequest {
	return api.CreateRecipeRequest{
		Ingredients: []api.IngredientAmount{{ID: 2, Amount: 200}, {ID: 4, Amount: 3}},
		Tags:        []uint{1},
		Image:       "data:image/png;base64,AAAA",
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
	}
}

func storedRecipe(recipeID uint, author uint) *model.Recipe {
	return &model.Recipe{
		ID:          recipeID,
		AuthorID:    author,
		Name:        "Pancakes",
		Image:       "data:image/png;base64,AAAA",
		Text:        "Mix and fry.",
		CookingTime: 20,
		ShortLink:   "abcde",
		Author:      model.User{ID: author, Username: "cook"},
		Tags:        []model.Tag{{ID: 1, Name: "Breakfast", Slug: "breakfast"}},
		Ingredients: []model.IngredientRecipe{
			{IngredientID: 2, RecipeID: recipeID, Amount: 200, Ingredient: model.Ingredient{ID: 2, Name: "flour", MeasurementUnit: "g"}},
		},
	}
}

func (suite *RecipeTestSuite) expectCatalogResolves(ctx context.Context) {
	suite.catalogRepo.EXPECT().FindIngredientsByIDs(ctx, []uint{2, 4}).
		Return([]*model.Ingredient{{ID: 2, Name: "flour"}, {ID: 4, Name: "eggs"}}, nil)
	suite.catalogRepo.EXPECT().FindTagsByIDs(ctx, []uint{1}).
		Return([]*model.Tag{{ID: 1, Name: "Breakfast"}}, nil)
}

func (suite *RecipeTestSuite) expectStatuses(ctx context.Context, userID uint, recipeIDs []uint, authorIDs []uint) {
	suite.membershipRepo.EXPECT().MembershipTargets(ctx, model.Favorites, userID, recipeIDs).Return(map[uint]bool{}, nil)
	suite.membershipRepo.EXPECT().MembershipTargets(ctx, model.ShoppingCarts, userID, recipeIDs).Return(map[uint]bool{}, nil)
	suite.membershipRepo.EXPECT().MembershipTargets(ctx, model.Subscriptions, userID, authorIDs).Return(map[uint]bool{}, nil)
}

func (suite *RecipeTestSuite) TestCreateRecipe_RejectsInvalidPayloads() {
	tests := []struct {
		name    string
		mutate  func(request *api.CreateRecipeRequest)
		message string
	}{
		{"no tags", func(r *api.CreateRecipeRequest) { r.Tags = nil }, "at least one tag is required"},
		{"no ingredients", func(r *api.CreateRecipeRequest) { r.Ingredients = nil }, "at least one ingredient is required"},
		{"repeated tag", func(r *api.CreateRecipeRequest) { r.Tags = []uint{1, 1} }, "tag 1 is repeated"},
		{"repeated ingredient", func(r *api.CreateRecipeRequest) {
			r.Ingredients = []api.IngredientAmount{{ID: 2, Amount: 1}, {ID: 2, Amount: 5}}
		}, "ingredient 2 is repeated"},
		{"zero amount", func(r *api.CreateRecipeRequest) { r.Ingredients[1].Amount = 0 }, "amount of ingredient 4 must be between 1 and 32767"},
		{"zero cooking time", func(r *api.CreateRecipeRequest) { r.CookingTime = 0 }, "cooking_time must be between 1 and 32767"},
		{"missing name", func(r *api.CreateRecipeRequest) { r.Name = "" }, "name is required"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			request := validCreateRequest()
			tt.mutate(&request)

			recipe, err := suite.service.CreateRecipe(context.Background(), authorID, request)
			suite.Require().ErrorIs(err, api.ErrInvalidInput)
			suite.ErrorContains(err, tt.message)
			suite.Nil(recipe)
		})
	}
}

func (suite *RecipeTestSuite) TestCreateRecipe_RejectsUnknownIngredient() {
	ctx := context.Background()
	suite.catalogRepo.EXPECT().FindIngredientsByIDs(ctx, []uint{2, 4}).
		Return([]*model.Ingredient{{ID: 2, Name: "flour"}}, nil)

	recipe, err := suite.service.CreateRecipe(ctx, authorID, validCreateRequest())
	suite.Require().ErrorIs(err, api.ErrInvalidInput)
	suite.ErrorContains(err, "ingredient with id=4 does not exist")
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestCreateRecipe_RejectsUnknownTag() {
	ctx := context.Background()
	suite.catalogRepo.EXPECT().FindIngredientsByIDs(ctx, []uint{2, 4}).
		Return([]*model.Ingredient{{ID: 2}, {ID: 4}}, nil)
	suite.catalogRepo.EXPECT().FindTagsByIDs(ctx, []uint{1}).Return(nil, nil)

	recipe, err := suite.service.CreateRecipe(ctx, authorID, validCreateRequest())
	suite.Require().ErrorIs(err, api.ErrInvalidInput)
	suite.ErrorContains(err, "tag with id=1 does not exist")
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestCreateRecipe_RequiresUser() {
	recipe, err := suite.service.CreateRecipe(context.Background(), 0, validCreateRequest())
	suite.Require().ErrorIs(err, api.ErrUnauthenticated)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestCreateRecipe_CreatesRecipe() {
	ctx := context.Background()
	suite.expectCatalogResolves(ctx)
	suite.recipeRepo.EXPECT().CreateRecipe(ctx,
		mock.MatchedBy(func(recipe model.Recipe) bool {
			return recipe.AuthorID == authorID && recipe.Name == "Pancakes" && recipe.CookingTime == 20
		}),
		[]uint{1},
		[]model.IngredientRecipe{{IngredientID: 2, Amount: 200}, {IngredientID: 4, Amount: 3}},
		mock.Anything,
	).Return(&model.Recipe{ID: 7, ShortLink: "abcde"}, nil)
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)
	suite.expectStatuses(ctx, authorID, []uint{7}, []uint{authorID})

	recipe, err := suite.service.CreateRecipe(ctx, authorID, validCreateRequest())
	suite.Require().NoError(err)
	suite.Equal(uint(7), recipe.ID)
	suite.Equal("cook", recipe.Author.Username)
	suite.Equal([]api.RecipeIngredient{{ID: 2, Name: "flour", MeasurementUnit: "g", Amount: 200}}, recipe.Ingredients)
	suite.False(recipe.IsFavorited)
	suite.Equal(1, suite.observedLogs.FilterMessage("recipe created").Len())
}

func (suite *RecipeTestSuite) TestCreateRecipe_TranslatesReferenceErrors() {
	ctx := context.Background()
	suite.expectCatalogResolves(ctx)
	suite.recipeRepo.EXPECT().CreateRecipe(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, repository.ErrInvalidReference)

	recipe, err := suite.service.CreateRecipe(ctx, authorID, validCreateRequest())
	suite.Require().ErrorIs(err, api.ErrInvalidInput)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_ReturnsNotFound() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(70)).Return(nil, repository.ErrRecipeNotFound)

	recipe, err := suite.service.UpdateRecipe(ctx, authorID, 70, api.UpdateRecipeRequest{})
	suite.Require().ErrorIs(err, api.ErrNotFound)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_ForbidsOtherUsers() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)

	recipe, err := suite.service.UpdateRecipe(ctx, otherID, 7, api.UpdateRecipeRequest{
		Ingredients: []api.IngredientAmount{{ID: 2, Amount: 200}, {ID: 4, Amount: 3}},
		Tags:        []uint{1},
	})
	suite.Require().ErrorIs(err, api.ErrPermissionDenied)
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_RequiresTagsAndIngredients() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)

	recipe, err := suite.service.UpdateRecipe(ctx, authorID, 7, api.UpdateRecipeRequest{Name: pointy.String("Crepes")})
	suite.Require().ErrorIs(err, api.ErrInvalidInput)
	suite.ErrorContains(err, "at least one tag is required")
	suite.Nil(recipe)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_KeepsOmittedFields() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)
	suite.expectCatalogResolves(ctx)
	suite.recipeRepo.EXPECT().UpdateRecipe(ctx,
		model.Recipe{ID: 7, Name: "Pancakes", Image: "data:image/png;base64,AAAA", Text: "Whisk, rest, fry.", CookingTime: 25},
		[]uint{1},
		[]model.IngredientRecipe{{IngredientID: 2, Amount: 200}, {IngredientID: 4, Amount: 3}},
	).Return(storedRecipe(7, authorID), nil)
	suite.expectStatuses(ctx, authorID, []uint{7}, []uint{authorID})

	recipe, err := suite.service.UpdateRecipe(ctx, authorID, 7, api.UpdateRecipeRequest{
		Ingredients: []api.IngredientAmount{{ID: 2, Amount: 200}, {ID: 4, Amount: 3}},
		Tags:        []uint{1},
		Text:        pointy.String("Whisk, rest, fry."),
		CookingTime: pointy.Int(25),
	})
	suite.Require().NoError(err)
	suite.Equal(uint(7), recipe.ID)
}

func (suite *RecipeTestSuite) TestDeleteRecipe_DeletesOwnRecipe() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)
	suite.recipeRepo.EXPECT().DeleteRecipe(ctx, uint(7)).Return(nil)

	suite.NoError(suite.service.DeleteRecipe(ctx, authorID, 7))
}

func (suite *RecipeTestSuite) TestDeleteRecipe_ForbidsOtherUsers() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)

	suite.ErrorIs(suite.service.DeleteRecipe(ctx, otherID, 7), api.ErrPermissionDenied)
}

func (suite *RecipeTestSuite) TestGetShortLink_BuildsURL() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)

	link, err := suite.service.GetShortLink(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal("https://recipes.test/s/abcde", link.ShortLink)
}

func (suite *RecipeTestSuite) TestResolveShortLink_PointsAtRecipePage() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByShortLink(ctx, "abcde").Return(&model.Recipe{ID: 7}, nil)

	target, err := suite.service.ResolveShortLink(ctx, "abcde")
	suite.Require().NoError(err)
	suite.Equal("https://recipes.test/recipes/7/", target)
}

func (suite *RecipeTestSuite) TestResolveShortLink_UnknownLink() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().GetRecipeByShortLink(ctx, "zzzzz").Return(nil, repository.ErrRecipeNotFound)

	_, err := suite.service.ResolveShortLink(ctx, "zzzzz")
	suite.ErrorIs(err, api.ErrNotFound)
}

func (suite *RecipeTestSuite) TestListRecipes_AnonymousIgnoresMembershipFilters() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().ListRecipes(ctx, model.RecipeFilter{TagSlugs: []string{"breakfast"}, Limit: 6}).
		Return([]*model.Recipe{storedRecipe(7, authorID)}, int64(1), nil)

	page, err := suite.service.ListRecipes(ctx, 0, api.RecipeQuery{
		TagSlugs:         []string{"breakfast"},
		IsFavorited:      true,
		IsInShoppingCart: true,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Count)
	suite.Require().Len(page.Results, 1)
	suite.False(page.Results[0].IsFavorited)
}

func (suite *RecipeTestSuite) TestListRecipes_FiltersForUser() {
	ctx := context.Background()
	suite.recipeRepo.EXPECT().ListRecipes(ctx, mock.MatchedBy(func(filter model.RecipeFilter) bool {
		return filter.FavoritedBy != nil && *filter.FavoritedBy == otherID &&
			filter.InShoppingCartOf == nil && filter.Limit == 3 && filter.Offset == 3
	})).Return([]*model.Recipe{storedRecipe(7, authorID)}, int64(4), nil)
	suite.membershipRepo.EXPECT().MembershipTargets(ctx, model.Favorites, otherID, []uint{7}).Return(map[uint]bool{7: true}, nil)
	suite.membershipRepo.EXPECT().MembershipTargets(ctx, model.ShoppingCarts, otherID, []uint{7}).Return(map[uint]bool{}, nil)
	suite.membershipRepo.EXPECT().MembershipTargets(ctx, model.Subscriptions, otherID, []uint{authorID}).Return(map[uint]bool{authorID: true}, nil)

	page, err := suite.service.ListRecipes(ctx, otherID, api.RecipeQuery{
		IsFavorited: true,
		PageRequest: api.PageRequest{Page: 2, Limit: 3},
	})
	suite.Require().NoError(err)
	suite.Require().Len(page.Results, 1)
	suite.True(page.Results[0].IsFavorited)
	suite.False(page.Results[0].IsInShoppingCart)
	suite.True(page.Results[0].Author.IsSubscribed)
}

func (suite *RecipeTestSuite) TestAddFavorite_ReturnsPreview() {
	ctx := context.Background()
	suite.membershipRepo.EXPECT().TargetExists(ctx, model.Favorites, uint(7)).Return(true, nil)
	suite.membershipRepo.EXPECT().MembershipExists(ctx, model.Favorites, otherID, uint(7)).Return(false, nil)
	suite.membershipRepo.EXPECT().AddMembership(ctx, model.Favorites, otherID, uint(7)).Return(nil)
	suite.recipeRepo.EXPECT().GetRecipeByID(ctx, uint(7)).Return(storedRecipe(7, authorID), nil)

	preview, err := suite.service.AddFavorite(ctx, otherID, 7)
	suite.Require().NoError(err)
	suite.Equal(api.RecipeShort{ID: 7, Name: "Pancakes", Image: "data:image/png;base64,AAAA", CookingTime: 20}, *preview)
}

func (suite *RecipeTestSuite) TestAddFavorite_RejectsDuplicate() {
	ctx := context.Background()
	suite.membershipRepo.EXPECT().TargetExists(ctx, model.Favorites, uint(7)).Return(true, nil)
	suite.membershipRepo.EXPECT().MembershipExists(ctx, model.Favorites, otherID, uint(7)).Return(true, nil)

	preview, err := suite.service.AddFavorite(ctx, otherID, 7)
	suite.Require().ErrorIs(err, api.ErrInvalidInput)
	suite.ErrorContains(err, "already added to favorites")
	suite.Nil(preview)
}

func (suite *RecipeTestSuite) TestAddToShoppingCart_LostRaceIsValidationError() {
	ctx := context.Background()
	suite.membershipRepo.EXPECT().TargetExists(ctx, model.ShoppingCarts, uint(7)).Return(true, nil)
	suite.membershipRepo.EXPECT().MembershipExists(ctx, model.ShoppingCarts, otherID, uint(7)).Return(false, nil)
	suite.membershipRepo.EXPECT().AddMembership(ctx, model.ShoppingCarts, otherID, uint(7)).Return(repository.ErrMembershipExists)

	preview, err := suite.service.AddToShoppingCart(ctx, otherID, 7)
	suite.Require().ErrorIs(err, api.ErrInvalidInput)
	suite.Nil(preview)
}

func (suite *RecipeTestSuite) TestAddToShoppingCart_MissingRecipe() {
	ctx := context.Background()
	suite.membershipRepo.EXPECT().TargetExists(ctx, model.ShoppingCarts, uint(70)).Return(false, nil)

	preview, err := suite.service.AddToShoppingCart(ctx, otherID, 70)
	suite.Require().ErrorIs(err, api.ErrNotFound)
	suite.Nil(preview)
}

func (suite *RecipeTestSuite) TestRemoveFromShoppingCart_MissingPair() {
	ctx := context.Background()
	suite.membershipRepo.EXPECT().TargetExists(ctx, model.ShoppingCarts, uint(7)).Return(true, nil)
	suite.membershipRepo.EXPECT().RemoveMembership(ctx, model.ShoppingCarts, otherID, uint(7)).Return(repository.ErrMembershipNotFound)

	err := suite.service.RemoveFromShoppingCart(ctx, otherID, 7)
	suite.Require().ErrorIs(err, api.ErrMembershipNotFound)
	suite.ErrorIs(err, api.ErrNotFound)
}

func (suite *RecipeTestSuite) TestRemoveFavorite_RemovesPair() {
	ctx := context.Background()
	suite.membershipRepo.EXPECT().TargetExists(ctx, model.Favorites, uint(7)).Return(true, nil)
	suite.membershipRepo.EXPECT().RemoveMembership(ctx, model.Favorites, otherID, uint(7)).Return(nil)

	suite.NoError(suite.service.RemoveFavorite(ctx, otherID, 7))
}

func (suite *RecipeTestSuite) TestShoppingCartReport_RendersLines() {
	ctx := context.Background()
	suite.cartRepo.EXPECT().GetShoppingCart(ctx, otherID).Return([]model.ShoppingCartLine{
		{Name: "flour", MeasurementUnit: "g", TotalAmount: 25},
	}, nil)

	report, err := suite.service.ShoppingCartReport(ctx, otherID)
	suite.Require().NoError(err)
	suite.Equal("flour (g) - 25\n", string(report))
}

func (suite *RecipeTestSuite) TestShoppingCartReport_EmptyCart() {
	ctx := context.Background()
	suite.cartRepo.EXPECT().GetShoppingCart(ctx, otherID).Return(nil, nil)

	report, err := suite.service.ShoppingCartReport(ctx, otherID)
	suite.Require().NoError(err)
	suite.Empty(report)
}
