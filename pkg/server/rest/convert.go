package rest

import (
	"go.openly.dev/pointy"

	"droscher.com/RecipeBox/pkg/model"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

// RecipeStatus holds the acting user's relation to a recipe and its author.
type RecipeStatus struct {
	IsFavorited      bool
	IsInShoppingCart bool
	AuthorSubscribed bool
}

func UserFromModel(user *model.User, isSubscribed bool) api.User {
	apiUser := api.User{
		Email:        user.Email,
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}

	if len(user.Avatar) > 0 {
		apiUser.Avatar = pointy.String(user.Avatar)
	}

	return apiUser
}

func RegisteredUserFromModel(user *model.User) api.RegisteredUser {
	return api.RegisteredUser{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func TagFromModel(tag model.Tag) api.Tag {
	return api.Tag{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}
}

func TagsFromModel(tags []*model.Tag) []api.Tag {
	apiTags := make([]api.Tag, 0, len(tags))
	for _, tag := range tags {
		apiTags = append(apiTags, TagFromModel(*tag))
	}

	return apiTags
}

func IngredientFromModel(ingredient model.Ingredient) api.Ingredient {
	return api.Ingredient{ID: ingredient.ID, Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit}
}

func IngredientsFromModel(ingredients []*model.Ingredient) []api.Ingredient {
	apiIngredients := make([]api.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		apiIngredients = append(apiIngredients, IngredientFromModel(*ingredient))
	}

	return apiIngredients
}

func RecipeFromModel(recipe *model.Recipe, status RecipeStatus) api.Recipe {
	tags := make([]api.Tag, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, TagFromModel(tag))
	}

	ingredients := make([]api.RecipeIngredient, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, api.RecipeIngredient{
			ID:              ingredient.IngredientID,
			Name:            ingredient.Ingredient.Name,
			MeasurementUnit: ingredient.Ingredient.MeasurementUnit,
			Amount:          int(ingredient.Amount),
		})
	}

	return api.Recipe{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           UserFromModel(&recipe.Author, status.AuthorSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      status.IsFavorited,
		IsInShoppingCart: status.IsInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      int(recipe.CookingTime),
	}
}

func RecipeShortFromModel(recipe *model.Recipe) api.RecipeShort {
	return api.RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: int(recipe.CookingTime),
	}
}

func RecipeShortsFromModel(recipes []*model.Recipe) []api.RecipeShort {
	shorts := make([]api.RecipeShort, 0, len(recipes))
	for _, recipe := range recipes {
		shorts = append(shorts, RecipeShortFromModel(recipe))
	}

	return shorts
}

// IngredientsToModel keeps the submitted order. Amounts must already be validated.
func IngredientsToModel(ingredients []api.IngredientAmount) []model.IngredientRecipe {
	rows := make([]model.IngredientRecipe, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, model.IngredientRecipe{IngredientID: ingredient.ID, Amount: uint16(ingredient.Amount)})
	}

	return rows
}
