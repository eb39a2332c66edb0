package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RecipeBox/pkg/model"
)

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrShortLinkTaken    = errors.New("short link already taken")
	ErrInvalidReference  = errors.New("referenced row does not exist")
	ErrDuplicateRelation = errors.New("duplicate tag or ingredient in recipe")
)

// maxShortLinkRaces bounds how often a creation is retried after losing a short link race
// against a concurrent insert.
const maxShortLinkRaces = 3

// ShortLinkFunc returns a short link that was free when it was checked.
type ShortLinkFunc func(ctx context.Context) (string, error)

type RecipeRepository interface { //nolint:interfacebloat // this is an acceptable interface
	CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error)
	CreateRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientRecipe, allocate ShortLinkFunc) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipeByShortLink(ctx context.Context, shortLink string) (*model.Recipe, error)
	ListRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error)
	ListRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, error)
	ShortLinkExists(ctx context.Context, shortLink string) (bool, error)
	UpdateRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientRecipe) (*model.Recipe, error)
}

// CreateRecipe stores the recipe row, its tags and its ingredients in a single transaction.
// A short link is taken from allocate for every attempt; when the insert loses a race on
// the short link unique index the whole transaction is rolled back and retried.
func (r *Repository) CreateRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientRecipe, allocate ShortLinkFunc) (*model.Recipe, error) {
	recipe.Tags = nil
	recipe.Ingredients = nil

	for attempt := 1; ; attempt++ {
		shortLink, err := allocate(ctx)
		if err != nil {
			return nil, err
		}

		recipe.ID = 0
		recipe.ShortLink = shortLink

		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("%w: %s", ErrShortLinkTaken, shortLink)
				}

				return translateWriteError(err)
			}

			return insertRecipeAssociations(tx, recipe.ID, tagIDs, ingredients)
		})

		if err == nil {
			return &recipe, nil
		}

		if !errors.Is(err, ErrShortLinkTaken) || attempt >= maxShortLinkRaces {
			r.Logger.Error("error creating recipe", zap.String("name", recipe.Name), zap.Error(err))

			return nil, err
		}

		r.Logger.Warn("short link taken by a concurrent insert, retrying",
			zap.String("short_link", shortLink), zap.Int("attempt", attempt))
	}
}

// UpdateRecipe rewrites the editable columns of the recipe and replaces its complete tag and
// ingredient sets in a single transaction.
func (r *Repository) UpdateRecipe(ctx context.Context, recipe model.Recipe, tagIDs []uint, ingredients []model.IngredientRecipe) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Recipe{ID: recipe.ID}).
			Select("name", "image", "text", "cooking_time").
			Updates(model.Recipe{Name: recipe.Name, Image: recipe.Image, Text: recipe.Text, CookingTime: recipe.CookingTime})
		if result.Error != nil {
			return translateWriteError(result.Error)
		}

		if result.RowsAffected == 0 {
			return ErrRecipeNotFound
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeTag{}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.IngredientRecipe{}).Error; err != nil {
			return err
		}

		return insertRecipeAssociations(tx, recipe.ID, tagIDs, ingredients)
	})
	if err != nil {
		r.Logger.Error("error updating recipe", zap.Uint("recipe_id", recipe.ID), zap.Error(err))

		return nil, err
	}

	return r.GetRecipeByID(ctx, recipe.ID)
}

func insertRecipeAssociations(tx *gorm.DB, recipeID uint, tagIDs []uint, ingredients []model.IngredientRecipe) error {
	recipeTags := make([]model.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		recipeTags = append(recipeTags, model.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}

	if len(recipeTags) > 0 {
		if err := tx.Create(&recipeTags).Error; err != nil {
			return translateWriteError(err)
		}
	}

	rows := make([]model.IngredientRecipe, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, model.IngredientRecipe{
			IngredientID: ingredient.IngredientID,
			RecipeID:     recipeID,
			Amount:       ingredient.Amount,
		})
	}

	if len(rows) > 0 {
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return translateWriteError(err)
		}
	}

	return nil
}

func translateWriteError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicateRelation, err)
	default:
		return err
	}
}

func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Recipe{}, recipeID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_recipes.id ASC") }).
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}

		return nil, result.Error
	}

	return &recipe, nil
}

func (r *Repository) GetRecipeByShortLink(ctx context.Context, shortLink string) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).Where("short_link = ?", shortLink).First(&recipe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}

		return nil, result.Error
	}

	return &recipe, nil
}

func (r *Repository) ShortLinkExists(ctx context.Context, shortLink string) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("short_link = ?", shortLink).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) ListRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		total   int64
	)

	if result := applyRecipeFilter(r.DB.WithContext(ctx).Model(&model.Recipe{}), filter).Count(&total); result.Error != nil {
		r.Logger.Error("error counting recipes", zap.Error(result.Error))

		return nil, 0, result.Error
	}

	query := applyRecipeFilter(r.DB.WithContext(ctx), filter).
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_recipes.id ASC") }).
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC, recipes.id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if result := query.Find(&recipes); result.Error != nil {
		r.Logger.Error("error listing recipes", zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return recipes, total, nil
}

func applyRecipeFilter(query *gorm.DB, filter model.RecipeFilter) *gorm.DB {
	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}

	if len(filter.TagSlugs) > 0 {
		query = query.Where("recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt INNER JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)", filter.TagSlugs)
	}

	if filter.FavoritedBy != nil {
		query = query.Where("recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)", *filter.FavoritedBy)
	}

	if filter.InShoppingCartOf != nil {
		query = query.Where("recipes.id IN (SELECT recipe_id FROM shopping_carts WHERE user_id = ?)", *filter.InShoppingCartOf)
	}

	return query
}

func (r *Repository) ListRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	query := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

func (r *Repository) CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
