package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RecipeBox/pkg/model"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrTagNotFound        = errors.New("tag not found")
)

type CatalogRepository interface {
	AddIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error)
	AddTags(ctx context.Context, tags []model.Tag) (int64, error)
	FindIngredientsByIDs(ctx context.Context, ids []uint) ([]*model.Ingredient, error)
	FindTagsByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error)
	GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error)
	GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error)
	ListIngredients(ctx context.Context, name string) ([]*model.Ingredient, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
}

func (r *Repository) ListIngredients(ctx context.Context, name string) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	query := r.DB.WithContext(ctx).Order("name, measurement_unit")
	if len(name) > 0 {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	if result := query.Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	result := r.DB.WithContext(ctx).First(&ingredient, ingredientID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}

		return nil, result.Error
	}

	return &ingredient, nil
}

func (r *Repository) FindIngredientsByIDs(ctx context.Context, ids []uint) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	if len(ids) == 0 {
		return ingredients, nil
	}

	if result := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

// AddIngredients inserts the given ingredients, skipping (name, unit) pairs that already exist.
// It returns the number of rows actually inserted.
func (r *Repository) AddIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
		DoNothing: true,
	}).Create(&ingredients)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *Repository) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Order("id").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetTagByID(ctx context.Context, tagID uint) (*model.Tag, error) {
	var tag model.Tag

	result := r.DB.WithContext(ctx).First(&tag, tagID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}

		return nil, result.Error
	}

	return &tag, nil
}

func (r *Repository) FindTagsByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error) {
	var tags []*model.Tag

	if len(ids) == 0 {
		return tags, nil
	}

	if result := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

// AddTags inserts the given tags, skipping any whose name or slug is already taken.
func (r *Repository) AddTags(ctx context.Context, tags []model.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tags)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
