package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/repository"
	"droscher.com/RecipeBox/pkg/server/rest"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

type CatalogServer struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

func NewCatalogServer(catalog repository.CatalogRepository, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{catalog: catalog, logger: logger}
}

func (c *CatalogServer) ListTags(ctx context.Context) ([]api.Tag, error) {
	tags, err := c.catalog.ListTags(ctx)
	if err != nil {
		c.logger.Error("error listing tags", zap.Error(err))

		return nil, err
	}

	return rest.TagsFromModel(tags), nil
}

func (c *CatalogServer) GetTag(ctx context.Context, tagID uint) (*api.Tag, error) {
	tag, err := c.catalog.GetTagByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return nil, fmt.Errorf("%w: tag %d", api.ErrNotFound, tagID)
		}

		return nil, err
	}

	apiTag := rest.TagFromModel(*tag)

	return &apiTag, nil
}

// ListIngredients returns every ingredient whose name contains name, ignoring case.
func (c *CatalogServer) ListIngredients(ctx context.Context, name string) ([]api.Ingredient, error) {
	ingredients, err := c.catalog.ListIngredients(ctx, name)
	if err != nil {
		c.logger.Error("error listing ingredients", zap.String("name", name), zap.Error(err))

		return nil, err
	}

	return rest.IngredientsFromModel(ingredients), nil
}

func (c *CatalogServer) GetIngredient(ctx context.Context, ingredientID uint) (*api.Ingredient, error) {
	ingredient, err := c.catalog.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return nil, fmt.Errorf("%w: ingredient %d", api.ErrNotFound, ingredientID)
		}

		return nil, err
	}

	apiIngredient := rest.IngredientFromModel(*ingredient)

	return &apiIngredient, nil
}
