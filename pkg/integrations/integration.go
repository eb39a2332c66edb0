// Package integrations resolves where catalog fixtures are loaded from.
package integrations

import (
	"strings"

	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/integrations/file"
	"droscher.com/RecipeBox/pkg/integrations/web"
	"droscher.com/RecipeBox/pkg/model"
)

type Source interface {
	Ingredients() ([]model.Ingredient, error)
	Tags() ([]model.Tag, error)
}

// GetSource returns a web source for http(s) locations and a file source otherwise.
func GetSource(location string, logger *zap.Logger) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return web.NewSource(location, logger.With(zap.String("source", web.SourceName)))
	}

	return file.NewSource(location, logger.With(zap.String("source", file.SourceName)))
}
