package integrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/integrations"
	"droscher.com/RecipeBox/pkg/integrations/file"
	"droscher.com/RecipeBox/pkg/integrations/web"
)

func TestGetSource(t *testing.T) {
	logger := zap.NewNop()

	assert.IsType(t, &web.Source{}, integrations.GetSource("https://example.com/ingredients.json", logger))
	assert.IsType(t, &web.Source{}, integrations.GetSource("http://localhost/tags.json", logger))
	assert.IsType(t, &file.Source{}, integrations.GetSource("data/ingredients.json", logger))
}
