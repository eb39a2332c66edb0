package file

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/integrations/fixture"
	"droscher.com/RecipeBox/pkg/model"
)

const SourceName = "file"

type Source struct {
	path   string
	logger *zap.Logger
}

func NewSource(path string, logger *zap.Logger) *Source {
	return &Source{path: path, logger: logger}
}

func (s *Source) read() ([]byte, error) {
	s.logger.Info("reading fixture file", zap.String("path", s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", s.path, err)
	}

	return data, nil
}

func (s *Source) Ingredients() ([]model.Ingredient, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	return fixture.DecodeIngredients(data)
}

func (s *Source) Tags() ([]model.Tag, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	return fixture.DecodeTags(data)
}
