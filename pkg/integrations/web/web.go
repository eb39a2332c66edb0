package web

import (
	"errors"
	"fmt"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/integrations/fixture"
	"droscher.com/RecipeBox/pkg/model"
)

const (
	SourceName = "web"
	userAgent  = "RecipeBox fixture loader"
)

var ErrEmptyResponse = errors.New("empty fixture response")

type Source struct {
	url    string
	logger *zap.Logger
}

func NewSource(url string, logger *zap.Logger) *Source {
	return &Source{url: url, logger: logger}
}

// fetch downloads the fixture document with a fresh collector so that repeated loads of the
// same URL are not skipped as already visited.
func (s *Source) fetch() ([]byte, error) {
	collector := colly.NewCollector(colly.UserAgent(userAgent))

	var (
		errs error
		body []byte
	)

	collector.OnResponse(func(response *colly.Response) {
		s.logger.Info("fetched fixture", zap.String("url", s.url), zap.Int("status", response.StatusCode))
		body = response.Body
	})

	collector.OnError(func(response *colly.Response, err error) {
		s.logger.Error("failed to fetch fixture", zap.String("url", s.url), zap.Int("status", response.StatusCode), zap.Error(err))
		multierr.AppendInto(&errs, err)
	})

	multierr.AppendInto(&errs, collector.Visit(s.url))

	if errs != nil {
		return nil, fmt.Errorf("error fetching %s: %w", s.url, errs)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResponse, s.url)
	}

	return body, nil
}

func (s *Source) Ingredients() ([]model.Ingredient, error) {
	body, err := s.fetch()
	if err != nil {
		return nil, err
	}

	return fixture.DecodeIngredients(body)
}

func (s *Source) Tags() ([]model.Tag, error) {
	body, err := s.fetch()
	if err != nil {
		return nil, err
	}

	return fixture.DecodeTags(body)
}
