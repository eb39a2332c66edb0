// Package fixture decodes the JSON arrays used to seed the ingredient and tag catalogs.
package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"droscher.com/RecipeBox/pkg/model"
)

var ErrInvalidRecord = errors.New("invalid fixture record")

type IngredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type TagRecord struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DecodeIngredients returns every usable record of data. Records with a missing field are
// skipped and reported in the returned error, which may be non-nil alongside results.
func DecodeIngredients(data []byte) ([]model.Ingredient, error) {
	var records []IngredientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding ingredients: %w", err)
	}

	var errs error

	ingredients := make([]model.Ingredient, 0, len(records))

	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		unit := strings.TrimSpace(record.MeasurementUnit)

		if name == "" || unit == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: ingredient %d needs name and measurement_unit", ErrInvalidRecord, i))

			continue
		}

		ingredients = append(ingredients, model.Ingredient{Name: name, MeasurementUnit: unit})
	}

	return ingredients, errs
}

func DecodeTags(data []byte) ([]model.Tag, error) {
	var records []TagRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}

	var errs error

	tags := make([]model.Tag, 0, len(records))

	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		slug := strings.TrimSpace(record.Slug)

		if name == "" || slug == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: tag %d needs name and slug", ErrInvalidRecord, i))

			continue
		}

		tags = append(tags, model.Tag{Name: name, Slug: slug})
	}

	return tags, errs
}
