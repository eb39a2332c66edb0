package shopping

import (
	"fmt"
	"io"

	"droscher.com/RecipeBox/pkg/model"
)

const (
	ContentType = "text/plain; charset=utf-8"
	FileName    = "shopping_cart.txt"
)

// WriteReport writes one "{name} ({unit}) - {total}" line per aggregated ingredient.
func WriteReport(w io.Writer, lines []model.ShoppingCartLine) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s (%s) - %d\n", line.Name, line.MeasurementUnit, line.TotalAmount); err != nil {
			return err
		}
	}

	return nil
}

func ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=%q", FileName)
}
