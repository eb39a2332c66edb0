package shopping_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/shopping"
)

func TestWriteReport_OneLinePerIngredient(t *testing.T) {
	var buf bytes.Buffer

	err := shopping.WriteReport(&buf, []model.ShoppingCartLine{
		{Name: "flour", MeasurementUnit: "g", TotalAmount: 25},
		{Name: "milk", MeasurementUnit: "ml", TotalAmount: 300},
	})
	require.NoError(t, err)
	assert.Equal(t, "flour (g) - 25\nmilk (ml) - 300\n", buf.String())
}

func TestWriteReport_EmptyCart(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, shopping.WriteReport(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="shopping_cart.txt"`, shopping.ContentDisposition())
}
