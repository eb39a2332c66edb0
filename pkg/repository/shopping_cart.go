package repository

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/model"
)

type ShoppingCartRepository interface {
	GetShoppingCart(ctx context.Context, userID uint) ([]model.ShoppingCartLine, error)
}

// GetShoppingCart sums ingredient amounts over every recipe in the user's shopping cart,
// one line per (ingredient name, measurement unit).
func (r *Repository) GetShoppingCart(ctx context.Context, userID uint) ([]model.ShoppingCartLine, error) {
	var lines []model.ShoppingCartLine

	result := r.DB.WithContext(ctx).Table("ingredient_recipes ir").
		Select("i.name as name, i.measurement_unit as measurement_unit, sum(ir.amount) as total_amount").
		Joins("INNER JOIN ingredients i on i.id = ir.ingredient_id").
		Joins("INNER JOIN shopping_carts sc on sc.recipe_id = ir.recipe_id").
		Where("sc.user_id = ?", userID).
		Group("i.name, i.measurement_unit").
		Order("i.name, i.measurement_unit").
		Scan(&lines)
	if result.Error != nil {
		r.Logger.Error("error aggregating shopping cart", zap.Uint("user_id", userID), zap.Error(result.Error))

		return nil, result.Error
	}

	return lines, nil
}
