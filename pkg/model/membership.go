package model

import "time"

// Relation describes a (owner, target) membership table such as favorites or
// subscriptions, so that one set of repository and server functions can manage
// all of them.
type Relation struct {
	Name         string
	Table        string
	OwnerColumn  string
	TargetColumn string
	TargetTable  string
	AllowSelf    bool
}

var (
	Favorites = Relation{
		Name:         "favorites",
		Table:        "favorites",
		OwnerColumn:  "user_id",
		TargetColumn: "recipe_id",
		TargetTable:  "recipes",
		AllowSelf:    true,
	}
	ShoppingCarts = Relation{
		Name:         "shopping cart",
		Table:        "shopping_carts",
		OwnerColumn:  "user_id",
		TargetColumn: "recipe_id",
		TargetTable:  "recipes",
		AllowSelf:    true,
	}
	Subscriptions = Relation{
		Name:         "subscriptions",
		Table:        "subscriptions",
		OwnerColumn:  "user_id",
		TargetColumn: "subscribed_to_id",
		TargetTable:  "users",
		AllowSelf:    false,
	}
)

type Favorite struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"not null;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  uint `gorm:"not null;uniqueIndex:idx_favorite_user_recipe;index"`

	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type ShoppingCart struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"not null;uniqueIndex:idx_shopping_cart_user_recipe"`
	RecipeID  uint `gorm:"not null;uniqueIndex:idx_shopping_cart_user_recipe;index"`

	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
