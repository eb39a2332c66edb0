package model

import "time"

type Ingredient struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"size:128;not null;uniqueIndex:idx_ingredient_name_unit"`
	MeasurementUnit string `gorm:"size:64;not null;uniqueIndex:idx_ingredient_name_unit"`
}

type Tag struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"size:32;not null;uniqueIndex"`
	Slug string `gorm:"size:32;not null;uniqueIndex"`
}

type Recipe struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	AuthorID    uint   `gorm:"not null;index"`
	Name        string `gorm:"size:256;not null"`
	Image       string `gorm:"not null"`
	Text        string `gorm:"not null"`
	CookingTime uint16 `gorm:"not null;check:chk_recipe_cooking_time,cooking_time >= 1"`
	ShortLink   string `gorm:"size:16;not null;uniqueIndex"`

	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Ingredients []IngredientRecipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// RecipeTag is the join table behind Recipe.Tags.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

type IngredientRecipe struct {
	ID           uint   `gorm:"primarykey"`
	IngredientID uint   `gorm:"not null;uniqueIndex:idx_ingredient_recipe"`
	RecipeID     uint   `gorm:"not null;uniqueIndex:idx_ingredient_recipe"`
	Amount       uint16 `gorm:"not null;check:chk_ingredient_recipe_amount,amount >= 1"`

	Ingredient Ingredient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// RecipeFilter narrows a recipe listing. Nil and empty fields do not filter.
type RecipeFilter struct {
	AuthorID         *uint
	TagSlugs         []string
	FavoritedBy      *uint
	InShoppingCartOf *uint
	Limit            int
	Offset           int
}

// ShoppingCartLine is one aggregated row of a user's shopping cart.
type ShoppingCartLine struct {
	Name            string
	MeasurementUnit string
	TotalAmount     int64
}
