package domain

import "time"

// Recipe groups ingredient foods into a reusable dish.
type Recipe struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Category           string    `json:"category"`
	CreatedByUserID    uint      `gorm:"index" json:"created_by_user_id"`
	TotalCookedWeightG float64   `json:"total_cooked_weight_g"`
	IsPublic           bool      `json:"is_public"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RecipeIngredient links a recipe to one food with a raw-weight quantity.
type RecipeIngredient struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	RecipeID  uint    `gorm:"index;not null" json:"recipe_id"`
	FoodID    uint    `gorm:"not null" json:"food_id"`
	QuantityG float64 `gorm:"not null" json:"quantity_g"`
}

// RecipeIngredientDetail is an ingredient row joined with its food name.
type RecipeIngredientDetail struct {
	FoodID    uint    `json:"food_id"`
	FoodName  string  `json:"food_name"`
	QuantityG float64 `json:"quantity_g"`
}

// RecipeDetail is a recipe plus its resolved ingredient list.
type RecipeDetail struct {
	Recipe
	Ingredients []RecipeIngredientDetail `json:"ingredients"`
}
