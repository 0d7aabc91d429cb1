package domain

import "time"

// IntakeLog records one eaten portion. Either FoodID or RecipeID must be
// set. Grams must be strictly positive; this is enforced before any
// persistence happens.
type IntakeLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	FoodID   *uint     `gorm:"index" json:"food_id"`
	RecipeID *uint     `json:"recipe_id"`
	Grams    float64   `gorm:"not null" json:"grams"`
	MealType string    `json:"meal_type"`
	EatenAt  time.Time `gorm:"index;not null" json:"eaten_at"`
}

// RecentLog is a log row joined with its food name for list views.
// FoodName is nil for recipe-only logs.
type RecentLog struct {
	ID       uint      `json:"id"`
	FoodID   *uint     `json:"food_id"`
	FoodName *string   `json:"food_name"`
	Grams    float64   `json:"grams"`
	EatenAt  time.Time `json:"eaten_at"`
}
