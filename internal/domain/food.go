package domain

import "time"

// Food is a loggable item. Identity is immutable once created, but a food
// may acquire nutrient rows later through enrichment. A food with zero
// FoodNutrient rows is "hollow" and contributes nothing to nutrient totals.
type Food struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Category     string    `json:"category"`
	DefaultUnit  string    `json:"default_unit"`
	GramsPerUnit float64   `json:"grams_per_unit"`
	CreatedAt    time.Time `json:"created_at"`
}

// Nutrient is a catalog entry describing one tracked nutrient.
// Effectively static reference data; admins may add new ones at runtime,
// which triggers a backfill sweep over existing foods.
type Nutrient struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Code          string `gorm:"uniqueIndex;not null" json:"code"`
	Name          string `gorm:"not null" json:"name"`
	Unit          string `json:"unit"`
	Category      string `json:"category"`
	LowerIsBetter bool   `json:"lower_is_better"`
}

// FoodNutrient holds a food's amount of one nutrient per 100g raw weight.
// The composite unique index makes concurrent check-then-insert enrichment
// attempts safe: the second insert is a conflict no-op.
type FoodNutrient struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	FoodID        uint    `gorm:"uniqueIndex:idx_food_nutrient;not null" json:"food_id"`
	NutrientID    uint    `gorm:"uniqueIndex:idx_food_nutrient;not null" json:"nutrient_id"`
	AmountPer100g float64 `gorm:"column:amount_per_100g;not null" json:"amount_per_100g"`
}

// The four macro codes used by biometric targets and range aggregation.
const (
	CodeEnergyKcal    = "energy_kcal"
	CodeProtein       = "protein"
	CodeFatTotal      = "fat_total"
	CodeCarbohydrates = "carbohydrates"
)

// MacroCodes lists the macro nutrient codes in display order.
var MacroCodes = []string{CodeEnergyKcal, CodeProtein, CodeFatTotal, CodeCarbohydrates}
