package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/familyplate/backend/internal/domain"
)

// baseNutrients is the catalog the AI estimator is prompted against. The
// codes must stay in sync with the estimator prompt.
var baseNutrients = []domain.Nutrient{
	{Code: "energy_kcal", Name: "Energy", Unit: "kcal", Category: "macro"},
	{Code: "protein", Name: "Protein", Unit: "g", Category: "macro"},
	{Code: "fat_total", Name: "Total Fat", Unit: "g", Category: "macro"},
	{Code: "carbohydrates", Name: "Carbohydrates", Unit: "g", Category: "macro"},
	{Code: "fiber", Name: "Fiber", Unit: "g", Category: "macro"},
	{Code: "sodium", Name: "Sodium", Unit: "mg", Category: "mineral", LowerIsBetter: true},
	{Code: "calcium", Name: "Calcium", Unit: "mg", Category: "mineral"},
	{Code: "iron", Name: "Iron", Unit: "mg", Category: "mineral"},
	{Code: "potassium", Name: "Potassium", Unit: "mg", Category: "mineral"},
	{Code: "vit_a", Name: "Vitamin A", Unit: "mcg", Category: "vitamin"},
	{Code: "vit_c", Name: "Vitamin C", Unit: "mg", Category: "vitamin"},
	{Code: "vit_d", Name: "Vitamin D", Unit: "mcg", Category: "vitamin"},
	{Code: "vit_b12", Name: "Vitamin B12", Unit: "mcg", Category: "vitamin"},
}

// Seed inserts the base nutrient catalog and the fallback RDA profile if
// they are not present. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	for _, n := range baseNutrients {
		nutrient := n
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&nutrient).Error
		if err != nil {
			return err
		}
	}

	profile := domain.RdaProfile{
		Sex:    "male",
		AgeMin: 51,
		AgeMax: 60,
		Label:  domain.DefaultRdaProfileLabel,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile).Error
}
