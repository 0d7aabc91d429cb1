package domain

import (
	"context"
	"time"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// FoodRepository persists foods.
type FoodRepository interface {
	Create(ctx context.Context, food *Food) error
	GetByID(ctx context.Context, id uint) (*Food, error)
	// GetByName matches the full name case-insensitively.
	GetByName(ctx context.Context, name string) (*Food, error)
	// Search matches a case-insensitive substring, ordered by name.
	Search(ctx context.Context, query string, limit int) ([]Food, error)
	ListAll(ctx context.Context) ([]Food, error)
	ListNames(ctx context.Context) ([]string, error)
	NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}

// NutrientRepository persists the nutrient catalog.
type NutrientRepository interface {
	Create(ctx context.Context, nutrient *Nutrient) error
	List(ctx context.Context) ([]Nutrient, error)
	GetByCodes(ctx context.Context, codes []string) ([]Nutrient, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Nutrient, error)
}

// FoodNutrientRepository persists per-100g nutrient amounts.
type FoodNutrientRepository interface {
	// HasAny reports whether the food has at least one nutrient row.
	HasAny(ctx context.Context, foodID uint) (bool, error)
	// Has reports whether the food already has a row for the nutrient.
	Has(ctx context.Context, foodID, nutrientID uint) (bool, error)
	// Insert adds a row, silently ignoring (food, nutrient) conflicts so
	// racing enrichment attempts cannot corrupt the table.
	Insert(ctx context.Context, row *FoodNutrient) error
	ForFoods(ctx context.Context, foodIDs []uint) ([]FoodNutrient, error)
	// AmountsByCode returns food id -> nutrient code -> amount per 100g,
	// restricted to the given codes.
	AmountsByCode(ctx context.Context, foodIDs []uint, codes []string) (map[uint]map[string]float64, error)
}

// LogRepository persists intake logs.
type LogRepository interface {
	Create(ctx context.Context, log *IntakeLog) error
	GetByID(ctx context.Context, id uint) (*IntakeLog, error)
	Recent(ctx context.Context, userID uint, limit int) ([]RecentLog, error)
	// ForDay returns the user's logs whose eaten_at falls on day's calendar date.
	ForDay(ctx context.Context, userID uint, day time.Time) ([]IntakeLog, error)
	// ForRange returns logs between the start and end dates, inclusive.
	ForRange(ctx context.Context, userID uint, start, end time.Time) ([]IntakeLog, error)
	UpdateGrams(ctx context.Context, id uint, grams float64) error
	Delete(ctx context.Context, id uint) error
}

// RecipeRepository persists recipes and their ingredient lists. The
// multi-row write methods are transactional: any mid-sequence failure rolls
// back all partial writes.
type RecipeRepository interface {
	List(ctx context.Context) ([]Recipe, error)
	GetByID(ctx context.Context, id uint) (*Recipe, error)
	Ingredients(ctx context.Context, recipeID uint) ([]RecipeIngredientDetail, error)
	CreateWithIngredients(ctx context.Context, recipe *Recipe, ingredients []RecipeIngredient) error
	// UpdateWithIngredients replaces the full ingredient list (delete all,
	// insert new) along with the recipe fields.
	UpdateWithIngredients(ctx context.Context, recipe *Recipe, ingredients []RecipeIngredient) error
	// Delete removes the recipe and its ingredients.
	Delete(ctx context.Context, id uint) error
}

// TargetRepository persists target overrides and RDA reference data.
type TargetRepository interface {
	OverridesForUser(ctx context.Context, userID uint) ([]UserNutrientTarget, error)
	// SeedOverride inserts an override, ignoring (user, nutrient) conflicts.
	SeedOverride(ctx context.Context, userID, nutrientID uint, dailyTarget float64) error
	// ProfileFor selects the profile whose age band contains age and whose
	// sex matches; ErrNotFound when none does.
	ProfileFor(ctx context.Context, sex string, age int) (*RdaProfile, error)
	ProfileByLabel(ctx context.Context, label string) (*RdaProfile, error)
	ValuesForProfile(ctx context.Context, profileID uint) ([]RdaValue, error)
}
