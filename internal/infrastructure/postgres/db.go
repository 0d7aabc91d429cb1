// Package postgres implements the domain repositories on GORM. Production
// uses the Postgres driver; tests run the same repositories against an
// in-memory sqlite database.
package postgres

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/familyplate/backend/internal/domain"
)

// Open connects to PostgreSQL and runs migrations.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all domain models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Food{},
		&domain.Nutrient{},
		&domain.FoodNutrient{},
		&domain.IntakeLog{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.UserNutrientTarget{},
		&domain.RdaProfile{},
		&domain.RdaValue{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

// notFound maps GORM's sentinel onto the domain error so callers never
// import gorm.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
