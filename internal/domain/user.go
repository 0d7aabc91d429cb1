package domain

import "time"

// User roles. Admins may manage other users and the nutrient catalog.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// DefaultActivityMultiplier is applied when a user's activity level is
// unset or unrecognized.
const DefaultActivityMultiplier = 1.2

// User is a household member. Biometric fields are optional; the
// calculated-biometric target tier only applies when all of them are set.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"not null" json:"-"`
	Role          string     `gorm:"not null;default:user" json:"role"`
	Sex           *string    `json:"sex"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	HeightCM      *float64   `gorm:"column:height_cm" json:"height_cm"`
	WeightKG      *float64   `gorm:"column:weight_kg" json:"weight_kg"`
	ActivityLevel *string    `json:"activity_level"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// unchanged, mirroring COALESCE semantics on the write.
type ProfileUpdate struct {
	Name          *string
	Email         *string
	Sex           *string
	DateOfBirth   *time.Time
	HeightCM      *float64
	WeightKG      *float64
	ActivityLevel *string
}
