package domain

// Target sources, in precedence order (first match wins per nutrient).
const (
	SourceUserOverride = "user_override"
	SourceCalculated   = "calculated_biometric"
	SourceRdaProfile   = "rda_profile"
)

// DefaultRdaProfileLabel identifies the fallback profile used when no RDA
// profile matches a user's sex and age.
const DefaultRdaProfileLabel = "male_51_60_standard"

// UserNutrientTarget is an explicit per-user daily target override, the
// highest-precedence target source. Unique per (user, nutrient).
type UserNutrientTarget struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"uniqueIndex:idx_user_nutrient;not null" json:"user_id"`
	NutrientID  uint    `gorm:"uniqueIndex:idx_user_nutrient;not null" json:"nutrient_id"`
	DailyTarget float64 `gorm:"not null" json:"daily_target"`
}

// RdaProfile is a reference daily-allowance table keyed by sex and age band,
// the lowest-precedence target source.
type RdaProfile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Sex    string `gorm:"not null" json:"sex"`
	AgeMin int    `gorm:"not null" json:"age_min"`
	AgeMax int    `gorm:"not null" json:"age_max"`
	Label  string `gorm:"uniqueIndex;not null" json:"label"`
}

// RdaValue holds one nutrient's daily target and optional upper limit for a
// profile.
type RdaValue struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	RdaProfileID uint     `gorm:"index;not null" json:"rda_profile_id"`
	NutrientID   uint     `gorm:"not null" json:"nutrient_id"`
	DailyTarget  float64  `gorm:"not null" json:"daily_target"`
	UpperLimit   *float64 `json:"upper_limit"`
}

// ResolvedTarget is the outcome of target resolution for one nutrient.
type ResolvedTarget struct {
	DailyTarget float64  `json:"daily_target"`
	UpperLimit  *float64 `json:"upper_limit"`
	Source      string   `json:"source"`
}
