package domain

// NutrientReport is one row of the day report: intake total joined with the
// resolved target and catalog metadata. A zero DailyTarget with an empty
// Source means "no known target", not a real zero target.
type NutrientReport struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Unit        string   `json:"unit"`
	TotalAmount float64  `json:"total_amount"`
	DailyTarget float64  `json:"daily_target"`
	UpperLimit  *float64 `json:"upper_limit"`
	Source      string   `json:"source,omitempty"`
}

// MissingFood flags a logged food that has no nutrient data yet, so the UI
// can surface the gap instead of silently showing zero.
type MissingFood struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DayReport is the single-day analytics response.
type DayReport struct {
	UserID            uint             `json:"user_id"`
	Date              string           `json:"date"`
	TotalGramsByFood  map[uint]float64 `json:"total_grams_by_food"`
	Nutrients         []NutrientReport `json:"nutrients"`
	MissingFoods      []MissingFood    `json:"missing_foods"`
	RdaProfileUsed    string           `json:"rda_profile_used,omitempty"`
	CalculatedTargets bool             `json:"calculated_targets"`
}

// DailyMacroSummary is one day of the history range report, restricted to
// the four macro codes. Days with no logs are absent from the series.
type DailyMacroSummary struct {
	Date          string  `json:"date"`
	EnergyKcal    float64 `json:"energy_kcal"`
	Protein       float64 `json:"protein"`
	FatTotal      float64 `json:"fat_total"`
	Carbohydrates float64 `json:"carbohydrates"`
}
